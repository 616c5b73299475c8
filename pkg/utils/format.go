package utils

import (
	"math"
	"reflect"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Placeholder é exibido no lugar de valores ausentes ou não numéricos
const Placeholder = "—"

type ValueKind string

const (
	KindNumber     ValueKind = "number"
	KindCurrency   ValueKind = "currency"
	KindPercentage ValueKind = "percentage"
)

var printer = message.NewPrinter(language.English)

// FormatValue formata um valor para exibição. Nunca retorna NaN: qualquer valor
// que não seja um número finito vira Placeholder.
func FormatValue(value any, kind ValueKind) string {
	n, ok := toNumber(value)
	if !ok {
		return Placeholder
	}

	switch kind {
	case KindCurrency:
		return "$" + formatGrouped(n)
	case KindPercentage:
		return decimal.NewFromFloat(n).StringFixed(1) + "%"
	default:
		return formatGrouped(n)
	}
}

// PercentChange calcula (atual - anterior) / anterior * 100.
// Retorna nil quando algum dos lados não é numérico ou quando o anterior é 0.
func PercentChange(current, previous any) *float64 {
	c, ok := toNumber(current)
	if !ok {
		return nil
	}

	p, ok := toNumber(previous)
	if !ok || p == 0 {
		return nil
	}

	change := (c - p) / p * 100
	if math.IsNaN(change) || math.IsInf(change, 0) {
		return nil
	}

	return &change
}

// FormatChange formata uma variação percentual com sinal, ex: "+28.6%"
func FormatChange(change *float64) string {
	if change == nil {
		return Placeholder
	}

	formatted := FormatValue(*change, KindPercentage)
	if *change > 0 {
		return "+" + formatted
	}

	return formatted
}

// formatGrouped agrupa milhares no padrão en-US com até 3 casas decimais
func formatGrouped(n float64) string {
	d := decimal.NewFromFloat(n).Round(3)

	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}

	integer := d.Truncate(0)
	fraction := d.Sub(integer)

	out := sign + printer.Sprintf("%d", integer.IntPart())
	if !fraction.IsZero() {
		// "0.125" -> ".125"
		out += strings.TrimPrefix(fraction.String(), "0")
	}

	return out
}

func toNumber(value any) (float64, bool) {
	if value == nil {
		return 0, false
	}

	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return 0, false
		}
		return toNumber(rv.Elem().Interface())
	}

	if s, ok := value.(string); ok {
		s = strings.TrimSpace(s)
		if s == "" {
			return 0, false
		}
		value = s
	}

	n, err := cast.ToFloat64E(value)
	if err != nil {
		return 0, false
	}

	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}

	return n, true
}

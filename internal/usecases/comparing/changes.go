// Package comparing calcula a variação mês a mês da série canônica
package comparing

import (
	"github.com/vfg2006/funnel-dashboard-api/internal/domain"
	"github.com/vfg2006/funnel-dashboard-api/pkg/utils"
)

// scalarField liga um campo numérico do registro ao campo correspondente nas variações
type scalarField struct {
	value  func(r domain.MonthlyRecord) float64
	change func(c *domain.MonthlyMetricChanges) **float64
}

var scalarFields = []scalarField{
	{
		value:  func(r domain.MonthlyRecord) float64 { return float64(r.VideoViews) },
		change: func(c *domain.MonthlyMetricChanges) **float64 { return &c.VideoViews },
	},
	{
		value:  func(r domain.MonthlyRecord) float64 { return float64(r.UniqueVideoViews) },
		change: func(c *domain.MonthlyMetricChanges) **float64 { return &c.UniqueVideoViews },
	},
	{
		value:  func(r domain.MonthlyRecord) float64 { return float64(r.SiteVisitors) },
		change: func(c *domain.MonthlyMetricChanges) **float64 { return &c.SiteVisitors },
	},
	{
		value:  func(r domain.MonthlyRecord) float64 { return float64(r.CallsBooked) },
		change: func(c *domain.MonthlyMetricChanges) **float64 { return &c.CallsBooked },
	},
	{
		value:  func(r domain.MonthlyRecord) float64 { return float64(r.CallsAccepted) },
		change: func(c *domain.MonthlyMetricChanges) **float64 { return &c.CallsAccepted },
	},
	{
		value:  func(r domain.MonthlyRecord) float64 { return r.TotalCashCollected },
		change: func(c *domain.MonthlyMetricChanges) **float64 { return &c.TotalCashCollected },
	},
}

// WithChanges devolve a série com a variação percentual de cada métrica em relação ao mês anterior.
// O primeiro mês sai com variações vazias. Não altera a entrada.
func WithChanges(records []domain.MonthlyRecord) []domain.MonthlyRecordWithChanges {
	result := make([]domain.MonthlyRecordWithChanges, 0, len(records))

	for i, record := range records {
		item := domain.MonthlyRecordWithChanges{MonthlyRecord: record}
		if i > 0 {
			item.Changes = Compare(record, records[i-1])
		}
		result = append(result, item)
	}

	return result
}

// Compare calcula as variações de current em relação a previous
func Compare(current, previous domain.MonthlyRecord) domain.MonthlyMetricChanges {
	var changes domain.MonthlyMetricChanges

	for _, field := range scalarFields {
		*field.change(&changes) = utils.PercentChange(field.value(current), field.value(previous))
	}

	changes.Closes = &domain.ClosesChanges{
		HighTicket: utils.PercentChange(current.Closes.HighTicket, previous.Closes.HighTicket),
		Discount:   utils.PercentChange(current.Closes.Discount, previous.Closes.Discount),
	}

	changes.NewCashCollected = &domain.NewCashCollectedChanges{
		Total:        utils.PercentChange(current.NewCashCollected.Total(), previous.NewCashCollected.Total()),
		PaidInFull:   utils.PercentChange(current.NewCashCollected.PaidInFull, previous.NewCashCollected.PaidInFull),
		Installments: utils.PercentChange(current.NewCashCollected.Installments, previous.NewCashCollected.Installments),
		ByProduct:    productChanges(current.NewCashCollected.ByProduct, previous.NewCashCollected.ByProduct),
	}

	return changes
}

// productChanges compara a união dos produtos dos dois meses; produto ausente em um dos lados vira nil
func productChanges(current, previous map[string]float64) map[string]*float64 {
	if len(current) == 0 && len(previous) == 0 {
		return nil
	}

	changes := make(map[string]*float64, len(current))
	for product, amount := range current {
		prev, ok := previous[product]
		if !ok {
			changes[product] = nil
			continue
		}
		changes[product] = utils.PercentChange(amount, prev)
	}

	for product := range previous {
		if _, ok := current[product]; !ok {
			changes[product] = nil
		}
	}

	return changes
}

// Package normalizing junta as séries mensais de agendamentos e pagamentos em registros canônicos
package normalizing

import (
	"fmt"
	"math"
	"sort"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/funnel-dashboard-api/internal/domain"
	"github.com/vfg2006/funnel-dashboard-api/pkg/utils"
)

// Normalize faz o join posicional das duas fontes. Cada par precisa ter a mesma chave de mês;
// pares divergentes, meses inválidos e linhas sem par são descartados e registrados no report.
// O resultado sai ordenado por mês.
func Normalize(calls []domain.CallBookingMonth, payments []domain.PaymentMonth, report *domain.PipelineReport) []domain.MonthlyRecord {
	size := len(calls)
	if len(payments) < size {
		size = len(payments)
	}

	for _, c := range calls[size:] {
		report.Add(domain.FallbackMissingMonth, c.Month, "mês sem linha correspondente de pagamentos")
	}
	for _, p := range payments[size:] {
		report.Add(domain.FallbackMissingMonth, p.Month, "mês sem linha correspondente de agendamentos")
	}

	if len(calls) != len(payments) {
		logrus.WithFields(logrus.Fields{
			"calls_rows":    len(calls),
			"payments_rows": len(payments),
		}).Warn("normalize: fontes com quantidade de meses diferente, truncando para a menor")
	}

	records := make([]domain.MonthlyRecord, 0, size)
	seen := make(map[string]bool, size)

	for i := 0; i < size; i++ {
		call, payment := calls[i], payments[i]

		if call.Month != payment.Month {
			report.Add(domain.FallbackMonthMismatch, call.Month,
				fmt.Sprintf("%v: agendamentos=%s pagamentos=%s", domain.ErrMalformedInput, call.Month, payment.Month))
			logrus.WithFields(logrus.Fields{
				"index":          i,
				"calls_month":    call.Month,
				"payments_month": payment.Month,
			}).Warn("normalize: meses divergentes na mesma posição, linha descartada")
			continue
		}

		if _, err := utils.ParseMonth(call.Month); err != nil {
			report.Add(domain.FallbackInvalidMonth, call.Month, fmt.Sprintf("%v: %v", domain.ErrMalformedInput, err))
			logrus.WithField("month", call.Month).Warn("normalize: chave de mês inválida, linha descartada")
			continue
		}

		if seen[call.Month] {
			report.Add(domain.FallbackDuplicateMonth, call.Month, "mês repetido")
			continue
		}
		seen[call.Month] = true

		records = append(records, merge(call, payment, report))
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Month < records[j].Month
	})

	return records
}

func merge(call domain.CallBookingMonth, payment domain.PaymentMonth, report *domain.PipelineReport) domain.MonthlyRecord {
	month := call.Month

	record := domain.MonthlyRecord{
		Month:         month,
		VideoViews:    nonNegative(call.YouTubeViews, month, "youtube_views", report),
		SiteVisitors:  nonNegative(call.UniqueVisitors, month, "unique_visitors", report),
		CallsBooked:   nonNegative(call.CallsBooked, month, "calls_booked", report),
		CallsAccepted: nonNegative(call.CallsAccepted, month, "calls_accepted", report),
		Closes:        closesFrom(payment, report),
		NewCashCollected: domain.NewCashCollected{
			PaidInFull:   nonNegativeAmount(payment.NewCashCollected.PaidInFull, month, "pif", report),
			Installments: nonNegativeAmount(payment.NewCashCollected.Installments, month, "installments", report),
			ByProduct:    byProduct(payment.NewCashCollected.ByProduct),
		},
	}

	if call.YouTubeUniqueViews != nil {
		record.UniqueVideoViews = nonNegative(*call.YouTubeUniqueViews, month, "youtube_unique_views", report)
	} else {
		record.UniqueVideoViews = int(math.Floor(float64(record.VideoViews) * domain.UniqueViewsRatio))
		report.Add(domain.FallbackUniqueViewsDerived, month, "youtube_unique_views ausente")
	}

	if record.UniqueVideoViews > record.VideoViews {
		report.Add(domain.FallbackCountClamped, month, "youtube_unique_views maior que youtube_views")
		record.UniqueVideoViews = record.VideoViews
	}

	if record.CallsAccepted > record.CallsBooked {
		report.Add(domain.FallbackCountClamped, month, "calls_accepted maior que calls_booked")
		record.CallsAccepted = record.CallsBooked
	}

	record.TotalCashCollected = totalCash(payment.TotalCashCollected, record.NewCashCollected, month, report)

	return record
}

// closesFrom aceita tanto o formato agregado (closes) quanto o separado por forma de pagamento
func closesFrom(payment domain.PaymentMonth, report *domain.PipelineReport) domain.Closes {
	var closes domain.Closes

	switch {
	case payment.Closes != nil:
		closes.HighTicket = payment.Closes.HighTicket
		closes.Discount = payment.Closes.Discount
	default:
		if payment.HighTicketCloses != nil {
			closes.HighTicket = payment.HighTicketCloses.Total()
		}
		if payment.DiscountCloses != nil {
			closes.Discount = payment.DiscountCloses.Total()
		}
	}

	closes.HighTicket = nonNegative(closes.HighTicket, payment.Month, "high_ticket_closes", report)
	closes.Discount = nonNegative(closes.Discount, payment.Month, "discount_closes", report)

	return closes
}

// totalCash mantém o total informado pela plataforma quando ele cobre o dinheiro novo do mês,
// já que pode incluir parcelas de vendas anteriores.
func totalCash(provided *float64, newCash domain.NewCashCollected, month string, report *domain.PipelineReport) float64 {
	computed := newCash.Total()

	if provided == nil || math.IsNaN(*provided) || math.IsInf(*provided, 0) {
		return computed
	}

	if *provided < computed {
		report.Add(domain.FallbackCashTotalRecomputed, month,
			fmt.Sprintf("total_cash_collected %.2f menor que pif+installments %.2f", *provided, computed))
		return computed
	}

	return *provided
}

func byProduct(in map[string]float64) map[string]float64 {
	if len(in) == 0 {
		return nil
	}

	out := make(map[string]float64, len(in))
	for product, amount := range in {
		out[product] = amount
	}
	return out
}

func nonNegative(v int, month, field string, report *domain.PipelineReport) int {
	if v < 0 {
		report.Add(domain.FallbackCountClamped, month, field+" negativo")
		return 0
	}
	return v
}

func nonNegativeAmount(v float64, month, field string, report *domain.PipelineReport) float64 {
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		report.Add(domain.FallbackCountClamped, month, field+" inválido")
		return 0
	}
	return v
}

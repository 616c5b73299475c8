package reporting

import (
	"github.com/vfg2006/funnel-dashboard-api/internal/domain"
	"github.com/vfg2006/funnel-dashboard-api/pkg/utils"
)

type cardDefinition struct {
	key    string
	title  string
	format utils.ValueKind
	value  func(r domain.MonthlyRecord) float64
}

var cardDefinitions = []cardDefinition{
	{
		key:    "monthlyRecurringRevenue",
		title:  "Monthly Recurring Revenue",
		format: utils.KindCurrency,
		value:  func(r domain.MonthlyRecord) float64 { return r.TotalCashCollected },
	},
	{
		key:    "highTicketCloses",
		title:  "High-Ticket Closes",
		format: utils.KindNumber,
		value:  func(r domain.MonthlyRecord) float64 { return float64(r.Closes.HighTicket) },
	},
	{
		key:    "callsBooked",
		title:  "Calls Booked",
		format: utils.KindNumber,
		value:  func(r domain.MonthlyRecord) float64 { return float64(r.CallsBooked) },
	},
	{
		key:    "youtubeViews",
		title:  "YouTube Views",
		format: utils.KindNumber,
		value:  func(r domain.MonthlyRecord) float64 { return float64(r.VideoViews) },
	},
	{
		key:    "uniqueWebsiteVisitors",
		title:  "Unique Website Visitors",
		format: utils.KindNumber,
		value:  func(r domain.MonthlyRecord) float64 { return float64(r.SiteVisitors) },
	},
	{
		key:    "showUpRate",
		title:  "Show-up Rate",
		format: utils.KindPercentage,
		value:  showUpRate,
	},
	{
		key:    "discountCloses",
		title:  "Discount Closes",
		format: utils.KindNumber,
		value:  func(r domain.MonthlyRecord) float64 { return float64(r.Closes.Discount) },
	},
}

// BuildMetricCards monta os cards do último mês da série comparando com o mês anterior
func BuildMetricCards(records []domain.MonthlyRecord) []domain.MetricCard {
	if len(records) == 0 {
		return []domain.MetricCard{}
	}

	latest := records[len(records)-1]

	var previous *domain.MonthlyRecord
	if len(records) > 1 {
		previous = &records[len(records)-2]
	}

	cards := make([]domain.MetricCard, 0, len(cardDefinitions))
	for _, def := range cardDefinitions {
		card := domain.MetricCard{
			Key:    def.key,
			Title:  def.title,
			Format: string(def.format),
			Value:  def.value(latest),
		}

		if previous != nil {
			prev := def.value(*previous)
			card.PreviousValue = &prev
			card.Change = utils.PercentChange(card.Value, prev)
		}

		card.Display = utils.FormatValue(card.Value, def.format)
		card.ChangeDisplay = utils.FormatChange(card.Change)

		cards = append(cards, card)
	}

	return cards
}

// showUpRate é a fração de chamadas agendadas que foram aceitas, em porcentagem
func showUpRate(r domain.MonthlyRecord) float64 {
	if r.CallsBooked == 0 {
		return 0
	}
	return float64(r.CallsAccepted) / float64(r.CallsBooked) * 100
}

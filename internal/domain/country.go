package domain

import (
	"math"

	"github.com/vfg2006/funnel-dashboard-api/pkg/utils"
)

// callsAcceptedRatio é a fração de chamadas agendadas aceitas em cada país
const callsAcceptedRatio = 0.8

type CountryShare struct {
	Code  string
	Share float64
}

// DefaultCountryShares é a distribuição de audiência usada na quebra por país
var DefaultCountryShares = []CountryShare{
	{Code: "US", Share: 0.65},
	{Code: "GB", Share: 0.10},
	{Code: "CA", Share: 0.08},
	{Code: "AU", Share: 0.07},
	{Code: "DE", Share: 0.03},
	{Code: "IN", Share: 0.03},
	{Code: "FR", Share: 0.02},
	{Code: "BR", Share: 0.02},
}

type FunnelTotals struct {
	Leads       int
	CallsBooked int
	Revenue     float64
}

type CountryBreakdown struct {
	Country        string  `json:"country"`
	Leads          int     `json:"leads"`
	CallsBooked    int     `json:"callsBooked"`
	CallsAccepted  int     `json:"callsAccepted"`
	Revenue        float64 `json:"revenue"`
	ConversionRate float64 `json:"conversionRate"`
}

// AllocateByCountry distribui os totais entre os países conforme a participação de cada um.
// O último país recebe o resto do arredondamento.
func AllocateByCountry(totals FunnelTotals, shares []CountryShare) []CountryBreakdown {
	breakdown := make([]CountryBreakdown, 0, len(shares))

	leadsLeft := totals.Leads
	callsLeft := totals.CallsBooked
	revenueLeft := totals.Revenue

	for i, share := range shares {
		item := CountryBreakdown{Country: share.Code}

		if i == len(shares)-1 {
			item.Leads = leadsLeft
			item.CallsBooked = callsLeft
			item.Revenue = utils.RoundWithTwoDecimalPlace(revenueLeft)
		} else {
			item.Leads = int(math.Round(float64(totals.Leads) * share.Share))
			item.CallsBooked = int(math.Round(float64(totals.CallsBooked) * share.Share))
			item.Revenue = math.Round(totals.Revenue * share.Share)

			leadsLeft -= item.Leads
			callsLeft -= item.CallsBooked
			revenueLeft -= item.Revenue
		}

		if item.Leads < 0 {
			item.Leads = 0
		}
		if item.CallsBooked < 0 {
			item.CallsBooked = 0
		}
		if item.Revenue < 0 {
			item.Revenue = 0
		}

		item.CallsAccepted = int(math.Round(float64(item.CallsBooked) * callsAcceptedRatio))
		if item.Leads > 0 {
			item.ConversionRate = utils.RoundWithTwoDecimalPlace(item.Revenue / float64(item.Leads))
		}

		breakdown = append(breakdown, item)
	}

	return breakdown
}

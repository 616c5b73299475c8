package domain

import "github.com/vfg2006/funnel-dashboard-api/pkg/utils"

const (
	StageVideoViews    = "YouTube Views"
	StageSiteVisits    = "Website Visits"
	StageCallsBooked   = "Calls Booked"
	StageCallsAccepted = "Calls Accepted"
	StageCloses        = "Closes"
)

type FunnelStage struct {
	Stage          string  `json:"stage"`
	Count          int     `json:"count"`
	ConversionRate float64 `json:"conversionRate"`
	DropoffRate    float64 `json:"dropoffRate"`
}

// BuildFunnel monta as etapas do funil de um mês. A taxa de conversão de cada etapa é
// relativa à etapa anterior e fica em 0 quando a anterior é 0.
func BuildFunnel(record MonthlyRecord) []FunnelStage {
	counts := []struct {
		stage string
		count int
	}{
		{StageVideoViews, record.VideoViews},
		{StageSiteVisits, record.SiteVisitors},
		{StageCallsBooked, record.CallsBooked},
		{StageCallsAccepted, record.CallsAccepted},
		{StageCloses, record.Closes.HighTicket + record.Closes.Discount},
	}

	stages := make([]FunnelStage, 0, len(counts))
	for i, c := range counts {
		stage := FunnelStage{Stage: c.stage, Count: c.count}

		if i > 0 {
			previous := counts[i-1].count
			if previous > 0 {
				stage.ConversionRate = utils.RoundWithTwoDecimalPlace(float64(c.count) / float64(previous) * 100)
				stage.DropoffRate = utils.RoundWithTwoDecimalPlace(100 - stage.ConversionRate)
			}
		}

		stages = append(stages, stage)
	}

	return stages
}

package domain

import "time"

// MetricCard é um indicador do mês mais recente já formatado para exibição
type MetricCard struct {
	Key           string   `json:"key"`
	Title         string   `json:"title"`
	Format        string   `json:"format"`
	Value         float64  `json:"value"`
	PreviousValue *float64 `json:"previousValue"`
	Display       string   `json:"display"`
	Change        *float64 `json:"change"`
	ChangeDisplay string   `json:"changeDisplay"`
}

// DashboardSnapshot é o resultado completo de uma execução do pipeline
type DashboardSnapshot struct {
	ID           string                     `json:"id"`
	ChannelID    string                     `json:"channelId"`
	GeneratedAt  time.Time                  `json:"generatedAt"`
	Months       []MonthlyRecordWithChanges `json:"months"`
	Videos       []CombinedVideoData        `json:"videos"`
	Funnel       []FunnelStage              `json:"funnel"`
	Countries    []CountryBreakdown         `json:"countries"`
	Cards        []MetricCard               `json:"cards"`
	TopPerformer *CombinedVideoData         `json:"topPerformer,omitempty"`
	Fallbacks    []Fallback                 `json:"fallbacks"`
}

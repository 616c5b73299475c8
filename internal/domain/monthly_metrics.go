package domain

import (
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// UniqueViewsRatio é a fração de views considerada única quando a fonte não informa
const UniqueViewsRatio = 0.8

type Closes struct {
	HighTicket int `json:"highTicket"`
	Discount   int `json:"discount"`
}

type NewCashCollected struct {
	PaidInFull   float64            `json:"paidInFull"`
	Installments float64            `json:"installments"`
	ByProduct    map[string]float64 `json:"byProduct,omitempty"`
}

// Total soma pagamentos à vista e parcelados
func (n NewCashCollected) Total() float64 {
	return n.PaidInFull + n.Installments
}

// MonthlyRecord é o registro canônico de um mês do funil
type MonthlyRecord struct {
	Month              string           `json:"month"`
	VideoViews         int              `json:"youtubeTotalViews"`
	UniqueVideoViews   int              `json:"youtubeUniqueViews"`
	SiteVisitors       int              `json:"uniqueWebsiteVisitors"`
	CallsBooked        int              `json:"totalCallsBooked"`
	CallsAccepted      int              `json:"acceptedCalls"`
	Closes             Closes           `json:"closes"`
	NewCashCollected   NewCashCollected `json:"newCashCollected"`
	TotalCashCollected float64          `json:"totalCashCollected"`
}

type ClosesChanges struct {
	HighTicket *float64 `json:"highTicket"`
	Discount   *float64 `json:"discount"`
}

type NewCashCollectedChanges struct {
	Total        *float64            `json:"total"`
	PaidInFull   *float64            `json:"paidInFull"`
	Installments *float64            `json:"installments"`
	ByProduct    map[string]*float64 `json:"byProduct,omitempty"`
}

// MonthlyMetricChanges guarda a variação percentual de cada métrica em relação ao mês anterior.
// Um campo nil significa que a variação não pôde ser calculada.
type MonthlyMetricChanges struct {
	VideoViews         *float64                 `json:"youtubeTotalViews"`
	UniqueVideoViews   *float64                 `json:"youtubeUniqueViews"`
	SiteVisitors       *float64                 `json:"uniqueWebsiteVisitors"`
	CallsBooked        *float64                 `json:"totalCallsBooked"`
	CallsAccepted      *float64                 `json:"acceptedCalls"`
	TotalCashCollected *float64                 `json:"totalCashCollected"`
	Closes             *ClosesChanges           `json:"closes,omitempty"`
	NewCashCollected   *NewCashCollectedChanges `json:"newCashCollected,omitempty"`
}

// IsEmpty indica que nenhuma comparação foi feita (primeiro mês da série)
func (c MonthlyMetricChanges) IsEmpty() bool {
	return c.VideoViews == nil &&
		c.UniqueVideoViews == nil &&
		c.SiteVisitors == nil &&
		c.CallsBooked == nil &&
		c.CallsAccepted == nil &&
		c.TotalCashCollected == nil &&
		c.Closes == nil &&
		c.NewCashCollected == nil
}

func (c MonthlyMetricChanges) MarshalJSON() ([]byte, error) {
	if c.IsEmpty() {
		return []byte("{}"), nil
	}

	type alias MonthlyMetricChanges
	return json.Marshal(alias(c))
}

type MonthlyRecordWithChanges struct {
	MonthlyRecord
	Changes MonthlyMetricChanges `json:"changes"`
}

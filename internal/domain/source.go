package domain

// CallBookingMonth é a linha mensal exportada pela ferramenta de agendamento (formato Cal.com)
type CallBookingMonth struct {
	Month              string `json:"month"`
	CallsBooked        int    `json:"calls_booked"`
	CallsAccepted      int    `json:"calls_accepted"`
	CallsShowed        int    `json:"calls_showed,omitempty"`
	YouTubeViews       int    `json:"youtube_views"`
	YouTubeUniqueViews *int   `json:"youtube_unique_views,omitempty"`
	UniqueVisitors     int    `json:"unique_visitors"`
}

type PaymentSplit struct {
	PaidInFull   float64            `json:"pif"`
	Installments float64            `json:"installments"`
	ByProduct    map[string]float64 `json:"by_product,omitempty"`
}

type PaymentCloses struct {
	HighTicket int `json:"high_ticket"`
	Discount   int `json:"discount"`
}

// CloseSplit é a variante da plataforma de pagamentos que separa fechamentos por forma de pagamento
type CloseSplit struct {
	PaidInFull   int `json:"pif"`
	Installments int `json:"installments"`
}

func (c CloseSplit) Total() int {
	return c.PaidInFull + c.Installments
}

// PaymentMonth é a linha mensal exportada pela plataforma de pagamentos (formato Kajabi)
type PaymentMonth struct {
	Month              string         `json:"month"`
	NewCashCollected   PaymentSplit   `json:"new_cash_collected"`
	TotalCashCollected *float64       `json:"total_cash_collected,omitempty"`
	Closes             *PaymentCloses `json:"closes,omitempty"`
	HighTicketCloses   *CloseSplit    `json:"high_ticket_closes,omitempty"`
	DiscountCloses     *CloseSplit    `json:"discount_closes,omitempty"`
}

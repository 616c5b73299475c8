package attributing

// Rates são as taxas usadas para simular o funil de cada vídeo.
// KeywordBoosts multiplica a taxa de leads quando o título contém a palavra, sem diferenciar maiúsculas.
type Rates struct {
	BaseLeadRate      float64
	HighViewThreshold int64
	HighViewBoost     float64
	HighLikeThreshold int64
	HighLikeBoost     float64
	KeywordBoosts     map[string]float64
	BookingRateMin    float64
	BookingRateMax    float64
	AcceptanceRateMin float64
	AcceptanceRateMax float64
	CloseRate         float64
	PaidInFullShare   float64
	SurrogateViewsMin int64
	SurrogateViewsMax int64
}

func DefaultRates() Rates {
	return Rates{
		BaseLeadRate:      0.01,
		HighViewThreshold: 50000,
		HighViewBoost:     1.5,
		HighLikeThreshold: 1000,
		HighLikeBoost:     1.2,
		KeywordBoosts:     map[string]float64{"case study": 2},
		BookingRateMin:    0.3,
		BookingRateMax:    0.7,
		AcceptanceRateMin: 0.5,
		AcceptanceRateMax: 0.9,
		CloseRate:         0.2,
		PaidInFullShare:   0.7,
		SurrogateViewsMin: 500,
		SurrogateViewsMax: 2000,
	}
}

// PriceBook define quanto entra por venda à vista e pela primeira parcela
type PriceBook struct {
	PaidInFull       float64
	FirstInstallment float64
}

func DefaultPriceBook() PriceBook {
	return PriceBook{
		PaidInFull:       5000,
		FirstInstallment: 1000,
	}
}

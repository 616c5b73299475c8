package domain

import "time"

// VideoStats mantém os contadores como strings, do jeito que a plataforma de vídeo devolve
type VideoStats struct {
	ViewCount    string `json:"viewCount"`
	LikeCount    string `json:"likeCount"`
	CommentCount string `json:"commentCount"`
}

type VideoRecord struct {
	VideoID      string      `json:"videoId"`
	Title        string      `json:"title"`
	Description  string      `json:"description"`
	ThumbnailURL string      `json:"thumbnailUrl"`
	PublishedAt  time.Time   `json:"publishedAt"`
	Stats        *VideoStats `json:"stats,omitempty"`
}

// VideoAttribution é o resultado simulado do funil para um vídeo
type VideoAttribution struct {
	VideoID             string  `json:"videoId"`
	ViewCount           int     `json:"viewCount"`
	LeadsGenerated      int     `json:"leadsGenerated"`
	CallsBooked         int     `json:"callsBooked"`
	CallsAccepted       int     `json:"callsAccepted"`
	ClosedDeals         int     `json:"closedDeals"`
	PaidInFullDeals     int     `json:"paidInFullDeals"`
	InstallmentDeals    int     `json:"installmentDeals"`
	Revenue             float64 `json:"revenue"`
	PaidInFullRevenue   float64 `json:"paidInFullRevenue"`
	InstallmentsRevenue float64 `json:"installmentsRevenue"`
	SurrogateViews      bool    `json:"surrogateViews,omitempty"`
}

// CombinedVideoData junta o vídeo com sua atribuição e as métricas derivadas
type CombinedVideoData struct {
	VideoRecord
	ViewCount           int     `json:"viewCount"`
	SurrogateViews      bool    `json:"surrogateViews,omitempty"`
	LeadsGenerated      int     `json:"leadsGenerated"`
	CallsBooked         int     `json:"callsBooked"`
	CallsAccepted       int     `json:"callsAccepted"`
	ClosedDeals         int     `json:"closedDeals"`
	PaidInFullDeals     int     `json:"paidInFullDeals"`
	InstallmentDeals    int     `json:"installmentDeals"`
	Revenue             float64 `json:"revenue"`
	PaidInFullRevenue   float64 `json:"paidInFullRevenue"`
	InstallmentsRevenue float64 `json:"installmentsRevenue"`
	RevenuePerView      float64 `json:"revenuePerView"`
	ViewToCloseRate     float64 `json:"viewToCloseRate"`
}

package simulated

import (
	"time"

	"github.com/vfg2006/funnel-dashboard-api/internal/domain"
)

// Fixture é o trimestre de referência usado na carga inicial do banco e nos testes
func Fixture() Dataset {
	total := func(v float64) *float64 { return &v }

	return Dataset{
		Calls: []domain.CallBookingMonth{
			{Month: "2025-04", CallsBooked: 35, CallsAccepted: 30, CallsShowed: 28, YouTubeViews: 18500, UniqueVisitors: 4200},
			{Month: "2025-05", CallsBooked: 45, CallsAccepted: 38, CallsShowed: 35, YouTubeViews: 22300, UniqueVisitors: 5100},
			{Month: "2025-06", CallsBooked: 55, CallsAccepted: 48, CallsShowed: 44, YouTubeViews: 25000, UniqueVisitors: 5800},
		},
		Payments: []domain.PaymentMonth{
			{
				Month:              "2025-04",
				NewCashCollected:   domain.PaymentSplit{PaidInFull: 15000, Installments: 6000, ByProduct: map[string]float64{ProductCoaching: 15000, ProductCourse: 6000}},
				TotalCashCollected: total(29000),
				Closes:             &domain.PaymentCloses{HighTicket: 4, Discount: 2},
			},
			{
				Month:              "2025-05",
				NewCashCollected:   domain.PaymentSplit{PaidInFull: 20000, Installments: 8000, ByProduct: map[string]float64{ProductCoaching: 20000, ProductCourse: 8000}},
				TotalCashCollected: total(36000),
				Closes:             &domain.PaymentCloses{HighTicket: 5, Discount: 3},
			},
			{
				Month:              "2025-06",
				NewCashCollected:   domain.PaymentSplit{PaidInFull: 25000, Installments: 10000, ByProduct: map[string]float64{ProductCoaching: 25000, ProductCourse: 10000}},
				TotalCashCollected: total(45000),
				Closes:             &domain.PaymentCloses{HighTicket: 6, Discount: 3},
			},
		},
		Videos: []domain.VideoRecord{
			fixtureVideo("fx_video_1", "Case study: scaling to 50k a month", "48210", "2310", time.Date(2025, 4, 3, 15, 0, 0, 0, time.UTC)),
			fixtureVideo("fx_video_2", "How I book 40 calls a month", "21500", "610", time.Date(2025, 4, 21, 15, 0, 0, 0, time.UTC)),
			fixtureVideo("fx_video_3", "Q&A live replay", "9800", "140", time.Date(2025, 5, 9, 15, 0, 0, 0, time.UTC)),
			fixtureVideo("fx_video_4", "Case study: from 0 to first client", "61200", "3020", time.Date(2025, 5, 27, 15, 0, 0, 0, time.UTC)),
			fixtureVideo("fx_video_5", "Offer breakdown", "15400", "390", time.Date(2025, 6, 11, 15, 0, 0, 0, time.UTC)),
			fixtureVideo("fx_video_6", "Behind the scenes", "7300", "95", time.Date(2025, 6, 25, 15, 0, 0, 0, time.UTC)),
		},
	}
}

func fixtureVideo(id, title, views, likes string, published time.Time) domain.VideoRecord {
	return domain.VideoRecord{
		VideoID:      id,
		Title:        title,
		ThumbnailURL: "https://picsum.photos/seed/" + id + "/120/90",
		PublishedAt:  published,
		Stats:        &domain.VideoStats{ViewCount: views, LikeCount: likes, CommentCount: "0"},
	}
}

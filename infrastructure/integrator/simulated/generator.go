package simulated

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/funnel-dashboard-api/internal/config"
	"github.com/vfg2006/funnel-dashboard-api/internal/domain"
	"github.com/vfg2006/funnel-dashboard-api/pkg/utils"
)

// Nomes dos produtos usados no detalhamento de receita
const (
	ProductCoaching = "high_ticket_coaching"
	ProductCourse   = "self_paced_course"
)

// Dataset é um conjunto coerente de séries mensais e vídeos
type Dataset struct {
	Calls    []domain.CallBookingMonth
	Payments []domain.PaymentMonth
	Videos   []domain.VideoRecord
}

// Generator serve dados sintéticos no lugar das plataformas externas.
// O conjunto é gerado uma vez e as chamadas seguintes devolvem cópias dele.
type Generator struct {
	mu      sync.Mutex
	dataset *Dataset
	months  int
	videos  int
	seed    int64
	now     func() time.Time
}

func New(cfg *config.Config) *Generator {
	return &Generator{
		months: cfg.Sources.Months,
		videos: cfg.Sources.MockVideos,
		seed:   cfg.Sources.MockSeed,
		now:    time.Now,
	}
}

// NewFromDataset serve um conjunto fixo, usado em testes e na carga inicial do banco
func NewFromDataset(dataset Dataset) *Generator {
	return &Generator{dataset: &dataset}
}

func (g *Generator) GetMonthlyCalls(ctx context.Context) ([]domain.CallBookingMonth, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ds := g.load()
	return append([]domain.CallBookingMonth(nil), ds.Calls...), nil
}

func (g *Generator) GetMonthlyPayments(ctx context.Context) ([]domain.PaymentMonth, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ds := g.load()
	payments := make([]domain.PaymentMonth, len(ds.Payments))
	for i, p := range ds.Payments {
		payments[i] = copyPayment(p)
	}
	return payments, nil
}

// GetVideosWithStats ignora o canal; os vídeos sintéticos não pertencem a nenhum canal real
func (g *Generator) GetVideosWithStats(ctx context.Context, channelID string) ([]domain.VideoRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ds := g.load()
	videos := make([]domain.VideoRecord, len(ds.Videos))
	for i, v := range ds.Videos {
		videos[i] = v
		if v.Stats != nil {
			stats := *v.Stats
			videos[i].Stats = &stats
		}
	}
	return videos, nil
}

func (g *Generator) load() *Dataset {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.dataset == nil {
		ds := Generate(g.now(), g.months, g.videos, g.seed)
		g.dataset = &ds

		logrus.WithFields(logrus.Fields{
			"months": g.months,
			"videos": g.videos,
			"seed":   g.seed,
		}).Info("simulated: conjunto de dados gerado")
	}

	return g.dataset
}

// Generate monta n meses terminando no mês de ref e a quantidade pedida de vídeos.
// A mesma semente sempre produz o mesmo conjunto.
func Generate(ref time.Time, months, videos int, seed int64) Dataset {
	rnd := rand.New(rand.NewSource(seed))

	ds := Dataset{
		Calls:    make([]domain.CallBookingMonth, 0, months),
		Payments: make([]domain.PaymentMonth, 0, months),
		Videos:   make([]domain.VideoRecord, 0, videos),
	}

	for _, month := range utils.LastMonths(ref, months) {
		views := 10000 + rnd.Intn(15000)
		visitors := floor(float64(views) * between(rnd, 0.1, 0.2))
		booked := floor(float64(visitors) * between(rnd, 0.05, 0.1))
		accepted := floor(float64(booked) * between(rnd, 0.3, 0.7))
		showed := floor(float64(accepted) * between(rnd, 0.8, 1))
		unique := floor(float64(views) * domain.UniqueViewsRatio)

		highTicket := floor(float64(accepted) * between(rnd, 0.2, 0.5))
		discount := floor(float64(accepted) * between(rnd, 0.1, 0.3))
		pif := float64(floor(float64(accepted) * between(rnd, 0.2, 0.5) * 2000))
		installments := float64(floor(float64(accepted) * between(rnd, 0.3, 0.6) * 500))
		// parcelas de meses anteriores entram só no total
		total := pif + installments + float64(floor(installments*between(rnd, 0, 0.5)))

		ds.Calls = append(ds.Calls, domain.CallBookingMonth{
			Month:              month,
			CallsBooked:        booked,
			CallsAccepted:      accepted,
			CallsShowed:        showed,
			YouTubeViews:       views,
			YouTubeUniqueViews: &unique,
			UniqueVisitors:     visitors,
		})

		ds.Payments = append(ds.Payments, domain.PaymentMonth{
			Month: month,
			NewCashCollected: domain.PaymentSplit{
				PaidInFull:   pif,
				Installments: installments,
				ByProduct: map[string]float64{
					ProductCoaching: pif,
					ProductCourse:   installments,
				},
			},
			TotalCashCollected: &total,
			Closes:             &domain.PaymentCloses{HighTicket: highTicket, Discount: discount},
		})
	}

	for i := 1; i <= videos; i++ {
		id := fmt.Sprintf("mock_video_%d", i)
		viewCount := 1000 + rnd.Intn(99001)
		likeCount := floor(float64(viewCount) * float64(10+rnd.Intn(41)) / 1000)
		commentCount := floor(float64(viewCount) * float64(1+rnd.Intn(10)) / 1000)

		ds.Videos = append(ds.Videos, domain.VideoRecord{
			VideoID:      id,
			Title:        fmt.Sprintf("YouTube Video Title %d", i),
			Description:  fmt.Sprintf("This is a mock description for video %d.", i),
			ThumbnailURL: fmt.Sprintf("https://picsum.photos/seed/%s/120/90", id),
			PublishedAt:  ref.AddDate(0, 0, -(1 + rnd.Intn(365))).UTC().Truncate(time.Second),
			Stats: &domain.VideoStats{
				ViewCount:    fmt.Sprintf("%d", viewCount),
				LikeCount:    fmt.Sprintf("%d", likeCount),
				CommentCount: fmt.Sprintf("%d", commentCount),
			},
		})
	}

	return ds
}

func copyPayment(p domain.PaymentMonth) domain.PaymentMonth {
	out := p

	if p.NewCashCollected.ByProduct != nil {
		out.NewCashCollected.ByProduct = make(map[string]float64, len(p.NewCashCollected.ByProduct))
		for k, v := range p.NewCashCollected.ByProduct {
			out.NewCashCollected.ByProduct[k] = v
		}
	}
	if p.TotalCashCollected != nil {
		total := *p.TotalCashCollected
		out.TotalCashCollected = &total
	}
	if p.Closes != nil {
		closes := *p.Closes
		out.Closes = &closes
	}
	if p.HighTicketCloses != nil {
		split := *p.HighTicketCloses
		out.HighTicketCloses = &split
	}
	if p.DiscountCloses != nil {
		split := *p.DiscountCloses
		out.DiscountCloses = &split
	}

	return out
}

func between(rnd *rand.Rand, lo, hi float64) float64 {
	return lo + rnd.Float64()*(hi-lo)
}

func floor(v float64) int {
	return int(math.Floor(v))
}

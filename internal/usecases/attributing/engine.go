// Package attributing simula leads, chamadas e receita gerados por cada vídeo
package attributing

import (
	"fmt"
	"hash/fnv"
	"math"
	"math/rand"
	"sort"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/funnel-dashboard-api/internal/domain"
)

// RandSource fornece números uniformes em [0, 1). *rand.Rand satisfaz a interface.
type RandSource interface {
	Float64() float64
}

// globalSource usa o gerador global do math/rand, seguro para uso concorrente
type globalSource struct{}

func (globalSource) Float64() float64 {
	return rand.Float64()
}

type Engine struct {
	rates    Rates
	prices   PriceBook
	source   RandSource
	seed     int64
	useSeed  bool
	keywords []string
}

type Option func(*Engine)

func WithRates(rates Rates) Option {
	return func(e *Engine) {
		e.rates = rates
	}
}

func WithPriceBook(prices PriceBook) Option {
	return func(e *Engine) {
		e.prices = prices
	}
}

// WithRandSource fixa a sequência de números usada por todos os vídeos
func WithRandSource(source RandSource) Option {
	return func(e *Engine) {
		e.source = source
		e.useSeed = false
	}
}

// WithSeed deriva um gerador por vídeo a partir da semente e do ID do vídeo,
// então o mesmo vídeo sempre recebe o mesmo resultado.
func WithSeed(seed int64) Option {
	return func(e *Engine) {
		e.seed = seed
		e.useSeed = true
	}
}

func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		rates:  DefaultRates(),
		prices: DefaultPriceBook(),
		source: globalSource{},
	}

	for _, opt := range opts {
		opt(e)
	}

	e.keywords = make([]string, 0, len(e.rates.KeywordBoosts))
	for keyword := range e.rates.KeywordBoosts {
		e.keywords = append(e.keywords, keyword)
	}
	sort.Strings(e.keywords)

	return e
}

// AttributeAll atribui resultados a todos os vídeos, na mesma ordem da entrada
func (e *Engine) AttributeAll(videos []domain.VideoRecord, report *domain.PipelineReport) []domain.VideoAttribution {
	attributions := make([]domain.VideoAttribution, 0, len(videos))
	for _, video := range videos {
		attributions = append(attributions, e.Attribute(video, report))
	}
	return attributions
}

// Attribute simula o funil de um vídeo:
// views -> leads -> chamadas agendadas -> chamadas aceitas -> vendas -> receita.
// Cada etapa é arredondada para baixo, então nenhuma etapa passa da anterior.
func (e *Engine) Attribute(video domain.VideoRecord, report *domain.PipelineReport) domain.VideoAttribution {
	rnd := e.sourceFor(video.VideoID)
	result := domain.VideoAttribution{VideoID: video.VideoID}

	var viewCount, likeCount string
	if video.Stats != nil {
		viewCount = video.Stats.ViewCount
		likeCount = video.Stats.LikeCount
	}

	views, ok := parseCount(viewCount)
	if !ok {
		views = e.surrogateViews(rnd)
		result.SurrogateViews = true
		report.Add(domain.FallbackViewCountSurrogate, video.VideoID, fmt.Sprintf("viewCount %q substituído por %d", viewCount, views))
		logrus.WithFields(logrus.Fields{
			"video_id":   video.VideoID,
			"view_count": viewCount,
			"surrogate":  views,
		}).Debug("attribution: contagem de views inválida, usando valor substituto")
	}

	result.ViewCount = int(views)
	if views == 0 {
		return result
	}

	likes, ok := parseCount(likeCount)
	if !ok {
		if likeCount != "" {
			report.Add(domain.FallbackLikeCountInvalid, video.VideoID, fmt.Sprintf("likeCount %q ignorado", likeCount))
		}
		likes = 0
	}

	leadRate := math.Min(1, e.rates.BaseLeadRate*e.boost(video.Title, views, likes))

	result.LeadsGenerated = floor(float64(views) * leadRate)
	result.CallsBooked = floor(float64(result.LeadsGenerated) * uniform(rnd, e.rates.BookingRateMin, e.rates.BookingRateMax))
	result.CallsAccepted = floor(float64(result.CallsBooked) * uniform(rnd, e.rates.AcceptanceRateMin, e.rates.AcceptanceRateMax))
	result.ClosedDeals = floor(float64(result.CallsAccepted) * e.rates.CloseRate)
	result.PaidInFullDeals = floor(float64(result.ClosedDeals) * e.rates.PaidInFullShare)
	result.InstallmentDeals = result.ClosedDeals - result.PaidInFullDeals

	result.PaidInFullRevenue = float64(result.PaidInFullDeals) * e.prices.PaidInFull
	result.InstallmentsRevenue = float64(result.InstallmentDeals) * e.prices.FirstInstallment
	result.Revenue = result.PaidInFullRevenue + result.InstallmentsRevenue

	return result
}

func (e *Engine) boost(title string, views, likes int64) float64 {
	boost := 1.0

	if views > e.rates.HighViewThreshold {
		boost *= e.rates.HighViewBoost
	}
	if likes > e.rates.HighLikeThreshold {
		boost *= e.rates.HighLikeBoost
	}

	lowerTitle := strings.ToLower(title)
	for _, keyword := range e.keywords {
		if strings.Contains(lowerTitle, strings.ToLower(keyword)) {
			boost *= e.rates.KeywordBoosts[keyword]
		}
	}

	return boost
}

func (e *Engine) surrogateViews(rnd RandSource) int64 {
	span := e.rates.SurrogateViewsMax - e.rates.SurrogateViewsMin + 1
	if span <= 0 {
		return e.rates.SurrogateViewsMin
	}
	return e.rates.SurrogateViewsMin + int64(math.Floor(rnd.Float64()*float64(span)))
}

func (e *Engine) sourceFor(videoID string) RandSource {
	if !e.useSeed {
		return e.source
	}

	h := fnv.New64a()
	_, _ = h.Write([]byte(videoID))
	return rand.New(rand.NewSource(e.seed ^ int64(h.Sum64())))
}

// parseCount aceita apenas inteiros decimais não negativos
func parseCount(raw string) (int64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}

	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n < 0 {
		return 0, false
	}

	return n, true
}

func uniform(rnd RandSource, lo, hi float64) float64 {
	return lo + rnd.Float64()*(hi-lo)
}

func floor(f float64) int {
	if f <= 0 || math.IsNaN(f) {
		return 0
	}
	return int(math.Floor(f))
}

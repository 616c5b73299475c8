package reporting

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/funnel-dashboard-api/infrastructure/cache"
	"github.com/vfg2006/funnel-dashboard-api/internal/config"
	"github.com/vfg2006/funnel-dashboard-api/internal/domain"
	"github.com/vfg2006/funnel-dashboard-api/internal/usecases/attributing"
	"github.com/vfg2006/funnel-dashboard-api/internal/usecases/reporting/mocks"
	"go.uber.org/mock/gomock"
)

const channelID = "UC-test"

func testConfig() *config.Config {
	return &config.Config{YouTube: config.YouTube{ChannelID: channelID}}
}

func fixtureCalls() []domain.CallBookingMonth {
	return []domain.CallBookingMonth{
		{Month: "2025-04", CallsBooked: 35, CallsAccepted: 30, YouTubeViews: 18500, UniqueVisitors: 4200},
		{Month: "2025-05", CallsBooked: 45, CallsAccepted: 38, YouTubeViews: 22300, UniqueVisitors: 5100},
		{Month: "2025-06", CallsBooked: 55, CallsAccepted: 48, YouTubeViews: 25000, UniqueVisitors: 5800},
	}
}

func fixturePayments() []domain.PaymentMonth {
	total := func(f float64) *float64 { return &f }
	return []domain.PaymentMonth{
		{Month: "2025-04", NewCashCollected: domain.PaymentSplit{PaidInFull: 15000, Installments: 6000}, TotalCashCollected: total(29000), Closes: &domain.PaymentCloses{HighTicket: 4, Discount: 2}},
		{Month: "2025-05", NewCashCollected: domain.PaymentSplit{PaidInFull: 20000, Installments: 8000}, TotalCashCollected: total(36000), Closes: &domain.PaymentCloses{HighTicket: 5, Discount: 3}},
		{Month: "2025-06", NewCashCollected: domain.PaymentSplit{PaidInFull: 25000, Installments: 10000}, TotalCashCollected: total(45000), Closes: &domain.PaymentCloses{HighTicket: 6, Discount: 3}},
	}
}

func fixtureVideos() []domain.VideoRecord {
	videos := make([]domain.VideoRecord, 0, 6)
	for i := 1; i <= 6; i++ {
		videos = append(videos, domain.VideoRecord{
			VideoID:     fmt.Sprintf("vid-%d", i),
			Title:       fmt.Sprintf("Episode %d", i),
			PublishedAt: time.Date(2025, time.Month(3+i/2), 1, 0, 0, 0, 0, time.UTC),
			Stats:       &domain.VideoStats{ViewCount: fmt.Sprintf("%d", i*100), LikeCount: "10"},
		})
	}
	return videos
}

type fixture struct {
	videos   *mocks.MockVideoSource
	calls    *mocks.MockCallBookingSource
	payments *mocks.MockPaymentSource
	service  *Service
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)

	f := &fixture{
		videos:   mocks.NewMockVideoSource(ctrl),
		calls:    mocks.NewMockCallBookingSource(ctrl),
		payments: mocks.NewMockPaymentSource(ctrl),
	}

	f.service = NewService(
		testConfig(),
		f.videos,
		f.calls,
		f.payments,
		attributing.NewEngine(attributing.WithSeed(1)),
	).(*Service)

	return f
}

func (f *fixture) expectSources(times int) {
	f.videos.EXPECT().GetVideosWithStats(gomock.Any(), channelID).Return(fixtureVideos(), nil).Times(times)
	f.calls.EXPECT().GetMonthlyCalls(gomock.Any()).Return(fixtureCalls(), nil).Times(times)
	f.payments.EXPECT().GetMonthlyPayments(gomock.Any()).Return(fixturePayments(), nil).Times(times)
}

func TestService_Refresh(t *testing.T) {
	f := newFixture(t)
	f.expectSources(1)

	snapshot, err := f.service.Refresh(context.Background())
	require.NoError(t, err)
	require.NotNil(t, snapshot)

	assert.NotEmpty(t, snapshot.ID)
	assert.Equal(t, channelID, snapshot.ChannelID)

	// views mensais reconciliadas com os vídeos: duas faixas de dois vídeos por mês
	require.Len(t, snapshot.Months, 3)
	assert.Equal(t, 300, snapshot.Months[0].VideoViews)
	assert.Equal(t, 700, snapshot.Months[1].VideoViews)
	assert.Equal(t, 1100, snapshot.Months[2].VideoViews)
	assert.Equal(t, 880, snapshot.Months[2].UniqueVideoViews)

	assert.True(t, snapshot.Months[0].Changes.IsEmpty())
	require.NotNil(t, snapshot.Months[1].Changes.CallsBooked)
	assert.InDelta(t, 28.5714285714, *snapshot.Months[1].Changes.CallsBooked, 1e-6)
	assert.InDelta(t, 700.0/3.0-100, *snapshot.Months[1].Changes.VideoViews, 1e-6)

	require.Len(t, snapshot.Videos, 6)
	for _, v := range snapshot.Videos {
		assert.GreaterOrEqual(t, v.LeadsGenerated, v.CallsBooked)
		assert.GreaterOrEqual(t, v.CallsBooked, v.CallsAccepted)
		assert.GreaterOrEqual(t, v.CallsAccepted, v.ClosedDeals)
	}

	require.Len(t, snapshot.Funnel, 5)
	assert.Equal(t, domain.StageVideoViews, snapshot.Funnel[0].Stage)
	assert.Equal(t, 1100, snapshot.Funnel[0].Count)
	assert.Equal(t, 9, snapshot.Funnel[4].Count)

	assert.Len(t, snapshot.Countries, len(domain.DefaultCountryShares))
	assert.Len(t, snapshot.Cards, 7)
	assert.NotNil(t, snapshot.TopPerformer)

	// youtube_unique_views ausente nas três linhas
	assert.Len(t, snapshot.Fallbacks, 3)
}

func TestService_RefreshIsDeterministicWithSeed(t *testing.T) {
	f := newFixture(t)
	f.expectSources(2)

	first, err := f.service.Refresh(context.Background())
	require.NoError(t, err)
	second, err := f.service.Refresh(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first.Videos, second.Videos)
	assert.Equal(t, first.Months, second.Months)
}

func TestService_RefreshWithoutStats(t *testing.T) {
	f := newFixture(t)

	videos := []domain.VideoRecord{
		{VideoID: "no-stats-1", Title: "Episode 1"},
		{VideoID: "no-stats-2", Title: "Episode 2"},
		{VideoID: "bad-stats", Title: "Episode 3", Stats: &domain.VideoStats{ViewCount: "n/a", LikeCount: "10"}},
	}
	f.videos.EXPECT().GetVideosWithStats(gomock.Any(), channelID).Return(videos, nil)
	f.calls.EXPECT().GetMonthlyCalls(gomock.Any()).Return(fixtureCalls(), nil)
	f.payments.EXPECT().GetMonthlyPayments(gomock.Any()).Return(fixturePayments(), nil)

	snapshot, err := f.service.Refresh(context.Background())
	require.NoError(t, err)
	require.Len(t, snapshot.Videos, 3)
	require.Len(t, snapshot.Months, 3)

	// um vídeo por mês: as views do mês são as views substitutas do vídeo
	videoViews, monthViews := 0, 0
	for i, v := range snapshot.Videos {
		assert.True(t, v.SurrogateViews)
		assert.Greater(t, v.ViewCount, 0)
		assert.Equal(t, snapshot.Months[i].VideoViews, v.ViewCount)
		assert.InDelta(t, v.Revenue/float64(v.ViewCount), v.RevenuePerView, 1e-9)
		assert.InDelta(t, float64(v.ClosedDeals)/float64(v.ViewCount)*100, v.ViewToCloseRate, 1e-9)

		videoViews += v.ViewCount
		monthViews += snapshot.Months[i].VideoViews
	}
	assert.Equal(t, monthViews, videoViews)
}

func TestService_UpstreamFailures(t *testing.T) {
	upstreamErr := errors.New("connection refused")

	tests := []struct {
		name           string
		setup          func(f *fixture)
		expectedSource string
	}{
		{
			name: "Falha na plataforma de vídeo - não deve consultar as outras fontes",
			setup: func(f *fixture) {
				f.videos.EXPECT().GetVideosWithStats(gomock.Any(), channelID).Return(nil, upstreamErr)
			},
			expectedSource: SourceVideos,
		},
		{
			name: "Falha nos agendamentos",
			setup: func(f *fixture) {
				f.videos.EXPECT().GetVideosWithStats(gomock.Any(), channelID).Return(fixtureVideos(), nil)
				f.calls.EXPECT().GetMonthlyCalls(gomock.Any()).Return(nil, upstreamErr)
			},
			expectedSource: SourceCalls,
		},
		{
			name: "Falha nos pagamentos",
			setup: func(f *fixture) {
				f.videos.EXPECT().GetVideosWithStats(gomock.Any(), channelID).Return(fixtureVideos(), nil)
				f.calls.EXPECT().GetMonthlyCalls(gomock.Any()).Return(fixtureCalls(), nil)
				f.payments.EXPECT().GetMonthlyPayments(gomock.Any()).Return(nil, upstreamErr)
			},
			expectedSource: SourcePayments,
		},
		{
			name: "Erro já tipado pela integração - deve preservar a fonte original",
			setup: func(f *fixture) {
				f.videos.EXPECT().GetVideosWithStats(gomock.Any(), channelID).
					Return(nil, domain.NewUpstreamError("youtube-quota", upstreamErr))
			},
			expectedSource: "youtube-quota",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setup(f)

			_, err := f.service.GetMonthlySeriesWithChanges(context.Background())
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrUpstreamUnavailable))
			assert.True(t, errors.Is(err, upstreamErr))

			var typed *domain.UpstreamError
			require.True(t, errors.As(err, &typed))
			assert.Equal(t, tt.expectedSource, typed.Source)
			assert.Contains(t, typed.Message, "connection refused")
		})
	}
}

func TestService_WithCache(t *testing.T) {
	f := newFixture(t)
	f.expectSources(1)
	f.service.WithCache(cache.NewSnapshotCache(time.Minute))

	ctx := context.Background()

	months, err := f.service.GetMonthlySeriesWithChanges(ctx)
	require.NoError(t, err)
	videos, err := f.service.GetCombinedVideoData(ctx)
	require.NoError(t, err)
	funnel, err := f.service.GetFunnel(ctx)
	require.NoError(t, err)
	countries, err := f.service.GetCountryBreakdown(ctx)
	require.NoError(t, err)
	cards, err := f.service.GetMetricCards(ctx)
	require.NoError(t, err)
	top, err := f.service.GetTopPerformer(ctx)
	require.NoError(t, err)

	assert.Len(t, months, 3)
	assert.Len(t, videos, 6)
	assert.Len(t, funnel, 5)
	assert.NotEmpty(t, countries)
	assert.Len(t, cards, 7)
	assert.NotNil(t, top)
}

func TestService_WithCacheMock(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newFixture(t)
	snapshotCache := mocks.NewMockSnapshotCache(ctrl)
	f.service.WithCache(snapshotCache)

	cached := &domain.DashboardSnapshot{ID: "cached", Cards: []domain.MetricCard{{Key: "callsBooked"}}}
	snapshotCache.EXPECT().Get(channelID).Return(cached, true)

	cards, err := f.service.GetMetricCards(context.Background())
	require.NoError(t, err)
	assert.Equal(t, cached.Cards, cards)
}

func TestService_RefreshStoresInCache(t *testing.T) {
	f := newFixture(t)
	f.expectSources(2)
	snapshotCache := cache.NewSnapshotCache(time.Hour)
	f.service.WithCache(snapshotCache)

	first, err := f.service.Refresh(context.Background())
	require.NoError(t, err)

	stored, ok := snapshotCache.Get(channelID)
	require.True(t, ok)
	assert.Equal(t, first.ID, stored.ID)

	// Refresh sempre recalcula, mesmo com o cache válido
	second, err := f.service.Refresh(context.Background())
	require.NoError(t, err)
	stored, _ = snapshotCache.Get(channelID)
	assert.Equal(t, second.ID, stored.ID)
}

func TestService_SnapshotJSON(t *testing.T) {
	f := newFixture(t)
	f.expectSources(1)

	snapshot, err := f.service.Refresh(context.Background())
	require.NoError(t, err)

	payload, err := json.Marshal(snapshot.Months)
	require.NoError(t, err)
	assert.Contains(t, string(payload), `"changes":{}`)
	assert.NotContains(t, string(payload), "NaN")
}

func TestBuildMetricCards(t *testing.T) {
	records := []domain.MonthlyRecord{
		{Month: "2025-05", CallsBooked: 45, CallsAccepted: 38, TotalCashCollected: 36000, Closes: domain.Closes{HighTicket: 5, Discount: 0}},
		{Month: "2025-06", CallsBooked: 55, CallsAccepted: 44, TotalCashCollected: 45000, Closes: domain.Closes{HighTicket: 6, Discount: 3}, VideoViews: 25000, SiteVisitors: 5800},
	}

	cards := BuildMetricCards(records)
	require.Len(t, cards, 7)

	byKey := make(map[string]domain.MetricCard, len(cards))
	for _, c := range cards {
		byKey[c.Key] = c
	}

	revenue := byKey["monthlyRecurringRevenue"]
	assert.Equal(t, "$45,000", revenue.Display)
	assert.Equal(t, "+25.0%", revenue.ChangeDisplay)

	showUp := byKey["showUpRate"]
	assert.Equal(t, "80.0%", showUp.Display)

	discount := byKey["discountCloses"]
	assert.Nil(t, discount.Change)
	assert.Equal(t, "—", discount.ChangeDisplay)

	views := byKey["youtubeViews"]
	assert.Equal(t, "25,000", views.Display)

	assert.Empty(t, BuildMetricCards(nil))

	single := BuildMetricCards(records[1:])
	require.Len(t, single, 7)
	assert.Nil(t, single[0].PreviousValue)
	assert.Nil(t, single[0].Change)
}

package reporting

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/funnel-dashboard-api/internal/config"
	"github.com/vfg2006/funnel-dashboard-api/internal/domain"
	"github.com/vfg2006/funnel-dashboard-api/internal/usecases/attributing"
	"github.com/vfg2006/funnel-dashboard-api/internal/usecases/comparing"
	"github.com/vfg2006/funnel-dashboard-api/internal/usecases/normalizing"
	"github.com/vfg2006/funnel-dashboard-api/internal/usecases/reconciling"
	"github.com/vfg2006/funnel-dashboard-api/pkg/utils"
)

const (
	SourceVideos   = "youtube"
	SourceCalls    = "call_booking"
	SourcePayments = "payments"
)

// Service implementa Dashboarder executando o pipeline de métricas do funil
type Service struct {
	cfg      *config.Config
	videos   VideoSource
	calls    CallBookingSource
	payments PaymentSource
	engine   *attributing.Engine
	cache    SnapshotCache
	useCache bool
	now      func() time.Time
}

// NewService cria uma nova instância do serviço de dashboard
func NewService(
	cfg *config.Config,
	videos VideoSource,
	calls CallBookingSource,
	payments PaymentSource,
	engine *attributing.Engine,
) Dashboarder {
	if engine == nil {
		engine = attributing.NewEngine()
	}

	return &Service{
		cfg:      cfg,
		videos:   videos,
		calls:    calls,
		payments: payments,
		engine:   engine,
		useCache: false,
		now:      time.Now,
	}
}

// WithCache habilita o cache de snapshots
func (s *Service) WithCache(cache SnapshotCache) *Service {
	s.cache = cache
	s.useCache = cache != nil
	return s
}

func (s *Service) channelID() string {
	if s.cfg == nil {
		return ""
	}
	return s.cfg.YouTube.ChannelID
}

func (s *Service) GetMonthlySeriesWithChanges(ctx context.Context) ([]domain.MonthlyRecordWithChanges, error) {
	snapshot, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return snapshot.Months, nil
}

func (s *Service) GetCombinedVideoData(ctx context.Context) ([]domain.CombinedVideoData, error) {
	snapshot, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return snapshot.Videos, nil
}

func (s *Service) GetFunnel(ctx context.Context) ([]domain.FunnelStage, error) {
	snapshot, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return snapshot.Funnel, nil
}

func (s *Service) GetCountryBreakdown(ctx context.Context) ([]domain.CountryBreakdown, error) {
	snapshot, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return snapshot.Countries, nil
}

func (s *Service) GetMetricCards(ctx context.Context) ([]domain.MetricCard, error) {
	snapshot, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return snapshot.Cards, nil
}

func (s *Service) GetTopPerformer(ctx context.Context) (*domain.CombinedVideoData, error) {
	snapshot, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return snapshot.TopPerformer, nil
}

// snapshot lê do cache quando habilitado e recalcula quando o snapshot expirou
func (s *Service) snapshot(ctx context.Context) (*domain.DashboardSnapshot, error) {
	if s.useCache {
		if cached, ok := s.cache.Get(s.channelID()); ok {
			logrus.WithField("snapshot_id", cached.ID).Debug("dashboard: snapshot servido do cache")
			return cached, nil
		}
	}

	return s.Refresh(ctx)
}

// Refresh busca as três fontes e executa o pipeline completo:
// normalização, atribuição, reconciliação, variações e métricas derivadas.
func (s *Service) Refresh(ctx context.Context) (*domain.DashboardSnapshot, error) {
	startTime := s.now()
	channelID := s.channelID()

	videos, err := s.videos.GetVideosWithStats(ctx, channelID)
	if err != nil {
		return nil, errors.Wrap(upstream(SourceVideos, err), "erro ao buscar vídeos do canal")
	}

	calls, err := s.calls.GetMonthlyCalls(ctx)
	if err != nil {
		return nil, errors.Wrap(upstream(SourceCalls, err), "erro ao buscar agendamentos mensais")
	}

	payments, err := s.payments.GetMonthlyPayments(ctx)
	if err != nil {
		return nil, errors.Wrap(upstream(SourcePayments, err), "erro ao buscar pagamentos mensais")
	}

	report := domain.NewPipelineReport()

	monthly := normalizing.Normalize(calls, payments, report)
	attributions := s.engine.AttributeAll(videos, report)
	reconciling.Reconcile(monthly, attributions)

	combined := attributing.Combine(videos, attributions)

	snapshot := &domain.DashboardSnapshot{
		ChannelID:    channelID,
		GeneratedAt:  s.now(),
		Months:       comparing.WithChanges(monthly),
		Videos:       combined,
		Funnel:       []domain.FunnelStage{},
		Countries:    domain.AllocateByCountry(attributing.Totals(attributions), domain.DefaultCountryShares),
		Cards:        BuildMetricCards(monthly),
		TopPerformer: attributing.TopPerformer(combined),
		Fallbacks:    report.Fallbacks,
	}

	if len(monthly) > 0 {
		snapshot.Funnel = domain.BuildFunnel(monthly[len(monthly)-1])
	}

	id, err := utils.GenerateID()
	if err != nil {
		logrus.WithError(err).Warn("dashboard: erro ao gerar ID do snapshot")
	}
	snapshot.ID = id

	fields := logrus.Fields{
		"snapshot_id": snapshot.ID,
		"channel_id":  channelID,
		"months":      len(monthly),
		"videos":      len(videos),
		"fallbacks":   report.Count(),
		"duration":    s.now().Sub(startTime).String(),
	}
	if report.Count() > 0 {
		for kind, count := range report.CountByKind() {
			fields["fallback_"+string(kind)] = count
		}
		logrus.WithFields(fields).Warn("dashboard: pipeline concluído com valores substituídos")
	} else {
		logrus.WithFields(fields).Info("dashboard: pipeline concluído")
	}

	if s.useCache {
		s.cache.Set(channelID, snapshot)
	}

	return snapshot, nil
}

// upstream garante que a falha da fonte seja reconhecida como ErrUpstreamUnavailable
func upstream(source string, err error) error {
	var upstreamErr *domain.UpstreamError
	if errors.As(err, &upstreamErr) {
		return err
	}
	return domain.NewUpstreamError(source, err)
}

package reporting

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

import (
	"context"

	"github.com/vfg2006/funnel-dashboard-api/internal/domain"
)

// VideoSource define a interface para obter os vídeos do canal com estatísticas
type VideoSource interface {
	GetVideosWithStats(ctx context.Context, channelID string) ([]domain.VideoRecord, error)
}

// CallBookingSource define a interface para obter a série mensal de agendamentos
type CallBookingSource interface {
	GetMonthlyCalls(ctx context.Context) ([]domain.CallBookingMonth, error)
}

// PaymentSource define a interface para obter a série mensal de pagamentos
type PaymentSource interface {
	GetMonthlyPayments(ctx context.Context) ([]domain.PaymentMonth, error)
}

// SnapshotCache guarda o último snapshot calculado por canal
type SnapshotCache interface {
	Get(key string) (*domain.DashboardSnapshot, bool)
	Set(key string, snapshot *domain.DashboardSnapshot)
}

// Dashboarder é a interface completa exposta para a API e para o agendador
type Dashboarder interface {
	// GetMonthlySeriesWithChanges retorna a série mensal canônica com variações mês a mês
	GetMonthlySeriesWithChanges(ctx context.Context) ([]domain.MonthlyRecordWithChanges, error)

	// GetCombinedVideoData retorna cada vídeo com sua atribuição e métricas derivadas
	GetCombinedVideoData(ctx context.Context) ([]domain.CombinedVideoData, error)

	GetFunnel(ctx context.Context) ([]domain.FunnelStage, error)
	GetCountryBreakdown(ctx context.Context) ([]domain.CountryBreakdown, error)
	GetMetricCards(ctx context.Context) ([]domain.MetricCard, error)
	GetTopPerformer(ctx context.Context) (*domain.CombinedVideoData, error)

	// Refresh executa o pipeline completo ignorando o cache
	Refresh(ctx context.Context) (*domain.DashboardSnapshot, error)
}

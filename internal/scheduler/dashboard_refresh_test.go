package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/funnel-dashboard-api/internal/config"
	"github.com/vfg2006/funnel-dashboard-api/internal/domain"
	"github.com/vfg2006/funnel-dashboard-api/internal/usecases/reporting/mocks"
	"go.uber.org/mock/gomock"
)

func refreshConfig(enabled bool) *config.Config {
	return &config.Config{DashboardRefresh: config.DashboardRefresh{CronSchedule: "*/5 * * * *", Enabled: enabled}}
}

func TestDashboardRefreshService_Refresh(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(dashboard *mocks.MockDashboarder)
		validate func(t *testing.T, status map[string]any)
	}{
		{
			name: "Atualização bem sucedida registra o snapshot",
			setup: func(dashboard *mocks.MockDashboarder) {
				dashboard.EXPECT().Refresh(gomock.Any()).Return(&domain.DashboardSnapshot{
					ID:        "snap123",
					Months:    make([]domain.MonthlyRecordWithChanges, 3),
					Fallbacks: []domain.Fallback{{Kind: domain.FallbackMonthMismatch, Key: "2025-04"}},
				}, nil)
			},
			validate: func(t *testing.T, status map[string]any) {
				assert.Equal(t, "snap123", status["last_snapshot_id"])
				assert.Equal(t, 1, status["last_fallbacks"])
				assert.Equal(t, "", status["last_error"])
				assert.False(t, status["last_sync_completed_at"].(time.Time).IsZero())
				assert.False(t, status["sync_running"].(bool))
			},
		},
		{
			name: "Falha na atualização registra o erro",
			setup: func(dashboard *mocks.MockDashboarder) {
				dashboard.EXPECT().Refresh(gomock.Any()).Return(nil, domain.NewUpstreamError("payments", errors.New("timeout")))
			},
			validate: func(t *testing.T, status map[string]any) {
				assert.Contains(t, status["last_error"], "payments")
				assert.True(t, status["last_sync_completed_at"].(time.Time).IsZero())
				assert.False(t, status["last_sync_started_at"].(time.Time).IsZero())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			dashboard := mocks.NewMockDashboarder(ctrl)
			tt.setup(dashboard)

			service := NewDashboardRefreshService(dashboard, refreshConfig(true))
			service.refresh(context.Background())

			tt.validate(t, service.GetStatus())
		})
	}
}

func TestDashboardRefreshService_SkipsWhenRunning(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dashboard := mocks.NewMockDashboarder(ctrl)
	dashboard.EXPECT().Refresh(gomock.Any()).Times(0)

	service := NewDashboardRefreshService(dashboard, refreshConfig(true))
	service.syncRunning = true

	service.refresh(context.Background())
	service.TriggerManualSync()

	assert.True(t, service.GetStatus()["sync_running"].(bool))
}

func TestDashboardRefreshService_TriggerManualSync(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	done := make(chan struct{})
	dashboard := mocks.NewMockDashboarder(ctrl)
	dashboard.EXPECT().Refresh(gomock.Any()).DoAndReturn(func(ctx context.Context) (*domain.DashboardSnapshot, error) {
		defer close(done)
		return &domain.DashboardSnapshot{ID: "manual"}, nil
	})

	service := NewDashboardRefreshService(dashboard, refreshConfig(false))
	service.TriggerManualSync()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("atualização manual não executou")
	}

	assert.Eventually(t, func() bool {
		return service.GetStatus()["last_snapshot_id"] == "manual"
	}, time.Second, 10*time.Millisecond)
}

func TestDashboardRefreshService_Start(t *testing.T) {
	t.Run("Desabilitado não agenda nada", func(t *testing.T) {
		service := NewDashboardRefreshService(nil, refreshConfig(false))
		require.NoError(t, service.Start(context.Background()))
		assert.Zero(t, service.scheduler.Len())
	})

	t.Run("Cron inválido retorna erro", func(t *testing.T) {
		cfg := refreshConfig(true)
		cfg.DashboardRefresh.CronSchedule = "não é cron"

		service := NewDashboardRefreshService(nil, cfg)
		assert.Error(t, service.Start(context.Background()))
	})

	t.Run("Habilitado agenda e para com o contexto", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())

		service := NewDashboardRefreshService(nil, refreshConfig(true))
		require.NoError(t, service.Start(ctx))
		assert.Equal(t, 1, service.scheduler.Len())

		cancel()
		assert.Eventually(t, func() bool {
			return !service.scheduler.IsRunning()
		}, time.Second, 10*time.Millisecond)
	})
}

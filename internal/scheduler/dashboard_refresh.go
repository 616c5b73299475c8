package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/funnel-dashboard-api/internal/config"
	"github.com/vfg2006/funnel-dashboard-api/internal/usecases/reporting"
)

const refreshTimeout = 2 * time.Minute

// DashboardRefreshConfig representa a configuração do agendador de atualização do painel
type DashboardRefreshConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// DashboardRefreshService recalcula o snapshot do painel periodicamente, mantendo o cache aquecido
type DashboardRefreshService struct {
	scheduler           *gocron.Scheduler
	config              DashboardRefreshConfig
	dashboard           reporting.Dashboarder
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSnapshotID      string
	lastFallbacks       int
	lastError           string
}

func NewDashboardRefreshService(dashboard reporting.Dashboarder, appConfig *config.Config) *DashboardRefreshService {
	refreshConfig := DashboardRefreshConfig{
		CronSchedule: appConfig.DashboardRefresh.CronSchedule,
		SyncEnabled:  appConfig.DashboardRefresh.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": refreshConfig.CronSchedule,
		"sync_enabled":  refreshConfig.SyncEnabled,
	}).Info("Configuração do agendador de atualização do painel carregada")

	return &DashboardRefreshService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    refreshConfig,
		dashboard: dashboard,
	}
}

// Start inicia o agendador
func (s *DashboardRefreshService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Atualização agendada do painel desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de atualização do painel")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.refresh(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar atualização do painel: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de atualização do painel")
		s.scheduler.Stop()
	}()

	return nil
}

// refresh roda o pipeline completo uma vez; execuções concorrentes são ignoradas
func (s *DashboardRefreshService) refresh(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Atualização do painel já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	startTime := time.Now()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	ctx, cancel := context.WithTimeout(ctx, refreshTimeout)
	defer cancel()

	snapshot, err := s.dashboard.Refresh(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao atualizar o painel")

		s.syncMutex.Lock()
		s.lastError = err.Error()
		s.syncMutex.Unlock()
		return
	}

	logrus.WithFields(logrus.Fields{
		"duration":    time.Since(startTime).String(),
		"snapshot_id": snapshot.ID,
		"months":      len(snapshot.Months),
		"videos":      len(snapshot.Videos),
		"fallbacks":   len(snapshot.Fallbacks),
	}).Info("Atualização do painel concluída")

	s.syncMutex.Lock()
	s.lastSyncCompletedAt = time.Now()
	s.lastSnapshotID = snapshot.ID
	s.lastFallbacks = len(snapshot.Fallbacks)
	s.lastError = ""
	s.syncMutex.Unlock()
}

// TriggerManualSync inicia manualmente uma atualização do painel
func (s *DashboardRefreshService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Atualização do painel já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando atualização manual do painel")
	go s.refresh(context.Background())
}

// GetStatus retorna o status atual da atualização
func (s *DashboardRefreshService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_running":           s.syncRunning,
		"sync_cron":              s.config.CronSchedule,
		"sync_enabled":           s.config.SyncEnabled,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_snapshot_id":       s.lastSnapshotID,
		"last_fallbacks":         s.lastFallbacks,
		"last_error":             s.lastError,
	}
}

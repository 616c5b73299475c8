package main

import (
	"context"
	"os"
	"path"
	"runtime"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/funnel-dashboard-api/infrastructure/cache"
	"github.com/vfg2006/funnel-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/funnel-dashboard-api/infrastructure/integrator/simulated"
	"github.com/vfg2006/funnel-dashboard-api/infrastructure/integrator/youtube"
	"github.com/vfg2006/funnel-dashboard-api/infrastructure/integrator/youtube/youtubeclient"
	"github.com/vfg2006/funnel-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/funnel-dashboard-api/internal/api"
	"github.com/vfg2006/funnel-dashboard-api/internal/api/handler"
	"github.com/vfg2006/funnel-dashboard-api/internal/config"
	"github.com/vfg2006/funnel-dashboard-api/internal/scheduler"
	"github.com/vfg2006/funnel-dashboard-api/internal/usecases/attributing"
	"github.com/vfg2006/funnel-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/funnel-dashboard-api/pkg/log"
)

func main() {
	changeToSourceDir()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	generator := simulated.New(cfg)

	var (
		videoSource   reporting.VideoSource       = generator
		callSource    reporting.CallBookingSource = generator
		paymentSource reporting.PaymentSource     = generator
		checks        []handler.HealthCheck
	)

	if cfg.Sources.Mode == config.SourceModePostgres {
		pgConn := pgconn(ctx, cfg.Database)
		defer pgConn.Close()

		callSource = repository.NewCallBookingRepository(pgConn, cfg.Sources.Months)
		paymentSource = repository.NewPaymentRepository(pgConn, cfg.Sources.Months)
		checks = append(checks, handler.HealthCheck{Name: "postgres", Check: pgConn.Ping})
	}

	if cfg.YouTube.APIKey != "" {
		youtubeClient := youtubeclient.NewClient(cfg)
		videoSource = youtube.New(cfg, youtubeClient)
		logrus.WithField("channel_id", cfg.YouTube.ChannelID).Info("Vídeos carregados da YouTube Data API")
	} else {
		logrus.Info("YOUTUBE_API_KEY ausente, usando vídeos simulados")
	}

	engine := attributing.NewEngine(attributionOptions(cfg)...)

	dashboard := reporting.NewService(cfg, videoSource, callSource, paymentSource, engine)
	if cfg.Cache.TTL > 0 {
		dashboard = dashboard.(*reporting.Service).WithCache(cache.NewSnapshotCache(cfg.Cache.TTL))
	}

	refreshService := scheduler.NewDashboardRefreshService(dashboard, cfg)
	if err := refreshService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de atualização do painel")
	} else {
		logrus.Info("Agendador de atualização do painel iniciado com sucesso")
	}

	server, err := api.New(cfg, dashboard, refreshService, checks...)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

func attributionOptions(cfg *config.Config) []attributing.Option {
	opts := []attributing.Option{
		attributing.WithPriceBook(attributing.PriceBook{
			PaidInFull:       cfg.Attribution.PaidInFullPrice,
			FirstInstallment: cfg.Attribution.FirstInstallmentPrice,
		}),
	}

	if cfg.Attribution.Deterministic {
		opts = append(opts, attributing.WithSeed(cfg.Attribution.Seed))
	}

	return opts
}

// changeToSourceDir permite encontrar o .env ao rodar com go run de qualquer diretório
func changeToSourceDir() {
	_, file, _, _ := runtime.Caller(0)
	if err := os.Chdir(path.Dir(file)); err != nil {
		logrus.WithError(err).Debug("Não foi possível mudar para o diretório do binário")
	}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}

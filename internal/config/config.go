package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	SourceModeMock     = "mock"
	SourceModePostgres = "postgres"
)

type Config struct {
	App              App              `mapstructure:",squash"`
	Server           Server           `mapstructure:",squash"`
	Database         Database         `mapstructure:",squash"`
	YouTube          YouTube          `mapstructure:",squash"`
	Sources          Sources          `mapstructure:",squash"`
	Attribution      Attribution      `mapstructure:",squash"`
	Cache            Cache            `mapstructure:",squash"`
	DashboardRefresh DashboardRefresh `mapstructure:",squash"`
	AllowedOrigins   []string         `mapstructure:"allowed_origins"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type YouTube struct {
	BaseURL       string        `mapstructure:"youtube_base_url"`
	APIKey        string        `mapstructure:"youtube_api_key"`
	ChannelID     string        `mapstructure:"youtube_channel_id"`
	MaxResults    int           `mapstructure:"youtube_max_results"`
	RetryAttempts int           `mapstructure:"youtube_retry_attempts"`
	RetryDelay    time.Duration `mapstructure:"youtube_retry_delay"`
	DailyQuota    int           `mapstructure:"youtube_daily_quota"`
}

// Sources define de onde vêm as séries de agendamentos e pagamentos
type Sources struct {
	Mode       string `mapstructure:"sources_mode"`
	Months     int    `mapstructure:"sources_months"`
	MockVideos int    `mapstructure:"sources_mock_videos"`
	MockSeed   int64  `mapstructure:"sources_mock_seed"`
}

type Attribution struct {
	Seed                  int64   `mapstructure:"attribution_seed"`
	Deterministic         bool    `mapstructure:"attribution_deterministic"`
	PaidInFullPrice       float64 `mapstructure:"attribution_paid_in_full_price"`
	FirstInstallmentPrice float64 `mapstructure:"attribution_first_installment_price"`
}

type Cache struct {
	TTL time.Duration `mapstructure:"cache_ttl"`
}

type DashboardRefresh struct {
	CronSchedule string `mapstructure:"dashboard_refresh_cron"`
	Enabled      bool   `mapstructure:"dashboard_refresh_enabled"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/funnel?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("YOUTUBE_BASE_URL", "https://www.googleapis.com/youtube/v3")
	viper.SetDefault("YOUTUBE_API_KEY", "")
	viper.SetDefault("YOUTUBE_CHANNEL_ID", "")
	viper.SetDefault("YOUTUBE_MAX_RESULTS", 50)    // limite da search.list
	viper.SetDefault("YOUTUBE_RETRY_ATTEMPTS", 3)  // tentativas por requisição
	viper.SetDefault("YOUTUBE_RETRY_DELAY", "1s")  // espera entre tentativas
	viper.SetDefault("YOUTUBE_DAILY_QUOTA", 10000) // unidades por dia

	// mock usa dados gerados; postgres lê as tabelas exportadas das plataformas
	viper.SetDefault("SOURCES_MODE", SourceModeMock)
	viper.SetDefault("SOURCES_MONTHS", 6)
	viper.SetDefault("SOURCES_MOCK_VIDEOS", 12)
	viper.SetDefault("SOURCES_MOCK_SEED", 2025)

	viper.SetDefault("ATTRIBUTION_SEED", 42)
	viper.SetDefault("ATTRIBUTION_DETERMINISTIC", true)
	viper.SetDefault("ATTRIBUTION_PAID_IN_FULL_PRICE", 5000)
	viper.SetDefault("ATTRIBUTION_FIRST_INSTALLMENT_PRICE", 1000)

	viper.SetDefault("CACHE_TTL", "5m")

	viper.SetDefault("DASHBOARD_REFRESH_CRON", "*/5 * * * *") // A cada 5 minutos
	viper.SetDefault("DASHBOARD_REFRESH_ENABLED", false)

	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	if err := decode(config); err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func decode(config *Config) error {
	return viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
}

// Validate verifica combinações de configuração que impedem o pipeline de rodar
func (c *Config) Validate() error {
	switch c.Sources.Mode {
	case SourceModeMock, SourceModePostgres:
	default:
		return fmt.Errorf("SOURCES_MODE inválido: %q (use %s ou %s)", c.Sources.Mode, SourceModeMock, SourceModePostgres)
	}

	if c.YouTube.MaxResults <= 0 || c.YouTube.MaxResults > 50 {
		return fmt.Errorf("YOUTUBE_MAX_RESULTS deve estar entre 1 e 50, recebido %d", c.YouTube.MaxResults)
	}

	if c.Sources.Months <= 0 {
		return fmt.Errorf("SOURCES_MONTHS deve ser positivo, recebido %d", c.Sources.Months)
	}

	if c.Cache.TTL < 0 {
		return fmt.Errorf("CACHE_TTL não pode ser negativo")
	}

	return nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}

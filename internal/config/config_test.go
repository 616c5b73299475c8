package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_Defaults(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	SetDefaults()

	cfg := &Config{}
	require.NoError(t, decode(cfg))

	assert.Equal(t, "8000", cfg.Server.Port)
	assert.Equal(t, "https://www.googleapis.com/youtube/v3", cfg.YouTube.BaseURL)
	assert.Equal(t, 50, cfg.YouTube.MaxResults)
	assert.Equal(t, 3, cfg.YouTube.RetryAttempts)
	assert.Equal(t, time.Second, cfg.YouTube.RetryDelay)
	assert.Equal(t, 10000, cfg.YouTube.DailyQuota)
	assert.Equal(t, SourceModeMock, cfg.Sources.Mode)
	assert.Equal(t, int64(42), cfg.Attribution.Seed)
	assert.True(t, cfg.Attribution.Deterministic)
	assert.Equal(t, 5000.0, cfg.Attribution.PaidInFullPrice)
	assert.Equal(t, 5*time.Minute, cfg.Cache.TTL)
	assert.Equal(t, []string{"http://localhost:3000", "http://localhost:5173"}, cfg.AllowedOrigins)
	assert.NoError(t, cfg.Validate())
}

func TestDecode_EnvironmentOverrides(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	t.Setenv("SOURCES_MODE", SourceModePostgres)
	t.Setenv("CACHE_TTL", "30s")
	t.Setenv("YOUTUBE_CHANNEL_ID", "UC123")

	SetDefaults()
	viper.AutomaticEnv()

	cfg := &Config{}
	require.NoError(t, decode(cfg))

	assert.Equal(t, SourceModePostgres, cfg.Sources.Mode)
	assert.Equal(t, 30*time.Second, cfg.Cache.TTL)
	assert.Equal(t, "UC123", cfg.YouTube.ChannelID)
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Sources: Sources{Mode: SourceModeMock, Months: 6},
			YouTube: YouTube{MaxResults: 50},
			Cache:   Cache{TTL: time.Minute},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "configuração válida", mutate: func(c *Config) {}},
		{name: "modo postgres", mutate: func(c *Config) { c.Sources.Mode = SourceModePostgres }},
		{name: "modo desconhecido", mutate: func(c *Config) { c.Sources.Mode = "csv" }, wantErr: true},
		{name: "maxResults acima do limite", mutate: func(c *Config) { c.YouTube.MaxResults = 51 }, wantErr: true},
		{name: "maxResults zerado", mutate: func(c *Config) { c.YouTube.MaxResults = 0 }, wantErr: true},
		{name: "janela de meses zerada", mutate: func(c *Config) { c.Sources.Months = 0 }, wantErr: true},
		{name: "TTL negativo", mutate: func(c *Config) { c.Cache.TTL = -time.Second }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

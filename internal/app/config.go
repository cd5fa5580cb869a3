package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds runtime configuration for the application.
type Config struct {
	AppEnv            string        `envconfig:"APP_ENV" default:"development"`
	AppAddr           string        `envconfig:"APP_ADDR" default:":8080"`
	AppReadTimeout    time.Duration `envconfig:"APP_READ_TIMEOUT" default:"15s"`
	AppWriteTimeout   time.Duration `envconfig:"APP_WRITE_TIMEOUT" default:"15s"`
	AppRequestTimeout time.Duration `envconfig:"APP_REQUEST_TIMEOUT" default:"30s"`

	LogFormat string `envconfig:"LOG_FORMAT" default:"pretty"`
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`

	RedisAddr string        `envconfig:"REDIS_ADDR" default:"127.0.0.1:6379"`
	CacheTTL  time.Duration `envconfig:"CACHE_TTL" default:"10m"`

	GotenbergURL string `envconfig:"GOTENBERG_URL" default:"http://127.0.0.1:3000"`

	// Seed 0 selects a time-based seed.
	Seed             uint64        `envconfig:"INSIGHTS_SEED" default:"0"`
	WindowDays       int           `envconfig:"INSIGHTS_WINDOW_DAYS" default:"30"`
	TrendDays        int           `envconfig:"INSIGHTS_TREND_DAYS" default:"14"`
	RealtimeInterval time.Duration `envconfig:"REALTIME_INTERVAL" default:"5s"`
	WarmupCron       string        `envconfig:"WARMUP_CRON" default:"*/15 * * * *"`
}

// LoadConfig reads configuration from environment variables.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks value ranges that envconfig cannot express.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config: missing")
	}
	if c.WindowDays < 1 {
		return fmt.Errorf("config: INSIGHTS_WINDOW_DAYS must be positive, got %d", c.WindowDays)
	}
	if c.TrendDays < 1 || c.TrendDays > c.WindowDays {
		return fmt.Errorf("config: INSIGHTS_TREND_DAYS must be within 1..%d, got %d", c.WindowDays, c.TrendDays)
	}
	if c.RealtimeInterval < time.Second {
		return fmt.Errorf("config: REALTIME_INTERVAL must be at least 1s, got %s", c.RealtimeInterval)
	}
	if c.CacheTTL < 0 {
		return errors.New("config: CACHE_TTL must not be negative")
	}
	return nil
}

// IsProduction returns true when the application runs in production.
func (c *Config) IsProduction() bool {
	return c != nil && c.AppEnv == "production"
}

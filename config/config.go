package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the service configuration settings.
type Config struct {
	Postgres      PostgresConfig      `yaml:"postgres"`
	HTTP          HTTPConfig          `yaml:"http"`
	Live          LiveConfig          `yaml:"live"`
	Observability ObservabilityConfig `yaml:"observability"`
}

// PostgresConfig holds Postgres configuration.
type PostgresConfig struct {
	DSN string `yaml:"dsn"`
}

// HTTPConfig holds the API server configuration.
type HTTPConfig struct {
	Addr string `yaml:"addr"`
	// SubmitRatePerSecond bounds score submissions across all clients.
	SubmitRatePerSecond float64 `yaml:"submit_rate_per_second"`
	SubmitBurst         int     `yaml:"submit_burst"`
}

// LiveConfig drives the leaderboard refresh loop and display carousel.
type LiveConfig struct {
	// EventID, when set, is the event the live display poller follows.
	EventID        string        `yaml:"event_id"`
	PollInterval   time.Duration `yaml:"poll_interval"`
	CarouselPeriod time.Duration `yaml:"carousel_period"`
}

// ObservabilityConfig holds logging/metrics/tracing configuration.
type ObservabilityConfig struct {
	LogLevel       string `yaml:"log_level"`
	LogFormat      string `yaml:"log_format"` // json|text
	Environment    string `yaml:"environment"`
	MetricsAddress string `yaml:"metrics_address"`
	TracingEnabled bool   `yaml:"tracing_enabled"`
}

// LoadConfig loads the configuration from a YAML file, falling back to
// environment variables when the file is absent. Env vars win over the file.
func LoadConfig(filename string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(filename)
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config: %w", err)
		}
	}

	// --- OVERRIDE WITH ENV VARS IF PRESENT ---
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.Postgres.DSN = v
	}
	if v := os.Getenv("HTTP_ADDR"); v != "" {
		cfg.HTTP.Addr = v
	}
	if v := os.Getenv("LIVE_EVENT_ID"); v != "" {
		cfg.Live.EventID = v
	}
	if v := os.Getenv("LIVE_POLL_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Live.PollInterval = d
		}
	}
	if v := os.Getenv("LIVE_CAROUSEL_PERIOD"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Live.CarouselPeriod = d
		}
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Observability.LogLevel = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.Observability.LogFormat = v
	}
	if v := os.Getenv("ENV"); v != "" {
		cfg.Observability.Environment = v
	}
	if v := os.Getenv("METRICS_ADDRESS"); v != "" {
		cfg.Observability.MetricsAddress = v
	}
	if v := os.Getenv("TRACING_ENABLED"); v != "" {
		cfg.Observability.TracingEnabled = v == "true"
	}
	if v := os.Getenv("SUBMIT_RATE_PER_SECOND"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.HTTP.SubmitRatePerSecond = f
		}
	}
	if v := os.Getenv("SUBMIT_BURST"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.SubmitBurst = n
		}
	}

	cfg.applyDefaults()

	if cfg.Postgres.DSN == "" {
		return nil, fmt.Errorf("postgres DSN is required (set postgres.dsn or DATABASE_URL)")
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.HTTP.Addr == "" {
		c.HTTP.Addr = ":8080"
	}
	if c.HTTP.SubmitRatePerSecond <= 0 {
		c.HTTP.SubmitRatePerSecond = 10
	}
	if c.HTTP.SubmitBurst <= 0 {
		c.HTTP.SubmitBurst = 20
	}
	if c.Live.PollInterval <= 0 {
		c.Live.PollInterval = 15 * time.Second
	}
	if c.Live.CarouselPeriod <= 0 {
		c.Live.CarouselPeriod = 5 * time.Second
	}
	if c.Observability.LogLevel == "" {
		c.Observability.LogLevel = "info"
	}
	if c.Observability.LogFormat == "" {
		c.Observability.LogFormat = "json"
	}
	if c.Observability.Environment == "" {
		c.Observability.Environment = "development"
	}
	if c.Observability.MetricsAddress == "" {
		c.Observability.MetricsAddress = ":9090"
	}
}

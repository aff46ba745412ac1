package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Environment string `yaml:"environment"`
	Server      struct {
		Port            int           `yaml:"port"`
		ReadTimeout     time.Duration `yaml:"read_timeout"`
		WriteTimeout    time.Duration `yaml:"write_timeout"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	} `yaml:"server"`
	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
		Output string `yaml:"output"`
	} `yaml:"log"`
	Metrics struct {
		Enabled bool   `yaml:"enabled"`
		Path    string `yaml:"path"`
	} `yaml:"metrics"`
	History struct {
		Source     string  `yaml:"source"` // synthetic or clickhouse
		Days       int     `yaml:"days"`
		BasePrice  float64 `yaml:"base_price"`
		Drift      float64 `yaml:"drift"`
		Volatility float64 `yaml:"volatility"`
	} `yaml:"history"`
	Forecast struct {
		Seed                    int64              `yaml:"seed"`
		DefaultHorizon          int                `yaml:"default_horizon"`
		MaxHorizon              int                `yaml:"max_horizon"`
		DefaultVolatilityFactor float64            `yaml:"default_volatility_factor"`
		VolatilityFactors       map[string]float64 `yaml:"volatility_factors"`
		Sentiment               struct {
			Mode       string  `yaml:"mode"` // exogenous or stochastic
			Multiplier float64 `yaml:"multiplier"`
		} `yaml:"sentiment"`
	} `yaml:"forecast"`
	ClickHouse struct {
		Host             string        `yaml:"host"`
		Port             int           `yaml:"port"`
		Database         string        `yaml:"database"`
		Table            string        `yaml:"table"`
		User             string        `yaml:"user"`
		Password         string        `yaml:"password"`
		UseHTTP          bool          `yaml:"use_http"`
		DialTimeout      time.Duration `yaml:"dial_timeout"`
		ReadTimeout      time.Duration `yaml:"read_timeout"`
		WriteTimeout     time.Duration `yaml:"write_timeout"`
		MaxExecutionTime time.Duration `yaml:"max_execution_time"`
	} `yaml:"clickhouse"`
}

// Load reads and parses a YAML configuration file.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	// Validate required fields
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &c, nil
}

// LoadWithEnv loads config from YAML and overrides with environment variables.
func LoadWithEnv(path string) (*Config, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}

	// Override with environment variables
	if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			c.Server.Port = p
		}
	}
	if v := os.Getenv("HISTORY_SOURCE"); v != "" {
		c.History.Source = v
	}
	if v := os.Getenv("FORECAST_SEED"); v != "" {
		if s, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Forecast.Seed = s
		}
	}
	if v := os.Getenv("CLICKHOUSE_HOST"); v != "" {
		c.ClickHouse.Host = v
	}
	if v := os.Getenv("CLICKHOUSE_PASSWORD"); v != "" {
		c.ClickHouse.Password = v
	}

	return c, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Environment == "" {
		return fmt.Errorf("environment is required")
	}
	if c.History.Source == "" {
		return fmt.Errorf("history.source is required")
	}
	if c.History.Source != "synthetic" && c.History.Source != "clickhouse" {
		return fmt.Errorf("history.source must be 'synthetic' or 'clickhouse', got '%s'", c.History.Source)
	}
	if c.History.Source == "clickhouse" && c.ClickHouse.Host == "" {
		return fmt.Errorf("clickhouse.host is required when history.source is 'clickhouse'")
	}
	if c.Forecast.DefaultHorizon <= 0 {
		return fmt.Errorf("forecast.default_horizon must be positive")
	}
	if c.Forecast.MaxHorizon > 0 && c.Forecast.MaxHorizon < c.Forecast.DefaultHorizon {
		return fmt.Errorf("forecast.max_horizon must be >= forecast.default_horizon")
	}
	m := c.Forecast.Sentiment.Mode
	if m != "" && m != "exogenous" && m != "stochastic" {
		return fmt.Errorf("forecast.sentiment.mode must be 'exogenous' or 'stochastic', got '%s'", m)
	}
	return nil
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
environment: test
server:
  port: 8080
  read_timeout: 10s
log:
  level: debug
  format: console
history:
  source: synthetic
  days: 60
  base_price: 100.0
forecast:
  seed: 42
  default_horizon: 7
  max_horizon: 30
  default_volatility_factor: 1.0
  volatility_factors:
    ACME: 0.9
  sentiment:
    mode: exogenous
    multiplier: 1.02
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleYAML))
	require.NoError(t, err)

	assert.Equal(t, "test", cfg.Environment)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "synthetic", cfg.History.Source)
	assert.Equal(t, 60, cfg.History.Days)
	assert.Equal(t, int64(42), cfg.Forecast.Seed)
	assert.Equal(t, 7, cfg.Forecast.DefaultHorizon)
	assert.Equal(t, 30, cfg.Forecast.MaxHorizon)
	assert.Equal(t, 0.9, cfg.Forecast.VolatilityFactors["ACME"])
	assert.Equal(t, "exogenous", cfg.Forecast.Sentiment.Mode)
	assert.Equal(t, 1.02, cfg.Forecast.Sentiment.Multiplier)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadInvalidYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "environment: [unclosed"))
	assert.Error(t, err)
}

func TestValidateRejectsBadSource(t *testing.T) {
	_, err := Load(writeConfig(t, `
environment: test
history:
  source: postgres
forecast:
  default_horizon: 7
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "history.source")
}

func TestValidateRequiresClickHouseHost(t *testing.T) {
	_, err := Load(writeConfig(t, `
environment: test
history:
  source: clickhouse
forecast:
  default_horizon: 7
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "clickhouse.host")
}

func TestValidateHorizonBounds(t *testing.T) {
	_, err := Load(writeConfig(t, `
environment: test
history:
  source: synthetic
forecast:
  default_horizon: 0
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "default_horizon")

	_, err = Load(writeConfig(t, `
environment: test
history:
  source: synthetic
forecast:
  default_horizon: 30
  max_horizon: 7
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "max_horizon")
}

func TestValidateRejectsBadSentimentMode(t *testing.T) {
	_, err := Load(writeConfig(t, `
environment: test
history:
  source: synthetic
forecast:
  default_horizon: 7
  sentiment:
    mode: oracle
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sentiment.mode")
}

func TestLoadWithEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9191")
	t.Setenv("HISTORY_SOURCE", "synthetic")
	t.Setenv("FORECAST_SEED", "777")

	cfg, err := LoadWithEnv(writeConfig(t, sampleYAML))
	require.NoError(t, err)
	assert.Equal(t, 9191, cfg.Server.Port)
	assert.Equal(t, int64(777), cfg.Forecast.Seed)
}

package di

import (
	"context"
	"fmt"
	"time"

	domrepo "TrendCast/internal/domain/repository"
	"TrendCast/internal/handler/api"
	internalrepo "TrendCast/internal/repository"
	"TrendCast/internal/services/synth"
	"TrendCast/internal/usecase"
	pkgch "TrendCast/pkg/clickhouse"
	"TrendCast/pkg/config"
	xhttp "TrendCast/pkg/http"
	applogger "TrendCast/pkg/logger"
	"TrendCast/pkg/metrics"
	"TrendCast/pkg/server"
)

// ProvideLogger creates the application logger from config.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	level := cfg.Log.Level
	if level == "" {
		level = "info"
	}
	format := cfg.Log.Format
	if format == "" {
		format = "console"
	}
	output := cfg.Log.Output
	if output == "" {
		output = "stdout"
	}
	return applogger.New(&applogger.Config{Level: level, Format: format, Output: output})
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() domrepo.Metrics {
	return metrics.New()
}

// HistoryBackend bundles the selected history store with the ClickHouse
// client that owns its connections (nil for the synthetic source).
type HistoryBackend struct {
	Store domrepo.HistoryStore
	CH    *pkgch.Client
}

// ProvideHistoryBackend selects the history source from config.
func ProvideHistoryBackend(cfg *config.Config, l *applogger.Logger) (*HistoryBackend, error) {
	if cfg.History.Source != "clickhouse" {
		return &HistoryBackend{
			Store: synth.NewStore(synth.Config{
				BasePrice:  cfg.History.BasePrice,
				Days:       cfg.History.Days,
				Drift:      cfg.History.Drift,
				Volatility: cfg.History.Volatility,
				Seed:       cfg.Forecast.Seed,
			}),
		}, nil
	}

	client, err := pkgch.NewClient(
		pkgch.WithHost(cfg.ClickHouse.Host),
		pkgch.WithPort(cfg.ClickHouse.Port),
		pkgch.WithDatabase(cfg.ClickHouse.Database),
		pkgch.WithCredentials(cfg.ClickHouse.User, cfg.ClickHouse.Password),
		pkgch.WithMaxConnections(10, 5),
		pkgch.WithHTTP(cfg.ClickHouse.UseHTTP),
		pkgch.WithTimeouts(cfg.ClickHouse.DialTimeout, cfg.ClickHouse.ReadTimeout, cfg.ClickHouse.WriteTimeout),
		pkgch.WithMaxExecutionTime(cfg.ClickHouse.MaxExecutionTime),
	)
	if err != nil {
		return nil, fmt.Errorf("clickhouse client: %w", err)
	}

	table := cfg.ClickHouse.Table
	if table == "" {
		table = "daily_closes"
	}
	qualified := cfg.ClickHouse.Database + "." + table

	// Initialize schema
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := client.InitSchema(ctx, []string{
		"CREATE DATABASE IF NOT EXISTS " + cfg.ClickHouse.Database,
		"CREATE TABLE IF NOT EXISTS " + qualified + " (symbol String, day Date, close Float64) ENGINE=MergeTree ORDER BY (symbol, day)",
	}); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("clickhouse schema: %w", err)
	}

	store := internalrepo.NewCHHistoryStore(client, qualified)
	store.SetLogger(l)
	return &HistoryBackend{Store: store, CH: client}, nil
}

// ProvideEnsemble creates the ensemble forecaster use case.
func ProvideEnsemble(
	backend *HistoryBackend,
	m domrepo.Metrics,
	l *applogger.Logger,
	cfg *config.Config,
) *usecase.EnsembleForecaster {
	return usecase.NewEnsembleForecaster(
		backend.Store,
		m,
		l,
		cfg.History.Days,
		cfg.Forecast.VolatilityFactors,
		cfg.Forecast.DefaultVolatilityFactor,
	)
}

// ProvideHandler creates the forecast API handler.
func ProvideHandler(l *applogger.Logger, ens *usecase.EnsembleForecaster, cfg *config.Config) xhttp.Handler {
	return api.NewForecastEchoHandler(l, ens, cfg.Forecast.MaxHorizon)
}

// ProvideApp creates the application server.
func ProvideApp(
	cfg *config.Config,
	l *applogger.Logger,
	handler xhttp.Handler,
	backend *HistoryBackend,
) *server.App {
	return server.New(cfg, l, handler, backend.CH)
}

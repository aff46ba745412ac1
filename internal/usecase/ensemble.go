package usecase

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"time"

	"TrendCast/internal/domain/models"
	domrepo "TrendCast/internal/domain/repository"
	domsvc "TrendCast/internal/domain/service"
	"TrendCast/internal/services/forecast"
	"TrendCast/internal/services/stats"
	applogger "TrendCast/pkg/logger"
)

// The ensemble never partially fails: either the single precondition
// below rejects the call, or every model runs and aggregation completes.
var (
	ErrInvalidHorizon = errors.New("horizon must be a positive number of days")
	ErrEmptySeries    = errors.New("historical series is empty")
)

// zScore95 sizes the uncertainty band at the 95% level.
const zScore95 = 1.96

// ForecastOptions is the per-call configuration of the active model
// set. Each call constructs its own models; nothing is shared between
// concurrent calls.
type ForecastOptions struct {
	SentimentMode       models.SentimentMode
	SentimentMultiplier float64
	VolatilityFactor    float64
	// Seed fixes the random source for reproducible output. Zero means
	// a time-based seed.
	Seed int64
	// Models overrides the default five-model set when non-empty.
	Models []domsvc.ComponentModel
	// IncludeComponents attaches each model's raw path to the result.
	IncludeComponents bool
}

// EnsembleForecaster combines the component models' independent paths
// into one confidence-weighted projection with uncertainty bands.
type EnsembleForecaster struct {
	store   domrepo.HistoryStore
	metrics domrepo.Metrics
	l       *applogger.Logger

	historyDays      int
	volFactors       map[string]float64
	defaultVolFactor float64
}

func NewEnsembleForecaster(
	store domrepo.HistoryStore,
	metrics domrepo.Metrics,
	l *applogger.Logger,
	historyDays int,
	volFactors map[string]float64,
	defaultVolFactor float64,
) *EnsembleForecaster {
	if historyDays <= 0 {
		historyDays = 90
	}
	if defaultVolFactor <= 0 {
		defaultVolFactor = 1.0
	}
	return &EnsembleForecaster{
		store:            store,
		metrics:          metrics,
		l:                l,
		historyDays:      historyDays,
		volFactors:       volFactors,
		defaultVolFactor: defaultVolFactor,
	}
}

// VolatilityFactor resolves the symbol-specific band scaling factor,
// falling back to the configured default.
func (f *EnsembleForecaster) VolatilityFactor(symbol string) float64 {
	if v, ok := f.volFactors[symbol]; ok && v > 0 {
		return v
	}
	return f.defaultVolFactor
}

// ForecastSymbol loads the symbol's recent daily closes from the
// history store and forecasts over them. The returned history is what
// the visualization collaborator charts alongside the forecast band.
func (f *EnsembleForecaster) ForecastSymbol(ctx context.Context, symbol string, horizon int, opts ForecastOptions) ([]models.PricePoint, models.EnsembleForecast, error) {
	history, err := f.store.GetDailyCloses(ctx, symbol, f.historyDays)
	if err != nil {
		if f.metrics != nil {
			f.metrics.RecordError("history_store")
		}
		return nil, models.EnsembleForecast{}, err
	}
	if opts.VolatilityFactor <= 0 {
		opts.VolatilityFactor = f.VolatilityFactor(symbol)
	}
	out, err := f.Forecast(models.Closes(history), horizon, opts)
	if err != nil {
		return nil, models.EnsembleForecast{}, err
	}
	if f.metrics != nil {
		f.metrics.RecordForecast(symbol, horizon)
		if len(out.Points) > 0 {
			f.metrics.RecordPredictedPrice(symbol, out.Points[len(out.Points)-1].PredictedPrice)
		}
	}
	return history, out, nil
}

// Forecast runs every active component model over the series and
// aggregates their day-by-day paths into the combined projection.
//
// Per day d (0-based): the combined price is the confidence-weighted
// mean of the models' day-d prices; the band half-width is the
// unweighted population stddev across models, scaled by 1.96, the
// day-widening factor 1 + d/horizon, and the caller's volatility
// factor; confidence is 1 - stddev/price, deliberately unclamped.
func (f *EnsembleForecaster) Forecast(prices []float64, horizon int, opts ForecastOptions) (models.EnsembleForecast, error) {
	start := time.Now()
	if horizon <= 0 {
		return models.EnsembleForecast{}, ErrInvalidHorizon
	}
	if len(prices) == 0 {
		return models.EnsembleForecast{}, ErrEmptySeries
	}

	volFactor := opts.VolatilityFactor
	if volFactor <= 0 {
		volFactor = 1.0
	}
	mode := opts.SentimentMode
	if !models.IsValidSentimentMode(mode) {
		mode = models.SentimentStochastic
	}
	multiplier := opts.SentimentMultiplier
	if multiplier <= 0 {
		multiplier = 1.0
	}

	active := opts.Models
	if len(active) == 0 {
		seed := opts.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		active = forecast.DefaultSet(rand.New(rand.NewSource(seed)), mode, multiplier)
	}

	// Models run sequentially in fixed order; with a seeded source this
	// makes reruns bit-identical. Total work is small enough that the
	// embarrassingly-parallel evaluation is not worth the scheduling.
	components := make([]models.ComponentForecast, 0, len(active))
	totalWeight := 0.0
	for _, m := range active {
		components = append(components, models.ComponentForecast{
			ModelName:        m.Name(),
			ConfidenceWeight: m.Weight(),
			Path:             m.Predict(prices, horizon),
		})
		totalWeight += m.Weight()
	}

	points := make([]models.EnsembleForecastPoint, 0, horizon)
	dayPrices := make([]float64, len(components))
	for d := 0; d < horizon; d++ {
		combined := 0.0
		for i, c := range components {
			dayPrices[i] = c.Path[d]
			combined += c.ConfidenceWeight * c.Path[d]
		}
		combined /= totalWeight

		stdDev := math.Sqrt(stats.Disagreement(dayPrices))
		widening := 1 + float64(d)/float64(horizon)
		halfWidth := stdDev * zScore95 * widening * volFactor

		points = append(points, models.EnsembleForecastPoint{
			DayOffset:      d,
			PredictedPrice: combined,
			LowerBound:     combined - halfWidth,
			UpperBound:     combined + halfWidth,
			Confidence:     1 - stdDev/combined,
		})
	}

	out := models.EnsembleForecast{
		Points:  points,
		Weights: WeightBreakdown(active),
	}
	if opts.IncludeComponents {
		out.Components = components
	}

	if f.metrics != nil {
		f.metrics.RecordLatency("forecast", time.Since(start).Seconds())
	}
	if f.l != nil {
		f.l.Debug("ensemble forecast computed",
			applogger.Int("horizon", horizon),
			applogger.Int("history", len(prices)),
			applogger.Int("models", len(active)),
			applogger.Duration("duration_ms", time.Since(start)),
		)
	}
	return out, nil
}

// WeightBreakdown normalizes the active models' fixed confidence
// weights to percentages summing to 100. Pure function of the model
// set; the default weights sum to 1.10, so normalization always
// rescales rather than assuming pre-normalized inputs.
func WeightBreakdown(active []domsvc.ComponentModel) []models.WeightContribution {
	total := 0.0
	for _, m := range active {
		total += m.Weight()
	}
	out := make([]models.WeightContribution, 0, len(active))
	if total == 0 {
		return out
	}
	for _, m := range active {
		out = append(out, models.WeightContribution{
			ModelName:  m.Name(),
			Percentage: m.Weight() / total * 100,
		})
	}
	return out
}

// DefaultWeightBreakdown reports the breakdown for the default model
// set in the given sentiment mode, independent of any forecast call.
func DefaultWeightBreakdown(mode models.SentimentMode) []models.WeightContribution {
	if !models.IsValidSentimentMode(mode) {
		mode = models.SentimentStochastic
	}
	return WeightBreakdown(forecast.DefaultSet(rand.New(rand.NewSource(1)), mode, 1.0))
}

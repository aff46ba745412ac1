package models

import "time"

// SentimentMode selects how the sentiment component produces its daily
// adjustment: from an externally supplied impact multiplier, or from an
// internal random draw when no external signal exists.
type SentimentMode string

const (
	SentimentExogenous  SentimentMode = "exogenous"
	SentimentStochastic SentimentMode = "stochastic"
)

// IsValidSentimentMode returns true if m is a supported sentiment mode.
func IsValidSentimentMode(m SentimentMode) bool {
	switch m {
	case SentimentExogenous, SentimentStochastic:
		return true
	default:
		return false
	}
}

// PricePoint is a single daily close. Series are ordered strictly
// ascending by day; daily cadence is a caller guarantee, not validated.
type PricePoint struct {
	Day   time.Time `json:"day"`
	Close float64   `json:"close"`
}

// ComponentForecast is one model's full autoregressive price path.
// Immutable after creation; len(Path) equals the requested horizon.
type ComponentForecast struct {
	ModelName        string    `json:"model_name"`
	ConfidenceWeight float64   `json:"confidence_weight"`
	Path             []float64 `json:"path"`
}

// EnsembleForecastPoint is one combined forecast day with its
// uncertainty band. Confidence is intentionally unclamped and may fall
// outside [0,1] when model disagreement is large relative to price.
type EnsembleForecastPoint struct {
	DayOffset      int     `json:"day_offset"`
	PredictedPrice float64 `json:"predicted_price"`
	LowerBound     float64 `json:"lower_bound"`
	UpperBound     float64 `json:"upper_bound"`
	Confidence     float64 `json:"confidence"`
}

// WeightContribution is a model's confidence weight normalized across
// the active set, as a percentage. Percentages sum to 100.
type WeightContribution struct {
	ModelName  string  `json:"model_name"`
	Percentage float64 `json:"percentage"`
}

// EnsembleForecast is the full output of one forecast call.
type EnsembleForecast struct {
	Points     []EnsembleForecastPoint `json:"points"`
	Components []ComponentForecast     `json:"components,omitempty"`
	Weights    []WeightContribution    `json:"weights"`
}

// Closes extracts the price sequence from a series of points. The
// forecasting math operates on index order only; dates are for display.
func Closes(series []PricePoint) []float64 {
	out := make([]float64, 0, len(series))
	for _, p := range series {
		out = append(out, p.Close)
	}
	return out
}

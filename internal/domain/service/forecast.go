package service

// ComponentModel is the single shared capability of all forecasting
// models: project a price path over the horizon, autoregressively.
// Models never observe each other's outputs, and never mutate state
// outside their own random source.
type ComponentModel interface {
	// Name identifies the model in forecasts and weight breakdowns.
	Name() string
	// Weight is the model's fixed confidence weight in (0,1].
	// It never changes across calls; there is no learning.
	Weight() float64
	// Predict returns the model's full price path, len == horizon.
	// The last element of prices is the base for the first forecast day.
	Predict(prices []float64, horizon int) []float64
}

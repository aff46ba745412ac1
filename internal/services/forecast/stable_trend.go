package forecast

import (
	"math/rand"

	"TrendCast/internal/services/stats"
)

// StableTrendModel extrapolates the simple 14-day trend with damped
// volatility noise. No seasonal or momentum structure.
type StableTrendModel struct {
	rng *rand.Rand
}

func NewStableTrendModel(rng *rand.Rand) *StableTrendModel {
	return &StableTrendModel{rng: rng}
}

func (m *StableTrendModel) Name() string    { return "stable_trend" }
func (m *StableTrendModel) Weight() float64 { return 0.25 }

func (m *StableTrendModel) Predict(prices []float64, horizon int) []float64 {
	trend := stats.SimpleTrend(prices, 14)
	vol := stats.Volatility(prices) * 0.8

	path := make([]float64, 0, horizon)
	price := prices[len(prices)-1]
	for i := 0; i < horizon; i++ {
		noise := (m.rng.Float64() - 0.5) * vol
		price *= 1 + trend + noise
		path = append(path, price)
	}
	return path
}

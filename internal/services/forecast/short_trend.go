package forecast

import (
	"math/rand"

	"TrendCast/internal/services/stats"
)

// ShortTrendModel amplifies the most recent 5-day trend with a fixed
// noise magnitude, independent of series volatility.
type ShortTrendModel struct {
	rng *rand.Rand
}

func NewShortTrendModel(rng *rand.Rand) *ShortTrendModel {
	return &ShortTrendModel{rng: rng}
}

func (m *ShortTrendModel) Name() string    { return "short_trend" }
func (m *ShortTrendModel) Weight() float64 { return 0.10 }

func (m *ShortTrendModel) Predict(prices []float64, horizon int) []float64 {
	trend := stats.SimpleTrend(prices, 5) * 1.2

	path := make([]float64, 0, horizon)
	price := prices[len(prices)-1]
	for i := 0; i < horizon; i++ {
		noise := (m.rng.Float64() - 0.5) * 0.02
		price *= 1 + trend + noise
		path = append(path, price)
	}
	return path
}

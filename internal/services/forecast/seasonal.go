package forecast

import (
	"math"
	"math/rand"

	"TrendCast/internal/services/stats"
)

// SeasonalModel layers a weekly sine cycle over the simple 10-day trend
// with slightly reduced volatility noise.
type SeasonalModel struct {
	rng *rand.Rand
}

func NewSeasonalModel(rng *rand.Rand) *SeasonalModel {
	return &SeasonalModel{rng: rng}
}

func (m *SeasonalModel) Name() string    { return "seasonal" }
func (m *SeasonalModel) Weight() float64 { return 0.20 }

func (m *SeasonalModel) Predict(prices []float64, horizon int) []float64 {
	trend := stats.SimpleTrend(prices, 10)
	vol := stats.Volatility(prices) * 0.9

	path := make([]float64, 0, horizon)
	price := prices[len(prices)-1]
	for i := 1; i <= horizon; i++ {
		seasonal := math.Sin(float64(i)*math.Pi/7) * 0.005
		noise := (m.rng.Float64() - 0.5) * vol
		price *= 1 + trend + seasonal + noise
		path = append(path, price)
	}
	return path
}

package forecast

import (
	"math"
	"math/rand"

	"TrendCast/internal/services/stats"
)

// MomentumModel is the heaviest-weighted component. It blends a
// recency-weighted short trend with a 30-day long-range trend, adds a
// weekly cycle and a tanh-squashed momentum kick, and scales its noise
// by the recency-weighted volatility.
type MomentumModel struct {
	rng *rand.Rand
}

func NewMomentumModel(rng *rand.Rand) *MomentumModel {
	return &MomentumModel{rng: rng}
}

func (m *MomentumModel) Name() string    { return "momentum" }
func (m *MomentumModel) Weight() float64 { return 0.45 }

func (m *MomentumModel) Predict(prices []float64, horizon int) []float64 {
	shortTrend := stats.WeightedTrend(prices, 14)
	longTrend := stats.SimpleTrend(prices, 30)
	vol := stats.WeightedVolatility(prices, 14)

	path := make([]float64, 0, horizon)
	price := prices[len(prices)-1]
	for i := 1; i <= horizon; i++ {
		// Short-trend influence decays linearly toward the long-range
		// trend as the horizon progresses, floored at 0.2.
		blend := 1.0 - float64(i)/float64(horizon)
		if blend < 0.2 {
			blend = 0.2
		}
		trend := blend*shortTrend + (1-blend)*longTrend
		seasonal := math.Sin(float64(i%7)*math.Pi/3.5) * 0.002
		momentum := math.Tanh(trend*10) * 0.005
		noise := (m.rng.Float64() - 0.5) * vol * 0.4

		price *= 1 + trend + seasonal + momentum + noise
		path = append(path, price)
	}
	return path
}

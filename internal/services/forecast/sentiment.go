package forecast

import (
	"math/rand"

	"TrendCast/internal/domain/models"
)

// SentimentModel carries the news-sentiment collaborator's signal into
// the ensemble. In exogenous mode the externally supplied impact
// multiplier becomes a constant daily fractional change; in stochastic
// mode each day draws from U(-0.4, 0.6) * 0.02, a slight positive bias,
// standing in for an unavailable external signal. It reads no price
// history at all.
type SentimentModel struct {
	mode       models.SentimentMode
	multiplier float64
	rng        *rand.Rand
}

func NewSentimentModel(mode models.SentimentMode, multiplier float64, rng *rand.Rand) *SentimentModel {
	return &SentimentModel{mode: mode, multiplier: multiplier, rng: rng}
}

func (m *SentimentModel) Name() string    { return "sentiment" }
func (m *SentimentModel) Weight() float64 { return 0.10 }

func (m *SentimentModel) Predict(prices []float64, horizon int) []float64 {
	path := make([]float64, 0, horizon)
	price := prices[len(prices)-1]
	for i := 0; i < horizon; i++ {
		var change float64
		if m.mode == models.SentimentExogenous {
			change = m.multiplier - 1
		} else {
			change = (m.rng.Float64() - 0.4) * 0.02
		}
		price *= 1 + change
		path = append(path, price)
	}
	return path
}

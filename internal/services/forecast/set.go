package forecast

import (
	"math/rand"

	"TrendCast/internal/domain/models"
	domsvc "TrendCast/internal/domain/service"
)

// DefaultSet builds the five default component models in their fixed
// evaluation order. The set is constructed fresh per forecast call; the
// sentiment mode and multiplier are call-time configuration, never
// mutated shared state. All models share one sequentially-consumed
// random source so a seeded call replays bit-identically.
func DefaultSet(rng *rand.Rand, mode models.SentimentMode, multiplier float64) []domsvc.ComponentModel {
	return []domsvc.ComponentModel{
		NewMomentumModel(rng),
		NewStableTrendModel(rng),
		NewSeasonalModel(rng),
		NewSentimentModel(mode, multiplier, rng),
		NewShortTrendModel(rng),
	}
}

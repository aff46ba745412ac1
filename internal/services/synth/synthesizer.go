package synth

import (
	"context"
	"hash/fnv"
	"math/rand"
	"time"

	"TrendCast/internal/domain/models"
	"TrendCast/pkg/util"
)

// Config controls the synthetic daily-close generator. Defaults mirror
// a moderately drifting, moderately noisy equity.
type Config struct {
	BasePrice  float64
	Days       int
	Drift      float64 // mean daily fractional change
	Volatility float64 // half-range of the uniform daily noise
	Seed       int64   // zero means time-based
}

func (c Config) withDefaults() Config {
	if c.BasePrice <= 0 {
		c.BasePrice = 100.0
	}
	if c.Days <= 0 {
		c.Days = 90
	}
	if c.Drift == 0 {
		c.Drift = 0.0005
	}
	if c.Volatility <= 0 {
		c.Volatility = 0.02
	}
	return c
}

// GenerateHistory builds a synthetic daily series ending today: a
// random walk p_i = p_{i-1} * (1 + drift + U(-vol, vol)). Prices are
// not floored; extreme noise settings can walk below zero, matching
// the core's documented non-clamping of prices.
func GenerateHistory(cfg Config) []models.PricePoint {
	cfg = cfg.withDefaults()
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	days := util.DailyRange(util.TodayUTC(), cfg.Days)
	out := make([]models.PricePoint, 0, cfg.Days)
	price := cfg.BasePrice
	for _, day := range days {
		change := cfg.Drift + (rng.Float64()*2-1)*cfg.Volatility
		price *= 1 + change
		out = append(out, models.PricePoint{Day: day, Close: price})
	}
	return out
}

// Store is a HistoryStore that synthesizes series on demand, for
// running the engine with no market-data infrastructure. Series are
// deterministic per symbol: the symbol hash perturbs the configured
// seed, so different symbols get different but repeatable walks.
type Store struct {
	cfg Config
}

func NewStore(cfg Config) *Store {
	return &Store{cfg: cfg.withDefaults()}
}

func (s *Store) GetDailyCloses(_ context.Context, symbol string, n int) ([]models.PricePoint, error) {
	cfg := s.cfg
	if n > 0 {
		cfg.Days = n
	}
	if cfg.Seed != 0 {
		cfg.Seed = cfg.Seed ^ int64(symbolHash(symbol))
	}
	return GenerateHistory(cfg), nil
}

func symbolHash(symbol string) uint32 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(symbol))
	return h.Sum32()
}

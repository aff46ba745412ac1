package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDailyReturns(t *testing.T) {
	returns := DailyReturns([]float64{100, 110, 99})
	require.Len(t, returns, 2)
	assert.InDelta(t, 0.1, returns[0], 1e-12)
	assert.InDelta(t, -0.1, returns[1], 1e-12)
}

func TestDailyReturnsInsufficientData(t *testing.T) {
	assert.Nil(t, DailyReturns(nil))
	assert.Nil(t, DailyReturns([]float64{100}))
}

func TestSimpleTrend(t *testing.T) {
	prices := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	// last 5 observations: 6..10 -> (10-6)/6/5
	assert.InDelta(t, 4.0/6.0/5.0, SimpleTrend(prices, 5), 1e-12)
}

func TestSimpleTrendFallback(t *testing.T) {
	assert.Equal(t, FallbackTrend, SimpleTrend([]float64{100, 101}, 5))
	assert.Equal(t, FallbackTrend, SimpleTrend(nil, 5))
	assert.Equal(t, FallbackTrend, SimpleTrend([]float64{1, 2, 3}, 0))
}

func TestWeightedTrendConstantReturn(t *testing.T) {
	// Constant 1% daily growth: every return is 0.01, so any weighting
	// of returns still averages to 0.01.
	prices := make([]float64, 20)
	prices[0] = 100
	for i := 1; i < len(prices); i++ {
		prices[i] = prices[i-1] * 1.01
	}
	assert.InDelta(t, 0.01, WeightedTrend(prices, 14), 1e-9)
}

func TestWeightedTrendFlat(t *testing.T) {
	prices := make([]float64, 20)
	for i := range prices {
		prices[i] = 100
	}
	assert.InDelta(t, 0, WeightedTrend(prices, 14), 1e-12)
}

func TestWeightedTrendFallback(t *testing.T) {
	assert.Equal(t, FallbackTrend, WeightedTrend([]float64{100, 101, 102}, 14))
}

func TestWeightedTrendFavorsRecentReturns(t *testing.T) {
	// First half falling, second half rising: the exp(0.1*i) weighting
	// must pull the estimate above the unweighted mean of returns.
	prices := []float64{100, 99, 98, 97, 96, 95, 96, 97, 98, 99, 100, 101, 102, 103}
	weighted := WeightedTrend(prices, 14)
	simple := SimpleTrend(prices, 14)
	assert.Greater(t, weighted, simple)
}

func TestVolatility(t *testing.T) {
	// returns 0.1 and -0.1: population stddev is 0.1
	assert.InDelta(t, 0.1, Volatility([]float64{100, 110, 99}), 1e-12)
}

func TestVolatilityFlatSeries(t *testing.T) {
	assert.InDelta(t, 0, Volatility([]float64{100, 100, 100, 100}), 1e-12)
}

func TestVolatilityFallback(t *testing.T) {
	assert.Equal(t, FallbackVolatility, Volatility(nil))
	assert.Equal(t, FallbackVolatility, Volatility([]float64{100}))
}

func TestWeightedVolatilityFlat(t *testing.T) {
	prices := make([]float64, 14)
	for i := range prices {
		prices[i] = 50
	}
	assert.InDelta(t, 0, WeightedVolatility(prices, 14), 1e-12)
}

func TestWeightedVolatilityFallback(t *testing.T) {
	assert.Equal(t, FallbackVolatility, WeightedVolatility([]float64{100, 101}, 14))
}

func TestWeightedVolatilityPositive(t *testing.T) {
	prices := []float64{100, 104, 97, 103, 98, 105, 99, 102, 96, 104, 101, 97, 103, 100}
	v := WeightedVolatility(prices, 14)
	assert.Greater(t, v, 0.0)
	assert.Less(t, v, 0.2)
}

func TestExpWeights(t *testing.T) {
	w := ExpWeights(3)
	require.Len(t, w, 3)
	// exp(0.1), exp(0.2), exp(0.3): strictly increasing recency weights
	assert.InDelta(t, 1.1051709180756477, w[0], 1e-12)
	assert.Greater(t, w[1], w[0])
	assert.Greater(t, w[2], w[1])
}

func TestDisagreement(t *testing.T) {
	// mean 2, squared deviations 1,0,1 -> population variance 2/3
	assert.InDelta(t, 2.0/3.0, Disagreement([]float64{1, 2, 3}), 1e-12)
}

func TestDisagreementDegenerate(t *testing.T) {
	assert.Equal(t, 0.0, Disagreement(nil))
	assert.InDelta(t, 0, Disagreement([]float64{7, 7, 7}), 1e-12)
}

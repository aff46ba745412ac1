package stats

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Neutral defaults used when a series is shorter than an estimator's
// window. Callers get a flat, mildly volatile assumption instead of an
// error; precondition checks happen once at the ensemble boundary.
const (
	FallbackTrend      = 0.0
	FallbackVolatility = 0.02
)

// DailyReturns computes simple returns r_i = (p_i - p_{i-1}) / p_{i-1}.
// It returns a slice of length len(prices)-1, or nil if insufficient data.
func DailyReturns(prices []float64) []float64 {
	if len(prices) < 2 {
		return nil
	}
	out := make([]float64, 0, len(prices)-1)
	for i := 1; i < len(prices); i++ {
		prev := prices[i-1]
		if prev == 0 {
			out = append(out, 0)
			continue
		}
		out = append(out, (prices[i]-prev)/prev)
	}
	return out
}

// ExpWeights returns exp(0.1*i) for i = 1..n, the recency weighting
// shared by the exponentially-weighted trend and volatility estimators.
func ExpWeights(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.Exp(0.1 * float64(i+1))
	}
	return out
}

// SimpleTrend returns the per-day fractional change over the last
// `window` observations: (last-first)/first/window. Falls back to the
// neutral trend when the series is shorter than the window.
func SimpleTrend(prices []float64, window int) float64 {
	if window <= 0 || len(prices) < window {
		return FallbackTrend
	}
	w := prices[len(prices)-window:]
	first := w[0]
	if first == 0 {
		return FallbackTrend
	}
	return (w[len(w)-1] - first) / first / float64(window)
}

// WeightedTrend returns the exponentially-weighted mean of daily
// returns over the last `window` observations. Recent returns carry
// exp(0.1*i) weight, i being the 1-indexed position in the window.
func WeightedTrend(prices []float64, window int) float64 {
	if window < 2 || len(prices) < window {
		return FallbackTrend
	}
	returns := DailyReturns(prices[len(prices)-window:])
	return stat.Mean(returns, ExpWeights(len(returns)))
}

// Volatility returns the population standard deviation of daily returns
// over the whole series. Falls back when fewer than two observations.
func Volatility(prices []float64) float64 {
	returns := DailyReturns(prices)
	if returns == nil {
		return FallbackVolatility
	}
	return stat.PopStdDev(returns, nil)
}

// WeightedVolatility returns the exponentially-weighted population
// standard deviation of daily returns over the last `window`
// observations. The weighted mean is subtracted before squaring and the
// squared deviations are normalized by the weight sum, not the count.
func WeightedVolatility(prices []float64, window int) float64 {
	if window < 2 || len(prices) < window {
		return FallbackVolatility
	}
	returns := DailyReturns(prices[len(prices)-window:])
	return math.Sqrt(stat.PopVariance(returns, ExpWeights(len(returns))))
}

// Disagreement returns the unweighted population variance across
// sibling predictions for one day. All models count equally here,
// independent of their forecasting weight: the central estimate is
// confidence-weighted, the uncertainty band reflects raw spread.
func Disagreement(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return stat.PopVariance(values, nil)
}

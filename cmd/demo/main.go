package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"text/tabwriter"

	"TrendCast/internal/domain/models"
	"TrendCast/internal/services/synth"
	"TrendCast/internal/usecase"
)

// Demo harness: synthesizes a daily close series, runs the ensemble
// over it and prints the combined forecast with its confidence band and
// the per-model weight contributions.
func main() {
	days := flag.Int("days", 90, "synthetic history length in days")
	horizon := flag.Int("horizon", 7, "forecast horizon in days")
	base := flag.Float64("base", 100.0, "synthetic base price")
	drift := flag.Float64("drift", 0.0005, "synthetic mean daily change")
	vol := flag.Float64("vol", 0.02, "synthetic daily noise half-range")
	seed := flag.Int64("seed", 42, "random seed (0 for time-based)")
	mode := flag.String("mode", "stochastic", "sentiment mode: exogenous or stochastic")
	multiplier := flag.Float64("multiplier", 1.0, "sentiment impact multiplier (exogenous mode)")
	volFactor := flag.Float64("volfactor", 1.0, "uncertainty band volatility factor")
	flag.Parse()

	history := synth.GenerateHistory(synth.Config{
		BasePrice:  *base,
		Days:       *days,
		Drift:      *drift,
		Volatility: *vol,
		Seed:       *seed,
	})

	ens := usecase.NewEnsembleForecaster(nil, nil, nil, *days, nil, 1.0)
	out, err := ens.Forecast(models.Closes(history), *horizon, usecase.ForecastOptions{
		SentimentMode:       models.SentimentMode(*mode),
		SentimentMultiplier: *multiplier,
		VolatilityFactor:    *volFactor,
		Seed:                *seed,
	})
	if err != nil {
		log.Fatalf("forecast failed: %v", err)
	}

	last := history[len(history)-1]
	fmt.Printf("history: %d days, last close %.2f on %s\n\n",
		len(history), last.Close, last.Day.Format("2006-01-02"))

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "day\tpredicted\tlower\tupper\tconfidence")
	for _, p := range out.Points {
		day := last.Day.AddDate(0, 0, p.DayOffset+1)
		fmt.Fprintf(w, "%s\t%.2f\t%.2f\t%.2f\t%.3f\n",
			day.Format("2006-01-02"), p.PredictedPrice, p.LowerBound, p.UpperBound, p.Confidence)
	}
	w.Flush()

	fmt.Println()
	fmt.Println("model contributions:")
	for _, wc := range out.Weights {
		fmt.Printf("  %-14s %6.2f%%\n", wc.ModelName, wc.Percentage)
	}
}

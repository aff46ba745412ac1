package synth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateHistoryShape(t *testing.T) {
	history := GenerateHistory(Config{BasePrice: 100, Days: 30, Drift: 0.001, Volatility: 0.01, Seed: 1})
	require.Len(t, history, 30)

	for i, p := range history {
		assert.Greater(t, p.Close, 0.0)
		if i > 0 {
			assert.Equal(t, 24*time.Hour, p.Day.Sub(history[i-1].Day))
		}
	}
	// Series ends today (UTC midnight).
	last := history[len(history)-1].Day
	assert.Equal(t, time.UTC, last.Location())
	assert.Equal(t, 0, last.Hour())
}

func TestGenerateHistoryDeterministicWithSeed(t *testing.T) {
	cfg := Config{BasePrice: 100, Days: 60, Seed: 42}
	assert.Equal(t, GenerateHistory(cfg), GenerateHistory(cfg))

	other := GenerateHistory(Config{BasePrice: 100, Days: 60, Seed: 43})
	assert.NotEqual(t, GenerateHistory(cfg), other)
}

func TestGenerateHistoryDefaults(t *testing.T) {
	history := GenerateHistory(Config{Seed: 7})
	assert.Len(t, history, 90)
}

func TestStoreHonorsRequestedLength(t *testing.T) {
	store := NewStore(Config{BasePrice: 100, Days: 90, Seed: 5})
	history, err := store.GetDailyCloses(context.Background(), "ACME", 30)
	require.NoError(t, err)
	assert.Len(t, history, 30)
}

func TestStoreSymbolsGetDistinctSeries(t *testing.T) {
	store := NewStore(Config{BasePrice: 100, Days: 30, Seed: 5})

	a, err := store.GetDailyCloses(context.Background(), "ACME", 30)
	require.NoError(t, err)
	b, err := store.GetDailyCloses(context.Background(), "VOLT", 30)
	require.NoError(t, err)
	a2, err := store.GetDailyCloses(context.Background(), "ACME", 30)
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
	assert.Equal(t, a, a2)
}

package repository

import (
	"context"

	"TrendCast/internal/domain/models"
)

// HistoryStore provides read-only access to daily close history for the
// forecasting engine. Implementations: synthetic generator, ClickHouse.
type HistoryStore interface {
	GetDailyCloses(ctx context.Context, symbol string, n int) ([]models.PricePoint, error)
}

type Metrics interface {
	RecordForecast(symbol string, horizon int)
	RecordError(kind string)
	RecordPredictedPrice(symbol string, price float64)
	RecordLatency(op string, seconds float64)
}

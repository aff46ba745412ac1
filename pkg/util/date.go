package util

import "time"

// TodayUTC returns the current calendar day at midnight UTC. Daily
// series carry no intraday resolution.
func TodayUTC() time.Time {
	return time.Now().UTC().Truncate(24 * time.Hour)
}

// DailyRange returns n consecutive calendar days ending at end,
// ascending. It is the date spine for a gap-free daily close series.
func DailyRange(end time.Time, n int) []time.Time {
	if n <= 0 {
		return nil
	}
	out := make([]time.Time, 0, n)
	start := end.AddDate(0, 0, -(n - 1))
	for i := 0; i < n; i++ {
		out = append(out, start.AddDate(0, 0, i))
	}
	return out
}

// NextDay returns the following calendar day.
func NextDay(t time.Time) time.Time {
	return t.AddDate(0, 0, 1)
}

package util

import (
	"testing"
	"time"
)

func TestDailyRange(t *testing.T) {
	end := time.Date(2024, 10, 10, 0, 0, 0, 0, time.UTC)
	days := DailyRange(end, 5)
	if len(days) != 5 {
		t.Fatalf("expected 5 days, got %d", len(days))
	}
	if !days[0].Equal(time.Date(2024, 10, 6, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected start %v", days[0])
	}
	if !days[4].Equal(end) {
		t.Fatalf("range must end at end, got %v", days[4])
	}
	for i := 1; i < len(days); i++ {
		if days[i].Sub(days[i-1]) != 24*time.Hour {
			t.Fatalf("gap at %d: %v", i, days[i].Sub(days[i-1]))
		}
	}
}

func TestDailyRangeEmpty(t *testing.T) {
	if got := DailyRange(time.Now(), 0); got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
	if got := DailyRange(time.Now(), -3); got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
}

func TestTodayUTC(t *testing.T) {
	today := TodayUTC()
	if today.Location() != time.UTC {
		t.Fatalf("expected UTC, got %v", today.Location())
	}
	if today.Hour() != 0 || today.Minute() != 0 || today.Second() != 0 {
		t.Fatalf("expected midnight, got %v", today)
	}
}

func TestNextDay(t *testing.T) {
	d := time.Date(2024, 2, 28, 0, 0, 0, 0, time.UTC)
	if !NextDay(d).Equal(time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("expected leap day, got %v", NextDay(d))
	}
}

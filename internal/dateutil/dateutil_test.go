package dateutil

import (
	"testing"
	"time"
)

func TestKeyRoundTrip(t *testing.T) {
	parsed, err := ParseKey("2026-08-31")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if Key(parsed) != "2026-08-31" {
		t.Fatalf("expected stable key, got %s", Key(parsed))
	}
	if parsed.Location() != time.UTC {
		t.Fatal("expected UTC date")
	}
}

func TestParseKeyInvalid(t *testing.T) {
	for _, value := range []string{"", "2026-13-01", "31/08/2026", "2026-08-31T00:00:00Z"} {
		if _, err := ParseKey(value); err == nil {
			t.Fatalf("expected error for %q", value)
		}
	}
}

func TestMonthBounds(t *testing.T) {
	d := time.Date(2026, 2, 14, 15, 30, 0, 0, time.UTC)
	if Key(StartOfMonth(d)) != "2026-02-01" {
		t.Fatalf("unexpected month start: %s", Key(StartOfMonth(d)))
	}
	if Key(EndOfMonth(d)) != "2026-02-28" {
		t.Fatalf("unexpected month end: %s", Key(EndOfMonth(d)))
	}
}

func TestWeekBoundsStartSunday(t *testing.T) {
	// 2026-08-31 is a Monday.
	d := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	if Key(StartOfWeek(d)) != "2026-08-30" {
		t.Fatalf("unexpected week start: %s", Key(StartOfWeek(d)))
	}
	if Key(EndOfWeek(d)) != "2026-09-05" {
		t.Fatalf("unexpected week end: %s", Key(EndOfWeek(d)))
	}

	sunday := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
	if !StartOfWeek(sunday).Equal(sunday) {
		t.Fatal("sunday should start its own week")
	}
}

func TestDaysBetween(t *testing.T) {
	start := time.Date(2026, 1, 30, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC)

	days := DaysBetween(start, end)
	if len(days) != 4 {
		t.Fatalf("expected 4 days, got %d", len(days))
	}
	if Key(days[0]) != "2026-01-30" || Key(days[3]) != "2026-02-02" {
		t.Fatalf("unexpected bounds: %s .. %s", Key(days[0]), Key(days[3]))
	}

	if got := DaysBetween(end, start); len(got) != 0 {
		t.Fatalf("expected empty sequence, got %d days", len(got))
	}
	if got := DaysBetween(start, start); len(got) != 1 {
		t.Fatalf("expected single day, got %d", len(got))
	}
}

func TestIsWeekend(t *testing.T) {
	saturday := time.Date(2026, 1, 3, 0, 0, 0, 0, time.UTC)
	monday := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	if !IsWeekend(saturday) {
		t.Fatal("saturday should be weekend")
	}
	if IsWeekend(monday) {
		t.Fatal("monday should not be weekend")
	}
}

func TestSameMonthYear(t *testing.T) {
	a := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	b := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)
	c := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	if !SameMonth(a, b) || SameMonth(a, c) {
		t.Fatal("unexpected SameMonth result")
	}
	if !SameYear(a, b) || SameYear(a, c) {
		t.Fatal("unexpected SameYear result")
	}
}

func TestIsFutureDay(t *testing.T) {
	now := time.Date(2026, 6, 15, 23, 59, 0, 0, time.UTC)

	if IsFutureDay(time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC), now) {
		t.Fatal("same day is not future")
	}
	if !IsFutureDay(time.Date(2026, 6, 16, 0, 0, 0, 0, time.UTC), now) {
		t.Fatal("next day should be future")
	}
	if IsFutureDay(time.Date(2026, 6, 14, 0, 0, 0, 0, time.UTC), now) {
		t.Fatal("previous day is not future")
	}
}

package calendar

import (
	"math"
	"testing"
	"time"
)

func TestAngle_StartOfYear(t *testing.T) {
	jan1 := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	if got := Angle(2026, jan1); got != -math.Pi/2 {
		t.Errorf("Angle(Jan 1) = %v, want -π/2", got)
	}
}

func TestAngle_Monotonic(t *testing.T) {
	prev := Angle(2026, time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC))
	for d := time.Date(2026, time.January, 2, 0, 0, 0, 0, time.UTC); d.Year() == 2026; d = d.AddDate(0, 0, 1) {
		a := Angle(2026, d)
		if a < prev {
			t.Fatalf("Angle decreased at %s: %v < %v", d.Format("2006-01-02"), a, prev)
		}
		prev = a
	}
	if upper := StartAngle + 2*math.Pi; prev >= upper {
		t.Errorf("angle at Dec 31 = %v, want < %v", prev, upper)
	}
}

func TestAngle_Clamped(t *testing.T) {
	before := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	after := time.Date(2027, time.June, 1, 0, 0, 0, 0, time.UTC)
	if got := Angle(2026, before); got != StartAngle {
		t.Errorf("Angle(date before year) = %v, want %v", got, StartAngle)
	}
	if got := Angle(2026, after); got != StartAngle+2*math.Pi {
		t.Errorf("Angle(date after year) = %v, want %v", got, StartAngle+2*math.Pi)
	}
}

func TestMonthArc_CoversFullTurn(t *testing.T) {
	start, _ := MonthArc(2026, 0)
	_, end := MonthArc(2026, 11)
	if start != StartAngle {
		t.Errorf("January start = %v, want %v", start, StartAngle)
	}
	if math.Abs(end-(StartAngle+2*math.Pi)) > 1e-9 {
		t.Errorf("December end = %v, want %v", end, StartAngle+2*math.Pi)
	}

	// Month arcs tile with no gaps.
	for m := 0; m < 11; m++ {
		_, e := MonthArc(2026, m)
		s, _ := MonthArc(2026, m+1)
		if math.Abs(e-s) > 1e-9 {
			t.Errorf("gap between month %d and %d: %v vs %v", m, m+1, e, s)
		}
	}
}

func TestWeekRange_ClippedToYear(t *testing.T) {
	years := []int{2020, 2021, 2024, 2025, 2026, 2027}
	for _, year := range years {
		start, _ := WeekRange(year, 1)
		jan1 := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
		if start.Before(jan1) {
			t.Errorf("year %d: week 1 start %s before Jan 1", year, start.Format("2006-01-02"))
		}

		_, end := WeekRange(year, TotalWeeks(year))
		dec31 := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
		if end.After(dec31) {
			t.Errorf("year %d: last week end %s after Dec 31", year, end.Format("2006-01-02"))
		}
	}
}

func TestWeekRange_KnownWeeks(t *testing.T) {
	// 2026-01-04 is a Sunday; week 1 of 2026 runs Dec 29 2025 – Jan 4 2026,
	// clipped to Jan 1 – Jan 4.
	start, end := WeekRange(2026, 1)
	if got := start.Format("2006-01-02"); got != "2026-01-01" {
		t.Errorf("week 1 start = %s, want 2026-01-01", got)
	}
	if got := end.Format("2006-01-02"); got != "2026-01-04" {
		t.Errorf("week 1 end = %s, want 2026-01-04", got)
	}

	// Week 2 is the first full Monday–Sunday span.
	start, end = WeekRange(2026, 2)
	if start.Weekday() != time.Monday || end.Weekday() != time.Sunday {
		t.Errorf("week 2 = %s – %s, want Monday–Sunday", start.Weekday(), end.Weekday())
	}
	if got := start.Format("2006-01-02"); got != "2026-01-05" {
		t.Errorf("week 2 start = %s, want 2026-01-05", got)
	}
}

func TestTotalWeeks(t *testing.T) {
	tests := []struct {
		year int
		want int
	}{
		{2015, 53}, // Jan 1 is a Thursday
		{2020, 53}, // leap year, Jan 1 is a Wednesday
		{2024, 52},
		{2025, 52},
		{2026, 53}, // Jan 1 is a Thursday
		{2027, 52},
	}
	for _, tt := range tests {
		if got := TotalWeeks(tt.year); got != tt.want {
			t.Errorf("TotalWeeks(%d) = %d, want %d", tt.year, got, tt.want)
		}
	}
}

func TestPeriods_QuarterlyWrap(t *testing.T) {
	// Quarterly dividers in a 52-week year: the last period wraps from week
	// 40 across year-end up to (but not including) week 1.
	p := NewPeriods([]int{1, 14, 27, 40}, 2025)

	active := p.ActiveWeeks([]int{3})
	if !active[40] || !active[52] || !active[1] {
		t.Errorf("period 3 should contain weeks 40, 52 and 1: %v", active)
	}
	if active[14] {
		t.Errorf("period 3 should not contain week 14")
	}

	// Non-wrapping period behaves as a half-open range.
	if !p.Contains(0, 1) || !p.Contains(0, 13) || p.Contains(0, 14) {
		t.Errorf("period 0 membership wrong")
	}
}

func TestPeriods_WrapMembership(t *testing.T) {
	// A wrapping period whose end divider is below its start.
	p := NewPeriods([]int{10, 30, 48}, 2025)
	tests := []struct {
		week int
		want bool
	}{
		{48, true},
		{52, true},
		{1, true},
		{9, true},
		{10, true}, // wrapped tail is end-inclusive
		{11, false},
		{30, false},
	}
	for _, tt := range tests {
		if got := p.Contains(2, tt.week); got != tt.want {
			t.Errorf("Contains(2, %d) = %v, want %v", tt.week, got, tt.want)
		}
	}
}

func TestPeriods_Arc(t *testing.T) {
	p := NewPeriods([]int{1, 14, 27, 40}, 2025)

	start, end, ok := p.Arc(0)
	if !ok {
		t.Fatal("Arc(0) not ok")
	}
	if end <= start {
		t.Errorf("non-wrapping arc should run forward: start %v end %v", start, end)
	}

	// The wrapping period gets its end advanced by a full turn.
	start, end, ok = p.Arc(3)
	if !ok {
		t.Fatal("Arc(3) not ok")
	}
	if end <= start {
		t.Errorf("wrapped arc end %v should be past start %v", end, start)
	}
	if end-start > math.Pi {
		t.Errorf("quarter arc spans %v radians, want about π/2", end-start)
	}

	if _, _, ok := p.Arc(99); ok {
		t.Error("Arc(99) should not be ok")
	}
}

func TestPeriods_UnknownIndex(t *testing.T) {
	p := NewPeriods([]int{1, 14, 27, 40}, 2025)
	if got := p.ActiveWeeks([]int{-1, 12}); len(got) != 0 {
		t.Errorf("unknown period indices should yield empty set, got %v", got)
	}
}

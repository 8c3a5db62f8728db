// Package calendar holds the pure date computations behind the wheel:
// the date-to-angle mapping, ISO-8601 week ranges clipped to the year, and
// period membership over a cyclic list of divider weeks.
package calendar

import (
	"math"
	"time"
)

// StartAngle is the angle of Jan 1 at 12 o'clock; the year proceeds
// clockwise through a full turn to StartAngle + 2π.
const StartAngle = -math.Pi / 2

// Angle maps a date within [Jan 1 of year, Jan 1 of year+1) linearly onto
// [-π/2, 3π/2). Dates outside the year are clamped to the nearest end of
// the range, which keeps the mapping total and monotonic.
func Angle(year int, d time.Time) float64 {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year+1, time.January, 1, 0, 0, 0, 0, time.UTC)

	if d.Before(start) {
		return StartAngle
	}
	if !d.Before(end) {
		return StartAngle + 2*math.Pi
	}

	frac := float64(d.Sub(start)) / float64(end.Sub(start))
	return StartAngle + frac*2*math.Pi
}

// MonthArc returns the start and end angles of a zero-based month index.
func MonthArc(year, month int) (start, end float64) {
	s := time.Date(year, time.Month(month+1), 1, 0, 0, 0, 0, time.UTC)
	e := s.AddDate(0, 1, 0)
	return Angle(year, s), Angle(year, e)
}

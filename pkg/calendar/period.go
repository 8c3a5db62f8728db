package calendar

import "math"

// Periods maps the ordered cyclic list of divider weeks onto period
// membership. Period t spans weeks [dividers[t], dividers[t+1]); when the
// next divider is not greater than the current one the period wraps across
// year-end.
type Periods struct {
	Dividers []int
	Year     int
}

// NewPeriods builds a period index for the given divider weeks and year.
func NewPeriods(dividers []int, year int) Periods {
	return Periods{Dividers: dividers, Year: year}
}

// Count returns the number of periods.
func (p Periods) Count() int {
	return len(p.Dividers)
}

// Bounds returns the start week and the exclusive end week of a period.
// The end week is the next divider in cyclic order.
func (p Periods) Bounds(period int) (startWeek, endWeek int, ok bool) {
	n := len(p.Dividers)
	if n == 0 || period < 0 || period >= n {
		return 0, 0, false
	}
	return p.Dividers[period], p.Dividers[(period+1)%n], true
}

// Contains reports whether the given ISO week number belongs to the period.
func (p Periods) Contains(period, week int) bool {
	start, end, ok := p.Bounds(period)
	if !ok {
		return false
	}
	if end <= start {
		// Wraps across year-end; the closing divider week still counts so
		// the wrapped tail reaches back to the first divider.
		return week >= start || week <= end
	}
	return week >= start && week < end
}

// ActiveWeeks unions membership across all weeks 1..TotalWeeks(year) for
// each requested period index. Unknown indices contribute nothing.
func (p Periods) ActiveWeeks(periods []int) map[int]bool {
	active := make(map[int]bool)
	total := TotalWeeks(p.Year)
	for _, t := range periods {
		for wk := 1; wk <= total; wk++ {
			if p.Contains(t, wk) {
				active[wk] = true
			}
		}
	}
	return active
}

// Arc returns the start and end angles of a period's arc. On wraparound the
// end angle is advanced by a full turn so the arc always runs clockwise.
func (p Periods) Arc(period int) (start, end float64, ok bool) {
	startWeek, endWeek, ok := p.Bounds(period)
	if !ok {
		return 0, 0, false
	}

	sMon, _ := WeekRange(p.Year, startWeek)
	eMon, _ := WeekRange(p.Year, endWeek)
	start = Angle(p.Year, sMon)
	end = Angle(p.Year, eMon)

	if endWeek <= startWeek {
		end += 2 * math.Pi
	}
	return start, end, true
}

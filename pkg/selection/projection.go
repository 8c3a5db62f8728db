package selection

import (
	"github.com/aiyaulmo/verksamhetscykel/pkg/calendar"
	"github.com/aiyaulmo/verksamhetscykel/pkg/model"
)

// Projection is the derived activation state, recomputed after every
// transition. Active sets union the clicked set with the hovered index of
// the same kind; Source is the axis that wins the priority order
// ring > month > period when several axes have active members.
type Projection struct {
	Months  map[int]bool
	Rings   map[int]bool
	Periods map[int]bool

	// ActiveWeeks translates active periods into ISO week numbers; it is
	// consulted only when Source is the period axis, and only for event
	// markers.
	ActiveWeeks map[int]bool

	Source Axis
	Any    bool
}

// Project computes the activation projection for a selection state. The
// period index is needed to translate period activation into week numbers.
func Project(s *State, periods calendar.Periods) Projection {
	p := Projection{
		Months:  unionHover(s.Months, s.HoveredMonth),
		Rings:   unionHover(s.Rings, s.HoveredRing),
		Periods: unionHover(s.Periods, s.HoveredPeriod),
	}

	switch {
	case len(p.Rings) > 0:
		p.Source = AxisRing
	case len(p.Months) > 0:
		p.Source = AxisMonth
	case len(p.Periods) > 0:
		p.Source = AxisPeriod
	default:
		p.Source = AxisNone
	}
	p.Any = p.Source != AxisNone

	if p.Source == AxisPeriod {
		var active []int
		for t := range p.Periods {
			active = append(active, t)
		}
		p.ActiveWeeks = periods.ActiveWeeks(active)
	}
	return p
}

func unionHover(clicked map[int]bool, hovered int) map[int]bool {
	out := make(map[int]bool, len(clicked)+1)
	for i := range clicked {
		out[i] = true
	}
	if hovered != NoHover {
		out[hovered] = true
	}
	return out
}

// EventActive reports whether an event marker is active given its ring
// index, zero-based month and ISO week number.
func (p Projection) EventActive(ring, month, week int) bool {
	switch p.Source {
	case AxisRing:
		return p.Rings[ring]
	case AxisMonth:
		return p.Months[month]
	case AxisPeriod:
		return p.ActiveWeeks[week]
	}
	return false
}

// EventDimmed reports whether an event marker should be dimmed.
func (p Projection) EventDimmed(ring, month, week int) bool {
	return p.Any && !p.EventActive(ring, month, week)
}

// SegmentActive reports whether a ring segment (ring index × month index)
// is active. Ring activation wins over month activation; period activation
// never reaches ring segments.
func (p Projection) SegmentActive(ring, month int) bool {
	switch p.Source {
	case AxisRing:
		return p.Rings[ring]
	case AxisMonth:
		return p.Months[month]
	}
	return false
}

// SegmentDimmed reports whether a ring segment should be dimmed. Ring
// segments are never dimmed by period-only activation.
func (p Projection) SegmentDimmed(ring, month int) bool {
	if !p.Any || p.Source == AxisPeriod {
		return false
	}
	return !p.SegmentActive(ring, month)
}

// MonthDimmed reports whether a month arc or its label should be dimmed.
// Month arcs, like ring segments, are exempt from period-only dimming.
func (p Projection) MonthDimmed(month int) bool {
	if !p.Any || p.Source == AxisPeriod {
		return false
	}
	switch p.Source {
	case AxisMonth:
		return !p.Months[month]
	default:
		// Ring activation leaves no month active.
		return true
	}
}

// PeriodDimmed reports whether a period arc should be dimmed.
func (p Projection) PeriodDimmed(period int) bool {
	return p.Any && !p.Periods[period]
}

// FacetVisible reports whether the event passes the facet filters: with no
// facet enabled every event passes, otherwise the event must carry at
// least one enabled facet.
func (s *State) FacetVisible(e model.Event) bool {
	if len(s.Facets) == 0 {
		return true
	}
	if s.Facets[FacetVerksamhet] && e.Verksamhet {
		return true
	}
	if s.Facets[FacetEkonomi] && e.Ekonomi {
		return true
	}
	if s.Facets[FacetKvalitet] && e.Kvalitet {
		return true
	}
	return false
}

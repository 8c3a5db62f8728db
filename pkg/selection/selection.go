// Package selection tracks hover and click activation across the wheel's
// four selection axes (month, ring, period, single event) and derives the
// active/dimmed classification consumed by the rendering layer.
//
// A single mutable State record is owned by the interaction layer; the
// toggle functions here are its only mutators, and Project computes all
// derived activation as a pure function of the record.
package selection

// Axis tags which selection axis is currently exclusive.
type Axis int

const (
	AxisNone Axis = iota
	AxisMonth
	AxisRing
	AxisPeriod
)

func (a Axis) String() string {
	switch a {
	case AxisMonth:
		return "month"
	case AxisRing:
		return "ring"
	case AxisPeriod:
		return "period"
	default:
		return "none"
	}
}

// Facet is one of the three independent category-facet filters.
type Facet string

const (
	FacetVerksamhet Facet = "verksamhet"
	FacetEkonomi    Facet = "ekonomi"
	FacetKvalitet   Facet = "kvalitet"
)

// NoHover marks an empty hovered-index slot.
const NoHover = -1

// State is the complete selection state. Click-sets are multi-valued but
// mutually exclusive across axes: toggling on one axis clears the other
// two. Hover never changes mode and never clears click-sets.
type State struct {
	Mode    Axis
	Months  map[int]bool
	Rings   map[int]bool
	Periods map[int]bool

	ClickedEvent string
	HoveredEvent string

	HoveredMonth  int
	HoveredRing   int
	HoveredPeriod int

	Facets map[Facet]bool
}

// New returns an empty selection state.
func New() *State {
	return &State{
		Months:        make(map[int]bool),
		Rings:         make(map[int]bool),
		Periods:       make(map[int]bool),
		HoveredMonth:  NoHover,
		HoveredRing:   NoHover,
		HoveredPeriod: NoHover,
		Facets:        make(map[Facet]bool),
	}
}

// HoverMonth sets the hovered month; LeaveMonth clears it.
func (s *State) HoverMonth(m int) { s.HoveredMonth = m }
func (s *State) LeaveMonth()      { s.HoveredMonth = NoHover }

// HoverRing sets the hovered ring; LeaveRing clears it.
func (s *State) HoverRing(r int) { s.HoveredRing = r }
func (s *State) LeaveRing()      { s.HoveredRing = NoHover }

// HoverPeriod sets the hovered period; LeavePeriod clears it.
func (s *State) HoverPeriod(p int) { s.HoveredPeriod = p }
func (s *State) LeavePeriod()      { s.HoveredPeriod = NoHover }

// HoverEvent sets the hovered event id; LeaveEvent clears it.
func (s *State) HoverEvent(id string) { s.HoveredEvent = id }
func (s *State) LeaveEvent()          { s.HoveredEvent = "" }

// ToggleMonth click-toggles a month: the other two click-sets are cleared,
// mode switches to the month axis, and membership of the index flips. An
// emptied set reverts mode to none.
func (s *State) ToggleMonth(m int) {
	s.Rings = make(map[int]bool)
	s.Periods = make(map[int]bool)
	s.Mode = AxisMonth
	toggle(s.Months, m)
	if len(s.Months) == 0 {
		s.Mode = AxisNone
	}
}

// ToggleRing click-toggles a ring index; see ToggleMonth.
func (s *State) ToggleRing(r int) {
	s.Months = make(map[int]bool)
	s.Periods = make(map[int]bool)
	s.Mode = AxisRing
	toggle(s.Rings, r)
	if len(s.Rings) == 0 {
		s.Mode = AxisNone
	}
}

// TogglePeriod click-toggles a period index; see ToggleMonth.
func (s *State) TogglePeriod(p int) {
	s.Months = make(map[int]bool)
	s.Rings = make(map[int]bool)
	s.Mode = AxisPeriod
	toggle(s.Periods, p)
	if len(s.Periods) == 0 {
		s.Mode = AxisNone
	}
}

// ToggleEvent click-toggles the single clicked event. It reports whether
// the event's detail view is now open. Month/ring/period selection is not
// affected.
func (s *State) ToggleEvent(id string) bool {
	if s.ClickedEvent == id {
		s.ClickedEvent = ""
		return false
	}
	s.ClickedEvent = id
	return true
}

// ToggleFacet flips one of the three facet filters.
func (s *State) ToggleFacet(f Facet) {
	if s.Facets[f] {
		delete(s.Facets, f)
		return
	}
	s.Facets[f] = true
}

// Reset clears every set, mode, hover slot and the clicked event.
func (s *State) Reset() {
	*s = *New()
}

func toggle(set map[int]bool, i int) {
	if set[i] {
		delete(set, i)
		return
	}
	set[i] = true
}

// Package carousel drives the timed multi-phase disclosure of a clicked
// event's detail panel: overview, long-form description, responsible
// party, then back around.
//
// Scheduling is modelled as cancellable disclosures keyed by a generation
// token. Any state change bumps the generation, which implicitly
// invalidates every in-flight timer without per-timer bookkeeping; a stale
// disclosure firing after the user moved on is a no-op.
package carousel

import "time"

// Phase is one of the three detail panel phases.
type Phase int

const (
	PhaseOverview    Phase = 0 // date and overview
	PhaseDescription Phase = 1 // long-form description
	PhaseResponsible Phase = 2 // responsible party
)

// PhaseCount is the cycle length.
const PhaseCount = 3

func (p Phase) String() string {
	switch p {
	case PhaseOverview:
		return "overview"
	case PhaseDescription:
		return "description"
	case PhaseResponsible:
		return "responsible"
	default:
		return "unknown"
	}
}

// Auto-advance delays, measured from the moment the cycle is (re)armed.
const (
	DescriptionDelay = 5 * time.Second
	ResponsibleDelay = 10 * time.Second
	RestartDelay     = 15 * time.Second
)

// Disclosure is one scheduled auto-advance. It carries the owning event id
// and the generation it was armed under so a fired timer can be checked
// for staleness.
type Disclosure struct {
	EventID string
	Gen     int
	Phase   Phase
	After   time.Duration
}

// Controller holds the carousel state for at most one open event.
type Controller struct {
	EventID string
	Phase   Phase
	gen     int
}

// Gen returns the current generation token.
func (c *Controller) Gen() int { return c.gen }

// Open starts (or restarts) the carousel on an event: phase 0 immediately,
// with three disclosures to arm for the auto-advance cycle.
func (c *Controller) Open(eventID string) []Disclosure {
	c.EventID = eventID
	c.Phase = PhaseOverview
	c.gen++
	return c.arm()
}

func (c *Controller) arm() []Disclosure {
	return []Disclosure{
		{EventID: c.EventID, Gen: c.gen, Phase: PhaseDescription, After: DescriptionDelay},
		{EventID: c.EventID, Gen: c.gen, Phase: PhaseResponsible, After: ResponsibleDelay},
		{EventID: c.EventID, Gen: c.gen, Phase: PhaseOverview, After: RestartDelay},
	}
}

// Apply handles a fired disclosure. Stale firings (superseded generation
// or a different owning event) do nothing. When the restart disclosure
// fires, the cycle is re-armed and the next round of disclosures is
// returned for scheduling.
func (c *Controller) Apply(d Disclosure) (changed bool, next []Disclosure) {
	if d.Gen != c.gen || d.EventID != c.EventID || c.EventID == "" {
		return false, nil
	}
	c.Phase = d.Phase
	if d.Phase == PhaseOverview {
		c.gen++
		return true, c.arm()
	}
	return true, nil
}

// Advance moves the phase by direction (+1 forward, -1 back) and cancels
// all pending auto-advances by bumping the generation.
func (c *Controller) Advance(direction int) {
	if c.EventID == "" {
		return
	}
	c.gen++
	c.Phase = Phase((int(c.Phase) + direction + PhaseCount) % PhaseCount)
}

// Close clears the carousel and invalidates every pending disclosure.
func (c *Controller) Close() {
	c.gen++
	c.EventID = ""
	c.Phase = PhaseOverview
}

// IsOpen reports whether an event's detail panel is currently open.
func (c *Controller) IsOpen() bool { return c.EventID != "" }

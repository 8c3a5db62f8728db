package layout

import (
	"github.com/aiyaulmo/verksamhetscykel/pkg/model"
	"github.com/aiyaulmo/verksamhetscykel/pkg/wheel"
)

// PlacedEvent is one event with all of its derived geometry: marker
// position, label anchor and wrapped text, and the three-point connector.
type PlacedEvent struct {
	Event model.Event `json:"event"`

	Angle  float64     `json:"angle"`
	Radius float64     `json:"radius"`
	Marker wheel.Point `json:"marker"`
	Left   bool        `json:"left"`

	LabelPos    wheel.Point `json:"labelPos"`
	LabelLines  []string    `json:"labelLines"`
	LabelWidth  float64     `json:"labelWidth"`
	LabelHeight float64     `json:"labelHeight"`

	// Connector runs marker → elbow → label attachment.
	Connector [3]wheel.Point `json:"connector"`
}

// Arc is an angular span with an index into its source table (month number,
// period index, ring index).
type Arc struct {
	Index int     `json:"index"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// RingBand is one concentric band of the wheel.
type RingBand struct {
	Index int        `json:"index"`
	Ring  model.Ring `json:"ring"`
	Inner float64    `json:"inner"`
	Outer float64    `json:"outer"`
}

// Scene is the complete renderable output of the layout engine, consumed
// by the SVG exporter and the interactive view.
type Scene struct {
	Year       int           `json:"year"`
	TotalWeeks int           `json:"totalWeeks"`
	Events     []PlacedEvent `json:"events"`

	Months  []Arc      `json:"months"`
	Rings   []RingBand `json:"rings"`
	Periods []Arc      `json:"periods"`

	// WeekTicks holds the boundary angle of each week 1..TotalWeeks.
	WeekTicks []float64 `json:"weekTicks"`
}

// EventByID returns the placed event with the given id, or nil.
func (s *Scene) EventByID(id string) *PlacedEvent {
	for i := range s.Events {
		if s.Events[i].Event.ID == id {
			return &s.Events[i]
		}
	}
	return nil
}

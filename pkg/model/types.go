package model

import "time"

// DateLayout is the calendar-date format used throughout the events document.
const DateLayout = "2006-01-02"

// Ring identifies one of the concentric planning-phase bands of the wheel.
// The identifiers match the internal ids produced by the spreadsheet sync
// (events_master.xlsx -> events.json).
type Ring string

const (
	RingLangtidsplanering          Ring = "langtidsplanering"
	RingPlanering                  Ring = "planering"
	RingGenomforandeOchUppfoljning Ring = "genomforande_och_uppfoljning"
	RingUppfoljningOchAnalys       Ring = "uppfoljning_och_analys"

	// RingManad is the virtual month band; events assigned to it sit on the
	// month ring rather than one of the planning-phase rings.
	RingManad Ring = "manad"
)

// IsValid reports whether the ring is one of the known identifiers.
func (r Ring) IsValid() bool {
	switch r {
	case RingLangtidsplanering, RingPlanering, RingGenomforandeOchUppfoljning,
		RingUppfoljningOchAnalys, RingManad:
		return true
	}
	return false
}

// EventType categorizes an event and selects its marker style.
type EventType string

const (
	TypeBeslut         EventType = "beslut"
	TypeInlamning      EventType = "inlamning"
	TypeDialogGemensam EventType = "dialog_gemensam"
	TypeDialogEnskild  EventType = "dialog_enskild"
	TypeOmvarldsanalys EventType = "omvarldsanalys"
)

// IsValid reports whether the event type is one of the known identifiers.
func (t EventType) IsValid() bool {
	switch t {
	case TypeBeslut, TypeInlamning, TypeDialogGemensam, TypeDialogEnskild,
		TypeOmvarldsanalys:
		return true
	}
	return false
}

// Placement controls how an event's radius is resolved.
type Placement string

const (
	// PlacementCenter puts the marker in the middle of its ring.
	PlacementCenter Placement = "center"
	// PlacementLine puts the marker on the boundary line between Ring and
	// Ring2 (the outer edge of the higher-indexed of the two).
	PlacementLine Placement = "linje"
)

// Event is a single dated entry on the wheel, as authored in the events
// document. Geometry (angle, radius, side, label position, connector path)
// is always derived by the layout engine, never stored here.
type Event struct {
	ID          string    `json:"id"`
	Date        string    `json:"date"` // YYYY-MM-DD
	Ring        Ring      `json:"ring"`
	Ring2       Ring      `json:"ring_2,omitempty"`
	Type        EventType `json:"type"`
	Label       string    `json:"label"`
	Description string    `json:"description"`
	Responsible string    `json:"responsible"`
	Verksamhet  bool      `json:"verksamhet"`
	Ekonomi     bool      `json:"ekonomi"`
	Kvalitet    bool      `json:"kvalitet"`
	Placement   Placement `json:"placering"`
	Visible     bool      `json:"visible"`
}

// Day parses the event date.
func (e Event) Day() (time.Time, error) {
	return time.Parse(DateLayout, e.Date)
}

// Month returns the zero-based month index (0 = January) of the event date,
// or -1 if the date does not parse.
func (e Event) Month() int {
	d, err := e.Day()
	if err != nil {
		return -1
	}
	return int(d.Month()) - 1
}

// Week returns the ISO-8601 week number of the event date, or 0 if the date
// does not parse.
func (e Event) Week() int {
	d, err := e.Day()
	if err != nil {
		return 0
	}
	_, wk := d.ISOWeek()
	return wk
}

// MarkerShape is the geometric shape drawn for an event marker.
type MarkerShape string

const (
	ShapeCircle   MarkerShape = "circle"
	ShapeTriangle MarkerShape = "triangle"
	ShapeSquare   MarkerShape = "square"
	ShapeDiamond  MarkerShape = "diamond"
)

// TypeStyle maps an event type to its visual treatment.
type TypeStyle struct {
	Fill  string      `json:"fill"`
	Shape MarkerShape `json:"shape"`
}

// SeasonCurves holds the per-season connector curve factors. A factor of 1
// keeps the elbow on the marker's radial; 0 degenerates to the straight
// marker-to-label line.
type SeasonCurves struct {
	Midwinter float64 `json:"midwinter" yaml:"midwinter"` // Dec, Jan
	Equinox   float64 `json:"equinox" yaml:"equinox"`     // Mar, Apr, Sep, Oct
	Shoulder  float64 `json:"shoulder" yaml:"shoulder"`   // Feb, May, Aug, Nov
	Midsummer float64 `json:"midsummer" yaml:"midsummer"` // Jun, Jul
}

// WheelConfig is the visual configuration block of the events document.
// Loaded once per session and treated as read-only by every component;
// missing fields are filled with defaults by the loader.
type WheelConfig struct {
	Year int `json:"year" yaml:"year"`

	RingCount   int     `json:"ringCount" yaml:"ring_count"`
	InnerRadius float64 `json:"innerRadius" yaml:"inner_radius"`
	OuterRadius float64 `json:"outerRadius" yaml:"outer_radius"`
	MonthInner  float64 `json:"monthInner" yaml:"month_inner"`
	MonthOuter  float64 `json:"monthOuter" yaml:"month_outer"`

	// PeriodDividers is the ordered cyclic list of week numbers that open
	// each period arc; the last period wraps across year-end.
	PeriodDividers []int    `json:"periodDividers" yaml:"period_dividers"`
	PeriodNames    []string `json:"periodNames" yaml:"period_names"`

	RingColors   map[Ring]string `json:"ringColors" yaml:"ring_colors"`
	PeriodColors []string        `json:"periodColors" yaml:"period_colors"`

	// Label column geometry. Offsets are horizontal distances from the
	// wheel center to each side's label column; spacing is the vertical
	// step of the evenly distributed column.
	LabelOffsetLeft   float64 `json:"labelOffsetLeft" yaml:"label_offset_left"`
	LabelOffsetRight  float64 `json:"labelOffsetRight" yaml:"label_offset_right"`
	LabelSpacingLeft  float64 `json:"labelSpacingLeft" yaml:"label_spacing_left"`
	LabelSpacingRight float64 `json:"labelSpacingRight" yaml:"label_spacing_right"`
	LabelRadius       float64 `json:"labelRadius" yaml:"label_radius"`
	LabelWrapWidth    float64 `json:"labelWrapWidth" yaml:"label_wrap_width"`

	// Connector geometry.
	ElbowRadius      float64      `json:"elbowRadius" yaml:"elbow_radius"`
	ConnectorPadding float64      `json:"connectorPadding" yaml:"connector_padding"`
	Curves           SeasonCurves `json:"curves" yaml:"curves"`
}

// CurveFor selects the seasonal curve factor for a zero-based month index.
func (c WheelConfig) CurveFor(month int) float64 {
	switch time.Month(month + 1) {
	case time.December, time.January:
		return c.Curves.Midwinter
	case time.March, time.April, time.September, time.October:
		return c.Curves.Equinox
	case time.June, time.July:
		return c.Curves.Midsummer
	default:
		return c.Curves.Shoulder
	}
}

// Document is the complete events document consumed at startup.
type Document struct {
	Config     WheelConfig             `json:"config"`
	TypeStyles map[EventType]TypeStyle `json:"typeStyle"`
	Events     []Event                 `json:"events"`
}

// StyleFor returns the marker style for an event type, falling back to a
// neutral circle when the type has no entry in the style table.
func (d Document) StyleFor(t EventType) TypeStyle {
	if s, ok := d.TypeStyles[t]; ok {
		if s.Shape == "" {
			s.Shape = ShapeCircle
		}
		return s
	}
	return TypeStyle{Fill: "#999999", Shape: ShapeCircle}
}

// VisibleEvents returns the events that enter the layout pipeline: visible
// records with a parseable date.
func (d Document) VisibleEvents() []Event {
	out := make([]Event, 0, len(d.Events))
	for _, e := range d.Events {
		if !e.Visible {
			continue
		}
		if _, err := e.Day(); err != nil {
			continue
		}
		out = append(out, e)
	}
	return out
}

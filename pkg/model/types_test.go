package model

import (
	"testing"
)

func TestRing_IsValid(t *testing.T) {
	tests := []struct {
		name string
		ring Ring
		want bool
	}{
		{"Langtidsplanering", RingLangtidsplanering, true},
		{"Planering", RingPlanering, true},
		{"Genomforande", RingGenomforandeOchUppfoljning, true},
		{"Uppfoljning", RingUppfoljningOchAnalys, true},
		{"Manad", RingManad, true},
		{"Unknown", "budget", false},
		{"Empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.ring.IsValid(); got != tt.want {
				t.Errorf("Ring.IsValid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEventType_IsValid(t *testing.T) {
	tests := []struct {
		name string
		typ  EventType
		want bool
	}{
		{"Beslut", TypeBeslut, true},
		{"Inlamning", TypeInlamning, true},
		{"DialogGemensam", TypeDialogGemensam, true},
		{"DialogEnskild", TypeDialogEnskild, true},
		{"Omvarldsanalys", TypeOmvarldsanalys, true},
		{"Unknown", "remiss", false},
		{"Empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.typ.IsValid(); got != tt.want {
				t.Errorf("EventType.IsValid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEvent_MonthAndWeek(t *testing.T) {
	e := Event{Date: "2026-01-01"}
	if got := e.Month(); got != 0 {
		t.Errorf("Month() = %d, want 0", got)
	}
	// 2026-01-01 is a Thursday, so it falls in ISO week 1.
	if got := e.Week(); got != 1 {
		t.Errorf("Week() = %d, want 1", got)
	}

	bad := Event{Date: "not-a-date"}
	if got := bad.Month(); got != -1 {
		t.Errorf("Month() on bad date = %d, want -1", got)
	}
	if got := bad.Week(); got != 0 {
		t.Errorf("Week() on bad date = %d, want 0", got)
	}
}

func TestDocument_StyleFor(t *testing.T) {
	doc := Document{
		TypeStyles: map[EventType]TypeStyle{
			TypeBeslut:    {Fill: "#d9534f", Shape: ShapeDiamond},
			TypeInlamning: {Fill: "#5bc0de"}, // shape left unset
		},
	}

	if s := doc.StyleFor(TypeBeslut); s.Shape != ShapeDiamond || s.Fill != "#d9534f" {
		t.Errorf("StyleFor(beslut) = %+v", s)
	}
	if s := doc.StyleFor(TypeInlamning); s.Shape != ShapeCircle {
		t.Errorf("StyleFor(inlamning).Shape = %q, want circle fallback", s.Shape)
	}
	if s := doc.StyleFor("remiss"); s.Shape != ShapeCircle || s.Fill == "" {
		t.Errorf("StyleFor(unknown) = %+v, want neutral circle", s)
	}
}

func TestDocument_VisibleEvents(t *testing.T) {
	doc := Document{Events: []Event{
		{ID: "ev_0", Date: "2026-02-10", Visible: true},
		{ID: "ev_1", Date: "2026-03-01", Visible: false},
		{ID: "ev_2", Date: "garbage", Visible: true},
		{ID: "ev_3", Date: "2026-11-20", Visible: true},
	}}

	got := doc.VisibleEvents()
	if len(got) != 2 {
		t.Fatalf("VisibleEvents() returned %d events, want 2", len(got))
	}
	if got[0].ID != "ev_0" || got[1].ID != "ev_3" {
		t.Errorf("VisibleEvents() = %v, %v", got[0].ID, got[1].ID)
	}
}

func TestWheelConfig_CurveFor(t *testing.T) {
	cfg := WheelConfig{Curves: SeasonCurves{
		Midwinter: 0.9,
		Equinox:   0.6,
		Shoulder:  0.45,
		Midsummer: 0.3,
	}}

	tests := []struct {
		name  string
		month int // zero-based
		want  float64
	}{
		{"January", 0, 0.9},
		{"February", 1, 0.45},
		{"March", 2, 0.6},
		{"April", 3, 0.6},
		{"May", 4, 0.45},
		{"June", 5, 0.3},
		{"July", 6, 0.3},
		{"August", 7, 0.45},
		{"September", 8, 0.6},
		{"October", 9, 0.6},
		{"November", 10, 0.45},
		{"December", 11, 0.9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cfg.CurveFor(tt.month); got != tt.want {
				t.Errorf("CurveFor(%d) = %v, want %v", tt.month, got, tt.want)
			}
		})
	}
}

package layout

import (
	"math"
	"testing"

	"github.com/aiyaulmo/verksamhetscykel/pkg/model"
	"github.com/aiyaulmo/verksamhetscykel/pkg/wheel"
)

func testConfig() model.WheelConfig {
	return model.WheelConfig{
		Year:              2026,
		RingCount:         4,
		InnerRadius:       100,
		OuterRadius:       300,
		MonthInner:        300,
		MonthOuter:        340,
		PeriodDividers:    []int{1, 14, 27, 40},
		LabelOffsetLeft:   420,
		LabelOffsetRight:  420,
		LabelSpacingLeft:  26,
		LabelSpacingRight: 26,
		LabelRadius:       360,
		LabelWrapWidth:    140,
		ElbowRadius:       380,
		ConnectorPadding:  8,
		Curves:            model.SeasonCurves{Midwinter: 0.9, Equinox: 0.6, Shoulder: 0.45, Midsummer: 0.3},
	}
}

func TestDistributeEvenly(t *testing.T) {
	tests := []struct {
		name    string
		n       int
		spacing float64
	}{
		{"Single", 1, 26},
		{"Pair", 2, 26},
		{"Odd", 5, 18},
		{"Even", 6, 30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ys := DistributeEvenly(tt.n, tt.spacing)
			if len(ys) != tt.n {
				t.Fatalf("got %d positions, want %d", len(ys), tt.n)
			}

			sum := 0.0
			for i, y := range ys {
				sum += y
				if i > 0 {
					if d := ys[i] - ys[i-1]; math.Abs(d-tt.spacing) > 1e-9 {
						t.Errorf("step %d = %v, want %v", i, d, tt.spacing)
					}
				}
			}
			if math.Abs(sum/float64(tt.n)) > 1e-9 {
				t.Errorf("mean = %v, want 0", sum/float64(tt.n))
			}
		})
	}
}

func TestIsLeft(t *testing.T) {
	tests := []struct {
		name  string
		angle float64
		want  bool
	}{
		{"TwelveOClock", -math.Pi / 2, true},
		{"ThreeOClock", 0, false},
		{"SixOClock", math.Pi / 2, true},
		{"NineOClock", math.Pi, true},
		{"JustRightOfTop", -math.Pi/2 + 0.01, false},
		{"JustLeftOfBottom", math.Pi/2 + 0.01, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsLeft(tt.angle); got != tt.want {
				t.Errorf("IsLeft(%v) = %v, want %v", tt.angle, got, tt.want)
			}
		})
	}
}

func TestElbowAngle_PassThrough(t *testing.T) {
	// Marker at angle 0 inside the elbow circle, anchor straight out along
	// the x axis: the intersection is at angle 0, so with curve 1 the elbow
	// stays at 0.
	marker := wheel.Point{X: 200, Y: 0}
	anchor := wheel.Point{X: 500, Y: 0}
	if got := ElbowAngle(marker, anchor, 0, 380, 1); math.Abs(got) > 1e-9 {
		t.Errorf("ElbowAngle = %v, want 0", got)
	}
}

func TestElbowAngle_CurveInterpolation(t *testing.T) {
	// Marker at 12 o'clock, anchor off to the right: curve 0 gives the pure
	// intersection angle, curve 1 gives the marker's radial angle.
	marker := wheel.FromPolar(-math.Pi/2, 200)
	anchor := wheel.Point{X: 412, Y: -26}

	straight := ElbowAngle(marker, anchor, -math.Pi/2, 380, 0)
	radial := ElbowAngle(marker, anchor, -math.Pi/2, 380, 1)
	if math.Abs(radial-(-math.Pi/2)) > 1e-9 {
		t.Errorf("curve=1 elbow = %v, want -π/2", radial)
	}

	half := ElbowAngle(marker, anchor, -math.Pi/2, 380, 0.5)
	want := straight + normalizeDiff(-math.Pi/2-straight)*0.5
	if math.Abs(half-want) > 1e-9 {
		t.Errorf("curve=0.5 elbow = %v, want %v", half, want)
	}
}

func TestElbowAngle_Degenerate(t *testing.T) {
	// Zero-length segment falls back to the radial angle.
	p := wheel.Point{X: 200, Y: 0}
	if got := ElbowAngle(p, p, 1.25, 380, 0.5); got != 1.25 {
		t.Errorf("zero-length segment elbow = %v, want radial 1.25", got)
	}

	// A line whose closest approach to the center exceeds the elbow radius
	// has no real intersection (negative discriminant).
	m := wheel.Point{X: 0, Y: 500}
	a := wheel.Point{X: 10, Y: 500}
	if got := ElbowAngle(m, a, 0.75, 380, 0.5); got != 0.75 {
		t.Errorf("no-intersection elbow = %v, want radial 0.75", got)
	}
}

func TestNormalizeDiff(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{math.Pi / 2, math.Pi / 2},
		{3 * math.Pi / 2, -math.Pi / 2},
		{-3 * math.Pi / 2, math.Pi / 2},
		{2 * math.Pi, 0},
	}
	for _, tt := range tests {
		if got := normalizeDiff(tt.in); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("normalizeDiff(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestEngine_Layout(t *testing.T) {
	events := []model.Event{
		{ID: "ev_0", Date: "2026-02-10", Ring: model.RingPlanering, Label: "Årsredovisning", Visible: true},
		{ID: "ev_1", Date: "2026-03-05", Ring: model.RingPlanering, Label: "Budgetdialog", Visible: true},
		{ID: "ev_2", Date: "2026-08-20", Ring: model.RingUppfoljningOchAnalys, Label: "Delårsrapport", Visible: true},
		{ID: "ev_3", Date: "2026-11-30", Ring: model.RingManad, Label: "Internkontrollplan", Visible: true},
	}

	e := NewEngine(testConfig(), nil)
	scene := e.Layout(events)

	if len(scene.Events) != 4 {
		t.Fatalf("placed %d events, want 4", len(scene.Events))
	}
	if len(scene.Months) != 12 {
		t.Errorf("got %d month arcs, want 12", len(scene.Months))
	}
	if len(scene.Rings) != 4 {
		t.Errorf("got %d ring bands, want 4", len(scene.Rings))
	}
	if len(scene.Periods) != 4 {
		t.Errorf("got %d period arcs, want 4", len(scene.Periods))
	}
	if scene.TotalWeeks != 53 {
		t.Errorf("TotalWeeks = %d, want 53 for 2026", scene.TotalWeeks)
	}
	if len(scene.WeekTicks) != 53 {
		t.Errorf("got %d week ticks, want 53", len(scene.WeekTicks))
	}

	for _, p := range scene.Events {
		// Every visible event has exactly one angle in [-π/2, 3π/2).
		if p.Angle < -math.Pi/2 || p.Angle >= 3*math.Pi/2 {
			t.Errorf("%s: angle %v outside [-π/2, 3π/2)", p.Event.ID, p.Angle)
		}
		if p.Left != IsLeft(p.Angle) {
			t.Errorf("%s: side does not match angle", p.Event.ID)
		}
		if len(p.LabelLines) == 0 {
			t.Errorf("%s: no label lines", p.Event.ID)
		}
		if p.Connector[0] != p.Marker {
			t.Errorf("%s: connector does not start at marker", p.Event.ID)
		}
	}

	// Feb and Mar events sit on the right side; Aug and Nov on the left.
	if scene.Events[0].Left || scene.Events[1].Left {
		t.Errorf("early-year events should be on the right")
	}
	if !scene.Events[2].Left || !scene.Events[3].Left {
		t.Errorf("late-summer and autumn events should be on the left")
	}
}

func TestEngine_LayoutColumns(t *testing.T) {
	cfg := testConfig()
	events := []model.Event{
		{ID: "ev_0", Date: "2026-01-15", Ring: model.RingPlanering, Label: "A", Visible: true},
		{ID: "ev_1", Date: "2026-02-15", Ring: model.RingPlanering, Label: "B", Visible: true},
		{ID: "ev_2", Date: "2026-04-15", Ring: model.RingPlanering, Label: "C", Visible: true},
	}

	scene := NewEngine(cfg, nil).Layout(events)

	// All on the right side: one column at +LabelOffsetRight, evenly spaced
	// and centered on zero.
	var ys []float64
	for _, p := range scene.Events {
		if p.LabelPos.X != cfg.LabelOffsetRight {
			t.Errorf("%s: label x = %v, want %v", p.Event.ID, p.LabelPos.X, cfg.LabelOffsetRight)
		}
		ys = append(ys, p.LabelPos.Y)
	}
	sum := 0.0
	for _, y := range ys {
		sum += y
	}
	if math.Abs(sum) > 1e-9 {
		t.Errorf("column not centered: mean %v", sum/3)
	}

	// Label attachment: right side attaches at the label's left edge minus
	// the padding constant.
	p := scene.Events[0]
	wantX := p.LabelPos.X - cfg.ConnectorPadding
	if math.Abs(p.Connector[2].X-wantX) > 1e-9 {
		t.Errorf("right-side attachment x = %v, want %v", p.Connector[2].X, wantX)
	}
}

func TestEngine_LeftAttachment(t *testing.T) {
	cfg := testConfig()
	events := []model.Event{
		{ID: "ev_0", Date: "2026-09-15", Ring: model.RingPlanering, Label: "Delårsbokslut", Visible: true},
	}
	scene := NewEngine(cfg, nil).Layout(events)

	p := scene.Events[0]
	if !p.Left {
		t.Fatalf("September event should be on the left")
	}
	wantX := p.LabelPos.X + p.LabelWidth + cfg.ConnectorPadding
	if math.Abs(p.Connector[2].X-wantX) > 1e-9 {
		t.Errorf("left-side attachment x = %v, want %v", p.Connector[2].X, wantX)
	}
}

func TestHeuristicMeasurer(t *testing.T) {
	m := HeuristicMeasurer{FontSize: 10}

	lines, w, h := m.Measure("ett två tre fyra fem", 60)
	if len(lines) < 2 {
		t.Errorf("expected wrapping, got %v", lines)
	}
	if w <= 0 || h <= 0 {
		t.Errorf("bounding box = (%v, %v), want positive", w, h)
	}

	lines, w, h = m.Measure("", 60)
	if lines != nil || w != 0 || h != 0 {
		t.Errorf("empty text should measure empty, got %v (%v, %v)", lines, w, h)
	}

	// No wrap width: single line.
	lines, _, _ = m.Measure("ett två tre", 0)
	if len(lines) != 1 {
		t.Errorf("unwrapped text should stay on one line, got %v", lines)
	}
}

// Package layout converts dated, ring-assigned events into the renderable
// wheel scene: marker positions, collision-free label columns on either
// side of the wheel, and bent connector polylines between the two.
package layout

import (
	"math"
	"sort"

	"github.com/aiyaulmo/verksamhetscykel/pkg/calendar"
	"github.com/aiyaulmo/verksamhetscykel/pkg/model"
	"github.com/aiyaulmo/verksamhetscykel/pkg/wheel"
)

// Engine lays out events for one wheel configuration. The configuration is
// read-only; an Engine may be reused across layout passes.
type Engine struct {
	Cfg      model.WheelConfig
	Resolver *wheel.Resolver
	Periods  calendar.Periods
	Measurer TextMeasurer
}

// NewEngine builds a layout engine from a loaded configuration. A nil
// measurer falls back to the font-size heuristic.
func NewEngine(cfg model.WheelConfig, measurer TextMeasurer) *Engine {
	if measurer == nil {
		measurer = HeuristicMeasurer{FontSize: 12}
	}
	return &Engine{
		Cfg:      cfg,
		Resolver: wheel.NewResolver(wheel.GeometryFrom(cfg)),
		Periods:  calendar.NewPeriods(cfg.PeriodDividers, cfg.Year),
		Measurer: measurer,
	}
}

// IsLeft reports whether an angle lands on the left half of the wheel.
func IsLeft(angle float64) bool {
	return angle >= math.Pi/2 || angle <= -math.Pi/2
}

// DistributeEvenly assigns n vertical positions as an arithmetic sequence
// with common difference spacing, centered so the mean position is zero.
// Angular truth is deliberately sacrificed for label legibility; the
// connector line carries the marker back to its real position.
func DistributeEvenly(n int, spacing float64) []float64 {
	ys := make([]float64, n)
	for i := range ys {
		ys[i] = (float64(i) - float64(n-1)/2) * spacing
	}
	return ys
}

// Layout computes the full scene for the given events. Events with dates
// that do not parse are skipped (the loader already filters them; this is
// a second guard so the engine cannot fail).
func (e *Engine) Layout(events []model.Event) Scene {
	scene := Scene{
		Year:       e.Cfg.Year,
		TotalWeeks: calendar.TotalWeeks(e.Cfg.Year),
	}

	placed := make([]PlacedEvent, 0, len(events))
	for _, ev := range events {
		day, err := ev.Day()
		if err != nil {
			continue
		}
		angle := calendar.Angle(e.Cfg.Year, day)
		radius := e.Resolver.EventRadius(ev)
		placed = append(placed, PlacedEvent{
			Event:  ev,
			Angle:  angle,
			Radius: radius,
			Marker: wheel.FromPolar(angle, radius),
			Left:   IsLeft(angle),
		})
	}

	var left, right []int
	for i := range placed {
		if placed[i].Left {
			left = append(left, i)
		} else {
			right = append(right, i)
		}
	}
	e.layoutSide(placed, left, true)
	e.layoutSide(placed, right, false)

	scene.Events = placed
	scene.Months = e.monthArcs()
	scene.Rings = e.ringBands()
	scene.Periods = e.periodArcs()
	scene.WeekTicks = e.weekTicks(scene.TotalWeeks)
	return scene
}

// layoutSide orders one side's events by their angular sine projection,
// spreads them into an evenly spaced column, and routes the connectors.
func (e *Engine) layoutSide(placed []PlacedEvent, idx []int, isLeft bool) {
	if len(idx) == 0 {
		return
	}

	// The sine projection onto the label radius is only a stable sort key;
	// the final vertical positions come from DistributeEvenly.
	key := func(i int) float64 {
		return math.Sin(placed[i].Angle) * e.Cfg.LabelRadius
	}
	sort.SliceStable(idx, func(a, b int) bool {
		ka, kb := key(idx[a]), key(idx[b])
		if ka != kb {
			return ka < kb
		}
		if placed[idx[a]].Event.Date != placed[idx[b]].Event.Date {
			return placed[idx[a]].Event.Date < placed[idx[b]].Event.Date
		}
		return placed[idx[a]].Event.ID < placed[idx[b]].Event.ID
	})

	columnX := e.Cfg.LabelOffsetRight
	spacing := e.Cfg.LabelSpacingRight
	if isLeft {
		columnX = -e.Cfg.LabelOffsetLeft
		spacing = e.Cfg.LabelSpacingLeft
	}

	ys := DistributeEvenly(len(idx), spacing)
	for n, i := range idx {
		p := &placed[i]
		p.LabelPos = wheel.Point{X: columnX, Y: ys[n]}
		p.LabelLines, p.LabelWidth, p.LabelHeight = e.Measurer.Measure(p.Event.Label, e.Cfg.LabelWrapWidth)

		anchor := e.attachment(p)
		curve := e.Cfg.CurveFor(p.Event.Month())
		p.Connector = Route(p.Marker, anchor, p.Angle, e.Cfg.ElbowRadius, curve)
	}
}

// attachment computes where the connector meets the label: the left edge
// minus padding on the right side, the right edge plus padding on the left.
func (e *Engine) attachment(p *PlacedEvent) wheel.Point {
	if p.Left {
		return wheel.Point{
			X: p.LabelPos.X + p.LabelWidth + e.Cfg.ConnectorPadding,
			Y: p.LabelPos.Y,
		}
	}
	return wheel.Point{
		X: p.LabelPos.X - e.Cfg.ConnectorPadding,
		Y: p.LabelPos.Y,
	}
}

func (e *Engine) monthArcs() []Arc {
	arcs := make([]Arc, 12)
	for m := 0; m < 12; m++ {
		s, en := calendar.MonthArc(e.Cfg.Year, m)
		arcs[m] = Arc{Index: m, Start: s, End: en}
	}
	return arcs
}

func (e *Engine) ringBands() []RingBand {
	order := []model.Ring{
		model.RingLangtidsplanering,
		model.RingPlanering,
		model.RingGenomforandeOchUppfoljning,
		model.RingUppfoljningOchAnalys,
	}
	geo := e.Resolver.Geo
	bands := make([]RingBand, 0, geo.RingCount)
	for i := 0; i < geo.RingCount; i++ {
		inner, outer := geo.Band(i)
		b := RingBand{Index: i, Inner: inner, Outer: outer}
		if i < len(order) {
			b.Ring = order[i]
		}
		bands = append(bands, b)
	}
	return bands
}

func (e *Engine) periodArcs() []Arc {
	arcs := make([]Arc, 0, e.Periods.Count())
	for t := 0; t < e.Periods.Count(); t++ {
		s, en, ok := e.Periods.Arc(t)
		if !ok {
			continue
		}
		arcs = append(arcs, Arc{Index: t, Start: s, End: en})
	}
	return arcs
}

func (e *Engine) weekTicks(total int) []float64 {
	ticks := make([]float64, 0, total)
	for wk := 1; wk <= total; wk++ {
		monday, _ := calendar.WeekRange(e.Cfg.Year, wk)
		ticks = append(ticks, calendar.Angle(e.Cfg.Year, monday))
	}
	return ticks
}

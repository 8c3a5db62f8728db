// Package export renders a computed wheel scene to a standalone SVG
// document.
package export

import (
	"fmt"
	"math"
	"strings"

	"github.com/aiyaulmo/verksamhetscykel/pkg/layout"
	"github.com/aiyaulmo/verksamhetscykel/pkg/model"
	"github.com/aiyaulmo/verksamhetscykel/pkg/selection"
	"github.com/aiyaulmo/verksamhetscykel/pkg/wheel"
)

// Style constants for the SVG output.
const (
	fontFamily = "Arial, sans-serif"

	labelFontSize = 12.0
	weekFontSize  = 8.0
	monthFontSize = 13.0

	markerSize      = 6.0
	weekTickLength  = 6.0
	periodGap       = 14.0
	periodThickness = 16.0
	canvasMargin    = 40.0

	dimOpacity = 0.25

	backgroundColor = "#ffffff"
	gridColor       = "#d0d0d0"
	connectorColor  = "#666666"
	textColor       = "#333333"
)

var monthNames = [12]string{
	"Januari", "Februari", "Mars", "April", "Maj", "Juni",
	"Juli", "Augusti", "September", "Oktober", "November", "December",
}

// Renderer turns scenes into SVG markup. A non-nil projection dims
// inactive elements the same way the interactive view does.
type Renderer struct {
	Doc        *model.Document
	Projection *selection.Projection

	resolver *wheel.Resolver
}

// NewRenderer prepares a renderer for a loaded document. projection may
// be nil for an undimmed export.
func NewRenderer(doc *model.Document, projection *selection.Projection) *Renderer {
	return &Renderer{
		Doc:        doc,
		Projection: projection,
		resolver:   wheel.NewResolver(wheel.GeometryFrom(doc.Config)),
	}
}

// Render produces the complete SVG document for a scene.
func (r *Renderer) Render(scene *layout.Scene) string {
	cfg := r.Doc.Config

	// The canvas must hold the label columns on both sides.
	halfW := math.Max(cfg.LabelOffsetLeft, cfg.LabelOffsetRight) + cfg.LabelWrapWidth + canvasMargin
	halfH := cfg.MonthOuter + periodGap + periodThickness + canvasMargin
	for _, p := range scene.Events {
		if need := math.Abs(p.LabelPos.Y) + labelFontSize + canvasMargin; need > halfH {
			halfH = need
		}
	}
	width := 2 * halfW
	height := 2 * halfH

	var svg strings.Builder
	fmt.Fprintf(&svg, `<?xml version="1.0" encoding="UTF-8"?>
<svg width="%.0f" height="%.0f" viewBox="%.0f %.0f %.0f %.0f" xmlns="http://www.w3.org/2000/svg">
<rect x="%.0f" y="%.0f" width="100%%" height="100%%" fill="%s"/>
`, width, height, -halfW, -halfH, width, height, -halfW, -halfH, backgroundColor)
	fmt.Fprintf(&svg, `<defs>
<style>
.label-text { font-family: %s; font-size: %.0fpx; fill: %s; }
.month-text { font-family: %s; font-size: %.0fpx; font-weight: bold; fill: %s; }
.week-text { font-family: %s; font-size: %.0fpx; fill: %s; }
</style>
</defs>
`, fontFamily, labelFontSize, textColor,
		fontFamily, monthFontSize, backgroundColor,
		fontFamily, weekFontSize, textColor)

	r.writeRings(&svg, scene)
	r.writeMonths(&svg, scene)
	r.writeWeeks(&svg, scene)
	r.writePeriods(&svg, scene)
	r.writeConnectors(&svg, scene)
	r.writeMarkers(&svg, scene)
	r.writeLabels(&svg, scene)

	svg.WriteString("</svg>\n")
	return svg.String()
}

func (r *Renderer) writeRings(svg *strings.Builder, scene *layout.Scene) {
	cfg := r.Doc.Config
	for _, band := range scene.Rings {
		fill := cfg.RingColors[band.Ring]
		if fill == "" {
			fill = gridColor
		}
		opacity := 1.0
		if r.segmentDimmedAll(band.Index) {
			opacity = dimOpacity
		}
		mid := (band.Inner + band.Outer) / 2
		fmt.Fprintf(svg, `<circle cx="0" cy="0" r="%.1f" fill="none" stroke="%s" stroke-width="%.1f" stroke-opacity="%.2f"/>`+"\n",
			mid, fill, band.Outer-band.Inner, opacity*0.35)
		fmt.Fprintf(svg, `<circle cx="0" cy="0" r="%.1f" fill="none" stroke="%s" stroke-width="1"/>`+"\n",
			band.Outer, gridColor)
	}
}

// segmentDimmedAll reports whether every segment of a ring is dimmed; the
// flat export has no per-month segmentation for the band stroke itself.
func (r *Renderer) segmentDimmedAll(ring int) bool {
	if r.Projection == nil {
		return false
	}
	for m := 0; m < 12; m++ {
		if !r.Projection.SegmentDimmed(ring, m) {
			return false
		}
	}
	return true
}

func (r *Renderer) writeMonths(svg *strings.Builder, scene *layout.Scene) {
	cfg := r.Doc.Config
	fill := cfg.RingColors[model.RingManad]
	if fill == "" {
		fill = gridColor
	}
	for _, arc := range scene.Months {
		opacity := 1.0
		if r.Projection != nil && r.Projection.MonthDimmed(arc.Index) {
			opacity = dimOpacity
		}
		fmt.Fprintf(svg, `<path d="%s" fill="%s" fill-opacity="%.2f" stroke="%s" stroke-width="1"/>`+"\n",
			annularSector(cfg.MonthInner, cfg.MonthOuter, arc.Start, arc.End), fill, opacity, backgroundColor)

		mid := (arc.Start + arc.End) / 2
		pos := wheel.FromPolar(mid, (cfg.MonthInner+cfg.MonthOuter)/2)
		fmt.Fprintf(svg, `<text x="%.1f" y="%.1f" class="month-text" text-anchor="middle" dominant-baseline="middle" opacity="%.2f">%s</text>`+"\n",
			pos.X, pos.Y, opacity, monthNames[arc.Index])
	}
}

func (r *Renderer) writeWeeks(svg *strings.Builder, scene *layout.Scene) {
	cfg := r.Doc.Config
	for i, angle := range scene.WeekTicks {
		from := wheel.FromPolar(angle, cfg.MonthOuter)
		to := wheel.FromPolar(angle, cfg.MonthOuter+weekTickLength)
		fmt.Fprintf(svg, `<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="1"/>`+"\n",
			from.X, from.Y, to.X, to.Y, gridColor)

		// Week numbers sit between this tick and the next.
		next := angle + 2*math.Pi/float64(len(scene.WeekTicks))
		if i+1 < len(scene.WeekTicks) {
			next = scene.WeekTicks[i+1]
		}
		pos := wheel.FromPolar((angle+next)/2, cfg.MonthOuter+weekTickLength+4)
		fmt.Fprintf(svg, `<text x="%.1f" y="%.1f" class="week-text" text-anchor="middle" dominant-baseline="middle">%d</text>`+"\n",
			pos.X, pos.Y, i+1)
	}
}

func (r *Renderer) writePeriods(svg *strings.Builder, scene *layout.Scene) {
	cfg := r.Doc.Config
	inner := cfg.MonthOuter + periodGap
	for _, arc := range scene.Periods {
		fill := gridColor
		if len(cfg.PeriodColors) > 0 {
			fill = cfg.PeriodColors[arc.Index%len(cfg.PeriodColors)]
		}
		opacity := 1.0
		if r.Projection != nil && r.Projection.PeriodDimmed(arc.Index) {
			opacity = dimOpacity
		}
		fmt.Fprintf(svg, `<path d="%s" fill="%s" fill-opacity="%.2f"/>`+"\n",
			annularSector(inner, inner+periodThickness, arc.Start, arc.End), fill, opacity)
	}
}

func (r *Renderer) writeConnectors(svg *strings.Builder, scene *layout.Scene) {
	for _, p := range scene.Events {
		opacity := 1.0
		if r.eventDimmed(p) {
			opacity = dimOpacity
		}
		fmt.Fprintf(svg, `<polyline points="%.1f,%.1f %.1f,%.1f %.1f,%.1f" fill="none" stroke="%s" stroke-width="1" stroke-opacity="%.2f"/>`+"\n",
			p.Connector[0].X, p.Connector[0].Y,
			p.Connector[1].X, p.Connector[1].Y,
			p.Connector[2].X, p.Connector[2].Y,
			connectorColor, opacity)
	}
}

func (r *Renderer) writeMarkers(svg *strings.Builder, scene *layout.Scene) {
	for _, p := range scene.Events {
		style := r.Doc.StyleFor(p.Event.Type)
		opacity := 1.0
		if r.eventDimmed(p) {
			opacity = dimOpacity
		}
		writeMarkerShape(svg, style.Shape, p.Marker, style.Fill, opacity)
	}
}

func writeMarkerShape(svg *strings.Builder, shape model.MarkerShape, at wheel.Point, fill string, opacity float64) {
	s := markerSize
	switch shape {
	case model.ShapeTriangle:
		fmt.Fprintf(svg, `<polygon points="%.1f,%.1f %.1f,%.1f %.1f,%.1f" fill="%s" fill-opacity="%.2f"/>`+"\n",
			at.X, at.Y-s, at.X-s, at.Y+s, at.X+s, at.Y+s, fill, opacity)
	case model.ShapeSquare:
		fmt.Fprintf(svg, `<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s" fill-opacity="%.2f"/>`+"\n",
			at.X-s, at.Y-s, 2*s, 2*s, fill, opacity)
	case model.ShapeDiamond:
		fmt.Fprintf(svg, `<polygon points="%.1f,%.1f %.1f,%.1f %.1f,%.1f %.1f,%.1f" fill="%s" fill-opacity="%.2f"/>`+"\n",
			at.X, at.Y-s, at.X+s, at.Y, at.X, at.Y+s, at.X-s, at.Y, fill, opacity)
	default:
		fmt.Fprintf(svg, `<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s" fill-opacity="%.2f"/>`+"\n",
			at.X, at.Y, s, fill, opacity)
	}
}

func (r *Renderer) writeLabels(svg *strings.Builder, scene *layout.Scene) {
	for _, p := range scene.Events {
		opacity := 1.0
		if r.eventDimmed(p) {
			opacity = dimOpacity
		}
		fmt.Fprintf(svg, `<text x="%.1f" y="%.1f" class="label-text" opacity="%.2f">`, p.LabelPos.X, p.LabelPos.Y, opacity)
		for i, line := range p.LabelLines {
			dy := 0.0
			if i > 0 {
				dy = labelFontSize * 1.2
			}
			fmt.Fprintf(svg, `<tspan x="%.1f" dy="%.1f">%s</tspan>`, p.LabelPos.X, dy, escapeText(line))
		}
		svg.WriteString("</text>\n")
	}
}

func (r *Renderer) eventDimmed(p layout.PlacedEvent) bool {
	if r.Projection == nil {
		return false
	}
	ring := r.resolver.Index(p.Event.Ring)
	return r.Projection.EventDimmed(ring, p.Event.Month(), p.Event.Week())
}

// annularSector builds the path of a filled band segment between two radii
// and two angles. Spans of half a turn or more set the large-arc flag.
func annularSector(rInner, rOuter, a0, a1 float64) string {
	largeArc := 0
	if a1-a0 >= math.Pi {
		largeArc = 1
	}
	p0 := wheel.FromPolar(a0, rOuter)
	p1 := wheel.FromPolar(a1, rOuter)
	p2 := wheel.FromPolar(a1, rInner)
	p3 := wheel.FromPolar(a0, rInner)
	return fmt.Sprintf("M %.1f %.1f A %.1f %.1f 0 %d 1 %.1f %.1f L %.1f %.1f A %.1f %.1f 0 %d 0 %.1f %.1f Z",
		p0.X, p0.Y, rOuter, rOuter, largeArc, p1.X, p1.Y,
		p2.X, p2.Y, rInner, rInner, largeArc, p3.X, p3.Y)
}

func escapeText(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return s
}

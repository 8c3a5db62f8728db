// Package wheel resolves categorical ring assignments to radii on the
// circular layout.
package wheel

import (
	"math"

	"github.com/aiyaulmo/verksamhetscykel/pkg/model"
)

// ringIndex orders the planning-phase rings from the center outward.
var ringIndex = map[model.Ring]int{
	model.RingLangtidsplanering:          0,
	model.RingPlanering:                  1,
	model.RingGenomforandeOchUppfoljning: 2,
	model.RingUppfoljningOchAnalys:       3,
}

// Point is a cartesian position with the wheel center at the origin.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// FromPolar converts an angle/radius pair to cartesian coordinates.
func FromPolar(angle, radius float64) Point {
	return Point{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)}
}

// Geometry holds the radial dimensions of the wheel.
type Geometry struct {
	Inner      float64
	Outer      float64
	RingCount  int
	MonthInner float64
	MonthOuter float64
}

// GeometryFrom extracts the radial dimensions from a wheel configuration.
func GeometryFrom(cfg model.WheelConfig) Geometry {
	return Geometry{
		Inner:      cfg.InnerRadius,
		Outer:      cfg.OuterRadius,
		RingCount:  cfg.RingCount,
		MonthInner: cfg.MonthInner,
		MonthOuter: cfg.MonthOuter,
	}
}

// Gap returns the radial thickness of one ring.
func (g Geometry) Gap() float64 {
	if g.RingCount <= 0 {
		return 0
	}
	return (g.Outer - g.Inner) / float64(g.RingCount)
}

// Resolver maps ring names to radii. Unknown names degrade to the first
// ring; every such fallback is counted so the loader can report suspect
// data instead of masking it silently.
type Resolver struct {
	Geo       Geometry
	Fallbacks map[model.Ring]int
}

// NewResolver builds a resolver over the given geometry.
func NewResolver(geo Geometry) *Resolver {
	return &Resolver{Geo: geo, Fallbacks: make(map[model.Ring]int)}
}

// Index returns the zero-based ring index for a name, defaulting unknown
// names to 0.
func (r *Resolver) Index(ring model.Ring) int {
	if idx, ok := ringIndex[ring]; ok {
		return idx
	}
	r.Fallbacks[ring]++
	return 0
}

// Radius resolves a ring name to the midpoint radius of its band. The
// virtual month ring maps to the midpoint of the month band.
func (r *Resolver) Radius(ring model.Ring) float64 {
	if ring == model.RingManad {
		return (r.Geo.MonthInner + r.Geo.MonthOuter) / 2
	}
	gap := r.Geo.Gap()
	return r.Geo.Inner + float64(r.Index(ring))*gap + gap/2
}

// BoundaryRadius resolves the "line" placement between two rings: the outer
// edge of the higher-indexed of the two (which is also the outer edge of
// the single ring when both names match).
func (r *Resolver) BoundaryRadius(ring, ring2 model.Ring) float64 {
	idx := r.Index(ring)
	if ring2 != "" && ring2 != ring {
		if idx2 := r.Index(ring2); idx2 > idx {
			idx = idx2
		}
	}
	return r.Geo.Inner + float64(idx+1)*r.Geo.Gap()
}

// EventRadius resolves an event's radius honoring its placement mode.
func (r *Resolver) EventRadius(e model.Event) float64 {
	if e.Placement == model.PlacementLine {
		return r.BoundaryRadius(e.Ring, e.Ring2)
	}
	return r.Radius(e.Ring)
}

// Band returns the inner and outer radii of a ring index.
func (g Geometry) Band(index int) (inner, outer float64) {
	gap := g.Gap()
	inner = g.Inner + float64(index)*gap
	return inner, inner + gap
}

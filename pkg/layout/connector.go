package layout

import (
	"math"

	"github.com/aiyaulmo/verksamhetscykel/pkg/wheel"
)

// epsilon below which a connector segment is treated as zero-length.
const segmentEpsilon = 1e-9

// ElbowAngle computes the angle of the connector elbow on the elbow circle.
//
// The straight marker→anchor segment is intersected with the circle of
// radius elbowRadius by solving a·t² + b·t + c = 0 for the segment
// parameter t. A root strictly inside (0,1) is preferred; otherwise the
// root closer to t=0.5 is taken. The elbow is then interpolated between
// the intersection angle and the marker's own radial angle by curve: 1
// reproduces the pure radial elbow, 0 the straight line.
//
// Degenerate inputs (no real root, zero-length segment) fall back to the
// marker's radial angle; this function never fails.
func ElbowAngle(marker, anchor wheel.Point, radialAngle, elbowRadius, curve float64) float64 {
	dx := anchor.X - marker.X
	dy := anchor.Y - marker.Y

	a := dx*dx + dy*dy
	if a < segmentEpsilon {
		return radialAngle
	}
	b := 2 * (marker.X*dx + marker.Y*dy)
	c := marker.X*marker.X + marker.Y*marker.Y - elbowRadius*elbowRadius

	disc := b*b - 4*a*c
	if disc < 0 {
		return radialAngle
	}

	sq := math.Sqrt(disc)
	t1 := (-b + sq) / (2 * a)
	t2 := (-b - sq) / (2 * a)

	t := pickRoot(t1, t2)

	ix := marker.X + t*dx
	iy := marker.Y + t*dy
	intersection := math.Atan2(iy, ix)

	diff := normalizeDiff(radialAngle - intersection)
	return intersection + diff*curve
}

// pickRoot prefers a true interior intersection (0 < t < 1); failing that,
// whichever root lies closer to the segment midpoint.
func pickRoot(t1, t2 float64) float64 {
	in1 := t1 > 0 && t1 < 1
	in2 := t2 > 0 && t2 < 1
	switch {
	case in1 && in2:
		if math.Abs(t1-0.5) <= math.Abs(t2-0.5) {
			return t1
		}
		return t2
	case in1:
		return t1
	case in2:
		return t2
	default:
		if math.Abs(t1-0.5) <= math.Abs(t2-0.5) {
			return t1
		}
		return t2
	}
}

// normalizeDiff reduces an angular difference to [-π, π].
func normalizeDiff(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a < -math.Pi {
		a += 2 * math.Pi
	}
	return a
}

// Route builds the three-point connector polyline from a marker to its
// label attachment point, bending at the elbow circle.
func Route(marker wheel.Point, anchor wheel.Point, radialAngle, elbowRadius, curve float64) [3]wheel.Point {
	elbow := wheel.FromPolar(ElbowAngle(marker, anchor, radialAngle, elbowRadius, curve), elbowRadius)
	return [3]wheel.Point{marker, elbow, anchor}
}

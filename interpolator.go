package borehole

import (
	"math"

	vec3d "github.com/flywave/go3d/float64/vec3"
	"gonum.org/v1/gonum/floats"
)

// straightTolerance is how close the chord/MD ratio must be to 1 for a
// segment without directional data to be treated as straight.
const straightTolerance = 1e-14

// Inverse of f(beta) = 2*sin(beta/2)/beta from its 4th-order Taylor
// expansion: beta = 2*sqrt(2) * sqrt(5 - sqrt(5)*sqrt(6*factor-1)).
// Stored depths were computed with exactly these values.
const (
	taylorScale = 2.8284271247461903
	taylorSqrt5 = 2.23606797749979
)

func Lerp(value1, value2, amount float64) float64 { return value1 + (value2-value1)*amount }

// ApproximateDogleg estimates the arc angle of a segment from the ratio of its
// chord length to its measured length. Ratios at or above 1 give a straight
// segment. Ratios below 1/6 are not supported and yield NaN.
func ApproximateDogleg(factor float64) float64 {
	if floats.EqualWithinAbs(factor, 1, straightTolerance) || factor > 1 {
		return 0
	}
	return taylorScale * math.Sqrt(5-taylorSqrt5*math.Sqrt(6*factor-1))
}

// InterpolateTVD returns the true vertical depth at md between the stations
// upper-1 and upper using the minimum curvature method. md must lie strictly
// inside the segment.
//
// When either station lacks azimuth or inclination, the tangent at the lower
// station is approximated by the direction from the station before it (or
// from itself on the first segment) to the upper station, and the dogleg by
// ApproximateDogleg.
//
// Stations sharing an MD divide by zero; the result is then undefined.
func InterpolateTVD(t Stations, upper int, md float64) float64 {
	a, b := &t[upper-1], &t[upper]

	ab := vec3d.Sub(&b.Position, &a.Position)
	d := ab.Length()
	halfD := d / 2
	deltaMD := b.MD - a.MD

	var beta float64
	var tangent vec3d.T
	if a.hasDirection() && b.hasDirection() {
		beta = DoglegAngle(*a.Azimuth, *a.Inclination, *b.Azimuth, *b.Inclination)
		tangent = Direction(*a.Azimuth, *a.Inclination)
	} else {
		prev := a
		if upper > 1 {
			prev = &t[upper-2]
		}
		tangent = vec3d.Sub(&b.Position, &prev.Position)
		tangent.Normalize()
		beta = ApproximateDogleg(d / deltaMD)
	}

	fraction := (md - a.MD) / deltaMD

	if beta == 0 {
		return Lerp(a.Z(), b.Z(), fraction)
	}

	radius := halfD / math.Sin(beta/2)
	m := halfD / math.Tan(beta/2)

	// i runs along the chord, j is the tangent at a with its chord component
	// removed. The arc lies in the plane they span.
	i := ab.Normalized()
	c := vec3d.Cross(&tangent, &i)
	j := vec3d.Cross(&i, &c)
	j.Normalize()

	alpha := fraction*beta - beta/2
	x := math.Sin(alpha)*radius + halfD
	y := math.Cos(alpha)*radius - m

	return a.Z() + x*i[2] + y*j[2]
}

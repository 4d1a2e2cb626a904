package borehole

import (
	"math"

	vec3d "github.com/flywave/go3d/float64/vec3"
)

// Direction returns the unit tangent of the wellbore for an azimuth and an
// inclination given in degrees. Azimuth is measured from the y axis towards
// the x axis, inclination from the vertical.
func Direction(azimuth, inclination float64) vec3d.T {
	azi := degToRad(azimuth)
	inc := degToRad(inclination)

	s := math.Sin(inc)

	return vec3d.T{
		s * math.Sin(azi),
		s * math.Cos(azi),
		math.Cos(inc),
	}
}

// DoglegAngle is the arc angle in radians between two survey directions.
func DoglegAngle(azimuthA, inclinationA, azimuthB, inclinationB float64) float64 {
	aziA, incA := degToRad(azimuthA), degToRad(inclinationA)
	aziB, incB := degToRad(azimuthB), degToRad(inclinationB)

	c := math.Cos(incB-incA) - math.Sin(incA)*math.Sin(incB)*(1-math.Cos(aziB-aziA))

	return math.Acos(clamp(c, -1, 1))
}

package borehole

import (
	"math"
)

func degToRad(angle float64) float64 {
	return angle * math.Pi / 180
}

func clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, x))
}

package engine

import "math"

// Normal returns a standard normal random variable using the Box–Muller
// transform. It consumes exactly two uniforms from src per call, redrawing
// the first while it is zero so the logarithm stays finite.
func Normal(src Source) float64 {
	u1 := src.Float64()
	for u1 == 0 {
		u1 = src.Float64()
	}
	u2 := src.Float64()
	return math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
}

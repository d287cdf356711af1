package geometry

import (
	"math"

	"github.com/df07/go-csg-raytracer/pkg/core"
)

// tangentEpsilon is the band below zero, relative to b², in which a
// discriminant is taken as round-off of a double root
const tangentEpsilon = 1e-9

// SolveQuadratic returns the smallest root of at² + bt + c = 0 that lies strictly
// inside rayT. A zero leading coefficient has no usable solution and is a miss.
func SolveQuadratic(a, b, c float64, rayT core.Interval) (float64, bool) {
	if a == 0 {
		return 0, false
	}

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		if discriminant < -tangentEpsilon*b*b {
			return 0, false
		}
		discriminant = 0
	}
	sqrtD := math.Sqrt(discriminant)

	// A negative a flips the order of the roots
	t0 := (-b - sqrtD) / (2 * a)
	t1 := (-b + sqrtD) / (2 * a)
	if t0 > t1 {
		t0, t1 = t1, t0
	}

	if rayT.Surrounds(t0) {
		return t0, true
	}
	if rayT.Surrounds(t1) {
		return t1, true
	}
	return 0, false
}

package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-csg-raytracer/pkg/core"
	"github.com/df07/go-csg-raytracer/pkg/material"
)

// DummyMaterial is a material that absorbs everything
type DummyMaterial struct{}

func (d DummyMaterial) Scatter(rayIn core.Ray, hit material.HitRecord, sampler core.Sampler) (material.ScatterResult, bool) {
	return material.ScatterResult{}, false
}

// testRayT is the interval used by most intersection tests
var testRayT = core.NewInterval(0.001, 1000.0)

func assertVec3(t *testing.T, name string, expected, got core.Vec3, tolerance float64) {
	t.Helper()
	if math.Abs(got.X-expected.X) > tolerance ||
		math.Abs(got.Y-expected.Y) > tolerance ||
		math.Abs(got.Z-expected.Z) > tolerance {
		t.Errorf("Expected %s %v, got %v", name, expected, got)
	}
}

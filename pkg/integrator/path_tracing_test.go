package integrator

import (
	"math"
	"testing"

	"github.com/df07/go-csg-raytracer/pkg/core"
	"github.com/df07/go-csg-raytracer/pkg/geometry"
	"github.com/df07/go-csg-raytracer/pkg/material"
)

// MockMaterial implements material.Material for testing
type MockMaterial struct {
	scatterFn func(rayIn core.Ray, hit material.HitRecord, sampler core.Sampler) (material.ScatterResult, bool)
}

func (m MockMaterial) Scatter(rayIn core.Ray, hit material.HitRecord, sampler core.Sampler) (material.ScatterResult, bool) {
	return m.scatterFn(rayIn, hit, sampler)
}

// MockShape implements geometry.Hittable for testing
type MockShape struct {
	hitFn func(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool)
}

func (m MockShape) Hit(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool) {
	return m.hitFn(ray, rayT)
}

func (m MockShape) VolumeContains(point core.Vec3) bool { return false }

// createTestWorld creates a diffuse sphere above a ground plane
func createTestWorld() geometry.Hittable {
	return geometry.NewVolumeList(
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, material.NewLambertian(core.NewVec3(0.7, 0.3, 0.3))),
		geometry.NewPlane(core.NewVec3(0, -0.5, 0), core.NewVec3(0, 1, 0), material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))),
	)
}

func assertVec3(t *testing.T, name string, expected, got core.Vec3, tolerance float64) {
	t.Helper()
	if math.Abs(got.X-expected.X) > tolerance ||
		math.Abs(got.Y-expected.Y) > tolerance ||
		math.Abs(got.Z-expected.Z) > tolerance {
		t.Errorf("Expected %s %v, got %v", name, expected, got)
	}
}

// TestPathTracingDepthTermination tests that ray depth is properly limited
func TestPathTracingDepthTermination(t *testing.T) {
	world := createTestWorld()
	sampler := core.NewSeededSampler(42)

	for _, depth := range []int{0, -1} {
		integrator := NewPathTracingIntegrator(depth)
		for i := 0; i < 100; i++ {
			direction := core.SampleOnUnitSphere(sampler.Get2D())
			color := integrator.RayColor(core.NewRay(core.NewVec3(0, 0, 0), direction), world, sampler)
			if color != (core.Vec3{}) {
				t.Fatalf("Expected black color for depth %d, got %v", depth, color)
			}
		}
	}

	// With positive depth the sphere reflects some sky
	integrator := NewPathTracingIntegrator(10)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	color := integrator.RayColor(ray, world, sampler)
	if color.X <= 0 && color.Y <= 0 && color.Z <= 0 {
		t.Errorf("Expected some light with depth 10, got %v", color)
	}
}

func TestBackgroundGradient(t *testing.T) {
	integrator := NewPathTracingIntegrator(5)
	empty := geometry.NewVolumeList()
	sampler := core.NewSeededSampler(42)

	tests := []struct {
		name      string
		direction core.Vec3
		expected  core.Vec3
	}{
		{"straight up", core.NewVec3(0, 1, 0), core.NewVec3(0.5, 0.7, 1.0)},
		{"straight down", core.NewVec3(0, -3, 0), core.NewVec3(1, 1, 1)},
		{"horizon", core.NewVec3(1, 0, 0), core.NewVec3(0.75, 0.85, 1.0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(core.NewVec3(0, 0, 0), tt.direction)
			assertVec3(t, "sky color", tt.expected, integrator.RayColor(ray, empty, sampler), 1e-9)
			assertVec3(t, "gradient", tt.expected, BackgroundGradient(ray), 1e-9)
		})
	}
}

func TestPathTracingAbsorbed(t *testing.T) {
	absorber := MockMaterial{
		scatterFn: func(rayIn core.Ray, hit material.HitRecord, sampler core.Sampler) (material.ScatterResult, bool) {
			return material.ScatterResult{}, false
		},
	}
	world := geometry.NewVolumeList(geometry.NewSphere(core.NewVec3(0, 0, -2), 1, absorber))

	color := NewPathTracingIntegrator(5).RayColor(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)), world, core.NewSeededSampler(1))
	if color != (core.Vec3{}) {
		t.Errorf("Expected black for absorbed ray, got %v", color)
	}
}

func TestPathTracingAttenuation(t *testing.T) {
	// Bounce once off a half-grey surface straight up into the sky
	grey := MockMaterial{
		scatterFn: func(rayIn core.Ray, hit material.HitRecord, sampler core.Sampler) (material.ScatterResult, bool) {
			return material.ScatterResult{
				Scattered:   core.NewRay(hit.Point, core.NewVec3(0, 1, 0)),
				Attenuation: core.NewVec3(0.5, 0.5, 0.5),
			}, true
		},
	}
	shape := MockShape{
		hitFn: func(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool) {
			if ray.Direction.Y >= 0 {
				return nil, false
			}
			return &material.HitRecord{
				Point:     core.NewVec3(0, 0, 0),
				Normal:    core.NewVec3(0, 1, 0),
				T:         1,
				FrontFace: true,
				Material:  grey,
			}, true
		},
	}
	down := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))

	assertVec3(t, "one bounce", core.NewVec3(0.25, 0.35, 0.5), NewPathTracingIntegrator(5).RayColor(down, shape, core.NewSeededSampler(1)), 1e-9)

	// With depth 1 the bounce itself runs out of depth
	assertVec3(t, "depth exhausted", core.NewVec3(0, 0, 0), NewPathTracingIntegrator(1).RayColor(down, shape, core.NewSeededSampler(1)), 1e-9)
}

func TestPathTracingUsesMinHitDistance(t *testing.T) {
	var seen core.Interval
	shape := MockShape{
		hitFn: func(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool) {
			seen = rayT
			return nil, false
		},
	}
	NewPathTracingIntegrator(3).RayColor(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0)), shape, core.NewSeededSampler(1))

	if seen.Min != MinHitDistance || !math.IsInf(seen.Max, 1) {
		t.Errorf("Expected interval [%f, +Inf], got %v", MinHitDistance, seen)
	}
}

func TestPathTracingNilMaterial(t *testing.T) {
	world := geometry.NewVolumeList(geometry.NewSphere(core.NewVec3(0, 0, -2), 1, nil))

	color := NewPathTracingIntegrator(5).RayColor(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)), world, core.NewSeededSampler(1))
	if color != (core.Vec3{}) {
		t.Errorf("Expected black for surface without material, got %v", color)
	}
}

func TestPathTracingEnergyBounded(t *testing.T) {
	world := createTestWorld()
	integrator := NewPathTracingIntegrator(20)
	sampler := core.NewSeededSampler(7)

	for i := 0; i < 500; i++ {
		direction := core.SampleOnUnitSphere(sampler.Get2D())
		color := integrator.RayColor(core.NewRay(core.NewVec3(0, 1, 0), direction), world, sampler)
		if !color.IsFinite() || color.X > 1+1e-9 || color.Y > 1+1e-9 || color.Z > 1+1e-9 {
			t.Fatalf("Radiance %v exceeds the sky", color)
		}
	}
}

func TestPathTracingIntegrator_MaxDepth(t *testing.T) {
	var integrator Integrator = NewPathTracingIntegrator(7)
	if got := integrator.(*PathTracingIntegrator).MaxDepth(); got != 7 {
		t.Errorf("Expected max depth 7, got %d", got)
	}
}

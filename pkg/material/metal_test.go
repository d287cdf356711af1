package material

import (
	"testing"

	"github.com/df07/go-csg-raytracer/pkg/core"
)

func TestNewMetal_FuzznessClamp(t *testing.T) {
	tests := []struct {
		name             string
		inputFuzzness    float64
		expectedFuzzness float64
	}{
		{"Valid fuzzness 0.0", 0.0, 0.0},
		{"Valid fuzzness 0.5", 0.5, 0.5},
		{"Valid fuzzness 1.0", 1.0, 1.0},
		{"Clamp above 1.0", 1.5, 1.0},
		{"Clamp below 0.0", -0.5, 0.0},
		{"Clamp large positive", 10.0, 1.0},
		{"Clamp large negative", -10.0, 0.0},
	}

	albedo := core.NewVec3(0.8, 0.8, 0.8)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			metal := NewMetal(albedo, tt.inputFuzzness)
			if metal.Fuzzness != tt.expectedFuzzness {
				t.Errorf("Expected fuzzness %f, got %f", tt.expectedFuzzness, metal.Fuzzness)
			}
		})
	}
}

func TestMetal_PerfectReflection(t *testing.T) {
	albedo := core.NewVec3(0.9, 0.9, 0.9)
	metal := NewMetal(albedo, 0.0)
	sampler := core.NewSeededSampler(42)

	// Ray hitting surface at 45 degrees
	rayIn := core.NewRay(core.NewVec3(0, 1, 1), core.NewVec3(0, -1, -1))
	hit := HitRecord{
		Point:  core.NewVec3(0, 0, 0),
		Normal: core.NewVec3(0, 0, 1),
	}

	scatter, didScatter := metal.Scatter(rayIn, hit, sampler)
	if !didScatter {
		t.Fatal("Metal should scatter")
	}

	expected := core.NewVec3(0, -1, 1).Normalize()
	actual := scatter.Scattered.Direction.Normalize()

	tolerance := 1e-10
	if actual.Subtract(expected).Length() > tolerance {
		t.Errorf("Perfect reflection failed: expected %v, got %v", expected, actual)
	}

	if !scatter.Attenuation.Equals(albedo) {
		t.Errorf("Attenuation should equal albedo: expected %v, got %v", albedo, scatter.Attenuation)
	}
}

func TestMetal_FuzzyReflection(t *testing.T) {
	albedo := core.NewVec3(0.8, 0.8, 0.8)
	metal := NewMetal(albedo, 0.5)
	sampler := core.NewSeededSampler(42)

	rayIn := core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1))
	hit := HitRecord{
		Point:  core.NewVec3(0, 0, 0),
		Normal: core.NewVec3(0, 0, 1),
	}

	directions := make([]core.Vec3, 10)
	for i := 0; i < 10; i++ {
		scatter, didScatter := metal.Scatter(rayIn, hit, sampler)
		if !didScatter {
			t.Fatalf("Metal should scatter on iteration %d", i)
		}
		directions[i] = scatter.Scattered.Direction.Normalize()
	}

	allSame := true
	for i := 1; i < len(directions); i++ {
		if directions[i].Subtract(directions[0]).Length() > 1e-10 {
			allSame = false
			break
		}
	}
	if allSame {
		t.Error("Fuzzy metal should produce varying reflection directions")
	}

	// Fuzz 0.5 around a head-on reflection can never dip below the surface
	for i, dir := range directions {
		if dir.Dot(hit.Normal) <= 0 {
			t.Errorf("Scattered ray %d should be above surface, got dot product %f", i, dir.Dot(hit.Normal))
		}
	}
}

func TestMetal_ScatterAbsorption(t *testing.T) {
	metal := NewMetal(core.NewVec3(0.8, 0.8, 0.8), 1.0)
	sampler := core.NewSeededSampler(123)

	// Grazing angle ray that might scatter below surface with high fuzziness
	rayIn := core.NewRay(core.NewVec3(-1, 0, 0.01), core.NewVec3(1, 0, -0.01))
	hit := HitRecord{
		Point:  core.NewVec3(0, 0, 0),
		Normal: core.NewVec3(0, 0, 1),
	}

	absorptionCount := 0
	scatterCount := 0

	for i := 0; i < 1000; i++ {
		scatter, didScatter := metal.Scatter(rayIn, hit, sampler)
		if didScatter {
			scatterCount++
			if scatter.Scattered.Direction.Dot(hit.Normal) <= 0 {
				t.Fatalf("Scattered ray %d points into the surface", i)
			}
		} else {
			absorptionCount++
		}
	}

	if absorptionCount == 0 {
		t.Error("Expected some rays to be absorbed with high fuzziness at grazing angle")
	}
	if scatterCount == 0 {
		t.Error("Expected some rays to be scattered")
	}
}

func TestMetal_AttenuationNeverExceedsAlbedo(t *testing.T) {
	albedo := core.NewVec3(0.7, 0.6, 0.5)
	metal := NewMetal(albedo, 0.3)
	sampler := core.NewSeededSampler(5)

	rayIn := core.NewRay(core.NewVec3(-1, 1, 0), core.NewVec3(1, -1, 0))
	hit := HitRecord{Point: core.NewVec3(0, 0, 0), Normal: core.NewVec3(0, 1, 0), FrontFace: true}

	for i := 0; i < 100; i++ {
		scatter, _ := metal.Scatter(rayIn, hit, sampler)
		a := scatter.Attenuation
		if a.X > albedo.X || a.Y > albedo.Y || a.Z > albedo.Z {
			t.Fatalf("Attenuation %v exceeds albedo %v", a, albedo)
		}
	}
}

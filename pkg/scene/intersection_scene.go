package scene

import (
	"math/rand"

	"github.com/df07/go-csg-raytracer/pkg/core"
	"github.com/df07/go-csg-raytracer/pkg/geometry"
	"github.com/df07/go-csg-raytracer/pkg/material"
	"github.com/df07/go-csg-raytracer/pkg/renderer"
)

// NewIntersectionScene shows boolean intersections: a plateau cut from five
// planes, a cone clipped by a sphere and a slanted plane, and a metal lens
// formed by two overlapping spheres, among a field of small spheres.
func NewIntersectionScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	cameraConfig := renderer.CameraConfig{
		LookFrom: core.NewVec3(20, 3, 20),
		LookAt:   core.NewVec3(0, 0, 0),
		Up:       core.NewVec3(0, 1, 0),
		Width:    320,
		Height:   240,
		VFov:     30.0,
	}
	samplingConfig := renderer.SamplingConfig{
		SamplesPerPixel: 100,
		MaxDepth:        15,
	}

	s := newScene("intersection", cameraConfig, samplingConfig, cameraOverrides)

	grey := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))

	plateau := geometry.NewVolumeIntersection(
		geometry.NewPlane(core.NewVec3(0, 0, 3), core.NewVec3(0, 1, 0), grey),
		geometry.NewPlane(core.NewVec3(0, 0, 12), core.NewVec3(0, 0, 1), grey),
		geometry.NewPlane(core.NewVec3(12, 0, 0), core.NewVec3(1, 0, 0), grey),
		geometry.NewPlane(core.NewVec3(0, 0, -12), core.NewVec3(0, 0, -1), grey),
		geometry.NewPlane(core.NewVec3(-12, 0, 0), core.NewVec3(-1, 0, 0), grey),
	)
	s.Add(plateau, geometry.NewPlane(core.NewVec3(0, -1, 0), core.NewVec3(0, 1, 0), grey))

	red := material.NewLambertian(core.NewVec3(1, 0, 0))
	shinyRed := material.NewMetal(core.NewVec3(0.9, 0.1, 0.1), 0.01)

	s.Add(geometry.NewVolumeIntersection(
		geometry.NewInfiniteCone(core.NewVec3(4, 0, 8), core.NewVec3(0, 1, 0), 30, red),
		geometry.NewSphere(core.NewVec3(4, 1, 8), 1.0, red),
		geometry.NewPlane(core.NewVec3(4, 1.4, 8.6), core.NewVec3(0.3, 0.2, 1), red),
	))

	s.Add(geometry.NewVolumeIntersection(
		geometry.NewSphere(core.NewVec3(8, 0.5, 1), 1.0, shinyRed),
		geometry.NewSphere(core.NewVec3(8.5, 0.5, 0.2), 1.0, shinyRed),
	))

	random := rand.New(rand.NewSource(42))
	addSphereField(s, random, 0.10, 0.95)

	s.Add(
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))),
		geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0)),
	)

	return s
}

// addSphereField scatters small spheres over a 22x22 grid around the origin.
// A draw below diffuseCutoff is diffuse, below metalCutoff metal, otherwise glass.
func addSphereField(s *Scene, random *rand.Rand, diffuseCutoff, metalCutoff float64) {
	randomColor := func(minVal, maxVal float64) core.Vec3 {
		span := maxVal - minVal
		return core.NewVec3(
			minVal+span*random.Float64(),
			minVal+span*random.Float64(),
			minVal+span*random.Float64(),
		)
	}
	keepClear := core.NewVec3(4, 0.2, 0)

	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			chooseMat := random.Float64()
			center := core.NewVec3(float64(a)+0.9*random.Float64(), 0.2, float64(b)+0.9*random.Float64())

			if center.Subtract(keepClear).Length() <= 0.9 {
				continue
			}

			var sphereMat material.Material
			switch {
			case chooseMat < diffuseCutoff:
				sphereMat = material.NewLambertian(randomColor(0, 1).MultiplyVec(randomColor(0, 1)))
			case chooseMat < metalCutoff:
				sphereMat = material.NewMetal(randomColor(0.5, 1), 0.5*random.Float64())
			default:
				sphereMat = material.NewDielectric(1.5)
			}
			s.Add(geometry.NewSphere(center, 0.2, sphereMat))
		}
	}
}

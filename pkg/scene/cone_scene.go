package scene

import (
	"github.com/df07/go-csg-raytracer/pkg/core"
	"github.com/df07/go-csg-raytracer/pkg/geometry"
	"github.com/df07/go-csg-raytracer/pkg/material"
	"github.com/df07/go-csg-raytracer/pkg/renderer"
)

// NewConeScene creates three conical cups of widening angle. Each cup is a
// cone minus a slightly raised copy of itself, clipped by a sphere, and sits
// inside a thin glass shell.
func NewConeScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	cameraConfig := renderer.CameraConfig{
		LookFrom: core.NewVec3(7.75, 2.25, 0),
		LookAt:   core.NewVec3(0, 1, 0),
		Up:       core.NewVec3(0, 1, 0),
		Width:    640,
		Height:   480,
		VFov:     35.0,
	}
	samplingConfig := renderer.SamplingConfig{
		SamplesPerPixel: 100,
		MaxDepth:        15,
	}

	s := newScene("cones", cameraConfig, samplingConfig, cameraOverrides)

	ground := material.NewLambertian(core.NewVec3(0.5, 0.8, 0.5))
	s.Add(geometry.NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), ground))

	red := material.NewLambertian(core.NewVec3(0.9, 0.1, 0.1))
	shell := material.NewDielectric(1.0001)

	for i := 0; i < 3; i++ {
		z := float64(i)*2.1 - 2.1
		angle := float64(i)*20 + 20

		// The inverted cone contains everything outside the raised cone
		cup := geometry.NewVolumeIntersection(
			geometry.NewInfiniteCone(core.NewVec3(0, 0, z), core.NewVec3(0, 1, 0), angle, red),
			geometry.NewInfiniteCone(core.NewVec3(0, 0.01, z), core.NewVec3(0, -1, 0), 180-angle, red),
			geometry.NewSphere(core.NewVec3(0, 1, z), 1.0, red),
		)
		s.Add(cup, geometry.NewSphere(core.NewVec3(0, 1, z), 1.001, shell))
	}

	return s
}

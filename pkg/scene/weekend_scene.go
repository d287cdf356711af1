package scene

import (
	"math/rand"

	"github.com/df07/go-csg-raytracer/pkg/core"
	"github.com/df07/go-csg-raytracer/pkg/geometry"
	"github.com/df07/go-csg-raytracer/pkg/material"
	"github.com/df07/go-csg-raytracer/pkg/renderer"
)

// NewWeekendScene creates the classic field of random spheres around three
// large ones, seen through a lens with shallow depth of field
func NewWeekendScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	cameraConfig := renderer.CameraConfig{
		LookFrom:      core.NewVec3(13, 2, 3),
		LookAt:        core.NewVec3(0, 0, 0),
		Up:            core.NewVec3(0, 1, 0),
		Width:         1200,
		Height:        675,
		VFov:          20.0,
		DefocusAngle:  0.6,
		FocusDistance: 10.0,
	}
	samplingConfig := renderer.SamplingConfig{
		SamplesPerPixel: 500,
		MaxDepth:        50,
	}

	s := newScene("weekend", cameraConfig, samplingConfig, cameraOverrides)

	ground := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	s.Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, ground))

	random := rand.New(rand.NewSource(42))
	addSphereField(s, random, 0.8, 0.95)

	s.Add(
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))),
		geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0)),
	)

	return s
}

package scene

import (
	"github.com/df07/go-csg-raytracer/pkg/core"
	"github.com/df07/go-csg-raytracer/pkg/geometry"
	"github.com/df07/go-csg-raytracer/pkg/material"
	"github.com/df07/go-csg-raytracer/pkg/renderer"
)

// NewDefaultScene creates a single diffuse sphere resting on a ground plane
func NewDefaultScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	cameraConfig := renderer.CameraConfig{
		LookFrom:    core.NewVec3(0, 0, 0),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		Width:       400,
		AspectRatio: 2.0,
		VFov:        40.0,
	}
	samplingConfig := renderer.SamplingConfig{
		SamplesPerPixel: 50,
		MaxDepth:        20,
	}

	s := newScene("default", cameraConfig, samplingConfig, cameraOverrides)

	lambertianBlue := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))
	lambertianGround := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))

	s.Add(
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, lambertianBlue),
		geometry.NewPlane(core.NewVec3(0, -0.5, 0), core.NewVec3(0, 1, 0), lambertianGround),
	)

	return s
}

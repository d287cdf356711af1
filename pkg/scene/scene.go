package scene

import (
	"github.com/df07/go-csg-raytracer/pkg/core"
	"github.com/df07/go-csg-raytracer/pkg/geometry"
	"github.com/df07/go-csg-raytracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Name           string
	World          *geometry.VolumeList // Root of every primitive in the scene
	CameraConfig   renderer.CameraConfig
	SamplingConfig renderer.SamplingConfig
}

// newScene creates an empty scene with the camera overrides applied
func newScene(name string, cameraConfig renderer.CameraConfig, sampling renderer.SamplingConfig, cameraOverrides []renderer.CameraConfig) *Scene {
	if len(cameraOverrides) > 0 {
		cameraConfig = renderer.MergeCameraConfig(cameraConfig, cameraOverrides[0])
	}
	return &Scene{
		Name:           name,
		World:          geometry.NewVolumeList(),
		CameraConfig:   cameraConfig,
		SamplingConfig: sampling,
	}
}

// Add appends objects to the scene root
func (s *Scene) Add(objects ...geometry.Hittable) {
	s.World.Add(objects...)
}

// NewRaytracer creates a single-use raytracer for this scene
func (s *Scene) NewRaytracer(logger core.Logger) *renderer.Raytracer {
	return renderer.NewRaytracer(s.World, s.CameraConfig, s.SamplingConfig, logger)
}

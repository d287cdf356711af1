package integrator

import (
	"github.com/df07/go-csg-raytracer/pkg/core"
	"github.com/df07/go-csg-raytracer/pkg/geometry"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor returns the linear radiance arriving along ray from world
	RayColor(ray core.Ray, world geometry.Hittable, sampler core.Sampler) core.Vec3
}

package geometry

import (
	"github.com/df07/go-csg-raytracer/pkg/core"
	"github.com/df07/go-csg-raytracer/pkg/material"
)

// Hittable is anything a ray can be tested against.
//
// VolumeContains is only consulted by boolean composition. Shapes without a
// closed interior still answer it for the region they bound (a plane's lower
// half-space, a cone's angular region).
type Hittable interface {
	Hit(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool)
	VolumeContains(point core.Vec3) bool
}

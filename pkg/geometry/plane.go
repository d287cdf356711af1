package geometry

import (
	"math"

	"github.com/df07/go-csg-raytracer/pkg/core"
	"github.com/df07/go-csg-raytracer/pkg/material"
)

// parallelEpsilon is the band around zero in which N·D counts as parallel
const parallelEpsilon = 1e-6

// Plane represents an infinite plane defined by a point and normal.
// Its volume is the half-space behind the normal.
type Plane struct {
	Point    core.Vec3         // A point on the plane
	Normal   core.Vec3         // Unit normal
	Material material.Material // Material of the plane
}

// NewPlane creates a new plane
func NewPlane(point, normal core.Vec3, mat material.Material) *Plane {
	return &Plane{
		Point:    point,
		Normal:   normal.Normalize(),
		Material: mat,
	}
}

// Hit tests if a ray intersects with the plane
func (p *Plane) Hit(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool) {
	denominator := ray.Direction.Dot(p.Normal)
	if math.Abs(denominator) < parallelEpsilon {
		return nil, false
	}

	t := p.Point.Subtract(ray.Origin).Dot(p.Normal) / denominator
	if !rayT.Surrounds(t) {
		return nil, false
	}

	hitRecord := &material.HitRecord{
		T:        t,
		Point:    ray.At(t),
		Material: p.Material,
	}
	hitRecord.SetFaceNormal(ray, p.Normal)

	return hitRecord, true
}

// VolumeContains reports whether the point lies on or behind the plane
func (p *Plane) VolumeContains(point core.Vec3) bool {
	return point.Subtract(p.Point).Dot(p.Normal) <= 0
}

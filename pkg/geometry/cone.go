package geometry

import (
	"math"

	"github.com/df07/go-csg-raytracer/pkg/core"
	"github.com/df07/go-csg-raytracer/pkg/material"
)

// nappeEpsilon is the tolerance of the mirror nappe test, relative to the
// distance from the apex
const nappeEpsilon = 1e-9

// coneSurface is one nappe of the cone of points whose direction from center
// makes a fixed angle with axis. AngularPlane and InfiniteCone share it.
type coneSurface struct {
	center   core.Vec3
	axis     core.Vec3 // unit
	cosAngle float64
	cosSqr   float64
	material material.Material
}

func newConeSurface(center, axis core.Vec3, halfAngleRadians float64, mat material.Material) coneSurface {
	cosAngle := math.Cos(halfAngleRadians)
	return coneSurface{
		center:   center,
		axis:     axis.Normalize(),
		cosAngle: cosAngle,
		cosSqr:   cosAngle * cosAngle,
		material: mat,
	}
}

func (c *coneSurface) hit(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool) {
	// Substituting O + tD into (axis·(p−C))² = cos²θ |p−C|²
	co := ray.Origin.Subtract(c.center)
	axisDotDir := c.axis.Dot(ray.Direction)
	axisDotCO := c.axis.Dot(co)

	a := axisDotDir*axisDotDir - c.cosSqr*ray.Direction.LengthSquared()
	b := 2 * (axisDotDir*axisDotCO - c.cosSqr*co.Dot(ray.Direction))
	cc := axisDotCO*axisDotCO - c.cosSqr*co.LengthSquared()

	for {
		t, ok := SolveQuadratic(a, b, cc, rayT)
		if !ok {
			return nil, false
		}

		point := ray.At(t)
		local := point.Subtract(c.center)

		// The quadratic describes both nappes; a root on the mirror nappe is
		// skipped and the search continues past it. Near a half-angle of π/2
		// both nappes meet in a plane and round-off decides nothing.
		if local.Dot(c.axis)*c.cosAngle < -nappeEpsilon*local.Length() {
			rayT = rayT.WithMin(t)
			continue
		}

		hitRecord := &material.HitRecord{
			T:        t,
			Point:    point,
			Material: c.material,
		}
		outwardNormal := local.Cross(local.Cross(c.axis)).Normalize()
		hitRecord.SetFaceNormal(ray, outwardNormal)
		return hitRecord, true
	}
}

// contains reports whether the angle between point−center and the axis is
// smaller than the half-angle. The apex itself is not contained.
func (c *coneSurface) contains(point core.Vec3) bool {
	local := point.Subtract(c.center)
	if local.LengthSquared() == 0 {
		return false
	}
	return local.Normalize().Dot(c.axis) > c.cosAngle
}

// AngularPlane is a cone surface whose half-angle is given in radians.
// At π/2 it degenerates into the plane through Center perpendicular to Axis.
type AngularPlane struct {
	Center    core.Vec3
	Axis      core.Vec3
	HalfAngle float64 // radians
	Material  material.Material

	surface coneSurface
}

// NewAngularPlane creates a new angular plane
func NewAngularPlane(center, axis core.Vec3, halfAngleRadians float64, mat material.Material) *AngularPlane {
	return &AngularPlane{
		Center:    center,
		Axis:      axis,
		HalfAngle: halfAngleRadians,
		Material:  mat,
		surface:   newConeSurface(center, axis, halfAngleRadians, mat),
	}
}

// Hit tests if a ray intersects with the angular plane
func (p *AngularPlane) Hit(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool) {
	return p.surface.hit(ray, rayT)
}

// VolumeContains reports whether the point lies within the half-angle of the axis
func (p *AngularPlane) VolumeContains(point core.Vec3) bool {
	return p.surface.contains(point)
}

// InfiniteCone is an unbounded cone opening along Axis from its apex at Center.
type InfiniteCone struct {
	Center    core.Vec3
	Axis      core.Vec3
	HalfAngle float64 // degrees
	Material  material.Material

	surface coneSurface
}

// NewInfiniteCone creates a new infinite cone with the half-angle in degrees
func NewInfiniteCone(center, axis core.Vec3, halfAngleDegrees float64, mat material.Material) *InfiniteCone {
	return &InfiniteCone{
		Center:    center,
		Axis:      axis,
		HalfAngle: halfAngleDegrees,
		Material:  mat,
		surface:   newConeSurface(center, axis, core.DegreesToRadians(halfAngleDegrees), mat),
	}
}

// Hit tests if a ray intersects with the cone
func (c *InfiniteCone) Hit(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool) {
	return c.surface.hit(ray, rayT)
}

// VolumeContains reports whether the point is inside the cone
func (c *InfiniteCone) VolumeContains(point core.Vec3) bool {
	return c.surface.contains(point)
}

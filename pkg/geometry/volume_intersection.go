package geometry

import (
	"github.com/df07/go-csg-raytracer/pkg/core"
	"github.com/df07/go-csg-raytracer/pkg/material"
)

// VolumeIntersection is the boolean AND of its children. A surface hit on one
// child only counts where every other child contains the hit point, which
// costs O(n²) containment tests per ray for n children.
type VolumeIntersection struct {
	VolumeList
}

// NewVolumeIntersection creates an intersection of the given objects
func NewVolumeIntersection(objects ...Hittable) *VolumeIntersection {
	return &VolumeIntersection{VolumeList: VolumeList{Objects: objects}}
}

// Hit returns the closest child hit that lies inside all the other children
func (v *VolumeIntersection) Hit(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool) {
	var closestHit *material.HitRecord
	closestSoFar := rayT.Max

	for i, object := range v.Objects {
		hit, isHit := object.Hit(ray, rayT.WithMax(closestSoFar))
		if !isHit || !v.othersContain(i, hit.Point) {
			continue
		}
		closestSoFar = hit.T
		closestHit = hit
	}

	return closestHit, closestHit != nil
}

func (v *VolumeIntersection) othersContain(skip int, point core.Vec3) bool {
	for j, other := range v.Objects {
		if j != skip && !other.VolumeContains(point) {
			return false
		}
	}
	return true
}

// VolumeContains reports whether every child contains the point
func (v *VolumeIntersection) VolumeContains(point core.Vec3) bool {
	for _, object := range v.Objects {
		if !object.VolumeContains(point) {
			return false
		}
	}
	return true
}

package geometry

import (
	"github.com/df07/go-csg-raytracer/pkg/core"
	"github.com/df07/go-csg-raytracer/pkg/material"
)

// VolumeList is an ordered union of hittables, scanned linearly for the closest hit
type VolumeList struct {
	Objects []Hittable
}

// NewVolumeList creates a list holding the given objects
func NewVolumeList(objects ...Hittable) *VolumeList {
	return &VolumeList{Objects: objects}
}

// Add appends objects to the list
func (l *VolumeList) Add(objects ...Hittable) {
	l.Objects = append(l.Objects, objects...)
}

// Clear removes every object
func (l *VolumeList) Clear() {
	l.Objects = nil
}

// Len returns the number of direct children
func (l *VolumeList) Len() int {
	return len(l.Objects)
}

// Hit returns the closest hit across all objects
func (l *VolumeList) Hit(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool) {
	var closestHit *material.HitRecord
	closestSoFar := rayT.Max

	for _, object := range l.Objects {
		if hit, isHit := object.Hit(ray, rayT.WithMax(closestSoFar)); isHit {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}

// VolumeContains is always true; a union is never used as a bounding volume
func (l *VolumeList) VolumeContains(point core.Vec3) bool {
	return true
}

package integrator

import (
	"math"

	"github.com/df07/go-csg-raytracer/pkg/core"
	"github.com/df07/go-csg-raytracer/pkg/geometry"
)

// MinHitDistance keeps bounce rays from re-hitting the surface they left
const MinHitDistance = 0.001

var (
	skyHorizon = core.NewVec3(1.0, 1.0, 1.0)
	skyZenith  = core.NewVec3(0.5, 0.7, 1.0)
)

// PathTracingIntegrator follows one scattered ray per bounce until it escapes
// to the sky, is absorbed, or runs out of depth
type PathTracingIntegrator struct {
	maxDepth int
}

// NewPathTracingIntegrator creates a new path tracing integrator
func NewPathTracingIntegrator(maxDepth int) *PathTracingIntegrator {
	return &PathTracingIntegrator{maxDepth: maxDepth}
}

// MaxDepth returns the bounce limit
func (pt *PathTracingIntegrator) MaxDepth() int {
	return pt.maxDepth
}

// RayColor computes the color for a single ray using unidirectional path tracing
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, world geometry.Hittable, sampler core.Sampler) core.Vec3 {
	return pt.rayColor(ray, world, sampler, pt.maxDepth)
}

func (pt *PathTracingIntegrator) rayColor(ray core.Ray, world geometry.Hittable, sampler core.Sampler, depth int) core.Vec3 {
	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth <= 0 {
		return core.Vec3{X: 0, Y: 0, Z: 0}
	}

	hit, isHit := world.Hit(ray, core.NewInterval(MinHitDistance, math.Inf(1)))
	if !isHit {
		return BackgroundGradient(ray)
	}
	if hit.Material == nil {
		return core.Vec3{X: 0, Y: 0, Z: 0}
	}

	scatter, didScatter := hit.Material.Scatter(ray, *hit, sampler)
	if !didScatter {
		return core.Vec3{X: 0, Y: 0, Z: 0} // Material absorbed the ray
	}

	return scatter.Attenuation.MultiplyVec(pt.rayColor(scatter.Scattered, world, sampler, depth-1))
}

// BackgroundGradient blends from white looking down to sky blue looking up
func BackgroundGradient(r core.Ray) core.Vec3 {
	unitDirection := r.Direction.Normalize()
	a := 0.5 * (unitDirection.Y + 1.0)
	return skyHorizon.Lerp(skyZenith, a)
}

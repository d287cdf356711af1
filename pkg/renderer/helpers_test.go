package renderer

import (
	"math"
	"testing"

	"github.com/df07/go-csg-raytracer/pkg/core"
)

// sequenceSampler replays fixed 2D samples in order, wrapping around
type sequenceSampler struct {
	values []core.Vec2
	next   int
}

func (s *sequenceSampler) Get1D() float64 { return s.Get2D().X }

func (s *sequenceSampler) Get2D() core.Vec2 {
	v := s.values[s.next%len(s.values)]
	s.next++
	return v
}

func (s *sequenceSampler) Get3D() core.Vec3 {
	v := s.Get2D()
	return core.NewVec3(v.X, v.Y, 0.5)
}

func assertVec3(t *testing.T, name string, expected, got core.Vec3, tolerance float64) {
	t.Helper()
	if math.Abs(got.X-expected.X) > tolerance ||
		math.Abs(got.Y-expected.Y) > tolerance ||
		math.Abs(got.Z-expected.Z) > tolerance {
		t.Errorf("Expected %s %v, got %v", name, expected, got)
	}
}

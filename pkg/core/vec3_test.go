package core

import (
	"math"
	"testing"
)

func TestVec3_BasicOperations(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, -5, 6)

	tests := []struct {
		name     string
		result   Vec3
		expected Vec3
	}{
		{"Add", a.Add(b), NewVec3(5, -3, 9)},
		{"Subtract", a.Subtract(b), NewVec3(-3, 7, -3)},
		{"Multiply", a.Multiply(2), NewVec3(2, 4, 6)},
		{"MultiplyVec", a.MultiplyVec(b), NewVec3(4, -10, 18)},
		{"Cross", a.Cross(b), NewVec3(27, 6, -13)},
		{"Negate", a.Negate(), NewVec3(-1, -2, -3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.result.Subtract(tt.expected).Length() > 1e-12 {
				t.Errorf("Expected %v, got %v", tt.expected, tt.result)
			}
		})
	}

	if got := a.Dot(b); got != 12 {
		t.Errorf("Expected dot product 12, got %f", got)
	}
	if got := a.LengthSquared(); got != 14 {
		t.Errorf("Expected squared length 14, got %f", got)
	}
}

func TestVec3_Normalize(t *testing.T) {
	v := NewVec3(3, 0, 4).Normalize()
	if math.Abs(v.Length()-1) > 1e-12 {
		t.Errorf("Expected unit length, got %f", v.Length())
	}
	if math.Abs(v.X-0.6) > 1e-12 || math.Abs(v.Z-0.8) > 1e-12 {
		t.Errorf("Expected (0.6, 0, 0.8), got %v", v)
	}

	zero := Vec3{}.Normalize()
	if !zero.Equals(Vec3{}) {
		t.Errorf("Zero vector should normalize to zero, got %v", zero)
	}
}

func TestVec3_NearZero(t *testing.T) {
	if !NewVec3(1e-9, -1e-9, 0).NearZero() {
		t.Error("Expected tiny vector to be near zero")
	}
	if NewVec3(1e-9, 1e-3, 0).NearZero() {
		t.Error("Expected vector with a 1e-3 component not to be near zero")
	}
}

func TestVec3_GammaCorrect(t *testing.T) {
	got := NewVec3(0.25, 1, -0.5).GammaCorrect(2)
	expected := NewVec3(0.5, 1, 0)
	if got.Subtract(expected).Length() > 1e-12 {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}

func TestReflect(t *testing.T) {
	v := NewVec3(1, -1, 0)
	n := NewVec3(0, 1, 0)
	got := Reflect(v, n)
	if !got.Equals(NewVec3(1, 1, 0)) {
		t.Errorf("Expected (1, 1, 0), got %v", got)
	}
}

func TestRefract_NormalIncidence(t *testing.T) {
	uv := NewVec3(0, -1, 0)
	n := NewVec3(0, 1, 0)
	got := Refract(uv, n, 1/1.5)
	if got.Subtract(uv).Length() > 1e-12 {
		t.Errorf("Ray at normal incidence should pass straight through, got %v", got)
	}
}

func TestRay_At(t *testing.T) {
	r := NewRay(NewVec3(1, 1, 1), NewVec3(0, 0, -2))
	got := r.At(1.5)
	if !got.Equals(NewVec3(1, 1, -2)) {
		t.Errorf("Expected (1, 1, -2), got %v", got)
	}
}

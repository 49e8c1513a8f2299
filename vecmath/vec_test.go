package vecmath

import (
	"math"
	"testing"
)

func TestVec3Arithmetic(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{4, 5, 6}

	if got := a.Add(b); got != (Vec3{5, 7, 9}) {
		t.Errorf("Add: got %v", got)
	}
	if got := b.Sub(a); got != (Vec3{3, 3, 3}) {
		t.Errorf("Sub: got %v", got)
	}
	if got := a.Neg(); got != (Vec3{-1, -2, -3}) {
		t.Errorf("Neg: got %v", got)
	}
	if got := a.Scale(2); got != (Vec3{2, 4, 6}) {
		t.Errorf("Scale: got %v", got)
	}
}

func TestVec3DotCross(t *testing.T) {
	a := Vec3{1, 0, 0}
	b := Vec3{0, 1, 0}
	if got := a.Dot(b); got != 0 {
		t.Errorf("Dot: got %v, want 0", got)
	}
	if got := a.Cross(b); got != (Vec3{0, 0, 1}) {
		t.Errorf("Cross: got %v, want (0,0,1)", got)
	}
}

func TestVec3Length(t *testing.T) {
	v := Vec3{3, 4, 0}
	if got := v.Length2(); got != 25 {
		t.Errorf("Length2: got %v, want 25", got)
	}
	if got := v.Length(); got != 5 {
		t.Errorf("Length: got %v, want 5", got)
	}
}

func TestVec3Normalize(t *testing.T) {
	v := Vec3{3, 4, 0}
	prevLen := v.Normalize()
	if prevLen != 5 {
		t.Errorf("Normalize previous length: got %v, want 5", prevLen)
	}
	if got := v.Length(); math.Abs(float64(got)-1) > 1e-6 {
		t.Errorf("Normalize result length: got %v, want 1", got)
	}
}

func TestVec3WithLength(t *testing.T) {
	v := Vec3{1, 0, 0}
	got := v.WithLength(5)
	if got != (Vec3{5, 0, 0}) {
		t.Errorf("WithLength: got %v", got)
	}
}

func TestVec3Distance2To(t *testing.T) {
	a := Vec3{0, 0, 0}
	b := Vec3{3, 4, 0}
	if got := a.Distance2To(b); got != 25 {
		t.Errorf("Distance2To: got %v, want 25", got)
	}
}

func TestVec3Index(t *testing.T) {
	v := Vec3{1, 2, 3}
	for i, want := range []float32{1, 2, 3} {
		if got := v.Index(i); got != want {
			t.Errorf("Index(%d): got %v, want %v", i, got, want)
		}
	}
}

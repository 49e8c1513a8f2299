package vecmath

import "testing"

func TestPackUnpackRGBA(t *testing.T) {
	packed := PackRGBA(0x11, 0x22, 0x33, 0x44)
	if want := uint32(0x11223344); packed != want {
		t.Errorf("PackRGBA: got %#x, want %#x", packed, want)
	}
	r, g, b, a := UnpackRGBA(packed)
	if r != 0x11 || g != 0x22 || b != 0x33 || a != 0x44 {
		t.Errorf("UnpackRGBA: got (%#x,%#x,%#x,%#x)", r, g, b, a)
	}
}

func TestLerpF(t *testing.T) {
	if got := LerpF(0, 10, 0); got != 0 {
		t.Errorf("LerpF t=0: got %v, want 0", got)
	}
	if got := LerpF(0, 10, 1); got != 10 {
		t.Errorf("LerpF t=1: got %v, want 10", got)
	}
	if got := LerpF(0, 10, 0.5); got != 5 {
		t.Errorf("LerpF t=0.5: got %v, want 5", got)
	}
}

func TestLerpVec3F(t *testing.T) {
	a := Vec3{0, 0, 0}
	b := Vec3{10, 20, 30}
	if got := LerpVec3F(a, b, 0.5); got != (Vec3{5, 10, 15}) {
		t.Errorf("LerpVec3F: got %v", got)
	}
}

func TestLerpInt256Boundaries(t *testing.T) {
	if got := LerpInt256(0, 255, 0); got != 0 {
		t.Errorf("LerpInt256 t=0: got %v, want 0", got)
	}
	if got := LerpInt256(0, 255, 256); got != 255 {
		t.Errorf("LerpInt256 t=256: got %v, want 255", got)
	}
	// Midpoint with large channel values must not overflow like an
	// 8-bit accumulator would.
	if got := LerpInt256(255, 255, 128); got != 255 {
		t.Errorf("LerpInt256 255/255: got %v, want 255", got)
	}
}

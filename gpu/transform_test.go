package gpu

import (
	"testing"

	"github.com/zaynotley-labs/swgpu/regstate"
	"github.com/zaynotley-labs/swgpu/vecmath"
)

func TestModelToWorldLinearPlusTranslation(t *testing.T) {
	tr := &Transform{
		World: [12]float32{
			2, 0, 0,
			0, 3, 0,
			0, 0, 4,
			10, 20, 30,
		},
	}
	v := vecmath.Vec3{X: 1, Y: 1, Z: 1}
	got := tr.ModelToWorld(v)
	want := vecmath.Vec3{X: 12, Y: 23, Z: 34} // (2,3,4)*1 + (10,20,30)
	if got != want {
		t.Errorf("ModelToWorld: got %v, want %v", got, want)
	}
}

func TestScreenToDrawingStaysWithin10Bits(t *testing.T) {
	st := regstate.New()
	st.SetOffset(0, 0)
	for _, sc := range []vecmath.ScreenCoords{
		{X: 0, Y: 0},
		{X: 16000, Y: 16000},
		{X: -16000, Y: -16000},
	} {
		d := ScreenToDrawing(sc, st)
		if d.X > 0x3FF || d.Y > 0x3FF {
			t.Errorf("ScreenToDrawing(%v): got (%d,%d), want within [0,1023]", sc, d.X, d.Y)
		}
	}
}

func TestThroughModeBypassesTransform(t *testing.T) {
	st := regstate.New()
	st.SetMode(regstate.ModeThrough, true)
	v := Vertex{ModelPos: vecmath.Vec3{X: 32, Y: 48, Z: 100}}
	out := Process(v, &Transform{}, st, NopLighter{})
	if out.ClipPos.W != 1 {
		t.Errorf("through mode: clippos.w = %v, want 1", out.ClipPos.W)
	}
	if out.DrawPos.X != 2 || out.DrawPos.Y != 3 { // 32/16=2, 48/16=3
		t.Errorf("through mode drawpos: got (%d,%d), want (2,3)", out.DrawPos.X, out.DrawPos.Y)
	}
}

package gpu

import (
	"testing"

	"github.com/zaynotley-labs/swgpu/regstate"
	"github.com/zaynotley-labs/swgpu/vecmath"
)

type triangleReader struct{ verts [3]Vertex }

func (r *triangleReader) HasUV() bool             { return false }
func (r *triangleReader) HasNormal() bool         { return false }
func (r *triangleReader) HasColor0() bool         { return true }
func (r *triangleReader) HasColor1() bool         { return true }
func (r *triangleReader) ReadVertex(i int) Vertex { return r.verts[i] }

func throughVertex(x, y int16, color [4]int32) Vertex {
	return Vertex{
		ModelPos:  vecmath.Vec3{X: float32(x), Y: float32(y)},
		HasColor0: true,
		HasColor1: true,
		Color0:    color,
	}
}

func throughTriangleReader() *triangleReader {
	return &triangleReader{verts: [3]Vertex{
		throughVertex(0, 0, [4]int32{255, 0, 0, 255}),
		throughVertex(160, 0, [4]int32{255, 0, 0, 255}),
		throughVertex(0, 160, [4]int32{255, 0, 0, 255}),
	}}
}

func TestEngineSubmitPrimitiveEndToEnd(t *testing.T) {
	e, err := NewSoftwareEngine(16, 16, nil)
	if err != nil {
		t.Fatalf("NewSoftwareEngine: %v", err)
	}
	e.State.SetMode(regstate.ModeThrough, true)
	e.Clear(0, 0xFFFF)

	e.SubmitPrimitive(throughTriangleReader(), nil, PrimTriangles, 3)

	frame := e.Framebuffer()
	if frame[0] == 0 {
		t.Error("expected pixel (0,0) to be written by the submitted triangle")
	}
}

func TestEngineTileWorkersProducesSameCoverageAsSingleThreaded(t *testing.T) {
	e1, err := NewSoftwareEngine(16, 16, nil)
	if err != nil {
		t.Fatalf("NewSoftwareEngine: %v", err)
	}
	e1.State.SetMode(regstate.ModeThrough, true)
	e1.SubmitPrimitive(throughTriangleReader(), nil, PrimTriangles, 3)

	e2, err := NewSoftwareEngine(16, 16, nil)
	if err != nil {
		t.Fatalf("NewSoftwareEngine: %v", err)
	}
	e2.State.SetMode(regstate.ModeThrough, true)
	e2.SetTileWorkers(4)
	e2.SubmitPrimitive(throughTriangleReader(), nil, PrimTriangles, 3)

	f1, f2 := e1.Framebuffer(), e2.Framebuffer()
	if len(f1) != len(f2) {
		t.Fatalf("frame length mismatch: %d vs %d", len(f1), len(f2))
	}
	for i := range f1 {
		if f1[i] != f2[i] {
			t.Fatalf("pixel %d differs between single-threaded and tiled: %#x vs %#x", i, f1[i], f2[i])
		}
	}
}

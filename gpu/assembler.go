package gpu

import (
	"github.com/zaynotley-labs/swgpu/gpulog"
	"github.com/zaynotley-labs/swgpu/regstate"
)

// PrimitiveType enumerates the topologies SubmitPrimitive accepts.
type PrimitiveType uint8

const (
	PrimPoints PrimitiveType = iota
	PrimLines
	PrimTriangles
	PrimTriangleStrip
	PrimTriangleFan
	PrimRectangles
)

// vtcsPerPrim resolves a primitive topology to how many index slots each
// primitive consumes from the raw stream before strip/fan rolling kicks
// in, per spec.md §4.7.
func vtcsPerPrim(p PrimitiveType) int {
	switch p {
	case PrimPoints:
		return 1
	case PrimLines:
		return 2
	case PrimRectangles:
		return 2
	default:
		return 3
	}
}

// IndexSource resolves the i'th logical vertex of a primitive batch to an
// index into the raw vertex buffer. Passing a nil IndexSource to
// SubmitPrimitive means unindexed (sequential) vertices.
type IndexSource interface {
	Len() int
	At(i int) int
}

// U8Indices and U16Indices are the two supported index widths (spec.md
// §4.7: "optional index array (8- or 16-bit)").
type U8Indices []uint8

func (idx U8Indices) Len() int     { return len(idx) }
func (idx U8Indices) At(i int) int { return int(idx[i]) }

type U16Indices []uint16

func (idx U16Indices) Len() int     { return len(idx) }
func (idx U16Indices) At(i int) int { return int(idx[i]) }

// TriangleSink receives each assembled, transformed triangle for
// rasterization. Rectangle primitives are expanded into two triangles
// before reaching the sink (spec.md's supplemental quad-fill path), so the
// rasterizer never has to special-case topology.
type TriangleSink func(a, b, c Vertex)

// Assembler turns a raw vertex stream plus optional index array into
// transformed triangles, rolling triangle strips/fans and expanding
// rectangles along the way. It is the Go shape of
// TransformUnit::SubmitPrimitive, split so the strip/fan/rectangle logic
// it used to inline is testable independent of a live VertexReader.
type Assembler struct {
	Transform *Transform
	State     *regstate.State
	Lighter   Lighter
}

// SubmitPrimitive decodes and transforms vertexCount vertices (or
// indices.Len() if indices is non-nil) out of reader, rolls them into
// triangles per primType, and delivers each finished triangle to sink.
func (asm *Assembler) SubmitPrimitive(reader VertexReader, indices IndexSource, primType PrimitiveType, vertexCount int, sink TriangleSink) {
	n := vertexCount
	if indices != nil {
		n = indices.Len()
	}
	resolve := func(i int) int {
		if indices != nil {
			return indices.At(i)
		}
		return i
	}

	read := func(i int) Vertex {
		v := reader.ReadVertex(resolve(i))
		if !asm.State.IsModeClear() && asm.State.IsTextureMapEnabled() && !v.HasUV {
			v.TexCoord = Vec2{}
		}
		if !v.HasColor0 {
			r, g, b, a := unpackMaterial(asm.State.MaterialColor(0))
			v.Color0 = [4]int32{int32(r), int32(g), int32(b), int32(a)}
		}
		if !v.HasColor1 {
			r, g, b, _ := unpackMaterial(asm.State.MaterialColor(1))
			v.Color1 = [3]int32{int32(r), int32(g), int32(b)}
		}
		return Process(v, asm.Transform, asm.State, asm.Lighter)
	}

	// checkedSink implements spec.md §7's legacy non-clipping path: any
	// vertex on or behind the near plane (clippos.w<=0) would otherwise
	// divide by a non-positive w in ClipToScreen and feed garbage
	// coordinates to the rasterizer, so the whole primitive is logged and
	// dropped instead. The modern path would clip against the view volume
	// rather than drop, but that is not implemented here.
	checkedSink := func(a, b, c Vertex) {
		if a.ClipPos.W <= 0 || b.ClipPos.W <= 0 || c.ClipPos.W <= 0 {
			gpulog.Warnf("G3D", "primitive outside view volume (clippos.w<=0), dropping")
			return
		}
		sink(a, b, c)
	}

	switch primType {
	case PrimTriangles:
		for vtx := 0; vtx+3 <= n; vtx += 3 {
			checkedSink(read(vtx), read(vtx+1), read(vtx+2))
		}

	case PrimTriangleStrip:
		if n < 3 {
			return
		}
		v0, v1 := read(0), read(1)
		for i := 2; i < n; i++ {
			v2 := read(i)
			if i%2 == 0 {
				checkedSink(v0, v1, v2)
			} else {
				checkedSink(v1, v0, v2)
			}
			v0, v1 = v1, v2
		}

	case PrimTriangleFan:
		if n < 3 {
			return
		}
		anchor := read(0)
		prev := read(1)
		for i := 2; i < n; i++ {
			cur := read(i)
			checkedSink(anchor, prev, cur)
			prev = cur
		}

	case PrimRectangles:
		for vtx := 0; vtx+2 <= n; vtx += 2 {
			topLeft, bottomRight := read(vtx), read(vtx+1)
			submitRectangle(topLeft, bottomRight, checkedSink)
		}
	}
}

// submitRectangle expands a two-vertex screen-aligned rectangle primitive
// into two triangles sharing the rectangle's diagonal. The two generated
// corners are copies of bottomRight (depth, colors, w) that take one x/y
// coordinate and the matching UV component from topLeft, so UV
// interpolates across the rect. topLeft itself keeps its own attributes;
// bottomRight or its copy is the last (provoking) vertex of both triangles.
func submitRectangle(topLeft, bottomRight Vertex, sink TriangleSink) {
	topRight := bottomRight
	topRight.ClipPos.Y = topLeft.ClipPos.Y
	topRight.ScreenPos.Y = topLeft.ScreenPos.Y
	topRight.DrawPos.Y = topLeft.DrawPos.Y
	topRight.TexCoord.Y = topLeft.TexCoord.Y

	bottomLeft := bottomRight
	bottomLeft.ClipPos.X = topLeft.ClipPos.X
	bottomLeft.ScreenPos.X = topLeft.ScreenPos.X
	bottomLeft.DrawPos.X = topLeft.DrawPos.X
	bottomLeft.TexCoord.X = topLeft.TexCoord.X

	sink(topLeft, topRight, bottomRight)
	sink(topLeft, bottomRight, bottomLeft)
}

func unpackMaterial(rgba uint32) (r, g, b, a uint8) {
	return uint8(rgba >> 24), uint8(rgba >> 16), uint8(rgba >> 8), uint8(rgba)
}

package gpu

import "github.com/zaynotley-labs/swgpu/vecmath"

// Vertex is the assembled, per-stage attribute bundle a primitive's
// corners carry through the pipeline: raw model-space position through
// to the screen/drawing coordinates the rasterizer consumes. It is the Go
// shape of TransformPipeline.h's VertexData, split into the pipeline
// stages rather than kept as one struct mutated in place, since each
// stage here is a pure function rather than an in-place Lerp.
type Vertex struct {
	ModelPos Vec3

	ClipPos  vecmath.Vec4
	ScreenPos vecmath.ScreenCoords
	DrawPos   vecmath.DrawingCoords

	TexCoord vecmath.Vec2
	Normal   vecmath.Vec3

	// Color0 carries RGBA in [0,255] integer lanes (diffuse/material
	// color), Color1 carries RGB only (specular, always opaque).
	Color0 [4]int32
	Color1 [3]int32

	HasColor0 bool
	HasColor1 bool
	HasUV     bool
	HasNormal bool
}

// Vec3 and Vec2 are aliases kept local to gpu so the rest of the package
// reads naturally as "Vec3"/"Vec2" the way TransformPipeline.cpp's
// ModelCoords/WorldCoords/ViewCoords all resolve to one Vec3<float> type.
type Vec3 = vecmath.Vec3
type Vec2 = vecmath.Vec2

// LerpVertex interpolates two vertices, e.g. for clip-plane work; color
// channels use the fixed-point LerpInt256 to match the hardware's integer
// blend path (spec.md §9), while ModelPos, ClipPos, TexCoord and Normal use
// float lerp. ScreenPos and DrawPos are left zero.
func LerpVertex(a, b Vertex, t float32) Vertex {
	t256 := int32(t * 256)
	var out Vertex
	out.ModelPos = vecmath.LerpVec3F(a.ModelPos, b.ModelPos, t)
	out.ClipPos = vecmath.LerpVec4F(a.ClipPos, b.ClipPos, t)
	out.TexCoord = a.TexCoord.Scale(1 - t).Add(b.TexCoord.Scale(t))
	out.Normal = vecmath.LerpVec3F(a.Normal, b.Normal, t)
	for i := range out.Color0 {
		out.Color0[i] = vecmath.LerpInt256(a.Color0[i], b.Color0[i], t256)
	}
	for i := range out.Color1 {
		out.Color1[i] = vecmath.LerpInt256(a.Color1[i], b.Color1[i], t256)
	}
	out.HasColor0 = a.HasColor0 || b.HasColor0
	out.HasColor1 = a.HasColor1 || b.HasColor1
	out.HasUV = a.HasUV || b.HasUV
	out.HasNormal = a.HasNormal || b.HasNormal
	return out
}

// VertexReader decodes a single vertex out of a raw vertex-type-tagged
// buffer at a given index. Implementations report which attributes are
// actually present in the stream via Has*, matching the external
// collaborator contract spec.md §4.7 names (the vertex-type-driven decoder
// TransformPipeline::SubmitPrimitive delegates to).
type VertexReader interface {
	HasUV() bool
	HasNormal() bool
	HasColor0() bool
	HasColor1() bool
	ReadVertex(index int) Vertex
}

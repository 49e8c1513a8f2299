package gpu

import (
	"github.com/zaynotley-labs/swgpu/regstate"
	"github.com/zaynotley-labs/swgpu/vecmath"
)

// Lighter computes a vertex's lit color from its world-space position and
// normal. The rasterizer's own reference implementation never needs more
// than the unlit material color, so it depends on this interface rather
// than importing a full light-source model; NopLighter satisfies it when
// lighting is disabled, matching Lighting::Process's disabled-state no-op.
type Lighter interface {
	Light(worldPos, worldNormal vecmath.Vec3, color0 [4]int32) [4]int32
}

// NopLighter returns the vertex's own material color unchanged.
type NopLighter struct{}

func (NopLighter) Light(worldPos, worldNormal vecmath.Vec3, color0 [4]int32) [4]int32 {
	return color0
}

// Transform holds the two 3x4 register blocks (world, view) and the
// projection 4x4 the pipeline multiplies every non-through-mode vertex by.
type Transform struct {
	World [12]float32
	View  [12]float32
	Proj  vecmath.Mat4
}

func (t *Transform) ModelToWorld(v vecmath.Vec3) vecmath.Vec3 {
	return vecmath.Linear3(t.World).Mul(v).Add(vecmath.Translation(t.World))
}

func (t *Transform) WorldToView(v vecmath.Vec3) vecmath.Vec3 {
	return vecmath.Linear3(t.View).Mul(v).Add(vecmath.Translation(t.View))
}

func (t *Transform) ViewToClip(v vecmath.Vec3) vecmath.Vec4 {
	return t.Proj.Mul(vecmath.Vec4{X: v.X, Y: v.Y, Z: v.Z, W: 1})
}

// ClipToScreen performs the perspective divide and viewport mapping,
// producing sub-pixel (16 units per pixel) screen coordinates.
func ClipToScreen(c vecmath.Vec4, st *regstate.State) vecmath.ScreenCoords {
	halfW, cx, halfH, cy, halfD, cz := st.Viewport()
	x := (c.X*halfW/c.W + cx) * 16
	y := (c.Y*halfH/c.W + cy) * 16
	z := (c.Z*halfD/c.W + cz) * 16
	return vecmath.ScreenCoords{X: int16(int32(x)), Y: int16(int32(y)), Z: uint16(uint32(int32(z)))}
}

// ScreenToDrawing converts sub-pixel screen coordinates into 10-bit
// drawing-space pixel indices using the state's configured offset.
func ScreenToDrawing(s vecmath.ScreenCoords, st *regstate.State) vecmath.DrawingCoords {
	ox, oy := st.Offset()
	return vecmath.ScreenToDrawing(s, ox, oy)
}

// Process runs one vertex through the full chain: model -> world -> view ->
// clip -> screen -> drawing, applying lighting between the world and clip
// steps. In through mode the supplied vertex already carries drawing-space
// coordinates in ModelPos, so the whole chain is skipped and clippos.w is
// forced to 1 (spec.md §4.3).
func Process(v Vertex, t *Transform, st *regstate.State, lighter Lighter) Vertex {
	if st.IsModeThrough() {
		v.ClipPos = vecmath.Vec4{X: v.ModelPos.X, Y: v.ModelPos.Y, Z: v.ModelPos.Z, W: 1}
		v.ScreenPos = vecmath.ScreenCoords{
			X: int16(v.ModelPos.X),
			Y: int16(v.ModelPos.Y),
			Z: uint16(v.ModelPos.Z),
		}
		v.DrawPos = ScreenToDrawing(v.ScreenPos, st)
		return v
	}

	worldPos := t.ModelToWorld(v.ModelPos)
	viewPos := t.WorldToView(worldPos)
	v.ClipPos = t.ViewToClip(viewPos)
	v.ScreenPos = ClipToScreen(v.ClipPos, st)
	v.DrawPos = ScreenToDrawing(v.ScreenPos, st)

	if v.HasNormal {
		worldNormal := vecmath.Linear3(t.World).Mul(v.Normal)
		v.Color0 = lighter.Light(worldPos, worldNormal, v.Color0)
	}
	return v
}

package gpu

import (
	"github.com/zaynotley-labs/swgpu/gpulog"
	"github.com/zaynotley-labs/swgpu/regstate"
)

// Blend combines src (the shaded fragment color) with dst (the current
// framebuffer pixel, canonical RGBA8-packed) per spec.md §4.5. Alpha is
// never blended: it passes through from src verbatim.
func Blend(st *regstate.State, src [4]int32, dstPacked uint32) [4]int32 {
	dst := [4]int32{
		int32(dstPacked >> 24), int32(dstPacked>>16) & 0xFF,
		int32(dstPacked>>8) & 0xFF, int32(dstPacked) & 0xFF,
	}

	srcF := srcBlendFactor(st.BlendSrcFactor(), src, dst, st)
	dstF := dstBlendFactor(st.BlendDstFactor(), src, dst, st)

	var rgb [3]int32
	switch st.BlendEquation() {
	case regstate.BlendMulAndAdd:
		for i := 0; i < 3; i++ {
			rgb[i] = (src[i]*srcF[i] + dst[i]*dstF[i] + 127) / 255
		}
	case regstate.BlendMulAndSubtract:
		for i := 0; i < 3; i++ {
			rgb[i] = (src[i]*srcF[i] - dst[i]*dstF[i]) / 255
		}
	case regstate.BlendMulAndSubtractReverse:
		for i := 0; i < 3; i++ {
			rgb[i] = (dst[i]*dstF[i] - src[i]*srcF[i]) / 255
		}
	case regstate.BlendMin:
		for i := 0; i < 3; i++ {
			rgb[i] = min32(src[i], dst[i])
		}
	case regstate.BlendMax:
		for i := 0; i < 3; i++ {
			rgb[i] = max32(src[i], dst[i])
		}
	case regstate.BlendAbsDiff:
		for i := 0; i < 3; i++ {
			rgb[i] = absDiff32(src[i], dst[i])
		}
	}

	return [4]int32{clampI32(rgb[0], 0, 255), clampI32(rgb[1], 0, 255), clampI32(rgb[2], 0, 255), src[3]}
}

// srcBlendFactor resolves the thirteen source blend factors to a
// per-channel multiplier in [0,255].
func srcBlendFactor(f regstate.BlendSrcFactor, src, dst [4]int32, st *regstate.State) [3]int32 {
	switch f {
	case regstate.BlendSrcZero:
		return [3]int32{0, 0, 0}
	case regstate.BlendSrcOne:
		return [3]int32{255, 255, 255}
	case regstate.BlendSrcDstColor:
		return [3]int32{dst[0], dst[1], dst[2]}
	case regstate.BlendSrcInvDstColor:
		return [3]int32{255 - dst[0], 255 - dst[1], 255 - dst[2]}
	case regstate.BlendSrcSrcAlpha:
		return [3]int32{src[3], src[3], src[3]}
	case regstate.BlendSrcInvSrcAlpha:
		return [3]int32{255 - src[3], 255 - src[3], 255 - src[3]}
	case regstate.BlendSrcDstAlpha:
		return [3]int32{dst[3], dst[3], dst[3]}
	case regstate.BlendSrcInvDstAlpha:
		return [3]int32{255 - dst[3], 255 - dst[3], 255 - dst[3]}
	case regstate.BlendSrcDoubleSrcAlpha:
		return [3]int32{clampI32(2*src[3], 0, 255), clampI32(2*src[3], 0, 255), clampI32(2*src[3], 0, 255)}
	case regstate.BlendSrcDoubleInvSrcAlpha:
		v := clampI32(2*(255-src[3]), 0, 255)
		return [3]int32{v, v, v}
	case regstate.BlendSrcDoubleDstAlpha:
		v := clampI32(2*dst[3], 0, 255)
		return [3]int32{v, v, v}
	case regstate.BlendSrcDoubleInvDstAlpha:
		v := clampI32(2*(255-dst[3]), 0, 255)
		return [3]int32{v, v, v}
	case regstate.BlendSrcFixA:
		r, g, b, _ := unpackMaterial(st.FixA())
		return [3]int32{int32(r), int32(g), int32(b)}
	default:
		gpulog.Errorf("G3D", "unknown source blend factor %d, degrading to zero", f)
		return [3]int32{0, 0, 0}
	}
}

// dstBlendFactor resolves the thirteen destination blend factors — the
// symmetric set with SrcColor/InvSrcColor and FixB in place of
// DstColor/InvDstColor and FixA.
func dstBlendFactor(f regstate.BlendDstFactor, src, dst [4]int32, st *regstate.State) [3]int32 {
	switch f {
	case regstate.BlendDstZero:
		return [3]int32{0, 0, 0}
	case regstate.BlendDstOne:
		return [3]int32{255, 255, 255}
	case regstate.BlendDstSrcColor:
		return [3]int32{src[0], src[1], src[2]}
	case regstate.BlendDstInvSrcColor:
		return [3]int32{255 - src[0], 255 - src[1], 255 - src[2]}
	case regstate.BlendDstSrcAlpha:
		return [3]int32{src[3], src[3], src[3]}
	case regstate.BlendDstInvSrcAlpha:
		return [3]int32{255 - src[3], 255 - src[3], 255 - src[3]}
	case regstate.BlendDstDstAlpha:
		return [3]int32{dst[3], dst[3], dst[3]}
	case regstate.BlendDstInvDstAlpha:
		return [3]int32{255 - dst[3], 255 - dst[3], 255 - dst[3]}
	case regstate.BlendDstDoubleSrcAlpha:
		v := clampI32(2*src[3], 0, 255)
		return [3]int32{v, v, v}
	case regstate.BlendDstDoubleInvSrcAlpha:
		v := clampI32(2*(255-src[3]), 0, 255)
		return [3]int32{v, v, v}
	case regstate.BlendDstDoubleDstAlpha:
		v := clampI32(2*dst[3], 0, 255)
		return [3]int32{v, v, v}
	case regstate.BlendDstDoubleInvDstAlpha:
		v := clampI32(2*(255-dst[3]), 0, 255)
		return [3]int32{v, v, v}
	case regstate.BlendDstFixB:
		r, g, b, _ := unpackMaterial(st.FixB())
		return [3]int32{int32(r), int32(g), int32(b)}
	default:
		gpulog.Errorf("G3D", "unknown destination blend factor %d, degrading to zero", f)
		return [3]int32{0, 0, 0}
	}
}

func min32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

func max32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}

func absDiff32(a, b int32) int32 {
	if a > b {
		return a - b
	}
	return b - a
}

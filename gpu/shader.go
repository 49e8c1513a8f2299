package gpu

import (
	"github.com/zaynotley-labs/swgpu/gpulog"
	"github.com/zaynotley-labs/swgpu/regstate"
)

// ShadeTexture combines a pixel's fragment color with a sampled texel
// according to the active texture environment function, per spec.md §4.4
// step 8. primary carries the fragment's RGBA in [0,255] int32 lanes;
// tex carries the sampled texel in the same lanes. The state's rgba flag
// controls whether the texture's own alpha replaces/modulates the
// fragment alpha or is ignored entirely.
func ShadeTexture(st *regstate.State, primary, tex [4]int32) [4]int32 {
	fn, useTexAlpha := st.TexFunc()
	out := primary

	switch fn {
	case regstate.TexModulate:
		for i := 0; i < 3; i++ {
			out[i] = primary[i] * tex[i] / 255
		}
		if useTexAlpha {
			out[3] = primary[3] * tex[3] / 255
		}

	case regstate.TexDecal:
		t := int32(255)
		if useTexAlpha {
			t = tex[3]
		}
		for i := 0; i < 3; i++ {
			out[i] = ((255-t)*primary[i] + t*tex[i]) / 255
		}

	case regstate.TexBlend:
		envR, envG, envB, _ := unpackMaterial(st.TexEnvColor())
		env := [3]int32{int32(envR), int32(envG), int32(envB)}
		for i := 0; i < 3; i++ {
			out[i] = ((255-tex[i])*primary[i] + tex[i]*env[i]) / 255
		}
		if useTexAlpha {
			out[3] = primary[3] * tex[3] / 255
		}

	case regstate.TexReplace:
		out[0], out[1], out[2] = tex[0], tex[1], tex[2]
		if useTexAlpha {
			out[3] = tex[3]
		}

	case regstate.TexAdd:
		for i := 0; i < 3; i++ {
			out[i] = clampI32(primary[i]+tex[i], 0, 255)
		}
		if useTexAlpha {
			out[3] = primary[3] * tex[3] / 255
		}

	default:
		gpulog.Errorf("G3D", "unknown texture function %d, leaving fragment unlit by texture", fn)
	}

	return out
}

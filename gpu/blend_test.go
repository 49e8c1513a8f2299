package gpu

import (
	"testing"

	"github.com/zaynotley-labs/swgpu/regstate"
)

func TestBlendEquations(t *testing.T) {
	src := [4]int32{200, 50, 10, 255}
	dstPacked := packColor32([4]int32{10, 100, 200, 255})

	cases := []struct {
		name string
		eq   regstate.BlendEquation
		want [3]int32
	}{
		{"min", regstate.BlendMin, [3]int32{10, 50, 10}},
		{"max", regstate.BlendMax, [3]int32{200, 100, 200}},
		{"absdiff", regstate.BlendAbsDiff, [3]int32{190, 50, 190}},
	}
	for _, c := range cases {
		st := regstate.New()
		st.SetBlendEquation(c.eq)
		got := Blend(st, src, dstPacked)
		if [3]int32{got[0], got[1], got[2]} != c.want {
			t.Errorf("%s: got %v, want %v", c.name, got[:3], c.want)
		}
		if got[3] != src[3] {
			t.Errorf("%s: alpha got %d, want unblended %d", c.name, got[3], src[3])
		}
	}
}

func TestBlendOneZero(t *testing.T) {
	st := regstate.New()
	st.SetBlendSrcFactor(regstate.BlendSrcOne)
	st.SetBlendDstFactor(regstate.BlendDstZero)
	st.SetBlendEquation(regstate.BlendMulAndAdd)

	src := [4]int32{10, 20, 30, 255}
	dstPacked := packColor32([4]int32{200, 200, 200, 255})

	got := Blend(st, src, dstPacked)
	want := [4]int32{10, 20, 30, 255}
	if got != want {
		t.Errorf("One/Zero MulAndAdd: got %v, want %v (src passthrough)", got, want)
	}
}

func TestBlendFixAFixB(t *testing.T) {
	st := regstate.New()
	st.SetBlendSrcFactor(regstate.BlendSrcFixA)
	st.SetBlendDstFactor(regstate.BlendDstFixB)
	st.SetBlendEquation(regstate.BlendMulAndAdd)
	st.SetFixA(0xFF000000) // r=255,g=0,b=0 as fixA
	st.SetFixB(0x00000000)

	src := [4]int32{100, 100, 100, 255}
	dstPacked := packColor32([4]int32{50, 50, 50, 255})

	got := Blend(st, src, dstPacked)
	// srcFactor = (255,0,0), dstFactor = (0,0,0)
	want := [4]int32{(100 * 255) / 255, 0, 0, 255}
	if got != want {
		t.Errorf("FixA/FixB: got %v, want %v", got, want)
	}
}

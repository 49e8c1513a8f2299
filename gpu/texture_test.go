package gpu

import (
	"testing"

	"github.com/zaynotley-labs/swgpu/regstate"
	"github.com/zaynotley-labs/swgpu/vecmath"
)

// fakeMemory is a GuestMemory backed by a plain byte slice, for sampler
// tests that don't need the full FlatGuestMemory bounds-checking wrapper.
type fakeMemory []byte

func (m fakeMemory) ReadBytes(addr uint32, n int) []byte { return m[addr : int(addr)+n] }
func (m fakeMemory) ReadUint32(addr uint32) uint32 {
	b := m.ReadBytes(addr, 4)
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}
func (m fakeMemory) ReadUint16(addr uint32) uint16 {
	b := m.ReadBytes(addr, 2)
	return uint16(b[0]) | uint16(b[1])<<8
}
func (m fakeMemory) ReadUint8(addr uint32) uint8 { return m[addr] }

func rgb565(r, g, b uint8) uint16 {
	return uint16(r&0x1F) | uint16(g&0x3F)<<5 | uint16(b&0x1F)<<11
}

func TestSampleNearest5650Decode(t *testing.T) {
	st := regstate.New()
	st.SetTextureFormat(regstate.TexFmt5650)
	st.SetMip(0, regstate.MipLevel{Addr: 0, BufWidth: 2, SizeField: 0x0101}) // 2x2

	white := rgb565(0x1F, 0x3F, 0x1F)
	black := rgb565(0, 0, 0)

	mem := make(fakeMemory, 8)
	putU16 := func(off int, v uint16) { mem[off], mem[off+1] = byte(v), byte(v>>8) }
	putU16(0, white)
	putU16(2, black)
	putU16(4, black)
	putU16(6, white)

	ts := &TextureSampler{Mem: mem, State: st}

	got := ts.SampleNearest(0, 0, 0)
	r, g, b, a := vecmath.UnpackRGBA(got)
	if r != 255 || g != 255 || b != 255 || a != 255 {
		t.Errorf("texel(0,0): got (%d,%d,%d,%d), want white", r, g, b, a)
	}

	got = ts.SampleNearest(0, 0.75, 0)
	r, g, b, _ = vecmath.UnpackRGBA(got)
	if r != 0 || g != 0 || b != 0 {
		t.Errorf("texel(1,0): got (%d,%d,%d), want black", r, g, b)
	}
}

func TestSampleNearestIsPure(t *testing.T) {
	st := regstate.New()
	st.SetTextureFormat(regstate.TexFmt8888)
	st.SetMip(0, regstate.MipLevel{Addr: 0, BufWidth: 1, SizeField: 0x0000})
	mem := make(fakeMemory, 4)
	mem[0], mem[1], mem[2], mem[3] = 0x11, 0x22, 0x33, 0x44
	ts := &TextureSampler{Mem: mem, State: st}

	a := ts.SampleNearest(0, 0.1, 0.1)
	b := ts.SampleNearest(0, 0.1, 0.1)
	if a != b {
		t.Errorf("SampleNearest not pure: got %#x then %#x", a, b)
	}
}

func TestSwizzledOffsetMatchesClosedForm(t *testing.T) {
	const width, bpp = 64, 8
	u, v := 5, 9
	texelsPerTile := 32 / bpp
	want := (u/(texelsPerTile*4))*(32*4*8/8) +
		(u%(texelsPerTile*4))*bpp/8 +
		(v%8)*(4*32/8) +
		(v/8)*(width*bpp*8/8)

	got := swizzledOffset(u, v, width, bpp)
	if got != want {
		t.Errorf("swizzledOffset(%d,%d): got %d, want %d", u, v, got, want)
	}
}

func TestShadeTextureModulateFlatShading(t *testing.T) {
	st := regstate.New()
	st.SetTexFunc(regstate.TexModulate, false)

	primary := [4]int32{128, 128, 128, 255}
	tex := [4]int32{128, 128, 128, 255}

	got := ShadeTexture(st, primary, tex)
	want := [4]int32{64, 64, 64, 255}
	if got != want {
		t.Errorf("ShadeTexture modulate: got %v, want %v", got, want)
	}
}

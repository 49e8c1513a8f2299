package gpu

import (
	"github.com/zaynotley-labs/swgpu/gpulog"
	"github.com/zaynotley-labs/swgpu/regstate"
	"github.com/zaynotley-labs/swgpu/vecmath"
)

// TextureSampler implements sample_nearest (spec.md §4.6): format decode,
// swizzled-tile or linear offset resolution, and CLUT lookup. It reads
// texel/CLUT bytes through GuestMemory the same way the vertex decoder
// reads vertex bytes, rather than requiring a pre-copied texture image.
type TextureSampler struct {
	Mem   GuestMemory
	State *regstate.State
	// CLUT holds the 4096-entry 32-bit ABGR palette, pre-decoded by the
	// caller (spec.md §3's CLUT data model) rather than re-read from guest
	// memory on every lookup.
	CLUT []uint32

	// Through reports whether (s,t) arrive in absolute texel units
	// (through mode) rather than normalized [0,1].
	Through bool
}

// SampleNearest returns the packed canonical-order RGBA8 color for mip
// level at normalized or through-mode (s,t).
func (ts *TextureSampler) SampleNearest(level int, s, t float32) uint32 {
	mip := ts.State.Mip(level)
	width, height := mip.Width(), mip.Height()

	var u, v int
	if ts.Through {
		u, v = int(s), int(t)
	} else {
		u, v = int(s*float32(width)), int(t*float32(height))
	}
	// Wrapping is not implemented (spec.md §4.6 step 2's documented gap):
	// out-of-range texel coordinates clamp to the texture edge.
	u = clampInt(u, 0, width-1)
	v = clampInt(v, 0, height-1)

	format := ts.State.TextureFormat()
	bpp := format.BitsPerPixel()

	var offset int
	if ts.State.IsTextureSwizzled() {
		offset = swizzledOffset(u, v, width, bpp)
	} else {
		offset = (v*width + u) * bpp / 8
	}

	base := mip.Addr + uint32(offset)

	if format.IsIndexed() {
		var index uint32
		if format == regstate.TexFmtCLUT8 {
			index = uint32(ts.Mem.ReadUint8(base))
		} else {
			b := ts.Mem.ReadUint8(base)
			if u&1 == 0 {
				index = uint32(b & 0xF)
			} else {
				index = uint32(b >> 4)
			}
		}
		shift, mask, startPos := ts.State.CLUT()
		clutIndex := ((index >> shift) & mask) | startPos
		if int(clutIndex) >= len(ts.CLUT) {
			return 0
		}
		return ts.CLUT[clutIndex]
	}

	switch format {
	case regstate.TexFmt4444:
		px := ts.Mem.ReadUint16(base)
		r := expand4(uint8(px & 0xF))
		g := expand4(uint8((px >> 4) & 0xF))
		b := expand4(uint8((px >> 8) & 0xF))
		a := expand4(uint8((px >> 12) & 0xF))
		return vecmath.PackRGBA(r, g, b, a)

	case regstate.TexFmt5551:
		px := ts.Mem.ReadUint16(base)
		r := expand5(uint8(px & 0x1F))
		g := expand5(uint8((px >> 5) & 0x1F))
		b := expand5(uint8((px >> 10) & 0x1F))
		a := uint8(0)
		if px&0x8000 != 0 {
			a = 255
		}
		return vecmath.PackRGBA(r, g, b, a)

	case regstate.TexFmt5650:
		px := ts.Mem.ReadUint16(base)
		r := expand5(uint8(px & 0x1F))
		g := expand6(uint8((px >> 5) & 0x3F))
		b := expand5(uint8((px >> 11) & 0x1F))
		return vecmath.PackRGBA(r, g, b, 255)

	case regstate.TexFmt8888:
		px := ts.Mem.ReadUint32(base)
		return vecmath.PackRGBA(uint8(px), uint8(px>>8), uint8(px>>16), uint8(px>>24))

	default:
		gpulog.Errorf("G3D", "unsupported texture format %d, degrading to transparent black", format)
		return 0
	}
}

// swizzledOffset implements spec.md §4.6 step 3's 4x8-tile block
// addressing for the swizzle-on texture layout.
func swizzledOffset(u, v, width, bpp int) int {
	texelsPerTile := 32 / bpp
	const tilesPerRowInBlock = 4
	const rowsPerBlock = 8

	blockCol := (u / (texelsPerTile * tilesPerRowInBlock)) * (32 * tilesPerRowInBlock * rowsPerBlock / 8)
	texelInTileRow := (u % (texelsPerTile * tilesPerRowInBlock)) * bpp / 8
	rowInBlock := (v % rowsPerBlock) * (tilesPerRowInBlock * 32 / 8)
	blockRow := (v / rowsPerBlock) * (width * bpp * rowsPerBlock / 8)

	return blockCol + texelInTileRow + rowInBlock + blockRow
}

func expand4(n uint8) uint8 { return n<<4 | n }
func expand5(c uint8) uint8 { return c<<3 | c>>2 }
func expand6(c uint8) uint8 { return c<<2 | c>>4 }

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

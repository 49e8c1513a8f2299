package gpu

import "github.com/zaynotley-labs/swgpu/regstate"

// Backend renders assembled triangles into a framebuffer. SoftwareBackend
// is the reference implementation every invariant in this package is
// tested against; VulkanBackend (backend_vulkan.go) is an optional
// accelerated path that falls back to the same software core, mirroring
// video_voodoo.go's VoodooBackend/VulkanBackend split.
type Backend interface {
	Init(width, height int) error
	DrawTriangle(v0, v1, v2 Vertex)
	Clear(color uint32, depth uint16)
	GetFrame() []uint32
	Destroy()
}

// SoftwareBackend is the CPU reference rasterizer: a Framebuffer,
// DepthBuffer and Rasterizer bundled behind the Backend interface.
type SoftwareBackend struct {
	fb   *Framebuffer
	db   *DepthBuffer
	rast *Rasterizer
}

// NewSoftwareBackend constructs a backend bound to state st and, if
// sampler is non-nil, capable of texture-mapped draws.
func NewSoftwareBackend(st *regstate.State, sampler *TextureSampler) *SoftwareBackend {
	return &SoftwareBackend{rast: &Rasterizer{State: st, Sampler: sampler}}
}

func (b *SoftwareBackend) Init(width, height int) error {
	b.fb = NewFramebuffer(width, height)
	b.db = NewDepthBuffer(width, height)
	b.rast.Framebuffer = b.fb
	b.rast.Depth = b.db
	return nil
}

func (b *SoftwareBackend) DrawTriangle(v0, v1, v2 Vertex) {
	b.rast.DrawTriangle(v0, v1, v2)
}

// DrawTriangleInStrip satisfies Engine's tileable interface for the
// opt-in tile-parallel rasterization path.
func (b *SoftwareBackend) DrawTriangleInStrip(v0, v1, v2 Vertex, minY, maxY int32) {
	b.rast.DrawTriangleInStrip(v0, v1, v2, minY, maxY)
}

func (b *SoftwareBackend) Clear(color uint32, depth uint16) {
	b.fb.Clear(color)
	b.db.Clear(depth)
}

func (b *SoftwareBackend) GetFrame() []uint32 { return b.fb.Pixels }

func (b *SoftwareBackend) Destroy() {}

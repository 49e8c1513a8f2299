package gpu

import (
	"sync"

	"github.com/zaynotley-labs/swgpu/regstate"
)

// Engine bundles the register bank, backend and scratch state a caller
// drives one primitive submission at a time, mirroring video_voodoo.go's
// VoodooEngine (register bank + backend + batching state behind one
// struct with a mutex guarding concurrent register access).
type Engine struct {
	mutex sync.RWMutex

	State     *regstate.State
	Transform *Transform
	Lighter   Lighter
	Backend   Backend

	assembler *Assembler

	tileWorkers   int
	width, height int
}

// NewEngine constructs an Engine bound to backend, already Init'd to
// width/height. lighter may be nil, in which case NopLighter is used.
func NewEngine(backend Backend, lighter Lighter) *Engine {
	if lighter == nil {
		lighter = NopLighter{}
	}
	st := regstate.New()
	t := &Transform{}
	return &Engine{
		State:     st,
		Transform: t,
		Lighter:   lighter,
		Backend:   backend,
		assembler: &Assembler{Transform: t, State: st, Lighter: lighter},
	}
}

// NewSoftwareEngine builds an Engine backed directly by a SoftwareBackend
// of the given dimensions, sharing one regstate.State between the
// assembler/transform chain and the rasterizer — the common case for
// tests and the cmd tools, which have no need to stand up a backend
// separately from the engine that drives it.
func NewSoftwareEngine(width, height int, sampler *TextureSampler) (*Engine, error) {
	st := regstate.New()
	backend := NewSoftwareBackend(st, sampler)
	if err := backend.Init(width, height); err != nil {
		return nil, err
	}
	t := &Transform{}
	lighter := Lighter(NopLighter{})
	return &Engine{
		State:     st,
		Transform: t,
		Lighter:   lighter,
		Backend:   backend,
		assembler: &Assembler{Transform: t, State: st, Lighter: lighter},
		width:     width,
		height:    height,
	}, nil
}

// Dimensions reports the width and height passed to NewSoftwareEngine,
// e.g. for a debug viewer sizing its window to match. An Engine built with
// NewEngine reports 0, 0.
func (e *Engine) Dimensions() (width, height int) {
	return e.width, e.height
}

// SetTileWorkers enables (n>1) or disables (n<=1) the opt-in tile-parallel
// rasterization path described in §5: each DrawTriangle call partitions
// its own bounding box into at most n horizontal strips, one goroutine per strip,
// joined with a sync.WaitGroup. Strips never overlap in y, so no pixel is
// ever touched by two workers.
func (e *Engine) SetTileWorkers(n int) {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	e.tileWorkers = n
}

// SubmitPrimitive is the public entry point matching
// TransformUnit::SubmitPrimitive: decode, transform and rasterize a batch
// of vertexCount (or indices.Len()) vertices as primType primitives.
func (e *Engine) SubmitPrimitive(reader VertexReader, indices IndexSource, primType PrimitiveType, vertexCount int) {
	e.mutex.Lock()
	defer e.mutex.Unlock()

	e.assembler.SubmitPrimitive(reader, indices, primType, vertexCount, func(a, b, c Vertex) {
		if e.tileWorkers > 1 {
			e.drawTriangleTiled(a, b, c)
			return
		}
		e.Backend.DrawTriangle(a, b, c)
	})
}

// drawTriangleTiled rasterizes a triangle's bounding box as at most n
// horizontal strips, each on its own goroutine. Only SoftwareBackend (and
// VulkanBackend, which wraps one) support this directly since it needs to
// hand the rasterizer a restricted scissor; other Backend implementations
// fall back to a single synchronous draw.
func (e *Engine) drawTriangleTiled(a, b, c Vertex) {
	type tileable interface {
		DrawTriangleInStrip(a, b, c Vertex, minY, maxY int32)
	}
	tb, ok := e.Backend.(tileable)
	if !ok {
		e.Backend.DrawTriangle(a, b, c)
		return
	}

	minY := min3i32(int32(a.DrawPos.Y), int32(b.DrawPos.Y), int32(c.DrawPos.Y))
	maxY := max3i32(int32(a.DrawPos.Y), int32(b.DrawPos.Y), int32(c.DrawPos.Y))
	span := maxY - minY + 1
	if span <= 0 {
		return
	}
	strip := (span + int32(e.tileWorkers) - 1) / int32(e.tileWorkers)
	if strip < 1 {
		strip = 1
	}

	var wg sync.WaitGroup
	for y := minY; y <= maxY; y += strip {
		y0, y1 := y, y+strip-1
		if y1 > maxY {
			y1 = maxY
		}
		wg.Add(1)
		go func(y0, y1 int32) {
			defer wg.Done()
			tb.DrawTriangleInStrip(a, b, c, y0, y1)
		}(y0, y1)
	}
	wg.Wait()
}

func min3i32(a, b, c int32) int32 {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}

func max3i32(a, b, c int32) int32 {
	if b > a {
		a = b
	}
	if c > a {
		a = c
	}
	return a
}

// Framebuffer exposes the backend's current color target, e.g. for a
// debug viewer to blit.
func (e *Engine) Framebuffer() []uint32 {
	e.mutex.RLock()
	defer e.mutex.RUnlock()
	return e.Backend.GetFrame()
}

// Clear runs the clear-mode fast path: fill color and depth directly,
// bypassing per-pixel shading entirely.
func (e *Engine) Clear(color uint32, depth uint16) {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	e.Backend.Clear(color, depth)
}

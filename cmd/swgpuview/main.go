// Command swgpuview is a debug viewer: it drives a small software engine
// with an orbiting, alpha-blended triangle and displays the
// resulting framebuffer live. Presentation lives entirely in this
// package rather than in gpu, since rendering to a screen is an explicit
// external collaborator (spec.md §1), not part of the rasterizer core.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/zaynotley-labs/swgpu/gpu"
	"github.com/zaynotley-labs/swgpu/regstate"
)

// Viewer presents a live-updating framebuffer to the user. The !headless
// build provides an ebiten-backed window; the headless build is a stub
// used for CI and build verification on machines without a display.
type Viewer interface {
	Run(e *gpu.Engine, tick func(frame int)) error
}

func main() {
	width := flag.Int("width", 320, "framebuffer width")
	height := flag.Int("height", 240, "framebuffer height")
	flag.Parse()

	e, err := gpu.NewSoftwareEngine(*width, *height, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "swgpuview: %v\n", err)
		os.Exit(1)
	}
	e.State.SetMode(regstate.ModeThrough, true)
	e.State.SetMode(regstate.ModeAlphaBlendEnable, true)
	e.State.SetBlendSrcFactor(regstate.BlendSrcSrcAlpha)
	e.State.SetBlendDstFactor(regstate.BlendDstInvSrcAlpha)

	tick := func(frame int) {
		e.Clear(0x10102000, 0xFFFF)
		angle := float64(frame) * 0.03
		submitOrbitingTriangle(e, *width, *height, angle)
	}

	if err := (newViewer()).Run(e, tick); err != nil {
		fmt.Fprintf(os.Stderr, "swgpuview: %v\n", err)
		os.Exit(1)
	}
}

type triangleReader struct{ verts [3]gpu.Vertex }

func (r *triangleReader) HasUV() bool               { return false }
func (r *triangleReader) HasNormal() bool           { return false }
func (r *triangleReader) HasColor0() bool           { return true }
func (r *triangleReader) HasColor1() bool           { return true }
func (r *triangleReader) ReadVertex(i int) gpu.Vertex { return r.verts[i] }

// submitOrbitingTriangle rotates a single triangle about the framebuffer
// center with a translucent fill, exercising through-mode submission and
// the alpha blend stage on every frame.
func submitOrbitingTriangle(e *gpu.Engine, width, height int, angle float64) {
	cx, cy := float32(width)/2, float32(height)/2
	radius := float32(width) / 4
	if float32(height)/4 < radius {
		radius = float32(height) / 4
	}

	pt := func(offset float64, alpha int32) gpu.Vertex {
		a := angle + offset
		x := cx + radius*float32(math.Cos(a))
		y := cy + radius*float32(math.Sin(a))
		// Through mode expects the vertex's position to already be a
		// sub-pixel screen coordinate (16 units per pixel), the same
		// space ClipToScreen would otherwise produce.
		return gpu.Vertex{
			ModelPos:  gpu.Vec3{X: x * 16, Y: y * 16},
			HasColor0: true,
			HasColor1: true,
			Color0:    [4]int32{220, 80, 40, alpha},
		}
	}

	r := &triangleReader{verts: [3]gpu.Vertex{
		pt(0, 200),
		pt(2.0944, 200),
		pt(4.1888, 200),
	}}
	e.SubmitPrimitive(r, nil, gpu.PrimTriangles, 3)
}

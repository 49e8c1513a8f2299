// Command swgpudump drives a software engine for one clear-and-draw pass
// and writes the resulting framebuffer to a PNG, grounded on
// tools/font2rgba.go's raw-buffer-to-PNG dump (stdlib image/image/png,
// no third-party codec in the pack does this job any better).
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/zaynotley-labs/swgpu/gpu"
	"github.com/zaynotley-labs/swgpu/regstate"
	"github.com/zaynotley-labs/swgpu/vecmath"
)

func main() {
	width := flag.Int("width", 256, "framebuffer width")
	height := flag.Int("height", 256, "framebuffer height")
	out := flag.String("out", "swgpu_dump.png", "output PNG path")
	flag.Parse()

	e, err := gpu.NewSoftwareEngine(*width, *height, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "swgpudump: %v\n", err)
		os.Exit(1)
	}
	e.State.SetMode(regstate.ModeThrough, true)

	e.Clear(0x00000000, 0xFFFF)
	e.SubmitPrimitive(sampleTriangleReader(*width, *height), nil, gpu.PrimTriangles, 3)

	if err := writePNG(*out, *width, *height, e.Framebuffer()); err != nil {
		fmt.Fprintf(os.Stderr, "swgpudump: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("swgpudump: wrote %dx%d frame to %s\n", *width, *height, *out)
}

type triangleReader struct{ verts [3]gpu.Vertex }

func (r *triangleReader) HasUV() bool                 { return false }
func (r *triangleReader) HasNormal() bool             { return false }
func (r *triangleReader) HasColor0() bool             { return true }
func (r *triangleReader) HasColor1() bool             { return true }
func (r *triangleReader) ReadVertex(i int) gpu.Vertex { return r.verts[i] }

func sampleTriangleReader(width, height int) *triangleReader {
	// Through mode expects the vertex's position to already be a
	// sub-pixel screen coordinate (16 units per pixel), the same space
	// ClipToScreen would otherwise produce.
	v := func(x, y float32, rgba [4]int32) gpu.Vertex {
		return gpu.Vertex{
			ModelPos:  gpu.Vec3{X: x * 16, Y: y * 16},
			HasColor0: true,
			HasColor1: true,
			Color0:    rgba,
		}
	}
	w, h := float32(width), float32(height)
	return &triangleReader{verts: [3]gpu.Vertex{
		v(w/2, h*0.1, [4]int32{255, 60, 60, 255}),
		v(w*0.1, h*0.9, [4]int32{60, 255, 60, 255}),
		v(w*0.9, h*0.9, [4]int32{60, 60, 255, 255}),
	}}
}

func writePNG(path string, width, height int, pixels []uint32) error {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for i, word := range pixels {
		r, g, b, a := vecmath.UnpackRGBA(word)
		off := i * 4
		img.Pix[off+0] = r
		img.Pix[off+1] = g
		img.Pix[off+2] = b
		img.Pix[off+3] = a
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}

package gpu

import (
	"github.com/zaynotley-labs/swgpu/regstate"
	"github.com/zaynotley-labs/swgpu/vecmath"
)

// Rasterizer fills a triangle's pixels into a Framebuffer/DepthBuffer
// pair, applying the depth test, texture sampling, shading and blending
// in one pass over its bounding box. The bounding-box-with-row-base loop
// structure follows voodoo_software.go's rasterizeTriangle; the edge
// function, top-left fill rule and perspective-correct interpolation
// generalize it to spec.md §4.4's exact semantics, which the teacher's
// float +0.5-centered sampling does not implement.
type Rasterizer struct {
	State       *regstate.State
	Framebuffer *Framebuffer
	Depth       *DepthBuffer
	Sampler     *TextureSampler // nil disables texture mapping regardless of mode bit
}

// orient2d is the signed area (x2) of the triangle (a,b,p); vertices
// counter-clockwise and p inside give a non-negative value for every edge
// (spec.md §4.4 step 2).
func orient2d(ax, ay, bx, by, px, py int32) int32 {
	return (bx-ax)*(py-ay) - (by-ay)*(px-ax)
}

// topLeftBias implements spec.md §4.4 step 3: edge (v1,v2) gets a bias of
// -1, from the perspective of the opposite vertex v0, when it is either a
// flat bottom edge with v0 above it, or the "right" edge of the triangle.
func topLeftBias(v0x, v0y, v1x, v1y, v2x, v2y int32) int32 {
	flatBottom := v1y == v2y && v0y < v1y
	isLeftOfLine := v2y != v1y && v0x < v1x+(v2x-v1x)*(v0y-v1y)/(v2y-v1y)
	if flatBottom || isLeftOfLine {
		return -1
	}
	return 0
}

func min3i(a, b, c int32) int32 {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}

func max3i(a, b, c int32) int32 {
	if b > a {
		a = b
	}
	if c > a {
		a = c
	}
	return a
}

// DrawTriangle rasterizes one transformed, assembled triangle. v0/v1/v2
// must already carry valid DrawPos/ClipPos/Color0/Color1/TexCoord
// (i.e. have gone through Process or through-mode passthrough).
func (r *Rasterizer) DrawTriangle(v0, v1, v2 Vertex) {
	r.drawTriangleClippedY(v0, v1, v2, -1<<31, 1<<31-1)
}

// DrawTriangleInStrip rasterizes only the rows in [minY,maxY] of the
// triangle's bounding box; used by Engine's opt-in tile-parallel path to
// split one triangle's fill work across goroutines without any two
// workers ever touching the same pixel row.
func (r *Rasterizer) DrawTriangleInStrip(v0, v1, v2 Vertex, minY, maxY int32) {
	r.drawTriangleClippedY(v0, v1, v2, minY, maxY)
}

func (r *Rasterizer) drawTriangleClippedY(v0, v1, v2 Vertex, stripMinY, stripMaxY int32) {
	x0, y0 := int32(v0.DrawPos.X), int32(v0.DrawPos.Y)
	x1, y1 := int32(v1.DrawPos.X), int32(v1.DrawPos.Y)
	x2, y2 := int32(v2.DrawPos.X), int32(v2.DrawPos.Y)

	area := orient2d(x0, y0, x1, y1, x2, y2)
	if area == 0 {
		return // degenerate
	}
	if area < 0 {
		// Keep the winding consistent so the inside test ("all edges >= 0")
		// always applies to the same triangle, regardless of how the
		// caller wound it.
		v1, v2 = v2, v1
		x1, y1, x2, y2 = x2, y2, x1, y1
		area = -area
	}

	minX, maxX := min3i(x0, x1, x2), max3i(x0, x1, x2)
	minY, maxY := min3i(y0, y1, y2), max3i(y0, y1, y2)

	scissorX1, scissorY1, scissorX2, scissorY2 := r.State.Scissor()
	if minX < int32(scissorX1) {
		minX = int32(scissorX1)
	}
	if minY < int32(scissorY1) {
		minY = int32(scissorY1)
	}
	if maxX > int32(scissorX2) {
		maxX = int32(scissorX2)
	}
	if maxY > int32(scissorY2) {
		maxY = int32(scissorY2)
	}
	if maxX >= int32(r.Framebuffer.Width) {
		maxX = int32(r.Framebuffer.Width) - 1
	}
	if maxY >= int32(r.Framebuffer.Height) {
		maxY = int32(r.Framebuffer.Height) - 1
	}
	if minX < 0 {
		minX = 0
	}
	if minY < 0 {
		minY = 0
	}
	if minY < stripMinY {
		minY = stripMinY
	}
	if maxY > stripMaxY {
		maxY = stripMaxY
	}

	bias0 := topLeftBias(x0, y0, x1, y1, x2, y2)
	bias1 := topLeftBias(x1, y1, x2, y2, x0, y0)
	bias2 := topLeftBias(x2, y2, x0, y0, x1, y1)

	clear := r.State.IsModeClear()
	depthTestOn := !clear && r.State.IsDepthTestEnabled()
	var depthWriteOn bool
	if clear {
		depthWriteOn = r.State.IsClearDepthEnabled()
	} else {
		depthWriteOn = r.State.IsDepthWriteEnabled()
	}
	depthFunc := r.State.DepthTestFunc()
	textureOn := !clear && r.State.IsTextureMapEnabled() && r.Sampler != nil
	gouraud := r.State.ShadeModel() == regstate.ShadeGouraud

	invW0, invW1, invW2 := 1/v0.ClipPos.W, 1/v1.ClipPos.W, 1/v2.ClipPos.W

	for y := minY; y <= maxY; y++ {
		rowBase := int(y) * r.Framebuffer.Width
		for x := minX; x <= maxX; x++ {
			w0 := orient2d(x1, y1, x2, y2, x, y) + bias0
			w1 := orient2d(x2, y2, x0, y0, x, y) + bias1
			w2 := orient2d(x0, y0, x1, y1, x, y) + bias2
			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}
			if w0 == 0 && w1 == 0 && w2 == 0 {
				continue // degenerate guard, spec.md §4.4 step 4
			}

			bx := float32(w0) / float32(area)
			by := float32(w1) / float32(area)
			bz := float32(w2) / float32(area)

			wsum := int64(w0) + int64(w1) + int64(w2)
			depthZ := uint16((int64(v0.DrawPos.Z)*int64(w0) + int64(v1.DrawPos.Z)*int64(w1) + int64(v2.DrawPos.Z)*int64(w2)) / wsum)

			pixelIdx := rowBase + int(x)
			if depthTestOn {
				if !depthFunc.Passes(depthZ, r.Depth.Z[pixelIdx]) {
					continue
				}
			}

			// Perspective-correct interpolation weights, used for UV only;
			// flat shading skips color weighting entirely and color is
			// never perspective-corrected even under Gouraud (spec.md §4.4
			// step 7).
			p0, p1, p2 := bx*invW0, by*invW1, bz*invW2
			invSum := 1 / (p0 + p1 + p2)
			c0, c1, c2 := p0*invSum, p1*invSum, p2*invSum

			var color0 [4]int32
			var color1 [3]int32
			if gouraud {
				for i := 0; i < 4; i++ {
					color0[i] = int32(bx*float32(v0.Color0[i]) + by*float32(v1.Color0[i]) + bz*float32(v2.Color0[i]))
				}
				for i := 0; i < 3; i++ {
					color1[i] = int32(bx*float32(v0.Color1[i]) + by*float32(v1.Color1[i]) + bz*float32(v2.Color1[i]))
				}
			} else {
				color0 = v2.Color0
				color1 = v2.Color1
			}

			primary := color0
			secondary := color1

			if textureOn {
				s := c0*v0.TexCoord.X + c1*v1.TexCoord.X + c2*v2.TexCoord.X
				t := c0*v0.TexCoord.Y + c1*v1.TexCoord.Y + c2*v2.TexCoord.Y
				texR, texG, texB, texA := vecmath.UnpackRGBA(r.Sampler.SampleNearest(0, s, t))
				tex := [4]int32{int32(texR), int32(texG), int32(texB), int32(texA)}
				primary = ShadeTexture(r.State, primary, tex)
			}

			if r.State.IsColorDoublingEnabled() {
				for i := 0; i < 3; i++ {
					primary[i] *= 2
				}
				for i := range secondary {
					secondary[i] *= 2
				}
			}

			for i := 0; i < 3; i++ {
				primary[i] = clampI32(primary[i]+secondary[i], 0, 255)
			}
			primary[3] = clampI32(primary[3], 0, 255)

			finalColor := primary
			if r.State.IsAlphaBlendEnabled() && !clear {
				dst := r.Framebuffer.At(int(x), int(y))
				finalColor = Blend(r.State, primary, dst)
			}

			r.Framebuffer.Set(int(x), int(y), packColor32(finalColor))
			if depthWriteOn {
				r.Depth.Set(int(x), int(y), depthZ)
			}
		}
	}
}

func clampI32(v, lo, hi int32) int32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func packColor32(c [4]int32) uint32 {
	return uint32(c[0])<<24 | uint32(c[1])<<16 | uint32(c[2])<<8 | uint32(c[3])
}

//go:build !headless

package main

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/zaynotley-labs/swgpu/gpu"
	"github.com/zaynotley-labs/swgpu/vecmath"
)

// ebitenViewer blits gpu.Engine.Framebuffer() to a window every frame,
// grounded on video_backend_ebiten.go's EbitenOutput (window *ebiten.Image
// rewritten every Draw via WritePixels, Layout pinned to the fixed
// framebuffer size).
type ebitenViewer struct {
	engine *gpu.Engine
	tick   func(frame int)
	window *ebiten.Image
	rgba   []byte
	frame  int
}

func newViewer() Viewer { return &ebitenViewer{} }

func (v *ebitenViewer) Run(e *gpu.Engine, tick func(frame int)) error {
	v.engine = e
	v.tick = tick
	w, h := e.Dimensions()
	v.window = ebiten.NewImage(w, h)
	v.rgba = make([]byte, w*h*4)

	ebiten.SetWindowSize(w*2, h*2)
	ebiten.SetWindowTitle("swgpuview")
	return ebiten.RunGame(v)
}

func (v *ebitenViewer) Update() error {
	if ebiten.IsWindowBeingClosed() {
		return ebiten.Termination
	}
	v.tick(v.frame)
	v.frame++
	return nil
}

func (v *ebitenViewer) Draw(screen *ebiten.Image) {
	fb := v.engine.Framebuffer()
	for i, word := range fb {
		r, g, b, a := vecmath.UnpackRGBA(word)
		v.rgba[i*4+0] = r
		v.rgba[i*4+1] = g
		v.rgba[i*4+2] = b
		v.rgba[i*4+3] = a
	}
	v.window.WritePixels(v.rgba)
	screen.DrawImage(v.window, nil)
}

func (v *ebitenViewer) Layout(_, _ int) (int, int) {
	b := v.window.Bounds()
	return b.Dx(), b.Dy()
}

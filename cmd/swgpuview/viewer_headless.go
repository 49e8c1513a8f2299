//go:build headless

package main

import (
	"fmt"

	"github.com/zaynotley-labs/swgpu/gpu"
)

// headlessViewer runs a fixed number of ticks with no window, matching
// video_backend_headless.go's HeadlessVideoOutput — just enough to prove
// the engine drives to completion on machines with no display, e.g. CI.
type headlessViewer struct{}

func newViewer() Viewer { return headlessViewer{} }

func (headlessViewer) Run(e *gpu.Engine, tick func(frame int)) error {
	const frames = 120
	for i := 0; i < frames; i++ {
		tick(i)
	}
	w, h := e.Dimensions()
	fmt.Printf("swgpuview: headless run complete, %dx%d, %d frames\n", w, h, frames)
	return nil
}

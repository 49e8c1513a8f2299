//go:build !headless

package gpu

import (
	"fmt"

	"github.com/goki/vulkan"
	"github.com/zaynotley-labs/swgpu/regstate"
)

// VulkanBackend probes for a usable Vulkan loader and, if found, marks
// itself accelerated; actual draw submission still goes through the
// software rasterizer, since wiring a full graphics pipeline (shader
// modules, swapchain, command buffers) is out of scope for this core —
// the same TODO-stub-over-software posture voodoo_vulkan.go's VulkanBackend
// takes while its real pipeline is unimplemented.
type VulkanBackend struct {
	software    *SoftwareBackend
	accelerated bool
}

// NewVulkanBackend attempts to initialize the Vulkan loader via
// vulkan.Init(); failure to find a loader is not an error here, it just
// leaves accelerated=false and every draw call runs on the CPU fallback.
func NewVulkanBackend(st *regstate.State, sampler *TextureSampler) *VulkanBackend {
	vb := &VulkanBackend{software: NewSoftwareBackend(st, sampler)}
	if err := vulkan.Init(); err == nil {
		vb.accelerated = true
	}
	return vb
}

// Accelerated reports whether a Vulkan loader was found at construction
// time.
func (vb *VulkanBackend) Accelerated() bool { return vb.accelerated }

func (vb *VulkanBackend) Init(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("gpu: invalid framebuffer dimensions %dx%d", width, height)
	}
	return vb.software.Init(width, height)
}

func (vb *VulkanBackend) DrawTriangle(v0, v1, v2 Vertex) { vb.software.DrawTriangle(v0, v1, v2) }
func (vb *VulkanBackend) DrawTriangleInStrip(v0, v1, v2 Vertex, minY, maxY int32) {
	vb.software.DrawTriangleInStrip(v0, v1, v2, minY, maxY)
}
func (vb *VulkanBackend) Clear(color uint32, depth uint16) { vb.software.Clear(color, depth) }
func (vb *VulkanBackend) GetFrame() []uint32                { return vb.software.GetFrame() }
func (vb *VulkanBackend) Destroy()                           {}

//go:build headless

package gpu

import "github.com/zaynotley-labs/swgpu/regstate"

// VulkanBackend headless build: no Vulkan loader is probed, every draw
// runs on the software fallback. Mirrors voodoo_vulkan_headless.go's
// headless VulkanBackend stub.
type VulkanBackend struct {
	software *SoftwareBackend
}

func NewVulkanBackend(st *regstate.State, sampler *TextureSampler) *VulkanBackend {
	return &VulkanBackend{software: NewSoftwareBackend(st, sampler)}
}

func (vb *VulkanBackend) Accelerated() bool { return false }

func (vb *VulkanBackend) Init(width, height int) error { return vb.software.Init(width, height) }

func (vb *VulkanBackend) DrawTriangle(v0, v1, v2 Vertex)   { vb.software.DrawTriangle(v0, v1, v2) }
func (vb *VulkanBackend) DrawTriangleInStrip(v0, v1, v2 Vertex, minY, maxY int32) {
	vb.software.DrawTriangleInStrip(v0, v1, v2, minY, maxY)
}
func (vb *VulkanBackend) Clear(color uint32, depth uint16) { vb.software.Clear(color, depth) }
func (vb *VulkanBackend) GetFrame() []uint32                { return vb.software.GetFrame() }
func (vb *VulkanBackend) Destroy()                           {}

// Package gpu implements the fixed-function rasterization pipeline: vertex
// decode, transform, triangle setup, shading and blending against a guest
// framebuffer. It is the software-rendering core the Backend interface
// (backend.go) exposes to callers.
package gpu

import (
	"encoding/binary"
	"fmt"
)

// GuestMemory is the byte-addressable space vertex/index/texture data is
// read from. The interface mirrors memory_bus.go's contiguous-slice design
// so a caller can back it with the same kind of flat allocation the bus
// uses, without requiring the full MapIO/IORegion machinery a GPU core has
// no use for.
type GuestMemory interface {
	ReadBytes(addr uint32, n int) []byte
	ReadUint32(addr uint32) uint32
	ReadUint16(addr uint32) uint16
	ReadUint8(addr uint32) uint8
}

// FlatGuestMemory is a GuestMemory backed by a single contiguous slice,
// addressed directly rather than through page-mapped I/O regions (the
// rasterizer only ever does bulk reads of vertex/index/texture data, never
// register-mapped side effects).
type FlatGuestMemory struct {
	mem []byte
}

// NewFlatGuestMemory wraps an existing byte slice (e.g. a guest RAM image)
// for use by the vertex decoder and texture sampler.
func NewFlatGuestMemory(mem []byte) *FlatGuestMemory {
	return &FlatGuestMemory{mem: mem}
}

func (m *FlatGuestMemory) ReadBytes(addr uint32, n int) []byte {
	end := int(addr) + n
	if int(addr) < 0 || end > len(m.mem) || end < int(addr) {
		panic(fmt.Sprintf("gpu: guest memory read out of range: addr=%#x n=%d len=%d", addr, n, len(m.mem)))
	}
	return m.mem[addr:end]
}

func (m *FlatGuestMemory) ReadUint32(addr uint32) uint32 {
	return binary.LittleEndian.Uint32(m.ReadBytes(addr, 4))
}

func (m *FlatGuestMemory) ReadUint16(addr uint32) uint16 {
	return binary.LittleEndian.Uint16(m.ReadBytes(addr, 2))
}

func (m *FlatGuestMemory) ReadUint8(addr uint32) uint8 {
	return m.ReadBytes(addr, 1)[0]
}

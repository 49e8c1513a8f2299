package gpu

import "testing"

func TestFlatGuestMemoryReads(t *testing.T) {
	mem := NewFlatGuestMemory([]byte{0x11, 0x22, 0x33, 0x44, 0x55, 0x66})
	if got := mem.ReadUint8(0); got != 0x11 {
		t.Errorf("ReadUint8: got %#x, want 0x11", got)
	}
	if got := mem.ReadUint16(0); got != 0x2211 {
		t.Errorf("ReadUint16: got %#x, want 0x2211", got)
	}
	if got := mem.ReadUint32(0); got != 0x44332211 {
		t.Errorf("ReadUint32: got %#x, want 0x44332211", got)
	}
}

func TestFlatGuestMemoryOutOfRangePanics(t *testing.T) {
	mem := NewFlatGuestMemory([]byte{0x01, 0x02})
	defer func() {
		if recover() == nil {
			t.Error("expected panic on out-of-range read")
		}
	}()
	mem.ReadUint32(0)
}

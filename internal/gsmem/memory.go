package gsmem

// MemSize is the size of GS local memory in bytes.
const MemSize = 4 * 1024 * 1024

// Memory is a simulated GS local memory. It is only addressed through the
// swizzled translators of the transfer methods.
//
// A Memory is not safe for concurrent use. Separate instances share nothing.
type Memory struct {
	mem []uint8
}

func NewMemory() *Memory {
	return &Memory{mem: make([]uint8, MemSize)}
}

// Clear zeroes the whole memory.
func (m *Memory) Clear() {
	clear(m.mem)
}

func (m *Memory) read32(addr uint32) [4]uint8 {
	return [4]uint8(m.mem[addr : addr+4])
}

func (m *Memory) write32(addr uint32, data []uint8) {
	copy(m.mem[addr:addr+4], data)
}

// read4 returns the nibble at a nibble address.
func (m *Memory) read4(addr uint32) uint8 {
	return (m.mem[addr>>1] >> ((addr & 0x01) << 2)) & 0x0F
}

// write4 stores the low four bits of data at a nibble address, keeping the
// other nibble of the byte.
func (m *Memory) write4(addr uint32, data uint8) {
	shift := (addr & 0x01) << 2
	m.mem[addr>>1] = (data&0x0F)<<shift | m.mem[addr>>1]&(0xF0>>shift)
}

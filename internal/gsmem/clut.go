package gsmem

import (
	"fmt"

	"github.com/nevisdale/gsutil/internal/gsreg"
)

// SampledAlpha tells the indexed downloads to take alpha from the CLUT
// instead of a fixed value.
const SampledAlpha = -1

// CLUT locates a PSMCT32 color lookup table.
type CLUT struct {
	Base  uint32
	Width uint32
	// CSA selects one of the 16 entry groups for 4-bit indices.
	CSA  uint32
	Mode gsreg.ClutStorageMode
}

func (c CLUT) check() error {
	if c.Mode != gsreg.CSM1 {
		return fmt.Errorf("%w: CSM%d", ErrUnsupportedCLUT, c.Mode+1)
	}
	if c.Width == 0 {
		return fmt.Errorf("%w: CLUT buffer width 0", ErrOutOfRange)
	}
	return checkBuffer(Buffer{Base: c.Base, Width: c.Width})
}

// clutCellPSMT8 maps an 8-bit index to its CLUT texel. CSM1 stores the 256
// entries as a 16x16 PSMCT32 texture in 8x2 strips with the two middle
// strips of every 32 entries swapped.
func clutCellPSMT8(index uint8) (cx, cy uint32) {
	cy = uint32(index&0xE0) >> 4
	cx = uint32(index & 0x07)
	if index&0x08 != 0 {
		cy++
	}
	if index&0x10 != 0 {
		cx += 8
	}
	return cx, cy
}

// clutCellPSMT4 maps a 4-bit index to its CLUT texel within the 8x2 strip
// selected by csa.
func clutCellPSMT4(index uint8, csa uint32) (cx, cy uint32) {
	cy = uint32(index>>3)&0x01 + csa&0x0E
	cx = uint32(index&0x07) + (csa&0x01)<<3
	return cx, cy
}

// expandAlpha turns a GS alpha (0x80 is opaque) into an 8-bit alpha, unless
// a fixed alpha is requested.
func expandAlpha(a uint8, fixed int) uint8 {
	switch {
	case fixed >= 0:
		return uint8(fixed)
	case a&0x80 != 0:
		return 0xFF
	default:
		return a << 1
	}
}

func (m *Memory) clutColor(c CLUT, cx, cy uint32, alpha int) ([4]uint8, error) {
	addr := AddressPSMCT32(c.Base, c.Width, cx, cy)
	if addr >= MemSize {
		return [4]uint8{}, fmt.Errorf("%w: CLUT texel (%d, %d) maps to 0x%X", ErrOutOfRange, cx, cy, addr)
	}
	color := m.read32(addr)
	color[3] = expandAlpha(color[3], alpha)
	return color, nil
}

// DownloadImagePSMT8 reads r from the 8-bit buffer src and resolves every
// index through clut into tightly packed RGBA. A non negative alpha replaces
// the CLUT alpha of every texel; SampledAlpha keeps it.
func (m *Memory) DownloadImagePSMT8(src Buffer, r Rect, clut CLUT, alpha int) ([]uint8, error) {
	if err := clut.check(); err != nil {
		return nil, err
	}
	addrs, err := addresses(&layoutPSMT8, MemSize, src, r)
	if err != nil {
		return nil, err
	}
	out := make([]uint8, len(addrs)*4)
	for i, addr := range addrs {
		cx, cy := clutCellPSMT8(m.mem[addr])
		color, err := m.clutColor(clut, cx, cy, alpha)
		if err != nil {
			return nil, err
		}
		copy(out[i*4:], color[:])
	}
	return out, nil
}

// DownloadImagePSMT4 is DownloadImagePSMT8 for 4-bit indices. clut.CSA picks
// the group of 16 entries used.
func (m *Memory) DownloadImagePSMT4(src Buffer, r Rect, clut CLUT, alpha int) ([]uint8, error) {
	if err := clut.check(); err != nil {
		return nil, err
	}
	addrs, err := addresses(&layoutPSMT4, MemSize*2, src, r)
	if err != nil {
		return nil, err
	}
	out := make([]uint8, len(addrs)*4)
	for i, addr := range addrs {
		cx, cy := clutCellPSMT4(m.read4(addr), clut.CSA)
		color, err := m.clutColor(clut, cx, cy, alpha)
		if err != nil {
			return nil, err
		}
		copy(out[i*4:], color[:])
	}
	return out, nil
}

package gsmem

import "fmt"

const (
	maxBase  = 1 << 14 // BITBLTBUF.DBP / TEX0.TBP0 are 14 bits
	maxWidth = 1 << 6  // BITBLTBUF.DBW / TEX0.TBW are 6 bits
	maxCoord = 1 << 13 // TRXPOS origin (11 bits) plus TRXREG size (12 bits)
)

// Buffer locates a surface in local memory: its base in 64 word blocks and
// its width in 64 texel units.
type Buffer struct {
	Base  uint32
	Width uint32
}

// Rect is a transfer rectangle in texels.
type Rect struct {
	X, Y uint32
	W, H uint32
}

func (r Rect) texels() int {
	return int(r.W) * int(r.H)
}

func checkBuffer(buf Buffer) error {
	if buf.Base >= maxBase || buf.Width >= maxWidth {
		return fmt.Errorf("%w: buffer base 0x%X width %d", ErrOutOfRange, buf.Base, buf.Width)
	}
	return nil
}

// addresses translates every texel of r in transfer order (rows top to
// bottom, texels left to right) and fails if any of them reaches limit.
func addresses(l *layout, limit uint32, buf Buffer, r Rect) ([]uint32, error) {
	if err := checkBuffer(buf); err != nil {
		return nil, err
	}
	if uint64(r.X)+uint64(r.W) > maxCoord || uint64(r.Y)+uint64(r.H) > maxCoord {
		return nil, fmt.Errorf("%w: rectangle %dx%d at (%d, %d)", ErrOutOfRange, r.W, r.H, r.X, r.Y)
	}
	// a zero sized rectangle is a no-op for any buffer, including a zero
	// width one
	if r.texels() > 0 && uint64(r.X)+uint64(r.W) > uint64(buf.Width)*64 {
		return nil, fmt.Errorf("%w: columns %d-%d outside buffer width %d", ErrOutOfRange, r.X, r.X+r.W-1, buf.Width*64)
	}

	addrs := make([]uint32, 0, r.texels())
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			addr := l.address(buf.Base, buf.Width, x, y)
			if addr >= limit {
				return nil, fmt.Errorf("%w: texel (%d, %d) maps to 0x%X", ErrOutOfRange, x, y, addr)
			}
			addrs = append(addrs, addr)
		}
	}
	return addrs, nil
}

func shortBuffer(need, got int) error {
	return fmt.Errorf("%w: need %d bytes, got %d", ErrShortBuffer, need, got)
}

// UploadPSMCT32 writes r from src, four bytes per texel, into the 32-bit
// buffer dst.
func (m *Memory) UploadPSMCT32(dst Buffer, r Rect, src []uint8) error {
	if need := r.texels() * 4; len(src) < need {
		return shortBuffer(need, len(src))
	}
	addrs, err := addresses(&layoutPSMCT32, MemSize, dst, r)
	if err != nil {
		return err
	}
	for i, addr := range addrs {
		m.write32(addr, src[i*4:i*4+4])
	}
	return nil
}

// UploadPSMT8 writes r from src, one byte per texel, into the 8-bit buffer
// dst.
func (m *Memory) UploadPSMT8(dst Buffer, r Rect, src []uint8) error {
	if need := r.texels(); len(src) < need {
		return shortBuffer(need, len(src))
	}
	addrs, err := addresses(&layoutPSMT8, MemSize, dst, r)
	if err != nil {
		return err
	}
	for i, addr := range addrs {
		m.mem[addr] = src[i]
	}
	return nil
}

// UploadPSMT4 writes r from src into the 4-bit buffer dst. Texels are packed
// two per byte in src, the first in the low nibble.
func (m *Memory) UploadPSMT4(dst Buffer, r Rect, src []uint8) error {
	if need := (r.texels() + 1) / 2; len(src) < need {
		return shortBuffer(need, len(src))
	}
	addrs, err := addresses(&layoutPSMT4, MemSize*2, dst, r)
	if err != nil {
		return err
	}
	for i, addr := range addrs {
		nibble := src[i>>1] >> ((i & 0x01) << 2)
		m.write4(addr, nibble)
	}
	return nil
}

// DownloadPSMCT32 reads r from the 32-bit buffer src as tightly packed RGBA.
func (m *Memory) DownloadPSMCT32(src Buffer, r Rect) ([]uint8, error) {
	addrs, err := addresses(&layoutPSMCT32, MemSize, src, r)
	if err != nil {
		return nil, err
	}
	out := make([]uint8, len(addrs)*4)
	for i, addr := range addrs {
		texel := m.read32(addr)
		copy(out[i*4:], texel[:])
	}
	return out, nil
}

// DownloadPSMT8 is not implemented. It always returns an empty result and
// ErrUnsupportedFormat.
func (m *Memory) DownloadPSMT8(src Buffer, r Rect) ([]uint8, error) {
	return []uint8{}, fmt.Errorf("%w: PSMT8 download", ErrUnsupportedFormat)
}

// DownloadPSMT4 is not implemented. It always returns an empty result and
// ErrUnsupportedFormat.
func (m *Memory) DownloadPSMT4(src Buffer, r Rect) ([]uint8, error) {
	return []uint8{}, fmt.Errorf("%w: PSMT4 download", ErrUnsupportedFormat)
}

package gsmem

// layout describes how one pixel storage format tiles texels into pages,
// blocks and columns. Every format resolves an address the same way; only
// the shifts, masks and tables differ.
type layout struct {
	// page size as log2 texels, and the shift turning the buffer width
	// (64 texel units) into pages per row
	pageX, pageY uint
	widthShift   uint

	// block size as log2 texels; blockXBits is log2 blocks per page row
	blockX, blockY uint
	blockXBits     uint
	blockXMask     uint32
	blockYMask     uint32
	// extra block id bit for pages taller than four block rows
	blockHiShift uint
	blockHiMask  uint32
	blocks       []uint8

	// column lookup over (y & colYMask, x & colXMask); columns not
	// covered by the table are selected by y >> colYBits
	colXBits      uint
	colXMask      uint32
	colYMask      uint32
	colYBits      uint
	colGroupMask  uint32
	colGroupShift uint
	columns       []uint16

	pageShift  uint
	blockShift uint
	// shift from table units to the returned unit
	unitShift uint
}

var (
	layoutPSMCT32 = layout{
		pageX: 6, pageY: 5, widthShift: 0,
		blockX: 3, blockY: 3, blockXBits: 3, blockXMask: 0x07, blockYMask: 0x03,
		blocks:   blockTablePSMCT32[:],
		colXBits: 3, colXMask: 0x07, colYMask: 0x01,
		colYBits: 1, colGroupMask: 0x03, colGroupShift: 4,
		columns:   columnTablePSMCT32[:],
		pageShift: 11, blockShift: 6, unitShift: 2,
	}

	layoutPSMT8 = layout{
		pageX: 7, pageY: 6, widthShift: 1,
		blockX: 4, blockY: 4, blockXBits: 3, blockXMask: 0x07, blockYMask: 0x03,
		blocks:   blockTablePSMT8[:],
		colXBits: 4, colXMask: 0x0F, colYMask: 0x0F,
		columns:   columnTablePSMT8[:],
		pageShift: 13, blockShift: 8,
	}

	layoutPSMT4 = layout{
		pageX: 7, pageY: 7, widthShift: 1,
		blockX: 5, blockY: 4, blockXBits: 2, blockXMask: 0x03, blockYMask: 0x03,
		blockHiShift: 6, blockHiMask: 0x01,
		blocks:   blockTablePSMT4[:],
		colXBits: 5, colXMask: 0x1F, colYMask: 0x0F,
		columns:   columnTablePSMT4[:],
		pageShift: 14, blockShift: 9,
	}
)

func (l *layout) address(base, width, x, y uint32) uint32 {
	page := base>>5 + (y>>l.pageY)*(width>>l.widthShift) + x>>l.pageX

	bx := (x >> l.blockX) & l.blockXMask
	by := (y >> l.blockY) & l.blockYMask
	block := base&0x1F +
		((y>>l.blockHiShift)&l.blockHiMask)<<4 +
		uint32(l.blocks[by<<l.blockXBits|bx])

	cx := x & l.colXMask
	cy := y & l.colYMask
	column := ((y>>l.colYBits)&l.colGroupMask)<<l.colGroupShift +
		uint32(l.columns[cy<<l.colXBits|cx])

	return (page<<l.pageShift + block<<l.blockShift + column) << l.unitShift
}

// AddressPSMCT32 returns the byte offset of the 32-bit texel (x, y) in a
// buffer starting at block base with the given width in 64 texel units. The
// result is always word aligned. It is not bounds checked.
func AddressPSMCT32(base, width, x, y uint32) uint32 {
	return layoutPSMCT32.address(base, width, x, y)
}

// AddressPSMT8 returns the byte offset of the 8-bit texel (x, y).
func AddressPSMT8(base, width, x, y uint32) uint32 {
	return layoutPSMT8.address(base, width, x, y)
}

// AddressPSMT4 returns the nibble offset of the 4-bit texel (x, y). The byte
// holding it is addr >> 1; odd addresses live in the high nibble.
func AddressPSMT4(base, width, x, y uint32) uint32 {
	return layoutPSMT4.address(base, width, x, y)
}

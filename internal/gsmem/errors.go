package gsmem

import "errors"

var (
	// ErrOutOfRange is returned when a transfer would touch memory past
	// MemSize. Nothing is written in that case.
	ErrOutOfRange = errors.New("address out of GS memory range")

	// ErrShortBuffer is returned when the source buffer of an upload holds
	// fewer texels than the transfer rectangle.
	ErrShortBuffer = errors.New("source buffer smaller than transfer rectangle")

	// ErrUnsupportedFormat is returned with an empty result for transfers
	// that have no implementation.
	ErrUnsupportedFormat = errors.New("unsupported pixel storage format")

	// ErrUnsupportedCLUT is returned for CLUT storage modes other than CSM1.
	ErrUnsupportedCLUT = errors.New("unsupported CLUT storage mode")
)

package gsreg

// field is an inclusive bit range [first, last] of a 64-bit register word.
type field struct {
	first, last uint
}

func (f field) mask() uint64 {
	return uint64(1)<<(f.last-f.first+1) - 1
}

// get extracts the field from a register word. Bits outside the field are
// ignored.
func (f field) get(data uint64) uint64 {
	return (data >> f.first) & f.mask()
}

// put places v into the field position. Bits of v wider than the field are
// dropped.
func (f field) put(v uint64) uint64 {
	return (v & f.mask()) << f.first
}

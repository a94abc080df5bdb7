package gsreg

var (
	bitbltbufSBP  = field{0, 13}
	bitbltbufSBW  = field{16, 21}
	bitbltbufSPSM = field{24, 29}
	bitbltbufDBP  = field{32, 45}
	bitbltbufDBW  = field{48, 53}
	bitbltbufDPSM = field{56, 61}
)

// BITBLTBUF holds the source and destination buffer descriptors of a
// local memory transfer. Base pointers are in 64-word block units, widths in
// 64-texel units.
type BITBLTBUF struct {
	SBP  uint16
	SBW  uint8
	SPSM PSM
	DBP  uint16
	DBW  uint8
	DPSM PSM
}

func NewBITBLTBUF(data uint64) BITBLTBUF {
	return BITBLTBUF{
		SBP:  uint16(bitbltbufSBP.get(data)),
		SBW:  uint8(bitbltbufSBW.get(data)),
		SPSM: PSM(bitbltbufSPSM.get(data)),
		DBP:  uint16(bitbltbufDBP.get(data)),
		DBW:  uint8(bitbltbufDBW.get(data)),
		DPSM: PSM(bitbltbufDPSM.get(data)),
	}
}

func (r BITBLTBUF) Data() uint64 {
	data := bitbltbufSBP.put(uint64(r.SBP))
	data |= bitbltbufSBW.put(uint64(r.SBW))
	data |= bitbltbufSPSM.put(uint64(r.SPSM))
	data |= bitbltbufDBP.put(uint64(r.DBP))
	data |= bitbltbufDBW.put(uint64(r.DBW))
	data |= bitbltbufDPSM.put(uint64(r.DPSM))
	return data
}

var (
	trxposSSAX = field{0, 10}
	trxposSSAY = field{16, 26}
	trxposDSAX = field{32, 42}
	trxposDSAY = field{48, 58}
	trxposDIR  = field{59, 60}
)

// TRXPOS holds the upper-left texel of the source and destination
// rectangles and the pixel transmission order.
type TRXPOS struct {
	SSAX uint16
	SSAY uint16
	DSAX uint16
	DSAY uint16
	DIR  TransmissionOrder
}

func NewTRXPOS(data uint64) TRXPOS {
	return TRXPOS{
		SSAX: uint16(trxposSSAX.get(data)),
		SSAY: uint16(trxposSSAY.get(data)),
		DSAX: uint16(trxposDSAX.get(data)),
		DSAY: uint16(trxposDSAY.get(data)),
		DIR:  TransmissionOrder(trxposDIR.get(data)),
	}
}

func (r TRXPOS) Data() uint64 {
	data := trxposSSAX.put(uint64(r.SSAX))
	data |= trxposSSAY.put(uint64(r.SSAY))
	data |= trxposDSAX.put(uint64(r.DSAX))
	data |= trxposDSAY.put(uint64(r.DSAY))
	data |= trxposDIR.put(uint64(r.DIR))
	return data
}

var (
	trxregRRW = field{0, 11}
	trxregRRH = field{32, 43}
)

// TRXREG holds the transfer rectangle size in texels.
type TRXREG struct {
	RRW uint16
	RRH uint16
}

func NewTRXREG(data uint64) TRXREG {
	return TRXREG{
		RRW: uint16(trxregRRW.get(data)),
		RRH: uint16(trxregRRH.get(data)),
	}
}

func (r TRXREG) Data() uint64 {
	return trxregRRW.put(uint64(r.RRW)) | trxregRRH.put(uint64(r.RRH))
}

var trxdirXDIR = field{0, 1}

// TRXDIR starts a transfer in the given direction.
type TRXDIR struct {
	XDIR TransmissionDirection
}

func NewTRXDIR(data uint64) TRXDIR {
	return TRXDIR{XDIR: TransmissionDirection(trxdirXDIR.get(data))}
}

func (r TRXDIR) Data() uint64 {
	return trxdirXDIR.put(uint64(r.XDIR))
}

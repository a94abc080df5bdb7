package gsreg

import "fmt"

// PSM is a pixel storage format tag.
type PSM uint8

const (
	PSMCT32  PSM = 0x00
	PSMCT24  PSM = 0x01
	PSMCT16  PSM = 0x02
	PSMCT16S PSM = 0x0A
	PSMT8    PSM = 0x13
	PSMT4    PSM = 0x14
	PSMT8H   PSM = 0x1B
	PSMT4HL  PSM = 0x24
	PSMT4HH  PSM = 0x2C
	PSMZ32   PSM = 0x30
	PSMZ24   PSM = 0x31
	PSMZ16   PSM = 0x32
	PSMZ16S  PSM = 0x3A
)

var psmNames = map[PSM]string{
	PSMCT32:  "PSMCT32",
	PSMCT24:  "PSMCT24",
	PSMCT16:  "PSMCT16",
	PSMCT16S: "PSMCT16S",
	PSMT8:    "PSMT8",
	PSMT4:    "PSMT4",
	PSMT8H:   "PSMT8H",
	PSMT4HL:  "PSMT4HL",
	PSMT4HH:  "PSMT4HH",
	PSMZ32:   "PSMZ32",
	PSMZ24:   "PSMZ24",
	PSMZ16:   "PSMZ16",
	PSMZ16S:  "PSMZ16S",
}

func (p PSM) String() string {
	if name, ok := psmNames[p]; ok {
		return name
	}
	return fmt.Sprintf("PSM(0x%02X)", uint8(p))
}

// Known reports whether p is one of the formats the GS defines.
func (p PSM) Known() bool {
	_, ok := psmNames[p]
	return ok
}

// TransmissionOrder is the TRXPOS.DIR pixel transmission order.
type TransmissionOrder uint8

const (
	UpperLeftToLowerRight TransmissionOrder = iota
	LowerLeftToUpperRight
	UpperRightToLowerLeft
	LowerRightToUpperLeft
)

// TransmissionDirection is the TRXDIR.XDIR transfer direction.
type TransmissionDirection uint8

const (
	HostToLocal TransmissionDirection = iota
	LocalToHost
	LocalToLocal
	Deactivated
)

// TextureColorComponent is TEX0.TCC.
type TextureColorComponent uint8

const (
	RGB TextureColorComponent = iota
	RGBA
)

// TextureFunction is TEX0.TFX.
type TextureFunction uint8

const (
	Modulate TextureFunction = iota
	Decal
	Highlight
	Highlight2
)

// ClutPSM is the TEX0.CPSM CLUT pixel storage format.
type ClutPSM uint8

const (
	ClutPSMCT32  ClutPSM = 0
	ClutPSMCT16  ClutPSM = 2
	ClutPSMCT16S ClutPSM = 10
)

// ClutStorageMode is TEX0.CSM.
type ClutStorageMode uint8

const (
	CSM1 ClutStorageMode = iota
	CSM2
)

// WrapMode is CLAMP.WMS / CLAMP.WMT.
type WrapMode uint8

const (
	Repeat WrapMode = iota
	Clamp
	RegionClamp
	RegionRepeat
)

// TextureFilter is TEX1.MMAG / TEX1.MMIN.
type TextureFilter uint8

const (
	Nearest TextureFilter = iota
	Linear
	NearestMipmapNearest
	NearestMipmapLinear
	LinearMipmapNearest
	LinearMipmapLinear
)

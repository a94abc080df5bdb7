package gsreg

var (
	tex0TBP0 = field{0, 13}
	tex0TBW  = field{14, 19}
	tex0PSM  = field{20, 25}
	tex0TW   = field{26, 29}
	tex0TH   = field{30, 33}
	tex0TCC  = field{34, 34}
	tex0TFX  = field{35, 36}
	tex0CBP  = field{37, 50}
	tex0CPSM = field{51, 54}
	tex0CSM  = field{55, 55}
	tex0CSA  = field{56, 60}
	tex0CLD  = field{61, 63}
)

// TEX0 describes a texture: its buffer, storage format, size and CLUT.
// TW and TH are log2 of the texture width and height.
type TEX0 struct {
	TBP0 uint16
	TBW  uint8
	PSM  PSM
	TW   uint8
	TH   uint8
	TCC  TextureColorComponent
	TFX  TextureFunction
	CBP  uint16
	CPSM ClutPSM
	CSM  ClutStorageMode
	CSA  uint8
	CLD  uint8
}

func NewTEX0(data uint64) TEX0 {
	return TEX0{
		TBP0: uint16(tex0TBP0.get(data)),
		TBW:  uint8(tex0TBW.get(data)),
		PSM:  PSM(tex0PSM.get(data)),
		TW:   uint8(tex0TW.get(data)),
		TH:   uint8(tex0TH.get(data)),
		TCC:  TextureColorComponent(tex0TCC.get(data)),
		TFX:  TextureFunction(tex0TFX.get(data)),
		CBP:  uint16(tex0CBP.get(data)),
		CPSM: ClutPSM(tex0CPSM.get(data)),
		CSM:  ClutStorageMode(tex0CSM.get(data)),
		CSA:  uint8(tex0CSA.get(data)),
		CLD:  uint8(tex0CLD.get(data)),
	}
}

func (r TEX0) Data() uint64 {
	data := tex0TBP0.put(uint64(r.TBP0))
	data |= tex0TBW.put(uint64(r.TBW))
	data |= tex0PSM.put(uint64(r.PSM))
	data |= tex0TW.put(uint64(r.TW))
	data |= tex0TH.put(uint64(r.TH))
	data |= tex0TCC.put(uint64(r.TCC))
	data |= tex0TFX.put(uint64(r.TFX))
	data |= tex0CBP.put(uint64(r.CBP))
	data |= tex0CPSM.put(uint64(r.CPSM))
	data |= tex0CSM.put(uint64(r.CSM))
	data |= tex0CSA.put(uint64(r.CSA))
	data |= tex0CLD.put(uint64(r.CLD))
	return data
}

// Width returns the texture width in texels.
func (r TEX0) Width() int {
	return 1 << r.TW
}

// Height returns the texture height in texels.
func (r TEX0) Height() int {
	return 1 << r.TH
}

// SetCLUT copies the fields TEX2 is allowed to change into r.
func (r *TEX0) SetCLUT(t TEX2) {
	r.PSM = t.PSM
	r.CBP = t.CBP
	r.CPSM = t.CPSM
	r.CSM = t.CSM
	r.CSA = t.CSA
	r.CLD = t.CLD
}

var (
	clampWMS  = field{0, 1}
	clampWMT  = field{2, 3}
	clampMINU = field{4, 13}
	clampMAXU = field{14, 23}
	clampMINV = field{24, 33}
	clampMAXV = field{34, 43}
)

// CLAMP holds the wrap modes and clamp bounds for each texture axis.
type CLAMP struct {
	WMS  WrapMode
	WMT  WrapMode
	MINU uint16
	MAXU uint16
	MINV uint16
	MAXV uint16
}

func NewCLAMP(data uint64) CLAMP {
	return CLAMP{
		WMS:  WrapMode(clampWMS.get(data)),
		WMT:  WrapMode(clampWMT.get(data)),
		MINU: uint16(clampMINU.get(data)),
		MAXU: uint16(clampMAXU.get(data)),
		MINV: uint16(clampMINV.get(data)),
		MAXV: uint16(clampMAXV.get(data)),
	}
}

func (r CLAMP) Data() uint64 {
	data := clampWMS.put(uint64(r.WMS))
	data |= clampWMT.put(uint64(r.WMT))
	data |= clampMINU.put(uint64(r.MINU))
	data |= clampMAXU.put(uint64(r.MAXU))
	data |= clampMINV.put(uint64(r.MINV))
	data |= clampMAXV.put(uint64(r.MAXV))
	return data
}

var (
	tex1LCM  = field{0, 0}
	tex1MXL  = field{2, 4}
	tex1MMAG = field{5, 5}
	tex1MMIN = field{6, 8}
	tex1MTBA = field{9, 9}
	tex1L    = field{19, 20}
	tex1K    = field{32, 43}
)

// TEX1 holds the LOD and mipmap filtering controls.
type TEX1 struct {
	LCM  uint8
	MXL  uint8
	MMAG TextureFilter
	MMIN TextureFilter
	MTBA uint8
	L    uint8
	K    uint16
}

func NewTEX1(data uint64) TEX1 {
	return TEX1{
		LCM:  uint8(tex1LCM.get(data)),
		MXL:  uint8(tex1MXL.get(data)),
		MMAG: TextureFilter(tex1MMAG.get(data)),
		MMIN: TextureFilter(tex1MMIN.get(data)),
		MTBA: uint8(tex1MTBA.get(data)),
		L:    uint8(tex1L.get(data)),
		K:    uint16(tex1K.get(data)),
	}
}

func (r TEX1) Data() uint64 {
	data := tex1LCM.put(uint64(r.LCM))
	data |= tex1MXL.put(uint64(r.MXL))
	data |= tex1MMAG.put(uint64(r.MMAG))
	data |= tex1MMIN.put(uint64(r.MMIN))
	data |= tex1MTBA.put(uint64(r.MTBA))
	data |= tex1L.put(uint64(r.L))
	data |= tex1K.put(uint64(r.K))
	return data
}

// TEX2 is the CLUT subset of TEX0. It shares TEX0's bit positions.
type TEX2 struct {
	PSM  PSM
	CBP  uint16
	CPSM ClutPSM
	CSM  ClutStorageMode
	CSA  uint8
	CLD  uint8
}

func NewTEX2(data uint64) TEX2 {
	return TEX2{
		PSM:  PSM(tex0PSM.get(data)),
		CBP:  uint16(tex0CBP.get(data)),
		CPSM: ClutPSM(tex0CPSM.get(data)),
		CSM:  ClutStorageMode(tex0CSM.get(data)),
		CSA:  uint8(tex0CSA.get(data)),
		CLD:  uint8(tex0CLD.get(data)),
	}
}

// TEX2FromTEX0 projects the CLUT fields of a TEX0 value.
func TEX2FromTEX0(t TEX0) TEX2 {
	return TEX2{
		PSM:  t.PSM,
		CBP:  t.CBP,
		CPSM: t.CPSM,
		CSM:  t.CSM,
		CSA:  t.CSA,
		CLD:  t.CLD,
	}
}

func (r TEX2) Data() uint64 {
	data := tex0PSM.put(uint64(r.PSM))
	data |= tex0CBP.put(uint64(r.CBP))
	data |= tex0CPSM.put(uint64(r.CPSM))
	data |= tex0CSM.put(uint64(r.CSM))
	data |= tex0CSA.put(uint64(r.CSA))
	data |= tex0CLD.put(uint64(r.CLD))
	return data
}

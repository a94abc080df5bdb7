package gs

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nevisdale/gsutil/internal/gsmem"
	"github.com/nevisdale/gsutil/internal/gsreg"
)

// clutImage lays out a 256 color CSM1 CLUT as the 16x16 PSMCT32 image games
// upload.
func clutImage(colors [256][4]uint8) []uint8 {
	out := make([]uint8, 16*16*4)
	for i, c := range colors {
		cx := i&0x07 + (i&0x10)>>1
		cy := (i&0xE0)>>4 + (i&0x08)>>3
		copy(out[(cy*16+cx)*4:], c[:])
	}
	return out
}

func uploadWrites(dbp uint16, dbw uint8, psm gsreg.PSM, x, y, w, h uint16) []ADWrite {
	return []ADWrite{
		{gsreg.AddrBITBLTBUF, gsreg.BITBLTBUF{DBP: dbp, DBW: dbw, DPSM: psm}.Data()},
		{gsreg.AddrTRXPOS, gsreg.TRXPOS{DSAX: x, DSAY: y}.Data()},
		{gsreg.AddrTRXREG, gsreg.TRXREG{RRW: w, RRH: h}.Data()},
		{gsreg.AddrTRXDIR, gsreg.TRXDIR{XDIR: gsreg.HostToLocal}.Data()},
	}
}

func Test_Context_PSMT8Texture(t *testing.T) {
	var colors [256][4]uint8
	for i := range colors {
		colors[i] = [4]uint8{uint8(i), 0x80, uint8(255 - i), 0x40}
	}

	c := NewContext()
	ignored := c.WriteAD(uploadWrites(0x3000, 1, gsreg.PSMCT32, 0, 0, 16, 16))
	assert.Empty(t, ignored)
	require.NoError(t, c.Upload(clutImage(colors)))

	indices := make([]uint8, 32*8)
	for i := range indices {
		indices[i] = uint8(i * 7)
	}
	c.WriteAD(uploadWrites(0x100, 2, gsreg.PSMT8, 0, 0, 32, 8))
	require.NoError(t, c.Upload(indices))

	c.WriteAD([]ADWrite{
		{gsreg.AddrTEX0_1, gsreg.TEX0{TBP0: 0x100, TBW: 2, PSM: gsreg.PSMT8, TW: 5, TH: 3, CBP: 0x3000}.Data()},
		{gsreg.AddrCLAMP_1, gsreg.CLAMP{WMS: gsreg.RegionClamp, WMT: gsreg.RegionClamp, MINU: 31, MAXU: 0, MINV: 0, MAXV: 7}.Data()},
	})

	region, err := c.Region(Env1)
	require.NoError(t, err)
	assert.Equal(t, gsmem.Rect{W: 32, H: 8}, region)

	tex, err := c.DownloadTexture(Env1, gsmem.SampledAlpha)
	require.NoError(t, err)
	assert.Equal(t, 32, tex.Width)
	assert.Equal(t, 8, tex.Height)
	for i, index := range indices {
		expected := colors[index]
		expected[3] = 0x80
		assert.Equal(t, expected[:], tex.Pix[i*4:i*4+4], "texel %d", i)
	}

	_, err = c.DownloadTexture(Env2, gsmem.SampledAlpha)
	assert.ErrorIs(t, err, ErrMissingRegister)
}

func Test_Context_PSMT4Texture(t *testing.T) {
	c := NewContext()

	// one 8x2 CLUT strip per CSA row pair; use CSA 2 (rows 2-3, left half)
	clut := make([]uint8, 16*4*4)
	for x := 0; x < 8; x++ {
		for y := 2; y < 4; y++ {
			index := x + (y-2)*8
			copy(clut[(y*16+x)*4:], []uint8{uint8(index), uint8(index), uint8(index), 0xFF})
		}
	}
	c.WriteAD(uploadWrites(0x3100, 1, gsreg.PSMCT32, 0, 0, 16, 4))
	require.NoError(t, c.Upload(clut))

	c.WriteAD(uploadWrites(0x200, 2, gsreg.PSMT4, 0, 0, 4, 4))
	require.NoError(t, c.Upload([]uint8{0x10, 0x32, 0x54, 0x76, 0x98, 0xBA, 0xDC, 0xFE}))

	c.Write(gsreg.AddrTEX0_2, gsreg.TEX0{TBP0: 0x200, TBW: 2, PSM: gsreg.PSMT4, TW: 2, TH: 2, CBP: 0x3100, CSA: 2}.Data())

	// no CLAMP: the whole 4x4 texture
	tex, err := c.DownloadTexture(Env2, 0x7F)
	require.NoError(t, err)
	require.Len(t, tex.Pix, 4*4*4)
	for i := 0; i < 16; i++ {
		assert.Equal(t, []uint8{uint8(i), uint8(i), uint8(i), 0x7F}, tex.Pix[i*4:i*4+4], "texel %d", i)
	}
}

func Test_Context_TEX2(t *testing.T) {
	c := NewContext()
	c.Write(gsreg.AddrTEX0_1, gsreg.TEX0{TBP0: 0x80, TBW: 4, PSM: gsreg.PSMT8, TW: 6, CBP: 0x100}.Data())
	tex2 := gsreg.TEX2{PSM: gsreg.PSMT4, CBP: 0x200, CSA: 5}
	require.True(t, c.Write(gsreg.AddrTEX2_1, tex2.Data()))

	tex0, ok := c.TEX0(Env1)
	require.True(t, ok)
	assert.Equal(t, uint16(0x80), tex0.TBP0)
	assert.Equal(t, uint8(4), tex0.TBW)
	assert.Equal(t, uint8(6), tex0.TW)
	assert.Equal(t, tex2, gsreg.TEX2FromTEX0(tex0))

	// TEX2 without a prior TEX0 starts from zero
	require.True(t, c.Write(gsreg.AddrTEX2_2, tex2.Data()))
	tex0, ok = c.TEX0(Env2)
	require.True(t, ok)
	assert.Zero(t, tex0.TBP0)
	assert.Equal(t, gsreg.PSMT4, tex0.PSM)
}

func Test_Context_Registers(t *testing.T) {
	c := NewContext()

	assert.False(t, c.Write(gsreg.AddrPRIM, 0x1234))
	assert.False(t, c.Write(gsreg.AddrFRAME_1, 0))
	ignored := c.WriteAD([]ADWrite{
		{gsreg.AddrTEXFLUSH, 0},
		{gsreg.AddrTEX1_2, gsreg.TEX1{MXL: 3, K: 0x10}.Data()},
		{gsreg.AddrCLAMP_2, gsreg.CLAMP{MAXU: 63, MAXV: 31}.Data()},
	})
	assert.Equal(t, []gsreg.Register{gsreg.AddrTEXFLUSH}, ignored)

	tex1, ok := c.TEX1(Env2)
	require.True(t, ok)
	assert.Equal(t, uint8(3), tex1.MXL)
	_, ok = c.TEX1(Env1)
	assert.False(t, ok)

	clamp, ok := c.CLAMP(Env2)
	require.True(t, ok)
	assert.Equal(t, uint16(63), clamp.MAXU)
}

func Test_Context_Errors(t *testing.T) {
	c := NewContext()
	assert.ErrorIs(t, c.Upload(nil), ErrMissingRegister)

	c.Write(gsreg.AddrBITBLTBUF, gsreg.BITBLTBUF{DBW: 1, DPSM: gsreg.PSMCT16}.Data())
	assert.ErrorIs(t, c.Upload(nil), ErrMissingRegister)
	c.Write(gsreg.AddrTRXPOS, 0)
	c.Write(gsreg.AddrTRXREG, gsreg.TRXREG{RRW: 1, RRH: 1}.Data())
	assert.ErrorIs(t, c.Upload([]uint8{0, 0}), gsmem.ErrUnsupportedFormat)

	c.Write(gsreg.AddrTRXDIR, gsreg.TRXDIR{XDIR: gsreg.LocalToLocal}.Data())
	assert.ErrorIs(t, c.Upload([]uint8{0, 0}), ErrDirection)

	c.Write(gsreg.AddrTEX0_1, gsreg.TEX0{PSM: gsreg.PSMCT32}.Data())
	_, err := c.DownloadTexture(Env1, gsmem.SampledAlpha)
	assert.ErrorIs(t, err, gsmem.ErrUnsupportedFormat)

	_, err = NewContext().Region(Env1)
	assert.ErrorIs(t, err, ErrMissingRegister)
}

func Test_Context_Download(t *testing.T) {
	c := NewContext()
	src := make([]uint8, 8*4*4)
	for i := range src {
		src[i] = uint8(i)
	}
	c.WriteAD(uploadWrites(0x40, 1, gsreg.PSMCT32, 4, 4, 8, 4))
	require.NoError(t, c.Upload(src))

	c.WriteAD([]ADWrite{
		{gsreg.AddrBITBLTBUF, gsreg.BITBLTBUF{SBP: 0x40, SBW: 1, SPSM: gsreg.PSMCT32}.Data()},
		{gsreg.AddrTRXPOS, gsreg.TRXPOS{SSAX: 4, SSAY: 4}.Data()},
		{gsreg.AddrTRXDIR, gsreg.TRXDIR{XDIR: gsreg.LocalToHost}.Data()},
	})
	out, err := c.Download()
	require.NoError(t, err)
	assert.Equal(t, src, out)

	c.Write(gsreg.AddrBITBLTBUF, gsreg.BITBLTBUF{SBP: 0x40, SBW: 2, SPSM: gsreg.PSMT8}.Data())
	out, err = c.Download()
	assert.ErrorIs(t, err, gsmem.ErrUnsupportedFormat)
	assert.Empty(t, out)
}

func Test_Context_Reset(t *testing.T) {
	c := NewContext()
	c.WriteAD(uploadWrites(0, 1, gsreg.PSMCT32, 0, 0, 2, 2))
	require.NoError(t, c.Upload(bytes.Repeat([]uint8{0xFF}, 16)))

	c.Reset()
	assert.ErrorIs(t, c.Upload(nil), ErrMissingRegister)

	out, err := c.Memory().DownloadPSMCT32(gsmem.Buffer{Width: 1}, gsmem.Rect{W: 2, H: 2})
	require.NoError(t, err)
	assert.Equal(t, make([]uint8, 16), out)
}

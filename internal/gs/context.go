package gs

import (
	"fmt"

	"github.com/nevisdale/gsutil/internal/gsmem"
	"github.com/nevisdale/gsutil/internal/gsreg"
)

// Env selects one of the two GS drawing environments (the _1 and _2
// register sets).
type Env int

const (
	Env1 Env = iota
	Env2
)

// Context replays GS register writes against a local memory. It keeps the
// last value of every register that drives a transfer and performs host to
// local uploads and texture downloads from them.
//
// Like gsmem.Memory, a Context must not be used from several goroutines at
// once.
type Context struct {
	mem *gsmem.Memory

	bitbltbuf *gsreg.BITBLTBUF
	trxpos    *gsreg.TRXPOS
	trxreg    *gsreg.TRXREG
	trxdir    *gsreg.TRXDIR

	tex0  [2]*gsreg.TEX0
	tex1  [2]*gsreg.TEX1
	clamp [2]*gsreg.CLAMP
}

func NewContext() *Context {
	return &Context{mem: gsmem.NewMemory()}
}

// Memory returns the local memory the context transfers into.
func (c *Context) Memory() *gsmem.Memory {
	return c.mem
}

// Reset clears local memory and forgets all register values.
func (c *Context) Reset() {
	c.mem.Clear()
	*c = Context{mem: c.mem}
}

// Write stores a register value. It reports false for registers the
// context does not track; those writes have no effect.
func (c *Context) Write(reg gsreg.Register, data uint64) bool {
	switch reg {
	case gsreg.AddrBITBLTBUF:
		r := gsreg.NewBITBLTBUF(data)
		c.bitbltbuf = &r
	case gsreg.AddrTRXPOS:
		r := gsreg.NewTRXPOS(data)
		c.trxpos = &r
	case gsreg.AddrTRXREG:
		r := gsreg.NewTRXREG(data)
		c.trxreg = &r
	case gsreg.AddrTRXDIR:
		r := gsreg.NewTRXDIR(data)
		c.trxdir = &r
	case gsreg.AddrTEX0_1, gsreg.AddrTEX0_2:
		r := gsreg.NewTEX0(data)
		c.tex0[envOf(reg, gsreg.AddrTEX0_1)] = &r
	case gsreg.AddrTEX1_1, gsreg.AddrTEX1_2:
		r := gsreg.NewTEX1(data)
		c.tex1[envOf(reg, gsreg.AddrTEX1_1)] = &r
	case gsreg.AddrCLAMP_1, gsreg.AddrCLAMP_2:
		r := gsreg.NewCLAMP(data)
		c.clamp[envOf(reg, gsreg.AddrCLAMP_1)] = &r
	case gsreg.AddrTEX2_1, gsreg.AddrTEX2_2:
		// TEX2 only updates the CLUT part of TEX0
		env := envOf(reg, gsreg.AddrTEX2_1)
		tex0 := gsreg.TEX0{}
		if c.tex0[env] != nil {
			tex0 = *c.tex0[env]
		}
		tex0.SetCLUT(gsreg.NewTEX2(data))
		c.tex0[env] = &tex0
	default:
		return false
	}
	return true
}

// WriteAD applies writes in order and returns the registers it ignored.
func (c *Context) WriteAD(writes []ADWrite) []gsreg.Register {
	var ignored []gsreg.Register
	for _, ad := range writes {
		if !c.Write(ad.Reg, ad.Data) {
			ignored = append(ignored, ad.Reg)
		}
	}
	return ignored
}

func envOf(reg, first gsreg.Register) Env {
	return Env(reg - first)
}

// TEX0 returns the last TEX0 written for env, if any.
func (c *Context) TEX0(env Env) (gsreg.TEX0, bool) {
	if c.tex0[env] == nil {
		return gsreg.TEX0{}, false
	}
	return *c.tex0[env], true
}

// TEX1 returns the last TEX1 written for env, if any.
func (c *Context) TEX1(env Env) (gsreg.TEX1, bool) {
	if c.tex1[env] == nil {
		return gsreg.TEX1{}, false
	}
	return *c.tex1[env], true
}

// CLAMP returns the last CLAMP written for env, if any.
func (c *Context) CLAMP(env Env) (gsreg.CLAMP, bool) {
	if c.clamp[env] == nil {
		return gsreg.CLAMP{}, false
	}
	return *c.clamp[env], true
}

func (c *Context) checkTransfer(dir gsreg.TransmissionDirection) error {
	switch {
	case c.bitbltbuf == nil:
		return fmt.Errorf("%w: BITBLTBUF", ErrMissingRegister)
	case c.trxpos == nil:
		return fmt.Errorf("%w: TRXPOS", ErrMissingRegister)
	case c.trxreg == nil:
		return fmt.Errorf("%w: TRXREG", ErrMissingRegister)
	case c.trxdir != nil && c.trxdir.XDIR != dir:
		return fmt.Errorf("%w: TRXDIR is %d, want %d", ErrDirection, c.trxdir.XDIR, dir)
	}
	return nil
}

// Upload moves data into local memory as a host to local transfer described
// by BITBLTBUF (destination), TRXPOS (destination origin) and TRXREG.
func (c *Context) Upload(data []uint8) error {
	if err := c.checkTransfer(gsreg.HostToLocal); err != nil {
		return err
	}
	dst := gsmem.Buffer{Base: uint32(c.bitbltbuf.DBP), Width: uint32(c.bitbltbuf.DBW)}
	rect := gsmem.Rect{
		X: uint32(c.trxpos.DSAX),
		Y: uint32(c.trxpos.DSAY),
		W: uint32(c.trxreg.RRW),
		H: uint32(c.trxreg.RRH),
	}

	var err error
	switch psm := c.bitbltbuf.DPSM; psm {
	case gsreg.PSMCT32:
		err = c.mem.UploadPSMCT32(dst, rect, data)
	case gsreg.PSMT8:
		err = c.mem.UploadPSMT8(dst, rect, data)
	case gsreg.PSMT4:
		err = c.mem.UploadPSMT4(dst, rect, data)
	default:
		err = fmt.Errorf("%w: %s", gsmem.ErrUnsupportedFormat, psm)
	}
	if err != nil {
		return fmt.Errorf("couldn't upload %dx%d: %w", rect.W, rect.H, err)
	}
	return nil
}

// Download reads a local to host transfer described by BITBLTBUF (source),
// TRXPOS (source origin) and TRXREG. Only PSMCT32 is implemented; other
// formats return an empty result with gsmem.ErrUnsupportedFormat.
func (c *Context) Download() ([]uint8, error) {
	if err := c.checkTransfer(gsreg.LocalToHost); err != nil {
		return nil, err
	}
	src := gsmem.Buffer{Base: uint32(c.bitbltbuf.SBP), Width: uint32(c.bitbltbuf.SBW)}
	rect := gsmem.Rect{
		X: uint32(c.trxpos.SSAX),
		Y: uint32(c.trxpos.SSAY),
		W: uint32(c.trxreg.RRW),
		H: uint32(c.trxreg.RRH),
	}

	switch psm := c.bitbltbuf.SPSM; psm {
	case gsreg.PSMCT32:
		return c.mem.DownloadPSMCT32(src, rect)
	case gsreg.PSMT8:
		return c.mem.DownloadPSMT8(src, rect)
	case gsreg.PSMT4:
		return c.mem.DownloadPSMT4(src, rect)
	default:
		return []uint8{}, fmt.Errorf("%w: %s", gsmem.ErrUnsupportedFormat, psm)
	}
}

// Region returns the texel rectangle of the texture bound to env. It is
// taken from CLAMP when written (the bounds may be given in either order),
// otherwise it is the whole TEX0 texture.
func (c *Context) Region(env Env) (gsmem.Rect, error) {
	if clamp := c.clamp[env]; clamp != nil {
		return gsmem.Rect{
			X: uint32(min(clamp.MINU, clamp.MAXU)),
			Y: uint32(min(clamp.MINV, clamp.MAXV)),
			W: uint32(absDiff(clamp.MAXU, clamp.MINU)) + 1,
			H: uint32(absDiff(clamp.MAXV, clamp.MINV)) + 1,
		}, nil
	}
	tex0 := c.tex0[env]
	if tex0 == nil {
		return gsmem.Rect{}, fmt.Errorf("%w: TEX0 or CLAMP", ErrMissingRegister)
	}
	return gsmem.Rect{W: uint32(tex0.Width()), H: uint32(tex0.Height())}, nil
}

func absDiff(a, b uint16) uint16 {
	if a > b {
		return a - b
	}
	return b - a
}

// DownloadTexture resolves the indexed texture bound to env through its CLUT.
// The CLUT is read as a one page wide PSMCT32 buffer at TEX0.CBP. alpha is
// passed to the gsmem indexed downloads.
func (c *Context) DownloadTexture(env Env, alpha int) (*Texture, error) {
	tex0 := c.tex0[env]
	if tex0 == nil {
		return nil, fmt.Errorf("%w: TEX0", ErrMissingRegister)
	}
	rect, err := c.Region(env)
	if err != nil {
		return nil, err
	}

	src := gsmem.Buffer{Base: uint32(tex0.TBP0), Width: uint32(tex0.TBW)}
	clut := gsmem.CLUT{
		Base:  uint32(tex0.CBP),
		Width: 1,
		CSA:   uint32(tex0.CSA),
		Mode:  tex0.CSM,
	}

	var pix []uint8
	switch tex0.PSM {
	case gsreg.PSMT8:
		pix, err = c.mem.DownloadImagePSMT8(src, rect, clut, alpha)
	case gsreg.PSMT4:
		pix, err = c.mem.DownloadImagePSMT4(src, rect, clut, alpha)
	default:
		err = fmt.Errorf("%w: %s", gsmem.ErrUnsupportedFormat, tex0.PSM)
	}
	if err != nil {
		return nil, fmt.Errorf("couldn't download texture: %w", err)
	}

	return &Texture{
		Width:  int(rect.W),
		Height: int(rect.H),
		Pix:    pix,
	}, nil
}

package gs

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nevisdale/gsutil/internal/gsreg"
)

func Test_ReadAD(t *testing.T) {
	t.Run("record layout", func(t *testing.T) {
		raw := []uint8{
			0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01,
			0x50, 0xAA, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		}
		writes, err := ReadAD(bytes.NewReader(raw))
		require.NoError(t, err)
		assert.Equal(t, []ADWrite{{Reg: gsreg.AddrBITBLTBUF, Data: 0x0102030405060708}}, writes)
	})

	t.Run("round trip", func(t *testing.T) {
		writes := []ADWrite{
			{gsreg.AddrTEX0_1, 0xFFFF_0000_1234_5678},
			{gsreg.AddrTRXREG, gsreg.TRXREG{RRW: 64, RRH: 64}.Data()},
		}
		var buf bytes.Buffer
		require.NoError(t, WriteAD(&buf, writes))
		assert.Equal(t, 32, buf.Len())

		got, err := ReadAD(&buf)
		require.NoError(t, err)
		assert.Equal(t, writes, got)
	})

	t.Run("empty", func(t *testing.T) {
		writes, err := ReadAD(bytes.NewReader(nil))
		require.NoError(t, err)
		assert.Empty(t, writes)
	})

	t.Run("truncated", func(t *testing.T) {
		_, err := ReadAD(bytes.NewReader(make([]uint8, 24)))
		assert.ErrorIs(t, err, ErrShortPacket)
	})
}

func Test_ReadADFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "regs.bin")
	var buf bytes.Buffer
	require.NoError(t, WriteAD(&buf, []ADWrite{{gsreg.AddrTRXDIR, 0}}))
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))

	writes, err := ReadADFile(path)
	require.NoError(t, err)
	assert.Len(t, writes, 1)

	_, err = ReadADFile(filepath.Join(t.TempDir(), "missing.bin"))
	assert.Error(t, err)
}

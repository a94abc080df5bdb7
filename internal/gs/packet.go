package gs

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/nevisdale/gsutil/internal/gsreg"
)

// ADWrite is a single register write of a PACKED A+D GIF transfer.
type ADWrite struct {
	Reg  gsreg.Register
	Data uint64
}

// ReadAD reads A+D records until EOF. Each record is a 128-bit little endian
// qword: the register value in the low 64 bits and the register address in
// the low byte of the high 64 bits.
func ReadAD(r io.Reader) ([]ADWrite, error) {
	var writes []ADWrite
	for {
		var record struct {
			Data uint64
			Addr uint64
		}
		err := binary.Read(r, binary.LittleEndian, &record)
		if errors.Is(err, io.EOF) {
			return writes, nil
		}
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, fmt.Errorf("%w after %d records", ErrShortPacket, len(writes))
		}
		if err != nil {
			return nil, fmt.Errorf("couldn't read A+D record: %w", err)
		}
		writes = append(writes, ADWrite{
			Reg:  gsreg.Register(record.Addr & 0xFF),
			Data: record.Data,
		})
	}
}

// ReadADFile reads all A+D records from the file at path.
func ReadADFile(path string) ([]ADWrite, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("couldn't open the file: %w", err)
	}
	defer file.Close()

	writes, err := ReadAD(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return writes, nil
}

// WriteAD encodes writes in the format ReadAD reads.
func WriteAD(w io.Writer, writes []ADWrite) error {
	for _, ad := range writes {
		record := [2]uint64{ad.Data, uint64(ad.Reg)}
		if err := binary.Write(w, binary.LittleEndian, record); err != nil {
			return fmt.Errorf("couldn't write A+D record: %w", err)
		}
	}
	return nil
}

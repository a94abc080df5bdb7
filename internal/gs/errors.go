package gs

import "errors"

var (
	// ErrMissingRegister is returned when a transfer is requested before
	// the registers describing it were written.
	ErrMissingRegister = errors.New("register not set")

	// ErrShortPacket is returned for A+D data that ends inside a record.
	ErrShortPacket = errors.New("truncated A+D record")

	// ErrDirection is returned when TRXDIR selects a direction other than
	// the requested transfer.
	ErrDirection = errors.New("transfer direction mismatch")
)

package memview

import (
	"errors"
	"fmt"
)

// Predefined sentinel errors.
var (
	// ErrOutOfRange reports a read window not fully contained in the view.
	ErrOutOfRange = errors.New("memview: read out of range")
	// ErrTooLarge reports that the combined segment size overflows uint64.
	ErrTooLarge = errors.New("memview: combined segment size too large")
)

// RangeError describes a rejected read. It wraps ErrOutOfRange so that
// errors.Is(err, ErrOutOfRange) holds for every rejection.
type RangeError struct {
	Offset uint64 // requested starting offset
	Length uint64 // requested read length
	Size   uint64 // view size at the time of the read
}

// Error implements the error interface.
func (e *RangeError) Error() string {
	return fmt.Sprintf("memview: read [%d, %d) out of range of %d-byte view",
		e.Offset, e.Offset+e.Length, e.Size)
}

// Unwrap supports the errors.Is/errors.As chain.
func (e *RangeError) Unwrap() error {
	return ErrOutOfRange
}

// IsOutOfRange reports whether err is a read rejection.
func IsOutOfRange(err error) bool {
	var re *RangeError
	return errors.As(err, &re) || errors.Is(err, ErrOutOfRange)
}

// IsTooLarge reports whether err is a size overflow from New.
func IsTooLarge(err error) bool {
	return errors.Is(err, ErrTooLarge)
}

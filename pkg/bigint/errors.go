package bigint

import (
	"errors"
	"fmt"
)

var (
	// ErrLengthTooBig is returned when a byte string is wider than the integer.
	ErrLengthTooBig = errors.New("bigint: byte length exceeds integer width")
	// ErrLengthNotMultipleOfLimbSize is returned when a byte string does not
	// split into whole limbs.
	ErrLengthNotMultipleOfLimbSize = errors.New("bigint: byte length is not a multiple of the limb size")
	// ErrOutOfRange is returned when a value does not fit the integer width.
	ErrOutOfRange = errors.New("bigint: value out of range")
)

// BytesError describes a rejected byte string.
type BytesError struct {
	Len      int
	Max      int
	LimbSize int
	Err      error
}

func (e *BytesError) Error() string {
	return fmt.Sprintf("%v: got %d bytes (limb size %d, max %d)", e.Err, e.Len, e.LimbSize, e.Max)
}

func (e *BytesError) Unwrap() error {
	return e.Err
}

package pixel

import (
	"errors"
	"fmt"
)

// Common errors for pixel format and image operations.
var (
	// ErrInvalidArgument is returned when a format identifier, storage
	// parameter or buffer violates a precondition. All other errors of this
	// package wrap it.
	ErrInvalidArgument = errors.New("pixel: invalid argument")

	// ErrDataTooSmall is returned when a buffer is shorter than the layout
	// computed from the storage, format and size requires.
	ErrDataTooSmall = fmt.Errorf("%w: data too small", ErrInvalidArgument)
)

// invalidArgument reports a violated precondition of fn.
func invalidArgument(fn, format string, args ...any) error {
	return fmt.Errorf("%w: %s(): %s", ErrInvalidArgument, fn, fmt.Sprintf(format, args...))
}

// dataTooSmall reports a buffer of got bytes where expected were needed.
func dataTooSmall(fn string, got, expected int) error {
	return fmt.Errorf("%w: %s() got %d but expected at least %d bytes", ErrDataTooSmall, fn, got, expected)
}

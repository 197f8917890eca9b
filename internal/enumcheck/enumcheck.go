// Package enumcheck verifies that enumerations and the tables keyed by them
// stay dense.
//
// Mapping tables are indexed by enumerator value, so a gap in an
// enumeration or a code the mapping accepts past its end means the table
// and the enumeration disagree. Both checks are linear in the number of
// enumerators plus the scanned slack.
package enumcheck

import (
	"errors"
	"fmt"
)

// ErrNotContiguous is returned when codes are not a dense increasing run.
var ErrNotContiguous = errors.New("enumcheck: not contiguous")

// Contiguous checks that codes[i] == base+i for every i.
func Contiguous(codes []uint32, base uint32) error {
	for i, code := range codes {
		want := base + uint32(i)
		switch {
		case i > 0 && code <= codes[i-1]:
			return fmt.Errorf("%w: %#x at index %d is not greater than %#x", ErrNotContiguous, code, i, codes[i-1])
		case code != want:
			return fmt.Errorf("%w: expected %#x at index %d, got %#x", ErrNotContiguous, want, i, code)
		}
	}
	return nil
}

// Scan calls handled for every code in [base, limit) and checks that the
// handled codes form a dense prefix starting at base. It returns the number
// of handled codes, which callers compare with the enumerator count.
func Scan(base, limit uint32, handled func(code uint32) bool) (int, error) {
	count := 0
	firstUnhandled := limit
	for code := base; code < limit; code++ {
		if !handled(code) {
			if firstUnhandled == limit {
				firstUnhandled = code
			}
			continue
		}
		if firstUnhandled != limit {
			return count, fmt.Errorf("%w: %#x is handled but %#x is not", ErrNotContiguous, code, firstUnhandled)
		}
		count++
	}
	return count, nil
}

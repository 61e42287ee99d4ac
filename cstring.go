package rl

import (
	"fmt"
	"math"

	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/rl/native"
)

// marshalText prepares display text (titles, drawn strings) for the native
// library. The text is NFC-normalized so that composed and decomposed
// spellings render with the same glyphs.
func marshalText(op, s string) (native.CString, error) {
	c, err := native.NewCString(norm.NFC.String(s))
	if err != nil {
		return native.CString{}, &Error{Op: op, Kind: KindMarshal, Path: s, Err: fmt.Errorf("%w: %w", ErrInvalidString, err)}
	}
	return c, nil
}

// marshalPath prepares a file or uniform name. Names are passed through
// byte for byte; file systems compare names without normalization.
func marshalPath(op, s string) (native.CString, error) {
	c, err := native.NewCString(s)
	if err != nil {
		return native.CString{}, &Error{Op: op, Kind: KindMarshal, Path: s, Err: fmt.Errorf("%w: %w", ErrInvalidString, err)}
	}
	return c, nil
}

// marshalOptionalPath maps "" to the NULL string.
func marshalOptionalPath(op, s string) (native.CString, error) {
	if s == "" {
		return native.CString{}, nil
	}
	return marshalPath(op, s)
}

// validSize reports whether n is a positive dimension the native int
// parameters can carry.
func validSize(n int) bool { return n > 0 && n <= math.MaxInt32 }

// validCount is validSize that also accepts zero.
func validCount(n int) bool { return n >= 0 && n <= math.MaxInt32 }

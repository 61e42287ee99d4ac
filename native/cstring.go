// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package native

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmbeddedNUL is returned by NewCString for text containing a NUL byte.
var ErrEmbeddedNUL = errors.New("native: string contains NUL byte")

// StringError reports where NewCString found an embedded NUL.
type StringError struct {
	Offset int // byte offset of the first NUL
}

func (e *StringError) Error() string {
	return fmt.Sprintf("%v at byte %d", ErrEmbeddedNUL, e.Offset)
}

// Unwrap returns ErrEmbeddedNUL.
func (e *StringError) Unwrap() error {
	return ErrEmbeddedNUL
}

// CString is text that is safe to hand to the native library as a
// NUL-terminated byte string. The zero value is the NULL string, which some
// entry points accept as "not given".
type CString struct {
	s     string
	valid bool
}

// NewCString validates s for the native string convention.
func NewCString(s string) (CString, error) {
	if i := strings.IndexByte(s, 0); i >= 0 {
		return CString{}, &StringError{Offset: i}
	}
	return CString{s: s, valid: true}, nil
}

// IsNull reports whether c is the NULL string.
func (c CString) IsNull() bool {
	return !c.valid
}

// String returns the text without terminator.
func (c CString) String() string {
	return c.s
}

// Bytes returns a freshly allocated NUL-terminated copy, or nil for NULL.
func (c CString) Bytes() []byte {
	if !c.valid {
		return nil
	}
	b := make([]byte, len(c.s)+1)
	copy(b, c.s)
	return b
}

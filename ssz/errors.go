// ssz: Go Simple Serialize (SSZ) codec library
// Copyright 2024 ssz Authors
// SPDX-License-Identifier: BSD-3-Clause

package ssz

import (
	"errors"
	"fmt"
)

// Sentinel errors returned (wrapped, where noted below) by the decode
// helpers in this package. Callers should use errors.Is against these, not
// string matching against Error().
var (
	// ErrInputTruncated means the buffer ended before a length-prefixed or
	// fixed-width field could be fully read.
	ErrInputTruncated = errors.New("ssz: input truncated")

	// ErrTrailingBytes means bytes remained in the buffer after every
	// declared field was consumed.
	ErrTrailingBytes = errors.New("ssz: trailing bytes after decoded value")

	// ErrBoundExceeded means a declared length (an offset delta, a list
	// element count, a byte-blob length) exceeded the schema's fixed bound.
	ErrBoundExceeded = errors.New("ssz: declared length exceeds bound")

	// ErrInvalidOffset means an offset table entry was out of range,
	// non-monotonic, or did not match the expected header size.
	ErrInvalidOffset = errors.New("ssz: invalid or non-monotonic offset")

	// ErrInvalidUnionSelector means a union/option selector byte was
	// outside the set the schema defines.
	ErrInvalidUnionSelector = errors.New("ssz: invalid union selector")
)

// BoundExceeded wraps ErrBoundExceeded with the field name and the observed
// vs. maximum values, so callers can report which bound tripped.
func BoundExceeded(field string, n, max int) error {
	return fmt.Errorf("%w: %s has %d elements, max %d", ErrBoundExceeded, field, n, max)
}

// InvalidSelector wraps ErrInvalidUnionSelector with the offending byte.
func InvalidSelector(b byte) error {
	return fmt.Errorf("%w: 0x%02x", ErrInvalidUnionSelector, b)
}

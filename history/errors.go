// Copyright 2024 the codec authors
// SPDX-License-Identifier: BSD-3-Clause

package history

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the decoders in this package. Every decode
// path in this package returns either one of these (wrapped with context
// where noted) or one of the ssz package's sentinel errors, rather than
// panicking, even on adversarial input.
var (
	// ErrInvalidHex means the hex framing around a content item was
	// malformed: odd-length, a non-hex digit, or a prefix other than "0x".
	ErrInvalidHex = errors.New("history: malformed hex framing")

	// ErrInnerRLP means an embedded RLP blob failed to decode as its
	// declared inner type, or left bytes unconsumed.
	ErrInnerRLP = errors.New("history: inner rlp decode failed")

	// ErrWrongVariant means none of the five content-item decoders
	// accepted the input. It only ever surfaces from the dispatcher,
	// after every per-variant attempt has failed.
	ErrWrongVariant = errors.New("history: unable to deserialize to any history content item")
)

// innerRLPError wraps a failure from the go-ethereum rlp package with the
// inner type name that was being decoded, preserving the underlying error.
func innerRLPError(kind string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrInnerRLP, kind, err)
}

// ssz: Go Simple Serialize (SSZ) codec library
// Copyright 2024 ssz Authors
// SPDX-License-Identifier: BSD-3-Clause

package ssz

// SSZ models Rust's Option<T> as a two-variant union: a single selector
// byte (0 for None, 1 for Some) followed by the Some payload, if any. This
// module only ever needs that binary case, so selectors beyond 0/1 are
// always invalid rather than being a generic N-way union.
const (
	selectorNone = 0
	selectorSome = 1
)

// EncodeNone returns the encoding of an absent optional field.
func EncodeNone() []byte {
	return []byte{selectorNone}
}

// EncodeSome returns the encoding of a present optional field wrapping body.
func EncodeSome(body []byte) []byte {
	out := make([]byte, 0, 1+len(body))
	out = append(out, selectorSome)
	return append(out, body...)
}

// DecodeOption splits buf into its selector byte and payload. present
// reports whether the selector was Some; body is nil when present is false.
// Any selector byte other than 0 or 1 is rejected.
func DecodeOption(buf []byte) (present bool, body []byte, err error) {
	if len(buf) == 0 {
		return false, nil, ErrInputTruncated
	}
	switch buf[0] {
	case selectorNone:
		if len(buf) != 1 {
			return false, nil, ErrTrailingBytes
		}
		return false, nil, nil
	case selectorSome:
		return true, buf[1:], nil
	default:
		return false, nil, InvalidSelector(buf[0])
	}
}

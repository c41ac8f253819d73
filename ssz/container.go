// ssz: Go Simple Serialize (SSZ) codec library
// Copyright 2024 ssz Authors
// SPDX-License-Identifier: BSD-3-Clause

package ssz

// ConcatFixed concatenates a sequence of fixed-width encodings in field
// order. It is the entire encoding for a container whose fields are all
// fixed-size (e.g. a HeaderRecord).
func ConcatFixed(fields ...[]byte) []byte {
	n := 0
	for _, f := range fields {
		n += len(f)
	}
	out := make([]byte, 0, n)
	for _, f := range fields {
		out = append(out, f...)
	}
	return out
}

// EncodeVariableFields writes the SSZ encoding of a container whose fields
// are all variable-length: a fixed-size header of one 4-byte offset per
// field, followed by the fields themselves in order. The offsets are byte
// positions from the start of the returned buffer, so they double as an
// SSZ union/list "offset table" when reused for that purpose.
func EncodeVariableFields(fields [][]byte) []byte {
	header := len(fields) * offsetSize
	total := header
	for _, f := range fields {
		total += len(f)
	}
	out := make([]byte, 0, total)

	offset := uint32(header)
	for _, f := range fields {
		out = putOffset(out, offset)
		offset += uint32(len(f))
	}
	for _, f := range fields {
		out = append(out, f...)
	}
	return out
}

// DecodeVariableFields splits buf, the SSZ encoding of a container with n
// variable-length fields, back into its per-field byte slices. It validates
// that the first offset equals the fixed header size (n*4), that offsets
// are non-decreasing, and that every offset lies within buf.
func DecodeVariableFields(buf []byte, n int) ([][]byte, error) {
	header := n * offsetSize
	if len(buf) < header {
		return nil, ErrInputTruncated
	}
	offsets := make([]uint32, n)
	for i := 0; i < n; i++ {
		offsets[i] = readOffset(buf[i*offsetSize:])
	}
	if offsets[0] != uint32(header) {
		return nil, ErrInvalidOffset
	}
	for i := 1; i < n; i++ {
		if offsets[i] < offsets[i-1] {
			return nil, ErrInvalidOffset
		}
	}
	for i := 0; i < n; i++ {
		if int(offsets[i]) > len(buf) {
			return nil, ErrInvalidOffset
		}
	}
	fields := make([][]byte, n)
	for i := 0; i < n; i++ {
		start := offsets[i]
		end := uint32(len(buf))
		if i+1 < n {
			end = offsets[i+1]
		}
		fields[i] = buf[start:end]
	}
	return fields, nil
}

// ssz: Go Simple Serialize (SSZ) codec library
// Copyright 2024 ssz Authors
// SPDX-License-Identifier: BSD-3-Clause

package ssz

// EncodeVariableList encodes a variable-length list whose elements are
// themselves variable-size byte blobs (e.g. a list of individually
// RLP-encoded transactions). The wire shape is identical to a variable-field
// container: one 4-byte offset per element followed by the elements, so it
// reuses EncodeVariableFields.
func EncodeVariableList(items [][]byte) []byte {
	return EncodeVariableFields(items)
}

// DecodeVariableList decodes a variable-length list of variable-size byte
// blobs out of buf. Unlike DecodeVariableFields, the element count is not
// known up front: it derives the count from the first offset (which must be
// a whole multiple of 4, the width of one offset slot) before allocating
// anything, so a buffer that lies about its length is rejected in constant
// time rather than after an allocation proportional to the lie. maxItems
// bounds the derived count against the schema's list limit.
func DecodeVariableList(buf []byte, maxItems int) ([][]byte, error) {
	if len(buf) == 0 {
		return nil, nil
	}
	if len(buf) < offsetSize {
		return nil, ErrInputTruncated
	}
	first := readOffset(buf)
	if first == 0 || first%offsetSize != 0 {
		return nil, ErrInvalidOffset
	}
	n := int(first / offsetSize)
	if n > maxItems {
		return nil, BoundExceeded("list", n, maxItems)
	}
	return DecodeVariableFields(buf, n)
}

// EncodeFixedList encodes a list whose elements all share the same fixed
// width (e.g. a list of HeaderRecord values), which is plain concatenation.
func EncodeFixedList(items ...[]byte) []byte {
	return ConcatFixed(items...)
}

// DecodeFixedList splits buf into elemSize-wide chunks. It rejects a buffer
// whose length is not a whole multiple of elemSize, and a chunk count above
// maxItems, both before any chunk is copied out.
func DecodeFixedList(buf []byte, elemSize, maxItems int) ([][]byte, error) {
	if elemSize <= 0 {
		return nil, ErrInvalidOffset
	}
	if len(buf)%elemSize != 0 {
		return nil, ErrInputTruncated
	}
	n := len(buf) / elemSize
	if n > maxItems {
		return nil, BoundExceeded("list", n, maxItems)
	}
	items := make([][]byte, n)
	for i := 0; i < n; i++ {
		items[i] = buf[i*elemSize : (i+1)*elemSize]
	}
	return items, nil
}

// ssz: Go Simple Serialize (SSZ) codec library
// Copyright 2024 ssz Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package ssz contains the SSZ coding primitives this module needs: fixed and
// variable containers, offset-framed lists, and the one-byte union encoding
// SSZ uses to model an optional field. It does not attempt to be a general
// purpose, reflection-driven SSZ library (that space is already served by
// github.com/karalabe/ssz and github.com/ferranbt/fastssz); it implements
// exactly the handful of shapes the Portal Network history content schemas
// need, by hand, so every offset computation can be read and checked in one
// sitting.
package ssz

import "encoding/binary"

// offsetSize is the width, in bytes, of an SSZ offset or list-length prefix.
const offsetSize = 4

// putOffset appends a little-endian uint32 offset to dst.
func putOffset(dst []byte, v uint32) []byte {
	return binary.LittleEndian.AppendUint32(dst, v)
}

// readOffset reads a little-endian uint32 offset from the front of buf.
func readOffset(buf []byte) uint32 {
	return binary.LittleEndian.Uint32(buf)
}

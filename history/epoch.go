// Copyright 2024 the codec authors
// SPDX-License-Identifier: BSD-3-Clause

package history

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"github.com/portalnetwork/historycodec/ssz"
)

// headerRecordSize is the fixed SSZ width of one HeaderRecord: a 32-byte
// hash followed by a 32-byte little-endian total difficulty.
const headerRecordSize = 32 + 32

// HeaderRecord fixes one header's identity into an epoch: its hash and the
// chain's total difficulty at that header. It never carries RLP; both
// fields are native fixed-size SSZ values.
type HeaderRecord struct {
	Hash            common.Hash
	TotalDifficulty *uint256.Int
}

func (r HeaderRecord) encode() []byte {
	return ssz.ConcatFixed(r.Hash[:], encodeU256(r.TotalDifficulty))
}

func decodeHeaderRecord(buf []byte) HeaderRecord {
	var rec HeaderRecord
	copy(rec.Hash[:], buf[:32])
	rec.TotalDifficulty = decodeU256(buf[32:64])
	return rec
}

// EpochAccumulator is the SSZ variable list of HeaderRecord values fixing
// one historical epoch, bound to 8192 entries (a full epoch).
type EpochAccumulator struct {
	Records []HeaderRecord
}

// Encode serializes the accumulator. Because HeaderRecord is fixed-size,
// the wire form is plain concatenation with no offset table: the element
// count is implicit in the total byte length.
func (a EpochAccumulator) Encode() []byte {
	fields := make([][]byte, len(a.Records))
	for i, r := range a.Records {
		fields[i] = r.encode()
	}
	return ssz.EncodeFixedList(fields...)
}

// DecodeEpochAccumulator parses buf as an EpochAccumulator. The number of
// 64-byte chunks is derived from len(buf) before any record is copied out,
// so a buffer describing more than maxEpochRecords records is rejected
// without allocating a record for each of them.
func DecodeEpochAccumulator(buf []byte) (EpochAccumulator, error) {
	chunks, err := ssz.DecodeFixedList(buf, headerRecordSize, maxEpochRecords)
	if err != nil {
		return EpochAccumulator{}, err
	}
	records := make([]HeaderRecord, len(chunks))
	for i, c := range chunks {
		records[i] = decodeHeaderRecord(c)
	}
	return EpochAccumulator{Records: records}, nil
}

// encodeU256 renders v in the little-endian byte order SSZ requires for
// integers; uint256.Int.Bytes32 is big-endian, so the bytes are reversed.
func encodeU256(v *uint256.Int) []byte {
	be := v.Bytes32()
	le := make([]byte, 32)
	for i, b := range be {
		le[31-i] = b
	}
	return le
}

// decodeU256 is the inverse of encodeU256.
func decodeU256(buf []byte) *uint256.Int {
	var be [32]byte
	for i, b := range buf {
		be[31-i] = b
	}
	return new(uint256.Int).SetBytes(be[:])
}

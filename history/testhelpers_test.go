// Copyright 2024 the codec authors
// SPDX-License-Identifier: BSD-3-Clause

package history

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// sampleHeader builds a minimal, RLP-encodable header for a given block
// number. The exact field values don't matter to this package; only that
// the header round-trips through RLP byte-for-byte.
func sampleHeader(number uint64) *types.Header {
	return &types.Header{
		ParentHash: common.Hash{0x01},
		Number:     new(big.Int).SetUint64(number),
		Difficulty: big.NewInt(17),
		GasLimit:   8_000_000,
		GasUsed:    21_000,
		Time:       1_600_000_000 + number,
		Extra:      []byte{0xde, 0xad, 0xbe, 0xef},
	}
}

// sampleProof returns a deterministic, non-degenerate 15-hash proof.
func sampleProof() [proofLength]common.Hash {
	var proof [proofLength]common.Hash
	for i := range proof {
		proof[i][31] = byte(i + 1)
	}
	return proof
}

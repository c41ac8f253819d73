// Copyright 2024 the codec authors
// SPDX-License-Identifier: BSD-3-Clause

package history

import (
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/rlp"

	"github.com/portalnetwork/historycodec/ssz"
)

// Receipts is a bare SSZ variable list of individually RLP-encoded
// receipts. Like EpochAccumulator, it is not wrapped in a container: the
// list itself is the entire content item.
type Receipts struct {
	Receipts []*types.Receipt
}

// Encode serializes the list.
func (r Receipts) Encode() ([]byte, error) {
	blobs := make([][]byte, len(r.Receipts))
	for i, rc := range r.Receipts {
		raw, err := rlp.EncodeToBytes(rc)
		if err != nil {
			return nil, err
		}
		if len(raw) > maxReceiptRLP {
			return nil, ssz.BoundExceeded("receipt", len(raw), maxReceiptRLP)
		}
		blobs[i] = raw
	}
	if len(blobs) > maxReceiptList {
		return nil, ssz.BoundExceeded("receipts", len(blobs), maxReceiptList)
	}
	return ssz.EncodeVariableList(blobs), nil
}

// DecodeReceipts parses buf as a Receipts list.
func DecodeReceipts(buf []byte) (Receipts, error) {
	blobs, err := ssz.DecodeVariableList(buf, maxReceiptList)
	if err != nil {
		return Receipts{}, err
	}
	out := make([]*types.Receipt, len(blobs))
	for i, raw := range blobs {
		if len(raw) > maxReceiptRLP {
			return Receipts{}, ssz.BoundExceeded("receipt", len(raw), maxReceiptRLP)
		}
		var rc types.Receipt
		if err := rlp.DecodeBytes(raw, &rc); err != nil {
			return Receipts{}, innerRLPError("receipt", err)
		}
		out[i] = &rc
	}
	return Receipts{Receipts: out}, nil
}

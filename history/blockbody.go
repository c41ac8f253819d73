// Copyright 2024 the codec authors
// SPDX-License-Identifier: BSD-3-Clause

package history

import (
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/rlp"

	"github.com/portalnetwork/historycodec/ssz"
)

// BlockBody holds a block's transactions and uncle headers. The two fields
// are encoded asymmetrically: each transaction is RLP-framed on its own
// (typed-transaction envelopes need individual framing), while the uncles
// are RLP-encoded once as a single list and stored as one byte blob. This
// mirrors how the two values differ on the wire; it is not a simplification
// to unify.
type BlockBody struct {
	Transactions []*types.Transaction
	Uncles       []*types.Header
}

// Encode serializes the container.
func (b BlockBody) Encode() ([]byte, error) {
	txRLPs := make([][]byte, len(b.Transactions))
	for i, tx := range b.Transactions {
		raw, err := rlp.EncodeToBytes(tx)
		if err != nil {
			return nil, err
		}
		if len(raw) > maxTransactionRLP {
			return nil, ssz.BoundExceeded("transaction", len(raw), maxTransactionRLP)
		}
		txRLPs[i] = raw
	}
	if len(txRLPs) > maxTransactionList {
		return nil, ssz.BoundExceeded("transactions", len(txRLPs), maxTransactionList)
	}
	txField := ssz.EncodeVariableList(txRLPs)

	unclesRLP, err := rlp.EncodeToBytes(b.Uncles)
	if err != nil {
		return nil, err
	}
	if len(unclesRLP) > maxUnclesRLP {
		return nil, ssz.BoundExceeded("uncles", len(unclesRLP), maxUnclesRLP)
	}
	return ssz.EncodeVariableFields([][]byte{txField, unclesRLP}), nil
}

// DecodeBlockBody parses buf as a BlockBody container.
func DecodeBlockBody(buf []byte) (BlockBody, error) {
	fields, err := ssz.DecodeVariableFields(buf, 2)
	if err != nil {
		return BlockBody{}, err
	}
	txField, unclesRLP := fields[0], fields[1]

	txRLPs, err := ssz.DecodeVariableList(txField, maxTransactionList)
	if err != nil {
		return BlockBody{}, err
	}
	txs := make([]*types.Transaction, len(txRLPs))
	for i, raw := range txRLPs {
		if len(raw) > maxTransactionRLP {
			return BlockBody{}, ssz.BoundExceeded("transaction", len(raw), maxTransactionRLP)
		}
		var tx types.Transaction
		if err := rlp.DecodeBytes(raw, &tx); err != nil {
			return BlockBody{}, innerRLPError("transaction", err)
		}
		txs[i] = &tx
	}

	if len(unclesRLP) > maxUnclesRLP {
		return BlockBody{}, ssz.BoundExceeded("uncles", len(unclesRLP), maxUnclesRLP)
	}
	var uncles []*types.Header
	if err := rlp.DecodeBytes(unclesRLP, &uncles); err != nil {
		return BlockBody{}, innerRLPError("uncles", err)
	}
	return BlockBody{Transactions: txs, Uncles: uncles}, nil
}

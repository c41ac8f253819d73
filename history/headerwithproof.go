// Copyright 2024 the codec authors
// SPDX-License-Identifier: BSD-3-Clause

package history

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/rlp"

	"github.com/portalnetwork/historycodec/ssz"
)

// HeaderWithProof pairs a block header with an optional Merkle proof
// linking it into its epoch accumulator. The proof, when present, always
// has exactly proofLength elements; a shorter or longer proof cannot be
// constructed.
type HeaderWithProof struct {
	Header *types.Header
	Proof  *[proofLength]common.Hash // nil means absent
}

// Encode serializes the container: the header's RLP wrapped as the first
// variable field, the proof (if any) wrapped as a union Some arm in the
// second.
func (h HeaderWithProof) Encode() ([]byte, error) {
	headerRLP, err := rlp.EncodeToBytes(h.Header)
	if err != nil {
		return nil, err
	}
	if len(headerRLP) > maxHeaderRLP {
		return nil, ssz.BoundExceeded("header", len(headerRLP), maxHeaderRLP)
	}

	var proofField []byte
	if h.Proof == nil {
		proofField = ssz.EncodeNone()
	} else {
		hashes := make([][]byte, proofLength)
		for i, hash := range h.Proof {
			hashes[i] = hash[:]
		}
		proofField = ssz.EncodeSome(ssz.ConcatFixed(hashes...))
	}
	return ssz.EncodeVariableFields([][]byte{headerRLP, proofField}), nil
}

// DecodeHeaderWithProof parses buf as a HeaderWithProof container.
func DecodeHeaderWithProof(buf []byte) (HeaderWithProof, error) {
	fields, err := ssz.DecodeVariableFields(buf, 2)
	if err != nil {
		return HeaderWithProof{}, err
	}
	headerRLP, proofField := fields[0], fields[1]
	if len(headerRLP) > maxHeaderRLP {
		return HeaderWithProof{}, ssz.BoundExceeded("header", len(headerRLP), maxHeaderRLP)
	}

	var header types.Header
	if err := rlp.DecodeBytes(headerRLP, &header); err != nil {
		return HeaderWithProof{}, innerRLPError("header", err)
	}

	present, body, err := ssz.DecodeOption(proofField)
	if err != nil {
		return HeaderWithProof{}, err
	}
	if !present {
		return HeaderWithProof{Header: &header}, nil
	}
	if len(body) != proofLength*common.HashLength {
		return HeaderWithProof{}, ssz.BoundExceeded("proof", len(body)/common.HashLength, proofLength)
	}
	var proof [proofLength]common.Hash
	for i := range proof {
		copy(proof[i][:], body[i*common.HashLength:(i+1)*common.HashLength])
	}
	return HeaderWithProof{Header: &header, Proof: &proof}, nil
}

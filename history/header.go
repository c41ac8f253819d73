// Copyright 2024 the codec authors
// SPDX-License-Identifier: BSD-3-Clause

package history

import (
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/rlp"

	"github.com/portalnetwork/historycodec/ssz"
)

// Header is the deprecated bare-RLP header content item, kept for
// compatibility with content already advertised under it. New producers
// should use HeaderWithProof instead.
type Header struct {
	Header *types.Header
}

// Encode RLP-encodes the header directly; there is no SSZ wrapping at all.
func (h Header) Encode() ([]byte, error) {
	raw, err := rlp.EncodeToBytes(h.Header)
	if err != nil {
		return nil, err
	}
	if len(raw) > maxHeaderRLP {
		return nil, ssz.BoundExceeded("header", len(raw), maxHeaderRLP)
	}
	return raw, nil
}

// DecodeHeader RLP-decodes buf directly as a header. rlp.DecodeBytes
// already rejects any bytes left over after the value, matching the
// "full buffer consumed" requirement.
func DecodeHeader(buf []byte) (Header, error) {
	if len(buf) > maxHeaderRLP {
		return Header{}, ssz.BoundExceeded("header", len(buf), maxHeaderRLP)
	}
	var header types.Header
	if err := rlp.DecodeBytes(buf, &header); err != nil {
		return Header{}, innerRLPError("header", err)
	}
	return Header{Header: &header}, nil
}

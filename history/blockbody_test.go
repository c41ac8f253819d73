// Copyright 2024 the codec authors
// SPDX-License-Identifier: BSD-3-Clause

package history

import (
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

func sampleTransactions(n int) []*types.Transaction {
	out := make([]*types.Transaction, n)
	for i := range out {
		out[i] = types.NewTransaction(
			uint64(i),
			common.Address{0x01},
			big.NewInt(int64(i)),
			21000,
			big.NewInt(1_000_000_000),
			nil,
		)
	}
	return out
}

func TestBlockBodyRoundTrip(t *testing.T) {
	b := BlockBody{
		Transactions: sampleTransactions(3),
		Uncles:       []*types.Header{sampleHeader(10), sampleHeader(11)},
	}
	enc, err := b.Encode()
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	got, err := DecodeBlockBody(enc)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(got.Transactions) != len(b.Transactions) {
		t.Fatalf("tx count mismatch: have %d, want %d", len(got.Transactions), len(b.Transactions))
	}
	if len(got.Uncles) != len(b.Uncles) {
		t.Fatalf("uncle count mismatch: have %d, want %d", len(got.Uncles), len(b.Uncles))
	}
	for i := range b.Uncles {
		if got.Uncles[i].Number.Cmp(b.Uncles[i].Number) != 0 {
			t.Errorf("uncle %d number mismatch: have %v, want %v", i, got.Uncles[i].Number, b.Uncles[i].Number)
		}
	}
}

func TestBlockBodyEmpty(t *testing.T) {
	b := BlockBody{}
	enc, err := b.Encode()
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	got, err := DecodeBlockBody(enc)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(got.Transactions) != 0 || len(got.Uncles) != 0 {
		t.Fatalf("expected an empty body, got %+v", got)
	}
}

func TestBlockBodyTrailingBytes(t *testing.T) {
	b := BlockBody{Transactions: sampleTransactions(1)}
	enc, err := b.Encode()
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	enc = append(enc, 0x00)

	// The uncles field runs to the end of the buffer, so the extra byte
	// joins the uncles RLP blob and must fail as a malformed inner decode.
	if _, err := DecodeBlockBody(enc); !errors.Is(err, ErrInnerRLP) {
		t.Errorf("error mismatch: have %v, want %v", err, ErrInnerRLP)
	}
}

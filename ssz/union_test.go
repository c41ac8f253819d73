// ssz: Go Simple Serialize (SSZ) codec library
// Copyright 2024 ssz Authors
// SPDX-License-Identifier: BSD-3-Clause

package ssz

import (
	"bytes"
	"errors"
	"testing"
)

func TestOptionNone(t *testing.T) {
	present, body, err := DecodeOption(EncodeNone())
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if present {
		t.Errorf("expected absent, got present")
	}
	if body != nil {
		t.Errorf("expected nil body, got %x", body)
	}
}

func TestOptionSomeRoundTrip(t *testing.T) {
	want := []byte("payload bytes")
	present, body, err := DecodeOption(EncodeSome(want))
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if !present {
		t.Fatalf("expected present")
	}
	if !bytes.Equal(body, want) {
		t.Errorf("body mismatch: have %x, want %x", body, want)
	}
}

func TestOptionNoneWithTrailingBytes(t *testing.T) {
	buf := append(EncodeNone(), 0xaa)
	if _, _, err := DecodeOption(buf); !errors.Is(err, ErrTrailingBytes) {
		t.Errorf("error mismatch: have %v, want %v", err, ErrTrailingBytes)
	}
}

func TestOptionInvalidSelector(t *testing.T) {
	if _, _, err := DecodeOption([]byte{2}); !errors.Is(err, ErrInvalidUnionSelector) {
		t.Errorf("error mismatch: have %v, want %v", err, ErrInvalidUnionSelector)
	}
}

func TestOptionEmptyInput(t *testing.T) {
	if _, _, err := DecodeOption(nil); !errors.Is(err, ErrInputTruncated) {
		t.Errorf("error mismatch: have %v, want %v", err, ErrInputTruncated)
	}
}

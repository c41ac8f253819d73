// Copyright 2024 the codec authors
// SPDX-License-Identifier: BSD-3-Clause

package history

// Variant identifies which of the five schemas a ContentItem wraps.
type Variant int

const (
	VariantHeaderWithProof Variant = iota
	VariantHeader
	VariantBlockBody
	VariantReceipts
	VariantEpochAccumulator
)

// ContentItem is the polymorphic envelope every history value round-trips
// through. Exactly one of the typed fields is populated, matching Variant.
// The variant tag itself is never serialized: it is recovered on decode by
// ordered trial decoding, not carried on the wire.
type ContentItem struct {
	Variant Variant

	HeaderWithProof  *HeaderWithProof
	Header           *Header
	BlockBody        *BlockBody
	Receipts         *Receipts
	EpochAccumulator *EpochAccumulator
}

// Encode dispatches on Variant and hex-frames the per-variant encoding. No
// discriminator byte is ever written; the hex string alone is the wire
// value.
func (c ContentItem) Encode() (string, error) {
	var (
		raw []byte
		err error
	)
	switch c.Variant {
	case VariantHeaderWithProof:
		raw, err = c.HeaderWithProof.Encode()
	case VariantHeader:
		raw, err = c.Header.Encode()
	case VariantBlockBody:
		raw, err = c.BlockBody.Encode()
	case VariantReceipts:
		raw, err = c.Receipts.Encode()
	case VariantEpochAccumulator:
		raw = c.EpochAccumulator.Encode()
	}
	if err != nil {
		return "", err
	}
	return EncodeHex(raw), nil
}

// DecodeContentItem hex-decodes s and then tries each variant decoder in
// the fixed order the network relies on for compatibility: HeaderWithProof,
// Header, BlockBody, Receipts, EpochAccumulator. The first decoder to
// accept the bytes wins; callers must not re-score or prefer a later
// variant even if it would also have succeeded.
//
// This trial-decode path exists for callers that only have the value, not
// the overlay content-key (e.g. raw JSON input). A caller that already
// knows the variant from its content key should call the matching
// Decode<Variant> function directly instead of going through here.
func DecodeContentItem(s string) (ContentItem, error) {
	raw, err := DecodeHex(s)
	if err != nil {
		return ContentItem{}, err
	}

	if v, err := DecodeHeaderWithProof(raw); err == nil {
		return ContentItem{Variant: VariantHeaderWithProof, HeaderWithProof: &v}, nil
	}
	if v, err := DecodeHeader(raw); err == nil {
		return ContentItem{Variant: VariantHeader, Header: &v}, nil
	}
	if v, err := DecodeBlockBody(raw); err == nil {
		return ContentItem{Variant: VariantBlockBody, BlockBody: &v}, nil
	}
	if v, err := DecodeReceipts(raw); err == nil {
		return ContentItem{Variant: VariantReceipts, Receipts: &v}, nil
	}
	if v, err := DecodeEpochAccumulator(raw); err == nil {
		return ContentItem{Variant: VariantEpochAccumulator, EpochAccumulator: &v}, nil
	}
	return ContentItem{}, ErrWrongVariant
}

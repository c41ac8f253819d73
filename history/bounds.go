// Copyright 2024 the codec authors
// SPDX-License-Identifier: BSD-3-Clause

// Package history implements the Portal Network history-network content-item
// codec: the five wire-level variants peers advertise, store, and exchange
// (HeaderWithProof, the deprecated bare Header, BlockBody, Receipts, and
// EpochAccumulator), plus the hex-framed dispatcher that recovers a
// variant from bytes alone by ordered trial decoding. Every encoder and
// decoder here is a pure function of its input: no shared state, no I/O,
// safe to call from any number of goroutines at once.
package history

// Size bounds fixed by the network schema. The decoders reject input past
// any of them, and the encoders return an error rather than produce output
// past the byte and list-length bounds, with one exception: EpochAccumulator
// has no encode-side check, so maxEpochRecords is enforced only by
// DecodeEpochAccumulator and Encode serializes any number of records.
const (
	maxHeaderRLP       = 2048
	maxReceiptRLP      = 134217728 // 2^27
	maxReceiptList     = 16384
	maxTransactionRLP  = 16777216 // 2^24
	maxTransactionList = 16384
	maxUnclesRLP       = 131072
	maxEpochRecords    = 8192

	proofLength = 15 // Merkle proof linking a header into its epoch accumulator.
)

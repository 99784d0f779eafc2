// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import "time"

// BlockHeader defines information about a block. The previous-block hash and
// the merkle root are opaque 256-bit values in hexadecimal form; all
// byte-order handling for mining happens in the serialization layer, not
// here.
//
// JSON keys are declared in sorted order, which is the layout the result
// artifact uses.
type BlockHeader struct {
	// MerkleRoot is derived from the block's transaction identifiers, in
	// block order.
	MerkleRoot string `json:"merkle_root"`

	// Nonce is the only field mutated while mining.
	Nonce uint32 `json:"nonce"`

	// PrevBlock is the hash of the previous block. It is owned exclusively
	// by the header.
	PrevBlock string `json:"prev_block_hash"`

	// Timestamp is the block creation time as a unix timestamp. It is
	// encoded as a uint32 on the wire and therefore limited to 2106.
	Timestamp int64 `json:"time"`

	// Version of the block. This is not the same as the protocol version.
	Version int32 `json:"version"`
}

// NewBlockHeader returns a new BlockHeader using the provided previous block
// hash, merkle root and timestamp, with the fixed block version and a zero
// nonce.
func NewBlockHeader(prevBlock string, merkleRoot string, timestamp time.Time) *BlockHeader {
	return &BlockHeader{
		MerkleRoot: merkleRoot,
		Nonce:      0,
		PrevBlock:  prevBlock,
		Timestamp:  timestamp.Unix(),
		Version:    BlockVersion,
	}
}

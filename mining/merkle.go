// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mining

import (
	"strings"

	"github.com/minernet/minerd/util/hashes"
)

// BuildSequentialRoot derives a single root identifier from an ordered list
// of transaction identifiers by hashing their textual concatenation.
//
// This is not a binary merkle tree: tampering with any identifier changes the
// root, but the scheme offers no per-transaction inclusion proofs. It is the
// default because it is the documented behavior of the block format this
// program produces; see BuildPairwiseRoot for the tree variant.
//
// The root is order-sensitive, so the block's transaction order must be
// stable for the result to be reproducible.
func BuildSequentialRoot(txIDs []string) string {
	return hashes.IdentifierHash(strings.Join(txIDs, ""))
}

// BuildPairwiseRoot derives a root identifier by pairwise combination: leaves
// are the transaction identifiers, each level hashes the concatenation of
// adjacent pairs, and an odd element is combined with itself. This is the
// clearly labeled alternate mode; it produces different roots than
// BuildSequentialRoot and is only used when explicitly selected.
func BuildPairwiseRoot(txIDs []string) string {
	if len(txIDs) == 0 {
		// Match the sequential scheme's behavior for an empty list.
		return hashes.IdentifierHash("")
	}

	level := make([]string, len(txIDs))
	for i, txID := range txIDs {
		level[i] = hashes.IdentifierHash(txID)
	}

	for len(level) > 1 {
		nextLevel := make([]string, 0, (len(level)+1)/2)
		for i := 0; i < len(level); i += 2 {
			left := level[i]
			right := left
			if i+1 < len(level) {
				right = level[i+1]
			}
			nextLevel = append(nextLevel, hashes.IdentifierHash(left+right))
		}
		level = nextLevel
	}
	return level[0]
}

// Copyright (c) 2014-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mining

import "github.com/minernet/minerd/wire"

// Policy houses the policy (configuration parameters) which is used to
// control the generation of block templates. See the documentation for
// NewBlockTemplate for more details on how each of these parameters are used.
type Policy struct {
	// BlockMaxSize is the maximum serialized block size to be used when
	// generating a block template.
	BlockMaxSize int

	// PairwiseMerkle selects the pairwise merkle tree scheme for the
	// template's merkle root instead of the default sequential scheme.
	PairwiseMerkle bool
}

// DefaultPolicy returns the policy an unconfigured generator uses: the
// consensus maximum block size and the sequential merkle scheme.
func DefaultPolicy() *Policy {
	return &Policy{
		BlockMaxSize: wire.MaxBlockSize,
	}
}

// Copyright (c) 2014-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mining

import (
	"github.com/pkg/errors"

	"github.com/minernet/minerd/wire"
)

// coinbaseScriptPubKey is the script placeholder carried by the generated
// coinbase transaction's input prevout descriptor and output.
const coinbaseScriptPubKey = "coinbase_scriptpubkey"

// BlockTemplate houses a block that has yet to be solved: it is completely
// valid with the exception of satisfying the proof-of-work requirement.
type BlockTemplate struct {
	// Block is the block that is ready to be solved by miners.
	Block *wire.MsgBlock

	// SkippedForSize is the number of candidate transactions left out of
	// the template because including them would have exceeded the maximum
	// block size.
	SkippedForSize int
}

// BlkTmplGenerator provides a type that can be used to generate block
// templates from a set of admitted transactions.
type BlkTmplGenerator struct {
	policy     *Policy
	timeSource TimeSource
}

// NewBlkTmplGenerator returns a new block template generator for the given
// policy. Templates are timestamped through the given time source so callers
// can pin time in tests.
func NewBlkTmplGenerator(policy *Policy, timeSource TimeSource) *BlkTmplGenerator {
	return &BlkTmplGenerator{
		policy:     policy,
		timeSource: timeSource,
	}
}

// CreateCoinbaseTx returns the reward-granting transaction that must occupy
// position 0 of any assembled block: exactly one input carrying the coinbase
// marker reference with the maximum output index, and exactly one output
// carrying the block reward. Its identifier is derived from its content like
// any other transaction's.
func CreateCoinbaseTx() (*wire.MsgTx, error) {
	coinbaseTx := &wire.MsgTx{
		Version:  wire.BlockVersion,
		LockTime: 0,
		TxIn: []*wire.TxIn{{
			PrevTxID:  wire.CoinbaseSentinelTxID,
			PrevIndex: wire.MaxOutputIndex,
			PrevOut: &wire.PrevOutput{
				ScriptPubKey: coinbaseScriptPubKey,
				Value:        wire.BlockReward,
			},
		}},
		TxOut: []*wire.TxOut{{
			ScriptPubKey: coinbaseScriptPubKey,
			Value:        wire.BlockReward,
		}},
	}
	err := coinbaseTx.AssignTxID()
	if err != nil {
		return nil, err
	}
	return coinbaseTx, nil
}

// NewBlockTemplate assembles a block template from the admitted transactions,
// in their given order, on top of the given previous block hash.
//
// The coinbase transaction is created here and prepended, so the returned
// block always holds len(validTxs)+1 transactions at most. Transactions whose
// serialized size would push the block past the policy's maximum block size
// are skipped, later candidates may still fit. The merkle root is computed
// over the block's transaction identifiers in block order, with the scheme
// the policy selects, and the header is stamped with the generator's current
// time and a zero nonce.
func (g *BlkTmplGenerator) NewBlockTemplate(validTxs []*wire.MsgTx,
	prevBlockHash string) (*BlockTemplate, error) {

	coinbaseTx, err := CreateCoinbaseTx()
	if err != nil {
		return nil, errors.Wrap(err, "couldn't create coinbase transaction")
	}
	blockSize, err := coinbaseTx.SerializeSize()
	if err != nil {
		return nil, err
	}

	blockTxs := make([]*wire.MsgTx, 0, len(validTxs)+1)
	blockTxs = append(blockTxs, coinbaseTx)
	skippedForSize := 0
	for _, tx := range validTxs {
		txSize, err := tx.SerializeSize()
		if err != nil {
			return nil, err
		}
		if blockSize+txSize > g.policy.BlockMaxSize {
			log.Debugf("Skipping transaction %s: block size %d + %d exceeds the "+
				"maximum of %d", tx.TxID, blockSize, txSize, g.policy.BlockMaxSize)
			skippedForSize++
			continue
		}
		blockSize += txSize
		blockTxs = append(blockTxs, tx)
	}

	block := &wire.MsgBlock{Transactions: blockTxs}
	merkleRoot := BuildSequentialRoot(block.TxIDs())
	if g.policy.PairwiseMerkle {
		merkleRoot = BuildPairwiseRoot(block.TxIDs())
	}
	block.Header = *wire.NewBlockHeader(prevBlockHash, merkleRoot, g.timeSource.Now())

	log.Debugf("Assembled block template with %d transactions, %d bytes, "+
		"merkle root %s", len(blockTxs), blockSize, merkleRoot)
	return &BlockTemplate{
		Block:          block,
		SkippedForSize: skippedForSize,
	}, nil
}

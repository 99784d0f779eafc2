// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

// MsgBlock implements an assembled block: a header and an ordered
// transaction sequence where position 0 is always the coinbase transaction.
// The transaction set is immutable after assembly; the header nonce is the
// only field mutated during mining.
type MsgBlock struct {
	Header       BlockHeader
	Transactions []*MsgTx
}

// TxIDs returns the identifiers of the block's transactions, in block order
// (coinbase first).
func (msg *MsgBlock) TxIDs() []string {
	txIDs := make([]string, 0, len(msg.Transactions))
	for _, tx := range msg.Transactions {
		txIDs = append(txIDs, tx.TxID)
	}
	return txIDs
}

// Coinbase returns the block's coinbase transaction.
func (msg *MsgBlock) Coinbase() *MsgTx {
	return msg.Transactions[0]
}

// NonCoinbaseTransactions returns the block's transactions excluding the
// coinbase, in block order.
func (msg *MsgBlock) NonCoinbaseTransactions() []*MsgTx {
	return msg.Transactions[1:]
}

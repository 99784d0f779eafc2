// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/minernet/minerd/util/hashes"
)

// PrevOutput describes the output a transaction input spends. It may be
// absent from an input when the previous output is not known to the record.
type PrevOutput struct {
	ScriptPubKey string `json:"scriptpubkey"`
	Value        int64  `json:"value"`
}

// TxIn defines a transaction input: a reference to a prior transaction's
// identifier and output index, with an optional previous-output descriptor.
//
// JSON keys are declared in sorted order so that the canonical serialization
// is deterministic.
type TxIn struct {
	PrevOut   *PrevOutput `json:"prevout,omitempty"`
	PrevTxID  string      `json:"txid"`
	PrevIndex int64       `json:"vout"`
}

// IsCoinbaseSentinel returns whether the input carries the reserved coinbase
// marker reference (zero identifier, index -1).
func (ti *TxIn) IsCoinbaseSentinel() bool {
	return ti.PrevTxID == CoinbaseSentinelTxID && ti.PrevIndex == CoinbaseSentinelIndex
}

// TxOut defines a transaction output.
type TxOut struct {
	ScriptPubKey string `json:"scriptpubkey"`
	Value        int64  `json:"value"`
}

// MsgTx implements a transaction as exchanged through the mempool directory
// and embedded into blocks.
//
// The identifier is derived, never taken from input: it is the hash of the
// canonical serialization of the transaction content, and must be recomputed
// whenever the content changes. JSON keys are declared in sorted order so
// that the canonical serialization is deterministic.
type MsgTx struct {
	LockTime int64    `json:"locktime"`
	TxID     string   `json:"txid,omitempty"`
	Version  int32    `json:"version"`
	TxIn     []*TxIn  `json:"vin"`
	TxOut    []*TxOut `json:"vout"`
}

// CanonicalSerialize returns the canonical serialized form of the
// transaction: JSON with keys in sorted order. The identifier field is
// included only once it has been assigned.
func (tx *MsgTx) CanonicalSerialize() ([]byte, error) {
	serialized, err := json.Marshal(tx)
	if err != nil {
		return nil, errors.Wrap(err, "couldn't serialize transaction")
	}
	return serialized, nil
}

// SerializeSize returns the number of bytes of the transaction's canonical
// serialization.
func (tx *MsgTx) SerializeSize() (int, error) {
	serialized, err := tx.CanonicalSerialize()
	if err != nil {
		return 0, err
	}
	return len(serialized), nil
}

// ComputeTxID derives the transaction identifier by hashing the canonical
// serialization of the transaction content, excluding any previously
// assigned identifier.
func (tx *MsgTx) ComputeTxID() (string, error) {
	content := *tx
	content.TxID = ""
	serialized, err := content.CanonicalSerialize()
	if err != nil {
		return "", err
	}
	return hashes.IdentifierHash(string(serialized)), nil
}

// AssignTxID recomputes the transaction identifier from the current content
// and stores it on the transaction.
func (tx *MsgTx) AssignTxID() error {
	txID, err := tx.ComputeTxID()
	if err != nil {
		return err
	}
	tx.TxID = txID
	return nil
}

// TotalOutputValue returns the sum of all output values.
func (tx *MsgTx) TotalOutputValue() int64 {
	var total int64
	for _, txOut := range tx.TxOut {
		total += txOut.Value
	}
	return total
}

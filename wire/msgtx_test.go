// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"strings"
	"testing"
)

func sampleTx() *MsgTx {
	return &MsgTx{
		Version:  BlockVersion,
		LockTime: 0,
		TxIn: []*TxIn{{
			PrevTxID:  "aa",
			PrevIndex: 0,
			PrevOut: &PrevOutput{
				ScriptPubKey: "76a914000000000000000000000000000000000000000088ac",
				Value:        100,
			},
		}},
		TxOut: []*TxOut{{
			ScriptPubKey: "76a914000000000000000000000000000000000000000088ac",
			Value:        100,
		}},
	}
}

func TestCanonicalSerialize(t *testing.T) {
	tx := sampleTx()
	first, err := tx.CanonicalSerialize()
	if err != nil {
		t.Fatalf("CanonicalSerialize: %v", err)
	}
	second, err := tx.CanonicalSerialize()
	if err != nil {
		t.Fatalf("CanonicalSerialize: %v", err)
	}
	if string(first) != string(second) {
		t.Errorf("CanonicalSerialize isn't deterministic: %s != %s", first, second)
	}

	// Keys must appear in sorted order.
	serialized := string(first)
	keys := []string{`"locktime"`, `"version"`, `"vin"`, `"vout"`}
	lastIndex := -1
	for _, key := range keys {
		index := strings.Index(serialized, key)
		if index == -1 {
			t.Fatalf("CanonicalSerialize: key %s missing from %s", key, serialized)
		}
		if index < lastIndex {
			t.Errorf("CanonicalSerialize: key %s out of order in %s", key, serialized)
		}
		lastIndex = index
	}

	// An unassigned identifier must not appear in the serialization.
	if strings.Contains(serialized, `"txid"`) {
		t.Errorf("CanonicalSerialize: unassigned txid serialized in %s", serialized)
	}
}

func TestTxIDDerivation(t *testing.T) {
	tx := sampleTx()
	err := tx.AssignTxID()
	if err != nil {
		t.Fatalf("AssignTxID: %v", err)
	}
	if len(tx.TxID) != 64 {
		t.Fatalf("AssignTxID: got identifier %q, want a 64-character hex digest", tx.TxID)
	}

	// The identifier is derived from content only, so recomputing it on a
	// transaction that already carries one must give the same value.
	recomputed, err := tx.ComputeTxID()
	if err != nil {
		t.Fatalf("ComputeTxID: %v", err)
	}
	if recomputed != tx.TxID {
		t.Errorf("ComputeTxID: got %s, want %s", recomputed, tx.TxID)
	}

	// Changing content must change the identifier.
	tx.TxOut[0].Value++
	changed, err := tx.ComputeTxID()
	if err != nil {
		t.Fatalf("ComputeTxID: %v", err)
	}
	if changed == tx.TxID {
		t.Errorf("ComputeTxID: identifier %s didn't change with the content", changed)
	}
}

func TestIsCoinbaseSentinel(t *testing.T) {
	tests := []struct {
		txIn     TxIn
		expected bool
	}{
		{TxIn{PrevTxID: CoinbaseSentinelTxID, PrevIndex: CoinbaseSentinelIndex}, true},
		{TxIn{PrevTxID: CoinbaseSentinelTxID, PrevIndex: 0}, false},
		{TxIn{PrevTxID: CoinbaseSentinelTxID, PrevIndex: MaxOutputIndex}, false},
		{TxIn{PrevTxID: "aa", PrevIndex: CoinbaseSentinelIndex}, false},
		{TxIn{PrevTxID: "aa", PrevIndex: 1}, false},
	}

	for i, test := range tests {
		if result := test.txIn.IsCoinbaseSentinel(); result != test.expected {
			t.Errorf("%d: IsCoinbaseSentinel: got %t, want %t", i, result, test.expected)
		}
	}
}

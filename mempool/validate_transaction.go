package mempool

import (
	"fmt"

	"github.com/minernet/minerd/wire"
)

// CheckTransactionAdmission applies the admission rules to a candidate
// transaction in order, short-circuiting on the first violated rule. A nil
// return means the transaction is accepted; a non-nil return is always a
// RuleError describing the violated rule.
//
// The check is a pure predicate over the transaction content.
func CheckTransactionAdmission(tx *wire.MsgTx) error {
	// Neither the input list nor the output list may be empty.
	if len(tx.TxIn) == 0 {
		return txRuleError(RejectMalformed, "transaction has no inputs")
	}
	if len(tx.TxOut) == 0 {
		return txRuleError(RejectMalformed, "transaction has no outputs")
	}

	// Each output value, as well as the total, must be within the allowed
	// range of values.
	for i, txOut := range tx.TxOut {
		if txOut.Value < 0 || txOut.Value > wire.MaxSupply {
			return txRuleError(RejectInvalid, fmt.Sprintf("transaction output %d "+
				"has value %d which is outside of [0, %d]", i, txOut.Value,
				wire.MaxSupply))
		}
	}
	total := tx.TotalOutputValue()
	if total < 0 || total > wire.MaxSupply {
		return txRuleError(RejectInvalid, fmt.Sprintf("transaction output total "+
			"%d is outside of [0, %d]", total, wire.MaxSupply))
	}

	// None of the inputs may carry the coinbase marker reference, coinbase
	// transactions are never relayed.
	for i, txIn := range tx.TxIn {
		if txIn.IsCoinbaseSentinel() {
			return txRuleError(RejectInvalid, fmt.Sprintf("transaction input %d "+
				"claims to be coinbase", i))
		}
	}

	// Locktime must be a non-negative value representable as a signed
	// integer. Values too wide for int64 already fail structural decode at
	// the storage boundary.
	if tx.LockTime < 0 {
		return txRuleError(RejectInvalid, fmt.Sprintf("transaction locktime %d "+
			"is negative", tx.LockTime))
	}

	// The serialized transaction size must not be degenerate.
	serializedSize, err := tx.SerializeSize()
	if err != nil {
		return txRuleError(RejectMalformed, fmt.Sprintf("transaction cannot be "+
			"serialized: %s", err))
	}
	if serializedSize < wire.MinTransactionSize {
		return txRuleError(RejectMalformed, fmt.Sprintf("transaction size %d "+
			"is below the minimum of %d bytes", serializedSize,
			wire.MinTransactionSize))
	}

	return nil
}

// Package mempool reads candidate transactions from a mempool directory and
// applies the admission rules that decide which of them may enter a block
// template.
package mempool

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/minernet/minerd/wire"
)

// ErrEmptyMempool identifies a mempool directory that yielded no transaction
// records at all. An operator misconfiguration should not silently produce an
// empty candidate pool.
var ErrEmptyMempool = errors.New("mempool directory contains no transaction records")

// ReadMempool reads every .json record in the given directory into a typed
// transaction, in filename order. Each transaction's identifier is assigned
// by hashing its canonical serialization; identifiers are never trusted from
// input.
//
// Records that fail structural decode are dropped with a warning. Structure
// is validated here at the storage boundary, so the rest of the codebase only
// sees well-formed transactions.
func ReadMempool(dir string) ([]*wire.MsgTx, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "couldn't read mempool directory %s", dir)
	}

	transactions := make([]*wire.MsgTx, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		recordPath := filepath.Join(dir, entry.Name())
		record, err := os.ReadFile(recordPath)
		if err != nil {
			return nil, errors.Wrapf(err, "couldn't read mempool record %s", recordPath)
		}

		tx := &wire.MsgTx{}
		err = json.Unmarshal(record, tx)
		if err != nil {
			log.Warnf("Dropping malformed mempool record %s: %s", entry.Name(), err)
			continue
		}
		// The record may carry a txid of its own. It is discarded and
		// recomputed from the content.
		tx.TxID = ""
		err = tx.AssignTxID()
		if err != nil {
			return nil, errors.Wrapf(err, "couldn't derive identifier for mempool "+
				"record %s", recordPath)
		}
		transactions = append(transactions, tx)
	}

	if len(transactions) == 0 {
		return nil, errors.WithStack(ErrEmptyMempool)
	}
	return transactions, nil
}

// FilterValid applies the admission rules to each candidate transaction and
// returns the accepted ones, preserving input order. Rejected transactions
// are dropped from the candidate set with a log line carrying the reject
// reason; a rejection is local and never fatal.
func FilterValid(transactions []*wire.MsgTx) []*wire.MsgTx {
	validTransactions := make([]*wire.MsgTx, 0, len(transactions))
	for _, tx := range transactions {
		err := CheckTransactionAdmission(tx)
		if err != nil {
			rejectCode, _ := extractRejectCode(err)
			log.Debugf("Rejected transaction %s (%s): %s", tx.TxID, rejectCode, err)
			continue
		}
		validTransactions = append(validTransactions, tx)
	}
	log.Infof("Valid transactions: %d", len(validTransactions))
	return validTransactions
}

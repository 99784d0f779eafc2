package main

import (
	"bytes"
	"encoding/json"
	"os"

	"github.com/pkg/errors"

	"github.com/minernet/minerd/wire"
)

// writeResult writes the result artifact for a solved block: the header field
// set as indented JSON, the coinbase transaction's canonical serialization,
// and then the identifier of every non-coinbase transaction, one per line, in
// block order.
func writeResult(path string, block *wire.MsgBlock) error {
	var buf bytes.Buffer

	header, err := json.MarshalIndent(&block.Header, "", "    ")
	if err != nil {
		return errors.Wrap(err, "couldn't serialize the solved header")
	}
	buf.Write(header)
	buf.WriteByte('\n')

	coinbase, err := block.Coinbase().CanonicalSerialize()
	if err != nil {
		return err
	}
	buf.Write(coinbase)
	buf.WriteByte('\n')

	for _, tx := range block.NonCoinbaseTransactions() {
		buf.WriteString(tx.TxID)
		buf.WriteByte('\n')
	}

	err = os.WriteFile(path, buf.Bytes(), 0644)
	if err != nil {
		return errors.Wrapf(err, "couldn't write the result to %s", path)
	}
	return nil
}

package miner

import (
	"github.com/pkg/errors"

	"github.com/minernet/minerd/util/hexfield"
	"github.com/minernet/minerd/wire"
)

const (
	versionFieldWidth   = 4
	timestampFieldWidth = 4
	nonceFieldWidth     = 4
)

// SerializeHeaderPrefix encodes the header's version, previous block hash,
// merkle root and timestamp, each as a byte-order-reversed hexadecimal field,
// and concatenates them. The prefix is fixed for an entire nonce search; only
// the nonce field is appended per attempt.
//
// A timestamp that does not fit in 4 bytes fails with an encoding error
// rather than being truncated.
func SerializeHeaderPrefix(header *wire.BlockHeader) (string, error) {
	if header.Version < 0 {
		return "", errors.Wrapf(hexfield.ErrEncoding, "negative header version %d",
			header.Version)
	}
	versionField, err := hexfield.EncodeField(uint64(header.Version), versionFieldWidth)
	if err != nil {
		return "", err
	}
	versionField, err = hexfield.ReverseByteOrder(versionField)
	if err != nil {
		return "", err
	}

	prevBlockField, err := hexfield.ReverseByteOrder(header.PrevBlock)
	if err != nil {
		return "", errors.Wrapf(err, "malformed previous block hash %q", header.PrevBlock)
	}
	merkleRootField, err := hexfield.ReverseByteOrder(header.MerkleRoot)
	if err != nil {
		return "", errors.Wrapf(err, "malformed merkle root %q", header.MerkleRoot)
	}

	if header.Timestamp < 0 {
		return "", errors.Wrapf(hexfield.ErrEncoding, "negative header timestamp %d",
			header.Timestamp)
	}
	timestampField, err := hexfield.EncodeField(uint64(header.Timestamp), timestampFieldWidth)
	if err != nil {
		return "", err
	}
	timestampField, err = hexfield.ReverseByteOrder(timestampField)
	if err != nil {
		return "", err
	}

	return versionField + prevBlockField + merkleRootField + timestampField, nil
}

// serializeAttempt appends the byte-order-reversed nonce field to a header
// prefix, yielding the serialized header for a single mining attempt.
func serializeAttempt(prefix string, nonce uint32) (string, error) {
	nonceField, err := hexfield.EncodeField(uint64(nonce), nonceFieldWidth)
	if err != nil {
		return "", err
	}
	nonceField, err = hexfield.ReverseByteOrder(nonceField)
	if err != nil {
		return "", err
	}
	return prefix + nonceField, nil
}

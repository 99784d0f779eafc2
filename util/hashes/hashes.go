// Package hashes provides the hash primitives used for transaction
// identifiers, merkle roots and header mining.
package hashes

import (
	"crypto/sha256"
	"encoding/hex"
)

// DigestSize is the size of a SHA256 digest in bytes.
const DigestSize = sha256.Size

// Sha256 returns the SHA256 digest of the given bytes.
func Sha256(data []byte) [DigestSize]byte {
	return sha256.Sum256(data)
}

// Hash256 returns the double SHA256 digest of the given bytes. Mining hashes
// the serialized header with it per protocol convention.
func Hash256(data []byte) [DigestSize]byte {
	first := sha256.Sum256(data)
	return sha256.Sum256(first[:])
}

// IdentifierHash returns the lowercase hex digest of a single SHA256 over the
// UTF-8 encoding of text. Transaction identifiers and merkle leaves use this
// simplified scheme rather than the protocol-exact double hash of the raw
// transaction bytes.
func IdentifierHash(text string) string {
	digest := sha256.Sum256([]byte(text))
	return hex.EncodeToString(digest[:])
}

// Package hexfield implements the fixed-width hexadecimal field encoding used
// in block header serialization. All byte-order handling lives here so that
// the rest of the codebase only ever sees canonical values.
package hexfield

import (
	"math/big"
	"strings"

	"github.com/pkg/errors"
)

// ErrEncoding identifies a malformed numeric or hexadecimal input to the
// codec. Errors returned from this package wrap it, so callers can detect the
// class with errors.Is.
var ErrEncoding = errors.New("hexfield encoding error")

const hexDigits = "0123456789abcdef"

// EncodeField encodes a non-negative integer into exactly byteWidth*2
// lowercase hexadecimal characters, most-significant byte first. It fails if
// the value does not fit in byteWidth bytes; it never silently truncates.
func EncodeField(value uint64, byteWidth int) (string, error) {
	if byteWidth <= 0 {
		return "", errors.Wrapf(ErrEncoding, "invalid field width %d", byteWidth)
	}
	if byteWidth < 8 && value>>(uint(byteWidth)*8) != 0 {
		return "", errors.Wrapf(ErrEncoding, "value %d overflows a %d-byte field",
			value, byteWidth)
	}

	digits := byteWidth * 2
	buf := make([]byte, digits)
	for i := digits - 1; i >= 0; i-- {
		buf[i] = hexDigits[value&0xf]
		value >>= 4
	}
	return string(buf), nil
}

// ReverseByteOrder reverses the order of byte-pairs in a hexadecimal string,
// e.g. "0a0b0c" becomes "0c0b0a". Individual characters within a pair are not
// swapped. It fails if the input length is odd.
func ReverseByteOrder(hexStr string) (string, error) {
	if len(hexStr)%2 != 0 {
		return "", errors.Wrapf(ErrEncoding, "hex string %q has odd length %d",
			hexStr, len(hexStr))
	}

	buf := make([]byte, len(hexStr))
	for i := 0; i < len(hexStr); i += 2 {
		buf[len(hexStr)-i-2] = hexStr[i]
		buf[len(hexStr)-i-1] = hexStr[i+1]
	}
	return string(buf), nil
}

// HexToBig parses a hexadecimal string into a wide unsigned integer. It is
// used for the 256-bit hash-below-target comparison, where native integer
// types are too narrow.
func HexToBig(hexStr string) (*big.Int, error) {
	if hexStr == "" {
		return nil, errors.Wrap(ErrEncoding, "empty hex string")
	}
	result, ok := new(big.Int).SetString(strings.ToLower(hexStr), 16)
	if !ok || result.Sign() < 0 {
		return nil, errors.Wrapf(ErrEncoding, "cannot parse %q as hexadecimal", hexStr)
	}
	return result, nil
}

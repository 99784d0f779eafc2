package miner

import (
	"context"
	"math/big"
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"

	"github.com/minernet/minerd/wire"
)

// maxTarget is 2^256 - 1, the maximum possible 256-bit value. Every hash is
// strictly below it.
var maxTarget = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))

func testHeader() *wire.BlockHeader {
	return &wire.BlockHeader{
		MerkleRoot: strings.Repeat("00", 31) + "01",
		Nonce:      0,
		PrevBlock:  strings.Repeat("aa", 32),
		Timestamp:  0x5db8c0ff,
		Version:    2,
	}
}

func TestSerializeHeaderPrefix(t *testing.T) {
	prefix, err := SerializeHeaderPrefix(testHeader())
	if err != nil {
		t.Fatalf("SerializeHeaderPrefix: %v", err)
	}

	// version 2 -> "00000002" reversed, the all-"aa" previous block hash is
	// its own reversal, the merkle root's trailing "01" byte moves to the
	// front, and timestamp 0x5db8c0ff -> "5db8c0ff" reversed.
	expected := "02000000" +
		strings.Repeat("aa", 32) +
		"01" + strings.Repeat("00", 31) +
		"ffc0b85d"
	if prefix != expected {
		t.Errorf("SerializeHeaderPrefix: got %s, want %s", prefix, expected)
	}
}

func TestSerializeHeaderPrefixErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(header *wire.BlockHeader)
	}{
		{"negative version", func(h *wire.BlockHeader) { h.Version = -1 }},
		{"odd-length prev block", func(h *wire.BlockHeader) { h.PrevBlock = "abc" }},
		{"odd-length merkle root", func(h *wire.BlockHeader) { h.MerkleRoot = "abc" }},
		{"negative timestamp", func(h *wire.BlockHeader) { h.Timestamp = -1 }},
		{"timestamp beyond 4 bytes", func(h *wire.BlockHeader) { h.Timestamp = 1 << 32 }},
	}

	for _, test := range tests {
		header := testHeader()
		test.mutate(header)
		prefix, err := SerializeHeaderPrefix(header)
		if err == nil {
			t.Errorf("%s: expected an error, got %q", test.name, prefix)
		}
	}
}

func TestSearchRangeMaxTarget(t *testing.T) {
	prefix, err := SerializeHeaderPrefix(testHeader())
	if err != nil {
		t.Fatalf("SerializeHeaderPrefix: %v", err)
	}

	// With the maximum possible target the very first attempt must win.
	result, err := SearchRange(context.Background(), prefix, maxTarget, 0, 10)
	if err != nil {
		t.Fatalf("SearchRange: %v", err)
	}
	if result.Nonce != 0 {
		t.Errorf("SearchRange: got nonce %d, want 0", result.Nonce)
	}
	if expected := prefix + "00000000"; result.HeaderHex != expected {
		t.Errorf("SearchRange: got header %s, want %s", result.HeaderHex, expected)
	}
	if len(result.HashHex) != 64 {
		t.Errorf("SearchRange: got hash %q, want a 64-character hex digest",
			result.HashHex)
	}

	hashValue, ok := new(big.Int).SetString(result.HashHex, 16)
	if !ok {
		t.Fatalf("SearchRange: hash %q isn't hexadecimal", result.HashHex)
	}
	if hashValue.Cmp(maxTarget) >= 0 {
		t.Errorf("SearchRange: hash %s isn't below the target", result.HashHex)
	}
}

func TestSearchRangeZeroTarget(t *testing.T) {
	prefix, err := SerializeHeaderPrefix(testHeader())
	if err != nil {
		t.Fatalf("SerializeHeaderPrefix: %v", err)
	}

	// No hash is strictly below zero, so a bounded range must exhaust.
	_, err = SearchRange(context.Background(), prefix, big.NewInt(0), 0, 1000)
	if !errors.Is(err, ErrNonceSpaceExhausted) {
		t.Errorf("SearchRange: got %v, want ErrNonceSpaceExhausted", err)
	}
}

func TestSearchRangeCancellation(t *testing.T) {
	prefix, err := SerializeHeaderPrefix(testHeader())
	if err != nil {
		t.Fatalf("SerializeHeaderPrefix: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = SearchRange(ctx, prefix, big.NewInt(0), 0, 1<<20)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("SearchRange: got %v, want context.Canceled", err)
	}
}

func TestSearchRangeInvalidRange(t *testing.T) {
	_, err := SearchRange(context.Background(), "", big.NewInt(0), 10, 5)
	if err == nil {
		t.Error("SearchRange: expected an error for an inverted range")
	}
}

func TestSearch(t *testing.T) {
	prefix, err := SerializeHeaderPrefix(testHeader())
	if err != nil {
		t.Fatalf("SerializeHeaderPrefix: %v", err)
	}

	// Every worker's first attempt is below the maximum target; exactly one
	// result must come back.
	result, err := Search(context.Background(), prefix, maxTarget, 4)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if result == nil {
		t.Fatal("Search: got no result")
	}

	// The winning attempt must reproduce through a single-nonce rescan.
	rescanned, err := SearchRange(context.Background(), prefix, maxTarget,
		result.Nonce, result.Nonce)
	if err != nil {
		t.Fatalf("SearchRange: %v", err)
	}
	if rescanned.HashHex != result.HashHex {
		t.Errorf("Search: hash %s doesn't reproduce, rescan found %s",
			result.HashHex, rescanned.HashHex)
	}
}

func TestSearchTimeout(t *testing.T) {
	prefix, err := SerializeHeaderPrefix(testHeader())
	if err != nil {
		t.Fatalf("SerializeHeaderPrefix: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err = Search(ctx, prefix, big.NewInt(0), 2)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Search: got %v, want context.DeadlineExceeded", err)
	}
}

func TestSearchInvalidTarget(t *testing.T) {
	if _, err := Search(context.Background(), "", nil, 1); err == nil {
		t.Error("Search: expected an error for a nil target")
	}
	if _, err := Search(context.Background(), "", big.NewInt(-1), 1); err == nil {
		t.Error("Search: expected an error for a negative target")
	}
}

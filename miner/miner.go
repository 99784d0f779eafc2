// Package miner implements the proof-of-work nonce search: it serializes
// block headers, iterates the 32-bit nonce space across worker goroutines and
// compares each attempt's double-SHA256 digest against the target.
package miner

import (
	"context"
	"encoding/hex"
	"math"
	"math/big"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"

	"github.com/minernet/minerd/util/hashes"
	"github.com/minernet/minerd/util/hexfield"
	"github.com/minernet/minerd/util/panics"
)

// ErrNonceSpaceExhausted identifies a search that scanned its entire nonce
// space without finding a hash below the target. The caller can widen the
// search, e.g. by adjusting the header timestamp, and try again.
var ErrNonceSpaceExhausted = errors.New("nonce space exhausted without a solution")

// cancellationPollInterval is the number of nonces a worker hashes between
// checks of its cancellation signal.
const cancellationPollInterval = 4096

const logHashRateInterval = 10 * time.Second

var hashesTried uint64

// Result is a solved mining attempt.
type Result struct {
	// HeaderHex is the serialized header of the winning attempt: the
	// search prefix with the winning nonce field appended.
	HeaderHex string

	// HashHex is the byte-order-reversed double-SHA256 digest of the
	// winning attempt, the value that was compared against the target.
	HashHex string

	// Nonce is the winning nonce.
	Nonce uint32
}

// Search scans the full 32-bit nonce space for an attempt whose hash,
// interpreted as an unsigned integer, is strictly below the target. The space
// is partitioned into disjoint contiguous ranges, one per worker, with no
// shared mutable state between workers beyond the attempt counter; the first
// worker to find a solution cancels its siblings cooperatively, and at most
// one result is returned.
//
// Terminal outcomes: a Result, ErrNonceSpaceExhausted once every worker has
// scanned its whole range, or the context's error if it is canceled or times
// out first.
func Search(ctx context.Context, prefix string, target *big.Int, numWorkers int) (*Result, error) {
	if target == nil || target.Sign() < 0 {
		return nil, errors.Errorf("invalid mining target %v", target)
	}
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	logHashRate(ctx)

	type searchOutcome struct {
		result *Result
		err    error
	}
	outcomeChan := make(chan searchOutcome, numWorkers)

	rangeSize := (uint64(math.MaxUint32) + 1) / uint64(numWorkers)
	for i := 0; i < numWorkers; i++ {
		firstNonce := uint64(i) * rangeSize
		lastNonce := firstNonce + rangeSize - 1
		if i == numWorkers-1 {
			lastNonce = math.MaxUint32
		}
		spawn("miner.Search-worker", func() {
			result, err := SearchRange(ctx, prefix, target, uint32(firstNonce), uint32(lastNonce))
			outcomeChan <- searchOutcome{result: result, err: err}
		})
	}

	var winner *Result
	var firstErr error
	exhausted := 0
	for i := 0; i < numWorkers; i++ {
		outcome := <-outcomeChan
		switch {
		case outcome.result != nil:
			if winner == nil {
				winner = outcome.result
				cancel()
			}
		case errors.Is(outcome.err, ErrNonceSpaceExhausted):
			exhausted++
		case errors.Is(outcome.err, context.Canceled) && winner != nil:
			// Sibling workers report cancellation once a winner is
			// found. That is the cooperative shutdown, not a failure.
		default:
			if firstErr == nil {
				firstErr = outcome.err
				cancel()
			}
		}
	}

	if winner != nil {
		return winner, nil
	}
	if firstErr != nil {
		return nil, firstErr
	}
	return nil, errors.WithStack(ErrNonceSpaceExhausted)
}

// SearchRange scans nonces in [firstNonce, lastNonce], in order, against the
// target. It owns its nonce counter exclusively; cancellation is only
// observed between attempts. It returns ErrNonceSpaceExhausted when the whole
// range was scanned without a solution.
func SearchRange(ctx context.Context, prefix string, target *big.Int,
	firstNonce uint32, lastNonce uint32) (*Result, error) {

	if firstNonce > lastNonce {
		return nil, errors.Errorf("invalid nonce range [%d, %d]", firstNonce, lastNonce)
	}

	// The loop counter is wider than the nonce so that lastNonce ==
	// MaxUint32 terminates instead of wrapping.
	for nonce := uint64(firstNonce); nonce <= uint64(lastNonce); nonce++ {
		if nonce%cancellationPollInterval == 0 && ctx.Err() != nil {
			return nil, errors.WithStack(ctx.Err())
		}

		attempt, err := serializeAttempt(prefix, uint32(nonce))
		if err != nil {
			return nil, err
		}
		hashHex, err := hashAttempt(attempt)
		if err != nil {
			return nil, err
		}
		atomic.AddUint64(&hashesTried, 1)

		hashValue, err := hexfield.HexToBig(hashHex)
		if err != nil {
			return nil, err
		}
		if hashValue.Cmp(target) < 0 {
			log.Debugf("Found a hash below the target at nonce %d: %s", nonce, hashHex)
			return &Result{
				HeaderHex: attempt,
				HashHex:   hashHex,
				Nonce:     uint32(nonce),
			}, nil
		}
	}

	return nil, errors.WithStack(ErrNonceSpaceExhausted)
}

// hashAttempt double-hashes the raw bytes of a serialized header attempt and
// returns the digest in byte-order-reversed hexadecimal form, ready for the
// target comparison.
func hashAttempt(attempt string) (string, error) {
	rawAttempt, err := hex.DecodeString(attempt)
	if err != nil {
		return "", errors.Wrapf(hexfield.ErrEncoding, "malformed header attempt %q: %s",
			attempt, err)
	}
	digest := hashes.Hash256(rawAttempt)
	return hexfield.ReverseByteOrder(hex.EncodeToString(digest[:]))
}

// logHashRate periodically reports the global attempt rate until the given
// context is canceled.
func logHashRate(ctx context.Context) {
	spawn("miner.logHashRate", func() {
		lastCheck := time.Now()
		lastHashesTried := atomic.LoadUint64(&hashesTried)
		ticker := time.NewTicker(logHashRateInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
			currentHashesTried := atomic.LoadUint64(&hashesTried)
			currentTime := time.Now()
			kiloHashesTried := float64(currentHashesTried-lastHashesTried) / 1000.0
			hashRate := kiloHashesTried / currentTime.Sub(lastCheck).Seconds()
			log.Infof("Current hash rate is %.2f Khash/s", hashRate)
			lastCheck = currentTime
			lastHashesTried = currentHashesTried
		}
	})
}

var spawn = panics.GoroutineWrapperFunc(log)

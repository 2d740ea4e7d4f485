package pow

import (
	"context"
	"errors"
	"fmt"
)

// Variant selects one of the proof-of-work search algorithms. The set is
// closed: anything outside it fails with ErrUnknownVariant rather than
// silently doing nothing.
type Variant string

const (
	// Divisibility scans for a common multiple of the modulus and the
	// predecessor's proof.
	Divisibility Variant = "divisibility"

	// HashPrefix scans for a proof whose block digest starts with a run of
	// zero hex characters.
	HashPrefix Variant = "hashprefix"
)

// Params configures a search. The zero value is not useful; start from
// DefaultParams.
type Params struct {
	// Modulus is the fixed divisor of the divisibility variant.
	Modulus int64

	// Difficulty is the number of leading zero hex characters the
	// hash-prefix variant demands.
	Difficulty int

	// MaxIterations caps the number of candidates either search may try.
	// Zero means unbounded.
	MaxIterations uint64

	// Workers shards the hash-prefix scan across this many goroutines when
	// greater than 1. The sharded scan returns a valid proof, not
	// necessarily the smallest one.
	Workers int
}

// DefaultParams returns the canonical defaults: modulus 99, difficulty 1,
// unbounded single-threaded search.
func DefaultParams() Params {
	return Params{
		Modulus:    99,
		Difficulty: 1,
	}
}

// DigestFunc computes the candidate block's digest for a given proof value.
// The Builder supplies it as a closure over the candidate's identity fields,
// which keeps this package free of ledger types.
type DigestFunc func(proof int64) (string, error)

// Request carries the chain state a search consumes: the predecessor's
// proof for the divisibility variant, the candidate digest for the
// hash-prefix variant.
type Request struct {
	LastProof int64
	Digest    DigestFunc
}

var (
	// ErrUnknownVariant reports an unrecognized variant tag.
	ErrUnknownVariant = errors.New("unknown proof-of-work variant")

	// ErrInvalidParams reports search parameters outside the variant's
	// precondition, such as a non-positive modulus or last proof.
	ErrInvalidParams = errors.New("invalid proof-of-work parameters")

	// ErrSearchExhausted reports a search that hit its iteration cap before
	// finding a proof.
	ErrSearchExhausted = errors.New("proof not found within iteration cap")
)

// Search runs the selected variant and returns the proof it found. The
// context cancels an in-flight search; the search then fails with the
// context's error.
func Search(ctx context.Context, variant Variant, params Params, req Request) (int64, error) {
	switch variant {
	case Divisibility:
		return searchDivisible(ctx, params, req.LastProof)
	case HashPrefix:
		if params.Workers > 1 {
			return searchPrefixParallel(ctx, params, req.Digest)
		}
		return searchPrefix(ctx, params, req.Digest)
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownVariant, variant)
	}
}

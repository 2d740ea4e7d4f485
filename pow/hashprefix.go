package pow

import (
	"context"
	"fmt"
	"strings"
)

// searchPrefix scans proofs from 0 upward, recomputing the candidate digest
// at each step, until the digest starts with the required run of zero hex
// characters. Expected work is exponential in the difficulty, so callers
// running untrusted difficulties should set MaxIterations or a context
// deadline.
func searchPrefix(ctx context.Context, params Params, digest DigestFunc) (int64, error) {
	if digest == nil {
		return 0, fmt.Errorf("%w: hash-prefix search needs a digest function", ErrInvalidParams)
	}
	if params.Difficulty < 0 {
		return 0, fmt.Errorf("%w: difficulty must be non-negative, got %d", ErrInvalidParams, params.Difficulty)
	}

	prefix := strings.Repeat("0", params.Difficulty)

	var attempts uint64
	for p := int64(0); ; p++ {
		select {
		case <-ctx.Done():
			return 0, fmt.Errorf("hash-prefix search canceled after %d attempts: %w", attempts, ctx.Err())
		default:
		}

		attempts++
		if params.MaxIterations > 0 && attempts > params.MaxIterations {
			return 0, fmt.Errorf("%w: hash-prefix search stopped after %d attempts", ErrSearchExhausted, params.MaxIterations)
		}

		d, err := digest(p)
		if err != nil {
			return 0, fmt.Errorf("digest at proof %d failed: %w", p, err)
		}
		if strings.HasPrefix(d, prefix) {
			return p, nil
		}
	}
}

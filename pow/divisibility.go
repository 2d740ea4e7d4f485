package pow

import (
	"context"
	"fmt"
)

// searchDivisible scans upward from lastProof+1 for the smallest p divisible
// by both the modulus and lastProof. Such a p always exists (a common
// multiple of the two), so the scan terminates on its own; the cap and the
// context exist for symmetry with the hash-prefix search.
func searchDivisible(ctx context.Context, params Params, lastProof int64) (int64, error) {
	if lastProof <= 0 {
		return 0, fmt.Errorf("%w: last proof must be positive, got %d", ErrInvalidParams, lastProof)
	}
	if params.Modulus <= 0 {
		return 0, fmt.Errorf("%w: modulus must be positive, got %d", ErrInvalidParams, params.Modulus)
	}

	var attempts uint64
	for p := lastProof + 1; ; p++ {
		select {
		case <-ctx.Done():
			return 0, fmt.Errorf("divisibility search canceled after %d attempts: %w", attempts, ctx.Err())
		default:
		}

		attempts++
		if params.MaxIterations > 0 && attempts > params.MaxIterations {
			return 0, fmt.Errorf("%w: divisibility search stopped after %d attempts", ErrSearchExhausted, params.MaxIterations)
		}

		if p%params.Modulus == 0 && p%lastProof == 0 {
			return p, nil
		}
	}
}

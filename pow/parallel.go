package pow

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// searchPrefixParallel shards the hash-prefix scan across params.Workers
// goroutines, each walking its own residue class of the candidate range.
// The first hit wins and cancels the rest. Because a neighboring shard may
// pass a smaller satisfying proof before the winning shard reports, the
// returned proof is valid but not necessarily minimal. The digest function
// is called concurrently and must be pure.
func searchPrefixParallel(ctx context.Context, params Params, digest DigestFunc) (int64, error) {
	if digest == nil {
		return 0, fmt.Errorf("%w: hash-prefix search needs a digest function", ErrInvalidParams)
	}
	if params.Difficulty < 0 {
		return 0, fmt.Errorf("%w: difficulty must be non-negative, got %d", ErrInvalidParams, params.Difficulty)
	}

	workers := params.Workers
	prefix := strings.Repeat("0", params.Difficulty)
	stride := int64(workers)

	// Split the overall cap across shards.
	var perWorkerCap uint64
	if params.MaxIterations > 0 {
		perWorkerCap = params.MaxIterations / uint64(workers)
		if perWorkerCap == 0 {
			perWorkerCap = 1
		}
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	type outcome struct {
		proof int64
		err   error
	}
	results := make(chan outcome, workers)

	for w := 0; w < workers; w++ {
		go func(start int64) {
			var attempts uint64
			for p := start; ; p += stride {
				select {
				case <-ctx.Done():
					results <- outcome{err: ctx.Err()}
					return
				default:
				}

				attempts++
				if perWorkerCap > 0 && attempts > perWorkerCap {
					results <- outcome{err: ErrSearchExhausted}
					return
				}

				d, err := digest(p)
				if err != nil {
					results <- outcome{err: fmt.Errorf("digest at proof %d failed: %w", p, err)}
					return
				}
				if strings.HasPrefix(d, prefix) {
					results <- outcome{proof: p}
					return
				}
			}
		}(int64(w))
	}

	var firstErr error
	for i := 0; i < workers; i++ {
		out := <-results
		if out.err == nil {
			return out.proof, nil
		}
		if firstErr == nil {
			firstErr = out.err
		}
		// A digest failure is fatal for every shard; stop the others
		// instead of letting unbounded shards spin.
		if !errors.Is(out.err, ErrSearchExhausted) && !errors.Is(out.err, context.Canceled) {
			cancel()
		}
	}

	if errors.Is(firstErr, ErrSearchExhausted) {
		return 0, fmt.Errorf("%w: parallel hash-prefix search stopped after %d attempts", ErrSearchExhausted, params.MaxIterations)
	}
	return 0, firstErr
}

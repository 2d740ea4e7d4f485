package ledger

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luca-patrignani/ledgerlab/pow"
)

func TestChainAccessors(t *testing.T) {
	b := NewBuilder(WithClock(testClock))
	chain, err := b.BuildChain(context.Background(), payloads("a", "b", "c"), pow.Divisibility, pow.DefaultParams())
	require.NoError(t, err)

	assert.Equal(t, 3, chain.Len())
	assert.Equal(t, uint64(3), chain.Tip().Index)

	block, err := chain.ByIndex(2)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), block.Index)

	_, err = chain.ByIndex(0)
	assert.Error(t, err)
	_, err = chain.ByIndex(4)
	assert.Error(t, err)
}

func TestBlocksReturnsACopy(t *testing.T) {
	b := NewBuilder(WithClock(testClock))
	chain, err := b.BuildChain(context.Background(), payloads("a", "b"), pow.Divisibility, pow.DefaultParams())
	require.NoError(t, err)

	snapshot := chain.Blocks()
	snapshot[1].Hash = "forged"

	assert.NotEqual(t, "forged", chain.Tip().Hash)
	assert.True(t, NewValidator().Validate(chain).Valid())
}

func TestReadersNeverSeePartialAppends(t *testing.T) {
	b := NewBuilder(WithClock(testClock))
	v := NewValidator()

	// The divisibility proofs double with every block, so deep test chains
	// use the hash-prefix variant, whose cost does not grow with depth.
	params := pow.Params{Difficulty: 1}
	chain, err := b.BuildChain(context.Background(), payloads("a"), pow.HashPrefix, params)
	require.NoError(t, err)

	var wg sync.WaitGroup
	stop := make(chan struct{})

	// Concurrent readers: every snapshot they take must be a valid chain,
	// whatever the writer is doing.
	for r := 0; r < 4; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
				}
				result := v.ValidateBlocks(chain.Blocks())
				if !result.Valid() {
					t.Errorf("reader observed an invalid snapshot: %v", result.Failures)
					return
				}
			}
		}()
	}

	// Single writer appending extensions of several blocks at a time.
	for i := 0; i < 10; i++ {
		err := b.AppendMany(context.Background(), chain, 3, payloads("x", "y", "z"), pow.HashPrefix, params)
		require.NoError(t, err)
	}
	close(stop)
	wg.Wait()

	assert.Equal(t, 31, chain.Len())
	assert.True(t, v.Validate(chain).Valid())
}

package ledger

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luca-patrignani/ledgerlab/pow"
)

var testClock = FixedClock{T: time.Unix(1700000000, 0)}

func payloads(values ...string) []Payload {
	out := make([]Payload, len(values))
	for i, v := range values {
		out[i] = JSON(v)
	}
	return out
}

func TestGenesisInvariants(t *testing.T) {
	b := NewBuilder(WithClock(testClock))

	genesis, err := b.Genesis(JSON("seed"))
	require.NoError(t, err)

	assert.Equal(t, uint64(1), genesis.Index)
	assert.Equal(t, SentinelPrevHash, genesis.PrevHash)
	assert.Equal(t, GenesisProof, genesis.Proof)
	assert.Equal(t, testClock.T.Unix(), genesis.Timestamp)

	expected, err := Hasher{}.BlockDigest(genesis)
	require.NoError(t, err)
	assert.Equal(t, expected, genesis.Hash)

	// Same clock, same payload: the sealed hash is reproducible.
	again, err := b.Genesis(JSON("seed"))
	require.NoError(t, err)
	assert.Equal(t, genesis.Hash, again.Hash)
}

func TestGenesisRejectsUnencodablePayload(t *testing.T) {
	b := NewBuilder(WithClock(testClock))

	_, err := b.Genesis(JSON(make(chan int)))
	assert.ErrorIs(t, err, ErrPayloadEncoding)
}

func TestExtendLinksToTail(t *testing.T) {
	b := NewBuilder(WithClock(testClock))

	genesis, err := b.Genesis(JSON("a"))
	require.NoError(t, err)

	next, err := b.Extend(context.Background(), genesis, JSON("b"), pow.Divisibility, pow.DefaultParams())
	require.NoError(t, err)

	assert.Equal(t, genesis.Index+1, next.Index)
	assert.Equal(t, genesis.Hash, next.PrevHash)

	// Genesis proof is 1, so the search returns the smallest multiple of
	// the modulus above 1.
	assert.Equal(t, int64(99), next.Proof)

	expected, err := Hasher{}.BlockDigest(next)
	require.NoError(t, err)
	assert.Equal(t, expected, next.Hash)
}

func TestBuildChainIsValid(t *testing.T) {
	b := NewBuilder(WithClock(testClock))
	v := NewValidator()

	for _, variant := range []pow.Variant{pow.Divisibility, pow.HashPrefix} {
		chain, err := b.BuildChain(context.Background(), payloads("a", "b", "c", "d"), variant, pow.DefaultParams())
		require.NoError(t, err, "variant %s", variant)
		require.Equal(t, 4, chain.Len())

		result := v.Validate(chain)
		assert.True(t, result.Valid(), "variant %s: %v", variant, result.Failures)
	}
}

func TestBuildChainEmptyPayloads(t *testing.T) {
	b := NewBuilder(WithClock(testClock))

	_, err := b.BuildChain(context.Background(), nil, pow.Divisibility, pow.DefaultParams())
	assert.ErrorIs(t, err, ErrEmptyPayloads)
}

func TestAppendManyArityMismatch(t *testing.T) {
	b := NewBuilder(WithClock(testClock))

	chain, err := b.BuildChain(context.Background(), payloads("a"), pow.Divisibility, pow.DefaultParams())
	require.NoError(t, err)

	err = b.AppendMany(context.Background(), chain, 3, payloads("b", "c"), pow.Divisibility, pow.DefaultParams())
	assert.ErrorIs(t, err, ErrArityMismatch)
	assert.Equal(t, 1, chain.Len(), "nothing may be appended on failure")
}

func TestAppendManyRejectsNegativeCount(t *testing.T) {
	b := NewBuilder(WithClock(testClock))

	chain, err := b.BuildChain(context.Background(), payloads("a"), pow.Divisibility, pow.DefaultParams())
	require.NoError(t, err)

	err = b.AppendMany(context.Background(), chain, -1, payloads("b"), pow.Divisibility, pow.DefaultParams())
	assert.ErrorIs(t, err, ErrArityMismatch)
	assert.Equal(t, 1, chain.Len())
}

func TestAppendManyIsAtomic(t *testing.T) {
	b := NewBuilder(WithClock(testClock))

	chain, err := b.BuildChain(context.Background(), payloads("a"), pow.Divisibility, pow.DefaultParams())
	require.NoError(t, err)

	// The middle payload cannot be encoded, so the whole extension must be
	// rejected without appending the block built before it.
	bad := []Payload{JSON("b"), JSON(make(chan int)), JSON("d")}
	err = b.AppendMany(context.Background(), chain, 3, bad, pow.Divisibility, pow.DefaultParams())
	require.ErrorIs(t, err, ErrPayloadEncoding)
	assert.Equal(t, 1, chain.Len())
}

func TestAppendManyComposesLikeBuildChain(t *testing.T) {
	b := NewBuilder(WithClock(testClock))

	direct, err := b.BuildChain(context.Background(), payloads("a", "b", "c"), pow.Divisibility, pow.DefaultParams())
	require.NoError(t, err)

	composed, err := b.BuildChain(context.Background(), payloads("a"), pow.Divisibility, pow.DefaultParams())
	require.NoError(t, err)
	err = b.AppendMany(context.Background(), composed, 2, payloads("b", "c"), pow.Divisibility, pow.DefaultParams())
	require.NoError(t, err)

	want := direct.Blocks()
	got := composed.Blocks()
	require.Len(t, got, len(want))

	// Under a fixed clock the two constructions agree on every field.
	for i := range want {
		assert.Equal(t, want[i].Index, got[i].Index)
		assert.Equal(t, want[i].Proof, got[i].Proof)
		assert.Equal(t, want[i].PrevHash, got[i].PrevHash)
		assert.Equal(t, want[i].Hash, got[i].Hash)
	}
}

func TestHashPrefixSealedHashMeetsTarget(t *testing.T) {
	b := NewBuilder(WithClock(testClock))
	params := pow.Params{Difficulty: 1}

	chain, err := b.BuildChain(context.Background(), payloads("a", "b", "c"), pow.HashPrefix, params)
	require.NoError(t, err)

	// The proof is part of the sealed field set, so every mined block's
	// stored hash carries the difficulty prefix the search satisfied.
	for _, block := range chain.Blocks()[1:] {
		assert.True(t, strings.HasPrefix(block.Hash, "0"),
			"block %d hash %s should start with 0", block.Index, block.Hash)
	}
}

func TestExtendPropagatesSearchErrors(t *testing.T) {
	b := NewBuilder(WithClock(testClock))

	genesis, err := b.Genesis(JSON("a"))
	require.NoError(t, err)

	_, err = b.Extend(context.Background(), genesis, JSON("b"), pow.Variant("guesswork"), pow.DefaultParams())
	assert.ErrorIs(t, err, pow.ErrUnknownVariant)

	capped := pow.Params{Difficulty: 64, MaxIterations: 10}
	_, err = b.Extend(context.Background(), genesis, JSON("b"), pow.HashPrefix, capped)
	assert.ErrorIs(t, err, pow.ErrSearchExhausted)
}

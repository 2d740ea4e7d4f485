package ledger

import (
	"context"
	"fmt"

	"github.com/luca-patrignani/ledgerlab/pow"
)

// Builder constructs genesis blocks and extends chains. Every block it
// produces is sealed by the Hasher before it becomes visible to anyone, and
// every non-genesis block is gated by a proof-of-work search.
type Builder struct {
	hasher Hasher
	clock  Clock
}

type builderOption func(Builder) Builder

// NewBuilder creates a Builder reading the system clock unless overridden
// through options.
func NewBuilder(opts ...builderOption) Builder {
	b := Builder{
		hasher: Hasher{},
		clock:  SystemClock{},
	}
	for _, opt := range opts {
		b = opt(b)
	}
	return b
}

// WithClock substitutes the clock used to timestamp new blocks.
func WithClock(c Clock) builderOption {
	return func(b Builder) Builder {
		b.clock = c
		return b
	}
}

// Genesis constructs the first block of a chain: index 1, sentinel previous
// hash, the fixed genesis proof, sealed by the Hasher.
func (b Builder) Genesis(payload Payload) (Block, error) {
	block := Block{
		Index:     1,
		Timestamp: b.clock.Now().Unix(),
		Payload:   payload,
		PrevHash:  SentinelPrevHash,
		Proof:     GenesisProof,
	}

	hash, err := b.hasher.BlockDigest(block)
	if err != nil {
		return Block{}, fmt.Errorf("failed to seal genesis block: %w", err)
	}
	block.Hash = hash

	return block, nil
}

// Extend constructs the successor of tail: it assembles the candidate block,
// runs the selected proof-of-work search over it, then seals it. For the
// divisibility variant the search consumes the tail's proof; for the
// hash-prefix variant it consumes the candidate's own digest, so the sealed
// hash is the digest that satisfied the difficulty target.
func (b Builder) Extend(ctx context.Context, tail Block, payload Payload, variant pow.Variant, params pow.Params) (Block, error) {
	block := Block{
		Index:     tail.Index + 1,
		Timestamp: b.clock.Now().Unix(),
		Payload:   payload,
		PrevHash:  tail.Hash,
	}

	proof, err := pow.Search(ctx, variant, params, pow.Request{
		LastProof: tail.Proof,
		Digest: func(proof int64) (string, error) {
			return b.hasher.Digest(block.Index, block.Timestamp, block.Payload, block.PrevHash, proof)
		},
	})
	if err != nil {
		return Block{}, fmt.Errorf("proof search for block %d failed: %w", block.Index, err)
	}
	block.Proof = proof

	hash, err := b.hasher.BlockDigest(block)
	if err != nil {
		return Block{}, fmt.Errorf("failed to seal block %d: %w", block.Index, err)
	}
	block.Hash = hash

	return block, nil
}

// AppendMany extends the chain by count blocks consuming payloads in order,
// threading each new block forward as the next tail. The extension is
// fail-fast and atomic: the blocks are built off the current tip first and
// published in a single append, so on any error nothing is appended. Fails
// with ErrArityMismatch when count is negative or exceeds the number of
// supplied payloads.
func (b Builder) AppendMany(ctx context.Context, chain *Chain, count int, payloads []Payload, variant pow.Variant, params pow.Params) error {
	if count < 0 || count > len(payloads) {
		return fmt.Errorf("%w: want %d blocks, have %d payloads", ErrArityMismatch, count, len(payloads))
	}

	tail := chain.Tip()
	built := make([]Block, 0, count)
	for _, payload := range payloads[:count] {
		block, err := b.Extend(ctx, tail, payload, variant, params)
		if err != nil {
			return err
		}
		built = append(built, block)
		tail = block
	}

	chain.publish(built)
	return nil
}

// BuildChain builds a complete chain: a genesis block from the first payload
// followed by one block per remaining payload. Fails with ErrEmptyPayloads
// when there is no data to seed the chain.
func (b Builder) BuildChain(ctx context.Context, payloads []Payload, variant pow.Variant, params pow.Params) (*Chain, error) {
	if len(payloads) == 0 {
		return nil, ErrEmptyPayloads
	}

	genesis, err := b.Genesis(payloads[0])
	if err != nil {
		return nil, err
	}

	chain := NewChain(genesis)
	rest := payloads[1:]
	if err := b.AppendMany(ctx, chain, len(rest), rest, variant, params); err != nil {
		return nil, err
	}
	return chain, nil
}

package ledger

import "fmt"

// FailureKind classifies a single integrity violation found by the
// Validator.
type FailureKind int

const (
	// FailureGenesis marks a chain whose root is malformed: empty chain,
	// first index not 1, or previous hash not the sentinel.
	FailureGenesis FailureKind = iota

	// FailureIndex marks a block whose index breaks the 1-based sequence.
	FailureIndex

	// FailureHash marks a block whose stored hash does not match the digest
	// recomputed from its identity fields.
	FailureHash

	// FailureLink marks a block whose previous-hash field does not match
	// its predecessor's hash.
	FailureLink
)

func (k FailureKind) String() string {
	switch k {
	case FailureGenesis:
		return "genesis violation"
	case FailureIndex:
		return "index discontinuity"
	case FailureHash:
		return "hash mismatch"
	case FailureLink:
		return "link mismatch"
	default:
		return "unknown failure"
	}
}

// Failure pinpoints one integrity violation.
type Failure struct {
	Kind FailureKind

	// Index is the 1-based chain index of the offending block. For link
	// failures it names the later block of the broken pair. Zero for an
	// empty chain.
	Index uint64

	// Detail describes the violation in human-readable form.
	Detail string
}

func (f Failure) String() string {
	return fmt.Sprintf("block %d: %s: %s", f.Index, f.Kind, f.Detail)
}

// ValidationResult reports the outcome of validating a chain: success, or
// every violation found, in index order. A result is deliberately richer
// than a bare boolean so callers can locate the damage.
type ValidationResult struct {
	Failures []Failure
}

// Valid reports whether no violations were found.
func (r ValidationResult) Valid() bool {
	return len(r.Failures) == 0
}

// First returns the first violation in index order, if any.
func (r ValidationResult) First() (Failure, bool) {
	if len(r.Failures) == 0 {
		return Failure{}, false
	}
	return r.Failures[0], true
}

// Validator certifies a chain's integrity by re-deriving every block's
// digest and re-checking the link structure. It must reproduce exactly what
// construction does, so it shares the Builder's Hasher.
type Validator struct {
	hasher Hasher
}

// NewValidator creates a Validator.
func NewValidator() Validator {
	return Validator{hasher: Hasher{}}
}

// Validate checks the whole chain and reports all violations. It never
// fails structurally: a payload that can no longer be encoded is itself a
// hash violation, since the stored digest cannot be reproduced.
func (v Validator) Validate(chain *Chain) ValidationResult {
	return v.ValidateBlocks(chain.Blocks())
}

// ValidateBlocks checks an explicit block sequence. The checks are:
//
//  1. The first block is a well-formed genesis (index 1, sentinel previous
//     hash).
//  2. Every block's index is strictly sequential.
//  3. Every block's stored hash equals the digest recomputed from its
//     identity fields, the stored hash itself excluded.
//  4. Every adjacent pair links correctly: the later block's previous-hash
//     field equals the earlier block's hash. Every pair is checked; a
//     matching pair never short-circuits the rest of the walk.
func (v Validator) ValidateBlocks(blocks []Block) ValidationResult {
	var result ValidationResult

	if len(blocks) == 0 {
		result.Failures = append(result.Failures, Failure{
			Kind:   FailureGenesis,
			Detail: "empty chain",
		})
		return result
	}

	if blocks[0].Index != 1 {
		result.Failures = append(result.Failures, Failure{
			Kind:   FailureGenesis,
			Index:  blocks[0].Index,
			Detail: fmt.Sprintf("first block has index %d, want 1", blocks[0].Index),
		})
	}
	if blocks[0].PrevHash != SentinelPrevHash {
		result.Failures = append(result.Failures, Failure{
			Kind:   FailureGenesis,
			Index:  blocks[0].Index,
			Detail: fmt.Sprintf("genesis previous hash is %q, want %q", blocks[0].PrevHash, SentinelPrevHash),
		})
	}

	for i, block := range blocks {
		if i > 0 && block.Index != blocks[i-1].Index+1 {
			result.Failures = append(result.Failures, Failure{
				Kind:   FailureIndex,
				Index:  block.Index,
				Detail: fmt.Sprintf("index %d follows %d", block.Index, blocks[i-1].Index),
			})
		}

		expected, err := v.hasher.BlockDigest(block)
		if err != nil {
			result.Failures = append(result.Failures, Failure{
				Kind:   FailureHash,
				Index:  block.Index,
				Detail: fmt.Sprintf("digest not reproducible: %v", err),
			})
		} else if expected != block.Hash {
			result.Failures = append(result.Failures, Failure{
				Kind:   FailureHash,
				Index:  block.Index,
				Detail: fmt.Sprintf("stored hash %s, recomputed %s", block.Hash, expected),
			})
		}

		if i > 0 && block.PrevHash != blocks[i-1].Hash {
			result.Failures = append(result.Failures, Failure{
				Kind:   FailureLink,
				Index:  block.Index,
				Detail: fmt.Sprintf("previous hash %s does not match block %d hash %s", block.PrevHash, blocks[i-1].Index, blocks[i-1].Hash),
			})
		}
	}

	return result
}

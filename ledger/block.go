package ledger

// SentinelPrevHash is the fixed placeholder stored in the genesis block's
// PrevHash field, since the genesis block has no real predecessor.
const SentinelPrevHash = "0"

// GenesisProof is the fixed proof stored in the genesis block. There is no
// predecessor to gate against, so no search is performed.
const GenesisProof int64 = 1

// Block is one immutable record of the ledger. A Block is created exactly
// once by a Builder and never mutated afterwards; its Hash seals every other
// field except itself.
//
// The JSON encoding of a Block is the natural persistence form of the
// ledger: an ordered sequence of these records round-trips the chain.
type Block struct {
	// Index is the 1-based position of the block in the chain.
	Index uint64 `json:"index"`

	// Timestamp is the Unix-seconds construction time, captured from the
	// Builder's Clock.
	Timestamp int64 `json:"timestamp"`

	// Payload is the opaque caller-supplied data. The ledger never
	// interprets it beyond canonical serialization for hashing.
	Payload Payload `json:"payload"`

	// PrevHash is the predecessor's Hash, or SentinelPrevHash for genesis.
	PrevHash string `json:"previous_hash"`

	// Proof is the integer produced by the proof-of-work search that gated
	// this block's creation (GenesisProof for the genesis block).
	Proof int64 `json:"proof"`

	// Hash is the hex-encoded SHA-256 digest sealing the block, computed
	// over all fields above.
	Hash string `json:"hash"`
}

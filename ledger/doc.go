// Package ledger implements a local, single-writer hash-linked ledger: an
// append-only sequence of immutable blocks, each sealed by a SHA-256 digest
// and bound to its predecessor by that predecessor's digest. Extending the
// chain is gated by a deliberately costly proof-of-work search provided by
// the pow package.
//
// # Core Components
//
// Block: One immutable record, identified by its sequential index and sealed
// by its own hash. The genesis block carries the fixed sentinel previous
// hash "0" and the fixed proof 1.
//
// Chain: The append-only, mutex-guarded sequence of blocks rooted at the
// genesis block. A single writer appends; concurrent readers always observe
// either the pre-append or the post-append chain, never a partial extension.
//
// Hasher: Deterministic digest over a block's identity fields (index,
// timestamp, canonical payload bytes, previous hash, proof). Hash equality
// is meaningful across reconstructions because payload serialization is
// canonical.
//
// Builder: Creates genesis blocks and appends new blocks, threading each new
// block forward as the next tail and invoking the selected proof-of-work
// variant before sealing.
//
// Validator: Re-derives every block's expected digest and checks the link
// structure of every adjacent pair, reporting all violations in index order
// rather than stopping at the first one found.
//
// # Security Properties
//
// The ledger provides:
//   - Immutability: Once sealed, blocks are never modified in place
//   - Verifiability: Anyone holding the chain can re-derive every digest
//   - Tamper detection: Any modification breaks the hash chain
//
// # Determinism
//
// The construction timestamp comes from an injectable Clock, so tests can
// pin time and assert exact digest values.
package ledger

// Package pow implements the proof-of-work searches gating ledger
// extension. Two interchangeable variants exist, selected by an explicit
// tag:
//
// Divisibility: the smallest integer p greater than the predecessor's proof
// such that p is divisible by both a fixed modulus and the predecessor's
// proof. A deliberate throttle, not a security mechanism.
//
// HashPrefix: the smallest integer p such that the candidate block's digest,
// computed over its full identity including p, begins with a configurable
// number of zero hex characters. Expected work grows exponentially with the
// difficulty.
//
// Both searches are pure functions of their inputs. They honor context
// cancellation and an optional iteration cap, so production callers never
// loop unbounded. Because the searches are pure, the hash-prefix scan can
// optionally be sharded across workers, racing the shards and keeping the
// first hit.
package pow

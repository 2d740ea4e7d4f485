package ledger

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Hasher computes the hex-encoded SHA-256 digest sealing a block. The digest
// covers the block's full identity: index, timestamp, canonical payload
// bytes, previous hash and proof, joined in that fixed order by a delimited,
// length-prefixed encoding so distinct field tuples never share a preimage.
// The
// proof is part of the sealed field set for both proof-of-work variants, so
// a hash-prefix block's stored hash is exactly the digest that satisfied the
// difficulty target during the search.
type Hasher struct{}

// Digest computes the digest over explicit identity fields. Identical
// logical inputs always yield identical output; a payload with no canonical
// encoding fails with ErrPayloadEncoding.
func (Hasher) Digest(index uint64, timestamp int64, payload Payload, prevHash string, proof int64) (string, error) {
	if payload == nil {
		return "", fmt.Errorf("failed to encode payload for hashing: %w: payload is nil", ErrPayloadEncoding)
	}
	payloadBytes, err := payload.CanonicalBytes()
	if err != nil {
		return "", fmt.Errorf("failed to encode payload for hashing: %w", err)
	}

	// The fixed delimiter keeps adjacent numeric fields from bleeding into
	// each other in the preimage (index 1/timestamp 23 vs index
	// 12/timestamp 3), and the payload length pins the boundary of the one
	// field that may itself contain the delimiter.
	data := fmt.Sprintf("%d|%d|%d|%s|%s|%d",
		index,
		timestamp,
		len(payloadBytes),
		payloadBytes,
		prevHash,
		proof,
	)

	sum := sha256.Sum256([]byte(data))
	return hex.EncodeToString(sum[:]), nil
}

// BlockDigest recomputes the digest of a sealed block from its identity
// fields, ignoring the stored Hash.
func (h Hasher) BlockDigest(b Block) (string, error) {
	return h.Digest(b.Index, b.Timestamp, b.Payload, b.PrevHash, b.Proof)
}

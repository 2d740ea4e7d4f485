package ledger

import (
	"encoding/json"
	"fmt"
)

// Payload is the opaque data attached to a block. The ledger requires a
// single capability of it: a canonical byte encoding, so that a payload of a
// given logical value always hashes identically regardless of its runtime
// representation. Cross-reconstruction hash agreement depends entirely on
// this contract.
type Payload interface {
	// CanonicalBytes returns the canonical serialized form of the payload.
	// Equal logical values must return equal byte sequences.
	CanonicalBytes() ([]byte, error)
}

// JSONValue wraps an arbitrary Go value as a Payload using encoding/json as
// the canonical encoding. Struct fields marshal in declaration order and map
// keys are sorted by the encoder, so equal values yield equal bytes.
type JSONValue struct {
	Value any
}

// JSON is a convenience constructor for JSONValue payloads.
func JSON(v any) JSONValue {
	return JSONValue{Value: v}
}

// CanonicalBytes returns the JSON encoding of the wrapped value. It fails
// with ErrPayloadEncoding for values encoding/json cannot represent, such as
// channels or cyclic structures.
func (p JSONValue) CanonicalBytes() ([]byte, error) {
	b, err := json.Marshal(p.Value)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPayloadEncoding, err)
	}
	return b, nil
}

// MarshalJSON makes the block's persistence form embed the payload as the
// same JSON used for hashing.
func (p JSONValue) MarshalJSON() ([]byte, error) {
	return p.CanonicalBytes()
}

// Raw is a pre-encoded payload passed through untouched. Canonicality is the
// caller's responsibility: two Raw payloads hash equal only if their bytes
// are equal.
type Raw []byte

// CanonicalBytes returns the bytes as supplied.
func (p Raw) CanonicalBytes() ([]byte, error) {
	return []byte(p), nil
}

// MarshalJSON encodes the raw bytes as a JSON string.
func (p Raw) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(p))
}

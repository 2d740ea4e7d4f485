package ledger

import "errors"

var (
	// ErrPayloadEncoding reports a payload that has no canonical byte
	// encoding and therefore cannot be hashed.
	ErrPayloadEncoding = errors.New("payload cannot be canonically encoded")

	// ErrEmptyPayloads reports an attempt to build a chain from no data.
	ErrEmptyPayloads = errors.New("no payloads to seed a chain")

	// ErrArityMismatch reports a requested block count exceeding the number
	// of supplied payloads.
	ErrArityMismatch = errors.New("requested block count exceeds supplied payloads")
)

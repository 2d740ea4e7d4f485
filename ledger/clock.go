package ledger

import "time"

// Clock supplies the construction timestamp for new blocks. Injecting it
// keeps block hashes reproducible under test: a fixed clock makes the whole
// digest deterministic.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// FixedClock always reports the same instant. Useful for golden-hash tests.
type FixedClock struct {
	T time.Time
}

func (c FixedClock) Now() time.Time { return c.T }

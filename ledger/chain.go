package ledger

import (
	"fmt"
	"sync"
)

// Chain maintains the append-only sequence of blocks rooted at the genesis
// block. A single writer extends it through a Builder; any number of readers
// may observe it concurrently and will see either the pre-append or the
// post-append chain, never a partially published extension.
type Chain struct {
	mu     sync.RWMutex // Protects concurrent access to blocks
	blocks []Block
}

// NewChain creates a chain containing only the given genesis block.
func NewChain(genesis Block) *Chain {
	return &Chain{
		blocks: []Block{genesis},
	}
}

// Tip returns the most recently appended block.
func (c *Chain) Tip() Block {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.blocks[len(c.blocks)-1]
}

// Len returns the number of blocks in the chain.
func (c *Chain) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.blocks)
}

// Blocks returns a copy of the current block sequence.
func (c *Chain) Blocks() []Block {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]Block, len(c.blocks))
	copy(out, c.blocks)
	return out
}

// ByIndex retrieves a block by its 1-based chain index. Returns an error if
// the index is out of range.
func (c *Chain) ByIndex(index uint64) (Block, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if index < 1 || index > uint64(len(c.blocks)) {
		return Block{}, fmt.Errorf("index %d out of range [1, %d]", index, len(c.blocks))
	}
	return c.blocks[index-1], nil
}

// publish appends fully constructed blocks under a single lock acquisition,
// so an extension of several blocks is atomic from a reader's perspective.
func (c *Chain) publish(blocks []Block) {
	if len(blocks) == 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	c.blocks = append(c.blocks, blocks...)
}

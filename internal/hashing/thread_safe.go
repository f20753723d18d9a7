package hashing

import (
	"sync"

	"github.com/lgbarn/hourglass/internal/chess"
)

type nodeKey struct {
	key   uint64
	depth int
}

// NodeCache remembers subtree node counts by position and depth. It is safe
// for concurrent use by several perft workers.
type NodeCache struct {
	mu          sync.RWMutex
	entries     map[nodeKey]uint64
	maxCapacity int
}

// NewNodeCache creates a cache. maxCapacity of 0 means unlimited capacity.
func NewNodeCache(maxCapacity int) *NodeCache {
	return &NodeCache{
		entries:     make(map[nodeKey]uint64),
		maxCapacity: maxCapacity,
	}
}

// Get returns the cached count for pos at depth.
func (c *NodeCache) Get(pos *chess.Position, depth int) (uint64, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	nodes, ok := c.entries[nodeKey{Key(pos), depth}]
	return nodes, ok
}

// Put stores a count. Once the cache is full new entries are dropped.
func (c *NodeCache) Put(pos *chess.Position, depth int, nodes uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.maxCapacity > 0 && len(c.entries) >= c.maxCapacity {
		return
	}
	c.entries[nodeKey{Key(pos), depth}] = nodes
}

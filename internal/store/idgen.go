package store

import (
	"fmt"
	"sync"
)

// idGenerator issues per-prefix monotonic ids ("LEAVE-000007"). The
// counter scheme replaces timestamp-based ids, which collide under
// rapid sequential calls.
type idGenerator struct {
	mu       sync.Mutex
	counters map[string]uint64
}

func newIDGenerator() *idGenerator {
	return &idGenerator{counters: make(map[string]uint64)}
}

// Next returns the next id for the prefix
func (g *idGenerator) Next(prefix string) string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.counters[prefix]++
	return fmt.Sprintf("%s-%06d", prefix, g.counters[prefix])
}

// Reserve advances the prefix counter past n so that seeded fixed ids
// never collide with generated ones.
func (g *idGenerator) Reserve(prefix string, n uint64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.counters[prefix] < n {
		g.counters[prefix] = n
	}
}

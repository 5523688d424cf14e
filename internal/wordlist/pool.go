package wordlist

import "github.com/shinji-kodama/humanizer/internal/mutate"

// Pool is the ordered, append-only collection of generated passwords of a
// run. Whether it survives from one keyword to the next is decided by the
// generator's model.PoolPolicy, not by the pool itself.
type Pool struct {
	entries []string
}

// NewPool creates an empty Pool.
func NewPool() *Pool {
	return &Pool{}
}

// AddVariation injects every token into variation and appends the results.
func (p *Pool) AddVariation(variation string, tokens []string) {
	p.entries = mutate.InjectAll(p.entries, variation, tokens)
}

// Entries returns the pool content in insertion order. The slice is shared
// with the pool and must not be modified.
func (p *Pool) Entries() []string {
	return p.entries
}

// Len returns the number of entries currently in the pool.
func (p *Pool) Len() int {
	return len(p.entries)
}

// Reset empties the pool, keeping its capacity for the next keyword.
func (p *Pool) Reset() {
	clear(p.entries)
	p.entries = p.entries[:0]
}

// Package migrate implements cross-population transfer: a bounded port
// that chromosomes are pushed into by one population and drained from by
// another, plus the migration/adoption operators that wrap a selection
// and a replacement op around that port. This generalizes the teacher's
// channel-handshake hand-off — gen.population.Cross selects the best
// genome of a random suitor population and sends it over an unbuffered
// inject channel, and diffusion.graph.Cross does the same into a random
// node's valuec channel — into a population-size-independent buffer that
// does not require the sending and receiving populations to rendezvous
// goroutine-for-goroutine.
package migrate

import (
	"sync"

	"github.com/kataklinger/galex"
)

// Port is a bounded, atomically-filled, single-writer/multi-reader buffer
// of chromosomes in transit between populations. Pushing past capacity
// drops the oldest entry, since a migration port models a FIFO staging
// area rather than a queue whose producer must block on back-pressure.
type Port struct {
	mu       sync.Mutex
	capacity int
	buf      []*galex.ChromosomeStorage
}

// NewPort creates a Port with the given capacity. Panics if capacity is
// not positive, since a zero-capacity port can never hand anything off.
func NewPort(capacity int) *Port {
	if capacity <= 0 {
		panic("migrate: port capacity must be positive")
	}
	return &Port{capacity: capacity}
}

// Push appends cs to the port, evicting the oldest entry first if the
// port is already at capacity.
func (p *Port) Push(cs *galex.ChromosomeStorage) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.buf) >= p.capacity {
		p.buf = p.buf[1:]
	}
	p.buf = append(p.buf, cs)
}

// Drain removes and returns every chromosome currently in the port,
// leaving it empty.
func (p *Port) Drain() []*galex.ChromosomeStorage {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := p.buf
	p.buf = nil
	return out
}

// Len reports the number of chromosomes currently held in the port.
func (p *Port) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.buf)
}

// Capacity reports the port's configured capacity.
func (p *Port) Capacity() int { return p.capacity }

// Clear empties the port without returning its contents, used to reset
// staging state after a failed generation per the module's error
// propagation rule.
func (p *Port) Clear() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.buf = nil
}

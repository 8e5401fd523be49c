// Package scratch provides pooled per-slot state for batched accumulation.
// Accumulators are recycled through a sync.Pool and track which target slots
// have already been seeded with a bitset.
package scratch

import (
	"sync"

	"github.com/bits-and-blooms/bitset"

	"github.com/hupe1980/valgebra/blend"
)

const (
	// DefaultSlots is the initial capacity of a fresh accumulator.
	DefaultSlots = 1024

	// maxRetainedSlots bounds what Put keeps alive.
	maxRetainedSlots = DefaultSlots * 64
)

// Accumulator holds the running stats of every target slot of one batched
// accumulation.
type Accumulator struct {
	Stats  []blend.Stats
	Seeded *bitset.BitSet
}

var accumulatorPool = sync.Pool{
	New: func() any {
		return &Accumulator{
			Stats:  make([]blend.Stats, 0, DefaultSlots),
			Seeded: bitset.New(DefaultSlots),
		}
	},
}

// Get returns a cleared accumulator sized for n slots.
func Get(n int) *Accumulator {
	acc := accumulatorPool.Get().(*Accumulator)
	acc.Reset(n)
	return acc
}

// Put returns acc to the pool. Oversized accumulators are dropped.
func Put(acc *Accumulator) {
	if acc == nil || cap(acc.Stats) > maxRetainedSlots {
		return
	}
	accumulatorPool.Put(acc)
}

// Reset clears every slot and resizes the accumulator to n slots. The
// seeded bitset is sized up front so that concurrent Seed calls on slots
// in different 64-bit words never reallocate it.
func (a *Accumulator) Reset(n int) {
	if cap(a.Stats) < n {
		a.Stats = make([]blend.Stats, n)
	} else {
		a.Stats = a.Stats[:n]
		clear(a.Stats)
	}
	if a.Seeded.Len() < uint(n) {
		a.Seeded = bitset.New(uint(n))
	} else {
		a.Seeded.ClearAll()
	}
}

// Len returns the number of slots.
func (a *Accumulator) Len() int { return len(a.Stats) }

// Seed marks slot i as seeded and reports whether it already was.
func (a *Accumulator) Seed(i int) bool {
	u := uint(i)
	if a.Seeded.Test(u) {
		return true
	}
	a.Seeded.Set(u)
	return false
}

// IsSeeded reports whether slot i has been seeded.
func (a *Accumulator) IsSeeded(i int) bool { return a.Seeded.Test(uint(i)) }

// SeededCount returns the number of seeded slots.
func (a *Accumulator) SeededCount() int { return int(a.Seeded.Count()) }

// EachSeeded calls fn for every seeded slot in ascending order.
func (a *Accumulator) EachSeeded(fn func(i int)) {
	for i, ok := a.Seeded.NextSet(0); ok; i, ok = a.Seeded.NextSet(i + 1) {
		if int(i) >= len(a.Stats) {
			return
		}
		fn(int(i))
	}
}

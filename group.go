package galex

import (
	"math/rand"
	"sort"
	"sync"
)

// Group is a mutable, owned collection of chromosome storage slots — the
// generalization of cbarrick-evo's View (a read-only []Genome snapshot)
// into something a Population can build up, shrink, reorder, and hand
// between generations. A Population keeps its current members in one Group;
// NextGeneration stages offspring in a plain slice and installs them into
// that group.
type Group struct {
	mu      sync.RWMutex
	members []*ChromosomeStorage

	shuffled  []int // permutation applied by Shuffle, nil if not shuffled
	shuffleOf []*ChromosomeStorage
}

// NewGroup creates an empty group, optionally pre-sized via capacity.
func NewGroup(capacity int) *Group {
	return &Group{members: make([]*ChromosomeStorage, 0, capacity)}
}

// Len returns the number of members currently in the group.
func (g *Group) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.members)
}

// At returns the member at position i.
func (g *Group) At(i int) *ChromosomeStorage {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.members[i]
}

// Add appends cs to the group and marks it as a member. It holds the
// group's lock while appending.
func (g *Group) Add(cs *ChromosomeStorage) {
	g.mu.Lock()
	defer g.mu.Unlock()
	cs.member = true
	g.members = append(g.members, cs)
}

// AddAtomic is like Add but safe to call from multiple goroutines
// concurrently populating the same group, the pattern the fitness stage and
// branch-parallel generation construction rely on.
func (g *Group) AddAtomic(cs *ChromosomeStorage) {
	g.Add(cs)
}

// Remove deletes the member at position i, replacing it with the last
// member to avoid an O(n) shift (order is not preserved).
func (g *Group) Remove(i int) *ChromosomeStorage {
	g.mu.Lock()
	defer g.mu.Unlock()
	cs := g.members[i]
	last := len(g.members) - 1
	g.members[i] = g.members[last]
	g.members[last] = nil
	g.members = g.members[:last]
	cs.member = false
	return cs
}

// RemoveMarked removes every member for which keep returns false, keeping
// the remaining members in their current order, and returns the removed
// slots.
func (g *Group) RemoveMarked(keep func(*ChromosomeStorage) bool) []*ChromosomeStorage {
	g.mu.Lock()
	defer g.mu.Unlock()
	var removed []*ChromosomeStorage
	kept := g.members[:0]
	for _, cs := range g.members {
		if keep(cs) {
			kept = append(kept, cs)
		} else {
			cs.member = false
			removed = append(removed, cs)
		}
	}
	g.members = kept
	return removed
}

// Trim shrinks the group to at most n members, returning the removed ones.
func (g *Group) Trim(n int) []*ChromosomeStorage {
	g.mu.Lock()
	defer g.mu.Unlock()
	if n < 0 {
		n = 0
	}
	if n >= len(g.members) {
		return nil
	}
	removed := append([]*ChromosomeStorage(nil), g.members[n:]...)
	for _, cs := range removed {
		cs.member = false
	}
	g.members = g.members[:n]
	return removed
}

// PopLast removes and returns the last member, or nil if the group is empty.
func (g *Group) PopLast() *ChromosomeStorage {
	g.mu.Lock()
	defer g.mu.Unlock()
	n := len(g.members)
	if n == 0 {
		return nil
	}
	cs := g.members[n-1]
	g.members[n-1] = nil
	g.members = g.members[:n-1]
	cs.member = false
	return cs
}

// Clear empties the group, returning every removed member.
func (g *Group) Clear() []*ChromosomeStorage {
	g.mu.Lock()
	defer g.mu.Unlock()
	removed := g.members
	for _, cs := range removed {
		cs.member = false
	}
	g.members = nil
	return removed
}

// Shuffle randomly permutes the group's members using r, remembering the
// permutation so RestoreShuffle can undo it.
func (g *Group) Shuffle(r *rand.Rand) {
	g.mu.Lock()
	defer g.mu.Unlock()
	n := len(g.members)
	perm := r.Perm(n)
	shuffled := make([]*ChromosomeStorage, n)
	for i, j := range perm {
		shuffled[i] = g.members[j]
	}
	g.shuffled = perm
	g.shuffleOf = g.members
	g.members = shuffled
}

// RestoreShuffle reverts the last Shuffle, restoring original order. It is a
// no-op if the group has not been shuffled since the last restore.
func (g *Group) RestoreShuffle() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.shuffleOf == nil {
		return
	}
	g.members = g.shuffleOf
	g.shuffled = nil
	g.shuffleOf = nil
}

// Sort orders members in place by less, which receives storage slots (not
// indices) to match the Fitness/tag-aware comparators this engine uses.
func (g *Group) Sort(less func(a, b *ChromosomeStorage) bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	sort.SliceStable(g.members, func(i, j int) bool {
		return less(g.members[i], g.members[j])
	})
}

// Each calls fn for every member, in current order. fn must not mutate the
// group; use Remove/RemoveMarked for that.
func (g *Group) Each(fn func(*ChromosomeStorage)) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	for _, cs := range g.members {
		fn(cs)
	}
}

// Snapshot returns a copy of the current member slice, safe to read without
// holding the group's lock.
func (g *Group) Snapshot() []*ChromosomeStorage {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]*ChromosomeStorage, len(g.members))
	copy(out, g.members)
	return out
}

// Max returns the member with the greatest fitness under cmp, mirroring
// cbarrick-evo's View.Max.
func (g *Group) Max(cmp Comparator) *ChromosomeStorage {
	return g.extreme(cmp, 1)
}

// Min returns the member with the least fitness under cmp, mirroring
// cbarrick-evo's View.Min.
func (g *Group) Min(cmp Comparator) *ChromosomeStorage {
	return g.extreme(cmp, -1)
}

func (g *Group) extreme(cmp Comparator, sign int) *ChromosomeStorage {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if len(g.members) == 0 {
		return nil
	}
	best := g.members[0]
	for _, cs := range g.members[1:] {
		if sign*cmp.Compare(cs.ScaledFitness(), best.ScaledFitness()) > 0 {
			best = cs
		}
	}
	return best
}

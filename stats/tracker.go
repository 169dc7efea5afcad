package stats

import (
	"sync"

	"github.com/kataklinger/galex"
)

// Tracker computes one named statistic from a population snapshot. Unlike
// cbarrick-evo's Stats (fixed to fitness), a Tracker can observe any
// per-member or population-wide quantity; Registry fans a single snapshot
// out to every bound tracker.
type Tracker interface {
	// ID returns the tracker's stable identifier, used to look up its
	// current Value from the Registry.
	ID() string

	// Evaluate folds snap into the tracker's running Value and returns the
	// updated Value.
	Evaluate(snap galex.StatsSnapshot) Value
}

// Registry binds a set of Trackers to a population and implements
// galex.StatsRegistry, so Population.SetStatsRegistry can hand it
// lifecycle snapshots directly.
type Registry struct {
	mu       sync.RWMutex
	trackers []Tracker
	values   map[string]Value
}

// NewRegistry creates a registry bound to the given trackers.
func NewRegistry(trackers ...Tracker) *Registry {
	return &Registry{
		trackers: trackers,
		values:   make(map[string]Value, len(trackers)),
	}
}

// Bind appends a tracker to the registry.
func (r *Registry) Bind(t Tracker) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.trackers = append(r.trackers, t)
}

// Observe implements galex.StatsRegistry: it runs every bound tracker over
// snap and stores the resulting Value.
func (r *Registry) Observe(snap galex.StatsSnapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.trackers {
		r.values[t.ID()] = t.Evaluate(snap)
	}
}

// Value returns the most recently computed Value for the tracker with the
// given ID, and whether that ID has been observed at all.
func (r *Registry) Value(id string) (Value, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.values[id]
	return v, ok
}

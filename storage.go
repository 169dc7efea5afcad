package galex

import "github.com/google/uuid"

// ChromosomeStorage is one slot in a population: a genotype plus the raw and
// scaled fitness computed for it, the flags and tags attached to it, and
// bookkeeping needed to recycle the slot through a StoragePool. Unlike
// cbarrick-evo's bare Genome interface, storage is a concrete struct because
// the engine (not the user's Genotype) owns fitness, flags, and tags.
type ChromosomeStorage struct {
	id     uuid.UUID
	parent *ChromosomeStorage

	genotype Genotype
	raw      Fitness
	scaled   Fitness

	flags Flags
	tags  *TagBuffer

	member bool // true while linked into a population's live group
	refs   int  // pool reference count
}

// NewChromosomeStorage allocates a fresh slot with a stable identity. tagMgr
// may be nil if the owning population has no per-chromosome tag layout.
func NewChromosomeStorage(g Genotype, tagMgr *TagManager) *ChromosomeStorage {
	cs := &ChromosomeStorage{
		id:       uuid.New(),
		genotype: g,
	}
	if tagMgr != nil {
		cs.tags = NewTagBuffer(tagMgr)
	}
	return cs
}

// ID returns the slot's stable identity, preserved across Reset/recycling
// boundaries is NOT guaranteed: a recycled slot gets a fresh ID, since its
// genotype identity has changed.
func (cs *ChromosomeStorage) ID() uuid.UUID { return cs.id }

// Genotype returns the candidate solution held by this slot.
func (cs *ChromosomeStorage) Genotype() Genotype { return cs.genotype }

// Parent returns the slot this one was derived from, or nil for an
// originally-initialized member.
func (cs *ChromosomeStorage) Parent() *ChromosomeStorage { return cs.parent }

// SetParent overwrites the slot this one was derived from, used by
// callers constructing a ChromosomeStorage outside of Population.Insert
// (e.g. tests building a child slot directly with NewChromosomeStorage).
func (cs *ChromosomeStorage) SetParent(parent *ChromosomeStorage) { cs.parent = parent }

// RawFitness returns the fitness computed directly by the population's
// FitnessOp, before any scaling (sharing, crowding, ...) is applied.
func (cs *ChromosomeStorage) RawFitness() Fitness { return cs.raw }

// ScaledFitness returns the fitness after scaling; equal to RawFitness until
// a scaling stage (sharing.Apply, mopareto algorithms, ...) overwrites it.
func (cs *ChromosomeStorage) ScaledFitness() Fitness { return cs.scaled }

// SetRawFitness stores raw fitness computed by a FitnessOp. Scaled fitness
// is reset to the same value; callers that scale afterward must call
// SetScaledFitness explicitly.
func (cs *ChromosomeStorage) SetRawFitness(f Fitness) {
	cs.raw = f
	cs.scaled = f
}

// SetScaledFitness overwrites only the scaled fitness, leaving raw intact.
func (cs *ChromosomeStorage) SetScaledFitness(f Fitness) { cs.scaled = f }

// Flags returns the slot's flag bitmask.
func (cs *ChromosomeStorage) Flags() Flags { return cs.flags }

// SetFlags overwrites the slot's flag bitmask.
func (cs *ChromosomeStorage) SetFlags(f Flags) { cs.flags = f }

// Tags returns the slot's tag buffer, or nil if the owning population has
// no per-chromosome tag layout configured.
func (cs *ChromosomeStorage) Tags() *TagBuffer { return cs.tags }

// IsMember reports whether the slot is currently linked into a population's
// live group (as opposed to sitting recycled in a pool).
func (cs *ChromosomeStorage) IsMember() bool { return cs.member }

// reset prepares a recycled slot for reuse with a new genotype, dropping
// its prior identity, parentage, fitness, and flags but keeping its tag
// buffer allocation (resized in place to avoid reallocating).
func (cs *ChromosomeStorage) reset(g Genotype) {
	cs.id = uuid.New()
	cs.parent = nil
	cs.genotype = g
	cs.raw = nil
	cs.scaled = nil
	cs.flags = 0
	cs.member = false
	if cs.tags != nil {
		cs.tags.Resize()
	}
}

// deriveChild produces a new slot parented on cs, sharing cs's tag manager
// layout but starting with a fresh tag buffer.
func (cs *ChromosomeStorage) deriveChild(g Genotype, tagMgr *TagManager) *ChromosomeStorage {
	child := NewChromosomeStorage(g, tagMgr)
	child.parent = cs
	return child
}

package galex

import (
	"context"
	"math/rand"
)

// PopulationParams configures the size and backfill behavior of a
// Population, the generalization of original_source's GaPopulationParams.
type PopulationParams struct {
	// Size is the target number of base-region members.
	Size int

	// CrowdingSize is additional overflow capacity (used by NSGA/SPEA-style
	// algorithms that keep a temporarily larger combined pool before
	// truncating back to Size).
	CrowdingSize int

	// Fill controls when/how the population backfills toward Size+CrowdingSize.
	Fill FillOptions
}

// Clone returns an independent copy, satisfying the "clone_boxed"
// configuration convention used throughout this module (see SPEC_FULL.md
// ambient stack notes): configuration objects are plain structs the caller
// can copy by value, but are handed around as an interface value so the
// population doesn't need a concrete config type per caller.
func (p PopulationParams) Clone() any { return p }

// StatsSnapshot is handed to a StatsRegistry whenever a population wants its
// trackers evaluated. It is intentionally a thin pointer+branch pair rather
// than a copy of every member, since trackers read through Population's own
// read-only accessors.
type StatsSnapshot struct {
	Population *Population
	Branch     int
}

// StatsRegistry receives snapshots from a population's lifecycle
// transitions. The stats package implements this; Population only depends
// on the interface to avoid importing stats (which itself imports galex for
// the Population/ChromosomeStorage types it reports on).
type StatsRegistry interface {
	Observe(StatsSnapshot)
}

// Population owns a group of chromosome storage slots plus the operators
// and bookkeeping needed to advance them one generation at a time. It
// generalizes cbarrick-evo's pop/gen and pop/graph population types (which
// each hard-coded one evolve function) into a single struct parameterized
// by pluggable FitnessOp/Comparator/ScaledFitnessPrototype, matching this
// module's component design.
type Population struct {
	params PopulationParams
	init   Initializer

	fitnessOp   FitnessOp
	rawCmp      Comparator
	scaledCmp   Comparator
	scaledProto ScaledFitnessPrototype

	tagMgr  *TagManager
	popTags *TagBuffer
	flags   Flags

	pool *StoragePool

	stats  StatsRegistry
	events *EventBus

	members *Group
	rng     *rand.Rand
}

// NewPopulation creates an empty, uninitialized population. Call Initialize
// before inserting members.
func NewPopulation(params PopulationParams, init Initializer, fitnessOp FitnessOp, rawCmp Comparator, tagMgr *TagManager) *Population {
	p := &Population{
		params: params,
		init:   init,

		fitnessOp: fitnessOp,
		rawCmp:    rawCmp,
		scaledCmp: rawCmp,

		tagMgr: tagMgr,
		events: NewEventBus(),
		rng:    rand.New(rand.NewSource(1)),
	}
	if tagMgr != nil {
		p.popTags = NewTagBuffer(tagMgr)
	}
	p.pool = NewStoragePool(PoolKeepExcess, 0, tagMgr)
	p.members = NewGroup(params.Size + params.CrowdingSize)
	return p
}

// Events returns the population's event bus for subscription.
func (p *Population) Events() *EventBus { return p.events }

// SetStatsRegistry attaches the tracker registry that Initialize and
// NextGeneration notify on lifecycle transitions.
func (p *Population) SetStatsRegistry(r StatsRegistry) { p.stats = r }

// SetRNG overrides the population's stored source of randomness. No method
// in this package reads it: Group.Shuffle and the sel/replace operators take
// their *rand.Rand as an argument (see the rng package for per-branch
// generators).
func (p *Population) SetRNG(r *rand.Rand) { p.rng = r }

// Flags returns the population-level flag bitmask.
func (p *Population) Flags() Flags { return p.flags }

// SetFlags overwrites the population-level flag bitmask.
func (p *Population) SetFlags(f Flags) { p.flags = f }

// Tags returns the population-level tag buffer, or nil if no tag manager
// was configured.
func (p *Population) Tags() *TagBuffer { return p.popTags }

// Params returns the population's current size/fill configuration.
func (p *Population) Params() PopulationParams { return p.params }

// SetParams updates the population's size/fill configuration and raises
// PopulationParametersChanged. It does not itself insert or remove members;
// call Trim to apply a size decrease. No method backfills the population
// after a size increase, whatever the Fill options are.
func (p *Population) SetParams(params PopulationParams) {
	p.params = params
	p.events.Raise(Event{Kind: PopulationParametersChanged, Population: p, Branch: -1})
}

// SetFitnessOp swaps the fitness operation and raises
// FitnessOperationChanged. Existing raw fitness values are left untouched
// until the next evaluation pass.
func (p *Population) SetFitnessOp(op FitnessOp) {
	p.fitnessOp = op
	p.events.Raise(Event{Kind: FitnessOperationChanged, Population: p, Branch: -1})
}

// SetComparators swaps the raw and scaled fitness comparators and raises
// FitnessComparatorChanged.
func (p *Population) SetComparators(raw, scaled Comparator) {
	p.rawCmp = raw
	p.scaledCmp = scaled
	p.events.Raise(Event{Kind: FitnessComparatorChanged, Population: p, Branch: -1})
}

// SetScaledFitnessPrototype swaps the prototype used to build fresh scaled
// fitness accumulators and raises ScaledFitnessPrototypeChanged.
func (p *Population) SetScaledFitnessPrototype(proto ScaledFitnessPrototype) {
	p.scaledProto = proto
	p.events.Raise(Event{Kind: ScaledFitnessPrototypeChanged, Population: p, Branch: -1})
}

// RawComparator returns the comparator used to order raw fitness.
func (p *Population) RawComparator() Comparator { return p.rawCmp }

// ScaledComparator returns the comparator used to order scaled fitness.
func (p *Population) ScaledComparator() Comparator { return p.scaledCmp }

// Members returns the group backing the population's current generation.
func (p *Population) Members() *Group { return p.members }

// Len returns the number of live members.
func (p *Population) Len() int { return p.members.Len() }

// Initialize fills the population up to Size (+CrowdingSize if
// FillCrowdingSpace is set) using the configured Initializer and FitnessOp
// when FillOnInit is set, then raises NewGeneration. Without FillOnInit no
// members are created. branch is passed through to the Initializer
// and FitnessOp so a caller driving multiple concurrent branches (see the
// branch package) can seed deterministic, branch-local randomness.
func (p *Population) Initialize(ctx context.Context, branch int) error {
	if p.init == nil {
		return newError(InvalidOperation, "Initialize", nil)
	}
	target := p.params.Size
	if p.params.Fill&FillCrowdingSpace != 0 {
		target += p.params.CrowdingSize
	}
	if p.params.Fill&FillOnInit == 0 {
		target = 0
	}
	for p.members.Len() < target {
		g := p.init.Initialize(branch)
		if err := p.insertGenotype(ctx, g, nil); err != nil {
			return err
		}
	}
	p.notifyStats(branch)
	p.events.Raise(Event{Kind: NewGeneration, Population: p, Branch: branch})
	return nil
}

// Clear empties the population, releasing every member's storage back to
// the pool.
func (p *Population) Clear() {
	for _, cs := range p.members.Clear() {
		p.pool.Release(cs)
	}
}

// Insert evaluates g's fitness and adds it to the population as a new
// member, parented on parent if non-nil.
func (p *Population) Insert(ctx context.Context, g Genotype, parent *ChromosomeStorage) error {
	return p.insertGenotype(ctx, g, parent)
}

func (p *Population) insertGenotype(ctx context.Context, g Genotype, parent *ChromosomeStorage) error {
	if p.fitnessOp == nil {
		return newError(FitnessEvaluationUnsupported, "Insert", nil)
	}
	cs, err := p.pool.Acquire(g)
	if err != nil {
		return err
	}
	cs.parent = parent
	fit, err := p.fitnessOp.Evaluate(ctx, g)
	if err != nil {
		p.pool.Release(cs)
		return err
	}
	cs.SetRawFitness(fit)
	p.members.AddAtomic(cs)
	return nil
}

// Remove removes the member at position i, releasing its storage back to
// the pool.
func (p *Population) Remove(i int) {
	cs := p.members.Remove(i)
	p.pool.Release(cs)
}

// Replace swaps the member at position i for a freshly-evaluated genotype,
// releasing the displaced storage back to the pool. Unlike InstallOffspring,
// it evaluates g's fitness itself.
func (p *Population) Replace(ctx context.Context, i int, g Genotype) error {
	if p.fitnessOp == nil {
		return newError(FitnessEvaluationUnsupported, "Replace", nil)
	}
	old := p.members.At(i)
	cs, err := p.pool.Acquire(g)
	if err != nil {
		return err
	}
	cs.parent = old
	fit, err := p.fitnessOp.Evaluate(ctx, g)
	if err != nil {
		p.pool.Release(cs)
		return err
	}
	cs.SetRawFitness(fit)

	replaced := p.members.Remove(i)
	p.members.Add(cs)
	// Re-seat at position i: Remove/Add don't preserve index, so swap the
	// newly-appended slot into i directly.
	last := p.members.Len() - 1
	if last != i {
		a, b := p.members.At(i), p.members.At(last)
		p.swap(i, last, a, b)
	}
	p.pool.Release(replaced)
	return nil
}

// swap exchanges the members held at positions i and j; both must already
// be the values currently stored there.
func (p *Population) swap(i, j int, _, _ *ChromosomeStorage) {
	p.members.mu.Lock()
	defer p.members.mu.Unlock()
	p.members.members[i], p.members.members[j] = p.members.members[j], p.members.members[i]
}

// InstallOffspring replaces the member at position i with an already
// fitness-evaluated chromosome, releasing the displaced storage back to
// the pool. Unlike Replace, it does not re-evaluate fitness, since
// callers handing in offspring (NextGeneration's victim-install loop,
// migrate.Adoption draining a port from another population) have already
// evaluated them against whatever fitness op produced them.
func (p *Population) InstallOffspring(i int, cs *ChromosomeStorage) {
	old := p.members.Remove(i)
	p.members.Add(cs)
	last := p.members.Len() - 1
	if last != i {
		a, b := p.members.At(i), p.members.At(last)
		p.swap(i, last, a, b)
	}
	p.pool.Release(old)
}

// Trim shrinks the population down to n members (picked by the population's
// current order — callers sort beforehand via Members().Sort), releasing
// the removed storage back to the pool, and applies PoolTrimExcess to the
// pool if configured to do so.
func (p *Population) Trim(n int) {
	for _, cs := range p.members.Trim(n) {
		p.pool.Release(cs)
	}
	if p.pool.policy == PoolTrimExcess {
		p.pool.Trim(p.params.Size + p.params.CrowdingSize)
	}
}

// GenerationOps bundles the operators a single call to NextGeneration needs
// to produce, evaluate, and install a replacement generation: selection of
// parents, variation, and survivor replacement are all supplied by the
// caller (sel/coupling/replace packages) rather than hard-coded, unlike
// cbarrick-evo's single fixed evolve function per population type.
type GenerationOps struct {
	// Select returns the parent groups to vary, one slice per offspring to
	// produce.
	Select func(p *Population, branch int) [][]*ChromosomeStorage

	// Vary produces one offspring genotype from a selected parent group.
	Vary func(branch int, parents []*ChromosomeStorage) Genotype

	// Replace decides which current members the freshly-evaluated
	// offspring displace; it is handed the offspring's storage (already
	// fitness-evaluated) and returns the indices to replace them.
	Replace func(p *Population, offspring []*ChromosomeStorage, branch int) []int
}

// NextGeneration produces one full replacement generation using ops and
// installs it, then raises NewGeneration. This is the branch-synchronized
// analogue of cbarrick-evo's pop/gen population loop: unlike that
// always-running goroutine, NextGeneration is caller-driven and returns
// once the pass completes, so it composes with the branch package's
// barrier scheduling instead of owning its own goroutine.
func (p *Population) NextGeneration(ctx context.Context, ops GenerationOps, branch int) error {
	groups := ops.Select(p, branch)
	offspring := make([]*ChromosomeStorage, 0, len(groups))
	for _, parents := range groups {
		g := ops.Vary(branch, parents)
		if p.fitnessOp == nil {
			return newError(FitnessEvaluationUnsupported, "NextGeneration", nil)
		}
		fit, err := p.fitnessOp.Evaluate(ctx, g)
		if err != nil {
			return err
		}
		cs := NewChromosomeStorage(g, p.tagMgr)
		if len(parents) > 0 {
			cs.parent = parents[0]
		}
		cs.SetRawFitness(fit)
		offspring = append(offspring, cs)
	}

	victims := ops.Replace(p, offspring, branch)
	for k, idx := range victims {
		p.InstallOffspring(idx, offspring[k])
	}

	p.notifyStats(branch)
	p.events.Raise(Event{Kind: NewGeneration, Population: p, Branch: branch})
	return nil
}

func (p *Population) notifyStats(branch int) {
	if p.stats != nil {
		p.stats.Observe(StatsSnapshot{Population: p, Branch: branch})
	}
}

package stats

import (
	"time"

	"github.com/kataklinger/galex"
)

// PopulationSize tracks the running distribution of population length
// across generations (useful once Trim/backfill policies let it vary).
type PopulationSize struct{ running Value }

func (t *PopulationSize) ID() string { return IDPopulationSize }

func (t *PopulationSize) Evaluate(snap galex.StatsSnapshot) Value {
	t.running = t.running.Insert(float64(snap.Population.Len()))
	return t.running
}

// fitnessComponent selects which fitness a member-scanning tracker folds:
// raw (as produced by FitnessOp) or scaled (post-sharing/crowding).
type fitnessComponent int

const (
	rawComponent fitnessComponent = iota
	scaledComponent
)

// RawFitness tracks max/min/mean/variance of every member's raw fitness
// ProbabilityBase, the direct generalization of cbarrick-evo's
// Stats-over-Genome.Fitness() to this engine's Fitness interface.
type RawFitness struct{ running Value }

func (t *RawFitness) ID() string { return IDRawFitness }

func (t *RawFitness) Evaluate(snap galex.StatsSnapshot) Value {
	t.running = scanFitness(t.running, snap, rawComponent)
	return t.running
}

// ScaledFitness is RawFitness's counterpart over post-scaling fitness.
type ScaledFitness struct{ running Value }

func (t *ScaledFitness) ID() string { return IDScaledFitness }

func (t *ScaledFitness) Evaluate(snap galex.StatsSnapshot) Value {
	t.running = scanFitness(t.running, snap, scaledComponent)
	return t.running
}

func scanFitness(running Value, snap galex.StatsSnapshot, which fitnessComponent) Value {
	snap.Population.Members().Each(func(cs *galex.ChromosomeStorage) {
		var f galex.Fitness
		if which == rawComponent {
			f = cs.RawFitness()
		} else {
			f = cs.ScaledFitness()
		}
		if f != nil {
			running = running.Insert(f.ProbabilityBase())
		}
	})
	return running
}

// RawDeviation tracks the per-generation standard deviation of raw fitness
// as its own time series (distinct from RawFitness's all-time running
// value), used to detect convergence across generations.
type RawDeviation struct{ running Value }

func (t *RawDeviation) ID() string { return IDRawDeviation }

func (t *RawDeviation) Evaluate(snap galex.StatsSnapshot) Value {
	gen := Value{}
	snap.Population.Members().Each(func(cs *galex.ChromosomeStorage) {
		if f := cs.RawFitness(); f != nil {
			gen = gen.Insert(f.ProbabilityBase())
		}
	})
	t.running = t.running.Insert(gen.StdDeviation())
	return t.running
}

// ScaledDeviation is RawDeviation's counterpart over scaled fitness.
type ScaledDeviation struct{ running Value }

func (t *ScaledDeviation) ID() string { return IDScaledDeviation }

func (t *ScaledDeviation) Evaluate(snap galex.StatsSnapshot) Value {
	gen := Value{}
	snap.Population.Members().Each(func(cs *galex.ChromosomeStorage) {
		if f := cs.ScaledFitness(); f != nil {
			gen = gen.Insert(f.ProbabilityBase())
		}
	})
	t.running = t.running.Insert(gen.StdDeviation())
	return t.running
}

// OperationCount counts how many times a named operation (fitness
// evaluation, crossover, ...) has fired; the caller increments it directly
// via Tick rather than deriving it from a snapshot.
type OperationCount struct {
	name  string
	count float64
}

// NewOperationCount creates a counter tracker scoped to name, allowing
// several distinct operations to each have their own tracker instance
// registered under the same ID pattern.
func NewOperationCount(name string) *OperationCount {
	return &OperationCount{name: name}
}

func (t *OperationCount) ID() string { return IDOperationCount + ":" + t.name }

// Tick increments the counter by one and returns the updated total.
func (t *OperationCount) Tick() float64 {
	t.count++
	return t.count
}

// Evaluate satisfies Tracker but ignores the snapshot; OperationCount is
// driven by explicit Tick calls from the code performing the operation.
func (t *OperationCount) Evaluate(_ galex.StatsSnapshot) Value {
	return Value{}.Insert(t.count)
}

// OperationTime tracks the running distribution of wall-clock durations for
// a named operation.
type OperationTime struct {
	name    string
	running Value
}

// NewOperationTime creates a duration tracker scoped to name.
func NewOperationTime(name string) *OperationTime {
	return &OperationTime{name: name}
}

func (t *OperationTime) ID() string { return IDOperationTime + ":" + t.name }

// Record folds one observed duration into the running statistics.
func (t *OperationTime) Record(d time.Duration) Value {
	t.running = t.running.Insert(d.Seconds())
	return t.running
}

// Evaluate satisfies Tracker but ignores the snapshot; OperationTime is
// driven by explicit Record calls around the timed operation.
func (t *OperationTime) Evaluate(_ galex.StatsSnapshot) Value {
	return t.running
}

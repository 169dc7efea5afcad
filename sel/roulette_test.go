package sel_test

import (
	"math/rand"
	"testing"

	"github.com/kataklinger/galex"
	"github.com/kataklinger/galex/internal/galextest"
	"github.com/kataklinger/galex/sel"
	"github.com/stretchr/testify/require"
)

// weighted wraps a plain float64 into a minimal galex.Fitness, enough to
// drive RouletteWheel's ProbabilityBase-only sampling.
type weighted float64

func (w *weighted) Add(other galex.Fitness)      { *w += *other.(*weighted) }
func (w *weighted) Sub(other galex.Fitness)      { *w -= *other.(*weighted) }
func (w *weighted) Compare(o galex.Fitness) int {
	switch d := float64(*w) - float64(*o.(*weighted)); {
	case d < 0:
		return -1
	case d > 0:
		return 1
	default:
		return 0
	}
}
func (w *weighted) ProbabilityBase() float64 { return float64(*w) }
func (w *weighted) Distance(o galex.Fitness) float64 {
	d := float64(*w) - float64(*o.(*weighted))
	if d < 0 {
		return -d
	}
	return d
}
func (w *weighted) Clone() galex.Fitness { v := *w; return &v }

func newWeightedMember(w float64) *galex.ChromosomeStorage {
	r := rand.New(rand.NewSource(1))
	g := galextest.NewPermutation(r, 2)
	cs := galex.NewChromosomeStorage(g, nil)
	f := weighted(w)
	cs.SetRawFitness(&f)
	return cs
}

// TestRouletteWheelWeightThree reproduces the worked roulette-selection
// example: four members weighted [1,2,3,4] (cumulative [1,3,6,10]); a draw
// that lands at 5.0 out of a total of 10 falls in the third bucket
// (3 <= 5 < 6), selecting index 2.
func TestRouletteWheelWeightThree(t *testing.T) {
	pool := []*galex.ChromosomeStorage{
		newWeightedMember(1),
		newWeightedMember(2),
		newWeightedMember(3),
		newWeightedMember(4),
	}

	got := sel.RouletteWheel(fixedDraw(5.0, 10), pool, 1)
	require.Len(t, got, 1)
	require.Same(t, pool[2], got[0])
}

// fixedDraw returns a *rand.Rand whose Float64() always yields target/total,
// isolating RouletteWheel's bucket-selection arithmetic from actual
// randomness for this worked example.
func fixedDraw(target, total float64) *rand.Rand {
	return rand.New(constSource(target / total))
}

type constSource float64

// Int63 returns a fixed fraction of math.MaxInt64 so that the resulting
// rand.Rand.Float64() == float64(c), letting tests pin an exact draw.
func (c constSource) Int63() int64 {
	return int64(float64(c) * 9223372036854775808.0)
}
func (constSource) Seed(int64) {}

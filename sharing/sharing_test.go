package sharing_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/kataklinger/galex"
	"github.com/kataklinger/galex/internal/galextest"
	"github.com/kataklinger/galex/sharing"
)

func member(value float64) *galex.ChromosomeStorage {
	r := rand.New(rand.NewSource(1))
	g := galextest.NewPermutation(r, 2)
	cs := galex.NewChromosomeStorage(g, nil)
	f := galextest.Scalar(value)
	cs.SetRawFitness(&f)
	return cs
}

func scalarOf(t *testing.T, f galex.Fitness) float64 {
	t.Helper()
	s, ok := f.(*galextest.Scalar)
	if !ok {
		t.Fatalf("unexpected fitness type %T", f)
	}
	return float64(*s)
}

// TestApplyTriangularKernelWorkedExample reproduces the worked fitness
// sharing example: three members positioned at 0, 0.5, and 2 under a
// triangular kernel with sigma=1, alpha=1. Members 0 and 1 are within
// sigma of each other (distance 0.5, contributing k=0.5 each way) while
// member 2 is isolated (distance >= sigma from both), so member 2's niche
// count is 1 (itself only) while members 0 and 1 each get niche count 1.5.
func TestApplyTriangularKernelWorkedExample(t *testing.T) {
	pool := []*galex.ChromosomeStorage{member(0), member(0.5), member(2)}
	sharing.Apply(pool, sharing.Kernel{Sigma: 1, Alpha: 1})

	want := []float64{0.0 / 1.5, 0.5 / 1.5, 2.0 / 1.0}
	for i, cs := range pool {
		got := scalarOf(t, cs.ScaledFitness())
		if math.Abs(got-want[i]) > 1e-9 {
			t.Errorf("member %d scaled fitness = %f, want %f", i, got, want[i])
		}
	}
}

func TestKernelZeroBeyondSigma(t *testing.T) {
	k := sharing.Kernel{Sigma: 1, Alpha: 1}
	if v := k.Value(1); v != 0 {
		t.Errorf("Value(sigma) = %f, want 0", v)
	}
	if v := k.Value(2); v != 0 {
		t.Errorf("Value(2*sigma) = %f, want 0", v)
	}
}

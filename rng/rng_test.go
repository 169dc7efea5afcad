package rng_test

import (
	"testing"

	"github.com/kataklinger/galex/rng"
)

func TestNewPoolGivesIndependentStreams(t *testing.T) {
	p := rng.NewPool(42, 4)
	if p.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", p.Len())
	}

	seen := make(map[int64]bool)
	for b := 0; b < p.Len(); b++ {
		draw := p.For(b).Int63()
		if seen[draw] {
			t.Fatalf("branch %d produced a draw colliding with another branch", b)
		}
		seen[draw] = true
	}
}

func TestNewPoolIsDeterministic(t *testing.T) {
	a := rng.NewPool(7, 3)
	b := rng.NewPool(7, 3)
	for i := 0; i < 3; i++ {
		if a.For(i).Int63() != b.For(i).Int63() {
			t.Fatalf("branch %d diverged between identically-seeded pools", i)
		}
	}
}

func TestReseedChangesStreamButKeepsBranchCount(t *testing.T) {
	p := rng.NewPool(1, 2)
	first := p.For(0).Int63()
	p.Reseed(2)
	if p.Len() != 2 {
		t.Fatalf("Len() changed across Reseed: %d", p.Len())
	}
	if p.Seed() != 2 {
		t.Fatalf("Seed() = %d, want 2", p.Seed())
	}
	if p.For(0).Int63() == first {
		t.Fatal("reseeding should change the branch-0 stream")
	}
}

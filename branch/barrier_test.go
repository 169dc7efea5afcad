package branch_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/kataklinger/galex/branch"
)

func TestBarrierRunsEveryBranch(t *testing.T) {
	var count int64
	err := branch.Barrier(context.Background(), 8, func(ctx context.Context, b int) error {
		atomic.AddInt64(&count, 1)
		return nil
	})
	if err != nil {
		t.Fatalf("Barrier returned error: %v", err)
	}
	if count != 8 {
		t.Fatalf("count = %d, want 8", count)
	}
}

func TestBarrierPropagatesFirstError(t *testing.T) {
	sentinel := errors.New("branch failed")
	err := branch.Barrier(context.Background(), 4, func(ctx context.Context, b int) error {
		if b == 2 {
			return sentinel
		}
		return nil
	})
	if !errors.Is(err, sentinel) {
		t.Fatalf("expected sentinel error, got %v", err)
	}
}

func TestSchedulerStopsAtFailingPhase(t *testing.T) {
	s := branch.NewScheduler(3)
	var ran []string
	sentinel := errors.New("vary failed")

	phases := []branch.Phase{
		{Name: "select", Run: func(ctx context.Context, b int) error {
			if b == 0 {
				ran = append(ran, "select")
			}
			return nil
		}},
		{Name: "vary", Run: func(ctx context.Context, b int) error {
			if b == 1 {
				return sentinel
			}
			return nil
		}},
		{Name: "merge", Run: func(ctx context.Context, b int) error {
			ran = append(ran, "merge")
			return nil
		}},
	}

	err := s.Run(context.Background(), phases)
	if err == nil {
		t.Fatal("expected error from failing phase")
	}
	var perr *branch.PhaseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected *PhaseError, got %T", err)
	}
	if perr.Phase != "vary" {
		t.Fatalf("failing phase = %q, want %q", perr.Phase, "vary")
	}
	if !errors.Is(err, sentinel) {
		t.Fatal("expected error chain to reach sentinel")
	}
	for _, name := range ran {
		if name == "merge" {
			t.Fatal("merge phase should not have run after vary failed")
		}
	}
}

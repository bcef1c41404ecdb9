package equihash

import (
	"context"
	"testing"
)

func TestBasicSolveProducesValidSolutions(t *testing.T) {
	p, err := NewParams(32, 3)
	if err != nil {
		t.Fatal(err)
	}
	state := NewHashState(p)
	if _, err := state.Write([]byte("basic-solve-fixture")); err != nil {
		t.Fatal(err)
	}

	sols, err := basicSolve(context.Background(), p, state)
	if err != nil {
		t.Fatal(err)
	}

	for _, sol := range sols {
		if uint32(len(sol)) != p.SolutionSize() {
			t.Fatalf("solution has %d indices, want %d", len(sol), p.SolutionSize())
		}
		if !sol.CanonicalOrder() {
			t.Fatalf("solution %v is not in canonical tree order", sol)
		}
		ok, err := isValidSolution(p, state, sol)
		if err != nil {
			t.Fatal(err)
		}
		if !ok {
			t.Fatalf("solution %v reported by basicSolve did not verify", sol)
		}
	}
}

func TestBasicSolveDeduplicates(t *testing.T) {
	p, err := NewParams(32, 3)
	if err != nil {
		t.Fatal(err)
	}
	state := NewHashState(p)

	sols, err := basicSolve(context.Background(), p, state)
	if err != nil {
		t.Fatal(err)
	}

	seen := make(map[string]bool)
	for _, sol := range sols {
		key := solutionKey([]uint32(sol))
		if seen[key] {
			t.Fatalf("duplicate solution %v returned by basicSolve", sol)
		}
		seen[key] = true
	}
}

func TestBasicSolveDeterministic(t *testing.T) {
	p, err := NewParams(32, 3)
	if err != nil {
		t.Fatal(err)
	}
	state1 := NewHashState(p)
	state2 := NewHashState(p)

	sols1, err := basicSolve(context.Background(), p, state1)
	if err != nil {
		t.Fatal(err)
	}
	sols2, err := basicSolve(context.Background(), p, state2)
	if err != nil {
		t.Fatal(err)
	}
	if len(sols1) != len(sols2) {
		t.Fatalf("solving twice from equivalent states found %d vs %d solutions", len(sols1), len(sols2))
	}
	set2 := make(map[string]bool)
	for _, s := range sols2 {
		set2[solutionKey([]uint32(s))] = true
	}
	for _, s := range sols1 {
		if !set2[solutionKey([]uint32(s))] {
			t.Fatalf("solution %v found only in one of two equivalent runs", s)
		}
	}
}

func TestBasicSolveRespectsCancellation(t *testing.T) {
	p, err := NewParams(96, 5)
	if err != nil {
		t.Fatal(err)
	}
	state := NewHashState(p)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := basicSolve(ctx, p, state); err == nil {
		t.Fatal("expected basicSolve to fail immediately on a cancelled context")
	}
}

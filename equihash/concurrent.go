package equihash

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// SolveMany runs Solve independently over every state in states,
// concurrently: each solve instance owns its own row tables and is a
// pure function of the input hash state, so independent base states
// can be solved in parallel with no shared mutable data. If any solve
// fails or ctx is cancelled, SolveMany returns the first error and
// cancels the rest; results are returned in the same order as states.
func (e *Equihash) SolveMany(ctx context.Context, states []*HashState) ([][]Solution, error) {
	return solveMany(ctx, states, e.Solve)
}

// SolveManyOptimised is SolveMany using the memory-reduced algorithm.
func (e *Equihash) SolveManyOptimised(ctx context.Context, states []*HashState) ([][]Solution, error) {
	return solveMany(ctx, states, e.SolveOptimised)
}

func solveMany(ctx context.Context, states []*HashState, solve func(context.Context, *HashState) ([]Solution, error)) ([][]Solution, error) {
	results := make([][]Solution, len(states))
	g, gctx := errgroup.WithContext(ctx)
	for i, state := range states {
		i, state := i, state
		g.Go(func() error {
			sols, err := solve(gctx, state)
			if err != nil {
				return err
			}
			results[i] = sols
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

package equihash

import "context"

// Equihash is the package's entry point: fix (n, k) once with New,
// then derive as many independent HashStates as needed and solve or
// verify against them.
type Equihash struct {
	Params Params
}

// New validates (n, k) and returns a ready-to-use Equihash instance.
func New(n, k uint32) (*Equihash, error) {
	p, err := NewParams(n, k)
	if err != nil {
		return nil, err
	}
	return &Equihash{Params: p}, nil
}

// NewHashState builds a fresh, personalised base hash state for this
// instance's (n, k). Callers may Write a block-header prefix into it
// before solving or verifying.
func (e *Equihash) NewHashState() *HashState {
	return NewHashState(e.Params)
}

// Solve runs the reference (memory-heavy, straightforward) algorithm
// against state and returns every solution found, deduplicated and each
// individually valid under IsValidSolution.
func (e *Equihash) Solve(ctx context.Context, state *HashState) ([]Solution, error) {
	return basicSolve(ctx, e.Params, state)
}

// SolveOptimised runs the memory-reduced two-phase algorithm against
// state. Its result is equal, as a set, to Solve's.
func (e *Equihash) SolveOptimised(ctx context.Context, state *HashState) ([]Solution, error) {
	return optimisedSolve(ctx, e.Params, state)
}

// IsValidSolution reports whether sol is a structurally valid solution
// against state under this instance's (n, k).
func (e *Equihash) IsValidSolution(state *HashState, sol Solution) (bool, error) {
	return isValidSolution(e.Params, state, sol)
}

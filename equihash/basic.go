package equihash

import (
	"context"

	"github.com/google/logger"
)

// basicSolve is the reference algorithm: generate the initial 2^(N+1)
// leaf rows carrying full 32-bit index histories, run the collision
// schedule for k-1 rounds with the distinct-index check enabled at
// every merge, then scan the final list for adjacent zero-XOR pairs
// with disjoint index histories.
func basicSolve(ctx context.Context, p Params, state *HashState) ([]Solution, error) {
	logger.Infof("pow: generating first list of %d rows", p.initialListLen)
	rows := make([]row[uint32], 0, p.initialListLen)
	for i := uint32(0); i < p.initialListLen; i++ {
		h, err := state.leaf(i)
		if err != nil {
			return nil, err
		}
		rows = append(rows, newLeafRow(h, i))
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rows, err := runRounds(rows, p, true)
	if err != nil {
		return nil, err
	}

	logger.Infof("pow: final round: %d rows", len(rows))
	solns := newSolutionSet[uint32]()
	if len(rows) > 1 {
		sortRows(rows)
		for i := 0; i < len(rows)-1; i++ {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			res, err := xor(rows[i], rows[i+1])
			if err != nil {
				return nil, err
			}
			if res.isZero() && distinctIndices(rows[i].indices, rows[i+1].indices) {
				solns.add(res.indices)
			}
		}
	} else {
		logger.Infof("pow: final list is empty")
	}

	out := make([]Solution, len(solns.list))
	for i, idx := range solns.list {
		out[i] = Solution(idx)
	}
	return out, nil
}

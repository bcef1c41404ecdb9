package equihash

import (
	"encoding/hex"

	"github.com/google/logger"
)

// isValidSolution rebuilds the S leaf rows named by sol and performs k
// strict pairwise-merge rounds: at each level, consecutive pairs must
// collide on the next Nb bytes, must already be in canonical tree order
// (left's first index below right's), and must have disjoint index
// histories. After k rounds exactly one row remains, and it must be
// all-zero. Any failed check, or a solution of the wrong length,
// rejects immediately.
func isValidSolution(p Params, state *HashState, sol Solution) (bool, error) {
	if uint32(len(sol)) != p.SolutionSize() {
		logger.Infof("pow: invalid solution size: %d", len(sol))
		return false, nil
	}

	rows := make([]row[uint32], len(sol))
	for i, idx := range sol {
		h, err := state.leaf(idx)
		if err != nil {
			return false, err
		}
		rows[i] = newLeafRow(h, idx)
	}

	for len(rows) > 1 {
		next := make([]row[uint32], 0, len(rows)/2)
		for i := 0; i < len(rows); i += 2 {
			a, b := rows[i], rows[i+1]
			if !hasCollision(a, b, p.collisionByteLen) {
				logger.Infof("pow: invalid solution: no collision between rows %d and %d: %s vs %s",
					i, i+1, hex.EncodeToString(a.hash), hex.EncodeToString(b.hash))
				return false, nil
			}
			if b.indices[0] < a.indices[0] {
				logger.Infof("pow: invalid solution: index tree incorrectly ordered at rows %d, %d", i, i+1)
				return false, nil
			}
			if !distinctIndices(a.indices, b.indices) {
				logger.Infof("pow: invalid solution: duplicate indices between rows %d and %d", i, i+1)
				return false, nil
			}
			merged, err := xor(a, b)
			if err != nil {
				return false, err
			}
			next = append(next, merged.trim(p.collisionByteLen))
		}
		rows = next
	}

	return rows[0].isZero(), nil
}

package equihash

import (
	"context"

	"github.com/google/logger"
)

// optimisedSolve runs the memory-reduced two-phase pipeline: Phase A
// runs the collision schedule on rows truncated to an 8-bit index
// history (skipping the distinct-index check at every merge, the final
// round included, since truncation discards the information needed for
// it), yielding a set of partial solutions; Phase B reconstructs each
// partial solution into full 32-bit solutions by rebuilding and merging
// the S candidate leaf lists it could have come from, keeping only rows
// whose final hash is all-zero.
func optimisedSolve(ctx context.Context, p Params, state *HashState) ([]Solution, error) {
	partials, err := truncatedPipeline(ctx, p, state)
	if err != nil {
		return nil, err
	}
	logger.Infof("pow: found %d partial solutions", len(partials))

	solns := newSolutionSet[uint32]()
	for _, partial := range partials {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		rows, err := reconstruct(ctx, p, state, partial)
		if err != nil {
			return nil, err
		}
		for _, r := range rows {
			if r.isZero() {
				solns.add(r.indices)
			}
		}
	}

	out := make([]Solution, len(solns.list))
	for i, idx := range solns.list {
		out[i] = Solution(idx)
	}
	return out, nil
}

// truncatedPipeline is Phase A: identical in shape to basicSolve, but
// each leaf row stores only the 8-bit truncation of its index.
func truncatedPipeline(ctx context.Context, p Params, state *HashState) ([]PartialSolution, error) {
	shift := p.collisionBitLen + 1 - 8

	logger.Infof("pow: generating first truncated list of %d rows", p.initialListLen)
	rows := make([]row[uint8], 0, p.initialListLen)
	for i := uint32(0); i < p.initialListLen; i++ {
		h, err := state.leaf(i)
		if err != nil {
			return nil, err
		}
		rows = append(rows, newLeafRow(h, truncate(i, shift)))
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rows, err := runRounds(rows, p, false)
	if err != nil {
		return nil, err
	}

	logger.Infof("pow: final truncated round: %d rows", len(rows))
	partials := newSolutionSet[uint8]()
	if len(rows) > 1 {
		sortRows(rows)
		for i := 0; i < len(rows)-1; i++ {
			res, err := xor(rows[i], rows[i+1])
			if err != nil {
				return nil, err
			}
			if res.isZero() {
				partials.add(res.indices)
			}
		}
	} else {
		logger.Infof("pow: truncated final list is empty")
	}

	out := make([]PartialSolution, len(partials.list))
	for i, idx := range partials.list {
		out[i] = PartialSolution(idx)
	}
	return out, nil
}

// truncate forms the 8-bit prefix of an (N+1)-bit leaf index.
func truncate(i uint32, shift uint32) uint8 {
	return uint8((i >> shift) & 0xff)
}

// reconstruct is Phase B for a single partial solution: for each of its
// S truncated values p_v, rebuild the R = 2^(N-7) full leaves whose
// 8-bit prefix is p_v, then repeatedly cross-merge pairs of lists until
// one remains. Any empty intermediate list yields zero solutions for
// this partial solution.
func reconstruct(ctx context.Context, p Params, state *HashState, partial PartialSolution) ([]row[uint32], error) {
	shift := p.collisionBitLen - 7
	r := uint32(1) << shift

	lists := make([][]row[uint32], len(partial))
	for v, pv := range partial {
		list := make([]row[uint32], 0, r)
		base := uint32(pv) << shift
		for j := uint32(0); j < r; j++ {
			leaf := base | j
			h, err := state.leaf(leaf)
			if err != nil {
				return nil, err
			}
			list = append(list, newLeafRow(h, leaf))
		}
		lists[v] = list
	}

	for len(lists) > 1 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		logger.Infof("pow: reconstructing partial solution: %d candidate lists", len(lists))
		for _, list := range lists {
			sortRows(list)
		}
		next := make([][]row[uint32], 0, len(lists)/2)
		for v := 0; v < len(lists); v += 2 {
			merged, err := crossMerge(lists[v], lists[v+1], p.collisionByteLen)
			if err != nil {
				return nil, err
			}
			next = append(next, merged)
		}
		lists = next
	}

	return lists[0], nil
}

// crossMerge finds every cross-list pair of rows in left and right that
// collide on the next nb bytes and have disjoint index histories,
// XOR-merges and trims each, and returns the results. It walks both
// sorted lists with a pair of cursors: at each step it counts how many
// consecutive left rows (from iChecked) collide with the fixed
// right[jChecked], and how many consecutive right rows (from jChecked)
// collide with the fixed left[iChecked], emits their Cartesian product,
// and advances both cursors by those counts — or, if neither side found
// a match, advances by one whichever cursor points at the smaller row,
// which guarantees progress without skipping a later match.
//
// This is the corrected form of the reference C++ implementation's
// inner loop: the original emits X[v][jChecked+m] where it should emit
// the right list's row X[v+1][jChecked+m], and starts its right-side
// counter at 1 instead of 0, which makes the "neither side advanced"
// stall check unreachable.
func crossMerge(left, right []row[uint32], nb uint32) ([]row[uint32], error) {
	var out []row[uint32]
	iChecked, jChecked := 0, 0
	for iChecked < len(left) && jChecked < len(right) {
		i := 0
		for iChecked+i < len(left) && hasCollision(left[iChecked+i], right[jChecked], nb) {
			i++
		}
		j := 0
		for jChecked+j < len(right) && hasCollision(left[iChecked], right[jChecked+j], nb) {
			j++
		}

		for l := 0; l < i; l++ {
			for m := 0; m < j; m++ {
				a, b := left[iChecked+l], right[jChecked+m]
				if !distinctIndices(a.indices, b.indices) {
					continue
				}
				merged, err := xor(a, b)
				if err != nil {
					return nil, err
				}
				out = append(out, merged.trim(nb))
			}
		}

		if i == 0 && j == 0 {
			if left[iChecked].less(right[jChecked]) {
				iChecked++
			} else {
				jChecked++
			}
		} else {
			iChecked += i
			jChecked += j
		}
	}
	return out, nil
}

package equihash

import (
	"github.com/google/logger"
)

// collide runs one round of the collision schedule: sort rows by hash,
// scan for maximal runs sharing the next nb bytes, XOR-merge and trim
// every pair in a run (skipping pairs that share a leaf index when
// checkDistinct is set), and compact the results back into the table
// in place using a free-slot cursor with a spill buffer for overflow.
// The truncated (optimised) pipeline passes checkDistinct=false, since
// an 8-bit truncated index can't tell distinct leaves apart.
func collide[I leafIndex](rows []row[I], nb uint32, checkDistinct bool) ([]row[I], error) {
	if len(rows) == 0 {
		return rows, nil
	}
	sortRows(rows)

	var spill []row[I]
	posFree := 0
	i := 0
	for i < len(rows)-1 {
		j := 1
		for i+j < len(rows) && hasCollision(rows[i], rows[i+j], nb) {
			j++
		}

		for l := 0; l < j-1; l++ {
			for m := l + 1; m < j; m++ {
				if checkDistinct && !distinctIndices(rows[i+l].indices, rows[i+m].indices) {
					continue
				}
				merged, err := xor(rows[i+l], rows[i+m])
				if err != nil {
					return nil, err
				}
				spill = append(spill, merged.trim(nb))
			}
		}

		for posFree < i+j && len(spill) > 0 {
			rows[posFree] = spill[len(spill)-1]
			spill = spill[:len(spill)-1]
			posFree++
		}

		i += j
	}

	for posFree < len(rows) && len(spill) > 0 {
		rows[posFree] = spill[len(spill)-1]
		spill = spill[:len(spill)-1]
		posFree++
	}

	if len(spill) > 0 {
		rows = append(rows, spill...)
	} else if posFree < len(rows) {
		rows = rows[:posFree]
	}
	return rows, nil
}

// runRounds drives collide for rounds 1..k-1, repeating until the
// remaining bit width would no longer produce a useful collision.
func runRounds[I leafIndex](rows []row[I], p Params, checkDistinct bool) ([]row[I], error) {
	var err error
	for r := uint32(1); r < p.TreeDepth && len(rows) > 0; r++ {
		logger.Infof("pow: round %d: sorting and scanning %d rows", r, len(rows))
		rows, err = collide(rows, p.collisionByteLen, checkDistinct)
		if err != nil {
			return nil, err
		}
	}
	return rows, nil
}

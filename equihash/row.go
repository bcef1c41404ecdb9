package equihash

import (
	"bytes"
	"sort"
)

// leafIndex is the constraint on a row's index-history element type:
// BasicSolver rows carry full 32-bit leaf indices, OptimisedSolver's
// truncated pipeline carries 8-bit prefixes of them. A generic row
// lets both share one implementation instead of a virtual dispatch
// hierarchy.
type leafIndex interface {
	~uint32 | ~uint8
}

// row is a (hash, indices) pair: a hash prefix plus the ordered history
// of leaf indices whose XOR produced it. Trim re-slices hash rather
// than reallocating; every other mutation allocates a fresh backing
// array so that operands of a merge are never aliased.
type row[I leafIndex] struct {
	hash    []byte
	indices []I
}

func newLeafRow[I leafIndex](h []byte, idx I) row[I] {
	return row[I]{hash: h, indices: []I{idx}}
}

// trim drops the first n bytes of the hash: the bits that just collided
// to zero. It is a re-slice, not a copy.
func (r row[I]) trim(n uint32) row[I] {
	return row[I]{hash: r.hash[n:], indices: r.indices}
}

func (r row[I]) isZero() bool {
	for _, b := range r.hash {
		if b != 0 {
			return false
		}
	}
	return true
}

func (r row[I]) less(o row[I]) bool {
	return bytes.Compare(r.hash, o.hash) < 0
}

func hasCollision[I leafIndex](a, b row[I], nb uint32) bool {
	return bytes.Equal(a.hash[:nb], b.hash[:nb])
}

// xor computes a canonical XOR-merge of a and b: the caller need not
// order the operands itself — if b's first index precedes a's, the
// operands are swapped before hashes are XORed and index histories
// concatenated, so the result's index history always begins with the
// smaller of a.indices[0] and b.indices[0].
func xor[I leafIndex](a, b row[I]) (row[I], error) {
	if len(a.hash) != len(b.hash) {
		return row[I]{}, ErrLengthMismatch
	}
	if len(a.indices) != len(b.indices) {
		return row[I]{}, ErrLengthMismatch
	}
	if b.indices[0] < a.indices[0] {
		a, b = b, a
	}
	h := make([]byte, len(a.hash))
	for i := range h {
		h[i] = a.hash[i] ^ b.hash[i]
	}
	idx := make([]I, 0, len(a.indices)+len(b.indices))
	idx = append(idx, a.indices...)
	idx = append(idx, b.indices...)
	return row[I]{hash: h, indices: idx}, nil
}

// distinctIndices reports whether a and b share no leaf index. It sorts
// copies of both and merge-scans them; callers with small (<=64)
// histories may prefer a set, but the sorted scan is O((|a|+|b|) log)
// regardless of index width.
func distinctIndices[I leafIndex](a, b []I) bool {
	aSorted := append([]I(nil), a...)
	bSorted := append([]I(nil), b...)
	sort.Slice(aSorted, func(i, j int) bool { return aSorted[i] < aSorted[j] })
	sort.Slice(bSorted, func(i, j int) bool { return bSorted[i] < bSorted[j] })
	if len(aSorted) == 0 {
		return true
	}

	i := 0
	for j := 0; j < len(bSorted); j++ {
		for aSorted[i] < bSorted[j] {
			i++
			if i == len(aSorted) {
				return true
			}
		}
		if aSorted[i] == bSorted[j] {
			return false
		}
	}
	return true
}

func sortRows[I leafIndex](rows []row[I]) {
	sort.Slice(rows, func(i, j int) bool { return rows[i].less(rows[j]) })
}

package equihash

import (
	"fmt"

	"github.com/pkg/errors"
)

// Params fixes the two knobs of a Generalized Birthday collision
// schedule: HashBits is the width in bits of the keyed hash output (n in
// the paper), TreeDepth is the number of collision rounds (k). A valid
// solution under Params has exactly SolutionSize() indices.
type Params struct {
	HashBits  uint32
	TreeDepth uint32

	collisionBitLen  uint32 // N = HashBits / (TreeDepth+1)
	collisionByteLen uint32 // Nb = N / 8
	hashByteLen      uint32 // W = HashBits / 8
	initialListLen   uint32 // L = 2^(N+1)
}

// NewParams validates (n, k) against the invariants required by the
// collision schedule and returns a ready-to-use Params. It fails with
// ErrInvalidParams if k >= n, if n is not a multiple of 8, if n/(k+1) is
// not a multiple of 8, or if the resulting per-round index width would
// not fit a 32-bit leaf index.
func NewParams(n, k uint32) (Params, error) {
	if k >= n {
		return Params{}, errors.Wrapf(ErrInvalidParams, "k (%d) must be smaller than n (%d)", k, n)
	}
	if n%8 != 0 {
		return Params{}, errors.Wrapf(ErrInvalidParams, "n (%d) must be a multiple of 8", n)
	}
	collisionBitLen := n / (k + 1)
	if collisionBitLen%8 != 0 {
		return Params{}, errors.Wrapf(ErrInvalidParams, "n/(k+1) (%d) must be a multiple of 8", collisionBitLen)
	}
	if collisionBitLen+1 >= 32 {
		return Params{}, errors.Wrapf(ErrInvalidParams, "n/(k+1)+1 (%d) must fit a 32-bit leaf index", collisionBitLen+1)
	}
	return Params{
		HashBits:         n,
		TreeDepth:        k,
		collisionBitLen:  collisionBitLen,
		collisionByteLen: collisionBitLen / 8,
		hashByteLen:      n / 8,
		initialListLen:   uint32(1) << (collisionBitLen + 1),
	}, nil
}

// CollisionBitLength is N = n/(k+1), the number of bits zeroed by each
// tree level's collision.
func (p Params) CollisionBitLength() uint32 { return p.collisionBitLen }

// CollisionByteLength is Nb = N/8.
func (p Params) CollisionByteLength() uint32 { return p.collisionByteLen }

// HashByteLength is W = n/8, the width of a freshly derived leaf hash.
func (p Params) HashByteLength() uint32 { return p.hashByteLen }

// InitialListLength is L = 2^(N+1), the size of the first row table.
func (p Params) InitialListLength() uint32 { return p.initialListLen }

// SolutionSize is S = 2^k, the number of indices in a valid solution.
func (p Params) SolutionSize() uint32 { return uint32(1) << p.TreeDepth }

func (p Params) String() string {
	return fmt.Sprintf("equihash(n=%d,k=%d)", p.HashBits, p.TreeDepth)
}

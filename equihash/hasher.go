package equihash

import (
	"encoding/binary"
	"hash"

	"github.com/minio/blake2b-simd"
	"github.com/pkg/errors"
)

// personalTag is the fixed 8-byte prefix of the BLAKE2b personalisation
// string; the remaining 8 bytes are LE32(n) || LE32(k).
const personalTag = "ZcashPOW"

// HashState is the caller-owned, opaque base hash: an already
// personalised BLAKE2b state that the caller may have absorbed a
// block-header prefix into via Write. Solvers and the verifier only
// ever append a 32-bit leaf index on top of it, cloning the
// accumulated prefix for every leaf so that a single HashState can be
// reused across an unbounded number of leaf derivations.
type HashState struct {
	params Params
	person [16]byte
	prefix []byte
}

// NewHashState builds the base state for p, personalised with
// "ZcashPOW" || LE32(n) || LE32(k).
func NewHashState(p Params) *HashState {
	s := &HashState{params: p}
	copy(s.person[:8], personalTag)
	binary.LittleEndian.PutUint32(s.person[8:12], p.HashBits)
	binary.LittleEndian.PutUint32(s.person[12:16], p.TreeDepth)
	return s
}

// Write absorbs caller-supplied prefix bytes (e.g. a block header) into
// the base state, ahead of any leaf index. It implements io.Writer and
// never fails.
func (s *HashState) Write(b []byte) (int, error) {
	s.prefix = append(s.prefix, b...)
	return len(b), nil
}

// Clone returns an independent copy of s; mutating the clone's absorbed
// prefix does not affect s.
func (s *HashState) Clone() *HashState {
	clone := &HashState{params: s.params, person: s.person}
	clone.prefix = append([]byte(nil), s.prefix...)
	return clone
}

func (s *HashState) newHash() (hash.Hash, error) {
	h, err := blake2b.New(&blake2b.Config{
		Size:   uint8(s.params.hashByteLen),
		Person: s.person[:],
	})
	if err != nil {
		return nil, errors.Wrap(err, "equihash: could not initialise blake2b state")
	}
	return h, nil
}

// leaf derives the W-byte hash of leaf index i: clone the base state,
// absorb i as a 32-bit little-endian word, finalise.
func (s *HashState) leaf(i uint32) ([]byte, error) {
	h, err := s.newHash()
	if err != nil {
		return nil, err
	}
	if len(s.prefix) > 0 {
		if _, err := h.Write(s.prefix); err != nil {
			return nil, errors.Wrap(err, "equihash: could not absorb header prefix")
		}
	}
	var idx [4]byte
	binary.LittleEndian.PutUint32(idx[:], i)
	if _, err := h.Write(idx[:]); err != nil {
		return nil, errors.Wrap(err, "equihash: could not absorb leaf index")
	}
	return h.Sum(nil), nil
}

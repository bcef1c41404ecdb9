// Package wire encodes and decodes Equihash solutions for transport
// over a byte stream: a fixed-size little-endian SolutionHeader
// followed by each index as a 4-byte little-endian word. Partial
// solutions are written as a 4-byte length followed by their bytes.
package wire

import (
	"encoding/binary"
	"io"

	"github.com/kuking/go-equihash/equihash"
	"github.com/pkg/errors"
)

// SolutionHeader is the fixed-size preamble written ahead of a packed
// solution body: the parameters it was generated under, so a reader
// with no prior context can size its decode buffer correctly.
type SolutionHeader struct {
	N          uint32
	K          uint32
	IndexCount uint32
}

// WriteSolution writes sol to w as a SolutionHeader followed by the
// solution's indices, each a fixed 4-byte little-endian word. p must be
// the Params sol was generated under.
func WriteSolution(w io.Writer, p equihash.Params, sol equihash.Solution) error {
	if uint32(len(sol)) != p.SolutionSize() {
		return errors.Errorf("wire: solution has %d indices, want %d for %v", len(sol), p.SolutionSize(), p)
	}
	header := SolutionHeader{N: p.HashBits, K: p.TreeDepth, IndexCount: uint32(len(sol))}
	if err := binary.Write(w, binary.LittleEndian, header); err != nil {
		return errors.Wrap(err, "wire: could not write solution header")
	}
	if err := binary.Write(w, binary.LittleEndian, []uint32(sol)); err != nil {
		return errors.Wrap(err, "wire: could not write solution indices")
	}
	return nil
}

// ReadSolution reads a SolutionHeader and matching solution body from
// r, validating the header's (n,k) against p before allocating the
// index slice.
func ReadSolution(r io.Reader, p equihash.Params) (equihash.Solution, error) {
	var header SolutionHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, errors.Wrap(err, "wire: could not read solution header")
	}
	if header.N != p.HashBits || header.K != p.TreeDepth {
		return nil, errors.Errorf("wire: solution header (n=%d,k=%d) does not match expected %v", header.N, header.K, p)
	}
	if header.IndexCount != p.SolutionSize() {
		return nil, errors.Errorf("wire: solution header declares %d indices, want %d", header.IndexCount, p.SolutionSize())
	}
	sol := make(equihash.Solution, header.IndexCount)
	if err := binary.Read(r, binary.LittleEndian, sol); err != nil {
		return nil, errors.Wrap(err, "wire: could not read solution indices")
	}
	return sol, nil
}

// WritePartialSolution writes a PartialSolution as its raw byte slice;
// each entry is already a single byte, so no width conversion applies.
func WritePartialSolution(w io.Writer, partial equihash.PartialSolution) error {
	if err := binary.Write(w, binary.LittleEndian, uint32(len(partial))); err != nil {
		return errors.Wrap(err, "wire: could not write partial solution length")
	}
	if err := binary.Write(w, binary.LittleEndian, []uint8(partial)); err != nil {
		return errors.Wrap(err, "wire: could not write partial solution body")
	}
	return nil
}

// ReadPartialSolution reads a PartialSolution written by
// WritePartialSolution.
func ReadPartialSolution(r io.Reader) (equihash.PartialSolution, error) {
	var count uint32
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return nil, errors.Wrap(err, "wire: could not read partial solution length")
	}
	partial := make(equihash.PartialSolution, count)
	if err := binary.Read(r, binary.LittleEndian, partial); err != nil {
		return nil, errors.Wrap(err, "wire: could not read partial solution body")
	}
	return partial, nil
}

package equihash

import "github.com/pkg/errors"

// ErrInvalidParams is returned when (n, k) violate the parameter
// invariants required by the Generalized Birthday collision schedule.
var ErrInvalidParams = errors.New("equihash: invalid (n, k) parameters")

// ErrLengthMismatch is returned by an XOR-merge attempted on rows whose
// hash buffers or index histories are not the same length. It indicates
// a programmer error in the caller and is fatal to the enclosing solve.
var ErrLengthMismatch = errors.New("equihash: row length mismatch")

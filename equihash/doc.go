// Package equihash implements the Equihash proof-of-work: Biryukov and
// Khovratovich's reduction of proof-of-work to the Generalized Birthday
// Problem. Given a keyed, personalised hash function and parameters (n, k),
// a solution is a set of 2^k distinct input indices whose hashes XOR to
// zero under a tree-structured collision schedule.
//
// The package provides a reference solver (Solve), a memory-reduced
// solver (SolveOptimised) and a verifier (IsValidSolution). Callers own
// the hash state: this package never dials a socket, reads a config
// file, or iterates a nonce.
package equihash

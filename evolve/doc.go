// Package evolve implements the recursive Hamiltonian-splitting driver:
// split the incoming view into connected components and a rest set,
// recursively evolve each component at half step (optionally in
// parallel), bracket that recursion with drift/kick operators over the
// rest set and across component boundaries, then recurse the second half
// step. See Evolver.Evolve.
package evolve

// Package ccsplit decomposes a nbsys.View into connected components of its
// time-step graph, plus a rest view of the singleton (non-interacting)
// remainder.
//
// What:
//
//   - Split partitions a view in place, by swapping particles within its
//     shared buffer, into a list of non-trivial components (size >= 2)
//     whose members are pairwise reachable via fast (timestep <= |dt|)
//     edges, and a rest view holding everything left over.
//   - Verify and VerifyTimesteps are optional, expensive consistency
//     checks of a split's output: every particle accounted for exactly
//     once, and no fast edge crossing a component boundary.
//
// Why: the recursive evolver (package evolve) needs this decomposition at
// every level of its recursion to isolate subsystems that require a
// shorter time step than the current pivot step.
//
// Complexity: Split is O(n^2) in the worst case (a fully-connected time-step
// graph probes every remaining candidate against the current stack head);
// Verify is O(n^2) and VerifyTimesteps up to O(n^2) per component pair.
//
// Errors: every failure here is an unrecoverable precondition or
// consistency violation (*nbsys.InvariantError) raised via panic; see
// package nbsys and the module's top-level error-handling notes.
package ccsplit

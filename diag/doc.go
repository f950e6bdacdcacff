// Package diag collects recursion-level bookkeeping counters emitted while
// an integrator runs: split invocations, pairwise timestep evaluations,
// dispatched tasks, and completed deep (leaf) steps. It plays the role the
// original model's global instrumentation counters played, but scoped to a
// single evolve run and safe for concurrent writers.
package diag

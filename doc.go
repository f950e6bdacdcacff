// Package huayno provides a recursive, connected-components-splitting
// Hamiltonian integrator for gravitational N-body systems.
//
// A simulation step recursively partitions the particle set into
// tightly-interacting components (package ccsplit) by comparing every
// pairwise critical time step against the current step size, then evolves
// each component and the remaining loosely-coupled rest independently
// before recombining them with cross-component kicks (package evolve).
// The force model and leaf integrators (Kepler, Bulirsch-Stoer) are
// supplied by a caller-provided collab.Physics implementation; package
// nbsys defines the shared particle and view types both packages operate
// on.
//
// Subpackages:
//
//	nbsys/     — particle storage and slice-window views over it
//	ccsplit/   — connected-component splitting and its verification
//	collab/    — the Physics interface leaf integrators implement
//	evolve/    — the recursive split + drift/kick + recurse scheme
//	diag/      — per-level concurrency-safe diagnostic counters
//	config/    — layered configuration for the evolver
//	fixtures/  — canonical synthetic test systems
//
// See the tests of package evolve for end-to-end usage.
package huayno

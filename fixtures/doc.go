// Package fixtures builds the canonical synthetic particle systems used to
// exercise ccsplit and evolve: a pure-rest swarm, tight binaries (single,
// disjoint pair, and chain-connected), a mixed massive/massless system, and
// a circular two-body Kepler pair. Each constructor pairs deterministic
// particle data with a matching ccsplit.TimestepFunc built from an
// explicit pairwise table, so tests can assert on exact component
// membership without depending on any particular force model.
package fixtures

// Package testphys is a reference collab.Physics implementation: direct
// pairwise-summation gravity for Drift/Kick/Timestep, a closed-form
// two-body Kepler propagator (Curtis's universal-variable formulation) for
// EvolveKepler, and fixed/adaptive leapfrog substepping standing in for
// EvolveBS/EvolveBSAdaptive. It exists to exercise and test package evolve;
// it is not a general-purpose physics engine.
package testphys

package collab

import "github.com/katalvlaran/huayno-cc/nbsys"

// Physics is the full set of external collaborators an Evolver needs: a
// pairwise time-step criterion, drift/kick primitives, the three leaf
// integrators, and center-of-mass helpers. A single Physics value is
// shared read-only across every recursion level and every dispatched task.
type Physics interface {
	// Timestep returns the critical time step for the pair (p, q). It must
	// be symmetric in (p, q) up to sign(dir), and strictly positive for
	// any distinct pair. Its signature matches ccsplit.TimestepFunc, so a
	// Physics value's method can be passed directly to ccsplit.Split.
	Timestep(p, q *nbsys.Particle, dir int) float64

	// Drift advances the positions of every particle in v by h, toward
	// absolute time tTarget.
	Drift(level int, v *nbsys.View, tTarget, h float64)

	// Kick applies an impulse to sink's velocities sourced from src's
	// masses and positions over step h. sink == src means internal
	// (self-)interactions.
	Kick(level int, sink, src *nbsys.View, h float64)

	// EvolveKepler analytically advances a two-body (or one-massive-body)
	// view by h, for the KEPLER integrator-type family.
	EvolveKepler(level int, v *nbsys.View, t0, t1, h float64)

	// EvolveBS advances v by h with a fixed-order Bulirsch-Stoer leaf
	// integrator, for the BS integrator-type family.
	EvolveBS(level int, v *nbsys.View, t0, t1, h float64)

	// EvolveBSAdaptive is EvolveBS with internal step-size adaptation, for
	// the BSA integrator-type family.
	EvolveBSAdaptive(level int, v *nbsys.View, t0, t1, h float64)

	// CenterOfMass returns v's mass-weighted center of position and
	// velocity.
	CenterOfMass(v *nbsys.View) (pos, vel [3]float64)

	// MoveSystem shifts every particle in v by sign*pos and sign*vel
	// (sign is +1 or -1), used to enter/leave the center-of-mass frame.
	MoveSystem(v *nbsys.View, pos, vel [3]float64, sign int)
}

package evolve

import (
	"math"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/huayno-cc/ccsplit"
	"github.com/katalvlaran/huayno-cc/collab"
	"github.com/katalvlaran/huayno-cc/config"
	"github.com/katalvlaran/huayno-cc/diag"
	"github.com/katalvlaran/huayno-cc/nbsys"
)

// timestepEpsilon bounds the allowed drift between etime-stime and the
// caller-supplied dt in Evolve's consistency check.
const timestepEpsilon = 1e-9

// Evolver drives the recursive split + drift/kick + recurse scheme over a
// shared Physics collaborator. A single Evolver is safe to reuse across
// calls and, once a call is in flight, to read concurrently from the
// goroutines its own task dispatch spawns (see dispatch.go); Evolve itself
// must not be called concurrently on overlapping views.
type Evolver struct {
	Physics collab.Physics
	Config  config.Config
	Diag    *diag.Sink
	Log     *logrus.Entry
}

// NewEvolver builds an Evolver. diagSink and log may be nil: a nil sink
// disables bookkeeping (ccsplit.Split and Evolve both tolerate it), and a
// nil log disables structured tracing.
func NewEvolver(physics collab.Physics, cfg config.Config, diagSink *diag.Sink, log *logrus.Entry) *Evolver {
	return &Evolver{Physics: physics, Config: cfg, Diag: diagSink, Log: log}
}

// Evolve advances view s by one step h = t1 - t0, selecting a leaf
// integrator shortcut, a Bulirsch-Stoer shortcut, or the full recursive
// split + drift/kick + recurse scheme, per the eligibility rules below.
// level is the current recursion depth (0 at the root); recenter requests
// center-of-mass recentering for CCC-family integrator types.
func (e *Evolver) Evolve(level int, s *nbsys.View, t0, t1, h float64, inttype config.IntegratorType, recenter bool) {
	if math.Abs((t1-t0)-h) > timestepEpsilon {
		nbsys.Fatalf(level, "evolve-timestep-consistency", "t1-t0=%g does not match h=%g", t1-t0, h)
	}

	if e.tryKeplerShortcut(level, s, t0, t1, h, inttype) {
		return
	}
	if e.tryBSShortcut(level, s, t0, t1, h, inttype) {
		return
	}

	var cmPos, cmVel [3]float64
	recentering := recenter && inttype.Recenter()
	if recentering {
		cmPos, cmVel = e.Physics.CenterOfMass(s)
		e.Physics.MoveSystem(s, cmPos, cmVel, -1)
	}

	if e.Config.SplitShortcuts {
		if done := e.trySplitShortcut(level, s, t0, h, inttype, recentering, cmPos, cmVel); done {
			return
		}
	}

	head, rest := ccsplit.Split(level, *s, h, e.timestepFunc(), e.counters())
	if e.Config.VerifySplit {
		ccsplit.Verify(level, *s, head, rest)
		ccsplit.VerifyTimesteps(level, head, rest, h, e.timestepFunc())
	}

	comps := nbsys.Components(head)
	if len(comps) == 0 && e.Diag != nil {
		e.Diag.IncDeepStep(level)
		e.Diag.AddSimTime(h)
	}

	recenterSub := len(comps) > 1 || rest.N > 0

	e.logStep(level, s, comps, rest, h)

	e.dispatchHalfStep(level, comps, t0, t0+h/2, h/2, inttype, recenterSub)

	if rest.N > 0 {
		e.Physics.Drift(level, rest, t0+h/2, h/2)
	}

	for _, ci := range comps {
		for _, cj := range comps {
			if ci != cj {
				e.Physics.Kick(level, ci, cj, h)
			}
		}
	}

	if rest.N > 0 {
		for _, ci := range comps {
			e.Physics.Kick(level, rest, ci, h)
			e.Physics.Kick(level, ci, rest, h)
		}
		e.Physics.Kick(level, rest, rest, h)
	}

	if rest.N > 0 {
		e.Physics.Drift(level, rest, t1, h/2)
	}

	e.dispatchHalfStep(level, comps, t0+h/2, t1, h/2, inttype, recenterSub)

	if recentering {
		cmPos = [3]float64{cmPos[0] + cmVel[0]*h, cmPos[1] + cmVel[1]*h, cmPos[2] + cmVel[2]*h}
		e.Physics.MoveSystem(s, cmPos, cmVel, 1)
	}
}

func (e *Evolver) timestepFunc() ccsplit.TimestepFunc {
	return e.Physics.Timestep
}

// counters adapts e.Diag to ccsplit.Counters, returning a true nil
// interface (not a nil *diag.Sink boxed in a non-nil interface) when no
// sink is configured, so Split's own nil check stays meaningful.
func (e *Evolver) counters() ccsplit.Counters {
	if e.Diag == nil {
		return nil
	}
	return e.Diag
}

// trySplitShortcut implements the optional CC2_SPLIT_SHORTCUTS behavior:
// when the pivot step h exceeds the system's maximum pairwise critical
// time step, subdivide h into smaller sub-steps (each re-evaluated
// against the same shortcut) before ever calling ccsplit.Split. Disabled
// unless Config.SplitShortcuts is set.
func (e *Evolver) trySplitShortcut(level int, s *nbsys.View, t0, h float64, inttype config.IntegratorType, recentering bool, cmPos, cmVel [3]float64) bool {
	dir := 1
	if h < 0 {
		dir = -1
	}
	maxTS := ccsplit.MaxPairTimestep(*s, dir, e.timestepFunc())
	if maxTS <= 0 || math.Abs(h) <= maxTS {
		return false
	}

	dtStep := h
	subLevel := level
	for math.Abs(dtStep) > maxTS {
		dtStep /= 2
		subLevel++
	}

	steps := int(math.Round(h / dtStep))
	tNow := t0
	for i := 0; i < steps; i++ {
		e.Evolve(subLevel, s, tNow, tNow+dtStep, dtStep, inttype, false)
		tNow += dtStep
	}

	if recentering {
		cmPos = [3]float64{cmPos[0] + cmVel[0]*h, cmPos[1] + cmVel[1]*h, cmPos[2] + cmVel[2]*h}
		e.Physics.MoveSystem(s, cmPos, cmVel, 1)
	}
	return true
}

// tryKeplerShortcut delegates to the analytic Kepler leaf when s is a pair
// (or a single massive primary with any number of massless companions) and
// inttype is of the KEPLER family.
func (e *Evolver) tryKeplerShortcut(level int, s *nbsys.View, t0, t1, h float64, inttype config.IntegratorType) bool {
	if inttype != config.CCKepler && inttype != config.CCCKepler {
		return false
	}
	if s.N == 2 || s.N-s.NZero <= 1 {
		e.Physics.EvolveKepler(level, s, t0, t1, h)
		return true
	}
	return false
}

// tryBSShortcut delegates to a Bulirsch-Stoer leaf when s is small enough
// and inttype is of a BS family.
func (e *Evolver) tryBSShortcut(level int, s *nbsys.View, t0, t1, h float64, inttype config.IntegratorType) bool {
	if s.N > e.Config.BSSubsysSize {
		return false
	}
	switch inttype {
	case config.CCBS, config.CCCBS:
		e.Physics.EvolveBS(level, s, t0, t1, h)
		return true
	case config.CCBSA, config.CCCBSA:
		e.Physics.EvolveBSAdaptive(level, s, t0, t1, h)
		return true
	}
	return false
}

func (e *Evolver) logStep(level int, s *nbsys.View, comps []*nbsys.View, rest *nbsys.View, h float64) {
	if e.Log == nil {
		return
	}
	e.Log.WithFields(logrus.Fields{
		"level":  level,
		"n":      s.N,
		"nzero":  s.NZero,
		"clevel": len(comps),
		"rest_n": rest.N,
		"h":      h,
	}).Debug("evolve: step")
}

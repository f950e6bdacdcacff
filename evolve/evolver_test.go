package evolve_test

import (
	"math"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/huayno-cc/config"
	"github.com/katalvlaran/huayno-cc/diag"
	"github.com/katalvlaran/huayno-cc/evolve"
	"github.com/katalvlaran/huayno-cc/nbsys"
)

// fakePhysics is a deterministic, table-driven Physics double that lets
// evolver tests assert on the scheme's control flow (call counts)
// independent of any real force model.
type fakePhysics struct {
	fast map[[2]int64]float64
	slow float64

	driftCalls  atomic.Int64
	kickCalls   atomic.Int64
	keplerCalls atomic.Int64
	bsCalls     atomic.Int64
	bsaCalls    atomic.Int64
}

func pairKey(a, b int64) [2]int64 {
	if a > b {
		a, b = b, a
	}
	return [2]int64{a, b}
}

func (f *fakePhysics) Timestep(p, q *nbsys.Particle, dir int) float64 {
	if v, ok := f.fast[pairKey(p.ID, q.ID)]; ok {
		return v
	}
	return f.slow
}

func (f *fakePhysics) Drift(level int, v *nbsys.View, tTarget, h float64) {
	f.driftCalls.Add(1)
	for i := 0; i < v.N; i++ {
		p := v.At(i)
		p.Pos[0] += p.Vel[0] * h
	}
}

func (f *fakePhysics) Kick(level int, sink, src *nbsys.View, h float64) {
	f.kickCalls.Add(1)
}

func (f *fakePhysics) EvolveKepler(level int, v *nbsys.View, t0, t1, h float64) {
	f.keplerCalls.Add(1)
}

func (f *fakePhysics) EvolveBS(level int, v *nbsys.View, t0, t1, h float64) {
	f.bsCalls.Add(1)
}

func (f *fakePhysics) EvolveBSAdaptive(level int, v *nbsys.View, t0, t1, h float64) {
	f.bsaCalls.Add(1)
}

func (f *fakePhysics) CenterOfMass(v *nbsys.View) (pos, vel [3]float64) { return }

func (f *fakePhysics) MoveSystem(v *nbsys.View, pos, vel [3]float64, sign int) {}

func makeParticles(n int, masslessFrom int) []nbsys.Particle {
	ps := make([]nbsys.Particle, n)
	for i := 0; i < n; i++ {
		mass := 1.0
		if masslessFrom >= 0 && i >= masslessFrom {
			mass = 0
		}
		ps[i] = nbsys.Particle{ID: int64(i), Mass: mass}
	}
	return ps
}

// TestEvolve_PureRest is spec scenario 2: with every pairwise time step
// slower than |h|, split never produces a component, so the evolver
// performs exactly one drift-kick-drift over R = S.
func TestEvolve_PureRest(t *testing.T) {
	phys := &fakePhysics{slow: 10}
	sink := diag.NewSink(nil)
	ev := evolve.NewEvolver(phys, config.Default(), sink, nil)

	ps := makeParticles(8, -1)
	v := nbsys.NewRootView(ps, 0)

	ev.Evolve(0, v, 0, 1, 1, config.CC, false)

	require.Equal(t, int64(2), phys.driftCalls.Load()) // drift r twice (half+half)
	require.Equal(t, int64(1), phys.kickCalls.Load())  // self-kick on R only
	require.Equal(t, int64(0), phys.keplerCalls.Load())
	require.Equal(t, int64(0), phys.bsCalls.Load())

	snaps := sink.Snapshot()
	require.Len(t, snaps, 1)
	require.Equal(t, int64(1), snaps[0].DeepSteps)
}

// TestEvolve_SingleTightBinary is spec scenario 3: a 10-particle system
// with one tight pair recurses into exactly that component and evolves
// the remaining 8 as rest.
func TestEvolve_SingleTightBinary(t *testing.T) {
	phys := &fakePhysics{fast: map[[2]int64]float64{pairKey(0, 1): 0.01}, slow: 1}
	sink := diag.NewSink(nil)
	ev := evolve.NewEvolver(phys, config.Default(), sink, nil)

	ps := makeParticles(10, -1)
	v := nbsys.NewRootView(ps, 0)

	require.NotPanics(t, func() { ev.Evolve(0, v, 0, 0.1, 0.1, config.CC, false) })

	// The tight pair recurses from level 1 downward (first and second half
	// at every level) until the halved step drops below its 0.01 time
	// step; there split leaves both particles in rest and each such call
	// runs its own drift-kick-drift over that 2-particle rest.
	require.Greater(t, phys.kickCalls.Load(), int64(1))
}

// TestEvolve_KeplerShortcutNeverSplits is spec scenario 1: a circular
// two-body Kepler pair evolved over h = 2*pi never calls split; it
// short-circuits straight to EvolveKepler.
func TestEvolve_KeplerShortcutNeverSplits(t *testing.T) {
	phys := &fakePhysics{slow: 10}
	sink := diag.NewSink(nil)
	ev := evolve.NewEvolver(phys, config.Default(), sink, nil)

	ps := []nbsys.Particle{
		{ID: 0, Mass: 1, Pos: [3]float64{-0.5, 0, 0}, Vel: [3]float64{0, -0.5 * math.Sqrt(2), 0}},
		{ID: 1, Mass: 1, Pos: [3]float64{0.5, 0, 0}, Vel: [3]float64{0, 0.5 * math.Sqrt(2), 0}},
	}
	v := nbsys.NewRootView(ps, 0)

	ev.Evolve(0, v, 0, 2*math.Pi, 2*math.Pi, config.CCCKepler, true)

	require.Equal(t, int64(1), phys.keplerCalls.Load())
	require.Equal(t, int64(0), phys.driftCalls.Load())
	require.Equal(t, int64(0), phys.kickCalls.Load())
	require.Empty(t, sink.Snapshot())
}

// TestEvolve_BSShortcutForSmallSystems checks that a system at or below
// BSSubsysSize delegates to the BS family leaf instead of splitting, when
// inttype requests it.
func TestEvolve_BSShortcutForSmallSystems(t *testing.T) {
	phys := &fakePhysics{slow: 10}
	cfg := config.Default()
	cfg.BSSubsysSize = 20
	ev := evolve.NewEvolver(phys, cfg, diag.NewSink(nil), nil)

	ps := makeParticles(5, -1)
	v := nbsys.NewRootView(ps, 0)

	ev.Evolve(0, v, 0, 1, 1, config.CCBS, false)
	require.Equal(t, int64(1), phys.bsCalls.Load())
}

// TestEvolve_ConsistencyCheckPanicsOnMismatchedStep verifies the
// t1-t0==h invariant is enforced.
func TestEvolve_ConsistencyCheckPanicsOnMismatchedStep(t *testing.T) {
	phys := &fakePhysics{slow: 10}
	ev := evolve.NewEvolver(phys, config.Default(), diag.NewSink(nil), nil)
	ps := makeParticles(4, -1)
	v := nbsys.NewRootView(ps, 0)
	require.Panics(t, func() { ev.Evolve(0, v, 0, 1, 0.5, config.CC, false) })
}

// TestEvolve_SerialAndParallelDispatchAgreeOnDeepSteps checks that
// limiting MaxParallelDepth to 0 (fully serial dispatch) versus leaving
// it unbounded does not change the recursive structure of the
// computation (same deep-step totals).
func TestEvolve_SerialAndParallelDispatchAgreeOnDeepSteps(t *testing.T) {
	fast := map[[2]int64]float64{}
	for i := 0; i < 11; i++ {
		fast[pairKey(int64(i), int64(i+1))] = 0.01
	}

	run := func(maxDepth int) int64 {
		phys := &fakePhysics{fast: fast, slow: 10}
		cfg := config.Default()
		cfg.BSSubsysSize = 2
		cfg.MaxParallelDepth = maxDepth
		sink := diag.NewSink(nil)
		ev := evolve.NewEvolver(phys, cfg, sink, nil)

		ps := makeParticles(12, -1)
		v := nbsys.NewRootView(ps, 0)
		ev.Evolve(0, v, 0, 0.01+1e-9, 0.01+1e-9, config.CC, false)

		var total int64
		for _, snap := range sink.Snapshot() {
			total += snap.DeepSteps
		}
		return total
	}

	serial := run(0)
	parallel := run(1 << 30)
	require.Equal(t, serial, parallel)
}

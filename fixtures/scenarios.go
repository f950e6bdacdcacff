package fixtures

import (
	"github.com/katalvlaran/huayno-cc/ccsplit"
	"github.com/katalvlaran/huayno-cc/nbsys"
)

// defaultSlow is the critical time step returned for any pair not named in
// a scenario's fast table: large enough that no ordinary h ever triggers a
// split along that pair.
const defaultSlow = 1e6

// pairKey canonicalizes an unordered particle-ID pair for table lookup.
func pairKey(a, b int64) [2]int64 {
	if a > b {
		a, b = b, a
	}
	return [2]int64{a, b}
}

// TableTimestep builds a ccsplit.TimestepFunc from an explicit pairwise
// table: fast[{a,b}] (in either order) takes priority over slow, which
// applies to every other pair.
//
// Contract: fast must hold only finite positive values; slow must be
// strictly positive. Determinism: lookups are keyed purely on particle ID,
// independent of dir or argument order.
func TableTimestep(fast map[[2]int64]float64, slow float64) ccsplit.TimestepFunc {
	return func(p, q *nbsys.Particle, dir int) float64 {
		if v, ok := fast[pairKey(p.ID, q.ID)]; ok {
			return v
		}
		return slow
	}
}

// line lays out n particles of the given mass along the x-axis, spaced one
// unit apart, with zero velocity, IDs 0..n-1 in order.
func line(n int, mass float64) []nbsys.Particle {
	ps := make([]nbsys.Particle, n)
	for i := 0; i < n; i++ {
		ps[i] = nbsys.Particle{ID: int64(i), Mass: mass, Pos: [3]float64{float64(i), 0, 0}}
	}
	return ps
}

// PureRest returns spec scenario 2: n massive particles with every pairwise
// time step far above any reasonable h, so Split never closes a component
// and the whole view stays in rest.
//
// Complexity: O(n) to build. Determinism: particle i always has ID i.
func PureRest(n int) ([]nbsys.Particle, int, ccsplit.TimestepFunc) {
	return line(n, 1), 0, TableTimestep(nil, defaultSlow)
}

// SingleTightBinary returns spec scenario 3: n massive particles at rest
// along the x-axis, where only particles 0 and 1 have a pairwise time step
// tight enough to always close into its own two-particle component.
func SingleTightBinary(n int) ([]nbsys.Particle, int, ccsplit.TimestepFunc) {
	fast := map[[2]int64]float64{pairKey(0, 1): 1e-3}
	return line(n, 1), 0, TableTimestep(fast, defaultSlow)
}

// TwoDisjointBinaries returns spec scenario 4: n (n >= 4) massive particles
// containing two disjoint tight pairs, (0,1) and (2,3), with everything
// else slow, so Split closes exactly two independent components.
func TwoDisjointBinaries(n int) ([]nbsys.Particle, int, ccsplit.TimestepFunc) {
	fast := map[[2]int64]float64{
		pairKey(0, 1): 1e-3,
		pairKey(2, 3): 1e-3,
	}
	return line(n, 1), 0, TableTimestep(fast, defaultSlow)
}

// Chain returns spec scenario 5: n massive particles linked consecutively
// (0-1, 1-2, ..., (n-2)-(n-1)) by tight pairwise time steps, so Split
// transitively folds the entire chain into a single n-particle component.
func Chain(n int) ([]nbsys.Particle, int, ccsplit.TimestepFunc) {
	fast := make(map[[2]int64]float64, n-1)
	for i := 0; i < n-1; i++ {
		fast[pairKey(int64(i), int64(i+1))] = 1e-3
	}
	return line(n, 1), 0, TableTimestep(fast, defaultSlow)
}

// MixedMassless returns a variant of spec scenario 6: nMassive massive
// particles (with a tight binary at indices 0 and 1) followed by nMassless
// massless
// particles, each of which is tightly bound to particle 0 only. Massless
// particles never bind to each other: two masslesses sharing a tight time
// step to the same massive anchor still end up in the same component,
// because Split folds transitively through the shared massive seed.
func MixedMassless(nMassive, nMassless int) ([]nbsys.Particle, int, ccsplit.TimestepFunc) {
	massive := line(nMassive, 1)
	massless := make([]nbsys.Particle, nMassless)
	for i := 0; i < nMassless; i++ {
		massless[i] = nbsys.Particle{ID: int64(nMassive + i), Mass: 0, Pos: [3]float64{0.5, float64(i + 1), 0}}
	}

	fast := map[[2]int64]float64{}
	if nMassive >= 2 {
		fast[pairKey(0, 1)] = 1e-3
	}
	for i := 0; i < nMassless; i++ {
		fast[pairKey(0, int64(nMassive+i))] = 1e-3
	}

	ps := append(massive, massless...)
	return ps, nMassless, TableTimestep(fast, defaultSlow)
}

// KeplerCircular returns spec scenario 1: two equal-mass particles on a
// circular orbit of radius 0.5 about their shared center of mass under
// G = 1 two-body dynamics (mu = 2, separation 1), so a full revolution
// takes 2*pi*sqrt(1/2) = pi*sqrt(2). Every pairwise time step is reported fast,
// since a two-particle view always collapses to a single component anyway.
func KeplerCircular() ([]nbsys.Particle, int, ccsplit.TimestepFunc) {
	const speed = 0.7071067811865476 // 0.5 * sqrt(2), matches G=1, r=0.5 circular speed
	ps := []nbsys.Particle{
		{ID: 0, Mass: 1, Pos: [3]float64{-0.5, 0, 0}, Vel: [3]float64{0, -speed, 0}},
		{ID: 1, Mass: 1, Pos: [3]float64{0.5, 0, 0}, Vel: [3]float64{0, speed, 0}},
	}
	return ps, 0, TableTimestep(nil, 1e-3)
}

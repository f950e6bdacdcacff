package testphys

import "github.com/katalvlaran/huayno-cc/nbsys"

// leapfrogSubsteps advances v by h using n fixed drift-kick-drift
// substeps of size h/n, with self-kicks only (v evolved in isolation).
func (p *GravityPhysics) leapfrogSubsteps(level int, v *nbsys.View, t0, h float64, n int) {
	sub := h / float64(n)
	t := t0
	for s := 0; s < n; s++ {
		p.Drift(level, v, t+sub/2, sub/2)
		p.Kick(level, v, v, sub)
		p.Drift(level, v, t+sub, sub/2)
		t += sub
	}
}

// EvolveBS advances v by h with a fixed-substep leapfrog, standing in for
// a fixed-order Bulirsch-Stoer leaf integrator.
func (p *GravityPhysics) EvolveBS(level int, v *nbsys.View, t0, t1, h float64) {
	p.leapfrogSubsteps(level, v, t0, h, p.bsSubsteps)
}

// EvolveBSAdaptive advances v by h with Richardson-extrapolation step
// doubling: it compares one n-substep pass against one 2n-substep pass on
// independent scratch copies and doubles n until the position difference
// falls under the configured tolerance (or bsaMaxHalves is reached), then
// commits the finer pass to v.
func (p *GravityPhysics) EvolveBSAdaptive(level int, v *nbsys.View, t0, t1, h float64) {
	n := p.bsSubsteps
	var fine *nbsys.View

	for iter := 0; iter < p.bsaMaxHalves; iter++ {
		coarse := nbsys.CopyToScratch(v)
		p.leapfrogSubsteps(level, coarse, t0, h, n)

		fine = nbsys.CopyToScratch(v)
		p.leapfrogSubsteps(level, fine, t0, h, 2*n)

		if maxPositionDelta(coarse, fine) < p.bsaTol {
			break
		}
		n *= 2
	}

	nbsys.CopyBack(v, fine)
}

func maxPositionDelta(a, b *nbsys.View) float64 {
	var maxD float64
	for i := 0; i < a.N; i++ {
		d := vNorm(vSub(a.At(i).Pos, b.At(i).Pos))
		if d > maxD {
			maxD = d
		}
	}
	return maxD
}

package testphys

import (
	"math"

	"github.com/katalvlaran/huayno-cc/nbsys"
)

// stumpffC and stumpffS are the Stumpff functions used by the universal-
// variable Kepler propagator; they are well-defined and smooth across
// elliptic (z>0), parabolic (z=0), and hyperbolic (z<0) regimes.
func stumpffC(z float64) float64 {
	switch {
	case z > 1e-8:
		sq := math.Sqrt(z)
		return (1 - math.Cos(sq)) / z
	case z < -1e-8:
		sq := math.Sqrt(-z)
		return (math.Cosh(sq) - 1) / (-z)
	default:
		return 0.5
	}
}

func stumpffS(z float64) float64 {
	switch {
	case z > 1e-8:
		sq := math.Sqrt(z)
		return (sq - math.Sin(sq)) / (sq * sq * sq)
	case z < -1e-8:
		sq := math.Sqrt(-z)
		return (math.Sinh(sq) - sq) / (sq * sq * sq)
	default:
		return 1.0 / 6.0
	}
}

// universalPropagate advances a relative state (r0, v0) under a central
// mass parameter mu by time dt, returning the new relative state. It
// follows Curtis's universal-variable formulation (Orbital Mechanics for
// Engineering Students), solved by Newton iteration on the universal
// anomaly chi.
func universalPropagate(r0Vec, v0Vec [3]float64, mu, dt, tol float64) (r1Vec, v1Vec [3]float64) {
	r0 := vNorm(r0Vec)
	if r0 == 0 || mu == 0 {
		return r0Vec, v0Vec
	}
	vr0 := vDot(r0Vec, v0Vec) / r0
	alpha := 2/r0 - vDot(v0Vec, v0Vec)/mu

	sqrtMu := math.Sqrt(mu)
	chi := sqrtMu * math.Abs(alpha) * dt
	if chi == 0 {
		chi = sqrtMu * dt / r0
	}

	var z, C, S float64
	for iter := 0; iter < 100; iter++ {
		z = alpha * chi * chi
		C = stumpffC(z)
		S = stumpffS(z)

		f := r0*vr0/sqrtMu*chi*chi*C + (1-alpha*r0)*chi*chi*chi*S + r0*chi - sqrtMu*dt
		fPrime := r0*vr0/sqrtMu*chi*(1-z*S) + (1-alpha*r0)*chi*chi*C + r0

		if fPrime == 0 {
			break
		}
		ratio := f / fPrime
		chi -= ratio
		if math.Abs(ratio) < tol {
			break
		}
	}

	z = alpha * chi * chi
	C = stumpffC(z)
	S = stumpffS(z)

	f := 1 - chi*chi/r0*C
	g := dt - chi*chi*chi/sqrtMu*S

	r1Vec = vAdd(vScale(r0Vec, f), vScale(v0Vec, g))
	r1 := vNorm(r1Vec)

	fDot := sqrtMu / (r1 * r0) * (z*S - 1) * chi
	gDot := 1 - chi*chi/r1*C

	v1Vec = vAdd(vScale(r0Vec, fDot), vScale(v0Vec, gDot))
	return r1Vec, v1Vec
}

// twoBody advances the pair (a, b) under their mutual gravity by dt,
// splitting the relative-orbit update between them in proportion to mass:
// a fully massless b orbits a fixed a (the restricted two-body problem
// falls out of this formula automatically when b.Mass == 0).
func (p *GravityPhysics) twoBody(a, b *nbsys.Particle, dt float64) {
	mu := p.g * (a.Mass + b.Mass)
	if mu == 0 {
		a.Pos, a.Vel = vAdd(a.Pos, vScale(a.Vel, dt)), a.Vel
		b.Pos, b.Vel = vAdd(b.Pos, vScale(b.Vel, dt)), b.Vel
		return
	}

	r0 := vSub(b.Pos, a.Pos)
	v0 := vSub(b.Vel, a.Vel)
	r1, v1 := universalPropagate(r0, v0, mu, dt, p.keplerTol)

	total := a.Mass + b.Mass
	fracA := b.Mass / total // a moves by this much of the relative-position delta
	fracB := a.Mass / total

	dR := vSub(r1, r0)
	dV := vSub(v1, v0)

	a.Pos = vSub(a.Pos, vScale(dR, fracA))
	a.Vel = vSub(a.Vel, vScale(dV, fracA))
	b.Pos = vAdd(b.Pos, vScale(dR, fracB))
	b.Vel = vAdd(b.Vel, vScale(dV, fracB))
}

// EvolveKepler advances v by h analytically. It requires v.N == 2, or at
// most one massive particle among an arbitrary number of massless ones (a
// restricted many-body swarm around a single primary); these are exactly
// the conditions under which an Evolver delegates to EvolveKepler instead
// of recursing.
func (p *GravityPhysics) EvolveKepler(level int, v *nbsys.View, t0, t1, h float64) {
	var massiveIdx []int
	for i := 0; i < v.N; i++ {
		if v.At(i).Mass != 0 {
			massiveIdx = append(massiveIdx, i)
		}
	}

	switch len(massiveIdx) {
	case 0:
		p.Drift(level, v, t1, h)
	case 1:
		primary := v.At(massiveIdx[0])
		for i := 0; i < v.N; i++ {
			if i == massiveIdx[0] {
				continue
			}
			p.twoBody(primary, v.At(i), h)
		}
	default:
		// Outside the documented N==2/single-primary precondition: best
		// effort, pairing every other body with the first massive one.
		primary := v.At(massiveIdx[0])
		for i := 0; i < v.N; i++ {
			if i == massiveIdx[0] {
				continue
			}
			p.twoBody(primary, v.At(i), h)
		}
	}
}

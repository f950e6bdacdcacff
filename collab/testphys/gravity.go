package testphys

import (
	"math"

	"github.com/katalvlaran/huayno-cc/nbsys"
)

// GravityPhysics is a direct-summation Newtonian gravity collaborator. The
// zero value is not usable; construct with New.
type GravityPhysics struct {
	g            float64
	softening    float64
	eta          float64
	keplerTol    float64
	bsSubsteps   int
	bsaTol       float64
	bsaMaxHalves int
}

// Option configures a GravityPhysics.
type Option func(*GravityPhysics)

// WithG sets the gravitational constant. Panics if g <= 0.
func WithG(g float64) Option {
	if g <= 0 {
		panic("testphys: WithG(g<=0)")
	}
	return func(p *GravityPhysics) { p.g = g }
}

// WithSoftening sets the Plummer softening length used to keep close
// encounters finite. Panics if eps < 0.
func WithSoftening(eps float64) Option {
	if eps < 0 {
		panic("testphys: WithSoftening(eps<0)")
	}
	return func(p *GravityPhysics) { p.softening = eps }
}

// WithEta sets the dimensionless accuracy parameter of the time-step
// criterion (smaller eta means smaller, safer steps). Panics if eta <= 0.
func WithEta(eta float64) Option {
	if eta <= 0 {
		panic("testphys: WithEta(eta<=0)")
	}
	return func(p *GravityPhysics) { p.eta = eta }
}

// WithKeplerTolerance sets the Newton-iteration convergence tolerance for
// the universal Kepler equation solve. Panics if tol <= 0.
func WithKeplerTolerance(tol float64) Option {
	if tol <= 0 {
		panic("testphys: WithKeplerTolerance(tol<=0)")
	}
	return func(p *GravityPhysics) { p.keplerTol = tol }
}

// WithBSSubsteps sets the fixed leapfrog substep count EvolveBS uses.
// Panics if n < 1.
func WithBSSubsteps(n int) Option {
	if n < 1 {
		panic("testphys: WithBSSubsteps(n<1)")
	}
	return func(p *GravityPhysics) { p.bsSubsteps = n }
}

// WithBSATolerance sets EvolveBSAdaptive's Richardson-extrapolation error
// tolerance. Panics if tol <= 0.
func WithBSATolerance(tol float64) Option {
	if tol <= 0 {
		panic("testphys: WithBSATolerance(tol<=0)")
	}
	return func(p *GravityPhysics) { p.bsaTol = tol }
}

// New builds a GravityPhysics with sane defaults (G=1, no softening,
// eta=0.01, 8 BS substeps), then applies opts.
func New(opts ...Option) *GravityPhysics {
	p := &GravityPhysics{
		g:            1,
		softening:    0,
		eta:          0.01,
		keplerTol:    1e-12,
		bsSubsteps:   8,
		bsaTol:       1e-10,
		bsaMaxHalves: 10,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Timestep returns eta * sqrt(r^3 / (G*(m_p+m_q))), the local two-body
// dynamical time scaled by eta. Symmetric in (p,q); dir is unused since
// the criterion depends only on relative separation and combined mass.
func (p *GravityPhysics) Timestep(a, b *nbsys.Particle, dir int) float64 {
	r := vNorm(vSub(a.Pos, b.Pos))
	mu := p.g * (a.Mass + b.Mass)
	if mu <= 0 {
		return math.Inf(1)
	}
	return p.eta * math.Sqrt(r*r*r/mu)
}

// Drift advances every particle's position by Vel*h. tTarget is unused: a
// drift in this model depends only on h, not on the absolute clock.
func (p *GravityPhysics) Drift(level int, v *nbsys.View, tTarget, h float64) {
	for i := 0; i < v.N; i++ {
		part := v.At(i)
		part.Pos = vAdd(part.Pos, vScale(part.Vel, h))
	}
}

// Kick applies a direct-summation gravitational impulse to every particle
// of sink from every particle of src over step h. When sink and src are
// the same view, a particle never sources its own acceleration.
func (p *GravityPhysics) Kick(level int, sink, src *nbsys.View, h float64) {
	same := sink == src
	accs := make([][3]float64, sink.N)
	for i := 0; i < sink.N; i++ {
		si := sink.At(i)
		var acc [3]float64
		for j := 0; j < src.N; j++ {
			if same && i == j {
				continue
			}
			sj := src.At(j)
			if sj.Mass == 0 {
				continue
			}
			d := vSub(sj.Pos, si.Pos)
			r2 := vDot(d, d) + p.softening*p.softening
			r := math.Sqrt(r2)
			scale := p.g * sj.Mass / (r2 * r)
			acc = vAdd(acc, vScale(d, scale))
		}
		accs[i] = acc
	}
	for i := 0; i < sink.N; i++ {
		si := sink.At(i)
		si.Vel = vAdd(si.Vel, vScale(accs[i], h))
	}
}

// CenterOfMass returns v's mass-weighted position and velocity. Returns
// the zero vectors if v is entirely massless.
func (p *GravityPhysics) CenterOfMass(v *nbsys.View) (pos, vel [3]float64) {
	var totalMass float64
	for i := 0; i < v.N; i++ {
		part := v.At(i)
		totalMass += part.Mass
		pos = vAdd(pos, vScale(part.Pos, part.Mass))
		vel = vAdd(vel, vScale(part.Vel, part.Mass))
	}
	if totalMass == 0 {
		return [3]float64{}, [3]float64{}
	}
	return vScale(pos, 1/totalMass), vScale(vel, 1/totalMass)
}

// MoveSystem shifts every particle in v by sign*pos, sign*vel. sign must
// be +1 or -1.
func (p *GravityPhysics) MoveSystem(v *nbsys.View, pos, vel [3]float64, sign int) {
	s := float64(sign)
	dPos, dVel := vScale(pos, s), vScale(vel, s)
	for i := 0; i < v.N; i++ {
		part := v.At(i)
		part.Pos = vAdd(part.Pos, dPos)
		part.Vel = vAdd(part.Vel, dVel)
	}
}

package nbsys

// Particle is an opaque dynamical record with stable identity. Mass == 0
// marks a massless particle; massless particles receive kicks from massive
// ones but never exert any (see collab.Physics.Kick).
type Particle struct {
	// ID uniquely identifies this particle within its root buffer. IDs are
	// never duplicated or dropped by Split.
	ID int64

	Mass float64
	Pos  [3]float64
	Vel  [3]float64

	// Acc is scratch storage for the force/acceleration a Physics
	// implementation accumulates during a Kick; the core package never
	// reads or writes it itself.
	Acc [3]float64
}

// IsMassless reports whether p carries zero mass.
func (p *Particle) IsMassless() bool { return p.Mass == 0 }

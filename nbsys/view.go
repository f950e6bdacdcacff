package nbsys

// noIndex marks an absent range endpoint (the Go analogue of a NULL
// struct-particle pointer in the original C model).
const noIndex = -1

// View is a slice window over a shared particle buffer. It never owns the
// particles it describes; it owns only its own NextCC link. See the
// package doc for the invariants it must satisfy.
type View struct {
	buf []Particle // shared backing storage; every View sharing a buffer points at the same slice

	N     int // total particle count in this view
	NZero int // count of massless particles in this view

	Part     int // start index of the massive range, noIndex if empty
	Last     int // inclusive end index of the massive range, noIndex if empty
	ZeroPart int // start index of the massless range, noIndex if empty
	LastZero int // inclusive end index of the massless range, noIndex if empty

	// NextCC links to the next sibling component in a connected-components
	// list, nil after the last one. Components walks the list by testing
	// c != nil, not IsZero(): IsZero()/ZeroView identify the distinguished
	// empty list (no components at all), not each list's terminal link.
	NextCC *View
}

// ZeroView is the distinguished empty view: no buffer, N and NZero zero,
// no NextCC link, and every range index set to noIndex. Split returns it as
// the head of an empty component list, matching the IS_ZEROSYS sentinel
// this model is derived from.
var ZeroView = View{Part: noIndex, Last: noIndex, ZeroPart: noIndex, LastZero: noIndex}

// IsZero reports whether v is the empty view (see ZeroView).
func (v *View) IsZero() bool {
	return v.buf == nil && v.N == 0 && v.NZero == 0 && v.NextCC == nil
}

// NewRootView builds a View over buf assuming the canonical root layout:
// the first n-nzero particles are massive, the remaining nzero are
// massless. buf must have length exactly n.
func NewRootView(buf []Particle, nzero int) *View {
	n := len(buf)
	v := &View{buf: buf, N: n, NZero: nzero, Part: noIndex, Last: noIndex, ZeroPart: noIndex, LastZero: noIndex}
	if n-nzero > 0 {
		v.Part, v.Last = 0, n-nzero-1
	}
	if nzero > 0 {
		v.ZeroPart, v.LastZero = n-nzero, n-1
	}
	if v.Part == noIndex {
		v.Part = v.ZeroPart
	}
	return v
}

// massiveCount returns n - nzero, the number of massive members.
func (v *View) massiveCount() int { return v.N - v.NZero }

// Buf returns the shared backing buffer this view points into. Intended
// for package ccsplit's in-place partition, which must index the buffer
// directly by raw position rather than through At's view-relative mapping.
func (v *View) Buf() []Particle { return v.buf }

// InitComponent initializes cv as a freshly-closed non-trivial component:
// compNext/compZeroNext are the (one-past-the-end) raw buffer indices of
// the closed massive/massless sub-ranges, of sizes compSize/compZeroSize
// respectively. Used by ccsplit.Split, which computes these cursors.
func InitComponent(cv *View, buf []Particle, compSize, compZeroSize, compNext, compZeroNext int) {
	cv.buf = buf
	cv.N = compSize
	cv.NZero = compZeroSize
	cv.Part, cv.Last = noIndex, noIndex
	cv.ZeroPart, cv.LastZero = noIndex, noIndex
	if compSize-compZeroSize > 0 {
		cv.Part = compNext - (compSize - compZeroSize)
		cv.Last = compNext - 1
	}
	if compZeroSize > 0 {
		cv.ZeroPart = compZeroNext - compZeroSize
		cv.LastZero = compZeroNext - 1
	}
	if cv.Part == noIndex {
		cv.Part = cv.ZeroPart
	}
}

// InitRest initializes rv as the rest view left over after a split:
// restNext/restZeroNext are the raw buffer indices one before the first
// demoted-to-rest particle in each range; sLast/sLastZero are the original
// view's range boundaries, which the rest view inherits.
func InitRest(rv *View, buf []Particle, n, nzero, restNext, restZeroNext, sLast, sLastZero int) {
	rv.buf = buf
	rv.N = n
	rv.NZero = nzero
	rv.Part, rv.Last = noIndex, noIndex
	rv.ZeroPart, rv.LastZero = noIndex, noIndex
	if n-nzero > 0 {
		rv.Part = restNext + 1
		rv.Last = sLast
	}
	if nzero > 0 {
		rv.ZeroPart = restZeroNext + 1
		rv.LastZero = sLastZero
	}
	if rv.Part == noIndex {
		rv.Part = rv.ZeroPart
	}
}

// At returns the i-th particle of the view (0 <= i < v.N), using the
// convention that indices [0, n-nzero) map into the massive range and
// [n-nzero, n) map into the massless range.
func (v *View) At(i int) *Particle {
	mc := v.massiveCount()
	if i < mc {
		return &v.buf[v.Part+i]
	}
	return &v.buf[v.ZeroPart+(i-mc)]
}

// HasMassive reports whether this view contains any massive particle.
func (v *View) HasMassive() bool { return v.massiveCount() > 0 }

// HasMassless reports whether this view contains any massless particle.
func (v *View) HasMassless() bool { return v.NZero > 0 }

// CheckContiguous enforces that a view is only splittable when its two
// ranges form a single contiguous run (the massless range starts right
// after the massive range).
func (v *View) CheckContiguous(level int) {
	if v.HasMassive() && v.HasMassless() && v.ZeroPart != v.Last+1 {
		Fatalf(level, "contiguous-ranges", "massive range ends at %d but massless range starts at %d", v.Last, v.ZeroPart)
	}
}

// IDs returns the identities of every particle in the view, in view order.
// Intended for tests and verification, not the hot path.
func (v *View) IDs() []int64 {
	ids := make([]int64, v.N)
	for i := 0; i < v.N; i++ {
		ids[i] = v.At(i).ID
	}
	return ids
}

// Components walks a NextCC list starting at head (inclusive) and returns
// each non-terminal View in list order.
func Components(head *View) []*View {
	var out []*View
	for c := head; c != nil && !c.IsZero(); c = c.NextCC {
		out = append(out, c)
	}
	return out
}

// CopyToScratch allocates a fresh, owned buffer holding a copy of v's
// particles, preserving the massive/massless partition, and returns a View
// over that scratch buffer. Used by the task dispatcher (package evolve)
// before handing a component to an independently-running goroutine.
func CopyToScratch(v *View) *View {
	scratch := make([]Particle, v.N)
	for i := 0; i < v.N; i++ {
		scratch[i] = *v.At(i)
	}
	return NewRootView(scratch, v.NZero)
}

// CopyBack writes the particles of scratch (as produced by CopyToScratch,
// after being evolved) back into v's original positions in its shared
// buffer, position by position.
func CopyBack(v *View, scratch *View) {
	for i := 0; i < v.N; i++ {
		*v.At(i) = *scratch.At(i)
	}
}

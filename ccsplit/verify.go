package ccsplit

import "github.com/katalvlaran/huayno-cc/nbsys"

// Verify checks that the components list c and rest view r form a correct
// decomposition of sBefore (a snapshot taken before Split rearranged its
// buffer): every id of sBefore appears in exactly one of c/r, and each
// component's internal massless layout is self-consistent. Any failure
// panics with an *nbsys.InvariantError.
func Verify(level int, sBefore nbsys.View, head, r *nbsys.View) {
	comps := nbsys.Components(head)

	for i := 0; i < sBefore.N; i++ {
		p := sBefore.At(i)
		found := 0

		for _, cj := range comps {
			verifyMasslessLayout(level, cj)
			for k := 0; k < cj.N; k++ {
				if cj.At(k).ID == p.ID {
					found++
				}
			}
		}

		verifyMasslessLayout(level, r)
		for k := 0; k < r.N; k++ {
			if r.At(k).ID == p.ID {
				found++
			}
		}

		if found != 1 {
			nbsys.Fatalf(level, "split-verify-membership", "particle id=%d found in %d views, want 1", p.ID, found)
		}
	}

	total := r.N
	for _, cj := range comps {
		total += cj.N
	}
	if total != sBefore.N {
		nbsys.Fatalf(level, "split-verify-count", "sum of view sizes=%d != sBefore.N=%d", total, sBefore.N)
	}
}

// verifyMasslessLayout checks that v's range end indices agree with its
// declared sizes: the last massive member (index n-nzero-1) sits at v.Last
// and the last massless member (index n-1) sits at v.LastZero.
func verifyMasslessLayout(level int, v *nbsys.View) {
	mc := v.N - v.NZero
	buf := v.Buf()
	if mc > 0 && v.At(mc-1) != &buf[v.Last] {
		nbsys.Fatalf(level, "split-verify-layout", "massive range of view (n=%d,nzero=%d) is not contiguous", v.N, v.NZero)
	}
	if v.NZero > 0 && v.At(v.N-1) != &buf[v.LastZero] {
		nbsys.Fatalf(level, "split-verify-layout", "massless range of view (n=%d,nzero=%d) is not contiguous", v.N, v.NZero)
	}
}

// VerifyTimesteps checks the edge-separation property: no pair (p,q) in
// different components, or both in rest, has a time step below |dt|. A
// pair exactly at |dt| is accepted.
func VerifyTimesteps(level int, head, r *nbsys.View, dt float64, ts TimestepFunc) {
	dir := sign(dt)
	dtAbs := abs(dt)
	comps := nbsys.Components(head)

	for _, ci := range comps {
		for i := 0; i < ci.N; i++ {
			for _, cj := range comps {
				if ci == cj {
					continue
				}
				for j := 0; j < cj.N; j++ {
					if ts(ci.At(i), cj.At(j), dir) < dtAbs {
						nbsys.Fatalf(level, "split-verify-ts-cc", "fast edge crosses component boundary")
					}
				}
			}
			for j := 0; j < r.N; j++ {
				if ts(ci.At(i), r.At(j), dir) < dtAbs {
					nbsys.Fatalf(level, "split-verify-ts-cr", "fast edge crosses component/rest boundary")
				}
			}
		}
	}

	for i := 0; i < r.N; i++ {
		for j := 0; j < r.N; j++ {
			if i == j {
				continue
			}
			if ts(r.At(i), r.At(j), dir) < dtAbs {
				nbsys.Fatalf(level, "split-verify-ts-rr", "fast edge within rest view")
			}
		}
	}
}

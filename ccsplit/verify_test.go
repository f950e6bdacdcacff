package ccsplit_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/huayno-cc/ccsplit"
	"github.com/katalvlaran/huayno-cc/nbsys"
)

func TestVerify_AcceptsCorrectSplit(t *testing.T) {
	ps := makeParticles(10, -1)
	v := nbsys.NewRootView(ps, 0)
	before := *v
	fast := map[[2]int64]float64{pairKey(0, 1): 0.01}
	ts := tableTimestep(fast, 1)

	head, rest := ccsplit.Split(0, *v, 0.1, ts, nil)
	require.NotPanics(t, func() { ccsplit.Verify(0, before, head, rest) })
}

func TestVerify_PanicsOnForeignParticle(t *testing.T) {
	ps := makeParticles(10, -1)
	v := nbsys.NewRootView(ps, 0)
	before := *v
	fast := map[[2]int64]float64{pairKey(0, 1): 0.01}
	ts := tableTimestep(fast, 1)

	head, rest := ccsplit.Split(0, *v, 0.1, ts, nil)

	// Forge a "before" snapshot naming a particle that cannot be found in
	// either the component list or rest, breaking the membership invariant.
	foreign := make([]nbsys.Particle, before.N)
	copy(foreign, before.Buf())
	foreign[0].ID = 999
	forged := nbsys.NewRootView(foreign, 0)

	require.Panics(t, func() { ccsplit.Verify(0, *forged, head, rest) })
}

func TestVerifyTimesteps_AcceptsCorrectSplit(t *testing.T) {
	ps := makeParticles(10, -1)
	v := nbsys.NewRootView(ps, 0)
	fast := map[[2]int64]float64{pairKey(0, 1): 0.01}
	ts := tableTimestep(fast, 1)

	head, rest := ccsplit.Split(0, *v, 0.1, ts, nil)
	require.NotPanics(t, func() { ccsplit.VerifyTimesteps(0, head, rest, 0.1, ts) })
}

func TestVerifyTimesteps_PanicsOnMisclassifiedBoundary(t *testing.T) {
	ps := makeParticles(4, -1)
	v := nbsys.NewRootView(ps, 0)
	// No pair is actually fast: Split will put everything in rest.
	ts := tableTimestep(nil, 10)
	head, rest := ccsplit.Split(0, *v, 1, ts, nil)
	require.True(t, head.IsZero())

	// Now verify against a fabricated threshold that falsely claims ids 0
	// and 1 (both in rest) have a fast edge, which VerifyTimesteps must
	// reject as a rest/rest violation.
	forged := tableTimestep(map[[2]int64]float64{pairKey(0, 1): 0.01}, 10)
	require.Panics(t, func() { ccsplit.VerifyTimesteps(0, head, rest, 1, forged) })
}

func TestMaxPairTimestep_ReturnsLargestPair(t *testing.T) {
	ps := makeParticles(4, -1)
	v := nbsys.NewRootView(ps, 0)
	fast := map[[2]int64]float64{
		pairKey(0, 1): 1,
		pairKey(0, 2): 5,
		pairKey(2, 3): 3,
	}
	ts := tableTimestep(fast, 0)

	got := ccsplit.MaxPairTimestep(*v, 1, ts)
	require.Equal(t, 5.0, got)
}

package nbsys_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/huayno-cc/nbsys"
)

func particles(ids ...int64) []nbsys.Particle {
	ps := make([]nbsys.Particle, len(ids))
	for i, id := range ids {
		ps[i] = nbsys.Particle{ID: id, Mass: 1}
	}
	return ps
}

func TestNewRootView_PureMassive(t *testing.T) {
	buf := particles(1, 2, 3)
	v := nbsys.NewRootView(buf, 0)
	require.Equal(t, 3, v.N)
	require.Equal(t, 0, v.NZero)
	require.True(t, v.HasMassive())
	require.False(t, v.HasMassless())
	require.Equal(t, []int64{1, 2, 3}, v.IDs())
}

func TestNewRootView_MixedMassless(t *testing.T) {
	buf := particles(1, 2, 3, 4)
	buf[2].Mass = 0
	buf[3].Mass = 0
	v := nbsys.NewRootView(buf, 2)
	require.Equal(t, 4, v.N)
	require.Equal(t, 2, v.NZero)
	require.True(t, v.HasMassive())
	require.True(t, v.HasMassless())
	require.Equal(t, []int64{1, 2, 3, 4}, v.IDs())
}

func TestNewRootView_PureMassless(t *testing.T) {
	buf := particles(1, 2)
	buf[0].Mass = 0
	buf[1].Mass = 0
	v := nbsys.NewRootView(buf, 2)
	require.False(t, v.HasMassive())
	require.True(t, v.HasMassless())
	// Invariant 2: massive empty -> Part aliases ZeroPart.
	require.Equal(t, v.ZeroPart, v.Part)
	require.Equal(t, []int64{1, 2}, v.IDs())
}

func TestCheckContiguous_OKOnRootLayout(t *testing.T) {
	buf := particles(1, 2, 3, 4)
	buf[3].Mass = 0
	v := nbsys.NewRootView(buf, 1)
	require.NotPanics(t, func() { v.CheckContiguous(0) })
}

func TestCopyToScratchAndBack_RoundTrips(t *testing.T) {
	buf := particles(1, 2, 3, 4)
	buf[3].Mass = 0
	v := nbsys.NewRootView(buf, 1)
	v.At(0).Pos[0] = 9

	scratch := nbsys.CopyToScratch(v)
	require.Equal(t, v.IDs(), scratch.IDs())
	scratch.At(0).Pos[0] = 42 // mutate scratch only

	require.Equal(t, float64(9), v.At(0).Pos[0])
	nbsys.CopyBack(v, scratch)
	require.Equal(t, float64(42), v.At(0).Pos[0])
}

func TestComponents_TraversesUntilZeroView(t *testing.T) {
	a := nbsys.NewRootView(particles(1, 2), 0)
	b := nbsys.NewRootView(particles(3, 4), 0)
	a.NextCC = b
	zv := nbsys.ZeroView
	b.NextCC = &zv

	list := nbsys.Components(a)
	require.Len(t, list, 2)
	require.Equal(t, []int64{1, 2}, list[0].IDs())
	require.Equal(t, []int64{3, 4}, list[1].IDs())
}

func TestZeroView_IsZero(t *testing.T) {
	zv := nbsys.ZeroView
	require.True(t, zv.IsZero())
	nonZero := nbsys.NewRootView(particles(1, 2), 0)
	require.False(t, nonZero.IsZero())
}

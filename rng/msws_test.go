package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddleSquareWeyl_GoldenSequences(t *testing.T) {
	cases := []struct {
		seed uint64
		want []uint32
	}{
		{0, []uint32{
			0xb32ec37a, 0xae51e6de, 0x165a20ac, 0x967d61de, 0x20228afa,
			0x5eb05319, 0x3f205add, 0x760451c8, 0xb83dc267, 0xad1a5db8,
		}},
		{1, []uint32{
			0x938ce99b, 0x47dc7de5, 0x834de797, 0xfe4ee639, 0xaef285f7,
			0xb94109f7, 0x13c54c0c, 0x586ba9ba, 0x9e03a569, 0x3442ed64,
		}},
		{0xffffffffffffffff, []uint32{
			0x3c127e22, 0xd3fc8ae5, 0x8978f442, 0x3db61847, 0xbb7d623e,
			0x521931be, 0xceaf3314, 0xfdda7538, 0x2e6ccb88, 0x644a13ea,
		}},
	}
	for _, tc := range cases {
		g := NewMiddleSquareWeyl(tc.seed)
		for i, want := range tc.want {
			require.Equalf(t, want, g.Uint32(), "seed %d draw %d", tc.seed, i)
		}
	}
}

func TestMiddleSquareWeyl_Uint64Golden(t *testing.T) {
	g := NewMiddleSquareWeyl(1)
	want := []uint64{
		0x938ce99b47dc7de5, 0x834de797fe4ee639, 0xaef285f7b94109f7,
		0x13c54c0c586ba9ba, 0x9e03a5693442ed64,
	}
	for i, w := range want {
		require.Equalf(t, w, g.Uint64(), "draw %d", i)
	}
}

// Uint64 runs its two steps inline; the result must still equal two Uint32
// draws packed high-then-low.
func TestMiddleSquareWeyl_Uint64MatchesTwoUint32(t *testing.T) {
	a := NewMiddleSquareWeyl(99)
	b := NewMiddleSquareWeyl(99)
	for i := 0; i < 100; i++ {
		want := uint64(b.Uint32())<<32 | uint64(b.Uint32())
		require.Equal(t, want, a.Uint64(), "draw %d", i)
	}
}

func TestMiddleSquareWeyl_SplitGolden(t *testing.T) {
	g := NewMiddleSquareWeyl(42)
	child := g.Split()

	childWant := []uint32{0x7729657a, 0x6e0cab77, 0x6cb5b006, 0xedd53c45, 0xe176ba58}
	for i, w := range childWant {
		require.Equalf(t, w, child.Uint32(), "child draw %d", i)
	}

	// Splitting consumed exactly one draw from the parent.
	parentWant := []uint32{0x9448258d, 0xb649b99b, 0xb04d89ee}
	for i, w := range parentWant {
		require.Equalf(t, w, g.Uint32(), "parent draw %d", i)
	}
}

func TestMiddleSquareWeyl_IncrementAlwaysOdd(t *testing.T) {
	for seed := uint64(0); seed < 2000; seed++ {
		g := NewMiddleSquareWeyl(seed)
		require.Equal(t, uint64(1), g.inc&1, "seed %d", seed)
	}

	g := NewMiddleSquareWeyl(7)
	for i := 0; i < 50; i++ {
		g = g.Split()
		require.Equal(t, uint64(1), g.inc&1)
	}

	// Restore repairs a tampered even increment.
	require.NoError(t, g.Restore(middleSquareWeylState{x: 1, weyl: 2, inc: 4}))
	assert.Equal(t, uint64(5), g.inc)
}

func TestMiddleSquareWeyl_StateRoundTrip(t *testing.T) {
	g := NewMiddleSquareWeyl(123)
	for i := 0; i < 17; i++ {
		g.Uint32()
	}
	snap := g.State()

	var want []uint32
	for i := 0; i < 20; i++ {
		want = append(want, g.Uint32())
	}

	require.NoError(t, g.Restore(snap))
	for i, w := range want {
		require.Equalf(t, w, g.Uint32(), "draw %d after restore", i)
	}
}

func TestMiddleSquareWeyl_RestoreWrongFamily(t *testing.T) {
	g := NewMiddleSquareWeyl(1)
	before := g.State()
	err := g.Restore(NewPCG32(XSHRR, 1).State())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PCG32")
	// State untouched after a failed restore.
	assert.Equal(t, before, g.State())
}

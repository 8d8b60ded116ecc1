package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestXoroshiro128PP_GoldenSequences(t *testing.T) {
	cases := []struct {
		seed uint64
		want []uint64
	}{
		{0, []uint64{
			0x6f68e1e7e2646ee1, 0xbf971b7f454094ad, 0x48f2de556f30de38,
			0x6ea7c59f89bbfc75, 0x765437c08f02e2f5, 0x54e0c2b4db118f37,
			0xde7254080893a80d, 0xb1c148b286ad9556, 0xdb9ba7d9617ec256,
			0x50e69ef0fd7ade4a,
		}},
		{1, []uint64{
			0x08260b0f1b52fcac, 0x5d9320f71ce29ff1, 0x28197699ec67f190,
			0x593b393b9d1e5795, 0x38d7e95386fef5e4, 0xdf662f251c40e205,
			0xd6c55ccd44694a1a, 0xb36f44a48a8d32da, 0x9162923b9ba4a4cc,
			0xeb8a207f313db88c,
		}},
		{0xffffffffffffffff, []uint64{
			0xb897602e7938c912, 0x92ac733c00c69e74, 0x79077f68c57fd4f5,
			0xc2236f3f6278b151, 0x157f5de82353f0d1, 0x46a3988ee5683084,
			0xf708c970c29dfce6, 0x125b1c8d2759c42d, 0xcbea718d0443fd0b,
			0x243a4625490950be,
		}},
	}
	for _, tc := range cases {
		g := NewXoroshiro128PP(tc.seed)
		for i, want := range tc.want {
			require.Equalf(t, want, g.Uint64(), "seed %d draw %d", tc.seed, i)
		}
	}
}

func TestXoroshiro128PP_ZeroStateRepaired(t *testing.T) {
	g := NewXoroshiro128PPFromState(0, 0)
	require.False(t, g.s0 == 0 && g.s1 == 0)

	// The repaired state is the golden-ratio expansion of seed 0.
	want := []uint64{
		0x6f68e1e7e2646ee1, 0xbf971b7f454094ad, 0x48f2de556f30de38,
		0x6ea7c59f89bbfc75, 0x765437c08f02e2f5,
	}
	for i, w := range want {
		require.Equalf(t, w, g.Uint64(), "draw %d", i)
	}

	// A non-degenerate stream: not constant zero.
	g = NewXoroshiro128PPFromState(0, 0)
	zeros := 0
	for i := 0; i < 100; i++ {
		if g.Uint64() == 0 {
			zeros++
		}
	}
	assert.Less(t, zeros, 2)
}

func TestXoroshiro128PP_StateNeverBothZero(t *testing.T) {
	g := NewXoroshiro128PP(0)
	for i := 0; i < 10000; i++ {
		g.Uint64()
		require.False(t, g.s0 == 0 && g.s1 == 0, "draw %d", i)
	}

	// Restore repairs a tampered all-zero snapshot.
	require.NoError(t, g.Restore(xoroshiroState{}))
	require.False(t, g.s0 == 0 && g.s1 == 0)
}

func TestXoroshiro128PP_SplitGolden(t *testing.T) {
	g := NewXoroshiro128PP(42)
	before := g.State()
	child := g.Split()

	want := []uint64{
		0x189001fe53664bce, 0x225453ab68b79fcd, 0x678b442c58fd3ba0,
		0xd52338a505c49b7a, 0xf9bec777f7aaa486,
	}
	for i, w := range want {
		require.Equalf(t, w, child.Uint64(), "child draw %d", i)
	}

	// Split consumed exactly one output from the parent.
	ref := NewXoroshiro128PP(42)
	require.NoError(t, ref.Restore(before))
	ref.Uint64()
	require.Equal(t, ref.State(), g.State())
}

func TestXoroshiro128PP_JumpGolden(t *testing.T) {
	g := NewXoroshiro128PP(7)
	g.Jump()
	want := []uint64{0xed82f2a3204a3457, 0xb3e6319c3d4afb65, 0x9c5db7e6adb08cf8}
	for i, w := range want {
		require.Equalf(t, w, g.Uint64(), "draw %d after jump", i)
	}
}

func TestXoroshiro128PP_StateRoundTrip(t *testing.T) {
	g := NewXoroshiro128PP(888)
	for i := 0; i < 9; i++ {
		g.Uint64()
	}
	snap := g.State()

	var want []uint64
	for i := 0; i < 20; i++ {
		want = append(want, g.Uint64())
	}

	require.NoError(t, g.Restore(snap))
	for i, w := range want {
		require.Equalf(t, w, g.Uint64(), "draw %d after restore", i)
	}
}

func TestXoroshiro128PP_RestoreWrongFamily(t *testing.T) {
	g := NewXoroshiro128PP(1)
	err := g.Restore(NewMiddleSquareWeyl(1).State())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MiddleSquareWeyl")
}

package rng

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// providers returns a freshly seeded generator of every family.
func providers(seed uint64) map[string]Splittable {
	return map[string]Splittable{
		"msws":           NewMiddleSquareWeyl(seed),
		"pcg32-xsh-rs":   NewPCG32(XSHRS, seed),
		"pcg32-xsh-rr":   NewPCG32(XSHRR, seed),
		"xoroshiro128pp": NewXoroshiro128PP(seed),
	}
}

func TestBoundedDrawsStayInRange(t *testing.T) {
	bounds := []int32{1, 2, 3, 7, 100, math.MaxInt32}
	for name, g := range providers(2026) {
		for _, n := range bounds {
			for i := 0; i < 10000; i++ {
				v := g.Int31n(n)
				if v < 0 || v >= n {
					t.Fatalf("%s: Int31n(%d) = %d out of range", name, n, v)
				}
			}
		}
		for i := 0; i < 10000; i++ {
			v := g.Int63n(1e12)
			if v < 0 || v >= 1e12 {
				t.Fatalf("%s: Int63n = %d out of range", name, v)
			}
		}
	}
}

// Chi-square goodness of fit over 100 buckets. With 99 degrees of freedom
// the 99.9th percentile is about 148, so a healthy generator stays below
// with wide margin.
func TestBoundedDrawsApproximatelyUniform(t *testing.T) {
	const buckets = 100
	const draws = 100000
	for name, g := range providers(31415) {
		var counts [buckets]int
		for i := 0; i < draws; i++ {
			counts[g.Int31n(buckets)]++
		}
		expected := float64(draws) / buckets
		chi2 := 0.0
		for _, c := range counts {
			d := float64(c) - expected
			chi2 += d * d / expected
		}
		assert.Lessf(t, chi2, 160.0, "%s: chi-square %.1f", name, chi2)
	}
}

func TestBadBoundPanics(t *testing.T) {
	for name, g := range providers(1) {
		assert.Panicsf(t, func() { g.Int31n(0) }, "%s Int31n(0)", name)
		assert.Panicsf(t, func() { g.Int31n(-5) }, "%s Int31n(-5)", name)
		assert.Panicsf(t, func() { g.Int63n(0) }, "%s Int63n(0)", name)
		assert.Panicsf(t, func() { g.Int63n(-5) }, "%s Int63n(-5)", name)
		assert.Panicsf(t, func() { g.Uint32N(0) }, "%s Uint32N(0)", name)
		assert.Panicsf(t, func() { g.Uint64N(0) }, "%s Uint64N(0)", name)
	}
}

func TestFloatsInUnitInterval(t *testing.T) {
	for name, g := range providers(7) {
		for i := 0; i < 10000; i++ {
			f32 := g.Float32()
			f64 := g.Float64()
			if f32 < 0 || f32 >= 1 {
				t.Fatalf("%s: Float32 = %v", name, f32)
			}
			if f64 < 0 || f64 >= 1 {
				t.Fatalf("%s: Float64 = %v", name, f64)
			}
		}
	}
}

// Bytes packs successive Uint32 draws little-endian, with the tail taken
// from the low bytes of one extra draw.
func TestBytesPacking(t *testing.T) {
	for name, g := range providers(555) {
		snap := g.State()

		buf := make([]byte, 11)
		g.Bytes(buf)

		require.NoError(t, g.Restore(snap))
		var want [11]byte
		binary.LittleEndian.PutUint32(want[0:], g.Uint32())
		binary.LittleEndian.PutUint32(want[4:], g.Uint32())
		tail := g.Uint32()
		want[8] = byte(tail)
		want[9] = byte(tail >> 8)
		want[10] = byte(tail >> 16)

		assert.Equalf(t, want[:], buf, "%s", name)

		// Zero-length fill consumes nothing.
		after := g.State()
		g.Bytes(nil)
		assert.Equalf(t, after, g.State(), "%s consumed draws on empty fill", name)
	}
}

func TestReadFillsBuffer(t *testing.T) {
	for name, g := range providers(9) {
		buf := make([]byte, 37)
		n, err := g.Read(buf)
		require.NoErrorf(t, err, "%s", name)
		require.Equalf(t, 37, n, "%s", name)

		allZero := true
		for _, b := range buf {
			if b != 0 {
				allZero = false
				break
			}
		}
		assert.Falsef(t, allZero, "%s produced all-zero bytes", name)
	}
}

func TestFreshGeneratorsAreDeterministic(t *testing.T) {
	for name := range providers(0) {
		a := providers(4242)[name]
		b := providers(4242)[name]
		for i := 0; i < 1000; i++ {
			require.Equalf(t, a.Uint64(), b.Uint64(), "%s draw %d", name, i)
		}
	}
}

// Two children split from the same parent should show no serial correlation
// with each other. This is a soft statistical property; the threshold is
// loose on purpose.
func TestSplitChildrenUncorrelated(t *testing.T) {
	for name, parent := range providers(271828) {
		a := parent.SplitProvider()
		b := parent.SplitProvider()

		const n = 100000
		var sumA, sumB, sumAB, sumA2, sumB2 float64
		collisions := 0
		for i := 0; i < n; i++ {
			x := a.Float64()
			y := b.Float64()
			if a.Uint32() == b.Uint32() {
				collisions++
			}
			sumA += x
			sumB += y
			sumAB += x * y
			sumA2 += x * x
			sumB2 += y * y
		}
		cov := sumAB/n - (sumA/n)*(sumB/n)
		varA := sumA2/n - (sumA/n)*(sumA/n)
		varB := sumB2/n - (sumB/n)*(sumB/n)
		r := cov / math.Sqrt(varA*varB)

		// |r| for independent streams is of order 1/sqrt(n) ~ 0.003.
		assert.Lessf(t, math.Abs(r), 0.02, "%s: correlation %.4f", name, r)
		// Pointwise 32-bit collisions happen at rate ~n/2^32.
		assert.Lessf(t, collisions, 10, "%s: %d collisions", name, collisions)
	}
}

func TestNewFromName(t *testing.T) {
	for _, name := range Names() {
		g, err := NewFromName(name, 1)
		require.NoError(t, err)
		require.NotNil(t, g)
	}
	_, err := NewFromName("mersenne", 1)
	require.Error(t, err)
}

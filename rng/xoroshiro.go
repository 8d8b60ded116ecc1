package rng

import "math/bits"

// Xoroshiro128PP implements xoroshiro128++ (Blackman and Vigna) with two
// additions over the reference algorithm: seeding that can never produce the
// invalid all-zero state, and a Split operation for deriving independent
// child generators.
type Xoroshiro128PP struct {
	s0, s1 uint64
}

// NewXoroshiro128PP expands a single 64-bit seed into the two state words
// using splitmix-style golden-ratio stepping through the stafford13 mixer.
// The expansion cannot produce the all-zero state.
func NewXoroshiro128PP(seed uint64) *Xoroshiro128PP {
	return &Xoroshiro128PP{
		s0: stafford13(seed + goldenRatio64),
		s1: stafford13(seed + goldenRatio64x2),
	}
}

// NewXoroshiro128PPFromState uses the two words directly as generator state.
// The invalid (0, 0) pair is replaced with golden-ratio-derived constants so
// the generator never degenerates to a constant zero stream.
func NewXoroshiro128PPFromState(s0, s1 uint64) *Xoroshiro128PP {
	if s0 == 0 && s1 == 0 {
		s0 = stafford13(goldenRatio64)
		s1 = stafford13(goldenRatio64x2)
	}
	return &Xoroshiro128PP{s0: s0, s1: s1}
}

// Uint64 is the xoroshiro128++ step: output rotl(s0+s1, 17) + s0, then update
// the state with the 49/21/28 shift constants.
func (g *Xoroshiro128PP) Uint64() uint64 {
	s0, s1 := g.s0, g.s1
	out := bits.RotateLeft64(s0+s1, 17) + s0
	s1 ^= s0
	g.s0 = bits.RotateLeft64(s0, 49) ^ s1 ^ s1<<21
	g.s1 = bits.RotateLeft64(s1, 28)
	return out
}

// Uint32 returns the upper half of a 64-bit draw.
func (g *Xoroshiro128PP) Uint32() uint32 { return uint32(g.Uint64() >> 32) }

// Jump advances the generator 2^64 steps using the published jump
// polynomial, equivalent to that many Uint64 calls.
func (g *Xoroshiro128PP) Jump() {
	jump := [2]uint64{0x2bd7a6a6e99c2ddc, 0x0992ccaf6a6fca05}
	var s0, s1 uint64
	for _, j := range jump {
		for b := 0; b < 64; b++ {
			if j&(1<<b) != 0 {
				s0 ^= g.s0
				s1 ^= g.s1
			}
			g.Uint64()
		}
	}
	g.s0, g.s1 = s0, s1
}

// Split draws one output x from the parent (advancing it one step) and
// seeds the child from mixes of s0^x and s1^x. Folding the same output into
// both halves before mixing cascades bit influence across the two words,
// which mixing each half on its own would not achieve. The child goes
// through the safe constructor, so it is valid even if both mixes collide
// at zero.
func (g *Xoroshiro128PP) Split() *Xoroshiro128PP {
	x := g.Uint64()
	return NewXoroshiro128PPFromState(stafford13(g.s0^x), stafford13(g.s1^x))
}

// SplitProvider implements Splittable.
func (g *Xoroshiro128PP) SplitProvider() Splittable { return g.Split() }

// Uint32N returns a uniform value in [0, n). Panics if n == 0.
func (g *Xoroshiro128PP) Uint32N(n uint32) uint32 { return uint32n(g, n) }

// Uint64N returns a uniform value in [0, n). Panics if n == 0.
func (g *Xoroshiro128PP) Uint64N(n uint64) uint64 { return uint64n(g, n) }

// Int31n returns a uniform value in [0, n). Panics if n <= 0.
func (g *Xoroshiro128PP) Int31n(n int32) int32 { return int31n(g, n) }

// Int63n returns a uniform value in [0, n). Panics if n <= 0.
func (g *Xoroshiro128PP) Int63n(n int64) int64 { return int63n(g, n) }

// Float32 returns a uniform value in [0, 1).
func (g *Xoroshiro128PP) Float32() float32 { return float32of(g.Uint32()) }

// Float64 returns a uniform value in [0, 1).
func (g *Xoroshiro128PP) Float64() float64 { return float64of(g.Uint64()) }

// Bool returns the top bit of a draw as a boolean.
func (g *Xoroshiro128PP) Bool() bool { return g.Uint64()>>63 == 1 }

// Bytes fills p with pseudo-random bytes.
func (g *Xoroshiro128PP) Bytes(p []byte) { fillBytes(g, p) }

// Read implements io.Reader. It always fills p and never fails.
func (g *Xoroshiro128PP) Read(p []byte) (int, error) {
	fillBytes(g, p)
	return len(p), nil
}

type xoroshiroState struct {
	s0, s1 uint64
}

func (xoroshiroState) family() string { return "Xoroshiro128PP" }

// State returns an opaque snapshot of the generator.
func (g *Xoroshiro128PP) State() State {
	return xoroshiroState{s0: g.s0, s1: g.s1}
}

// Restore replaces the generator state with a snapshot from State. An
// all-zero snapshot is repaired the same way the constructor repairs it.
func (g *Xoroshiro128PP) Restore(s State) error {
	st, ok := s.(xoroshiroState)
	if !ok {
		return stateMismatch("Xoroshiro128PP", s)
	}
	if st.s0 == 0 && st.s1 == 0 {
		st.s0 = stafford13(goldenRatio64)
		st.s1 = stafford13(goldenRatio64x2)
	}
	g.s0, g.s1 = st.s0, st.s1
	return nil
}

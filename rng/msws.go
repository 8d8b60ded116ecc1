package rng

import "math/bits"

// MiddleSquareWeyl implements Widynski's middle square Weyl sequence
// generator. The 64-bit middle-square state is perturbed every step by a
// Weyl sequence with an odd increment, which guarantees a minimum period of
// 2^64.
//
// The increment stays odd for the lifetime of the generator; Restore repairs
// an even increment rather than accepting it.
type MiddleSquareWeyl struct {
	x    uint64
	weyl uint64
	inc  uint64
}

// NewMiddleSquareWeyl creates a generator from a 64-bit seed. The Weyl
// increment is built from the low 32 bits of the seed: ten bits index the
// increment table for each 32-bit half, and one further bit per half selects
// a byte-reversed variant, for roughly 2^22 distinct increments. The
// increment also seeds the middle-square state so that output quality is
// good from the first draw; the full seed becomes the initial Weyl value.
func NewMiddleSquareWeyl(seed uint64) *MiddleSquareWeyl {
	inc := tableIncrement(uint32(seed)) | 1
	return &MiddleSquareWeyl{x: inc, weyl: seed, inc: inc}
}

// tableIncrement packs two table entries selected by seed bits into a 64-bit
// increment. Bits 0-9 and 16-25 index the halves; bits 10 and 26 byte-reverse
// the respective half.
func tableIncrement(seed uint32) uint64 {
	lo := incrementTable[seed&0x3ff]
	if seed&(1<<10) != 0 {
		lo = bits.ReverseBytes32(lo)
	}
	hi := incrementTable[(seed>>16)&0x3ff]
	if seed&(1<<26) != 0 {
		hi = bits.ReverseBytes32(hi)
	}
	return uint64(hi)<<32 | uint64(lo)
}

// Uint32 squares the state, adds the advanced Weyl sequence and stores the
// half-swapped result. Swapping the 64-bit halves is what exposes the middle
// bits of the square; without it the method degenerates within a few steps.
func (g *MiddleSquareWeyl) Uint32() uint32 {
	x := g.x * g.x
	g.weyl += g.inc
	x += g.weyl
	g.x = bits.RotateLeft64(x, 32)
	return uint32(x >> 32)
}

// Uint64 runs two middle-square steps inline, combining the high 32 bits of
// each pre-rotation state. The output equals two Uint32 calls packed
// high-then-low.
func (g *MiddleSquareWeyl) Uint64() uint64 {
	x := g.x * g.x
	g.weyl += g.inc
	x += g.weyl
	hi := x &^ 0xffffffff
	x = bits.RotateLeft64(x, 32)
	y := x * x
	g.weyl += g.inc
	y += g.weyl
	g.x = bits.RotateLeft64(y, 32)
	return hi | y>>32
}

// Split returns an independent child generator. The child's increment is
// selected from the table using one output drawn from the parent, so
// splitting advances the parent by one step. The child's Weyl value combines
// avalanche mixes of the parent's current state and Weyl accumulator.
// Between any two children the expected increment collision probability is
// 2^-18 and the state collision probability 2^-64.
func (g *MiddleSquareWeyl) Split() *MiddleSquareWeyl {
	inc := tableIncrement(g.Uint32()) | 1
	return &MiddleSquareWeyl{
		x:    inc,
		weyl: stafford13(g.x) ^ stafford13(g.weyl),
		inc:  inc,
	}
}

// SplitProvider implements Splittable.
func (g *MiddleSquareWeyl) SplitProvider() Splittable { return g.Split() }

// Uint32N returns a uniform value in [0, n). Panics if n == 0.
func (g *MiddleSquareWeyl) Uint32N(n uint32) uint32 { return uint32n(g, n) }

// Uint64N returns a uniform value in [0, n). Panics if n == 0.
func (g *MiddleSquareWeyl) Uint64N(n uint64) uint64 { return uint64n(g, n) }

// Int31n returns a uniform value in [0, n). Panics if n <= 0.
func (g *MiddleSquareWeyl) Int31n(n int32) int32 { return int31n(g, n) }

// Int63n returns a uniform value in [0, n). Panics if n <= 0.
func (g *MiddleSquareWeyl) Int63n(n int64) int64 { return int63n(g, n) }

// Float32 returns a uniform value in [0, 1).
func (g *MiddleSquareWeyl) Float32() float32 { return float32of(g.Uint32()) }

// Float64 returns a uniform value in [0, 1).
func (g *MiddleSquareWeyl) Float64() float64 { return float64of(g.Uint64()) }

// Bool returns the top bit of a draw as a boolean.
func (g *MiddleSquareWeyl) Bool() bool { return g.Uint32()>>31 == 1 }

// Bytes fills p with pseudo-random bytes.
func (g *MiddleSquareWeyl) Bytes(p []byte) { fillBytes(g, p) }

// Read implements io.Reader. It always fills p and never fails.
func (g *MiddleSquareWeyl) Read(p []byte) (int, error) {
	fillBytes(g, p)
	return len(p), nil
}

type middleSquareWeylState struct {
	x, weyl, inc uint64
}

func (middleSquareWeylState) family() string { return "MiddleSquareWeyl" }

// State returns an opaque snapshot of the generator.
func (g *MiddleSquareWeyl) State() State {
	return middleSquareWeylState{x: g.x, weyl: g.weyl, inc: g.inc}
}

// Restore replaces the generator state with a snapshot from State. The
// increment is forced odd even if the snapshot was tampered with.
func (g *MiddleSquareWeyl) Restore(s State) error {
	st, ok := s.(middleSquareWeylState)
	if !ok {
		return stateMismatch("MiddleSquareWeyl", s)
	}
	g.x = st.x
	g.weyl = st.weyl
	g.inc = st.inc | 1
	return nil
}

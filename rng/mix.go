package rng

// goldenRatio64 is 2^64 / phi, the increment used by splitmix-style seed
// expansion. Successive multiples are maximally spread over the 64-bit range.
const goldenRatio64 = 0x9e3779b97f4a7c15

// goldenRatio64x2 is 2*goldenRatio64 reduced mod 2^64, precomputed because
// the unreduced product does not fit an untyped uint64 constant.
const goldenRatio64x2 = 0x3c6ef372fe94f82a

// stafford13 is variant 13 of David Stafford's mixers of the MurmurHash3
// finaliser. Every input bit affects every output bit, which makes it
// suitable for expanding small seeds into full-width state words.
func stafford13(x uint64) uint64 {
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}

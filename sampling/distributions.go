package sampling

import (
	"math"

	"github.com/cellmorph/utils/rng"
)

// Normal samples a Gaussian distribution from a generator using the
// Marsaglia polar method. The method produces values in pairs; the spare is
// cached, so draws alternate between two and zero underlying uniforms.
// Like the generators themselves, a Normal is single-owner.
type Normal struct {
	p        rng.Provider
	mean     float64
	stddev   float64
	spare    float64
	hasSpare bool
}

// NewNormal creates a sampler for the given mean and standard deviation.
func NewNormal(p rng.Provider, mean, stddev float64) *Normal {
	return &Normal{p: p, mean: mean, stddev: stddev}
}

// Next returns the next Gaussian deviate.
func (n *Normal) Next() float64 {
	if n.hasSpare {
		n.hasSpare = false
		return n.mean + n.stddev*n.spare
	}
	var u, v, s float64
	for {
		u = 2*n.p.Float64() - 1
		v = 2*n.p.Float64() - 1
		s = u*u + v*v
		if s > 0 && s < 1 {
			break
		}
	}
	f := math.Sqrt(-2 * math.Log(s) / s)
	n.spare = v * f
	n.hasSpare = true
	return n.mean + n.stddev*u*f
}

// ExpFloat64 returns an exponentially distributed value with rate lambda,
// by inversion of a uniform draw. Panics if lambda <= 0.
func ExpFloat64(p rng.Provider, lambda float64) float64 {
	if lambda <= 0 {
		panic("sampling: rate must be positive")
	}
	// 1-U is in (0, 1], keeping the log finite.
	return -math.Log(1-p.Float64()) / lambda
}

package sampling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cellmorph/utils/rng"
)

func TestNormalMoments(t *testing.T) {
	n := NewNormal(rng.NewXoroshiro128PP(12), 5, 2)

	const draws = 200000
	var sum, sum2 float64
	for i := 0; i < draws; i++ {
		v := n.Next()
		sum += v
		sum2 += v * v
	}
	mean := sum / draws
	variance := sum2/draws - mean*mean

	// Standard error of the mean is 2/sqrt(draws) ~ 0.0045.
	assert.InDelta(t, 5.0, mean, 0.05)
	assert.InDelta(t, 4.0, variance, 0.2)
}

func TestNormalDeterministic(t *testing.T) {
	a := NewNormal(rng.NewPCG32(rng.XSHRR, 3), 0, 1)
	b := NewNormal(rng.NewPCG32(rng.XSHRR, 3), 0, 1)
	for i := 0; i < 100; i++ {
		require.Equal(t, a.Next(), b.Next(), "draw %d", i)
	}
}

func TestExpFloat64(t *testing.T) {
	p := rng.NewMiddleSquareWeyl(9)

	const draws = 200000
	const lambda = 2.0
	var sum float64
	for i := 0; i < draws; i++ {
		v := ExpFloat64(p, lambda)
		require.GreaterOrEqual(t, v, 0.0)
		sum += v
	}
	// Mean of Exp(lambda) is 1/lambda.
	assert.InDelta(t, 1/lambda, sum/draws, 0.01)

	assert.Panics(t, func() { ExpFloat64(p, 0) })
	assert.Panics(t, func() { ExpFloat64(p, -1) })
}

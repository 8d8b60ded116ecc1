// Package stats provides the statistics accumulators used when summarising
// measurement series: an unbounded running accumulator and a fixed-window
// rolling variant.
package stats

import (
	"math"

	"github.com/cellmorph/utils/container"
)

// Accumulator tracks running moments of a value series without storing the
// values. The zero value is ready to use.
type Accumulator struct {
	n    int
	sum  float64
	sum2 float64 // sum of squares for variance
	min  float64
	max  float64
}

// Add incorporates a new observation.
func (a *Accumulator) Add(v float64) {
	if a.n == 0 || v < a.min {
		a.min = v
	}
	if a.n == 0 || v > a.max {
		a.max = v
	}
	a.n++
	a.sum += v
	a.sum2 += v * v
}

// AddN incorporates every value in vs.
func (a *Accumulator) AddN(vs ...float64) {
	for _, v := range vs {
		a.Add(v)
	}
}

// Merge folds another accumulator into this one, as if every observation it
// saw had been added here.
func (a *Accumulator) Merge(b *Accumulator) {
	if b.n == 0 {
		return
	}
	if a.n == 0 || b.min < a.min {
		a.min = b.min
	}
	if a.n == 0 || b.max > a.max {
		a.max = b.max
	}
	a.n += b.n
	a.sum += b.sum
	a.sum2 += b.sum2
}

// N returns the number of observations.
func (a *Accumulator) N() int { return a.n }

// Sum returns the sum of all observations.
func (a *Accumulator) Sum() float64 { return a.sum }

// Min returns the smallest observation, or 0 when empty.
func (a *Accumulator) Min() float64 { return a.min }

// Max returns the largest observation, or 0 when empty.
func (a *Accumulator) Max() float64 { return a.max }

// Mean returns the arithmetic mean, or 0 when empty.
func (a *Accumulator) Mean() float64 {
	if a.n == 0 {
		return 0
	}
	return a.sum / float64(a.n)
}

// Variance returns the sample variance, or 0 with fewer than two
// observations.
func (a *Accumulator) Variance() float64 {
	if a.n < 2 {
		return 0
	}
	mean := a.Mean()
	v := (a.sum2 - float64(a.n)*mean*mean) / float64(a.n-1)
	if v < 0 {
		// Cancellation can push the result marginally below zero.
		return 0
	}
	return v
}

// StdDev returns the sample standard deviation.
func (a *Accumulator) StdDev() float64 {
	return math.Sqrt(a.Variance())
}

// StdError returns the standard error of the mean, or 0 when empty.
func (a *Accumulator) StdError() float64 {
	if a.n == 0 {
		return 0
	}
	return a.StdDev() / math.Sqrt(float64(a.n))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean.
func (a *Accumulator) ConfidenceInterval95() (float64, float64) {
	mean := a.Mean()
	margin := 1.96 * a.StdError()
	return mean - margin, mean + margin
}

// Rolling tracks the same moments as Accumulator over a fixed window of the
// most recent observations.
type Rolling struct {
	window *container.RollingArray
}

// NewRolling creates a rolling accumulator over the given window size.
// Panics if size <= 0.
func NewRolling(size int) *Rolling {
	return &Rolling{window: container.NewRollingArray(size)}
}

// Add incorporates a new observation, evicting the oldest when full.
func (r *Rolling) Add(v float64) { r.window.Add(v) }

// N returns the number of observations currently in the window.
func (r *Rolling) N() int { return r.window.Len() }

// Full reports whether the window is at capacity.
func (r *Rolling) Full() bool { return r.window.Full() }

// Mean returns the mean of the window, or 0 when empty.
func (r *Rolling) Mean() float64 {
	return r.snapshot().Mean()
}

// Variance returns the sample variance of the window.
func (r *Rolling) Variance() float64 {
	return r.snapshot().Variance()
}

// StdDev returns the sample standard deviation of the window.
func (r *Rolling) StdDev() float64 {
	return r.snapshot().StdDev()
}

func (r *Rolling) snapshot() *Accumulator {
	var a Accumulator
	a.AddN(r.window.Values()...)
	return &a
}

// Package container holds the small data structures shared by the analysis
// tools: a rolling window over float64 values, a bounded int list and a
// packed triangular-matrix indexer.
package container

import "fmt"

// RollingArray is a fixed-capacity ring buffer keeping the most recent
// values. Once full, each Add evicts the oldest value.
type RollingArray struct {
	buf  []float64
	head int
	size int
}

// NewRollingArray creates a rolling array holding up to capacity values.
// Panics if capacity <= 0.
func NewRollingArray(capacity int) *RollingArray {
	if capacity <= 0 {
		panic(fmt.Sprintf("container: capacity must be positive, got %d", capacity))
	}
	return &RollingArray{buf: make([]float64, capacity)}
}

// Add appends v, evicting the oldest value when the window is full.
func (r *RollingArray) Add(v float64) {
	r.buf[r.head] = v
	r.head = (r.head + 1) % len(r.buf)
	if r.size < len(r.buf) {
		r.size++
	}
}

// Len returns the number of values currently held.
func (r *RollingArray) Len() int { return r.size }

// Cap returns the window capacity.
func (r *RollingArray) Cap() int { return len(r.buf) }

// Full reports whether the window has reached capacity.
func (r *RollingArray) Full() bool { return r.size == len(r.buf) }

// Values returns the held values oldest-first in a new slice.
func (r *RollingArray) Values() []float64 {
	out := make([]float64, r.size)
	start := r.head - r.size
	if start < 0 {
		start += len(r.buf)
	}
	for i := 0; i < r.size; i++ {
		out[i] = r.buf[(start+i)%len(r.buf)]
	}
	return out
}

// Clear empties the window without releasing the backing array.
func (r *RollingArray) Clear() {
	r.head = 0
	r.size = 0
}

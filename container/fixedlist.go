package container

import "fmt"

// FixedList is an int list with a hard capacity. Adds beyond capacity are
// rejected rather than grown, which keeps hot loops allocation-free.
type FixedList struct {
	vals []int
}

// NewFixedList creates a list with the given capacity. Panics if
// capacity <= 0.
func NewFixedList(capacity int) *FixedList {
	if capacity <= 0 {
		panic(fmt.Sprintf("container: capacity must be positive, got %d", capacity))
	}
	return &FixedList{vals: make([]int, 0, capacity)}
}

// Add appends v and reports whether it fit.
func (l *FixedList) Add(v int) bool {
	if len(l.vals) == cap(l.vals) {
		return false
	}
	l.vals = append(l.vals, v)
	return true
}

// Len returns the number of stored values.
func (l *FixedList) Len() int { return len(l.vals) }

// Cap returns the capacity.
func (l *FixedList) Cap() int { return cap(l.vals) }

// Get returns the value at index i. Panics if i is out of range.
func (l *FixedList) Get(i int) int { return l.vals[i] }

// Values returns a copy of the stored values.
func (l *FixedList) Values() []int {
	out := make([]int, len(l.vals))
	copy(out, l.vals)
	return out
}

// Clear empties the list, keeping capacity.
func (l *FixedList) Clear() { l.vals = l.vals[:0] }

package container

import "fmt"

// Triangular maps unordered index pairs of an n-by-n symmetric matrix onto a
// packed one-dimensional array, storing each pair once. The layout is row
// major over the upper triangle including the diagonal:
//
//	(0,0) (0,1) ... (0,n-1) (1,1) (1,2) ...
type Triangular struct {
	n int
}

// NewTriangular creates an indexer for an n-by-n symmetric matrix. Panics if
// n <= 0.
func NewTriangular(n int) Triangular {
	if n <= 0 {
		panic(fmt.Sprintf("container: matrix size must be positive, got %d", n))
	}
	return Triangular{n: n}
}

// Size returns the packed array length: n*(n+1)/2.
func (t Triangular) Size() int { return t.n * (t.n + 1) / 2 }

// Index returns the packed offset of pair (i, j). Order does not matter.
// Panics if either index is out of range.
func (t Triangular) Index(i, j int) int {
	t.check(i, j)
	if i > j {
		i, j = j, i
	}
	return i*t.n - i*(i-1)/2 + (j - i)
}

// SizeStrict returns the packed length when the diagonal is excluded:
// n*(n-1)/2.
func (t Triangular) SizeStrict() int { return t.n * (t.n - 1) / 2 }

// IndexStrict returns the packed offset of pair (i, j) in a layout without
// the diagonal. Panics if i == j or either index is out of range.
func (t Triangular) IndexStrict(i, j int) int {
	t.check(i, j)
	if i == j {
		panic(fmt.Sprintf("container: diagonal pair (%d,%d) has no strict index", i, j))
	}
	if i > j {
		i, j = j, i
	}
	return i*(2*t.n-i-1)/2 + (j - i - 1)
}

func (t Triangular) check(i, j int) {
	if i < 0 || i >= t.n || j < 0 || j >= t.n {
		panic(fmt.Sprintf("container: pair (%d,%d) out of range for size %d", i, j, t.n))
	}
}

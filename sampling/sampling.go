// Package sampling builds bulk sequence generation, shuffling and sampling
// without replacement on top of any rng generator. It adds no randomness of
// its own; everything is range mapping and stream splitting over the rng
// contract.
package sampling

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/cellmorph/utils/rng"
)

// Split derives n independent child generators from parent. The parent is
// advanced once per child, so the result is reproducible for a given parent
// state. Panics if n < 0.
func Split(parent rng.Splittable, n int) []rng.Splittable {
	if n < 0 {
		panic(fmt.Sprintf("sampling: stream count must be non-negative, got %d", n))
	}
	children := make([]rng.Splittable, n)
	for i := range children {
		children[i] = parent.SplitProvider()
	}
	return children
}

// Shuffle permutes s in place with a backwards Fisher-Yates pass.
func Shuffle[T any](p rng.Provider, s []T) {
	for i := len(s) - 1; i > 0; i-- {
		j := p.Int63n(int64(i + 1))
		s[i], s[j] = s[j], s[i]
	}
}

// ShuffleN partially shuffles s so that its first n elements are a uniform
// random ordered sample of the whole slice. A forward pass of n Fisher-Yates
// swaps; cheaper than Shuffle when only a prefix is consumed. Panics if n is
// out of range.
func ShuffleN[T any](p rng.Provider, s []T, n int) {
	if n < 0 || n > len(s) {
		panic(fmt.Sprintf("sampling: prefix length %d out of range for %d elements", n, len(s)))
	}
	for i := 0; i < n; i++ {
		j := i + int(p.Int63n(int64(len(s)-i)))
		s[i], s[j] = s[j], s[i]
	}
}

// Perm returns a pseudo-random permutation of [0, n).
func Perm(p rng.Provider, n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	Shuffle(p, out)
	return out
}

// Sample returns k distinct indices drawn uniformly from [0, n) without
// replacement, using a partial Fisher-Yates pass over an index permutation.
// The order of the result is itself random.
func Sample(p rng.Provider, k, n int) ([]int, error) {
	if k < 0 || n < 0 {
		return nil, fmt.Errorf("sampling: negative size (k=%d, n=%d)", k, n)
	}
	if k > n {
		return nil, fmt.Errorf("sampling: cannot draw %d from %d without replacement", k, n)
	}
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	for i := 0; i < k; i++ {
		j := i + int(p.Int63n(int64(n-i)))
		idx[i], idx[j] = idx[j], idx[i]
	}
	return idx[:k:k], nil
}

// Uint64s fills a new slice with n raw draws.
func Uint64s(p rng.Provider, n int) []uint64 {
	out := make([]uint64, n)
	for i := range out {
		out[i] = p.Uint64()
	}
	return out
}

// Float64s fills a new slice with n draws from [0, 1).
func Float64s(p rng.Provider, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = p.Float64()
	}
	return out
}

// ParallelFloat64s produces n draws from [0, 1) using the given number of
// workers, each running its own child split from parent. The output is
// deterministic for a given parent state and worker count: worker i always
// owns the i-th child and the i-th contiguous chunk of the result.
func ParallelFloat64s(parent rng.Splittable, n, workers int) []float64 {
	if workers < 1 {
		workers = 1
	}
	if workers > n {
		workers = n
	}
	out := make([]float64, n)
	if n == 0 {
		return out
	}

	children := Split(parent, workers)
	chunk := n / workers

	var g errgroup.Group
	for i := 0; i < workers; i++ {
		child := children[i]
		lo := i * chunk
		hi := lo + chunk
		if i == workers-1 {
			hi = n
		}
		g.Go(func() error {
			for j := lo; j < hi; j++ {
				out[j] = child.Float64()
			}
			return nil
		})
	}
	// Workers cannot fail; Wait only synchronises completion.
	_ = g.Wait()
	return out
}

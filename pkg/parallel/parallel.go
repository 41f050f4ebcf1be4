// Package parallel partitions index-range work across worker goroutines and
// merges writes into shared state, per spec.md §4.8.
package parallel

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// DivideEvenly splits the range [0, n) into m contiguous partition sizes.
// The first m-1 partitions are each n/m; the last absorbs the remainder.
// Returns an empty slice for m == 0. Panics if m > n or either is negative,
// mirroring spec.md §4.8's "asserts 0 <= m <= n".
func DivideEvenly(n, m int) []int {
	if m < 0 || n < 0 || m > n {
		panic(fmt.Sprintf("parallel: DivideEvenly requires 0 <= m(%d) <= n(%d)", m, n))
	}
	if m == 0 {
		return nil
	}
	sizes := make([]int, m)
	base := n / m
	for i := 0; i < m-1; i++ {
		sizes[i] = base
	}
	sizes[m-1] = n - base*(m-1)
	return sizes
}

// PeachIndexed runs f(i, item) for every index i in [0, len(coll)), across up
// to threads goroutines, each owning one contiguous index range produced by
// DivideEvenly. threads is clamped to min(threads, len(coll)). It returns
// only once every call has completed, and returns the first non-nil error
// any worker produced (errgroup semantics). PeachIndexed does not recover
// panics: a panicking worker is left to errgroup.Group and is not turned
// into a returned error.
func PeachIndexed[T any](ctx context.Context, coll []T, threads int, f func(ctx context.Context, i int, item T) error) error {
	n := len(coll)
	if threads > n {
		threads = n
	}
	if threads < 1 && n > 0 {
		threads = 1
	}
	sizes := DivideEvenly(n, threads)

	g, gctx := errgroup.WithContext(ctx)
	start := 0
	for _, size := range sizes {
		lo, hi := start, start+size
		start = hi
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				if err := f(gctx, i, coll[i]); err != nil {
					return fmt.Errorf("parallel: item %d: %w", i, err)
				}
			}
			return nil
		})
	}
	return g.Wait()
}

package neighbors

import (
	"fmt"

	"github.com/katalvlaran/lvlscan/dbscan"
)

// CachedIndex wraps an indexed oracle with per-index memoization: each of
// the n neighborhoods is derived at most once and served from cache after
// that. Worth it whenever the same dataset is fit more than once (say, a
// minPts sweep), since the underlying range queries dominate DBSCAN's cost.
//
// The cache trusts the oracle contract: a neighborhood is assumed non-empty
// (it contains at least the queried point), so an empty slot means "not yet
// derived". Queries outside 0..n-1 bypass the cache. The returned oracle is
// not safe for concurrent use.
func CachedIndex(n int, oracle dbscan.Oracle[int]) (dbscan.Oracle[int], error) {
	if oracle == nil {
		return nil, ErrNilOracle
	}
	if n < 0 {
		return nil, fmt.Errorf("neighbors: negative cache size %d", n)
	}
	cache := make([][]int, n)
	return func(i int) []int {
		if i < 0 || i >= n {
			return oracle(i)
		}
		if cache[i] == nil {
			cache[i] = oracle(i)
		}
		return cache[i]
	}, nil
}

package neighbors_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlscan/neighbors"
)

// TestCachedIndex_Memoizes: the wrapped oracle is consulted once per index.
func TestCachedIndex_Memoizes(t *testing.T) {
	calls := make([]int, 3)
	base := func(i int) []int {
		calls[i]++
		return []int{i}
	}

	oracle, err := neighbors.CachedIndex(3, base)
	require.NoError(t, err)

	for pass := 0; pass < 4; pass++ {
		for i := 0; i < 3; i++ {
			assert.Equal(t, []int{i}, oracle(i))
		}
	}
	assert.Equal(t, []int{1, 1, 1}, calls, "each neighborhood derived exactly once")
}

// TestCachedIndex_OutOfRange: indices outside the cache pass through.
func TestCachedIndex_OutOfRange(t *testing.T) {
	calls := 0
	base := func(i int) []int {
		calls++
		return []int{i}
	}

	oracle, err := neighbors.CachedIndex(1, base)
	require.NoError(t, err)

	oracle(5)
	oracle(5)
	oracle(-1)
	assert.Equal(t, 3, calls, "out-of-range queries bypass the cache")
}

// TestCachedIndex_Errors verifies construction validation.
func TestCachedIndex_Errors(t *testing.T) {
	_, err := neighbors.CachedIndex(1, nil)
	assert.ErrorIs(t, err, neighbors.ErrNilOracle)

	_, err = neighbors.CachedIndex(-1, func(i int) []int { return nil })
	assert.Error(t, err, "negative cache size must be rejected")
}

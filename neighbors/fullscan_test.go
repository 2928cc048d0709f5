package neighbors_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlscan/neighbors"
)

var line = []neighbors.Point2{
	{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 10, Y: 0},
}

// TestFullScan_Errors verifies radius and distance validation.
func TestFullScan_Errors(t *testing.T) {
	for _, bad := range []float64{-1, math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := neighbors.FullScan(line, neighbors.EuclideanDist2, bad)
		assert.ErrorIs(t, err, neighbors.ErrBadRadius, "radius %v must be rejected", bad)
		_, err = neighbors.FullScanIndex(line, neighbors.EuclideanDist2, bad)
		assert.ErrorIs(t, err, neighbors.ErrBadRadius, "radius %v must be rejected", bad)
	}

	_, err := neighbors.FullScan[neighbors.Point2](line, nil, 1)
	assert.ErrorIs(t, err, neighbors.ErrNilDistance)
	_, err = neighbors.FullScanIndex[neighbors.Point2](line, nil, 1)
	assert.ErrorIs(t, err, neighbors.ErrNilDistance)
}

// TestFullScan_Neighborhoods checks inclusivity of the radius and of the
// queried point itself.
func TestFullScan_Neighborhoods(t *testing.T) {
	oracle, err := neighbors.FullScan(line, neighbors.EuclideanDist2, 1.0)
	require.NoError(t, err)

	assert.ElementsMatch(t, line[0:2], oracle(line[0]), "radius is inclusive")
	assert.ElementsMatch(t, line[0:3], oracle(line[1]))
	assert.ElementsMatch(t, line[3:4], oracle(line[3]), "isolated point still sees itself")
}

// TestFullScanIndex_Neighborhoods mirrors the keyed checks on indices.
func TestFullScanIndex_Neighborhoods(t *testing.T) {
	oracle, err := neighbors.FullScanIndex(line, neighbors.EuclideanDist2, 1.0)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1}, oracle(0))
	assert.Equal(t, []int{0, 1, 2}, oracle(1))
	assert.Equal(t, []int{3}, oracle(3))
}

// TestFullScan_ZeroRadius: eps = 0 degenerates to exact coincidence.
func TestFullScan_ZeroRadius(t *testing.T) {
	oracle, err := neighbors.FullScanIndex(line, neighbors.EuclideanDist2, 0)
	require.NoError(t, err)
	for i := range line {
		assert.Equal(t, []int{i}, oracle(i), "only the point itself at eps=0")
	}
}

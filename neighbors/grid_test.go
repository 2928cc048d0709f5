package neighbors_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlscan/neighbors"
)

// TestGrid2_Errors: the grid needs a finite, strictly positive cell width.
func TestGrid2_Errors(t *testing.T) {
	for _, bad := range []float64{0, -0.5, math.NaN(), math.Inf(1)} {
		_, err := neighbors.Grid2(line, bad)
		assert.ErrorIs(t, err, neighbors.ErrBadRadius, "radius %v must be rejected", bad)
	}
}

// TestGrid2_CrossCellNeighbors: points closer than eps but bucketed into
// adjacent cells must still see each other.
func TestGrid2_CrossCellNeighbors(t *testing.T) {
	// eps = 1, so cells split at integer coordinates: 0.95 and 1.05 land
	// in different cells 0.1 apart.
	pts := []neighbors.Point2{{X: 0.95, Y: 0.5}, {X: 1.05, Y: 0.5}}
	oracle, err := neighbors.Grid2(pts, 1.0)
	require.NoError(t, err)

	assert.ElementsMatch(t, []int{0, 1}, oracle(0))
	assert.ElementsMatch(t, []int{0, 1}, oracle(1))
}

// TestGrid2_NegativeCoordinates: flooring keeps cells distinct across the
// axes, so points straddling the origin behave like any others.
func TestGrid2_NegativeCoordinates(t *testing.T) {
	pts := []neighbors.Point2{
		{X: -0.1, Y: -0.1}, {X: 0.1, Y: 0.1}, {X: -5, Y: -5},
	}
	oracle, err := neighbors.Grid2(pts, 0.5)
	require.NoError(t, err)

	assert.ElementsMatch(t, []int{0, 1}, oracle(0))
	assert.ElementsMatch(t, []int{0, 1}, oracle(1))
	assert.ElementsMatch(t, []int{2}, oracle(2))
}

// TestGrid2_AgreesWithFullScan: on a reproducible scatter, the grid answers
// exactly the full-scan neighborhoods for every point.
func TestGrid2_AgreesWithFullScan(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	pts := make([]neighbors.Point2, 300)
	for i := range pts {
		pts[i] = neighbors.Point2{X: rng.Float64()*20 - 10, Y: rng.Float64()*20 - 10}
	}

	grid, err := neighbors.Grid2(pts, 0.9)
	require.NoError(t, err)
	scan, err := neighbors.FullScanIndex(pts, neighbors.EuclideanDist2, 0.9)
	require.NoError(t, err)

	for i := range pts {
		assert.ElementsMatch(t, scan(i), grid(i), "neighborhood of %d diverges", i)
	}
}

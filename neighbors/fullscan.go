package neighbors

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlscan/dbscan"
)

// FullScan builds a keyed oracle that answers each range query by scanning
// the whole dataset: every point within eps of the query (inclusive) is
// returned. O(n) per query, no setup cost — the baseline strategy.
//
// Self-inclusion holds for any query drawn from points, because
// dist(p, p) == 0 ≤ eps. The result is duplicate-free provided the dataset
// itself holds no duplicate points.
//
// eps must be finite and ≥ 0; eps == 0 degenerates to "exactly coincident
// points only".
func FullScan[P any](points []P, dist DistanceFunc[P], eps float64) (dbscan.Oracle[P], error) {
	if err := checkRadius(eps, false); err != nil {
		return nil, err
	}
	if dist == nil {
		return nil, ErrNilDistance
	}
	return func(q P) []P {
		var out []P
		for _, p := range points {
			if dist(q, p) <= eps {
				out = append(out, p)
			}
		}
		return out
	}, nil
}

// FullScanIndex is FullScan for the indexed variant: the oracle answers in
// positions into points, ready for dbscan.FitIndex.
func FullScanIndex[P any](points []P, dist DistanceFunc[P], eps float64) (dbscan.Oracle[int], error) {
	if err := checkRadius(eps, false); err != nil {
		return nil, err
	}
	if dist == nil {
		return nil, ErrNilDistance
	}
	return func(qi int) []int {
		q := points[qi]
		var out []int
		for i, p := range points {
			if dist(q, p) <= eps {
				out = append(out, i)
			}
		}
		return out
	}, nil
}

// checkRadius rejects NaN, infinite and negative radii; strict additionally
// rejects zero (the grid index needs a positive cell width).
func checkRadius(eps float64, strict bool) error {
	switch {
	case math.IsNaN(eps) || math.IsInf(eps, 0):
		return fmt.Errorf("%w: %v", ErrBadRadius, eps)
	case eps < 0:
		return fmt.Errorf("%w: %v is negative", ErrBadRadius, eps)
	case strict && eps == 0:
		return fmt.Errorf("%w: radius must be positive", ErrBadRadius)
	}
	return nil
}

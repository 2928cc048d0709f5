package neighbors

import (
	"math"

	"github.com/katalvlaran/lvlscan/dbscan"
)

// cell addresses one eps×eps bucket of the plane.
type cell struct {
	cx, cy int
}

// Grid2 builds an indexed spatial-hash oracle over 2D points: the plane is
// cut into eps×eps cells, each point is bucketed by its cell, and a range
// query only inspects the 3×3 block of cells around the query point — any
// point within eps of the query must sit in that block.
//
// Setup is O(n); a query costs O(k) for k points in the 3×3 block, which for
// well-spread data beats FullScanIndex's O(n) by a wide margin.
//
// eps must be finite and strictly positive (it is the cell width). The
// returned oracle answers in positions into points, ready for
// dbscan.FitIndex, and is safe for concurrent reads.
func Grid2(points []Point2, eps float64) (dbscan.Oracle[int], error) {
	if err := checkRadius(eps, true); err != nil {
		return nil, err
	}
	buckets := make(map[cell][]int, len(points))
	for i, p := range points {
		c := cellOf(p, eps)
		buckets[c] = append(buckets[c], i)
	}
	eps2 := eps * eps

	return func(qi int) []int {
		q := points[qi]
		c := cellOf(q, eps)
		var out []int
		for dx := -1; dx <= 1; dx++ {
			for dy := -1; dy <= 1; dy++ {
				for _, j := range buckets[cell{c.cx + dx, c.cy + dy}] {
					if SquaredDist2(q, points[j]) <= eps2 {
						out = append(out, j)
					}
				}
			}
		}
		return out
	}, nil
}

// cellOf maps a point to its bucket; floor keeps negative coordinates from
// sharing cells across the axes.
func cellOf(p Point2, eps float64) cell {
	return cell{
		cx: int(math.Floor(p.X / eps)),
		cy: int(math.Floor(p.Y / eps)),
	}
}

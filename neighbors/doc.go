// Package neighbors provides the range-query side of DBSCAN: distance
// functions and constructors for dbscan.Oracle values.
//
// What
//
//   - Distance functions: Euclidean / SquaredEuclidean / Cosine over
//     []float64 vectors, EuclideanDist2 / SquaredDist2 over Point2.
//   - Oracle constructors, all honoring the dbscan.Oracle contract
//     (deterministic, duplicate-free, self-inclusive):
//   - FullScan / FullScanIndex — O(n)-per-query baseline over any point
//     type and any DistanceFunc.
//   - CachedIndex — memoizing wrapper, one derivation per neighborhood.
//   - Grid2 — eps-cell spatial hash over Point2, O(k)-per-query for the
//     k points near the query.
//
// Why
//
//	The dbscan core treats neighborhood search as an external collaborator:
//	it only ever calls an Oracle. This package supplies the strategies worth
//	having out of the box, and doubles as a template for plugging in your
//	own (an R-tree, a k-d tree, a database query — anything that keeps the
//	contract).
//
// Choosing a strategy
//
//   - Small datasets, exotic point types, custom metrics: FullScan.
//   - Repeated fits over one dataset (parameter sweeps): CachedIndex over
//     whatever base oracle fits.
//   - Large planar datasets under Euclidean distance: Grid2.
//
// Errors
//
//   - ErrBadRadius    for NaN, infinite or negative eps (Grid2 also rejects
//     zero — eps is its cell width).
//   - ErrNilDistance  for a nil DistanceFunc.
//   - ErrNilOracle    for a nil oracle handed to CachedIndex.
package neighbors

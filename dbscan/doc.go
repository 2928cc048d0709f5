// Package dbscan provides a production-grade DBSCAN cluster-expansion
// engine over a pluggable neighborhood oracle, returning density-connected
// clusters plus the residual noise set.
//
// What
//
//   - Partition a point set into clusters of mutually density-connected
//     points; everything unreachable from a core point ends up as noise.
//   - Returns a Result containing:
//   - Clusters: clusters in discovery order, each listing its points in
//     expansion order
//   - Noise: points belonging to no cluster at scan end
//   - Three interchangeable entry points with identical clustering
//     semantics:
//   - Fit — any comparable point type, natural equality
//   - FitFunc — any point type, identity supplied as a key function
//   - FitIndex — positional point sets, dense array labels, no hashing
//   - Consumes neighborhoods through the Oracle contract only: the core
//     never computes a distance, never chooses a search strategy.
//
// Why
//
//   - Discover clusters of arbitrary shape without fixing their count
//     up front, unlike k-means.
//   - Separate signal from noise: outliers are a first-class output, not
//     forced into the nearest cluster.
//   - Keep range-query strategy (full scan, cache, spatial index) swappable
//     behind one function type — see package neighbors.
//
// Determinism
//
//	Cluster and noise membership is a fixed point of the density-
//	reachability relation: for a deterministic oracle, re-running a fit
//	reproduces the same partition regardless of traversal order. The order
//	of points inside a cluster follows the breadth-first expansion and is
//	reproducible for a fixed oracle, but is not part of the contract.
//
// Oracle Contract
//
//	An Oracle must be deterministic, duplicate-free, and self-inclusive:
//	the queried point counts toward its own neighborhood, and minPts
//	compares against that inclusive size. An oracle that omits the queried
//	point undercounts every neighborhood by one — with minPts = 2, two
//	points at the same coordinate would both be noise. The core does not
//	defensively re-add the point; honoring the contract is the oracle's
//	job.
//
// Concurrency
//
//	A single fit is strictly sequential: one writer over one label store,
//	no locks needed. Independent fit calls may run concurrently as long as
//	any shared oracle is safe for concurrent reads.
//
// Complexity (n = |points|, Q = cost of one oracle query)
//
//   - Time:   O(n·Q)  (each point's neighborhood derived at most once)
//   - Memory: O(n)    (labels, per-expansion dedup set, work queue)
//
// Usage
//
//	// Indexed variant over 2D points with a grid-backed oracle:
//	oracle, err := neighbors.Grid2(points, 0.5)
//	if err != nil {
//	    // handle neighbors.ErrBadRadius
//	}
//	res, err := dbscan.FitIndex(len(points), oracle, 4)
//	if err != nil {
//	    // handle ErrNilOracle, ErrNegativeCount, ErrMinPoints
//	}
//	for i, cluster := range res.Clusters {
//	    fmt.Println("cluster", i, "size", len(cluster))
//	}
//	fmt.Println("noise:", res.Noise)
//
//	// Keyed variant over arbitrary items:
//	res, err := dbscan.Fit(cities, cityOracle, 3, dbscan.WithContext(ctx))
//
// Options
//
//   - DefaultOptions(): background Context.
//   - WithContext(ctx): set a custom context; cancellation aborts the fit
//     with ctx.Err() and no partial Result.
//
// Errors
//
//   - ErrNilPoints      if the points slice is nil.
//   - ErrNilOracle      if the oracle is nil.
//   - ErrNilKeyFunc     if FitFunc receives a nil key function.
//   - ErrNegativeCount  if FitIndex receives a negative length.
//   - ErrMinPoints      if minPts < 1.
//
// See: package neighbors for distance functions and Oracle constructors.
package dbscan

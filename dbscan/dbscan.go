package dbscan

import "fmt"

// DBSCAN — Density-Based Spatial Clustering of Applications with Noise
//
// Description:
//
//	DBSCAN partitions a point set into density-connected clusters plus a
//	residual noise set. A point whose neighborhood (inclusive of itself)
//	holds at least minPts points is a core point; a cluster is the closure
//	of a core point under direct reachability, and non-core points on a
//	cluster's rim are absorbed as border points. Points reachable from no
//	core point end up as noise.
//
// Algorithm Outline:
//  1. Scan the input points once, in order. Skip anything already labeled.
//  2. Query the oracle for the point's neighborhood.
//  3. Below minPts: label the point noise. A later expansion may still
//     promote it to a border point of some cluster.
//  4. At or above minPts: label the point clustered and hand it to the
//     expansion walker, which grows the full cluster breadth-first,
//     querying the oracle once for each newly discovered candidate.
//  5. After the scan, the noise set is every point whose label is still
//     noise.
//
// Complexity (n = points, Q = one oracle query):
//
//	Time:   O(n·Q)  — each point's neighborhood is derived at most once
//	Memory: O(n)    — labels, dedup set, work queue
//
// Errors:
//   - ErrNilPoints / ErrNilOracle / ErrNilKeyFunc / ErrNegativeCount /
//     ErrMinPoints on invalid input, before any traversal.
//   - The caller's ctx error if a WithContext context is cancelled mid-fit.
//
// Once inputs validate, a fit cannot fail and always terminates: each point
// is labeled clustered at most once globally and enqueued at most once per
// expansion.

// Fit clusters points under their natural equality: two points are the same
// iff they are ==. Duplicate occurrences of a point collapse into one
// logical point. See FitFunc for a pluggable identity, FitIndex for
// positional point sets.
func Fit[P comparable](points []P, oracle Oracle[P], minPts int, opts ...Option) (*Result[P], error) {
	if points == nil {
		return nil, ErrNilPoints
	}
	return FitFunc(points, func(p P) P { return p }, oracle, minPts, opts...)
}

// FitFunc clusters points under a caller-supplied identity: key maps each
// point to a comparable key, and two points sharing a key are one logical
// point (case-folded strings, rounded coordinates, an ID field of a struct,
// and so on). Cluster and noise entries carry the first P value encountered
// for each key.
func FitFunc[P any, K comparable](points []P, key func(P) K, oracle Oracle[P], minPts int, opts ...Option) (*Result[P], error) {
	if points == nil {
		return nil, ErrNilPoints
	}
	if key == nil {
		return nil, ErrNilKeyFunc
	}
	o, err := prepare(oracle, minPts, opts)
	if err != nil {
		return nil, err
	}
	return scan(points, oracle, minPts, o, newMapLabels[P, K](key, len(points)))
}

// FitIndex clusters the positions 0..n-1 of a fixed-length sequence; the
// oracle answers in indices and the Result holds indices. Labels live in a
// dense array sized n, so no hashing or per-item copying happens at all —
// use this variant when item identity is naturally positional.
func FitIndex(n int, oracle Oracle[int], minPts int, opts ...Option) (*Result[int], error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeCount, n)
	}
	o, err := prepare(oracle, minPts, opts)
	if err != nil {
		return nil, err
	}
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	return scan(idx, oracle, minPts, o, newDenseLabels(n))
}

// prepare validates the shared arguments and folds functional options.
func prepare[H any](oracle Oracle[H], minPts int, opts []Option) (Options, error) {
	if oracle == nil {
		return Options{}, ErrNilOracle
	}
	if minPts < 1 {
		return Options{}, fmt.Errorf("%w: got %d", ErrMinPoints, minPts)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o, nil
}

// scan is the top-level pass shared by every entry point: one walker, one
// label store, one run over the input order.
func scan[H any](points []H, oracle Oracle[H], minPts int, o Options, store labelStore[H]) (*Result[H], error) {
	w := &walker[H]{
		oracle: oracle,
		store:  store,
		minPts: minPts,
		ctx:    o.Ctx,
	}
	res := &Result[H]{
		Clusters: [][]H{},
		Noise:    []H{},
	}

	// Points written off as noise at their own top-level visit, pending
	// possible promotion to border points by a later expansion.
	var provisional []H

	for _, p := range points {
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		if store.get(p) != unvisited {
			continue
		}
		reachable := oracle(p)
		if len(reachable) < minPts {
			store.set(p, noise)
			provisional = append(provisional, p)
			continue
		}

		store.set(p, clustered)
		cluster, err := w.expand(p, reachable)
		if err != nil {
			return nil, err
		}
		res.Clusters = append(res.Clusters, cluster)
	}

	// Each point was classified at its own top-level visit exactly once, so
	// provisional holds no duplicates; keep whatever never got promoted.
	for _, p := range provisional {
		if store.get(p) == noise {
			res.Noise = append(res.Noise, p)
		}
	}
	return res, nil
}

// Package dbscan defines the oracle contract, tunable options and error
// definitions for density-based cluster expansion.
package dbscan

import (
	"context"
	"errors"
)

// Sentinel errors for fit execution. All input validation happens eagerly,
// before any traversal begins; no partial result is ever produced alongside
// a non-nil error.
var (
	// ErrNilPoints is returned when a nil points sequence is passed.
	ErrNilPoints = errors.New("dbscan: points sequence is nil")

	// ErrNilOracle is returned when a nil neighborhood oracle is passed.
	ErrNilOracle = errors.New("dbscan: neighborhood oracle is nil")

	// ErrNilKeyFunc is returned when FitFunc receives a nil key function.
	ErrNilKeyFunc = errors.New("dbscan: key function is nil")

	// ErrNegativeCount is returned when FitIndex receives a negative length.
	ErrNegativeCount = errors.New("dbscan: negative point count")

	// ErrMinPoints is returned when minPts is below 1.
	ErrMinPoints = errors.New("dbscan: minPts must be at least 1")
)

// Oracle answers range queries: given a point handle, it returns every point
// directly reachable from it within the oracle's fixed radius.
//
// Contract (the core relies on it, but does not enforce it):
//   - Deterministic for a fixed dataset and radius.
//   - The result always contains the queried point itself; the minPts
//     threshold is inclusive of the point, so an oracle that omits it shifts
//     every density count down by one and starves clusters.
//   - The result is duplicate-free. A duplicated entry only wastes work,
//     since expansion deduplicates candidates independently.
//
// The keyed entry points use H = the point type; FitIndex uses H = int.
// The core never inspects a point beyond identity: distance, radius and
// search strategy live entirely behind this contract (see package neighbors
// for ready-made constructors).
type Oracle[H any] func(H) []H

// Result is the immutable outcome of one fit:
//   - Clusters: density-connected clusters in discovery order; each cluster
//     lists its points in expansion order (membership is deterministic,
//     in-cluster order is not part of the contract).
//   - Noise: points belonging to no cluster at scan end. For FitIndex the
//     indices appear in ascending order; for the keyed variants the order
//     is unspecified.
//
// Every input point lands in exactly one of the two: some cluster, or Noise.
type Result[H any] struct {
	Clusters [][]H
	Noise    []H
}

// Option configures fit behavior via functional arguments.
type Option func(*Options)

// Options holds parameters to customize fit execution.
type Options struct {
	// Ctx allows cancellation and deadlines. It is consulted once per
	// top-level point and once per dequeued expansion candidate; a
	// cancelled fit returns ctx.Err() and no partial Result.
	Ctx context.Context
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background() (no cancellation).
func DefaultOptions() Options {
	return Options{
		Ctx: context.Background(),
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// Package neighbors provides distance functions and neighborhood-oracle
// constructors for the dbscan core.
package neighbors

import (
	"errors"
	"math"
)

// Sentinel errors for oracle construction.
var (
	// ErrBadRadius is returned for a negative, NaN or (where disallowed)
	// non-positive search radius.
	ErrBadRadius = errors.New("neighbors: invalid search radius")

	// ErrNilDistance is returned when a nil distance function is passed.
	ErrNilDistance = errors.New("neighbors: distance function is nil")

	// ErrNilOracle is returned when a nil oracle is passed to a wrapper.
	ErrNilOracle = errors.New("neighbors: oracle is nil")
)

// DistanceFunc measures dissimilarity between two points. It must be
// symmetric and satisfy dist(p, p) == 0, which is what makes every oracle
// built on it self-inclusive.
type DistanceFunc[P any] func(a, b P) float64

// Point2 is a point in the plane.
type Point2 struct {
	X, Y float64
}

// EuclideanDist2 returns the Euclidean distance between two Point2.
func EuclideanDist2(a, b Point2) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// SquaredDist2 returns the squared Euclidean distance between two Point2,
// skipping the square root. Compare against eps² when using it for range
// queries.
func SquaredDist2(a, b Point2) float64 {
	dx, dy := a.X-b.X, a.Y-b.Y
	return dx*dx + dy*dy
}

// Euclidean returns the Euclidean (L2) distance between two vectors.
// Assumes vectors are the same length (caller's responsibility).
func Euclidean(a, b []float64) float64 {
	return math.Sqrt(SquaredEuclidean(a, b))
}

// SquaredEuclidean returns the squared L2 distance between two vectors.
// Assumes vectors are the same length (caller's responsibility).
func SquaredEuclidean(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}

// Cosine returns the cosine distance (1 − cosine similarity) between two
// vectors. A zero-norm input yields distance 1, i.e. maximally dissimilar
// to everything except by coincidence of the other operand.
// Assumes vectors are the same length (caller's responsibility).
func Cosine(a, b []float64) float64 {
	var dot, na, nb float64
	for i := range a {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	denom := math.Sqrt(na) * math.Sqrt(nb)
	if denom == 0 {
		return 1
	}
	return 1 - dot/denom
}

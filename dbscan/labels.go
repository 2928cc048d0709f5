package dbscan

// label is the per-point classification state.
//
// Invariant: clustered is terminal — noise may be promoted to clustered
// (a border point first misjudged at top level), never the reverse.
type label uint8

const (
	unvisited label = iota // zero value: never classified
	noise
	clustered
)

// labelStore tracks per-point labels for one fit call. Two realizations:
// mapLabels for arbitrary item types and denseLabels for positional point
// sets. The expansion walker is written once against this interface.
type labelStore[H any] interface {
	get(H) label
	set(H, label)

	// newSeen returns a fresh per-expansion dedup set, independent of the
	// label state and scoped to a single cluster expansion.
	newSeen() seenSet[H]
}

// seenSet guards against enqueuing the same expansion candidate twice.
type seenSet[H any] interface {
	has(H) bool
	add(H)
}

// mapLabels keys labels by a caller-supplied identity function, so that two
// distinct values of P sharing a key are one logical point. Absent keys read
// as unvisited, which is what gives the map realization its third state for
// free.
type mapLabels[P any, K comparable] struct {
	key    func(P) K
	labels map[K]label
}

func newMapLabels[P any, K comparable](key func(P) K, sizeHint int) *mapLabels[P, K] {
	return &mapLabels[P, K]{
		key:    key,
		labels: make(map[K]label, sizeHint),
	}
}

func (s *mapLabels[P, K]) get(p P) label    { return s.labels[s.key(p)] }
func (s *mapLabels[P, K]) set(p P, l label) { s.labels[s.key(p)] = l }

func (s *mapLabels[P, K]) newSeen() seenSet[P] {
	return &mapSeen[P, K]{key: s.key, members: make(map[K]struct{})}
}

type mapSeen[P any, K comparable] struct {
	key     func(P) K
	members map[K]struct{}
}

func (s *mapSeen[P, K]) has(p P) bool {
	_, ok := s.members[s.key(p)]
	return ok
}

func (s *mapSeen[P, K]) add(p P) { s.members[s.key(p)] = struct{}{} }

// denseLabels indexes labels by position: O(1) access, no hashing, no
// boxing. Seen sets reuse one generation-stamped slice, so successive
// expansions cost a counter bump instead of an allocation.
type denseLabels struct {
	labels []label
	stamps []int
	gen    int
}

func newDenseLabels(n int) *denseLabels {
	return &denseLabels{
		labels: make([]label, n),
		stamps: make([]int, n),
	}
}

func (s *denseLabels) get(i int) label    { return s.labels[i] }
func (s *denseLabels) set(i int, l label) { s.labels[i] = l }

func (s *denseLabels) newSeen() seenSet[int] {
	s.gen++
	return (*denseSeen)(s)
}

// denseSeen views the store's stamp slice as the current expansion's set:
// an index is "seen" iff its stamp equals the current generation.
type denseSeen denseLabels

func (s *denseSeen) has(i int) bool { return s.stamps[i] == s.gen }
func (s *denseSeen) add(i int)      { s.stamps[i] = s.gen }

package dbscan

import "context"

// walker encapsulates mutable cluster-expansion state. One walker serves a
// whole fit call; each expansion gets a fresh seen set and a fresh cluster
// slice.
type walker[H any] struct {
	oracle Oracle[H]
	store  labelStore[H]
	minPts int
	ctx    context.Context

	queue   []H
	seen    seenSet[H]
	cluster []H
}

// expand grows the complete density-connected cluster from seed, which the
// trainer has already judged core and marked clustered. reachable is the
// seed's own neighborhood, so each point's oracle query happens exactly once
// across the whole fit.
//
// The traversal is breadth-first, but membership is a fixed point of the
// density-reachability relation: any queue discipline converges to the same
// final set. Only the order points are appended to the cluster depends on it.
func (w *walker[H]) expand(seed H, reachable []H) ([]H, error) {
	w.seen = w.store.newSeen()
	w.seen.add(seed)
	w.queue = w.queue[:0]
	w.cluster = []H{seed}

	for _, nbr := range reachable {
		if !w.seen.has(nbr) {
			w.enqueue(nbr)
		}
	}
	// loop reassigns w.cluster as it appends; read it only after the call.
	err := w.loop()

	return w.cluster, err
}

// loop processes the queue until empty or cancellation. Termination is
// guaranteed: every point enters the queue at most once per expansion.
func (w *walker[H]) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per candidate)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		w.visit(w.dequeue())
	}
	return nil
}

// dequeue pops the oldest candidate.
func (w *walker[H]) dequeue() H {
	cand := w.queue[0]
	w.queue = w.queue[1:]
	return cand
}

// enqueue marks a candidate seen and appends it to the queue. Marking on
// enqueue, not on visit, is what bounds the queue to distinct points rather
// than edges.
func (w *walker[H]) enqueue(h H) {
	w.seen.add(h)
	w.queue = append(w.queue, h)
}

// visit classifies one dequeued candidate:
//   - Never-classified candidates get their own range query; a core
//     candidate spills every unseen neighbor into the queue. A non-core
//     candidate is still absorbed, as a border point.
//   - Any candidate not already clustered is labeled clustered and appended
//     to the cluster. This silently upgrades points an earlier top-level
//     pass wrote off as noise.
func (w *walker[H]) visit(cand H) {
	if w.store.get(cand) == unvisited {
		reachable := w.oracle(cand)
		if len(reachable) >= w.minPts {
			for _, nbr := range reachable {
				if !w.seen.has(nbr) {
					w.enqueue(nbr)
				}
			}
		}
	}
	if w.store.get(cand) != clustered {
		w.store.set(cand, clustered)
		w.cluster = append(w.cluster, cand)
	}
}

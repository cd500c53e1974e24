package components

import "github.com/yohamta/donburi"

// ContactPair is an unordered pair of entities whose bodies started
// overlapping.
type ContactPair struct {
	A, B donburi.Entity
}

// Involves reports whether e is either side of the pair.
func (p ContactPair) Involves(e donburi.Entity) bool {
	return p.A == e || p.B == e
}

// Other returns the side that is not e.
func (p ContactPair) Other(e donburi.Entity) donburi.Entity {
	if p.A == e {
		return p.B
	}
	return p.A
}

// ContactQueueData is a singleton. Detectors append to Pending at any time;
// the drain stage moves Pending into Batch, which the resolvers read for the
// rest of the tick.
type ContactQueueData struct {
	Pending []ContactPair
	Batch   []ContactPair
}

func (q *ContactQueueData) Push(pairs ...ContactPair) {
	q.Pending = append(q.Pending, pairs...)
}

// Drain swaps Pending into Batch and returns the batch.
func (q *ContactQueueData) Drain() []ContactPair {
	q.Batch, q.Pending = q.Pending, q.Batch[:0]
	return q.Batch
}

var ContactQueue = donburi.NewComponentType[ContactQueueData]()

package sweep

// eventKind orders events that share an x coordinate.
type eventKind int

const (
	kindStart    eventKind = iota // rectangle or horizontal segment enters the active set
	kindVertical                  // vertical segment queries the active set
	kindEnd                       // rectangle or horizontal segment leaves the active set
)

// event is one stop of the sweep line.
type event struct {
	x      int
	kind   eventKind
	id     int
	lo, hi int // y-span of the shape
	seq    int // insertion order, breaks remaining ties deterministically
}

// eventPQ is a min-heap of *event ordered by x, then kind, then seq.
type eventPQ []*event

// Len returns the number of events in the heap.
func (pq eventPQ) Len() int { return len(pq) }

// Less orders by x, then kind, then insertion order.
func (pq eventPQ) Less(i, j int) bool {
	a, b := pq[i], pq[j]
	if a.x != b.x {
		return a.x < b.x
	}
	if a.kind != b.kind {
		return a.kind < b.kind
	}

	return a.seq < b.seq
}

// Swap swaps two events in the heap.
func (pq eventPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends x, which must be an *event. Called by heap.Push.
func (pq *eventPQ) Push(x any) { *pq = append(*pq, x.(*event)) }

// Pop removes and returns the last event. Called by heap.Pop.
func (pq *eventPQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}

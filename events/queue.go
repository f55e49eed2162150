package events

// Queue is a FIFO of events filled by callbacks and drained once per tick.
// It is not safe for concurrent use; producers and the consumer share a thread.
type Queue[T any] struct {
	items []T
}

func (q *Queue[T]) Push(e T) {
	q.items = append(q.items, e)
}

func (q *Queue[T]) Len() int { return len(q.items) }

// Drain hands every queued event to handle in arrival order and empties the
// queue. Events pushed by handle are delivered in the same call.
func (q *Queue[T]) Drain(handle func(T)) int {
	count := 0
	for len(q.items) > 0 {
		batch := q.items
		q.items = nil
		for _, e := range batch {
			handle(e)
			count++
		}
	}
	return count
}

package sortTree

// queue is the FIFO behind Bfs.
type queue[T any] struct {
	items []T
	head  int
}

func newQueue[T any](size int) *queue[T] {
	return &queue[T]{items: make([]T, 0, size)}
}

func (q *queue[T]) push(item T) {
	q.items = append(q.items, item)
}

func (q *queue[T]) pop() (T, bool) {
	var zero T
	if q.head == len(q.items) {
		return zero, false
	}
	item := q.items[q.head]
	q.items[q.head] = zero
	q.head++
	return item, true
}

func (q *queue[T]) len() int {
	return len(q.items) - q.head
}

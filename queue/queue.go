package queue

import (
	"iter"

	"github.com/npillmayer/lists"
	"github.com/npillmayer/lists/maybe"
)

// Queue is a FIFO container. The zero value is an empty queue ready to use.
type Queue[T any] struct {
	head    *node[T]
	tail    *node[T] // non-owning; nil iff head == nil
	count   uint
	release lists.Hook[T]
}

type node[T any] struct {
	value T
	next  *node[T]
}

// Option is a type to help initializing queues at creation time.
type Option[T any] func(*Queue[T])

// WithReleaseHook registers a hook to be called for every element whose node
// is released by Release.
func WithReleaseHook[T any](h lists.Hook[T]) Option[T] {
	return func(q *Queue[T]) {
		q.release = h
	}
}

// New creates an empty queue.
func New[T any](opts ...Option[T]) *Queue[T] {
	q := &Queue[T]{}
	for _, option := range opts {
		option(q)
	}
	return q
}

// --- API -------------------------------------------------------------------

// Len returns the number of queued elements in O(1).
func (q *Queue[T]) Len() uint {
	return q.count
}

// IsEmpty is true if the queue holds no elements.
func (q *Queue[T]) IsEmpty() bool {
	return q.head == nil
}

// Push appends value at the tail of the queue in O(1).
func (q *Queue[T]) Push(value T) {
	n := &node[T]{value: value}
	if q.tail != nil {
		q.tail.next = n
	} else {
		assertThat(q.head == nil, "queue without tail has a head")
		q.head = n
	}
	q.tail = n
	q.count++
}

// Pop removes the element at the head of the queue and returns it.
// Popping an empty queue returns Nothing and leaves the queue unchanged.
func (q *Queue[T]) Pop() maybe.Maybe[T] {
	if q.head == nil {
		assertThat(q.tail == nil, "empty queue has a tail")
		return maybe.Nothing[T]()
	}
	n := q.head
	q.head = n.next
	n.next = nil
	if q.head == nil {
		q.tail = nil
	}
	if q.count > 0 {
		q.count--
	}
	return maybe.Just(n.value)
}

// Peek returns the element at the head of the queue without removing it.
func (q *Queue[T]) Peek() maybe.Maybe[T] {
	if q.head == nil {
		return maybe.Nothing[T]()
	}
	return maybe.Just(q.head.value)
}

// All iterates over the elements, oldest first, without consuming them.
func (q *Queue[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := q.head; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Refs iterates over references to the elements, oldest first.
func (q *Queue[T]) Refs() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for n := q.head; n != nil; n = n.next {
			if !yield(&n.value) {
				return
			}
		}
	}
}

// Drain pops elements until the queue is empty, yielding each of them.
func (q *Queue[T]) Drain() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := q.Pop().Get()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// Release empties the queue, unlinking nodes one by one from head to tail.
// The release hook, if any, is called for every element.
func (q *Queue[T]) Release() {
	if q.head == nil {
		return
	}
	tracer().Debugf("releasing queue of %d elements", q.count)
	n := q.head
	q.head, q.tail = nil, nil
	for n != nil {
		next := n.next
		n.next = nil
		if q.release != nil {
			q.release(n.value)
		}
		n = next
	}
	q.count = 0
}

// length counts reachable nodes; it has to agree with count.
func (q *Queue[T]) length() uint {
	var l uint
	for n := q.head; n != nil; n = n.next {
		l++
	}
	return l
}

// tailIsLast checks the tail invariant.
func (q *Queue[T]) tailIsLast() bool {
	if q.head == nil {
		return q.tail == nil
	}
	n := q.head
	for n.next != nil {
		n = n.next
	}
	return n == q.tail
}

package deque

import (
	"iter"

	"github.com/npillmayer/lists"
	"github.com/npillmayer/lists/maybe"
)

// Deque is a double-ended queue. The zero value is an empty deque ready to use.
type Deque[T any] struct {
	head    *node[T]
	tail    *node[T] // back-reference
	count   uint
	release lists.Hook[T]
}

type node[T any] struct {
	value T
	next  *node[T]
	prev  *node[T] // back-reference
}

// Option is a type to help initializing deques at creation time.
type Option[T any] func(*Deque[T])

// WithReleaseHook registers a hook to be called for every element whose node
// is released by Release.
func WithReleaseHook[T any](h lists.Hook[T]) Option[T] {
	return func(d *Deque[T]) {
		d.release = h
	}
}

// New creates an empty deque.
func New[T any](opts ...Option[T]) *Deque[T] {
	d := &Deque[T]{}
	for _, option := range opts {
		option(d)
	}
	return d
}

// --- API -------------------------------------------------------------------

// Len returns the number of elements in O(1).
func (d *Deque[T]) Len() uint {
	return d.count
}

// IsEmpty is true if the deque holds no elements.
func (d *Deque[T]) IsEmpty() bool {
	return d.head == nil
}

// PushFront inserts value at the front.
func (d *Deque[T]) PushFront(value T) {
	n := &node[T]{value: value, next: d.head}
	if d.head != nil {
		d.head.prev = n
	} else {
		d.tail = n
	}
	d.head = n
	d.count++
}

// PushBack inserts value at the back.
func (d *Deque[T]) PushBack(value T) {
	n := &node[T]{value: value, prev: d.tail}
	if d.tail != nil {
		d.tail.next = n
	} else {
		d.head = n
	}
	d.tail = n
	d.count++
}

// PopFront removes the front element and returns it.
func (d *Deque[T]) PopFront() maybe.Maybe[T] {
	if d.head == nil {
		assertThat(d.tail == nil, "empty deque has a tail")
		return maybe.Nothing[T]()
	}
	n := d.head
	d.head = n.next
	if d.head != nil {
		d.head.prev = nil
	} else {
		d.tail = nil
	}
	n.next = nil
	d.dec()
	return maybe.Just(n.value)
}

// PopBack removes the back element and returns it.
func (d *Deque[T]) PopBack() maybe.Maybe[T] {
	if d.tail == nil {
		assertThat(d.head == nil, "deque without tail has a head")
		return maybe.Nothing[T]()
	}
	n := d.tail
	d.tail = n.prev
	if d.tail != nil {
		d.tail.next = nil
	} else {
		d.head = nil
	}
	n.prev = nil
	d.dec()
	return maybe.Just(n.value)
}

func (d *Deque[T]) dec() {
	if d.count > 0 {
		d.count--
	}
}

// PeekFront returns the front element without removing it.
func (d *Deque[T]) PeekFront() maybe.Maybe[T] {
	if d.head == nil {
		return maybe.Nothing[T]()
	}
	return maybe.Just(d.head.value)
}

// PeekBack returns the back element without removing it.
func (d *Deque[T]) PeekBack() maybe.Maybe[T] {
	if d.tail == nil {
		return maybe.Nothing[T]()
	}
	return maybe.Just(d.tail.value)
}

// All iterates over the elements front to back.
func (d *Deque[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := d.head; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Backward iterates over the elements back to front.
func (d *Deque[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := d.tail; n != nil; n = n.prev {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Refs iterates over references to the elements, front to back.
func (d *Deque[T]) Refs() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for n := d.head; n != nil; n = n.next {
			if !yield(&n.value) {
				return
			}
		}
	}
}

// Release empties the deque, unlinking nodes one by one from front to back.
// The release hook, if any, is called for every element.
func (d *Deque[T]) Release() {
	if d.head == nil {
		return
	}
	tracer().Debugf("releasing deque of %d elements", d.count)
	n := d.head
	d.head, d.tail = nil, nil
	for n != nil {
		next := n.next
		n.next, n.prev = nil, nil
		if d.release != nil {
			d.release(n.value)
		}
		n = next
	}
	d.count = 0
}

// linked checks that forward and backward links agree, and returns the number of nodes.
func (d *Deque[T]) linked() (uint, bool) {
	var l uint
	var prev *node[T]
	for n := d.head; n != nil; n = n.next {
		if n.prev != prev {
			return l, false
		}
		prev = n
		l++
	}
	return l, prev == d.tail
}

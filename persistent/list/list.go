package list

import (
	"iter"

	"github.com/npillmayer/lists"
	"github.com/npillmayer/lists/maybe"
)

// List is a persistent list. The zero value List[T]{} is an empty list.
//
// Use it like this:
//
//	l := list.List[string]{}.Append("world").Append("hello")
//	h := l.Head()         // Just("hello")
//	w := l.Tail().Head()  // Just("world")
//
type List[T any] struct {
	h *handle[T]
}

// handle owns one reference to head. All copies of a List value share their handle.
type handle[T any] struct {
	head     *node[T]
	count    uint
	released bool
	release  lists.Hook[T]
}

type node[T any] struct {
	value T
	next  *node[T]
	refs  int // handles and nodes referencing this node
}

// Option is a type to help initializing lists at creation time.
type Option[T any] func(*handle[T])

// WithReleaseHook registers a hook to be called for every element whose node is
// released. The hook is inherited by all lists derived from the list.
func WithReleaseHook[T any](h lists.Hook[T]) Option[T] {
	return func(hdl *handle[T]) {
		hdl.release = h
	}
}

// Empty creates an empty list, if you need options. Otherwise List[T]{} will do.
func Empty[T any](opts ...Option[T]) List[T] {
	h := &handle[T]{}
	for _, option := range opts {
		option(h)
	}
	return List[T]{h: h}
}

// derive creates a new handle sharing link as its head, taking a reference to it.
func (l List[T]) derive(link *node[T], count uint) List[T] {
	if link != nil {
		link.refs++
	}
	return List[T]{h: &handle[T]{head: link, count: count, release: l.hook()}}
}

func (l List[T]) first() *node[T] {
	if l.h == nil {
		return nil
	}
	return l.h.head
}

func (l List[T]) hook() lists.Hook[T] {
	if l.h == nil {
		return nil
	}
	return l.h.release
}

// --- API -------------------------------------------------------------------

// Len returns the number of elements in O(1).
func (l List[T]) Len() uint {
	if l.h == nil {
		return 0
	}
	return l.h.count
}

// IsEmpty is true for lists without elements, including released ones.
func (l List[T]) IsEmpty() bool {
	return l.first() == nil
}

// Append returns a new list with value in front of all the elements of l.
// l is left unchanged and shares all of its nodes with the new list.
func (l List[T]) Append(value T) List[T] {
	n := &node[T]{value: value, next: l.first(), refs: 1}
	if n.next != nil {
		n.next.refs++
	}
	return List[T]{h: &handle[T]{head: n, count: l.Len() + 1, release: l.hook()}}
}

// AppendAll is like a chain of calls to Append for each value, in order, but returns
// a single new list. Chained calls to Append leave intermediate lists, each holding a
// reference until released; AppendAll does not.
func (l List[T]) AppendAll(values ...T) List[T] {
	if len(values) == 0 {
		return l.Clone()
	}
	link := l.first()
	if link != nil {
		link.refs++
	}
	for _, v := range values {
		link = &node[T]{value: v, next: link, refs: 1}
	}
	link.refs-- // derive takes the handle's reference
	return l.derive(link, l.Len()+uint(len(values)))
}

// Tail returns a new list of all the elements of l but the first.
// The tail of an empty list is an empty list.
func (l List[T]) Tail() List[T] {
	head := l.first()
	if head == nil {
		return l.derive(nil, 0)
	}
	count := l.Len()
	if count > 0 {
		count--
	}
	return l.derive(head.next, count)
}

// Head returns the first element of l, if any.
func (l List[T]) Head() maybe.Maybe[T] {
	head := l.first()
	if head == nil {
		return maybe.Nothing[T]()
	}
	return maybe.Just(head.value)
}

// Clone returns an independent handle for the elements of l.
// The clone has to be released separately.
func (l List[T]) Clone() List[T] {
	return l.derive(l.first(), l.Len())
}

// All iterates over the elements of l, front to back.
func (l List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.first(); n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Release drops this handle's reference to its nodes. Nodes are unlinked front to
// back until reaching a node which is still referenced by another list.
// Releasing a list twice is a no-op. A released list behaves like an empty list.
func (l List[T]) Release() {
	if l.h == nil || l.h.released {
		return
	}
	h := l.h
	h.released = true
	n := h.head
	h.head, h.count = nil, 0
	var cnt int
	for n != nil {
		n.refs--
		assertThat(n.refs >= 0, "negative reference count for node %v", n.value)
		if n.refs > 0 {
			break // still in use by another list
		}
		next := n.next
		n.next = nil
		if h.release != nil {
			h.release(n.value)
		}
		cnt++
		n = next
	}
	tracer().Debugf("list released %d node(s)", cnt)
}

// --- Cells -----------------------------------------------------------------

// Cell is a read-only view of a node of a list. Cells are comparable; two cells are
// equal if they denote the same node, i.e. if the node is shared between lists.
type Cell[T any] struct {
	n *node[T]
}

// Value returns the element held by the node.
func (c Cell[T]) Value() T {
	return c.n.value
}

// Refs returns the current reference count of the node.
func (c Cell[T]) Refs() int {
	return c.n.refs
}

// Cells iterates over the nodes of l, front to back.
func (l List[T]) Cells() iter.Seq[Cell[T]] {
	return func(yield func(Cell[T]) bool) {
		for n := l.first(); n != nil; n = n.next {
			if !yield(Cell[T]{n: n}) {
				return
			}
		}
	}
}

// length counts reachable nodes; it has to agree with Len.
func (l List[T]) length() uint {
	var c uint
	for n := l.first(); n != nil; n = n.next {
		c++
	}
	return c
}

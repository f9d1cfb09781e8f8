package stack

import (
	"iter"

	"github.com/npillmayer/lists"
	"github.com/npillmayer/lists/maybe"
)

// Stack is a LIFO container. The zero value is an empty stack ready to use.
type Stack[T any] struct {
	head    *node[T]
	count   uint
	release lists.Hook[T]
}

type node[T any] struct {
	value T
	next  *node[T]
}

// Option is a type to help initializing stacks at creation time.
type Option[T any] func(*Stack[T])

// WithReleaseHook registers a hook to be called for every element whose node
// is released by Release.
func WithReleaseHook[T any](h lists.Hook[T]) Option[T] {
	return func(s *Stack[T]) {
		s.release = h
	}
}

// New creates an empty stack.
func New[T any](opts ...Option[T]) *Stack[T] {
	s := &Stack[T]{}
	for _, option := range opts {
		option(s)
	}
	return s
}

// --- API -------------------------------------------------------------------

// Len returns the number of elements on the stack in O(1).
func (s *Stack[T]) Len() uint {
	return s.count
}

// IsEmpty is true if the stack holds no elements.
func (s *Stack[T]) IsEmpty() bool {
	return s.head == nil
}

// Push puts value on top of the stack.
func (s *Stack[T]) Push(value T) {
	s.head = &node[T]{value: value, next: s.head}
	s.count++
}

// Pop removes the top element and returns it. Popping an empty stack
// returns Nothing and leaves the stack unchanged.
func (s *Stack[T]) Pop() maybe.Maybe[T] {
	if s.head == nil {
		assertThat(s.count == 0, "empty stack with count %d", s.count)
		return maybe.Nothing[T]()
	}
	n := s.head
	s.head = n.next
	n.next = nil
	if s.count > 0 {
		s.count--
	}
	return maybe.Just(n.value)
}

// Peek returns the top element without removing it.
func (s *Stack[T]) Peek() maybe.Maybe[T] {
	if s.head == nil {
		return maybe.Nothing[T]()
	}
	return maybe.Just(s.head.value)
}

// All iterates over the elements, top to bottom, without consuming them.
func (s *Stack[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := s.head; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Refs iterates over references to the elements, top to bottom.
// Clients may modify elements in place through the references.
func (s *Stack[T]) Refs() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for n := s.head; n != nil; n = n.next {
			if !yield(&n.value) {
				return
			}
		}
	}
}

// Drain pops elements until the stack is empty, yielding each of them.
// Stopping the iteration early leaves the remaining elements on the stack.
func (s *Stack[T]) Drain() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := s.Pop().Get()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// Release empties the stack, unlinking nodes one by one from head to tail.
// The release hook, if any, is called for every element.
func (s *Stack[T]) Release() {
	if s.head == nil {
		return
	}
	tracer().Debugf("releasing stack of %d elements", s.count)
	n := s.head
	s.head = nil
	for n != nil {
		next := n.next
		n.next = nil
		if s.release != nil {
			s.release(n.value)
		}
		n = next
	}
	s.count = 0
}

// length counts reachable nodes; it has to agree with count.
func (s *Stack[T]) length() uint {
	var l uint
	for n := s.head; n != nil; n = n.next {
		l++
	}
	return l
}

/*
Package lists is a collection of linked list containers, each exploring a different
ownership discipline for its nodes.

	stack            exclusive ownership, push/pop at the head
	queue            exclusive ownership plus a non-owning tail reference (O(1) append)
	deque            doubly linked, non-owning back-references
	persistent/list  shared ownership, structural sharing via reference counts

Containers never fail: operations on an empty container yield maybe.Nothing.
None of the containers is safe for concurrent use.

Every container can be torn down explicitly with Release, which walks the chain
iteratively and reports each released element to an optional release hook.
This package offers helpers to combine such hooks.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lists

// Hook is called once for every element whose node is released by a container.
type Hook[T any] func(T)

// Chain returns a hook calling all non-nil hooks in order.
// If no non-nil hook is given, Chain returns nil.
func Chain[T any](hooks ...Hook[T]) Hook[T] {
	var hs []Hook[T]
	for _, h := range hooks {
		if h != nil {
			hs = append(hs, h)
		}
	}
	switch len(hs) {
	case 0:
		return nil
	case 1:
		return hs[0]
	}
	return func(x T) {
		for _, h := range hs {
			h(x)
		}
	}
}

// Counting returns a hook which increments *n for every release.
func Counting[T any](n *int) Hook[T] {
	return func(T) {
		*n++
	}
}

// Compose returns a hook which maps released elements with g before handing them to h.
func Compose[A, B any](g func(A) B, h Hook[B]) Hook[A] {
	if h == nil {
		return nil
	}
	return func(a A) {
		h(g(a))
	}
}

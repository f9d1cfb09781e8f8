/*
Package listdbg renders the shared structure of persistent lists for debugging.

A set of lists derived from each other forms a tree: all lists end in the same
empty terminal, and nodes shared between lists are common ancestors of the lists'
heads. Forest prints this tree, marking each node with its reference count and
each list head with the list's name:

	∅
	└── 1 (refs=1)
	    └── 2 (refs=3)
	        ├── 10 (refs=1) ◀ a
	        └── 20 (refs=1) ◀ b

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package listdbg

import (
	"fmt"
	"strings"

	"github.com/npillmayer/lists/persistent/list"
	"github.com/npillmayer/schuko/tracing"
	tp "github.com/xlab/treeprint"
)

// tracer traces with key 'lists.dbg'.
func tracer() tracing.Trace {
	return tracing.Select("lists.dbg")
}

// Named associates a name with a list.
type Named[T any] struct {
	Name string
	List list.List[T]
}

// N is a shortcut for creating a Named.
func N[T any](name string, l list.List[T]) Named[T] {
	return Named[T]{Name: name, List: l}
}

type forest[T any] struct {
	children map[list.Cell[T]][]list.Cell[T]
	roots    []list.Cell[T] // last cells of lists
	heads    map[list.Cell[T]][]string
	seen     map[list.Cell[T]]bool
}

// pending is a cell waiting to be printed below its parent.
type pending[T any] struct {
	cell   list.Cell[T]
	parent tp.Tree
}

// Forest prints the node structure of a set of lists as a tree rooted at the
// empty terminal. Empty lists are listed at the root.
func Forest[T any](lists ...Named[T]) string {
	f := forest[T]{
		children: make(map[list.Cell[T]][]list.Cell[T]),
		heads:    make(map[list.Cell[T]][]string),
		seen:     make(map[list.Cell[T]]bool),
	}
	var empties []string
	for _, named := range lists {
		f.collect(named, &empties)
	}
	rootLabel := "∅"
	if len(empties) > 0 {
		rootLabel += " ◀ " + strings.Join(empties, ", ")
	}
	printer := tp.New()
	printer.SetValue(rootLabel)
	// iterative depth-first walk, lists may be long
	stack := make([]pending[T], 0, len(f.roots))
	for i := len(f.roots) - 1; i >= 0; i-- {
		stack = append(stack, pending[T]{cell: f.roots[i], parent: printer})
	}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		ch := f.children[it.cell]
		if len(ch) == 0 {
			it.parent.AddNode(f.label(it.cell))
			continue
		}
		branch := it.parent.AddBranch(f.label(it.cell))
		for i := len(ch) - 1; i >= 0; i-- {
			stack = append(stack, pending[T]{cell: ch[i], parent: branch})
		}
	}
	return printer.String()
}

// collect records the cells of a list, linking each cell to its predecessor.
// Walking stops as soon as it reaches a cell already known from another list.
func (f *forest[T]) collect(named Named[T], empties *[]string) {
	var prev list.Cell[T]
	first := true
	for c := range named.List.Cells() {
		if first {
			f.heads[c] = append(f.heads[c], named.Name)
		} else { // prev is new, otherwise we would have stopped there
			f.children[c] = append(f.children[c], prev)
		}
		if f.seen[c] {
			tracer().Debugf("list %q joins shared suffix at %v", named.Name, c.Value())
			return
		}
		f.seen[c] = true
		prev, first = c, false
	}
	if first {
		*empties = append(*empties, named.Name)
		return
	}
	f.roots = append(f.roots, prev)
}

func (f *forest[T]) label(c list.Cell[T]) string {
	l := fmt.Sprintf("%v (refs=%d)", c.Value(), c.Refs())
	if names := f.heads[c]; len(names) > 0 {
		l += " ◀ " + strings.Join(names, ", ")
	}
	return l
}

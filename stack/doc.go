/*
Package stack implements a LIFO stack as a singly-linked list of exclusively owned nodes.

Each node is owned by exactly one predecessor (or by the stack itself for the head).
There is no sharing and there are no cycles. Push and Pop are O(1).

Releasing a stack walks the chain iteratively from head to tail, unlinking every node
before moving on to its successor:

	s := stack.New[int](stack.WithReleaseHook(func(n int) { … }))
	s.Push(1)
	s.Push(2)
	s.Release()   // hook sees 2, then 1

Stacks are not safe for concurrent use.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package stack

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lists.stack'.
func tracer() tracing.Trace {
	return tracing.Select("lists.stack")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("lists.stack: "+msg, msgargs...)
		panic(msg)
	}
}

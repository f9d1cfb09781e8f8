/*
Package deque implements a double-ended queue as a doubly-linked list.

Successor links own the nodes, starting at the head. Predecessor links and the tail
reference are non-owning back-references, so a node and its neighbour never form an
ownership cycle. Releasing a deque unlinks both directions node by node.

Deques are not safe for concurrent use.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package deque

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lists.deque'.
func tracer() tracing.Trace {
	return tracing.Select("lists.deque")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("lists.deque: "+msg, msgargs...)
		panic(msg)
	}
}

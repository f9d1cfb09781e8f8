/*
Package queue implements a FIFO queue as a singly-linked list of exclusively owned nodes,
augmented with a non-owning reference to the last node.

Nodes are owned through the chain starting at the head, exactly as for package stack.
The tail reference is used for O(1) appends only and never takes part in ownership.
It is nil if and only if the queue is empty; every operation changing the last node
updates it before returning.

Queues are not safe for concurrent use.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package queue

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lists.queue'.
func tracer() tracing.Trace {
	return tracing.Select("lists.queue")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("lists.queue: "+msg, msgargs...)
		panic(msg)
	}
}

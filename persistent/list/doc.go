/*
Package list implements a persistent singly-linked list with structural sharing.

Append and Tail never modify a list; they return a new incarnation sharing all the
nodes of the original but one:

	base := list.Empty[int]().Append(1)   // (1)
	l2 := base.Append(2)                  // (2 1)
	l3 := base.Append(3)                  // (3 1), node (1) is shared with l2

Nodes carry a reference count. Each list handle holds one reference to its head node,
and each node holds one reference to its successor. Releasing a handle drops its
reference and unlinks nodes iteratively for as long as they are not referenced any more;
it stops at the first node another list still uses.

Every list returned by Append or Tail is a handle of its own, including the intermediate
lists of chained calls like l.Append(1).Append(2). Use AppendAll to extend a list by
several elements without leaving intermediate handles behind.

Copies of a List value refer to the same handle. Use Clone to obtain an independent
handle which has to be released separately.

Lists are not safe for concurrent use, as reference counts are not synchronized.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package list

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'persistent.list'.
func tracer() tracing.Trace {
	return tracing.Select("persistent.list")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("persistent.list: "+msg, msgargs...)
		panic(msg)
	}
}

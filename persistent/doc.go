/*
Package persistent is the home of persistent (immutable) containers of this module.

Persistent data structures can be "modified" efficiently, leaving the original unchanged.
Functional programming languages like Lisp have long relied on using them.
Persistent containers offer structural sharing, which means that if two of them are mostly
copies of each other, most of the memory they take up will be shared between them.
Deriving a new incarnation of a container is therefore cheap in terms of space- and
time-complexity.

See sub-package list for a persistent singly-linked list.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package persistent

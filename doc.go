/*
Package rbtree implements an intrusive red-black tree.

Intrusive means that the tree owns nothing: neither memory, nor keys, nor an
ordering relation. Clients embed a Node into their own records and keep full
control over allocation and lifetime. The package maintains linkage and
balance only; comparisons happen in client code, which walks the tree itself
and tells the library the exact slot where a new node belongs.

A tree is held by a Tree value whose zero value is the empty tree. A typical
insertion searches for the slot and links the node there:

	type entry struct {
		rbtree.Node
		key int
	}

	e := &entry{key: 7}
	cmp := func(n *rbtree.Node) int {
		// compare e.key against the record embedding n
	}

	parent, dir, existing := tree.FindSlot(cmp)
	if existing == nil {
		tree.Add(parent, dir, &e.Node)
	}

Removal is a method on the node itself; a node remembers enough of its
surroundings that no tree handle is needed:

	e.Node.Unlink()

Between any two mutations the usual red-black properties hold: the root is
black, no red node has a red child, and every path from a node down to a
missing child passes the same number of black nodes. This bounds the height,
and thereby every operation of this package, to O(log n). No operation
allocates, blocks, or performs I/O.

# Concurrency

The package performs no locking. At most one mutation may run against a tree
at a time; serializing writers is the caller's job. Readers holding no lock
may traverse concurrently with a writer: every single store into a link
field is published atomically, in an order that keeps the tree acyclic and
fully connected, so a lockless reader can never loop forever or follow a
dangling link. Such a reader may still observe a stale or in-between view of
the tree. Callers who need snapshot consistency must layer their own scheme
(generation counters, RCU, …) on top.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2021–22, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package rbtree

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// assert guards caller contracts. A failing assertion is a programming
// error in the embedding code, not a recoverable condition.
func assert(condition bool, msg string) {
	if !condition {
		T().Errorf("%s", msg)
		panic(msg)
	}
}

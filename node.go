// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package scq

import (
	"sync/atomic"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"
)

// node is the link cell of the queue chain.
//
// A node is exclusively owned by its producer until it is either linked into
// the chain or taken from an arena slot by a combining peer. After that,
// ownership belongs to the chain and ultimately to the consumer, which clears
// value on dequeue so the element can be collected while the node serves as
// the next sentinel.
//
// next transitions once from nil to a successor (producers never rewrite a
// non-nil link); only the consumer relinks it, during removal.
type node[T comparable] struct {
	value T
	next  atomic.Pointer[node[T]]

	// done is used by linearizable queues only: set once the node is known
	// to be spliced into the visible chain. Optimistic queues leave it
	// untouched.
	done atomix.Bool
}

// complete signals that the node has been spliced into the visible chain.
// The producer that wins the tail CAS calls this on every node of the
// appended chain, releasing producers that handed their chains off through
// the arena.
func (n *node[T]) complete() {
	n.done.StoreRelease(true)
}

// await busy-waits until a combining peer splices the node and signals
// completion. Bounded by that peer's append finishing.
func (n *node[T]) await() {
	sw := spin.Wait{}
	for !n.done.LoadAcquire() {
		sw.Once()
	}
}

// findLast returns the last node of the chain starting at n.
func findLast[T comparable](n *node[T]) *node[T] {
	for {
		next := n.next.Load()
		if next == nil {
			return n
		}
		n = next
	}
}

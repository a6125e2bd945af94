// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package scq

// Enqueue inserts the element at the tail of the queue (multiple producers
// safe). The pointed-to value is copied in, so the original can be modified
// after Enqueue returns. A nil elem is rejected with ErrNilElement and
// leaves the queue untouched.
//
// For linearizable queues a successful return happens-before the element
// becoming visible to a subsequent Dequeue. For optimistic queues the
// element may not be visible yet when Enqueue returns: if the chain was
// handed to a combining peer, that peer is committed to splicing it, and a
// Dequeue issued immediately afterwards may legally observe empty.
func (q *Queue[T]) Enqueue(elem *T) error {
	if elem == nil {
		return ErrNilElement
	}
	n := &node[T]{value: *elem}
	q.append(n, n)
	return nil
}

// EnqueueAll inserts the elements as a single pre-linked chain, so they
// appear as one contiguous FIFO run regardless of concurrent producers. It
// reports whether the queue was modified; an empty (or nil) input leaves
// the queue untouched.
func (q *Queue[T]) EnqueueAll(elems []T) bool {
	var first, last *node[T]
	for _, e := range elems {
		n := &node[T]{value: e}
		if first == nil {
			first = n
		} else {
			last.next.Store(n)
		}
		last = n
	}
	if first == nil {
		return false
	}
	q.append(first, last)
	return true
}

// append links the non-empty chain first..last at the tail of the queue.
//
// Each iteration either wins the tail CAS, hands the chain to a combining
// peer (this producer is done), or absorbs peer chains — growing the local
// chain and shrinking global contention — before retrying.
func (q *Queue[T]) append(first, last *node[T]) {
	for {
		t := q.tail.Load()
		if q.tail.CompareAndSwap(t, last) {
			// Only the CAS winner may link behind t, so a plain ordered
			// store suffices here.
			t.next.Store(first)
			if q.linearizable {
				for {
					first.complete()
					if first == last {
						return
					}
					first = first.next.Load()
				}
			}
			return
		}
		switch n := q.transferOrCombine(first, last); {
		case n == nil:
			// Deposited into the arena and taken by a peer; in
			// linearizable mode, wait for the peer's splice. Once the
			// first node is signalled the whole chain is linked.
			if q.linearizable {
				first.await()
			}
			return
		case n != first:
			// Absorbed one or more peer chains; n is the new last.
			last = n
		}
	}
}

// transferOrCombine attempts to hand the chain first..last to another
// producer through this producer's arena slot, or to absorb chains that
// other producers deposited.
//
// Returns nil if the chain was taken by a peer, first if neither a transfer
// nor an absorption succeeded, or the last node of the combined chain after
// absorbing.
func (q *Queue[T]) transferOrCombine(first, last *node[T]) *node[T] {
	index := arenaIndex()
	slot := &q.arena[index]

	for {
		found := slot.ref.Load()
		if found == nil {
			if !slot.ref.CompareAndSwap(nil, first) {
				continue
			}
			for spin := 0; spin < spins; spin++ {
				if slot.ref.Load() != first {
					return nil
				}
			}
			if slot.ref.CompareAndSwap(first, nil) {
				return first
			}
			// A peer took the chain between the last poll and the
			// reclaim attempt.
			return nil
		}
		if slot.ref.CompareAndSwap(found, nil) {
			last.next.Store(found)
			last = findLast(found)
			// One greedy pass over the remaining slots caps the latency
			// of an absorption.
			for i := 1; i < arenaLength; i++ {
				s := &q.arena[(index+i)&arenaMask]
				found = s.ref.Load()
				if found != nil && s.ref.CompareAndSwap(found, nil) {
					last.next.Store(found)
					last = findLast(found)
				}
			}
			return last
		}
	}
}

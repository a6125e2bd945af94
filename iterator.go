// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package scq

import "iter"

// Iterator is a weakly consistent traversal of the queue: it observes the
// chain as of its creation (bounded by a tail snapshot), never reports
// concurrent modification, and returns each element contained since its
// creation at most once. Elements appended after creation may or may not be
// observed.
//
// Like the removal operations, Iterator.Remove is consumer side only.
type Iterator[T comparable] struct {
	q         *Queue[T]
	t         *node[T] // tail snapshot bounding the traversal
	prev      *node[T]
	cursor    *node[T]
	canRemove bool
}

// Iter returns a weakly consistent iterator positioned before the first
// element.
func (q *Queue[T]) Iter() *Iterator[T] {
	return &Iterator[T]{
		q:      q,
		t:      q.tail.Load(),
		cursor: q.head.Load(),
	}
}

// Next advances to the next element, reporting false when the traversal is
// exhausted.
func (it *Iterator[T]) Next() bool {
	if it.cursor == nil || it.cursor == it.t {
		return false
	}
	next := it.cursor.next.Load()
	if next == nil {
		// An in-flight append has swung the tail but not yet linked its
		// chain; the rest of the snapshot is momentarily unreachable.
		return false
	}
	// prev trails the last returned element: it stays put when that element
	// was removed, so prev.next always reaches the cursor or its successor
	// and never walks past a freshly excised node.
	if it.prev == nil || it.canRemove {
		it.prev = it.cursor
	}
	it.cursor = next
	it.canRemove = true
	return true
}

// Value returns the element last advanced to by Next.
func (it *Iterator[T]) Value() T {
	return it.cursor.value
}

// Remove excises the element last returned by Next. It fails with
// ErrIllegalState before the first Next or when called twice for the same
// element.
func (it *Iterator[T]) Remove() error {
	if !it.canRemove {
		return ErrIllegalState
	}
	q, t, cursor := it.q, it.t, it.cursor
	if t == cursor && !q.tail.CompareAndSwap(t, it.prev) && cursor.next.Load() == nil {
		it.prev.next.Store(t.next.Load())
	} else {
		it.prev.next.Store(cursor.next.Load())
	}
	it.canRemove = false
	return nil
}

// All returns a weakly consistent range-over-func view of the queue.
//
// Example:
//
//	for e := range q.All() {
//	    process(e)
//	}
func (q *Queue[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for it := q.Iter(); it.Next(); {
			if !yield(it.Value()) {
				return
			}
		}
	}
}

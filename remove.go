// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package scq

import "slices"

// Remove excises the first element equal to elem, preserving the order of
// the rest. Consumer side only. Reports whether an element was removed.
func (q *Queue[T]) Remove(elem T) bool {
	t := q.tail.Load()
	prev := q.head.Load()
	cursor := prev.next.Load()
	for cursor != nil {
		next := cursor.next.Load()
		if cursor.value == elem {
			q.unlink(prev, cursor, next, t)
			return true
		}
		prev = cursor
		cursor = next
	}
	return false
}

// RemoveAll excises every element present in elems. Consumer side only.
// Reports whether the queue was modified.
func (q *Queue[T]) RemoveAll(elems []T) bool {
	return q.removeByPresence(elems, false)
}

// RetainAll excises every element not present in elems. Consumer side only.
// Reports whether the queue was modified.
func (q *Queue[T]) RetainAll(elems []T) bool {
	return q.removeByPresence(elems, true)
}

func (q *Queue[T]) removeByPresence(elems []T, retain bool) bool {
	t := q.tail.Load()
	prev := q.head.Load()
	cursor := prev.next.Load()
	modified := false
	for cursor != nil {
		present := slices.Contains(elems, cursor.value)
		next := cursor.next.Load()
		if present != retain {
			q.unlink(prev, cursor, next, t)
			modified = true
		} else {
			prev = cursor
		}
		cursor = prev.next.Load()
	}
	return modified
}

// unlink excises cursor from the chain between prev and next, where t is the
// tail observed at the start of the walk.
//
// When cursor is that tail, the tail must retreat to prev. If the CAS fails
// a producer has just swung the tail and linked (or is about to link) a new
// chain behind cursor; when cursor's link still read nil, re-read it so the
// freshly appended suffix stays attached.
func (q *Queue[T]) unlink(prev, cursor, next, t *node[T]) {
	if t == cursor && !q.tail.CompareAndSwap(t, prev) && next == nil {
		next = t.next.Load()
	}
	prev.next.Store(next)
}

// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package scq

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Mode identifies a queue's completion-tracking strategy.
type Mode uint8

const (
	// Optimistic queues let a producer return as soon as another producer
	// has taken ownership of splicing its elements.
	Optimistic Mode = iota
	// Linearizable queues make a producer wait until its elements are
	// visible to a subsequent Dequeue.
	Linearizable
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case Optimistic:
		return "optimistic"
	case Linearizable:
		return "linearizable"
	default:
		return fmt.Sprintf("mode(%d)", uint8(m))
	}
}

// Queue is a lock-free unbounded multi-producer single-consumer FIFO queue.
//
// Many producer goroutines may Enqueue concurrently; exactly one consumer
// goroutine drains. Producers back off contention on the tail by combining:
// colliding producers rendezvous in an arena of single-slot cells, and one
// of them splices the combined chain. Whether the other waits for the splice
// is the queue's mode (see NewOptimistic and NewLinearizable).
//
// It is the caller's responsibility to ensure a single consumer; no
// fail-fast guard is performed. The zero Queue is not ready for use —
// construct with NewOptimistic, NewLinearizable, or Build.
//
// head and tail sit in independently padded regions: producers CAS the tail
// at high frequency while the consumer writes the head, and sharing a cache
// line between them would serialize both sides on coherency traffic.
type Queue[T comparable] struct {
	_    pad
	head atomic.Pointer[node[T]]
	_    pad
	tail atomic.Pointer[node[T]]
	_    pad

	arena        []arenaSlot[T]
	linearizable bool
}

// NewOptimistic creates a queue with an optimistic backoff strategy: a
// producer completes its operation without waiting after it successfully
// hands its element(s) off to another producer for batch insertion.
func NewOptimistic[T comparable]() *Queue[T] {
	return newQueue[T](false)
}

// NewLinearizable creates a queue with a linearizable backoff strategy: a
// producer that hands its element(s) off to another producer waits for a
// completion signal before returning, so a successful insert
// happens-before the element becoming visible to the consumer.
func NewLinearizable[T comparable]() *Queue[T] {
	return newQueue[T](true)
}

func newQueue[T comparable](linearizable bool) *Queue[T] {
	q := &Queue[T]{
		arena:        newArena[T](),
		linearizable: linearizable,
	}
	q.reset()
	return q
}

// reset installs a fresh sentinel. The first element is always head.next;
// head == tail means empty.
func (q *Queue[T]) reset() {
	sentinel := &node[T]{}
	q.head.Store(sentinel)
	q.tail.Store(sentinel)
}

// Mode reports the queue's completion-tracking strategy.
func (q *Queue[T]) Mode() Mode {
	if q.linearizable {
		return Linearizable
	}
	return Optimistic
}

// IsEmpty reports whether the queue has no elements visible to the consumer.
func (q *Queue[T]) IsEmpty() bool {
	return q.head.Load() == q.tail.Load()
}

// Len counts the visible elements by traversing the chain.
//
// Unlike most collections this is NOT a constant-time operation; the count
// may lag concurrent producers and is exact only at quiescence.
func (q *Queue[T]) Len() int {
	n := 0
	for cursor := q.head.Load().next.Load(); cursor != nil; cursor = cursor.next.Load() {
		n++
	}
	return n
}

// Peek returns the element at the head of the queue without removing it.
// Returns (zero-value, ErrWouldBlock) if the queue is empty.
func (q *Queue[T]) Peek() (T, error) {
	next := q.head.Load().next.Load()
	if next == nil {
		var zero T
		return zero, ErrWouldBlock
	}
	return next.value, nil
}

// Dequeue removes and returns the element at the head of the queue (single
// consumer only). Returns (zero-value, ErrWouldBlock) if the queue is empty.
//
// A nil head.next is reported as empty even while head != tail: an appender
// that has swung the tail but not yet linked its chain leaves the queue
// momentarily disconnected, and the consumer simply retries later.
func (q *Queue[T]) Dequeue() (T, error) {
	next := q.head.Load().next.Load()
	if next == nil {
		var zero T
		return zero, ErrWouldBlock
	}
	q.head.Store(next)
	elem := next.value
	var zero T
	next.value = zero // consumed node becomes the new sentinel
	return elem, nil
}

// Drain dequeues until the queue observes empty, passing each element to fn
// in FIFO order, and returns the number of elements consumed. Single
// consumer only.
func (q *Queue[T]) Drain(fn func(T)) int {
	n := 0
	for {
		elem, err := q.Dequeue()
		if err != nil {
			return n
		}
		fn(elem)
		n++
	}
}

// Clear detaches all visible elements by storing head = tail.
//
// Clear does not quiesce in-flight producers: an appender holding a
// pre-clear tail reference completes normally, and its elements become the
// new content.
func (q *Queue[T]) Clear() {
	q.head.Store(q.tail.Load())
}

// Contains reports whether the queue holds an element equal to elem.
// The traversal is weakly consistent with concurrent producers.
func (q *Queue[T]) Contains(elem T) bool {
	for cursor := q.head.Load().next.Load(); cursor != nil; cursor = cursor.next.Load() {
		if cursor.value == elem {
			return true
		}
	}
	return false
}

// ContainsAll reports whether the queue holds every element of elems.
func (q *Queue[T]) ContainsAll(elems []T) bool {
	for _, e := range elems {
		if !q.Contains(e) {
			return false
		}
	}
	return true
}

// ToSlice returns the visible elements in FIFO order. Consumer side only:
// values observed during the walk must not be cleared concurrently.
func (q *Queue[T]) ToSlice() []T {
	var elems []T
	for cursor := q.head.Load().next.Load(); cursor != nil; cursor = cursor.next.Load() {
		elems = append(elems, cursor.value)
	}
	return elems
}

// String renders the visible elements as "[a, b, c]".
func (q *Queue[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, e := range q.ToSlice() {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%v", e)
	}
	b.WriteByte(']')
	return b.String()
}

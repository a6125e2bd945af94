// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package scq provides an unbounded lock-free multi-producer single-consumer
// FIFO queue with a producer-side elimination-combining backoff.
//
// The queue is an appropriate choice when many producer goroutines share a
// collection that a single consumer goroutine drains — staging buffers for
// flat combining, actor mailboxes, and write-log amortization in caches and
// schedulers. It is the unbounded, linked-node companion to the bounded
// array queues in [code.hybscloud.com/lfq].
//
// # Quick Start
//
//	q := scq.NewOptimistic[Event]()
//
//	// Producers (any number of goroutines)
//	ev := Event{...}
//	q.Enqueue(&ev)
//
//	// Consumer (exactly one goroutine)
//	for {
//	    ev, err := q.Dequeue()
//	    if err != nil {
//	        // Queue is empty - back off or yield
//	        continue
//	    }
//	    process(ev)
//	}
//
// The builder form mirrors the lfq configuration surface:
//
//	q := scq.Build[Event](scq.New().Linearizable())
//
// # Combining
//
// Contended producers do not spin on the tail. A producer that loses the
// tail CAS visits an arena of single-slot rendezvous cells: it either
// deposits its pending chain for another producer to splice, or absorbs
// chains other producers deposited and retries with the combined batch.
// Colliding operations with identical semantics thus complete as one tail
// swing, trading coordination on the hot field for handshakes spread across
// padded slots.
//
// # Modes
//
// Whether a producer waits for a handed-off chain decides the queue's mode:
//
//   - Optimistic (NewOptimistic): a producer returns as soon as a peer has
//     taken ownership of its chain. The insert is guaranteed to become
//     visible, but a Dequeue issued immediately afterwards may still
//     observe empty.
//   - Linearizable (NewLinearizable): a producer busy-waits for the peer's
//     splice-completion signal, so a successful insert happens-before the
//     element becoming visible to any subsequent Dequeue.
//
// # Mailbox Pattern (MPSC)
//
//	mbox := scq.NewLinearizable[Message]()
//
//	// Multiple senders
//	go func() {
//	    m := Message{...}
//	    mbox.Enqueue(&m)
//	}()
//
//	// Single actor loop
//	go func() {
//	    backoff := iox.Backoff{}
//	    for {
//	        if n := mbox.Drain(handle); n == 0 {
//	            backoff.Wait()
//	        } else {
//	            backoff.Reset()
//	        }
//	    }
//	}()
//
// # Thread Safety
//
// Enqueue and EnqueueAll are safe for any number of goroutines. Dequeue,
// Peek, Drain, Clear, the removal operations, and Iterator.Remove must be
// confined to a single consumer goroutine; no fail-fast guard is performed.
//
// # Length
//
// Len is not a constant-time operation: it traverses the chain, and the
// count may lag concurrent producers. This differs from most collections by
// design — an accurate count in a lock-free queue would require cross-core
// synchronization on every operation.
//
// # Error Handling
//
// Dequeue and Peek return [ErrWouldBlock] when the queue is empty. The
// error is sourced from [code.hybscloud.com/iox] for ecosystem consistency,
// and the iox predicates are re-exported:
//
//	scq.IsWouldBlock(err)  // true if queue empty
//	scq.IsSemantic(err)    // true if control flow signal
//	scq.IsNonFailure(err)  // true if nil or ErrWouldBlock
//
// # Persistence
//
// A queue serializes (via encoding/json interfaces) as a proxy carrying the
// mode flag and the in-order visible elements. Decoding rebuilds a fresh
// queue in the stated mode; the internal structure is never encoded, and
// input other than the proxy form is refused.
//
// # Race Detection
//
// The chain itself is published through sync/atomic pointer operations the
// race detector understands. The linearizable completion flag, however, is
// an [code.hybscloud.com/atomix] boolean whose acquire-release pairing the
// detector cannot observe, so stress tests of linearizable handoff are
// skipped under the race detector (see RaceEnabled).
//
// # Dependencies
//
// This package uses [code.hybscloud.com/iox] for semantic errors,
// [code.hybscloud.com/atomix] for atomic primitives with explicit memory
// ordering, [code.hybscloud.com/spin] for CPU pause instructions,
// [github.com/valyala/fastrand] for seeding arena probes, and
// [github.com/sugawarayuuta/sonnet] for the persisted proxy codec.
package scq

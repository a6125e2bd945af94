// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package scq

import "unsafe"

// Options configures queue creation.
type Options struct {
	// Completion-tracking strategy (determines whether producers wait for
	// handed-off chains to become visible)
	linearizable bool
}

// Builder creates queues with fluent configuration.
//
// Example:
//
//	// Optimistic queue (the default)
//	q := scq.Build[Event](scq.New())
//
//	// Linearizable queue
//	q := scq.Build[Request](scq.New().Linearizable())
type Builder struct {
	opts Options
}

// New creates a queue builder. The default strategy is optimistic.
func New() *Builder {
	return &Builder{}
}

// Linearizable selects the linearizable backoff strategy: a producer that
// hands its chain to a combining peer waits for the splice-completion
// signal before returning.
func (b *Builder) Linearizable() *Builder {
	b.opts.linearizable = true
	return b
}

// Optimistic selects the optimistic backoff strategy (the default): a
// producer returns immediately after a successful handoff.
func (b *Builder) Optimistic() *Builder {
	b.opts.linearizable = false
	return b
}

// Build creates a Queue with the configured strategy.
func Build[T comparable](b *Builder) *Queue[T] {
	return newQueue[T](b.opts.linearizable)
}

// roundToPow2 rounds n up to the next power of 2.
func roundToPow2(n int) int {
	if n < 1 {
		return 1
	}
	n--
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n |= n >> 32
	return n + 1
}

// ptrSize is the size of a pointer in bytes.
const ptrSize = int(unsafe.Sizeof(uintptr(0)))

// pad is cache line padding to prevent false sharing.
type pad [64]byte

// padPtr is padding to fill cache line after pointer-sized field.
type padPtr [64 - ptrSize]byte

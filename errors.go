// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package scq

import (
	"errors"

	"code.hybscloud.com/iox"
)

// ErrWouldBlock indicates the operation cannot proceed immediately.
//
// For Dequeue and Peek: the queue is empty (no element visible yet).
//
// ErrWouldBlock is a control flow signal, not a failure. The consumer should
// retry later (with backoff or yield) rather than propagating the error. In
// optimistic mode it may also be observed momentarily after a successful
// Enqueue whose chain was handed to a combining peer.
//
// This is an alias for [iox.ErrWouldBlock] for ecosystem consistency.
var ErrWouldBlock = iox.ErrWouldBlock

// ErrNilElement is returned by Enqueue for a nil element pointer. The queue
// does not permit null elements; internal state is left untouched.
var ErrNilElement = errors.New("scq: nil element")

// ErrIllegalState is returned by Iterator.Remove when no element is
// removable: before the first Next, or twice for the same element.
var ErrIllegalState = errors.New("scq: remove without next")

// ErrInvalidEncoding is returned when decoding a queue from anything other
// than its persisted proxy form.
var ErrInvalidEncoding = errors.New("scq: proxy form required")

// IsWouldBlock reports whether err indicates the operation would block.
// Delegates to [iox.IsWouldBlock] for wrapped error support.
func IsWouldBlock(err error) bool {
	return iox.IsWouldBlock(err)
}

// IsSemantic reports whether err is a control flow signal (not a failure).
// Delegates to [iox.IsSemantic].
func IsSemantic(err error) bool {
	return iox.IsSemantic(err)
}

// IsNonFailure reports whether err represents a non-failure condition.
// Delegates to [iox.IsNonFailure].
func IsNonFailure(err error) bool {
	return iox.IsNonFailure(err)
}

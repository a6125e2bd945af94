// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package scq

import (
	"fmt"

	"github.com/sugawarayuuta/sonnet"
)

// queueProxy is the persisted form of a queue: the mode flag and the
// in-order list of visible elements. The live structure (nodes, arena) is
// never encoded, and decoding accepts only this form.
type queueProxy[T comparable] struct {
	Linearizable bool `json:"linearizable"`
	Elements     []T  `json:"elements"`
}

// MarshalJSON encodes the queue as its proxy form. Consumer side only: it
// traverses the chain.
func (q *Queue[T]) MarshalJSON() ([]byte, error) {
	return sonnet.Marshal(queueProxy[T]{
		Linearizable: q.linearizable,
		Elements:     q.ToSlice(),
	})
}

// UnmarshalJSON rehydrates the queue from its proxy form: a fresh queue in
// the stated mode with the elements reinserted in order. Input that does not
// decode as the proxy is refused with ErrInvalidEncoding.
//
// The receiver is reinitialized in place and must not be in concurrent use.
func (q *Queue[T]) UnmarshalJSON(data []byte) error {
	var proxy queueProxy[T]
	if err := sonnet.Unmarshal(data, &proxy); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidEncoding, err)
	}
	q.linearizable = proxy.Linearizable
	q.arena = newArena[T]()
	q.reset()
	q.EnqueueAll(proxy.Elements)
	return nil
}

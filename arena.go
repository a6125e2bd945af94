// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package scq

import (
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/valyala/fastrand"
)

// Arena sizing follows the processor count: ⌈(NCPU+1)/2⌉ rendezvous slots,
// about one per pair of processors, rounded up to a power of two for mask
// indexing.
var (
	arenaLength = roundToPow2(runtime.NumCPU()/2 + 1)
	arenaMask   = arenaLength - 1
	spins       = arenaSpins(runtime.NumCPU())
)

// arenaSpins returns the number of times to poll an arena slot before giving
// up on elimination. Zero on uniprocessors, where the peer cannot run
// concurrently. On multiprocessors the budget is a little over half the
// cycles of an average context switch, so a depositing producer blocks only
// about as long as a stalled peer would cost anyway.
func arenaSpins(ncpu int) int {
	if ncpu == 1 {
		return 0
	}
	return 2000
}

// arenaSlot is a single-slot rendezvous cell: empty (nil) when no offer is
// pending, or occupied by the first node of a chain a producer handed over
// for combining. Transitions are by compare-and-set only.
//
// Slots are padded so producers colliding on neighboring slots do not share
// a cache line.
type arenaSlot[T comparable] struct {
	ref atomic.Pointer[node[T]]
	_   padPtr
}

func newArena[T comparable]() []arenaSlot[T] {
	return make([]arenaSlot[T], arenaLength)
}

// probePool recycles per-producer probes. A producer draws a probe only to
// pick its slot and puts it back at once; pool locality tends to hand the same probe
// back to the same P, so a producer revisits the same slot and re-collides
// with the same peers, amortizing the cost of a missed rendezvous.
var probePool = sync.Pool{
	New: func() any {
		p := new(uint32)
		for *p == 0 {
			*p = fastrand.Uint32()
		}
		return p
	},
}

// arenaIndex returns the arena slot index for the current producer.
func arenaIndex() int {
	p := probePool.Get().(*uint32)
	index := int(*p) & arenaMask
	probePool.Put(p)
	return index
}

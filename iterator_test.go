// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package scq_test

import (
	"errors"
	"testing"

	"code.hybscloud.com/scq"
)

func TestIteratorBasic(t *testing.T) {
	q := scq.NewOptimistic[string]()
	q.EnqueueAll([]string{"a", "b", "c"})

	var got []string
	for it := q.Iter(); it.Next(); {
		got = append(got, it.Value())
	}
	wantSlice(t, got, []string{"a", "b", "c"})

	// Traversal does not consume
	if q.Len() != 3 {
		t.Fatalf("Len after iteration: got %d, want 3", q.Len())
	}
}

func TestIteratorEmpty(t *testing.T) {
	q := scq.NewLinearizable[int]()
	if it := q.Iter(); it.Next() {
		t.Fatal("Next on empty queue: got true, want false")
	}
}

// TestIteratorSnapshot verifies weak consistency: each element present at
// the iterator's creation is returned exactly once, and an element appended
// after creation is returned at most once.
func TestIteratorSnapshot(t *testing.T) {
	q := scq.NewOptimistic[string]()
	q.EnqueueAll([]string{"a", "b", "c"})

	it := q.Iter()
	d := "d"
	if err := q.Enqueue(&d); err != nil {
		t.Fatalf("Enqueue: %v", err)
	}

	seen := make(map[string]int)
	for it.Next() {
		seen[it.Value()]++
	}
	for _, e := range []string{"a", "b", "c"} {
		if seen[e] != 1 {
			t.Fatalf("element %q seen %d times, want 1", e, seen[e])
		}
	}
	if seen["d"] > 1 {
		t.Fatalf(`element "d" seen %d times, want at most 1`, seen["d"])
	}
}

func TestIteratorRemoveBeforeNext(t *testing.T) {
	q := scq.NewOptimistic[int]()
	q.EnqueueAll([]int{1, 2})

	it := q.Iter()
	if err := it.Remove(); !errors.Is(err, scq.ErrIllegalState) {
		t.Fatalf("Remove before Next: got %v, want ErrIllegalState", err)
	}
}

func TestIteratorRemoveTwice(t *testing.T) {
	q := scq.NewOptimistic[int]()
	q.EnqueueAll([]int{1, 2})

	it := q.Iter()
	if !it.Next() {
		t.Fatal("Next: got false, want true")
	}
	if err := it.Remove(); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if err := it.Remove(); !errors.Is(err, scq.ErrIllegalState) {
		t.Fatalf("second Remove: got %v, want ErrIllegalState", err)
	}
}

func TestIteratorRemoveMiddle(t *testing.T) {
	q := scq.NewOptimistic[int]()
	q.EnqueueAll([]int{1, 2, 3})

	for it := q.Iter(); it.Next(); {
		if it.Value() == 2 {
			if err := it.Remove(); err != nil {
				t.Fatalf("Remove: %v", err)
			}
		}
	}
	wantSlice(t, drainAll(q), []int{1, 3})
}

func TestIteratorRemoveFirst(t *testing.T) {
	q := scq.NewLinearizable[int]()
	q.EnqueueAll([]int{1, 2, 3})

	it := q.Iter()
	it.Next()
	if err := it.Remove(); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	wantSlice(t, drainAll(q), []int{2, 3})
}

func TestIteratorRemoveLast(t *testing.T) {
	q := scq.NewOptimistic[int]()
	q.EnqueueAll([]int{1, 2, 3})

	var err error
	for it := q.Iter(); it.Next(); {
		if it.Value() == 3 {
			err = it.Remove()
		}
	}
	if err != nil {
		t.Fatalf("Remove: %v", err)
	}
	wantSlice(t, drainAll(q), []int{1, 2})

	// The tail retreated; the queue still accepts inserts
	v := 4
	if err := q.Enqueue(&v); err != nil {
		t.Fatalf("Enqueue: %v", err)
	}
	wantSlice(t, drainAll(q), []int{4})
}

// TestIteratorRemoveAdjacent removes two neighboring elements through the
// iterator; prev must not advance past the freshly excised node in between.
func TestIteratorRemoveAdjacent(t *testing.T) {
	q := scq.NewOptimistic[int]()
	q.EnqueueAll([]int{1, 2, 3, 4})

	for it := q.Iter(); it.Next(); {
		if v := it.Value(); v == 2 || v == 3 {
			if err := it.Remove(); err != nil {
				t.Fatalf("Remove(%d): %v", v, err)
			}
		}
	}
	wantSlice(t, drainAll(q), []int{1, 4})
}

func TestIteratorRemoveEverything(t *testing.T) {
	q := scq.NewOptimistic[int]()
	q.EnqueueAll([]int{1, 2, 3})

	for it := q.Iter(); it.Next(); {
		if err := it.Remove(); err != nil {
			t.Fatalf("Remove: %v", err)
		}
	}
	if !q.IsEmpty() {
		t.Fatalf("IsEmpty: got false, want true (remaining %v)", q.ToSlice())
	}
}

func TestAllSeq(t *testing.T) {
	q := scq.NewOptimistic[int]()
	q.EnqueueAll([]int{10, 20, 30})

	var got []int
	for v := range q.All() {
		got = append(got, v)
	}
	wantSlice(t, got, []int{10, 20, 30})

	// Early break is honored
	count := 0
	for range q.All() {
		count++
		break
	}
	if count != 1 {
		t.Fatalf("early break: got %d iterations, want 1", count)
	}
}

// Copyright 2023 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heap_test

import (
	"errors"
	"math"
	"math/rand"
	"reflect"
	"runtime"
	"sort"
	"testing"

	"cloudeng.io/dsa/container/heap"
)

func assertNext[K heap.Ordered, V comparable](t *testing.T, h interface {
	Pop() (K, V, error)
}, ek K, ev V) {
	t.Helper()
	k, v, err := h.Pop()
	_, _, line, _ := runtime.Caller(1)
	if err != nil {
		t.Fatalf("line %v: %v", line, err)
	}
	if got, want := k, ek; got != want {
		t.Errorf("line %v: got %v, want %v", line, got, want)
	}
	if got, want := v, ev; got != want {
		t.Errorf("line %v: got %v, want %v", line, got, want)
	}
}

func assertPeek[K heap.Ordered, V comparable](t *testing.T, h interface {
	Peek() (K, V, error)
}, ek K, ev V) {
	t.Helper()
	k, v, err := h.Peek()
	_, _, line, _ := runtime.Caller(1)
	if err != nil {
		t.Fatalf("line %v: %v", line, err)
	}
	if got, want := k, ek; got != want {
		t.Errorf("line %v: got %v, want %v", line, got, want)
	}
	if got, want := v, ev; got != want {
		t.Errorf("line %v: got %v, want %v", line, got, want)
	}
}

func TestPushPop(t *testing.T) {
	h := heap.NewMin[int, string]()
	h.Push(5, "a")
	h.Push(3, "b")
	h.Push(8, "c")
	h.Push(1, "d")
	h.VerifyT(t)
	assertPeek(t, h, 1, "d")
	if got, want := h.Len(), 4; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	assertNext(t, h, 1, "d")
	assertNext(t, h, 3, "b")
	assertNext(t, h, 5, "a")
	assertNext(t, h, 8, "c")
	if !h.Empty() {
		t.Errorf("expected an empty heap")
	}
}

func TestEmpty(t *testing.T) {
	h := heap.NewMin[string, int]()
	if !h.Empty() || h.Len() != 0 {
		t.Errorf("expected an empty heap")
	}
	if _, _, err := h.Peek(); !errors.Is(err, heap.ErrEmptyQueue) {
		t.Errorf("unexpected or missing error: %v", err)
	}
	if _, _, err := h.Pop(); !errors.Is(err, heap.ErrEmptyQueue) {
		t.Errorf("unexpected or missing error: %v", err)
	}
	h.Push("x", 1)
	assertNext(t, h, "x", 1)
	if _, _, err := h.Pop(); !errors.Is(err, heap.ErrEmptyQueue) {
		t.Errorf("unexpected or missing error: %v", err)
	}
	if got, want := h.Len(), 0; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestPushReturnsSlot(t *testing.T) {
	h := heap.NewMin[int, int]()
	if got, want := h.Push(10, 0), 0; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := h.Push(20, 0), 1; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := h.Push(1, 0), 0; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestSorted(t *testing.T) {
	for _, n := range []int{0, 1, 2, 3, 7, 8, 100, 1023, 1024, 1025} {
		keys := uniformRand(int64(n), n)
		h := heap.NewMin[int, int](heap.WithSliceCap[int, int](n))
		for i, k := range keys {
			h.Push(k, i)
			if got, want := h.Len(), i+1; got != want {
				t.Fatalf("got %v, want %v", got, want)
			}
		}
		h.VerifyT(t)
		sort.Ints(keys)
		for i, want := range keys {
			k, _, err := h.Pop()
			if err != nil {
				t.Fatal(err)
			}
			if got := k; got != want {
				t.Errorf("%v: %v: got %v, want %v", n, i, got, want)
			}
			if got, want := h.Len(), n-i-1; got != want {
				t.Fatalf("got %v, want %v", got, want)
			}
		}
	}
}

func TestDuplicates(t *testing.T) {
	h := heap.NewMin[int, int]()
	for i := 0; i < 100; i++ {
		h.Push(i%3, i)
	}
	h.VerifyT(t)
	seen := map[int]bool{}
	prev := math.MinInt
	for !h.Empty() {
		k, v, _ := h.Pop()
		if k < prev {
			t.Fatalf("got %v after %v", k, prev)
		}
		if got, want := k, v%3; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
		seen[v] = true
		prev = k
	}
	// the order of equal keys is not defined, only that all are returned.
	if got, want := len(seen), 100; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestHeapify(t *testing.T) {
	for _, n := range []int{0, 1, 2, 3, 10, 31, 32, 33, 1000} {
		keys := uniformRand(int64(n)+7, n)
		vals := make([]int, n)
		pairs := make([]heap.Pair[int, int], n)
		for i := range keys {
			vals[i] = -keys[i]
			pairs[i] = heap.Pair[int, int]{Key: keys[i], Value: -keys[i]}
		}
		dh := heap.NewMin(heap.WithData(keys, vals))
		ph := heap.NewMin(heap.WithPairs(pairs))
		for _, h := range []*heap.T[int, int]{dh, ph} {
			h.VerifyT(t)
			if err := h.Verify(); err != nil {
				t.Errorf("%v: %v", n, err)
			}
			if got, want := h.Len(), n; got != want {
				t.Errorf("got %v, want %v", got, want)
			}
		}
		sorted := append([]int{}, keys...)
		sort.Ints(sorted)
		for _, k := range sorted {
			assertNext(t, dh, k, -k)
			assertNext(t, ph, k, -k)
		}
	}

	h := heap.NewMin(
		heap.WithData([]int{9, 8}, []string{"nine", "eight"}),
		heap.WithPairs([]heap.Pair[int, string]{{Key: 7, Value: "seven"}, {Key: 10, Value: "ten"}}))
	assertNext(t, h, 7, "seven")
	assertNext(t, h, 8, "eight")
	assertNext(t, h, 9, "nine")
	assertNext(t, h, 10, "ten")
}

func TestWithDataMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected a panic")
		}
	}()
	heap.NewMin(heap.WithData([]int{1, 2}, []int{1}))
}

func TestHeapifyLinear(t *testing.T) {
	// Heapify makes at most two comparisons per level sifted and the
	// levels sum to less than n. Pushing descending keys sifts every
	// key to the root, which is O(n log n).
	ratio := func(n int, bulk bool) float64 {
		keys := make([]int, n)
		for i := range keys {
			keys[i] = n - i
		}
		var h *heap.T[int, struct{}]
		if bulk {
			h = heap.NewMin(heap.WithData(keys, make([]struct{}, n)))
		} else {
			h = heap.NewMin[int, struct{}]()
			for _, k := range keys {
				h.Push(k, struct{}{})
			}
		}
		return float64(h.Stats().Comparisons) / float64(n)
	}
	for _, n := range []int{1 << 10, 1 << 14, 1 << 18} {
		if r := ratio(n, true); r > 2.0 {
			t.Errorf("%v: heapify performed %.2f comparisons per element", n, r)
		}
	}
	small, large := ratio(1<<10, true), ratio(1<<18, true)
	if large-small > 0.1 {
		t.Errorf("heapify comparisons per element grew from %.3f to %.3f", small, large)
	}
	small, large = ratio(1<<10, false), ratio(1<<18, false)
	if large-small < 5 {
		t.Errorf("pushes per element did not grow logarithmically: %.3f to %.3f", small, large)
	}
}

func TestStats(t *testing.T) {
	h := heap.NewMin[int, int]()
	if got, want := h.Stats(), (heap.Stats{}); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	h.Push(2, 0)
	h.Push(1, 0)
	if got, want := h.Stats(), (heap.Stats{Comparisons: 1, Swaps: 1}); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	h.ResetStats()
	if got, want := h.Stats(), (heap.Stats{}); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestCallback(t *testing.T) {
	// Maintain an external value -> slot table via the callback.
	slots := map[string]int{}
	h := heap.NewMin(heap.WithCallback[int, string](func(iv, jv string, i, j int) {
		slots[iv], slots[jv] = i, j
	}))
	for i, v := range []string{"e", "d", "c", "b", "a"} {
		slots[v] = h.Push(5-i, v)
	}
	for _, v := range []string{"a", "b", "c"} {
		if _, got, _ := h.Pop(); got != v {
			t.Errorf("got %v, want %v", got, v)
		}
		delete(slots, v)
	}
	if got, want := slots, map[string]int{"d": 0, "e": 1}; !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestMinCorrectness(t *testing.T) {
	rnd := rand.New(rand.NewSource(99))
	h := heap.NewMin[float64, int]()
	ref := []float64{}
	for i := 0; i < 2000; i++ {
		if rnd.Intn(3) == 0 && len(ref) > 0 {
			k, _, err := h.Pop()
			if err != nil {
				t.Fatal(err)
			}
			if got, want := k, ref[0]; got != want {
				t.Fatalf("got %v, want %v", got, want)
			}
			ref = ref[1:]
			continue
		}
		k := rnd.NormFloat64()
		h.Push(k, i)
		ref = append(ref, k)
		sort.Float64s(ref)
		if pk, _, _ := h.Peek(); pk != ref[0] {
			t.Fatalf("got %v, want %v", pk, ref[0])
		}
	}
	if got, want := h.Len(), len(ref); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

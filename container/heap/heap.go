// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package heap provides a binary min-heap of key/value pairs and an
// adaptable priority queue built on top of it. The adaptable queue hands
// out locators that allow any element, not just the minimum, to be updated
// or removed in O(log n) time.
//
// None of the types in this package are safe for concurrent use.
package heap

import (
	"fmt"

	"cloudeng.io/errors"
)

var (
	// ErrEmptyQueue is returned by Peek and Pop when the heap is empty.
	ErrEmptyQueue = errors.New("empty queue")
	// ErrInvalidLocator is returned when a locator does not refer to an
	// element that is currently held by the queue it was presented to.
	ErrInvalidLocator = errors.New("invalid locator")
)

// Ordered represents the set of types that can be used as keys.
type Ordered interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64 | ~string
}

// Pair represents a key/value pair.
type Pair[K Ordered, V any] struct {
	Key   K
	Value V
}

// entry is allocated once per element and never copied, so that pointers
// to it remain stable as the backing slice grows. index is always the
// entry's current slot, or -1 once it has left the heap.
type entry[K Ordered, V any] struct {
	key   K
	value V
	index int
}

// Stats records the work performed by a heap.
type Stats struct {
	Comparisons int64 `yaml:"comparisons"`
	Swaps       int64 `yaml:"swaps"`
}

// T represents a binary min-heap of key/value pairs.
type T[K Ordered, V any] struct {
	entries  []*entry[K, V]
	callback func(iv, jv V, i, j int)
	stats    Stats
}

// NewMin creates a new, empty, min-heap. The WithData and WithPairs options
// may be used to bulk load the heap in O(n) time.
func NewMin[K Ordered, V any](opts ...Option[K, V]) *T[K, V] {
	h := &T[K, V]{}
	h.init(opts)
	return h
}

func (h *T[K, V]) init(opts []Option[K, V]) {
	var o options[K, V]
	for _, fn := range opts {
		fn(&o)
	}
	h.callback = o.callback
	n := len(o.keys) + len(o.pairs)
	if o.sliceCap > n {
		n = o.sliceCap
	}
	h.entries = make([]*entry[K, V], 0, n)
	for i, k := range o.keys {
		h.entries = append(h.entries, &entry[K, V]{key: k, value: o.vals[i], index: len(h.entries)})
	}
	for _, p := range o.pairs {
		h.entries = append(h.entries, &entry[K, V]{key: p.Key, value: p.Value, index: len(h.entries)})
	}
	h.heapify()
}

// heapify is Floyd's algorithm: sift down every internal node, starting
// with the parent of the last element and working back to the root.
func (h *T[K, V]) heapify() {
	n := len(h.entries)
	if n < 2 {
		return
	}
	for i := parent(n - 1); i >= 0; i-- {
		h.siftDown(i)
	}
}

// Len returns the number of items in the heap.
func (h *T[K, V]) Len() int {
	return len(h.entries)
}

// Empty returns true if the heap contains no items.
func (h *T[K, V]) Empty() bool {
	return len(h.entries) == 0
}

// Peek returns the smallest key and its value without removing them.
func (h *T[K, V]) Peek() (K, V, error) {
	if len(h.entries) == 0 {
		var k K
		var v V
		return k, v, ErrEmptyQueue
	}
	e := h.entries[0]
	return e.key, e.value, nil
}

// Push adds the key/value pair to the heap and returns the slot that it
// occupies once the heap has been reordered.
func (h *T[K, V]) Push(k K, v V) int {
	return h.push(k, v).index
}

func (h *T[K, V]) push(k K, v V) *entry[K, V] {
	e := &entry[K, V]{key: k, value: v, index: len(h.entries)}
	h.entries = append(h.entries, e)
	h.siftUp(e.index)
	return e
}

// Pop removes and returns the smallest key and its value.
func (h *T[K, V]) Pop() (K, V, error) {
	if len(h.entries) == 0 {
		var k K
		var v V
		return k, v, ErrEmptyQueue
	}
	h.swap(0, len(h.entries)-1)
	e := h.truncate()
	h.siftDown(0)
	return e.key, e.value, nil
}

// Stats returns the number of comparisons and swaps performed since the
// heap was created or ResetStats was last called.
func (h *T[K, V]) Stats() Stats {
	return h.stats
}

// ResetStats zeroes the counters returned by Stats.
func (h *T[K, V]) ResetStats() {
	h.stats = Stats{}
}

// Verify checks that every parent's key is no greater than its children's
// and that every entry records its own slot. It returns all of the
// violations found.
func (h *T[K, V]) Verify() error {
	errs := &errors.M{}
	for i, e := range h.entries {
		if e.index != i {
			errs.Append(fmt.Errorf("slot %v: entry records slot %v", i, e.index))
		}
		if i == 0 {
			continue
		}
		if p := parent(i); e.key < h.entries[p].key {
			errs.Append(fmt.Errorf("slot %v: key %v is less than parent slot %v: key %v", i, e.key, p, h.entries[p].key))
		}
	}
	return errs.Err()
}

// truncate removes the last entry and marks it as no longer in the heap.
func (h *T[K, V]) truncate() *entry[K, V] {
	n := len(h.entries) - 1
	e := h.entries[n]
	h.entries[n] = nil
	h.entries = h.entries[:n]
	e.index = -1
	return e
}

// bubble restores the heap property for slot i after its key has changed
// arbitrarily.
func (h *T[K, V]) bubble(i int) {
	if i > 0 && h.less(i, parent(i)) {
		h.siftUp(i)
		return
	}
	h.siftDown(i)
}

func parent(i int) int { return (i - 1) / 2 }
func left(i int) int   { return (2 * i) + 1 }
func right(i int) int  { return (2 * i) + 2 }

// swap is the only place where entries change slots.
func (h *T[K, V]) swap(i, j int) {
	if i == j {
		return
	}
	h.stats.Swaps++
	h.entries[i], h.entries[j] = h.entries[j], h.entries[i]
	h.entries[i].index = i
	h.entries[j].index = j
	if h.callback != nil {
		h.callback(h.entries[i].value, h.entries[j].value, i, j)
	}
}

func (h *T[K, V]) less(i, j int) bool {
	h.stats.Comparisons++
	return h.entries[i].key < h.entries[j].key
}

func (h *T[K, V]) siftUp(i int) {
	for i > 0 {
		p := parent(i)
		if !h.less(i, p) {
			break
		}
		h.swap(i, p)
		i = p
	}
}

func (h *T[K, V]) siftDown(p int) bool {
	i := p
	n := len(h.entries)
	for {
		l := left(i)
		if l >= n || l < 0 { // l < 0 after int overflow
			break
		}
		// choose the smaller of the two children.
		c := l
		if r := right(i); r < n && h.less(r, l) {
			c = r
		}
		if !h.less(c, i) {
			break
		}
		h.swap(i, c)
		i = c
	}
	return i > p
}

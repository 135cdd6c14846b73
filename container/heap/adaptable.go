// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heap

// Locator identifies a single element held by an Adaptable queue. It is
// returned by Adaptable.Push and remains valid, even as the element moves
// within the heap, until that element is popped or removed. The zero value
// is never valid.
type Locator[K Ordered, V any] struct {
	e *entry[K, V]
}

// Adaptable is a min-heap that supports updating and removing arbitrary
// elements via the Locators it hands out on Push.
type Adaptable[K Ordered, V any] struct {
	h T[K, V]
}

// NewAdaptable creates a new adaptable priority queue. It accepts the same
// options as NewMin; locators for bulk loaded data can be obtained via
// Locators.
func NewAdaptable[K Ordered, V any](opts ...Option[K, V]) *Adaptable[K, V] {
	a := &Adaptable[K, V]{}
	a.h.init(opts)
	return a
}

// Len returns the number of items in the queue.
func (a *Adaptable[K, V]) Len() int {
	return a.h.Len()
}

// Empty returns true if the queue contains no items.
func (a *Adaptable[K, V]) Empty() bool {
	return a.h.Empty()
}

// Peek returns the smallest key and its value without removing them.
func (a *Adaptable[K, V]) Peek() (K, V, error) {
	return a.h.Peek()
}

// Pop removes and returns the smallest key and its value. The locator
// for the popped element is no longer valid.
func (a *Adaptable[K, V]) Pop() (K, V, error) {
	return a.h.Pop()
}

// Push adds the key/value pair to the queue and returns a locator for it.
func (a *Adaptable[K, V]) Push(k K, v V) Locator[K, V] {
	return Locator[K, V]{e: a.h.push(k, v)}
}

// Update replaces the key and value of the element identified by l and
// moves it up or down the heap as its new key requires. The locator remains
// valid. ErrInvalidLocator is returned, and the queue left untouched, if l
// does not refer to an element in this queue.
func (a *Adaptable[K, V]) Update(l Locator[K, V], k K, v V) error {
	i, err := a.unwrap(l)
	if err != nil {
		return err
	}
	l.e.key, l.e.value = k, v
	a.h.bubble(i)
	return nil
}

// Remove removes the element identified by l and returns its key and value.
// The locator is no longer valid once Remove returns.
func (a *Adaptable[K, V]) Remove(l Locator[K, V]) (K, V, error) {
	i, err := a.unwrap(l)
	if err != nil {
		var k K
		var v V
		return k, v, err
	}
	last := a.h.Len() - 1
	if i == last {
		a.h.truncate()
		return l.e.key, l.e.value, nil
	}
	a.h.swap(i, last)
	a.h.truncate()
	// the element moved into slot i may belong above or below it.
	a.h.bubble(i)
	return l.e.key, l.e.value, nil
}

// Get returns the key and value of the element identified by l.
func (a *Adaptable[K, V]) Get(l Locator[K, V]) (K, V, error) {
	if _, err := a.unwrap(l); err != nil {
		var k K
		var v V
		return k, v, err
	}
	return l.e.key, l.e.value, nil
}

// Valid returns true if l refers to an element currently in the queue.
func (a *Adaptable[K, V]) Valid(l Locator[K, V]) bool {
	_, err := a.unwrap(l)
	return err == nil
}

// Locators returns a locator for every element in the queue, in the order
// in which they are currently stored.
func (a *Adaptable[K, V]) Locators() []Locator[K, V] {
	ls := make([]Locator[K, V], len(a.h.entries))
	for i, e := range a.h.entries {
		ls[i] = Locator[K, V]{e: e}
	}
	return ls
}

// Stats returns the number of comparisons and swaps performed by the
// underlying heap.
func (a *Adaptable[K, V]) Stats() Stats {
	return a.h.Stats()
}

// ResetStats zeroes the counters returned by Stats.
func (a *Adaptable[K, V]) ResetStats() {
	a.h.ResetStats()
}

// Verify is like T.Verify.
func (a *Adaptable[K, V]) Verify() error {
	return a.h.Verify()
}

// unwrap returns the slot currently occupied by l's entry. The identity
// check rejects locators from other queues as well as those whose entry
// has since been removed.
func (a *Adaptable[K, V]) unwrap(l Locator[K, V]) (int, error) {
	if l.e == nil {
		return -1, ErrInvalidLocator
	}
	i := l.e.index
	if i < 0 || i >= len(a.h.entries) || a.h.entries[i] != l.e {
		return -1, ErrInvalidLocator
	}
	return i, nil
}

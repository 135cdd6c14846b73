// Copyright 2020 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heap

// Item represents an identifier and its current key as returned by
// Keyed.TopN.
type Item[ID comparable, K Ordered] struct {
	ID  ID
	Key K
}

// Keyed implements a heap whose items are identified by a caller supplied
// ID to allow for updates to, and removal of, existing items. Each ID
// appears at most once.
type Keyed[ID comparable, K Ordered] struct {
	q      *Adaptable[K, ID]
	lookup map[ID]Locator[K, ID]
}

// NewKeyed returns a new instance of Keyed. Any data supplied via WithData
// or WithPairs must not contain duplicate IDs.
func NewKeyed[ID comparable, K Ordered](opts ...Option[K, ID]) *Keyed[ID, K] {
	kh := &Keyed[ID, K]{
		q: NewAdaptable(opts...),
	}
	locs := kh.q.Locators()
	kh.lookup = make(map[ID]Locator[K, ID], len(locs))
	for _, l := range locs {
		kh.lookup[l.e.value] = l
	}
	return kh
}

// Update updates the key associated with id or it adds it to the heap.
func (kh *Keyed[ID, K]) Update(id ID, k K) {
	l, ok := kh.lookup[id]
	if !ok {
		kh.lookup[id] = kh.q.Push(k, id)
		return
	}
	// l is always valid since entries leave lookup when they leave q.
	_ = kh.q.Update(l, k, id)
}

// Remove removes the specified item from the heap, returning false if
// it was not present.
func (kh *Keyed[ID, K]) Remove(id ID) bool {
	l, ok := kh.lookup[id]
	if !ok {
		return false
	}
	delete(kh.lookup, id)
	_, _, err := kh.q.Remove(l)
	return err == nil
}

// Contains returns true if id is in the heap.
func (kh *Keyed[ID, K]) Contains(id ID) bool {
	_, ok := kh.lookup[id]
	return ok
}

// Key returns the key currently associated with id.
func (kh *Keyed[ID, K]) Key(id ID) (K, bool) {
	l, ok := kh.lookup[id]
	if !ok {
		var k K
		return k, false
	}
	k, _, err := kh.q.Get(l)
	return k, err == nil
}

// Peek returns the item with the smallest key without removing it.
func (kh *Keyed[ID, K]) Peek() (ID, K, error) {
	k, id, err := kh.q.Peek()
	return id, k, err
}

// Pop removes the item with the smallest key from the heap.
func (kh *Keyed[ID, K]) Pop() (ID, K, error) {
	k, id, err := kh.q.Pop()
	if err != nil {
		return id, k, err
	}
	delete(kh.lookup, id)
	return id, k, nil
}

// TopN removes at most the top most n items from the heap.
func (kh *Keyed[ID, K]) TopN(n int) []Item[ID, K] {
	n = max(0, min(n, kh.q.Len()))
	out := make([]Item[ID, K], 0, n)
	for i := 0; i < n; i++ {
		id, k, _ := kh.Pop()
		out = append(out, Item[ID, K]{ID: id, Key: k})
	}
	return out
}

// Len returns the number of items in the heap.
func (kh *Keyed[ID, K]) Len() int {
	return kh.q.Len()
}

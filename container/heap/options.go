// Copyright 2023 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heap

type options[K Ordered, V any] struct {
	sliceCap int
	keys     []K
	vals     []V
	pairs    []Pair[K, V]
	callback func(iv, jv V, i, j int)
}

// Option represents the options that can be passed to NewMin, NewAdaptable
// and NewKeyed.
type Option[K Ordered, V any] func(*options[K, V])

// WithSliceCap sets the initial capacity of the slice used to hold
// the heap's entries.
func WithSliceCap[K Ordered, V any](n int) Option[K, V] {
	return func(o *options[K, V]) {
		o.sliceCap = n
	}
}

// WithData sets the initial data for the heap. The heap is built from
// the supplied keys and values in O(n) time. The slices are not retained.
func WithData[K Ordered, V any](keys []K, vals []V) Option[K, V] {
	return func(o *options[K, V]) {
		if len(keys) != len(vals) {
			panic("keys and vals must be the same length")
		}
		o.keys = keys
		o.vals = vals
	}
}

// WithPairs is like WithData but for a slice of key/value pairs. If both
// WithData and WithPairs are specified the heap contains the union of
// their contents.
func WithPairs[K Ordered, V any](pairs []Pair[K, V]) Option[K, V] {
	return func(o *options[K, V]) {
		o.pairs = pairs
	}
}

// WithCallback provides a callback function that is called after every
// swap with the values and indices of the elements that have changed
// location. Note that is not sufficient to track removal of items and hence
// any applications that requires such tracking should do so explicitly.
func WithCallback[K Ordered, V any](fn func(iv, jv V, i, j int)) Option[K, V] {
	return func(o *options[K, V]) {
		o.callback = fn
	}
}

// Copyright 2021 Optakt Labs OÜ
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy of
// the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations under
// the License.

// Package sortedmap implements the C4 composite container: a
// HashTrieMap for O(1) keyed lookup paired with a SortedCollection of
// {key, order} tuples for ordered iteration by a caller-supplied
// ordering key. It is the backing store for package lru.
package sortedmap

import (
	"fmt"

	"github.com/optakt/containers/instrument"
	"github.com/optakt/containers/sorted"
	"github.com/optakt/containers/triemap"
)

// tuple is the element type stored in the backing SortedCollection.
type tuple struct {
	key   interface{}
	order interface{}
}

// Map is a unique-key associative container with ordered iteration by
// an independent ordering key.
type Map struct {
	byKey          *triemap.Map
	byOrder        *sorted.Collection
	getOrderingKey func(value interface{}) interface{}
}

// Option configures a Map at construction.
type Option func(*options)

type options struct {
	orderCmp    OrderComparer
	maxItems    int
	hasMaxItems bool
	pool        *sorted.Pool
	metrics     *instrument.Time
}

// WithOrderComparer overrides the default natural <, > comparer
// applied to ordering keys.
func WithOrderComparer(cmp OrderComparer) Option {
	return func(o *options) { o.orderCmp = cmp }
}

// WithMaxItemsPerLevel overrides the backing SortedCollection's
// branching factor.
func WithMaxItemsPerLevel(n int) Option {
	return func(o *options) {
		o.maxItems = n
		o.hasMaxItems = true
	}
}

// WithPool enables node pooling on the backing SortedCollection.
func WithPool(pool *sorted.Pool) Option {
	return func(o *options) { o.pool = pool }
}

// WithInstrumentation attaches a latency collector to the backing
// SortedCollection.
func WithInstrumentation(collector *instrument.Time) Option {
	return func(o *options) { o.metrics = collector }
}

// New creates an empty Map. getOrderingKey derives the ordering key
// from a value at set time; it is re-evaluated on every update.
func New(getOrderingKey func(value interface{}) interface{}, opts ...Option) *Map {
	o := &options{orderCmp: naturalCompare}
	for _, opt := range opts {
		opt(o)
	}

	sortedOpts := []sorted.Option{
		sorted.WithEqualityComparer(func(a, b interface{}) bool {
			return a.(tuple).key == b.(tuple).key
		}),
	}
	if o.hasMaxItems {
		sortedOpts = append(sortedOpts, sorted.WithMaxItemsPerLevel(o.maxItems))
	}
	if o.pool != nil {
		sortedOpts = append(sortedOpts, sorted.WithPool(o.pool))
	}
	if o.metrics != nil {
		sortedOpts = append(sortedOpts, sorted.WithInstrumentation(o.metrics))
	}

	orderCmp := o.orderCmp
	tupleCmp := func(a, b interface{}) int {
		return orderCmp(a.(tuple).order, b.(tuple).order)
	}

	return &Map{
		byKey:          triemap.New(),
		byOrder:        sorted.New(tupleCmp, sortedOpts...),
		getOrderingKey: getOrderingKey,
	}
}

// Size returns the number of keys in the map, read from the backing
// SortedCollection (the two backing structures always agree).
func (m *Map) Size() int {
	return m.byOrder.Size()
}

// Has reports whether key is present.
func (m *Map) Has(key interface{}) bool {
	return m.byKey.Has(key)
}

// Get returns the value stored under key, or (nil, false) if absent.
func (m *Map) Get(key interface{}) (interface{}, bool) {
	return m.byKey.Get(key)
}

// Set stores value under key. A fresh key is inserted into both
// backing structures; an existing key is routed through Update so its
// ordering tuple is kept in sync.
func (m *Map) Set(key, value interface{}) {
	if !m.byKey.Has(key) {
		order := m.getOrderingKey(value)
		m.byOrder.Insert(tuple{key: key, order: order})
		m.byKey.Set(key, value)
		return
	}
	m.Update(key, func(interface{}) interface{} { return value })
}

// Remove deletes key if present. If the ordering key stored in the
// sorted collection has drifted from the value's actual ordering key
// (because the caller mutated the value without going through Update),
// the duplicate-aware lookup misses it and Remove falls back to a linear
// scan of the sorted collection for the tuple with this key.
func (m *Map) Remove(key interface{}) {
	value, ok := m.byKey.Get(key)
	if !ok {
		return
	}
	t := tuple{key: key, order: m.getOrderingKey(value)}
	if !m.byOrder.Has(t) {
		m.byOrder.ForEach(func(v interface{}) {
			if v.(tuple).key == key {
				t = v.(tuple)
			}
		})
	}
	m.byOrder.Remove(t)
	m.byKey.Remove(key)
}

// Update looks up key and, if present, replaces its value with
// f(currentValue), keeping the ordering tuple in sync, and returns the
// new value. If key is absent, Update returns (nil, false).
func (m *Map) Update(key interface{}, f func(interface{}) interface{}) (interface{}, bool) {
	existing, ok := m.byKey.Get(key)
	if !ok {
		return nil, false
	}

	oldOrder := m.getOrderingKey(existing)
	handle, found := m.byOrder.FindPath(tuple{key: key, order: oldOrder})
	if !found {
		panic(fmt.Sprintf("sortedmap: key %v present in hash map but not sorted collection", key))
	}

	newValue := f(existing)
	m.byKey.Set(key, newValue)

	newOrder := m.getOrderingKey(newValue)
	if newOrder == oldOrder {
		return newValue, true
	}
	m.byOrder.SetValueAtPath(handle, tuple{key: key, order: newOrder})
	return newValue, true
}

// GetFirst returns the (key, value) pair whose ordering key is
// smallest.
func (m *Map) GetFirst() (key, value interface{}, ok bool) {
	t, ok := m.byOrder.GetFirst()
	if !ok {
		return nil, nil, false
	}
	tp := t.(tuple)
	v, _ := m.byKey.Get(tp.key)
	return tp.key, v, true
}

// GetLast returns the (key, value) pair whose ordering key is largest.
func (m *Map) GetLast() (key, value interface{}, ok bool) {
	t, ok := m.byOrder.GetLast()
	if !ok {
		return nil, nil, false
	}
	tp := t.(tuple)
	v, _ := m.byKey.Get(tp.key)
	return tp.key, v, true
}

// Entry is one (key, value) pair, as returned by Entries.
type Entry struct {
	Key   interface{}
	Value interface{}
}

// Entries returns every (key, value) pair, in ascending ordering-key
// order.
func (m *Map) Entries() []Entry {
	out := make([]Entry, 0, m.Size())
	it := m.Iterate()
	for {
		k, v, ok := it.Next()
		if !ok {
			return out
		}
		out = append(out, Entry{Key: k, Value: v})
	}
}

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

// Package lru implements the C5 engine: a SortedMap ordered by a
// monotonically increasing recency counter, with capacity-triggered
// batch eviction that keeps 10% slack above the configured size to
// reduce the number of eviction passes under steady load.
package lru

import (
	"github.com/optakt/containers/instrument"
	"github.com/optakt/containers/sorted"
	"github.com/optakt/containers/sortedmap"
)

// entry is the value type stored in the backing SortedMap: a payload
// plus the recency stamp used as its ordering key.
type entry struct {
	payload interface{}
	order   uint64
}

// Cache is a least-recently-used eviction cache keyed arbitrarily.
type Cache struct {
	m             *sortedmap.Map
	nextOrder     uint64
	suggestedSize int
}

func entryOrder(v interface{}) interface{} {
	return v.(entry).order
}

// New creates an empty Cache targeting suggestedSize live entries.
func New(suggestedSize int, opts ...sortedmap.Option) *Cache {
	return &Cache{
		m:             sortedmap.New(entryOrder, opts...),
		suggestedSize: suggestedSize,
	}
}

// WithMaxItemsPerLevel overrides the backing SortedCollection's
// branching factor.
func WithMaxItemsPerLevel(n int) sortedmap.Option {
	return sortedmap.WithMaxItemsPerLevel(n)
}

// WithPool enables node pooling on the backing SortedCollection.
func WithPool(pool *sorted.Pool) sortedmap.Option {
	return sortedmap.WithPool(pool)
}

// WithInstrumentation attaches a latency collector to the backing
// SortedCollection.
func WithInstrumentation(collector *instrument.Time) sortedmap.Option {
	return sortedmap.WithInstrumentation(collector)
}

// Size returns the number of live entries.
func (c *Cache) Size() int {
	return c.m.Size()
}

// Has reports whether key is present, without affecting recency.
func (c *Cache) Has(key interface{}) bool {
	return c.m.Has(key)
}

// Peek returns the value stored under key without touching recency.
func (c *Cache) Peek(key interface{}) (interface{}, bool) {
	v, ok := c.m.Get(key)
	if !ok {
		return nil, false
	}
	return v.(entry).payload, true
}

// Get returns the value stored under key, marking it as the most
// recently touched entry.
func (c *Cache) Get(key interface{}) (interface{}, bool) {
	v, ok := c.m.Update(key, func(v interface{}) interface{} {
		e := v.(entry)
		e.order = c.nextOrder
		c.nextOrder++
		return e
	})
	if !ok {
		return nil, false
	}
	return v.(entry).payload, true
}

// Set stores value under key, marking it as the most recently touched
// entry, and evicts the least-recently-touched entries if the cache
// has grown past its slack threshold.
func (c *Cache) Set(key, value interface{}) {
	c.m.Set(key, entry{payload: value, order: c.nextOrder})
	c.nextOrder++
	c.evictIfNeeded()
}

// Update looks up key and, if present, replaces its payload with
// f(currentPayload), marks it as the most recently touched entry, and
// returns the new payload. If key is absent, Update returns
// (nil, false).
func (c *Cache) Update(key interface{}, f func(interface{}) interface{}) (interface{}, bool) {
	v, ok := c.m.Update(key, func(v interface{}) interface{} {
		e := v.(entry)
		e.payload = f(e.payload)
		e.order = c.nextOrder
		c.nextOrder++
		return e
	})
	if !ok {
		return nil, false
	}
	return v.(entry).payload, true
}

// Remove deletes key if present.
func (c *Cache) Remove(key interface{}) {
	c.m.Remove(key)
}

// Entry is one (key, value) pair, as returned by Entries.
type Entry struct {
	Key   interface{}
	Value interface{}
}

// Entries returns every (key, value) pair, from least-recently-touched
// to most-recently-touched.
func (c *Cache) Entries() []Entry {
	out := make([]Entry, 0, c.Size())
	it := c.Iterate()
	for {
		k, v, ok := it.Next()
		if !ok {
			return out
		}
		out = append(out, Entry{Key: k, Value: v})
	}
}

func (c *Cache) evictIfNeeded() {
	if float64(c.m.Size()) <= float64(c.suggestedSize)*1.1 {
		return
	}
	for c.m.Size() > c.suggestedSize {
		key, _, ok := c.m.GetFirst()
		if !ok {
			return
		}
		c.m.Remove(key)
	}
}

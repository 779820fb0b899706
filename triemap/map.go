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

// Package triemap implements a hash-trie associative container with
// O(1) expected get/set/remove and unordered, restartable iteration. It
// is the C2 engine of the container library: every mutation touches at
// most MaxDepth nodes, which keeps it friendly to callers that want to
// structurally share unchanged subtrees after a mutation.
package triemap

import (
	"github.com/hashicorp/go-multierror"

	"github.com/optakt/containers/hash"
	"github.com/optakt/containers/instrument"
)

// Entry is one (key, value) pair, used for iteration results and bulk
// loading.
type Entry struct {
	Key   interface{}
	Value interface{}
}

// Map is a hash-trie associative container keyed by int, int64, uint64
// or string.
type Map struct {
	root    *node
	count   int
	pool    *Pool
	metrics *instrument.Time
}

// Option configures a Map at construction.
type Option func(*Map)

// WithPool enables node pooling, reducing allocation churn for
// high-volume insert/remove workloads. Nodes taken from the pool are
// always reset to a blank state before use, so a pooled node is
// observationally identical to a freshly allocated one.
func WithPool(pool *Pool) Option {
	return func(m *Map) {
		m.pool = pool
	}
}

// WithInstrumentation attaches a latency collector. Absent a collector,
// instrumentation is a no-op and adds no overhead to the hot path.
func WithInstrumentation(collector *instrument.Time) Option {
	return func(m *Map) {
		m.metrics = collector
	}
}

// New creates an empty Map.
func New(opts ...Option) *Map {
	m := &Map{
		root: newNode(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Map) newNode() *node {
	if m.pool != nil {
		return m.pool.GetNode()
	}
	return newNode()
}

// Size returns the number of live entries in the map.
func (m *Map) Size() int {
	return m.count
}

// Has reports whether key is present.
func (m *Map) Has(key interface{}) bool {
	_, ok := m.Get(key)
	return ok
}

// Get returns the value stored under key, or (nil, false) if absent.
func (m *Map) Get(key interface{}) (interface{}, bool) {
	defer m.observe("get")()

	hashCode := hash.Of(key)
	n := m.root
	depth := 1
	for {
		i := hash.Nibble(hashCode, depth)
		switch p := n.slots[i].(type) {
		case nil:
			return nil, false
		case *node:
			n = p
			depth++
		case *singleValue:
			if p.key == key {
				return p.value, true
			}
			return nil, false
		case *multiValue:
			return p.get(key)
		}
	}
}

// Set stores value under key, overwriting any previous value for the
// same key.
func (m *Map) Set(key, value interface{}) {
	defer m.observe("set")()
	m.setIn(m.root, hash.Of(key), key, value, 1)
}

func (m *Map) setIn(n *node, hashCode uint32, key, value interface{}, depth int) {
	i := hash.Nibble(hashCode, depth)
	switch p := n.slots[i].(type) {
	case nil:
		if depth < MaxDepth {
			n.slots[i] = &singleValue{key: key, value: value}
		} else {
			n.slots[i] = &multiValue{entries: []entry{{key: key, value: value}}}
		}
		m.count++

	case *node:
		m.setIn(p, hashCode, key, value, depth+1)

	case *singleValue:
		if p.key == key {
			p.value = value
			return
		}
		// Hash-prefix collision: push the displaced entry one level
		// deeper and recurse for the new key.
		child := m.newNode()
		n.slots[i] = child
		m.pushDown(child, p, depth+1)
		m.setIn(child, hashCode, key, value, depth+1)

	case *multiValue:
		if p.set(key, value) {
			m.count++
		}
	}
}

// pushDown places a displaced single-value payload into child, which
// lives at childDepth. Per the invariant that multi-value nodes only
// occur at MaxDepth, the displaced entry becomes a multi-value node of
// one entry if childDepth has reached MaxDepth, and stays a
// single-value node otherwise.
func (m *Map) pushDown(child *node, displaced *singleValue, childDepth int) {
	displacedHash := hash.Of(displaced.key)
	di := hash.Nibble(displacedHash, childDepth)
	if childDepth == MaxDepth {
		child.slots[di] = &multiValue{entries: []entry{{key: displaced.key, value: displaced.value}}}
		return
	}
	child.slots[di] = displaced
}

// Remove deletes key if present. Removing an absent key is a silent
// no-op and does not change Size. Trie nodes are never collapsed on
// removal; an emptied slot simply stays empty.
func (m *Map) Remove(key interface{}) {
	defer m.observe("remove")()

	hashCode := hash.Of(key)
	n := m.root
	depth := 1
	for {
		i := hash.Nibble(hashCode, depth)
		switch p := n.slots[i].(type) {
		case nil:
			return
		case *node:
			n = p
			depth++
		case *singleValue:
			if p.key == key {
				n.slots[i] = nil
				m.count--
			}
			return
		case *multiValue:
			if p.remove(key) {
				m.count--
			}
			return
		}
	}
}

// slotRef names the exact storage location of a live entry, so that
// Update and UpdateInPlace can read and write it without re-walking the
// trie.
type slotRef struct {
	single *singleValue
	multi  *multiValue
	key    interface{}
}

func (r *slotRef) get() interface{} {
	if r.single != nil {
		return r.single.value
	}
	v, _ := r.multi.get(r.key)
	return v
}

func (r *slotRef) set(v interface{}) {
	if r.single != nil {
		r.single.value = v
		return
	}
	r.multi.set(r.key, v)
}

func (m *Map) find(key interface{}) *slotRef {
	hashCode := hash.Of(key)
	n := m.root
	depth := 1
	for {
		i := hash.Nibble(hashCode, depth)
		switch p := n.slots[i].(type) {
		case nil:
			return nil
		case *node:
			n = p
			depth++
		case *singleValue:
			if p.key != key {
				return nil
			}
			return &slotRef{single: p, key: key}
		case *multiValue:
			if _, ok := p.find(key); !ok {
				return nil
			}
			return &slotRef{multi: p, key: key}
		}
	}
}

// Update looks up key and, if present, replaces its value with
// f(currentValue), returning the new value. If key is absent, Update
// returns (nil, false) and leaves the map unchanged.
//
// Update models the "F returns a replacement" half of the update
// convention described in the design notes; see UpdateInPlace for the
// "F mutates in place" half.
func (m *Map) Update(key interface{}, f func(interface{}) interface{}) (interface{}, bool) {
	defer m.observe("update")()

	ref := m.find(key)
	if ref == nil {
		return nil, false
	}
	newValue := f(ref.get())
	ref.set(newValue)
	return newValue, true
}

// UpdateInPlace looks up key and, if present, invokes f with the current
// value so that the caller can mutate it through its own interior
// fields, then returns the (possibly mutated) value. If key is absent,
// UpdateInPlace returns (nil, false).
func (m *Map) UpdateInPlace(key interface{}, f func(interface{})) (interface{}, bool) {
	defer m.observe("update")()

	ref := m.find(key)
	if ref == nil {
		return nil, false
	}
	value := ref.get()
	f(value)
	return value, true
}

// MaxDepthReached returns the deepest trie node level currently in use,
// for shape introspection and instrumentation. An empty map reports 0.
func (m *Map) MaxDepthReached() int {
	var walk func(n *node, depth int) int
	walk = func(n *node, depth int) int {
		deepest := 0
		for _, p := range n.slots {
			child, ok := p.(*node)
			if !ok {
				continue
			}
			deepest = max(deepest, walk(child, depth+1))
		}
		if deepest == 0 {
			return depth
		}
		return deepest
	}
	if m.count == 0 {
		return 0
	}
	return walk(m.root, 1)
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// LoadAll inserts every entry in the slice. Entries with an unsupported
// key type are skipped and their error collected rather than aborting
// the whole batch; the returned error is nil if every entry loaded
// successfully.
func (m *Map) LoadAll(entries []Entry) error {
	var result *multierror.Error
	for _, e := range entries {
		if err := validKey(e.Key); err != nil {
			result = multierror.Append(result, err)
			continue
		}
		m.Set(e.Key, e.Value)
	}
	return result.ErrorOrNil()
}

func (m *Map) observe(op string) func() {
	if m.metrics == nil {
		return func() {}
	}
	return m.metrics.Duration(op)
}

// Package view implements the C7 read-only associative-view surface
// (iterator, entries, keys, values, forEach, get/has, size) over
// package sortedmap and package lru, without exposing either
// container's mutators.
package view

// Entry is one (key, value) pair produced by Entries/ForEach.
type Entry struct {
	Key   interface{}
	Value interface{}
}

// pairIterator is the shape both sortedmap.Iterator and lru.Iterator
// expose. A view obtains one through a func() pairIterator closure
// rather than through an Iterate method on source, since Go interface
// satisfaction requires an exact result-type match and both containers
// return their own concrete iterator type from Iterate().
type pairIterator interface {
	Next() (key, value interface{}, ok bool)
}

type source interface {
	Get(key interface{}) (interface{}, bool)
	Has(key interface{}) bool
	Size() int
}

// Map is a read-only view over a keyed, iterable container.
type Map struct {
	src    source
	iterate func() pairIterator
}

func newMap(src source, iterate func() pairIterator) *Map {
	return &Map{src: src, iterate: iterate}
}

// Get returns the value stored under key, or (nil, false) if absent.
func (v *Map) Get(key interface{}) (interface{}, bool) { return v.src.Get(key) }

// Has reports whether key is present.
func (v *Map) Has(key interface{}) bool { return v.src.Has(key) }

// Size returns the number of entries.
func (v *Map) Size() int { return v.src.Size() }

// Iterator returns a fresh iterator in the underlying container's
// iteration order.
func (v *Map) Iterator() pairIterator { return v.iterate() }

// Entries returns every (key, value) pair in iteration order.
func (v *Map) Entries() []Entry {
	out := make([]Entry, 0, v.src.Size())
	it := v.iterate()
	for {
		k, val, ok := it.Next()
		if !ok {
			return out
		}
		out = append(out, Entry{Key: k, Value: val})
	}
}

// Keys returns every key in iteration order.
func (v *Map) Keys() []interface{} {
	entries := v.Entries()
	out := make([]interface{}, len(entries))
	for i, e := range entries {
		out[i] = e.Key
	}
	return out
}

// Values returns every value in iteration order.
func (v *Map) Values() []interface{} {
	entries := v.Entries()
	out := make([]interface{}, len(entries))
	for i, e := range entries {
		out[i] = e.Value
	}
	return out
}

// ForEach invokes f with (value, key, view) for every entry, in
// iteration order.
func (v *Map) ForEach(f func(value, key interface{}, view *Map)) {
	it := v.iterate()
	for {
		k, val, ok := it.Next()
		if !ok {
			return
		}
		f(val, k, v)
	}
}

// Set is a read-only view over a container's key set.
type Set struct {
	m *Map
}

func newSet(m *Map) *Set { return &Set{m: m} }

// Has reports whether key is present.
func (s *Set) Has(key interface{}) bool { return s.m.Has(key) }

// Size returns the number of keys.
func (s *Set) Size() int { return s.m.Size() }

// Keys returns every key in iteration order.
func (s *Set) Keys() []interface{} { return s.m.Keys() }

// ForEach invokes f with (key, key, view) for every key, in iteration
// order -- mirroring the map view's (value, key, view) shape with the
// key standing in for both positions, per the set-view contract.
func (s *Set) ForEach(f func(key interface{}, _ interface{}, view *Set)) {
	for _, k := range s.m.Keys() {
		f(k, k, s)
	}
}

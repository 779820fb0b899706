package sortedmap

import (
	"github.com/optakt/containers/iter"
	"github.com/optakt/containers/sorted"
)

// Iterator yields (key, value) pairs in ordering-key order, lazily
// re-deriving each value from the backing hash map as it walks the
// backing sorted collection's tuples.
type Iterator struct {
	m    *Map
	inner *sorted.Iterator
}

// Iterate returns a forward iterator over (key, value) pairs in
// ascending ordering-key order.
func (m *Map) Iterate() *Iterator {
	return &Iterator{m: m, inner: m.byOrder.Iterate()}
}

// IterateReverse returns a backward iterator over (key, value) pairs
// in descending ordering-key order.
func (m *Map) IterateReverse() *Iterator {
	return &Iterator{m: m, inner: m.byOrder.IterateReverse()}
}

// Next advances the iterator and returns the next pair, or ok=false
// once exhausted.
func (it *Iterator) Next() (key, value interface{}, ok bool) {
	t, ok := it.inner.Next()
	if !ok {
		return nil, nil, false
	}
	tp := t.(tuple)
	v, _ := it.m.byKey.Get(tp.key)
	return tp.key, v, true
}

// ForEach calls f with every (key, value) pair in ascending
// ordering-key order.
func (m *Map) ForEach(f func(key, value interface{})) {
	it := m.Iterate()
	for {
		k, v, ok := it.Next()
		if !ok {
			return
		}
		f(k, v)
	}
}

// pair is the element type of the Iterable pairs() projects, used as
// the common input to the key and value projections below.
type pair struct {
	key   interface{}
	value interface{}
}

type pairAdapter struct {
	inner *Iterator
}

func (p *pairAdapter) Next() (interface{}, bool) {
	k, v, ok := p.inner.Next()
	if !ok {
		return nil, false
	}
	return pair{key: k, value: v}, true
}

func (m *Map) pairs() iter.Iterable {
	return iter.IterableFunc(func() iter.Iterator {
		return &pairAdapter{inner: m.Iterate()}
	})
}

// IterateKeys returns a restartable Iterable over keys only, in
// ascending ordering-key order.
func (m *Map) IterateKeys() iter.Iterable {
	return iter.Map(m.pairs(), func(v interface{}) interface{} { return v.(pair).key })
}

// IterateValues returns a restartable Iterable over values only, in
// ascending ordering-key order.
func (m *Map) IterateValues() iter.Iterable {
	return iter.Map(m.pairs(), func(v interface{}) interface{} { return v.(pair).value })
}

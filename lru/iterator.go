package lru

import (
	"github.com/optakt/containers/iter"
	"github.com/optakt/containers/sortedmap"
)

// Iterator yields (key, payload) pairs ordered from
// least-recently-touched to most-recently-touched (forward), or the
// reverse (IterateReverse).
type Iterator struct {
	inner *sortedmap.Iterator
}

// Iterate returns a forward iterator, starting at the
// least-recently-touched entry.
func (c *Cache) Iterate() *Iterator {
	return &Iterator{inner: c.m.Iterate()}
}

// IterateReverse returns a backward iterator, starting at the
// most-recently-touched entry.
func (c *Cache) IterateReverse() *Iterator {
	return &Iterator{inner: c.m.IterateReverse()}
}

// Next advances the iterator and returns the next pair, or ok=false
// once exhausted.
func (it *Iterator) Next() (key, value interface{}, ok bool) {
	k, v, ok := it.inner.Next()
	if !ok {
		return nil, nil, false
	}
	return k, v.(entry).payload, true
}

// ForEach calls f with every (key, payload) pair, from
// least-recently-touched to most-recently-touched.
func (c *Cache) ForEach(f func(key, value interface{})) {
	it := c.Iterate()
	for {
		k, v, ok := it.Next()
		if !ok {
			return
		}
		f(k, v)
	}
}

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

func (c *Cache) pairs() iter.Iterable {
	return iter.IterableFunc(func() iter.Iterator {
		return &pairAdapter{inner: c.Iterate()}
	})
}

// IterateKeys returns a restartable Iterable over keys only, from
// least-recently-touched to most-recently-touched.
func (c *Cache) IterateKeys() iter.Iterable {
	return iter.Map(c.pairs(), func(v interface{}) interface{} { return v.(pair).key })
}

// IterateValues returns a restartable Iterable over values only, from
// least-recently-touched to most-recently-touched.
func (c *Cache) IterateValues() iter.Iterable {
	return iter.Map(c.pairs(), func(v interface{}) interface{} { return v.(pair).value })
}

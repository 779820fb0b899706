package view

import (
	"github.com/optakt/containers/lru"
	"github.com/optakt/containers/sortedmap"
)

// NewSortedMap returns a read-only Map view over m.
func NewSortedMap(m *sortedmap.Map) *Map {
	return newMap(m, func() pairIterator { return m.Iterate() })
}

// NewSortedMapKeys returns a read-only Set view over m's keys.
func NewSortedMapKeys(m *sortedmap.Map) *Set {
	return newSet(NewSortedMap(m))
}

// lruSource adapts an lru.Cache to the source interface through Peek
// rather than Get, so that reading through a view never bumps the
// cache's recency order -- a view is read-only and must not have that
// kind of side effect on the container it looks at.
type lruSource struct {
	c *lru.Cache
}

func (s lruSource) Get(key interface{}) (interface{}, bool) { return s.c.Peek(key) }
func (s lruSource) Has(key interface{}) bool                { return s.c.Has(key) }
func (s lruSource) Size() int                               { return s.c.Size() }

// NewLruCache returns a read-only Map view over c.
func NewLruCache(c *lru.Cache) *Map {
	return newMap(lruSource{c: c}, func() pairIterator { return c.Iterate() })
}

// NewLruCacheKeys returns a read-only Set view over c's keys.
func NewLruCacheKeys(c *lru.Cache) *Set {
	return newSet(NewLruCache(c))
}

// Package iter implements the C6 engine: reusable, restartable
// sequence utilities layered over any container's own iterator, kept
// deliberately separate from each container's native traversal so a
// lazy transform (project keys, project values) never has to be
// reimplemented per container.
package iter

// Iterator is a single-pass pull iterator over a finite sequence of
// values.
type Iterator interface {
	Next() (interface{}, bool)
}

// Iterable produces a fresh Iterator on every call to Iterate, so a
// full traversal always starts from the beginning regardless of how
// many times the sequence has already been walked.
type Iterable interface {
	Iterate() Iterator
}

// IterableFunc adapts a plain "make a fresh iterator" function into an
// Iterable.
type IterableFunc func() Iterator

// Iterate calls f to produce a fresh Iterator.
func (f IterableFunc) Iterate() Iterator {
	return f()
}

type mapIterator struct {
	inner Iterator
	f     func(interface{}) interface{}
}

func (m *mapIterator) Next() (interface{}, bool) {
	v, ok := m.inner.Next()
	if !ok {
		return nil, false
	}
	return m.f(v), true
}

// Map returns an Iterable that lazily applies f to every value src
// produces. Each call to the result's Iterate re-derives a fresh
// transformed iterator from a fresh src iterator, so Map itself never
// buffers anything.
func Map(src Iterable, f func(interface{}) interface{}) Iterable {
	return IterableFunc(func() Iterator {
		return &mapIterator{inner: src.Iterate(), f: f}
	})
}

type sliceIterator struct {
	values []interface{}
	idx    int
}

func (s *sliceIterator) Next() (interface{}, bool) {
	if s.idx >= len(s.values) {
		return nil, false
	}
	v := s.values[s.idx]
	s.idx++
	return v, true
}

// Of wraps a fixed slice as a restartable Iterable.
func Of(values []interface{}) Iterable {
	return IterableFunc(func() Iterator {
		return &sliceIterator{values: values}
	})
}

// Slice drains one fresh iterator from src into a slice.
func Slice(src Iterable) []interface{} {
	out := []interface{}{}
	it := src.Iterate()
	for {
		v, ok := it.Next()
		if !ok {
			return out
		}
		out = append(out, v)
	}
}

// ForEach drains one fresh iterator from src, invoking f with every
// value.
func ForEach(src Iterable, f func(interface{})) {
	it := src.Iterate()
	for {
		v, ok := it.Next()
		if !ok {
			return
		}
		f(v)
	}
}

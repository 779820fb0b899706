package triemap

import "github.com/gammazero/deque"

// frame is one level of an in-progress trie traversal: the node being
// visited and the next slot index to examine within it.
type frame struct {
	n   *node
	idx int
}

// Iterator yields every (key, value) pair in a Map in an order that is
// unspecified but stable across repeated iterations of an unchanged
// container: slots are walked in index order, pushing trie nodes onto a
// stack of frames exactly as described in the design notes (no
// generator-style suspension; the traversal is resumable by the
// caller's own calls to Next).
type Iterator struct {
	stack   *deque.Deque
	pending []entry
}

// Iterate returns a fresh, independent Iterator positioned at the start
// of the traversal. Creating a new iterator always yields the same
// sequence for an unchanged Map.
func (m *Map) Iterate() *Iterator {
	it := &Iterator{stack: deque.New(MaxDepth)}
	it.stack.PushBack(&frame{n: m.root, idx: 0})
	return it
}

// Next advances the iterator and returns the next pair, or ok=false
// once the traversal is exhausted.
func (it *Iterator) Next() (key, value interface{}, ok bool) {
	if len(it.pending) > 0 {
		e := it.pending[0]
		it.pending = it.pending[1:]
		return e.key, e.value, true
	}

	for it.stack.Len() > 0 {
		top := it.stack.Back().(*frame)
		if top.idx >= SlotCount {
			it.stack.PopBack()
			continue
		}
		slot := top.n.slots[top.idx]
		top.idx++

		switch p := slot.(type) {
		case nil:
			continue
		case *node:
			it.stack.PushBack(&frame{n: p, idx: 0})
		case *singleValue:
			return p.key, p.value, true
		case *multiValue:
			if len(p.entries) == 0 {
				continue
			}
			it.pending = p.entries[1:]
			first := p.entries[0]
			return first.key, first.value, true
		}
	}
	return nil, nil, false
}

// ForEach calls f for every (key, value) pair in iteration order.
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

package sorted

// iterFrame is one level of an in-progress in-order traversal. idx is
// the index of the next child to descend into before the value at the
// same index is emitted (forward), or, in reverse, the index of the
// next child to descend into before the value at idx-1 is emitted.
// childDone marks whether that descent has already happened
// for the current idx.
type iterFrame struct {
	n         *node
	idx       int
	childDone bool
}

// Iterator yields values in sorted order, forward or backward,
// restartable by creating a fresh one from the collection.
type Iterator struct {
	stack   []*iterFrame
	reverse bool
}

// Iterate returns a forward iterator positioned before the smallest
// value.
func (c *Collection) Iterate() *Iterator {
	it := &Iterator{}
	it.pushLeftSpine(c.root)
	return it
}

// IterateReverse returns a backward iterator positioned after the
// largest value.
func (c *Collection) IterateReverse() *Iterator {
	it := &Iterator{reverse: true}
	it.pushRightSpine(c.root)
	return it
}

func (it *Iterator) pushLeftSpine(n *node) {
	for {
		it.stack = append(it.stack, &iterFrame{n: n})
		if n.isLeaf() {
			return
		}
		n = n.children[0]
	}
}

func (it *Iterator) pushRightSpine(n *node) {
	for {
		it.stack = append(it.stack, &iterFrame{n: n, idx: len(n.values)})
		if n.isLeaf() {
			return
		}
		n = n.children[len(n.children)-1]
	}
}

// Next advances the iterator and returns the next value, or ok=false
// once the traversal is exhausted.
func (it *Iterator) Next() (interface{}, bool) {
	if it.reverse {
		return it.nextBackward()
	}
	return it.nextForward()
}

func (it *Iterator) nextForward() (interface{}, bool) {
	for len(it.stack) > 0 {
		top := it.stack[len(it.stack)-1]
		if !top.n.isLeaf() && !top.childDone {
			top.childDone = true
			it.pushLeftSpine(top.n.children[top.idx])
			continue
		}
		if top.idx >= len(top.n.values) {
			it.stack = it.stack[:len(it.stack)-1]
			continue
		}
		value := top.n.values[top.idx]
		top.idx++
		top.childDone = false
		return value, true
	}
	return nil, false
}

func (it *Iterator) nextBackward() (interface{}, bool) {
	for len(it.stack) > 0 {
		top := it.stack[len(it.stack)-1]
		if !top.n.isLeaf() && !top.childDone {
			top.childDone = true
			it.pushRightSpine(top.n.children[top.idx])
			continue
		}
		if top.idx <= 0 {
			it.stack = it.stack[:len(it.stack)-1]
			continue
		}
		top.idx--
		value := top.n.values[top.idx]
		top.childDone = false
		return value, true
	}
	return nil, false
}

// ForEach calls f with every value in sorted order.
func (c *Collection) ForEach(f func(value interface{})) {
	it := c.Iterate()
	for {
		v, ok := it.Next()
		if !ok {
			return
		}
		f(v)
	}
}

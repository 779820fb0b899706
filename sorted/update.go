package sorted

// Update looks up a value order-equivalent and equal to value and, if
// present, replaces it with f(currentValue), returning the new value.
// If the replacement's order key differs from the original, Update
// relocates it to keep the collection sorted. If no matching value
// exists, Update returns (nil, false).
func (c *Collection) Update(value interface{}, f func(interface{}) interface{}) (interface{}, bool) {
	defer c.observe("update")()

	path, ok := c.findInNode(c.root, value, nil)
	if !ok {
		return nil, false
	}
	last := path[len(path)-1]
	newValue := f(last.n.values[last.idx])
	last.n.values[last.idx] = newValue
	c.ensureSortedOrder(path)
	return newValue, true
}

// UpdateInPlace looks up a value order-equivalent and equal to value
// and, if present, invokes f with it so the caller can mutate it
// through its own interior fields, then re-checks sorted order (since
// the mutation may have changed the value's order key) and returns the
// value. If no matching value exists, UpdateInPlace returns
// (nil, false).
func (c *Collection) UpdateInPlace(value interface{}, f func(interface{})) (interface{}, bool) {
	defer c.observe("update")()

	path, ok := c.findInNode(c.root, value, nil)
	if !ok {
		return nil, false
	}
	last := path[len(path)-1]
	cur := last.n.values[last.idx]
	f(cur)
	c.ensureSortedOrder(path)
	return cur, true
}

// ensureSortedOrder checks the value at path against its immediate
// neighbors in sorted order and, if it now falls outside of them,
// removes and reinserts it so the collection's order invariant holds
// after an in-place value mutation.
func (c *Collection) ensureSortedOrder(path Path) {
	last := path[len(path)-1]
	value := last.n.values[last.idx]

	inOrder := true
	if pred, ok := c.predecessor(path); ok && c.orderCmp(pred, value) > 0 {
		inOrder = false
	}
	if succ, ok := c.successor(path); ok && c.orderCmp(value, succ) > 0 {
		inOrder = false
	}
	if inOrder {
		return
	}

	c.removeAtPath(path)
	c.count--
	c.Insert(value)
}

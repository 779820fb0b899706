package sorted

// Handle is an opaque reference to a previously located value,
// returned by FindPath and consumed by SetValueAtPath. It lets a
// caller that already knows a value's ordering key (SortedMap knows
// the tuple it is looking for without having to re-derive it from
// scratch) update that value without a second full tree walk.
type Handle struct {
	path Path
}

// FindPath locates a value order-equivalent and equal to value and
// returns a Handle to it, or ok=false if no such value exists.
func (c *Collection) FindPath(value interface{}) (Handle, bool) {
	path, ok := c.findInNode(c.root, value, nil)
	return Handle{path: path}, ok
}

// SetValueAtPath overwrites the value h points at with newValue and
// repositions it if the replacement's ordering key moved it outside
// its former neighbors.
func (c *Collection) SetValueAtPath(h Handle, newValue interface{}) {
	last := h.path[len(h.path)-1]
	last.n.values[last.idx] = newValue
	c.ensureSortedOrder(h.path)
}

package sorted

// lowerBound returns the first index i such that
// orderCmp(values[i], value) >= 0, i.e. the leftmost position value
// could occupy without disturbing order.
func (c *Collection) lowerBound(values []interface{}, value interface{}) int {
	lo, hi := 0, len(values)
	for lo < hi {
		mid := (lo + hi) / 2
		if c.orderCmp(values[mid], value) < 0 {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// upperBound returns the first index i such that
// orderCmp(values[i], value) > 0, i.e. the rightmost position value
// could occupy: ties with an order-equivalent value break to the
// right, so a run of equal values always grows on its right edge.
func (c *Collection) upperBound(values []interface{}, value interface{}) int {
	n := len(values)
	if n == 0 {
		return 0
	}
	if c.orderCmp(value, values[0]) < 0 {
		return 0
	}
	if c.orderCmp(value, values[n-1]) >= 0 {
		return n
	}
	lo, hi := 0, n
	for lo < hi {
		mid := (lo + hi) / 2
		if c.orderCmp(values[mid], value) <= 0 {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// findInNode performs a duplicate-aware search for a value that is
// order-equivalent AND equal (per equalCmp) to value, starting at n.
// It scans the whole run of order-equivalent positions in each node it
// visits -- including the children interleaved within that run -- since
// an equal-order duplicate can live in a sibling value slot or in a
// child subtree wedged between two equal-order values.
func (c *Collection) findInNode(n *node, value interface{}, ancestors Path) (Path, bool) {
	lb := c.lowerBound(n.values, value)

	i := lb
	for ; i < len(n.values); i++ {
		if !n.isLeaf() {
			if p, ok := c.findInNode(n.children[i], value, withFrame(ancestors, pathEntry{n: n, idx: i})); ok {
				return p, true
			}
		}
		if c.equalCmp(n.values[i], value) {
			return withFrame(ancestors, pathEntry{n: n, idx: i}), true
		}
		if c.orderCmp(value, n.values[i]) != 0 {
			break
		}
	}

	for j := lb - 1; j >= 0; j-- {
		if c.orderCmp(value, n.values[j]) != 0 {
			break
		}
		if c.equalCmp(n.values[j], value) {
			return withFrame(ancestors, pathEntry{n: n, idx: j}), true
		}
		if !n.isLeaf() {
			if p, ok := c.findInNode(n.children[j], value, withFrame(ancestors, pathEntry{n: n, idx: j})); ok {
				return p, true
			}
		}
	}

	if n.isLeaf() {
		return nil, false
	}
	// i reached len(n.values) either immediately (lb started there) or
	// because the forward scan ran through a trailing equal-order run
	// without hitting a non-equal order to break on; either way the
	// rightmost child of that run may still hold the match.
	if i == len(n.values) {
		return c.findInNode(n.children[i], value, withFrame(ancestors, pathEntry{n: n, idx: i}))
	}
	return nil, false
}

// rightmostPath walks to the rightmost leaf value reachable from n,
// appending frames onto ancestors.
func (c *Collection) rightmostPath(n *node, ancestors Path) Path {
	for !n.isLeaf() {
		idx := len(n.children) - 1
		ancestors = withFrame(ancestors, pathEntry{n: n, idx: idx})
		n = n.children[idx]
	}
	return withFrame(ancestors, pathEntry{n: n, idx: len(n.values) - 1})
}

// leftmostPath walks to the leftmost leaf value reachable from n,
// appending frames onto ancestors.
func (c *Collection) leftmostPath(n *node, ancestors Path) Path {
	for !n.isLeaf() {
		ancestors = withFrame(ancestors, pathEntry{n: n, idx: 0})
		n = n.children[0]
	}
	return withFrame(ancestors, pathEntry{n: n, idx: 0})
}

// predecessor returns the in-order value immediately before the one
// path points at, if any.
func (c *Collection) predecessor(path Path) (interface{}, bool) {
	last := path[len(path)-1]
	if !last.n.isLeaf() {
		p := c.rightmostPath(last.n.children[last.idx], nil)
		e := p[len(p)-1]
		return e.n.values[e.idx], true
	}
	if last.idx > 0 {
		return last.n.values[last.idx-1], true
	}
	for i := len(path) - 2; i >= 0; i-- {
		if path[i].idx > 0 {
			return path[i].n.values[path[i].idx-1], true
		}
	}
	return nil, false
}

// successor returns the in-order value immediately after the one path
// points at, if any.
func (c *Collection) successor(path Path) (interface{}, bool) {
	last := path[len(path)-1]
	if !last.n.isLeaf() {
		p := c.leftmostPath(last.n.children[last.idx+1], nil)
		e := p[len(p)-1]
		return e.n.values[e.idx], true
	}
	if last.idx < len(last.n.values)-1 {
		return last.n.values[last.idx+1], true
	}
	for i := len(path) - 2; i >= 0; i-- {
		if path[i].idx < len(path[i].n.values) {
			return path[i].n.values[path[i].idx], true
		}
	}
	return nil, false
}

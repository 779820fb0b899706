package sorted

// Remove deletes one value that is order-equivalent and equal to
// value, if one exists. Removing an absent value is a silent no-op.
// Among several equal duplicates, which physical copy is removed is
// unspecified.
func (c *Collection) Remove(value interface{}) {
	defer c.observe("remove")()

	path, ok := c.findInNode(c.root, value, nil)
	if !ok {
		return
	}
	c.removeAtPath(path)
	c.count--
}

// removeAtPath splices out the value path points at and rebalances.
// For a leaf, that is a direct splice. For an internal node, the
// removed slot is instead refilled with its in-order predecessor (the
// rightmost value of the left child subtree), or the in-order
// successor if that subtree's rightmost leaf turns out to already be
// empty, and rebalancing starts from wherever the donor value was
// actually spliced out.
func (c *Collection) removeAtPath(path Path) {
	last := path[len(path)-1]
	n := last.n
	idx := last.idx

	if n.isLeaf() {
		n.values = removeValueAt(n.values, idx)
		c.rebalance(path[:len(path)-1], n)
		return
	}

	donorPath := c.rightmostPath(n.children[idx], nil)
	donorLeaf := donorPath[len(donorPath)-1].n
	childIdx := idx
	if len(donorLeaf.values) == 0 {
		donorPath = c.leftmostPath(n.children[idx+1], nil)
		donorLeaf = donorPath[len(donorPath)-1].n
		childIdx = idx + 1
	}
	donorIdx := donorPath[len(donorPath)-1].idx
	donorValue := donorLeaf.values[donorIdx]

	n.values[idx] = donorValue
	donorLeaf.values = removeValueAt(donorLeaf.values, donorIdx)

	ancestors := withFrame(path[:len(path)-1], pathEntry{n: n, idx: childIdx})
	ancestors = append(ancestors, donorPath[:len(donorPath)-1]...)

	c.rebalance(ancestors, donorLeaf)
}

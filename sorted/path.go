package sorted

// pathEntry is one level of a root-to-node walk: n is the node visited
// at that level, and idx is either the index of a value located inside
// n (only meaningful on the last entry of a Path) or the index of the
// child that the walk descended into from n (every other entry).
type pathEntry struct {
	n   *node
	idx int
}

// Path is a root-to-node walk, used by lookup, removal and the
// "ensure sorted order" repair so that a single search can drive all
// three without re-walking the tree.
type Path []pathEntry

// withFrame returns a new Path with f appended, always copying so that
// sibling recursive calls sharing a common prefix never alias or
// clobber each other's backing array.
func withFrame(p Path, f pathEntry) Path {
	out := make(Path, len(p)+1)
	copy(out, p)
	out[len(p)] = f
	return out
}

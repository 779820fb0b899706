package sorted

func insertValueAt(s []interface{}, idx int, v interface{}) []interface{} {
	s = append(s, nil)
	copy(s[idx+1:], s[idx:])
	s[idx] = v
	return s
}

func removeValueAt(s []interface{}, idx int) []interface{} {
	return append(s[:idx], s[idx+1:]...)
}

func removeChildAt(s []*node, idx int) []*node {
	return append(s[:idx], s[idx+1:]...)
}

package sortedmap

import "fmt"

// OrderComparer reports the relative order of two ordering keys,
// following the same negative/zero/positive convention as
// sorted.OrderComparer.
type OrderComparer func(a, b interface{}) int

// naturalCompare is the default OrderComparer: Go's natural <, >
// applied to whichever of the common ordering-key types it is handed.
func naturalCompare(a, b interface{}) int {
	switch av := a.(type) {
	case int:
		return compareOrdered(av, b.(int))
	case int64:
		return compareOrdered(av, b.(int64))
	case uint64:
		return compareOrdered(av, b.(uint64))
	case float64:
		return compareOrdered(av, b.(float64))
	case string:
		return compareOrdered(av, b.(string))
	default:
		panic(fmt.Sprintf("sortedmap: unsupported ordering key type %T", a))
	}
}

func compareOrdered[T int | int64 | uint64 | float64 | string](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

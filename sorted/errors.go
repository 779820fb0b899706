package sorted

import "fmt"

// recoverErr turns a recovered panic value into an error, so LoadAll
// can aggregate a bad item's comparator panic instead of crashing the
// whole batch.
func recoverErr(r interface{}) error {
	if err, ok := r.(error); ok {
		return fmt.Errorf("sorted: %w", err)
	}
	return fmt.Errorf("sorted: %v", r)
}

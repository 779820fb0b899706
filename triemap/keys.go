package triemap

import "fmt"

// validKey reports whether key is one of the recognized key categories
// (int, int64, uint64, string). Set/Get/Remove/Update treat an
// unsupported key type as fatal per the error handling design; LoadAll
// instead collects it as a per-item error so one malformed entry does
// not abort a whole batch.
func validKey(key interface{}) error {
	switch key.(type) {
	case int, int64, uint64, string:
		return nil
	default:
		return fmt.Errorf("triemap: unsupported key type %T", key)
	}
}

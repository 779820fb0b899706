package serial

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"github.com/optakt/containers/sorted"
)

// SortedCollectionSnapshot is the plain, CBOR-encodable form of a
// sorted.Collection. The comparator itself is code, not data, and is
// never part of the snapshot; the caller supplies a fresh one when
// decoding.
type SortedCollectionSnapshot struct {
	Values []interface{} `cbor:"values"`
}

// EncodeSortedCollection captures c's live values, in sorted order, as
// CBOR bytes.
func EncodeSortedCollection(c *sorted.Collection) ([]byte, error) {
	snap := SortedCollectionSnapshot{Values: make([]interface{}, 0, c.Size())}
	c.ForEach(func(value interface{}) {
		snap.Values = append(snap.Values, value)
	})
	data, err := cbor.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("serial: encode sorted collection: %w", err)
	}
	return data, nil
}

// DecodeSortedCollection rebuilds a sorted.Collection ordered by cmp
// from bytes produced by EncodeSortedCollection.
func DecodeSortedCollection(data []byte, cmp sorted.OrderComparer, opts ...sorted.Option) (*sorted.Collection, error) {
	var snap SortedCollectionSnapshot
	if err := cbor.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("serial: decode sorted collection: %w", err)
	}
	c := sorted.New(cmp, opts...)
	if err := c.LoadAll(snap.Values); err != nil {
		return nil, fmt.Errorf("serial: decode sorted collection: %w", err)
	}
	return c, nil
}

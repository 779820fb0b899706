package serial

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"github.com/optakt/containers/sortedmap"
)

// SortedMapSnapshot is the plain, CBOR-encodable form of a
// sortedmap.Map. getOrderingKey is code, not data, and is supplied
// fresh by the caller when decoding.
type SortedMapSnapshot struct {
	Entries []sortedmap.Entry `cbor:"entries"`
}

// EncodeSortedMap captures m's live entries, in ascending ordering-key
// order, as CBOR bytes.
func EncodeSortedMap(m *sortedmap.Map) ([]byte, error) {
	snap := SortedMapSnapshot{Entries: m.Entries()}
	data, err := cbor.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("serial: encode sorted map: %w", err)
	}
	return data, nil
}

// DecodeSortedMap rebuilds a sortedmap.Map from bytes produced by
// EncodeSortedMap, re-deriving each entry's ordering key via
// getOrderingKey exactly as a fresh Set would.
func DecodeSortedMap(data []byte, getOrderingKey func(value interface{}) interface{}, opts ...sortedmap.Option) (*sortedmap.Map, error) {
	var snap SortedMapSnapshot
	if err := cbor.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("serial: decode sorted map: %w", err)
	}
	m := sortedmap.New(getOrderingKey, opts...)
	for _, e := range snap.Entries {
		m.Set(e.Key, e.Value)
	}
	return m, nil
}

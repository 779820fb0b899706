// Package serial implements the snapshot contract described by the
// serialization section of the design: every container's live state
// can be read out as a plain, shallow-copyable sequence of entries and
// a fresh, equivalent container rebuilt from that sequence. It is
// grounded on the teacher's CBOR-based ledger codec
// (codec/zbor/codec.go), using github.com/fxamacker/cbor/v2 the same
// way. Snapshotting is value-level, not tree-shape-level: a restored
// container is observationally identical to the original (same
// entries, same size) but its internal node layout is whatever its own
// construction produces, not a byte-for-byte copy of the original's
// nodes. Values travel through CBOR's interface{} decoding, so a
// plain Go int stored before encoding comes back as a uint64 (or
// int64, if negative) after decoding; callers whose comparators or
// ordering-key functions type-assert a concrete numeric type should
// account for this rather than assume the original type survives.
package serial

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"github.com/optakt/containers/triemap"
)

// TrieMapSnapshot is the plain, CBOR-encodable form of a triemap.Map.
type TrieMapSnapshot struct {
	Entries []triemap.Entry `cbor:"entries"`
}

// EncodeTrieMap captures m's live entries as CBOR bytes.
func EncodeTrieMap(m *triemap.Map) ([]byte, error) {
	snap := TrieMapSnapshot{Entries: make([]triemap.Entry, 0, m.Size())}
	m.ForEach(func(key, value interface{}) {
		snap.Entries = append(snap.Entries, triemap.Entry{Key: key, Value: value})
	})
	data, err := cbor.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("serial: encode trie map: %w", err)
	}
	return data, nil
}

// DecodeTrieMap rebuilds a triemap.Map from bytes produced by
// EncodeTrieMap.
func DecodeTrieMap(data []byte, opts ...triemap.Option) (*triemap.Map, error) {
	var snap TrieMapSnapshot
	if err := cbor.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("serial: decode trie map: %w", err)
	}
	m := triemap.New(opts...)
	if err := m.LoadAll(snap.Entries); err != nil {
		return nil, fmt.Errorf("serial: decode trie map: %w", err)
	}
	return m, nil
}

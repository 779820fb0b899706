package serial

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"github.com/optakt/containers/lru"
	"github.com/optakt/containers/sortedmap"
)

// LruCacheSnapshot is the plain, CBOR-encodable form of an lru.Cache.
type LruCacheSnapshot struct {
	Entries []lru.Entry `cbor:"entries"`
}

// EncodeLruCache captures c's live entries, from
// least-recently-touched to most-recently-touched, as CBOR bytes.
func EncodeLruCache(c *lru.Cache) ([]byte, error) {
	snap := LruCacheSnapshot{Entries: c.Entries()}
	data, err := cbor.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("serial: encode lru cache: %w", err)
	}
	return data, nil
}

// DecodeLruCache rebuilds an lru.Cache targeting suggestedSize from
// bytes produced by EncodeLruCache. Re-inserting entries oldest first
// reproduces the original's relative recency order, though the
// absolute recency stamps are freshly assigned.
func DecodeLruCache(data []byte, suggestedSize int, opts ...sortedmap.Option) (*lru.Cache, error) {
	var snap LruCacheSnapshot
	if err := cbor.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("serial: decode lru cache: %w", err)
	}
	c := lru.New(suggestedSize, opts...)
	for _, e := range snap.Entries {
		c.Set(e.Key, e.Value)
	}
	return c, nil
}

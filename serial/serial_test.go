package serial_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optakt/containers/lru"
	"github.com/optakt/containers/serial"
	"github.com/optakt/containers/sorted"
	"github.com/optakt/containers/sortedmap"
	"github.com/optakt/containers/triemap"
)

func TestTrieMapRoundTrip(t *testing.T) {
	m := triemap.New()
	m.Set("a", "1")
	m.Set("b", "2")
	m.Set("c", "3")

	data, err := serial.EncodeTrieMap(m)
	require.NoError(t, err)

	restored, err := serial.DecodeTrieMap(data)
	require.NoError(t, err)

	assert.Equal(t, m.Size(), restored.Size())
	v, ok := restored.Get("b")
	require.True(t, ok)
	assert.Equal(t, "2", v)
}

// uint64Compare orders the uint64 values a CBOR round trip actually
// produces for originally-int values; see the package doc on numeric
// type promotion through interface{}.
func uint64Compare(a, b interface{}) int {
	av, bv := a.(uint64), b.(uint64)
	switch {
	case av < bv:
		return -1
	case av > bv:
		return 1
	default:
		return 0
	}
}

func TestSortedCollectionRoundTrip(t *testing.T) {
	c := sorted.New(uint64Compare)
	for _, v := range []uint64{5, 1, 9, 3, 7} {
		c.Insert(v)
	}

	data, err := serial.EncodeSortedCollection(c)
	require.NoError(t, err)

	restored, err := serial.DecodeSortedCollection(data, uint64Compare)
	require.NoError(t, err)

	assert.Equal(t, c.Size(), restored.Size())
	var got []uint64
	restored.ForEach(func(v interface{}) { got = append(got, v.(uint64)) })
	assert.Equal(t, []uint64{1, 3, 5, 7, 9}, got)
}

func orderOf(v interface{}) interface{} { return v.(uint64) }

func TestSortedMapRoundTrip(t *testing.T) {
	m := sortedmap.New(orderOf)
	m.Set("a", uint64(3))
	m.Set("b", uint64(1))
	m.Set("c", uint64(2))

	data, err := serial.EncodeSortedMap(m)
	require.NoError(t, err)

	restored, err := serial.DecodeSortedMap(data, orderOf)
	require.NoError(t, err)

	assert.Equal(t, m.Size(), restored.Size())
	k, _, ok := restored.GetFirst()
	require.True(t, ok)
	assert.Equal(t, "b", k)
}

func TestLruCacheRoundTrip(t *testing.T) {
	c := lru.New(10)
	c.Set("x", "one")
	c.Set("y", "two")

	data, err := serial.EncodeLruCache(c)
	require.NoError(t, err)

	restored, err := serial.DecodeLruCache(data, 10)
	require.NoError(t, err)

	assert.Equal(t, c.Size(), restored.Size())
	v, ok := restored.Peek("x")
	require.True(t, ok)
	assert.Equal(t, "one", v)
}

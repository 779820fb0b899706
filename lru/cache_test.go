package lru_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optakt/containers/lru"
)

func collectValues(c *lru.Cache) []interface{} {
	var out []interface{}
	it := c.Iterate()
	for {
		_, v, ok := it.Next()
		if !ok {
			return out
		}
		out = append(out, v)
	}
}

// TestCache_EvictsLeastRecentlyTouched exercises the first half of S4:
// inserting five entries into a capacity-4 cache evicts the oldest. The
// Get-refreshes-recency half is TestCache_GetBumpsRecency.
func TestCache_EvictsLeastRecentlyTouched(t *testing.T) {
	c := lru.New(4)
	c.Set("a", "a")
	c.Set("b", "b")
	c.Set("c", "c")
	c.Set("d", "d")
	c.Set("e", "e")

	assert.Equal(t, []interface{}{"b", "c", "d", "e"}, collectValues(c))
	assert.Equal(t, 4, c.Size())
}

func TestCache_GetBumpsRecency(t *testing.T) {
	c := lru.New(4)
	c.Set("a", "a")
	c.Set("b", "b")
	c.Set("c", "c")
	c.Set("d", "d")

	_, ok := c.Get("a")
	require.True(t, ok)

	c.Set("e", "e")

	assert.Equal(t, []interface{}{"c", "d", "a", "e"}, collectValues(c))
}

// TestCache_UpdateBumpsRecency exercises S5: Update both replaces the
// payload and refreshes recency like Get does.
func TestCache_UpdateBumpsRecency(t *testing.T) {
	c := lru.New(4)
	c.Set("a", "a")
	c.Set("b", "b")
	c.Set("c", "c")

	_, ok := c.Update("a", func(interface{}) interface{} { return "f" })
	require.True(t, ok)

	c.Set("d", "d")
	c.Set("e", "e")

	assert.Equal(t, []interface{}{"c", "f", "d", "e"}, collectValues(c))
	assert.Equal(t, 4, c.Size())
}

func TestCache_PeekDoesNotBumpRecency(t *testing.T) {
	c := lru.New(4)
	c.Set("a", "a")
	c.Set("b", "b")
	c.Set("c", "c")
	c.Set("d", "d")

	v, ok := c.Peek("a")
	require.True(t, ok)
	assert.Equal(t, "a", v)

	c.Set("e", "e")

	// a was only peeked, not touched, so it is still the oldest and is
	// the one evicted.
	assert.Equal(t, []interface{}{"b", "c", "d", "e"}, collectValues(c))
}

func TestCache_RemoveAndHas(t *testing.T) {
	c := lru.New(4)
	c.Set("a", 1)
	assert.True(t, c.Has("a"))

	c.Remove("a")
	assert.False(t, c.Has("a"))
	assert.Equal(t, 0, c.Size())

	// Removing an absent key is a silent no-op.
	c.Remove("a")
	assert.Equal(t, 0, c.Size())
}

func TestCache_UpdateAbsentKeyIsNoOp(t *testing.T) {
	c := lru.New(4)
	_, ok := c.Update("missing", func(v interface{}) interface{} { return v })
	assert.False(t, ok)
}

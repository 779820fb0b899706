package sorted_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optakt/containers/internal/fixtures"
	"github.com/optakt/containers/sorted"
)

func intCompare(a, b interface{}) int {
	return a.(int) - b.(int)
}

func collect(c *sorted.Collection) []int {
	out := make([]int, 0, c.Size())
	c.Iterate().ForEach(func(v interface{}) { out = append(out, v.(int)) })
	return out
}

func TestCollection_InsertKeepsTotalOrder(t *testing.T) {
	c := sorted.New(intCompare, sorted.WithMaxItemsPerLevel(4))
	r := rand.New(rand.NewSource(fixtures.GenericSeed))

	values := make([]int, 200)
	for i := range values {
		values[i] = i
	}
	r.Shuffle(len(values), func(i, j int) { values[i], values[j] = values[j], values[i] })

	for _, v := range values {
		c.Insert(v)
	}

	assert.Equal(t, 200, c.Size())
	got := collect(c)
	for i := range got {
		assert.Equal(t, i, got[i])
	}
}

func TestCollection_DuplicatesPermitted(t *testing.T) {
	c := sorted.New(intCompare, sorted.WithMaxItemsPerLevel(4))
	for i := 0; i < 3; i++ {
		c.Insert(5)
	}
	c.Insert(1)
	c.Insert(9)

	assert.Equal(t, 5, c.Size())
	assert.True(t, c.Has(5))

	got := collect(c)
	assert.Equal(t, []int{1, 5, 5, 5, 9}, got)
}

func TestCollection_GetFirstGetLast(t *testing.T) {
	c := sorted.New(intCompare, sorted.WithMaxItemsPerLevel(4))
	_, ok := c.GetFirst()
	assert.False(t, ok)

	for _, v := range []int{5, 1, 9, 3, 7} {
		c.Insert(v)
	}

	first, ok := c.GetFirst()
	require.True(t, ok)
	assert.Equal(t, 1, first)

	last, ok := c.GetLast()
	require.True(t, ok)
	assert.Equal(t, 9, last)
}

func TestCollection_RemoveMaintainsOrderAndShape(t *testing.T) {
	c := sorted.New(intCompare, sorted.WithMaxItemsPerLevel(4))
	for i := 0; i < 100; i++ {
		c.Insert(i)
	}

	for i := 0; i < 100; i += 2 {
		c.Remove(i)
	}

	assert.Equal(t, 50, c.Size())
	got := collect(c)
	want := make([]int, 0, 50)
	for i := 1; i < 100; i += 2 {
		want = append(want, i)
	}
	assert.Equal(t, want, got)

	// A small branching factor with 50 live values must still produce a
	// multi-level tree.
	assert.Greater(t, c.Depth(), 1)
}

func TestCollection_RemoveAbsentValueIsNoOp(t *testing.T) {
	c := sorted.New(intCompare, sorted.WithMaxItemsPerLevel(4))
	c.Insert(1)
	c.Remove(42)
	assert.Equal(t, 1, c.Size())
}

func TestCollection_RemoveDownToEmpty(t *testing.T) {
	c := sorted.New(intCompare, sorted.WithMaxItemsPerLevel(4))
	values := []int{5, 1, 9, 3, 7, 2, 8, 4, 6, 0}
	for _, v := range values {
		c.Insert(v)
	}
	for _, v := range values {
		c.Remove(v)
	}
	assert.Equal(t, 0, c.Size())
	_, ok := c.GetFirst()
	assert.False(t, ok)
}

func TestCollection_IterateReverse(t *testing.T) {
	c := sorted.New(intCompare, sorted.WithMaxItemsPerLevel(4))
	for i := 0; i < 30; i++ {
		c.Insert(i)
	}

	var got []int
	it := c.IterateReverse()
	for {
		v, ok := it.Next()
		if !ok {
			break
		}
		got = append(got, v.(int))
	}
	for i, v := range got {
		assert.Equal(t, 29-i, v)
	}
}

func TestCollection_LoadAllAggregatesErrors(t *testing.T) {
	c := sorted.New(intCompare, sorted.WithMaxItemsPerLevel(4))
	err := c.LoadAll([]interface{}{1, 2, "bad", 3})
	require.Error(t, err)
	assert.Equal(t, 3, c.Size())
}

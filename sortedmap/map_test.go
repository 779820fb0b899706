package sortedmap_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optakt/containers/sortedmap"
)

type record struct {
	data  string
	order interface{}
}

func orderOf(v interface{}) interface{} {
	return v.(record).order
}

func keyOf(i int) string {
	return fmt.Sprintf("data %d", i)
}

func newFilledMap(t *testing.T, order func(i int) int) *sortedmap.Map {
	t.Helper()
	m := sortedmap.New(orderOf)
	for i := 1; i <= 20; i++ {
		m.Set(keyOf(i), record{data: fmt.Sprintf("%d", i), order: order(i)})
	}
	return m
}

func collectOrders(m *sortedmap.Map) []int {
	out := make([]int, 0, m.Size())
	it := m.Iterate()
	for {
		_, v, ok := it.Next()
		if !ok {
			return out
		}
		out = append(out, v.(record).order.(int))
	}
}

// TestMap_NaturalOrderForwardAndReverseInsertion exercises S1: whether
// entries are inserted in ascending or descending key order, iteration
// always yields ascending ordering-key order.
func TestMap_NaturalOrderForwardAndReverseInsertion(t *testing.T) {
	forward := sortedmap.New(orderOf)
	for i := 1; i <= 20; i++ {
		forward.Set(keyOf(i), record{data: fmt.Sprintf("%d", i), order: i})
	}

	reverse := sortedmap.New(orderOf)
	for i := 20; i >= 1; i-- {
		reverse.Set(keyOf(i), record{data: fmt.Sprintf("%d", i), order: i})
	}

	want := make([]int, 20)
	for i := range want {
		want[i] = i + 1
	}
	assert.Equal(t, want, collectOrders(forward))
	assert.Equal(t, want, collectOrders(reverse))
	assert.Equal(t, 20, forward.Size())
	assert.Equal(t, 20, reverse.Size())
}

// TestMap_UpdateReordersIteration exercises S2: moving an entry's
// ordering key to the end and to the front, each on a fresh S1 state,
// and updating an absent key. The fractional-order sub-case is covered
// by TestMap_UpdateFractionalOrder.
func TestMap_UpdateReordersIteration(t *testing.T) {
	t.Run("move to end", func(t *testing.T) {
		m := newFilledMap(t, func(i int) int { return i })
		_, ok := m.Update(keyOf(10), func(v interface{}) interface{} {
			r := v.(record)
			r.order = 25
			return r
		})
		require.True(t, ok)

		want := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 25}
		assert.Equal(t, want, collectOrders(m))
		assert.Equal(t, 20, m.Size())
	})

	t.Run("move to front", func(t *testing.T) {
		m := newFilledMap(t, func(i int) int { return i })
		_, ok := m.Update(keyOf(15), func(v interface{}) interface{} {
			r := v.(record)
			r.order = -1
			return r
		})
		require.True(t, ok)

		want := []int{-1, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 16, 17, 18, 19, 20}
		assert.Equal(t, want, collectOrders(m))
		assert.Equal(t, 20, m.Size())
	})

	t.Run("absent key is a no-op", func(t *testing.T) {
		m := newFilledMap(t, func(i int) int { return i })
		_, ok := m.Update("data 999", func(v interface{}) interface{} { return v })
		assert.False(t, ok)
		assert.Equal(t, 20, m.Size())
	})
}

// TestMap_UpdateFractionalOrder covers S2's fractional-order sub-case
// separately since its ordering key is a float64, not an int.
func TestMap_UpdateFractionalOrder(t *testing.T) {
	m := sortedmap.New(orderOf)
	for i := 1; i <= 20; i++ {
		m.Set(keyOf(i), record{data: fmt.Sprintf("%d", i), order: float64(i)})
	}

	_, ok := m.Update(keyOf(1), func(v interface{}) interface{} {
		r := v.(record)
		r.order = 10.5
		return r
	})
	require.True(t, ok)

	var got []float64
	it := m.Iterate()
	for {
		_, v, ok := it.Next()
		if !ok {
			break
		}
		got = append(got, v.(record).order.(float64))
	}

	want := []float64{2, 3, 4, 5, 6, 7, 8, 9, 10, 10.5, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20}
	assert.Equal(t, want, got)
	assert.Equal(t, 20, m.Size())
}

// TestMap_CustomComparator exercises S3: a descending comparator
// reverses iteration order entirely.
func TestMap_CustomComparator(t *testing.T) {
	m := sortedmap.New(orderOf, sortedmap.WithOrderComparer(func(a, b interface{}) int {
		return b.(int) - a.(int)
	}))
	for i := 1; i <= 20; i++ {
		m.Set(keyOf(i), record{data: fmt.Sprintf("%d", i), order: i})
	}

	want := make([]int, 20)
	for i := range want {
		want[i] = 20 - i
	}
	assert.Equal(t, want, collectOrders(m))
}

func TestMap_GetFirstGetLast(t *testing.T) {
	m := newFilledMap(t, func(i int) int { return i })

	k, v, ok := m.GetFirst()
	require.True(t, ok)
	assert.Equal(t, keyOf(1), k)
	assert.Equal(t, 1, v.(record).order)

	k, v, ok = m.GetLast()
	require.True(t, ok)
	assert.Equal(t, keyOf(20), k)
	assert.Equal(t, 20, v.(record).order)
}

func TestMap_RemoveAndHas(t *testing.T) {
	m := newFilledMap(t, func(i int) int { return i })
	assert.True(t, m.Has(keyOf(5)))

	m.Remove(keyOf(5))
	assert.False(t, m.Has(keyOf(5)))
	assert.Equal(t, 19, m.Size())

	// Removing an absent key is a silent no-op.
	m.Remove(keyOf(5))
	assert.Equal(t, 19, m.Size())
}

func TestMap_ReverseIterate(t *testing.T) {
	m := newFilledMap(t, func(i int) int { return i })

	var got []int
	it := m.IterateReverse()
	for {
		_, v, ok := it.Next()
		if !ok {
			break
		}
		got = append(got, v.(record).order.(int))
	}

	want := make([]int, 20)
	for i := range want {
		want[i] = 20 - i
	}
	assert.Equal(t, want, got)
}

// TestMap_DuplicateOrderingKeysStayConsistent guards against the
// byKey/byOrder backing structures desyncing when several keys share
// the same ordering key: every key must remain independently
// removable and updatable even though they all occupy the same
// equal-order run in the backing sorted collection.
func TestMap_DuplicateOrderingKeysStayConsistent(t *testing.T) {
	m := sortedmap.New(orderOf)
	for i := 0; i < 7; i++ {
		m.Set(keyOf(i), record{data: fmt.Sprintf("%d", i), order: 0})
	}
	require.Equal(t, 7, m.Size())

	for i := 0; i < 7; i++ {
		assert.True(t, m.Has(keyOf(i)), "key %d should be present", i)
	}

	m.Remove(keyOf(3))
	assert.False(t, m.Has(keyOf(3)))
	assert.Equal(t, 6, m.Size())

	_, ok := m.Update(keyOf(5), func(v interface{}) interface{} {
		r := v.(record)
		r.data = "updated"
		return r
	})
	require.True(t, ok)
	v, ok := m.Get(keyOf(5))
	require.True(t, ok)
	assert.Equal(t, "updated", v.(record).data)

	for i := 0; i < 7; i++ {
		if i == 3 {
			continue
		}
		assert.True(t, m.Has(keyOf(i)), "key %d should still be present", i)
	}
}

func TestMap_IterateKeysAndValues(t *testing.T) {
	m := newFilledMap(t, func(i int) int { return i })

	keys := m.IterateKeys().Iterate()
	var gotKeys []string
	for {
		v, ok := keys.Next()
		if !ok {
			break
		}
		gotKeys = append(gotKeys, v.(string))
	}
	assert.Equal(t, keyOf(1), gotKeys[0])
	assert.Len(t, gotKeys, 20)

	values := m.IterateValues().Iterate()
	count := 0
	for {
		_, ok := values.Next()
		if !ok {
			break
		}
		count++
	}
	assert.Equal(t, 20, count)
}

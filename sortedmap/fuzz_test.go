package sortedmap_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optakt/containers/internal/fixtures"
	"github.com/optakt/containers/sortedmap"
)

// TestMap_FuzzStream exercises S7: a seeded mixed stream of inserts and
// removes of random 32-bit keys checked against a plain Go map oracle.
func TestMap_FuzzStream(t *testing.T) {
	r := rand.New(rand.NewSource(fixtures.GenericSeed))
	m := sortedmap.New(func(v interface{}) interface{} { return v.(int64) })
	oracle := make(map[int64]int64)

	const steps = 5000
	for i := 0; i < steps; i++ {
		key := int64(r.Int31())
		if r.Intn(3) != 0 || len(oracle) == 0 {
			m.Set(key, key)
			oracle[key] = key
			continue
		}
		// Remove a key known to the oracle roughly a third of the time.
		for k := range oracle {
			m.Remove(k)
			delete(oracle, k)
			break
		}
	}

	require.Equal(t, len(oracle), m.Size())

	for k, want := range oracle {
		got, ok := m.Get(k)
		require.True(t, ok)
		assert.Equal(t, want, got)
	}

	var prev int64
	first := true
	it := m.Iterate()
	for {
		_, v, ok := it.Next()
		if !ok {
			break
		}
		cur := v.(int64)
		if !first {
			assert.LessOrEqual(t, prev, cur)
		}
		prev = cur
		first = false
	}
}

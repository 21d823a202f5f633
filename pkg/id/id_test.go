package id

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestULIDGenerator_NewID(t *testing.T) {
	gen := NewULIDGenerator()

	t.Run("ids are unique", func(t *testing.T) {
		seen := make(map[string]struct{})
		for i := 0; i < 1000; i++ {
			id := gen.NewID()
			require.NotEmpty(t, id)

			_, dup := seen[id]
			require.False(t, dup, "duplicate id %s", id)
			seen[id] = struct{}{}
		}
	})

	t.Run("ids are sortable in generation order", func(t *testing.T) {
		prev := gen.NewID()
		for i := 0; i < 100; i++ {
			next := gen.NewID()
			assert.Less(t, prev, next)
			prev = next
		}
	})
}

func TestSystemClock_Now(t *testing.T) {
	clock := NewSystemClock()

	prev := clock.Now()
	for i := 0; i < 1000; i++ {
		now := clock.Now()
		assert.GreaterOrEqual(t, now, prev)
		prev = now
	}
}

// internal/vowl/cache_test.go
package vowl

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_ResolveDeduplicates(t *testing.T) {
	c := NewCache(0)

	inserted, first, err := c.Resolve("x")
	require.NoError(t, err)
	assert.True(t, inserted)

	for range 5 {
		inserted, idx, err := c.Resolve("x")
		require.NoError(t, err)
		assert.False(t, inserted, "only the first call may insert")
		assert.Equal(t, first, idx)
	}
	assert.Equal(t, 1, c.Len())
}

func TestCache_IndicesAreDense(t *testing.T) {
	c := NewCache(0)
	ids := []string{"a", "b", "a", "c", "b", "d"}
	for _, id := range ids {
		_, _, err := c.Resolve(id)
		require.NoError(t, err)
	}

	entries := c.Entries()
	require.Len(t, entries, 4)
	for i, e := range entries {
		assert.Equal(t, Index(i), e.Index)
		assert.Nil(t, e.Secondary)
	}
	assert.Equal(t, []string{"a", "b", "c", "d"}, []string{entries[0].ID, entries[1].ID, entries[2].ID, entries[3].ID})
}

func TestCache_LookupAndID(t *testing.T) {
	c := NewCache(0)
	_, idx, _ := c.Resolve("a")

	got, ok := c.Lookup("a")
	assert.True(t, ok)
	assert.Equal(t, idx, got)

	_, ok = c.Lookup("missing")
	assert.False(t, ok)
	assert.Equal(t, 1, c.Len(), "Lookup must not insert")

	id, ok := c.ID(idx)
	assert.True(t, ok)
	assert.Equal(t, "a", id)

	_, ok = c.ID(7)
	assert.False(t, ok)
}

func TestCache_Exhaustion(t *testing.T) {
	c := NewCache(2)
	_, _, err := c.Resolve("a")
	require.NoError(t, err)
	_, _, err = c.Resolve("b")
	require.NoError(t, err)

	// Known identifiers still resolve when the cache is full.
	_, idx, err := c.Resolve("a")
	require.NoError(t, err)
	assert.Equal(t, Index(0), idx)

	inserted, _, err := c.Resolve("c")
	require.Error(t, err)
	assert.False(t, inserted)
	assert.True(t, errors.Is(err, ErrIndexExhausted))

	var exhausted *ExhaustedError
	require.True(t, errors.As(err, &exhausted))
	assert.Equal(t, "c", exhausted.ID)
	assert.Equal(t, uint64(2), exhausted.Limit)
	assert.Equal(t, 2, c.Len())
}

func TestNewCache_DefaultLimit(t *testing.T) {
	assert.Equal(t, DefaultIndexLimit, NewCache(0).limit)
	assert.Equal(t, DefaultIndexLimit, NewCache(DefaultIndexLimit+10).limit)
	assert.Equal(t, uint64(10), NewCache(10).limit)
}

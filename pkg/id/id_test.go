package id

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIsUniqueAndSorted(t *testing.T) {
	t.Parallel()

	seen := map[string]bool{}
	prev := ""
	for i := 0; i < 1000; i++ {
		got := New()
		require.Len(t, got, 26)
		assert.False(t, seen[got], "duplicate id %s", got)
		seen[got] = true
		if prev != "" {
			assert.Less(t, prev, got)
		}
		prev = got
	}
}

func TestAtRoundTripsTime(t *testing.T) {
	t.Parallel()

	ts := time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)
	got, ok := Time(At(ts))
	require.True(t, ok)
	assert.True(t, got.Equal(ts))

	_, ok = Time("not-a-ulid")
	assert.False(t, ok)
}

func TestShort(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "abc", Short("abc"))
	assert.Equal(t, "12345678", Short("12345678"))
	assert.Equal(t, "ABCDEFGH", Short("01J000000000000000ABCDEFGH"))
}

package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_SetGet(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	require.NoError(t, m.Set(ctx, "k", map[string]int{"a": 1}, time.Minute))

	var got map[string]int
	found, err := m.Get(ctx, "k", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, map[string]int{"a": 1}, got)
}

func TestMemory_MissLeavesDestUntouched(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	got := "unchanged"
	found, err := m.Get(ctx, "absent", &got)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, "unchanged", got)
}

func TestMemory_TTLExpiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	m := NewMemoryWithClock(func() time.Time { return now })

	require.NoError(t, m.Set(ctx, "k", "v", 10*time.Minute))

	var got string
	found, err := m.Get(ctx, "k", &got)
	require.NoError(t, err)
	assert.True(t, found)

	// Advance past expiry; the entry reads as absent.
	now = now.Add(11 * time.Minute)
	found, err = m.Get(ctx, "k", &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMemory_DeleteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	require.NoError(t, m.Set(ctx, "k", "v", time.Minute))
	require.NoError(t, m.Delete(ctx, "k"))
	require.NoError(t, m.Delete(ctx, "k"))

	var got string
	found, err := m.Get(ctx, "k", &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMemory_FlushAll(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	require.NoError(t, m.Set(ctx, "a", 1, time.Minute))
	require.NoError(t, m.Set(ctx, "b", 2, time.Minute))

	require.NoError(t, m.FlushAll(ctx))
	assert.Equal(t, 0, m.Len())
}

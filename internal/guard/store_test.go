package guard

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_RecordAndCount(t *testing.T) {
	store := &MemoryStore{attempts: make(map[string]*attemptWindow)}
	base := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	window := 10 * time.Minute

	for i := 1; i <= 3; i++ {
		count, err := store.RecordAndCount(context.Background(), "contact:1.2.3.4", base.Add(time.Duration(i)*time.Second), window)
		require.NoError(t, err)
		assert.Equal(t, i, count)
	}
}

func TestMemoryStore_PrunesOutsideWindow(t *testing.T) {
	store := &MemoryStore{attempts: make(map[string]*attemptWindow)}
	base := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	window := 10 * time.Minute

	for i := 0; i < 5; i++ {
		_, err := store.RecordAndCount(context.Background(), "k", base, window)
		require.NoError(t, err)
	}

	count, err := store.RecordAndCount(context.Background(), "k", base.Add(window+time.Second), window)
	require.NoError(t, err)
	assert.Equal(t, 1, count, "stale attempts should be pruned before counting")
}

func TestMemoryStore_KeysAreIndependent(t *testing.T) {
	store := &MemoryStore{attempts: make(map[string]*attemptWindow)}
	now := time.Now()

	_, err := store.RecordAndCount(context.Background(), "contact:1.2.3.4", now, time.Minute)
	require.NoError(t, err)

	count, err := store.RecordAndCount(context.Background(), "careers:1.2.3.4", now, time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestPruneBefore_KeepsBoundary(t *testing.T) {
	threshold := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	kept := pruneBefore([]time.Time{
		threshold.Add(-time.Second),
		threshold,
		threshold.Add(time.Second),
	}, threshold)

	assert.Equal(t, []time.Time{threshold, threshold.Add(time.Second)}, kept)
}

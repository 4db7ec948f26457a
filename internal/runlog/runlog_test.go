package runlog

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := NewSQLiteStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteStore_RecordAndRecent(t *testing.T) {
	store := newTestStore(t)

	started := time.Date(2025, 11, 2, 6, 0, 0, 0, time.UTC)
	first := &Entry{
		ID:           uuid.New(),
		StartedAt:    started,
		FinishedAt:   started.Add(2 * time.Second),
		Status:       "SUCCESS",
		Credits:      4,
		Payments:     12,
		Installments: 18,
		Summaries:    5,
	}
	second := &Entry{
		ID:         uuid.New(),
		StartedAt:  started.Add(time.Hour),
		FinishedAt: started.Add(time.Hour + time.Second),
		Status:     "ERROR",
		Detail:     "could not get credits: open credits.csv: no such file",
	}

	require.NoError(t, store.Record(first))
	require.NoError(t, store.Record(second))

	entries, err := store.Recent(10)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// Newest first.
	assert.Equal(t, second.ID, entries[0].ID)
	assert.Equal(t, "ERROR", entries[0].Status)
	assert.Equal(t, second.Detail, entries[0].Detail)

	assert.Equal(t, first.ID, entries[1].ID)
	assert.Equal(t, "SUCCESS", entries[1].Status)
	assert.Equal(t, 4, entries[1].Credits)
	assert.Equal(t, 12, entries[1].Payments)
	assert.Equal(t, 18, entries[1].Installments)
	assert.Equal(t, 5, entries[1].Summaries)
}

func TestSQLiteStore_RecentLimit(t *testing.T) {
	store := newTestStore(t)

	base := time.Date(2025, 11, 2, 6, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		require.NoError(t, store.Record(&Entry{
			ID:         uuid.New(),
			StartedAt:  base.Add(time.Duration(i) * time.Minute),
			FinishedAt: base.Add(time.Duration(i)*time.Minute + time.Second),
			Status:     "SUCCESS",
		}))
	}

	entries, err := store.Recent(3)
	require.NoError(t, err)
	assert.Len(t, entries, 3)
}

func TestSQLiteStore_DuplicateIDRejected(t *testing.T) {
	store := newTestStore(t)

	id := uuid.New()
	entry := &Entry{ID: id, StartedAt: time.Now().UTC(), FinishedAt: time.Now().UTC(), Status: "SUCCESS"}
	require.NoError(t, store.Record(entry))
	assert.Error(t, store.Record(entry))
}

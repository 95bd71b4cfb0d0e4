// internal/importer/history_test.go
package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryStore_Add(t *testing.T) {
	db := setupTestDB(t)
	store := NewHistoryStore(db)

	h := &HistoryEntry{
		AttemptID:  1,
		Status:     HistoryImported,
		SourceName: "report.pdf",
		SourcePath: "/tmp/report.pdf",
		DestPath:   "PDFs/annual-report.pdf",
		SizeBytes:  500,
	}
	require.NoError(t, store.Add(h))
	assert.NotZero(t, h.ID, "ID should be set")
	assert.False(t, h.CreatedAt.IsZero(), "CreatedAt should be set")
}

func TestHistoryStore_List(t *testing.T) {
	db := setupTestDB(t)
	store := NewHistoryStore(db)

	require.NoError(t, store.Add(&HistoryEntry{AttemptID: 1, Status: HistoryImported, SourceName: "a.pdf", DestPath: "PDFs/a.pdf"}))
	require.NoError(t, store.Add(&HistoryEntry{AttemptID: 2, Status: HistoryFailed, SourceName: "b.pdf", Stage: "write", Reason: "disk full"}))
	require.NoError(t, store.Add(&HistoryEntry{AttemptID: 3, Status: HistoryImported, SourceName: "c.pdf", DestPath: "PDFs/c.pdf"}))

	t.Run("all newest first", func(t *testing.T) {
		results, err := store.List(HistoryFilter{})
		require.NoError(t, err)
		require.Len(t, results, 3)
		assert.Equal(t, int64(3), results[0].AttemptID)
		assert.Equal(t, int64(1), results[2].AttemptID)
	})

	t.Run("by status", func(t *testing.T) {
		status := HistoryFailed
		results, err := store.List(HistoryFilter{Status: &status})
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "write", results[0].Stage)
		assert.Equal(t, "disk full", results[0].Reason)
	})

	t.Run("limit", func(t *testing.T) {
		results, err := store.List(HistoryFilter{Limit: 2})
		require.NoError(t, err)
		assert.Len(t, results, 2)
	})
}

func TestMatch(t *testing.T) {
	entries := []*HistoryEntry{
		{ID: 1, SourceName: "scan0001.pdf", DestPath: "PDFs/annual-report.pdf"},
		{ID: 2, SourceName: "invoice-march.pdf", DestPath: "PDFs/invoice-march.pdf"},
		{ID: 3, SourceName: "Annual Report 2023.pdf", DestPath: "PDFs/Annual Report 2023.pdf"},
	}

	got := Match("annual report", entries)
	require.NotEmpty(t, got)
	for _, e := range got {
		assert.NotEqual(t, int64(2), e.ID, "unrelated entry should not match")
		assert.GreaterOrEqual(t, e.Score, MinMatchScore)
	}
	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i-1].Score, got[i].Score, "results should be sorted")
	}

	exact := Match("invoice-march.pdf", entries)
	require.NotEmpty(t, exact)
	assert.Equal(t, int64(2), exact[0].ID)
	assert.InDelta(t, 1.0, exact[0].Score, 0.0001)
}

func TestMatch_UsesDestinationName(t *testing.T) {
	entries := []*HistoryEntry{{ID: 1, SourceName: "scan0001.pdf", DestPath: "PDFs/annual-report.pdf"}}
	got := Match("annual-report", entries)
	require.Len(t, got, 1)
	assert.InDelta(t, 1.0, got[0].Score, 0.0001)
}

func TestMatch_NoEntries(t *testing.T) {
	assert.Empty(t, Match("anything", nil))
}

package storage

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"algocat/internal/domain"
	"algocat/internal/migration"
)

func newTestHistory(t *testing.T) *SQLHistory {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	// every connection to :memory: is a fresh database
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	_, err = migration.NewSchemaMigrator(db, migration.HistoryMigrations, nil).Run(context.Background())
	require.NoError(t, err)
	return NewSQLHistory(db, nil)
}

func TestSQLHistory_RecordAndRecent(t *testing.T) {
	ctx := context.Background()
	h := newTestHistory(t)

	older := sampleReport()
	older.RunID = "run-older"
	older.StartedAt = older.StartedAt.Add(-time.Hour)
	newer := sampleReport()
	newer.RunID = "run-newer"

	require.NoError(t, h.Record(ctx, older))
	require.NoError(t, h.Record(ctx, newer))

	runs, err := h.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "run-newer", runs[0].RunID)
	assert.Equal(t, "run-older", runs[1].RunID)
	assert.Equal(t, newer.Summary(), runs[0])
}

func TestSQLHistory_RecentLimit(t *testing.T) {
	ctx := context.Background()
	h := newTestHistory(t)

	for i, id := range []string{"a", "b", "c"} {
		r := sampleReport()
		r.RunID = id
		r.StartedAt = r.StartedAt.Add(time.Duration(i) * time.Minute)
		require.NoError(t, h.Record(ctx, r))
	}

	runs, err := h.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "c", runs[0].RunID)
}

func TestSQLHistory_RecentOrdersWithinOneSecond(t *testing.T) {
	ctx := context.Background()
	h := newTestHistory(t)

	whole := sampleReport()
	whole.RunID = "whole-second"
	fraction := sampleReport()
	fraction.RunID = "later-fraction"
	fraction.StartedAt = whole.StartedAt.Add(300 * time.Millisecond)

	require.NoError(t, h.Record(ctx, whole))
	require.NoError(t, h.Record(ctx, fraction))

	runs, err := h.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "later-fraction", runs[0].RunID)
	assert.Equal(t, "whole-second", runs[1].RunID)
	assert.True(t, fraction.StartedAt.Equal(runs[0].StartedAt))

	statuses, err := h.CaseHistory(ctx, domain.CaseID{Group: "any_of", Name: "ExampleOne"}, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"PASS"}, statuses)
}

func TestSQLHistory_DuplicateRunRollsBack(t *testing.T) {
	ctx := context.Background()
	h := newTestHistory(t)

	require.NoError(t, h.Record(ctx, sampleReport()))
	require.Error(t, h.Record(ctx, sampleReport()))

	statuses, err := h.CaseHistory(ctx, domain.CaseID{Group: "set_union", Name: "ExampleOne"}, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"FAIL"}, statuses)
}

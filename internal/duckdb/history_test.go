package duckdb_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"annostat/internal/aggregate"
	"annostat/internal/duckdb"
	duckdbtesting "annostat/internal/duckdb/testing"
	"annostat/internal/runner"
	"annostat/internal/testutil"
)

func sampleRun(runID string, started time.Time, equivalent int) runner.Results {
	eq := aggregate.EquivalenceCounts{Equivalent: equivalent, NotEquivalent: 10 - equivalent}
	comp := aggregate.CompilationCounts{
		ChatGPT:       aggregate.SourceCounts{HasCode: 6, Compiles: 4},
		StackOverflow: aggregate.SourceCounts{HasCode: 3, Compiles: 3},
	}
	return runner.Results{
		RunID:      runID,
		StartedAt:  started,
		FinishedAt: started.Add(time.Second),
		Corpora: []runner.CorpusResult{
			{Path: "/data/short.json", Kind: "equivalence", Records: 10, Equivalence: &eq},
			{Path: "/data/code.json", Kind: "compilation", Records: 8, Compilation: &comp},
		},
	}
}

func TestSchemaObjectsExist(t *testing.T) {
	db := duckdbtesting.Open(t)
	ctx := testutil.Context(t, 0)
	for _, table := range []string{"runs", "corpus_results", "v_corpus_history"} {
		var count int
		require.NoError(t, db.QueryRowContext(ctx, "SELECT count(*) FROM information_schema.tables WHERE table_name = ?", table).Scan(&count))
		assert.Equal(t, 1, count, table)
	}
	// Applying the schema twice must be harmless.
	require.NoError(t, duckdb.EnsureSchema(ctx, db))
}

func TestInsertRunAndHistory(t *testing.T) {
	db := duckdbtesting.Open(t)
	ctx := testutil.Context(t, 0)
	base := time.Date(2024, 6, 7, 8, 0, 0, 0, time.UTC)

	inserted, err := duckdb.InsertRun(ctx, db, sampleRun("run-1", base, 4))
	require.NoError(t, err)
	assert.True(t, inserted)
	inserted, err = duckdb.InsertRun(ctx, db, sampleRun("run-2", base.Add(time.Hour), 7))
	require.NoError(t, err)
	assert.True(t, inserted)

	rows, err := duckdb.History(ctx, db, "/data/short.json")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "run-2", rows[0].RunID)
	assert.Equal(t, "run-1", rows[1].RunID)
	require.NotNil(t, rows[0].Equivalence)
	assert.Equal(t, 7, rows[0].Equivalence.Equivalent)
	assert.Nil(t, rows[0].Compilation)
	assert.True(t, rows[0].StartedAt.Equal(base.Add(time.Hour)))

	rows, err = duckdb.History(ctx, db, "/data/code.json")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.NotNil(t, rows[0].Compilation)
	assert.Equal(t, aggregate.SourceCounts{HasCode: 6, Compiles: 4}, rows[0].Compilation.ChatGPT)
	assert.Nil(t, rows[0].Equivalence)

	all, err := duckdb.History(ctx, db, "")
	require.NoError(t, err)
	assert.Len(t, all, 4)
}

func TestInsertRunIsIdempotent(t *testing.T) {
	db := duckdbtesting.Open(t)
	ctx := testutil.Context(t, 0)
	run := sampleRun("run-1", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), 5)

	_, err := duckdb.InsertRun(ctx, db, run)
	require.NoError(t, err)
	inserted, err := duckdb.InsertRun(ctx, db, run)
	require.NoError(t, err)
	assert.False(t, inserted)

	var count int
	require.NoError(t, db.QueryRowContext(ctx, "SELECT count(*) FROM corpus_results").Scan(&count))
	assert.Equal(t, 2, count)
}

func TestInsertRunRejectsBrokenInvariants(t *testing.T) {
	db := duckdbtesting.Open(t)
	ctx := testutil.Context(t, 0)
	run := sampleRun("run-bad", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), 5)
	run.Corpora[1].Compilation.ChatGPT.Compiles = 9

	_, err := duckdb.InsertRun(ctx, db, run)
	require.Error(t, err)

	var count int
	require.NoError(t, db.QueryRowContext(ctx, "SELECT count(*) FROM runs").Scan(&count))
	assert.Zero(t, count, "failed insert must roll back the run row")
}

func TestInsertRunValidatesArguments(t *testing.T) {
	ctx := testutil.Context(t, 0)
	_, err := duckdb.InsertRun(ctx, nil, runner.Results{RunID: "x"})
	assert.EqualError(t, err, "duckdb: db is nil")

	db := duckdbtesting.Open(t)
	_, err = duckdb.InsertRun(ctx, db, runner.Results{})
	assert.EqualError(t, err, "duckdb: run id is empty")
}

package duckdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"annostat/internal/aggregate"
	"annostat/internal/runner"
)

// InsertRun stores a run and its corpus results in one transaction. It
// reports false without writing when the run id is already stored.
func InsertRun(ctx context.Context, db *sql.DB, results runner.Results) (bool, error) {
	if ctx == nil {
		return false, errors.New("duckdb: context is nil")
	}
	if db == nil {
		return false, errors.New("duckdb: db is nil")
	}
	if results.RunID == "" {
		return false, errors.New("duckdb: run id is empty")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("duckdb: begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var existing int
	if err := tx.QueryRowContext(ctx, `SELECT count(*) FROM runs WHERE run_id = ?`, results.RunID).Scan(&existing); err != nil {
		return false, fmt.Errorf("duckdb: lookup run: %w", err)
	}
	if existing > 0 {
		return false, nil
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO runs (run_id, started_at, finished_at) VALUES (?, ?, ?)`,
		results.RunID, results.StartedAt.UTC(), results.FinishedAt.UTC(),
	); err != nil {
		return false, fmt.Errorf("duckdb: insert run: %w", err)
	}

	for _, corpus := range results.Corpora {
		args := []interface{}{uuid.NewString(), results.RunID, corpus.Path, corpus.Kind, corpus.Records}
		args = append(args, equivalenceArgs(corpus.Equivalence)...)
		args = append(args, compilationArgs(corpus.Compilation)...)
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO corpus_results (
			   result_id, run_id, corpus_path, kind, records,
			   equivalent, not_equivalent,
			   chatgpt_has_code, chatgpt_compiles,
			   stackoverflow_has_code, stackoverflow_compiles)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			args...,
		); err != nil {
			return false, fmt.Errorf("duckdb: insert corpus %s: %w", corpus.Path, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("duckdb: commit: %w", err)
	}
	return true, nil
}

func equivalenceArgs(counts *aggregate.EquivalenceCounts) []interface{} {
	if counts == nil {
		return []interface{}{nil, nil}
	}
	return []interface{}{counts.Equivalent, counts.NotEquivalent}
}

func compilationArgs(counts *aggregate.CompilationCounts) []interface{} {
	if counts == nil {
		return []interface{}{nil, nil, nil, nil}
	}
	return []interface{}{
		counts.ChatGPT.HasCode, counts.ChatGPT.Compiles,
		counts.StackOverflow.HasCode, counts.StackOverflow.Compiles,
	}
}

// HistoryRow is one stored corpus result.
type HistoryRow struct {
	RunID       string
	StartedAt   time.Time
	Path        string
	Kind        string
	Records     int
	Equivalence *aggregate.EquivalenceCounts
	Compilation *aggregate.CompilationCounts
}

// History returns every stored result for corpusPath, newest run first. An
// empty corpusPath returns results for every corpus.
func History(ctx context.Context, db *sql.DB, corpusPath string) ([]HistoryRow, error) {
	if db == nil {
		return nil, errors.New("duckdb: db is nil")
	}
	rows, err := db.QueryContext(ctx,
		`SELECT run_id, started_at, corpus_path, kind, records,
		        equivalent, not_equivalent,
		        chatgpt_has_code, chatgpt_compiles,
		        stackoverflow_has_code, stackoverflow_compiles
		   FROM v_corpus_history
		  WHERE CAST(? AS VARCHAR) = '' OR corpus_path = ?
		  ORDER BY started_at DESC, run_id DESC, corpus_path`,
		corpusPath, corpusPath,
	)
	if err != nil {
		return nil, fmt.Errorf("duckdb: query history: %w", err)
	}
	defer rows.Close()

	var out []HistoryRow
	for rows.Next() {
		var (
			row                         HistoryRow
			records                     int64
			equivalent, notEquivalent   sql.NullInt64
			chatHasCode, chatCompiles   sql.NullInt64
			stackHasCode, stackCompiles sql.NullInt64
		)
		if err := rows.Scan(&row.RunID, &row.StartedAt, &row.Path, &row.Kind, &records,
			&equivalent, &notEquivalent,
			&chatHasCode, &chatCompiles,
			&stackHasCode, &stackCompiles,
		); err != nil {
			return nil, fmt.Errorf("duckdb: scan history: %w", err)
		}
		row.Records = int(records)
		if equivalent.Valid {
			row.Equivalence = &aggregate.EquivalenceCounts{
				Equivalent:    int(equivalent.Int64),
				NotEquivalent: int(notEquivalent.Int64),
			}
		}
		if chatHasCode.Valid {
			row.Compilation = &aggregate.CompilationCounts{
				ChatGPT:       aggregate.SourceCounts{HasCode: int(chatHasCode.Int64), Compiles: int(chatCompiles.Int64)},
				StackOverflow: aggregate.SourceCounts{HasCode: int(stackHasCode.Int64), Compiles: int(stackCompiles.Int64)},
			}
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("duckdb: iterate history: %w", err)
	}
	return out, nil
}

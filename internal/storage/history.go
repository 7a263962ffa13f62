package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"algocat/internal/domain"
	"algocat/internal/logging"
)

// History records run reports in a SQL database. The schema is created by
// migration.SchemaMigrator.
type History interface {
	Record(ctx context.Context, report *domain.Report) error
	Recent(ctx context.Context, limit int) ([]domain.RunSummary, error)
}

// startedAtLayout is fixed width so started_at sorts chronologically as text.
const startedAtLayout = "2006-01-02T15:04:05.000000000Z07:00"

// SQLHistory implements History on database/sql; the statements only use
// syntax shared by the sqlite and mysql drivers.
type SQLHistory struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewSQLHistory creates a new SQLHistory
func NewSQLHistory(db *sql.DB, logger *zap.Logger) *SQLHistory {
	return &SQLHistory{db: db, logger: logging.OrNop(logger)}
}

// Record stores the report's summary and per-case results in one transaction
func (h *SQLHistory) Record(ctx context.Context, report *domain.Report) error {
	tx, err := h.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin history transaction: %w", err)
	}
	defer tx.Rollback()

	sum := report.Summary()
	_, err = tx.ExecContext(ctx,
		`INSERT INTO runs (id, started_at, duration_ns, workers, total, passed, failed, skipped) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		sum.RunID, sum.StartedAt.UTC().Format(startedAtLayout), int64(sum.Duration), sum.Workers,
		sum.Total, sum.Passed, sum.Failed, sum.Skipped)
	if err != nil {
		return fmt.Errorf("insert run %s: %w", sum.RunID, err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO case_results (run_id, seq, group_name, case_name, status, failures) VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare case insert: %w", err)
	}
	defer stmt.Close()

	for i, res := range report.Results {
		failures, err := json.Marshal(res.Failures)
		if err != nil {
			return fmt.Errorf("marshal failures of %s: %w", res.ID, err)
		}
		if _, err := stmt.ExecContext(ctx, sum.RunID, i, res.ID.Group, res.ID.Name, res.Status(), string(failures)); err != nil {
			return fmt.Errorf("insert case %s: %w", res.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit history: %w", err)
	}
	h.logger.Debug("run recorded", zap.String("run_id", sum.RunID), zap.Int("cases", len(report.Results)))
	return nil
}

// Recent returns up to limit runs, newest first
func (h *SQLHistory) Recent(ctx context.Context, limit int) ([]domain.RunSummary, error) {
	rows, err := h.db.QueryContext(ctx,
		`SELECT id, started_at, duration_ns, workers, total, passed, failed, skipped FROM runs ORDER BY started_at DESC LIMIT ?`,
		limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []domain.RunSummary
	for rows.Next() {
		var (
			sum       domain.RunSummary
			startedAt string
			duration  int64
		)
		if err := rows.Scan(&sum.RunID, &startedAt, &duration, &sum.Workers, &sum.Total, &sum.Passed, &sum.Failed, &sum.Skipped); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		if sum.StartedAt, err = time.Parse(startedAtLayout, startedAt); err != nil {
			return nil, fmt.Errorf("run %s started_at: %w", sum.RunID, err)
		}
		sum.Duration = time.Duration(duration)
		runs = append(runs, sum)
	}
	return runs, rows.Err()
}

// CaseHistory returns the recorded statuses of one case, newest run first
func (h *SQLHistory) CaseHistory(ctx context.Context, id domain.CaseID, limit int) ([]string, error) {
	rows, err := h.db.QueryContext(ctx,
		`SELECT c.status FROM case_results c JOIN runs r ON r.id = c.run_id
		 WHERE c.group_name = ? AND c.case_name = ? ORDER BY r.started_at DESC LIMIT ?`,
		id.Group, id.Name, limit)
	if err != nil {
		return nil, fmt.Errorf("query case history: %w", err)
	}
	defer rows.Close()

	var statuses []string
	for rows.Next() {
		var status string
		if err := rows.Scan(&status); err != nil {
			return nil, fmt.Errorf("scan status: %w", err)
		}
		statuses = append(statuses, status)
	}
	return statuses, rows.Err()
}

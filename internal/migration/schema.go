package migration

import (
	"context"
	"database/sql"
	"fmt"
	"slices"
	"time"

	"go.uber.org/zap"

	"algocat/internal/domain"
	"algocat/internal/logging"
)

// Migration is one versioned schema change
type Migration struct {
	Version    int
	Name       string
	Statements []string
}

// HistoryMigrations create the run history tables. Statements stay within
// the SQL understood by both sqlite and mysql.
var HistoryMigrations = []Migration{
	{
		Version: 1,
		Name:    "create_runs",
		Statements: []string{
			`CREATE TABLE runs (
				id VARCHAR(36) NOT NULL PRIMARY KEY,
				started_at VARCHAR(40) NOT NULL,
				duration_ns BIGINT NOT NULL,
				workers INTEGER NOT NULL,
				total INTEGER NOT NULL,
				passed INTEGER NOT NULL,
				failed INTEGER NOT NULL,
				skipped INTEGER NOT NULL
			)`,
		},
	},
	{
		Version: 2,
		Name:    "create_case_results",
		Statements: []string{
			`CREATE TABLE case_results (
				run_id VARCHAR(36) NOT NULL,
				seq INTEGER NOT NULL,
				group_name VARCHAR(128) NOT NULL,
				case_name VARCHAR(128) NOT NULL,
				status VARCHAR(4) NOT NULL,
				failures TEXT NOT NULL,
				PRIMARY KEY (run_id, seq)
			)`,
		},
	},
	{
		Version: 3,
		Name:    "index_case_results_case",
		Statements: []string{
			`CREATE INDEX idx_case_results_case ON case_results (group_name, case_name)`,
		},
	},
}

// SchemaMigrator implements Migrator by applying versioned migrations and
// recording them in schema_migrations
type SchemaMigrator struct {
	db         *sql.DB
	migrations []Migration
	logger     *zap.Logger
}

// NewSchemaMigrator creates a migrator for the given migrations, applied in version order
func NewSchemaMigrator(db *sql.DB, migrations []Migration, logger *zap.Logger) *SchemaMigrator {
	sorted := slices.Clone(migrations)
	slices.SortFunc(sorted, func(a, b Migration) int { return a.Version - b.Version })
	return &SchemaMigrator{db: db, migrations: sorted, logger: logging.OrNop(logger)}
}

// Run applies every migration not yet recorded. It stops at the first
// failing migration; the returned results cover the migrations visited so far.
func (m *SchemaMigrator) Run(ctx context.Context) ([]domain.MigrationResult, error) {
	if _, err := m.db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS schema_migrations (
		version INTEGER NOT NULL PRIMARY KEY,
		name VARCHAR(128) NOT NULL,
		applied_at VARCHAR(40) NOT NULL
	)`); err != nil {
		return nil, fmt.Errorf("create schema_migrations: %w", err)
	}

	applied, err := m.appliedVersions(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]domain.MigrationResult, 0, len(m.migrations))
	for _, mig := range m.migrations {
		result := domain.MigrationResult{Version: mig.Version, Name: mig.Name}
		if applied[mig.Version] {
			results = append(results, result)
			continue
		}

		if err := m.apply(ctx, mig); err != nil {
			result.Error = err
			results = append(results, result)
			return results, fmt.Errorf("migration %d %s: %w", mig.Version, mig.Name, err)
		}
		result.Applied = true
		results = append(results, result)
		m.logger.Info("migration applied", zap.Int("version", mig.Version), zap.String("name", mig.Name))
	}
	return results, nil
}

func (m *SchemaMigrator) appliedVersions(ctx context.Context) (map[int]bool, error) {
	rows, err := m.db.QueryContext(ctx, `SELECT version FROM schema_migrations`)
	if err != nil {
		return nil, fmt.Errorf("read schema_migrations: %w", err)
	}
	defer rows.Close()

	applied := make(map[int]bool)
	for rows.Next() {
		var v int
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("scan version: %w", err)
		}
		applied[v] = true
	}
	return applied, rows.Err()
}

func (m *SchemaMigrator) apply(ctx context.Context, mig Migration) error {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, stmt := range mig.Statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO schema_migrations (version, name, applied_at) VALUES (?, ?, ?)`,
		mig.Version, mig.Name, time.Now().UTC().Format(time.RFC3339)); err != nil {
		return err
	}
	return tx.Commit()
}

package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"algocat/internal/config"
	"algocat/internal/migration"
	"algocat/internal/storage"
	"algocat/internal/ui"
)

// HistoryCommand handles the history command
type HistoryCommand struct {
	config    *config.Config
	dbManager *migration.DatabaseManager
	formatter *ui.Formatter
	logger    *zap.Logger
}

// NewHistoryCommand creates a new HistoryCommand
func NewHistoryCommand(cfg *config.Config, dbManager *migration.DatabaseManager, formatter *ui.Formatter, logger *zap.Logger) *HistoryCommand {
	return &HistoryCommand{
		config:    cfg,
		dbManager: dbManager,
		formatter: formatter,
		logger:    logger,
	}
}

// Execute runs the command
func (hc *HistoryCommand) Execute(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	history, closeDB, err := openHistory(ctx, hc.dbManager, hc.logger)
	if err != nil {
		return err
	}
	defer closeDB()

	limit := hc.config.Flags.Limit
	if limit <= 0 {
		limit = config.DefaultHistoryLimit
	}
	runs, err := history.Recent(ctx, limit)
	if err != nil {
		return fmt.Errorf("failed to read history: %w", err)
	}
	hc.formatter.PrintHistory(runs)
	return nil
}

// openHistory opens the history database with an up-to-date schema
func openHistory(ctx context.Context, dm *migration.DatabaseManager, logger *zap.Logger) (*storage.SQLHistory, func() error, error) {
	db, err := dm.Open(ctx)
	if err != nil {
		return nil, nil, err
	}
	if _, err := migration.NewSchemaMigrator(db, migration.HistoryMigrations, logger).Run(ctx); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("migrate history database: %w", err)
	}
	return storage.NewSQLHistory(db, logger), db.Close, nil
}

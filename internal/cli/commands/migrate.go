package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"algocat/internal/migration"
	"algocat/internal/ui"
)

// MigrateCommand handles the migrate command
type MigrateCommand struct {
	dbManager *migration.DatabaseManager
	formatter *ui.Formatter
	logger    *zap.Logger
}

// NewMigrateCommand creates a new MigrateCommand
func NewMigrateCommand(dbManager *migration.DatabaseManager, formatter *ui.Formatter, logger *zap.Logger) *MigrateCommand {
	return &MigrateCommand{
		dbManager: dbManager,
		formatter: formatter,
		logger:    logger,
	}
}

// Execute runs the command
func (mc *MigrateCommand) Execute(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	db, err := mc.dbManager.Open(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	results, err := migration.NewSchemaMigrator(db, migration.HistoryMigrations, mc.logger).Run(ctx)
	mc.formatter.PrintMigrations(results)
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	return nil
}

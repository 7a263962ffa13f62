package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"algocat/internal/config"
	"algocat/internal/discovery"
	"algocat/internal/domain"
	"algocat/internal/execution"
	"algocat/internal/migration"
	"algocat/internal/parser"
	"algocat/internal/registry"
	"algocat/internal/storage"
	"algocat/internal/ui"
)

// RunCommand handles the run command
type RunCommand struct {
	config    *config.Config
	registry  *registry.Registry
	scanner   *discovery.Scanner
	filter    *discovery.Filter
	executor  *execution.WorkerPool
	codec     *parser.TextCodec
	formatter *ui.Formatter
	dbManager *migration.DatabaseManager
	logger    *zap.Logger
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(
	cfg *config.Config,
	reg *registry.Registry,
	scanner *discovery.Scanner,
	filter *discovery.Filter,
	executor *execution.WorkerPool,
	codec *parser.TextCodec,
	formatter *ui.Formatter,
	dbManager *migration.DatabaseManager,
	logger *zap.Logger,
) *RunCommand {
	return &RunCommand{
		config:    cfg,
		registry:  reg,
		scanner:   scanner,
		filter:    filter,
		executor:  executor,
		codec:     codec,
		formatter: formatter,
		dbManager: dbManager,
		logger:    logger,
	}
}

// Execute runs the command
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	flags := rc.config.Flags

	st, err := storage.New(rc.config)
	if err != nil {
		return err
	}

	cases := rc.scanner.Scan(rc.registry)
	cases = rc.filter.FilterByName(cases, flags.NameFilter)

	if flags.OnlyFailed {
		last, err := st.Load()
		if err != nil {
			return fmt.Errorf("failed to load last run: %w", err)
		}
		cases = rc.filter.OnlyFailed(cases, last)
	}

	if len(cases) == 0 {
		color.Yellow("No cases to execute")
		return nil
	}

	if !flags.Text {
		rc.executor.SetProgress(ui.NewProgressBar(os.Stderr, len(cases)))
	}

	report, err := rc.executor.ExecuteWithOptions(ctx, cases, flags.FailFast)
	if err != nil {
		return err
	}

	if err := st.Save(report); err != nil {
		return fmt.Errorf("failed to save case results: %w", err)
	}

	if rc.config.HistoryEnabled {
		if err := rc.record(ctx, report); err != nil {
			return err
		}
	}

	if flags.Text {
		if err := rc.codec.Format(cmd.OutOrStdout(), report); err != nil {
			return fmt.Errorf("failed to write text report: %w", err)
		}
	} else {
		rc.formatter.PrintSummary(report)
	}

	if report.Passed() {
		return nil
	}
	if flags.OpenFaills {
		if err := ui.NewErrorViewer(st).View(report); err != nil {
			return err
		}
	}
	return execution.ErrCasesFailed
}

func (rc *RunCommand) record(ctx context.Context, report *domain.Report) error {
	history, closeDB, err := openHistory(ctx, rc.dbManager, rc.logger)
	if err != nil {
		return err
	}
	defer closeDB()

	if err := history.Record(ctx, report); err != nil {
		return fmt.Errorf("failed to record run: %w", err)
	}
	return nil
}

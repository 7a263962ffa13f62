package commands

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"algocat/internal/cli"
	"algocat/internal/config"
	"algocat/internal/discovery"
	"algocat/internal/execution"
	"algocat/internal/migration"
	"algocat/internal/parser"
	"algocat/internal/registry"
	"algocat/internal/ui"
)

// Commands holds all CLI commands
type Commands struct {
	Run     *RunCommand
	List    *ListCommand
	Migrate *MigrateCommand
	Faills  *FaillsCommand
	History *HistoryCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config, reg *registry.Registry, logger *zap.Logger) *Commands {
	scanner := discovery.NewScanner(cfg.SkipGroups)
	filter := discovery.NewFilter()
	runner := execution.NewRunner(logger)
	scheduler := execution.NewRoundRobinScheduler()
	executor := execution.NewWorkerPool(cfg, runner, scheduler, logger)
	formatter := ui.NewFormatter(os.Stdout)
	codec := parser.NewTextCodec()
	dbManager := migration.NewDatabaseManager(cfg, logger)

	return &Commands{
		Run:     NewRunCommand(cfg, reg, scanner, filter, executor, codec, formatter, dbManager, logger),
		List:    NewListCommand(cfg, reg, scanner, filter, formatter),
		Migrate: NewMigrateCommand(dbManager, formatter, logger),
		Faills:  NewFaillsCommand(cfg),
		History: NewHistoryCommand(cfg, dbManager, formatter, logger),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	applyFlags := func(cmd *cobra.Command, args []string) error {
		cfg.ApplyFlags(flags.ToConfigFlags())
		return cfg.Validate()
	}

	runCmd := &cobra.Command{
		Use:     "run",
		Short:   "Run the example cases in parallel",
		Long:    "Run the registered example cases on parallel workers, save the report and print a summary",
		RunE:    c.Run.Execute,
		PreRunE: applyFlags,
	}
	runCmd.Flags().IntVarP(&flags.Processors, "processors", "p", 0, "Number of workers to use (default from config, 4)")
	runCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter cases by group/name pattern (supports wildcards, e.g., 'set_*' or '*heap*')")
	runCmd.Flags().BoolVar(&flags.FailFast, "fail-fast", false, "Stop on first case failure")
	runCmd.Flags().BoolVar(&flags.OnlyFailed, "failed", false, "Run only cases that failed in the last run")
	runCmd.Flags().StringVar(&flags.Format, "format", "", "Report file format: json or yaml")
	runCmd.Flags().BoolVar(&flags.Text, "text", false, "Print the plain text report instead of the summary table")
	runCmd.Flags().BoolVar(&flags.History, "history", false, "Record the run in the history database")
	runCmd.Flags().BoolVar(&flags.OpenFaills, "open-faills", false, "Open the faills viewer when the run finishes with failures")
	rootCmd.AddCommand(runCmd)

	listCmd := &cobra.Command{
		Use:     "list",
		Short:   "List registered cases",
		Long:    "List the registered example groups, or their cases, under their categories without running them",
		RunE:    c.List.Execute,
		PreRunE: applyFlags,
	}
	listCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter cases by group/name pattern (supports wildcards)")
	listCmd.Flags().BoolVarP(&flags.TestCases, "cases", "c", false, "List the cases of every group")
	rootCmd.AddCommand(listCmd)

	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply the history database schema",
		Long:  "Create the history database if needed and apply pending schema migrations",
		RunE:  c.Migrate.Execute,
	}
	rootCmd.AddCommand(migrateCmd)

	faillsCmd := &cobra.Command{
		Use:     "faills",
		Short:   "View case failures interactively",
		Long:    "Display case failures from the last run in an interactive viewer",
		RunE:    c.Faills.Execute,
		PreRunE: applyFlags,
	}
	faillsCmd.Flags().StringVar(&flags.Format, "format", "", "Report file format: json or yaml")
	rootCmd.AddCommand(faillsCmd)

	historyCmd := &cobra.Command{
		Use:     "history",
		Short:   "List recent runs",
		Long:    "List the most recent runs recorded in the history database",
		RunE:    c.History.Execute,
		PreRunE: applyFlags,
	}
	historyCmd.Flags().IntVarP(&flags.Limit, "limit", "n", config.DefaultHistoryLimit, "Number of runs to show")
	rootCmd.AddCommand(historyCmd)
}

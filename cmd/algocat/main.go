package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"algocat/internal/catalogue"
	"algocat/internal/cli"
	"algocat/internal/cli/commands"
	"algocat/internal/config"
	"algocat/internal/execution"
	"algocat/internal/logging"
)

var version = "dev"

func main() {
	cfg, err := config.LoadFile(config.DefaultConfigFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, level, err := logging.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// A duplicate registration is fatal before any command runs
	reg, err := catalogue.Load()
	if err != nil {
		logger.Error("catalogue registration failed", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var flags cli.Flags

	rootCmd := &cobra.Command{
		Use:           "algocat",
		Short:         "Self-verifying catalogue of algorithm examples",
		Long:          `Runs a catalogue of worked examples for a generic slice algorithm library. Every example checks its own results; the run fails if any example does.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if flags.LogLevel == "" {
				return nil
			}
			return level.UnmarshalText([]byte(flags.LogLevel))
		},
	}
	rootCmd.PersistentFlags().StringVar(&flags.LogLevel, "log-level", "", "Structured log level (debug, info, warn, error)")

	cmds := commands.NewCommands(cfg, reg, logger)
	cmds.Register(rootCmd, &flags, cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err = rootCmd.ExecuteContext(ctx)
	stop()

	switch {
	case errors.Is(err, execution.ErrCasesFailed):
		// The summary already lists the failures
		logger.Sync()
		os.Exit(1)
	case err != nil:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		logger.Sync()
		os.Exit(1)
	}
}

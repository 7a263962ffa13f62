package commands

import (
	"github.com/spf13/cobra"

	"algocat/internal/config"
	"algocat/internal/storage"
	"algocat/internal/ui"
)

// FaillsCommand handles the faills command
type FaillsCommand struct {
	config *config.Config
}

// NewFaillsCommand creates a new FaillsCommand
func NewFaillsCommand(cfg *config.Config) *FaillsCommand {
	return &FaillsCommand{config: cfg}
}

// Execute runs the command
func (fc *FaillsCommand) Execute(cmd *cobra.Command, args []string) error {
	// The report format may come from --format, so storage is chosen here
	st, err := storage.New(fc.config)
	if err != nil {
		return err
	}
	report, err := st.Load()
	if err != nil {
		return err
	}

	return ui.NewErrorViewer(st).View(report)
}

package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"algocat/internal/config"
	"algocat/internal/discovery"
	"algocat/internal/domain"
	"algocat/internal/registry"
	"algocat/internal/storage"
	"algocat/internal/ui"
)

// ListCommand handles the list command
type ListCommand struct {
	config    *config.Config
	registry  *registry.Registry
	scanner   *discovery.Scanner
	filter    *discovery.Filter
	formatter *ui.Formatter
}

// NewListCommand creates a new ListCommand
func NewListCommand(
	cfg *config.Config,
	reg *registry.Registry,
	scanner *discovery.Scanner,
	filter *discovery.Filter,
	formatter *ui.Formatter,
) *ListCommand {
	return &ListCommand{
		config:    cfg,
		registry:  reg,
		scanner:   scanner,
		filter:    filter,
		formatter: formatter,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	cases := lc.scanner.Scan(lc.registry)
	cases = lc.filter.FilterByName(cases, lc.config.Flags.NameFilter)

	if len(cases) == 0 {
		color.Yellow("No cases found")
		return nil
	}

	lc.formatter.PrintCaseList(cases, lc.config.Flags.TestCases, lc.lastFailures())
	return nil
}

// lastFailures returns the cases that failed in the last saved run, if any
func (lc *ListCommand) lastFailures() map[domain.CaseID]bool {
	st, err := storage.New(lc.config)
	if err != nil {
		return nil
	}
	last, err := st.Load()
	if err != nil {
		return nil
	}
	failed := make(map[domain.CaseID]bool)
	for _, res := range last.Failed() {
		failed[res.ID] = true
	}
	return failed
}

package ui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"algocat/internal/domain"
	"algocat/internal/registry"
)

var (
	cyan   = color.New(color.FgCyan)
	green  = color.New(color.FgGreen)
	red    = color.New(color.FgRed)
	yellow = color.New(color.FgYellow)
	white  = color.New(color.FgWhite)
)

// Formatter writes human-readable run output
type Formatter struct {
	out   io.Writer
	title cases.Caser
}

// NewFormatter creates a Formatter writing to out
func NewFormatter(out io.Writer) *Formatter {
	return &Formatter{
		out:   out,
		title: cases.Title(language.English),
	}
}

// Heading turns a category key such as "non-modifying" into "Non Modifying"
func (f *Formatter) Heading(category string) string {
	if category == "" {
		return "Uncategorized"
	}
	return f.title.String(strings.ReplaceAll(category, "-", " "))
}

func (f *Formatter) row(label string, c *color.Color, value string) {
	fmt.Fprintf(f.out, "│ %-31s │ ", label)
	c.Fprintf(f.out, "%-27s", value)
	fmt.Fprintln(f.out, " │")
}

func (f *Formatter) separator() {
	fmt.Fprintln(f.out, "├─────────────────────────────────┼─────────────────────────────┤")
}

// PrintSummary prints the run statistics table followed by the failure tree
func (f *Formatter) PrintSummary(report *domain.Report) {
	passed, failed, skipped := report.Counts()

	fmt.Fprintln(f.out)
	cyan.Fprintln(f.out, "╔═══════════════════════════════════════════════════════════════╗")
	cyan.Fprintln(f.out, "║                    Case Execution Statistics                  ║")
	cyan.Fprintln(f.out, "╚═══════════════════════════════════════════════════════════════╝")
	fmt.Fprintln(f.out)

	fmt.Fprintln(f.out, "┌─────────────────────────────────┬─────────────────────────────┐")
	f.row("Total Cases", white, fmt.Sprint(len(report.Results)))
	f.separator()
	f.row("Passed Cases", green, fmt.Sprint(passed))
	f.separator()
	f.row("Failed Cases", red, fmt.Sprint(failed))
	f.separator()
	f.row("Skipped Cases", yellow, fmt.Sprint(skipped))
	f.separator()
	f.row("Failed Checks", red, fmt.Sprint(report.FailureCount()))
	f.separator()
	f.row("Duration", white, fmt.Sprintf("%.2fs", report.Duration.Seconds()))
	f.separator()
	f.row("Workers", white, fmt.Sprint(report.Workers))
	f.separator()
	f.row("Run", white, report.RunID)
	fmt.Fprintln(f.out, "└─────────────────────────────────┴─────────────────────────────┘")

	fmt.Fprintln(f.out)
	if failed == 0 {
		green.Fprintln(f.out, "✓ All cases passed!")
		return
	}
	red.Fprintf(f.out, "✗ %d case(s) failed with %d failed check(s)\n", failed, report.FailureCount())
	fmt.Fprintln(f.out)
	f.printFailureTree(report.Failed())
}

// printFailureTree prints failed cases grouped by algorithm:
//
//	group
//	  |_ case
//	     |_ failure
func (f *Formatter) printFailureTree(failed []domain.CaseResult) {
	var groups []string
	byGroup := make(map[string][]domain.CaseResult)
	for _, res := range failed {
		if _, ok := byGroup[res.ID.Group]; !ok {
			groups = append(groups, res.ID.Group)
		}
		byGroup[res.ID.Group] = append(byGroup[res.ID.Group], res)
	}

	for _, group := range groups {
		cyan.Fprintln(f.out, group)
		for _, res := range byGroup[group] {
			yellow.Fprintf(f.out, "  |_%s\n", res.ID.Name)
			for _, failure := range res.Failures {
				red.Fprintf(f.out, "     |_%s\n", failure)
			}
		}
	}
}

// PrintCaseList prints the cases under category headings, listing only the
// groups unless showCases is set. Groups or cases in failed are marked [F].
func (f *Formatter) PrintCaseList(list []registry.Case, showCases bool, failed map[domain.CaseID]bool) {
	groupCount := 0
	seen := make(map[string]bool)
	for _, c := range list {
		if !seen[c.ID.Group] {
			seen[c.ID.Group] = true
			groupCount++
		}
	}
	green.Fprintf(f.out, "Found %d case(s) in %d group(s):\n\n", len(list), groupCount)

	for i, section := range sections(list) {
		if i > 0 {
			fmt.Fprintln(f.out)
		}
		cyan.Fprintln(f.out, f.Heading(section.category))

		for gi, group := range section.groups {
			lastGroup := gi == len(section.groups)-1
			connector, indent := "├── ", "│   "
			if lastGroup {
				connector, indent = "└── ", "    "
			}

			marker := ""
			for _, c := range group.cases {
				if failed[c.ID] {
					marker = " " + red.Sprint("[F]")
					break
				}
			}
			fmt.Fprintf(f.out, "%s%s%s\n", connector, group.name, marker)

			if !showCases {
				continue
			}
			for ci, c := range group.cases {
				caseConnector := "├── "
				if ci == len(group.cases)-1 {
					caseConnector = "└── "
				}
				caseMarker := ""
				if failed[c.ID] {
					caseMarker = " " + red.Sprint("[F]")
				}
				fmt.Fprintf(f.out, "%s%s%s%s\n", indent, caseConnector, yellow.Sprint(c.ID.Name), caseMarker)
			}
		}
	}
}

type listGroup struct {
	name  string
	cases []registry.Case
}

type listSection struct {
	category string
	groups   []*listGroup
}

// sections groups cases by category, then group, keeping first-seen order
func sections(list []registry.Case) []*listSection {
	var out []*listSection
	byCategory := make(map[string]*listSection)
	byGroup := make(map[string]*listGroup)

	for _, c := range list {
		sec, ok := byCategory[c.Category]
		if !ok {
			sec = &listSection{category: c.Category}
			byCategory[c.Category] = sec
			out = append(out, sec)
		}
		key := c.Category + "\x00" + c.ID.Group
		g, ok := byGroup[key]
		if !ok {
			g = &listGroup{name: c.ID.Group}
			byGroup[key] = g
			sec.groups = append(sec.groups, g)
		}
		g.cases = append(g.cases, c)
	}
	return out
}

// PrintHistory prints recorded runs, newest first
func (f *Formatter) PrintHistory(runs []domain.RunSummary) {
	if len(runs) == 0 {
		yellow.Fprintln(f.out, "No runs recorded yet")
		return
	}

	cyan.Fprintf(f.out, "%-36s  %-20s  %6s  %6s  %6s  %6s  %9s\n",
		"RUN", "STARTED", "TOTAL", "PASS", "FAIL", "SKIP", "DURATION")
	for _, run := range runs {
		status := green
		if run.Failed > 0 {
			status = red
		}
		fmt.Fprintf(f.out, "%-36s  %-20s  %6d  ", run.RunID, run.StartedAt.Local().Format(time.DateTime), run.Total)
		status.Fprintf(f.out, "%6d  %6d", run.Passed, run.Failed)
		fmt.Fprintf(f.out, "  %6d  %9s\n", run.Skipped, run.Duration.Round(time.Millisecond))
	}
}

// PrintMigrations prints the outcome of a schema migration run
func (f *Formatter) PrintMigrations(results []domain.MigrationResult) {
	applied := 0
	for _, r := range results {
		switch {
		case r.Error != nil:
			red.Fprintf(f.out, "✗ %03d %s: %v\n", r.Version, r.Name, r.Error)
		case r.Applied:
			applied++
			green.Fprintf(f.out, "✓ %03d %s\n", r.Version, r.Name)
		default:
			white.Fprintf(f.out, "- %03d %s (already applied)\n", r.Version, r.Name)
		}
	}
	fmt.Fprintln(f.out)
	if applied == 0 {
		white.Fprintln(f.out, "Schema is up to date")
		return
	}
	green.Fprintf(f.out, "Applied %d migration(s)\n", applied)
}

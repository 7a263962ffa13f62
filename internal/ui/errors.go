package ui

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"algocat/internal/domain"
	"algocat/internal/storage"
)

// ErrorViewer displays failed cases in an interactive TUI
type ErrorViewer struct {
	storage storage.Storage
}

// NewErrorViewer creates a new ErrorViewer; resolved marks are saved through st
func NewErrorViewer(st storage.Storage) *ErrorViewer {
	return &ErrorViewer{storage: st}
}

// View displays the report's failed cases. R toggles a case as resolved.
func (ev *ErrorViewer) View(report *domain.Report) error {
	// Indices into report.Results of the failed cases
	var failed []int
	for i, res := range report.Results {
		if !res.Passed && !res.Skipped {
			failed = append(failed, i)
		}
	}
	if len(failed) == 0 {
		color.Green("✓ No case failures found!")
		return nil
	}

	app := tview.NewApplication()

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)

	listItemText := func(index int) string {
		res := report.Results[failed[index]]
		if isResolved(res) {
			return fmt.Sprintf("[gray]✓ [yellow]%d.[gray] %s[white]", index+1, res.ID)
		}
		return fmt.Sprintf("[yellow]%d.[white] %s", index+1, res.ID)
	}

	for i := range failed {
		list.AddItem(listItemText(i), "", 0, nil)
	}

	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan).
		SetSecondaryTextColor(tview.Styles.SecondaryTextColor)

	statsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false).
		SetWordWrap(false)

	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)

	detailsContainer := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(detailsView, 0, 1, false).
		AddItem(tview.NewBox(), 2, 0, false)

	rightSide := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(statsView, 3, 0, false).
		AddItem(detailsContainer, 0, 1, false)

	// List on the left (1/3), details on the right (2/3)
	flex := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(rightSide, 0, 2, false)

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true)

	updateHeader := func() {
		unresolved := 0
		for _, i := range failed {
			if !isResolved(report.Results[i]) {
				unresolved++
			}
		}
		headerView.SetText(fmt.Sprintf(" Case Failures (%d total, %d unresolved) | Use ↑↓ to navigate, [yellow]R[white] to mark resolved, → to view details, ← to go back, Ctrl+C to exit ", len(failed), unresolved))
	}

	updateDetails := func() {
		index := list.GetCurrentItem()
		if index < 0 || index >= len(failed) {
			return
		}
		res := report.Results[failed[index]]
		statsView.SetText(formatCaseStats(res))
		detailsView.SetText(formatCaseDetails(res))
	}

	var saveErr error
	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEnter, tcell.KeyRight:
			app.SetFocus(detailsView)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		case tcell.KeyRune:
			if event.Rune() == 'r' || event.Rune() == 'R' {
				index := list.GetCurrentItem()
				if index >= 0 && index < len(failed) {
					toggleResolved(&report.Results[failed[index]])
					list.SetItemText(index, listItemText(index), "")
					updateHeader()
					updateDetails()
					if err := ev.storage.Save(report); err != nil {
						saveErr = err
						app.Stop()
					}
				}
				return nil
			}
		}
		return event
	})

	detailsView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyLeft, tcell.KeyEsc:
			app.SetFocus(list)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		}
		return event
	})

	list.SetChangedFunc(func(int, string, string, rune) {
		updateDetails()
	})

	updateHeader()
	updateDetails()

	mainLayout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(tview.NewBox(), 1, 0, false).
		AddItem(flex, 0, 1, true)

	if err := app.SetRoot(mainLayout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	if saveErr != nil {
		return fmt.Errorf("save resolved status: %w", saveErr)
	}
	return nil
}

// isResolved reports whether every failure of the case is marked resolved
func isResolved(res domain.CaseResult) bool {
	if len(res.Failures) == 0 {
		return false
	}
	for _, f := range res.Failures {
		if !f.Resolved {
			return false
		}
	}
	return true
}

func toggleResolved(res *domain.CaseResult) {
	mark := !isResolved(*res)
	for i := range res.Failures {
		res.Failures[i].Resolved = mark
	}
}

// formatCaseDetails renders the failures using tview color tags
func formatCaseDetails(res domain.CaseResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "[red]✗ Case: %s[white]\n\n", tview.Escape(res.ID.String()))
	if res.Category != "" {
		fmt.Fprintf(&b, "[cyan]Category: %s[white]\n\n", tview.Escape(res.Category))
	}

	for i, f := range res.Failures {
		fmt.Fprintf(&b, "[yellow]%d. %s[white]\n", i+1, tview.Escape(f.Message))
		if f.Expected != "" || f.Actual != "" {
			fmt.Fprintf(&b, "   expected: %s\n", tview.Escape(f.Expected))
			fmt.Fprintf(&b, "   actual:   %s\n", tview.Escape(f.Actual))
		}
		if f.Diff != "" {
			fmt.Fprintf(&b, "[gray]%s[white]\n", tview.Escape(f.Diff))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func formatCaseStats(res domain.CaseResult) string {
	return fmt.Sprintf("[cyan]group:[white] [yellow]%s[white] [cyan]case:[white] [yellow]%s[white] [cyan]failures:[white] %d\n",
		tview.Escape(res.ID.Group), tview.Escape(res.ID.Name), len(res.Failures))
}

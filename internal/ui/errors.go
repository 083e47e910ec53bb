package ui

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"gtp/internal/config"
	"gtp/internal/domain"
	"gtp/internal/storage"
)

// ErrorViewer displays failed test records in an interactive TUI
type ErrorViewer struct {
	config  *config.Config
	storage storage.Storage
}

// NewErrorViewer creates a new ErrorViewer
func NewErrorViewer(cfg *config.Config, st storage.Storage) *ErrorViewer {
	return &ErrorViewer{
		config:  cfg,
		storage: st,
	}
}

// View displays the failed records of a run in an interactive TUI
func (ev *ErrorViewer) View(output *domain.RunOutput) error {
	refs := output.FailedRecords()
	if len(refs) == 0 {
		color.Green("✓ No test failures found!")
		return nil
	}

	recordAt := func(i int) *domain.TestRecord {
		return &output.Classes[refs[i].Class].Records[refs[i].Record]
	}
	classAt := func(i int) *domain.ClassResult {
		return &output.Classes[refs[i].Class]
	}

	// Persist resolved toggles back into the stored run output.
	saveResolvedStatus := func() error {
		return ev.storage.Save(output)
	}

	app := tview.NewApplication()

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)

	getListItemText := func(index int) string {
		record := recordAt(index)
		if record.Resolved {
			return fmt.Sprintf("[gray]✓ [yellow]%d.[gray] %s[white]", index+1, record.Name)
		}
		return fmt.Sprintf("[yellow]%d.[white] %s", index+1, record.Name)
	}

	updateListItem := func(index int) {
		if index < 0 || index >= list.GetItemCount() {
			return
		}
		list.SetItemText(index, getListItemText(index), "")
	}

	for i := range refs {
		list.AddItem(getListItemText(i), "", 0, nil)
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

	flex := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(rightSide, 0, 2, false)

	countUnresolved := func() int {
		count := 0
		for i := range refs {
			if !recordAt(i).Resolved {
				count++
			}
		}
		return count
	}

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true)

	updateHeader := func() {
		headerView.SetText(fmt.Sprintf(
			" Test Failures (%d total, %d unresolved) | Use ↑↓ to navigate, [yellow]R[white] to mark resolved, → to view details, ← to go back, Ctrl+C to exit ",
			len(refs), countUnresolved(),
		))
	}
	updateHeader()

	updateDetails := func() {
		index := list.GetCurrentItem()
		if index >= 0 && index < len(refs) {
			statsView.SetText(ev.formatRecordStats(classAt(index), recordAt(index), index+1))
			detailsView.SetText(ev.formatRecordDetails(recordAt(index)))
		}
	}

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyUp, tcell.KeyDown:
			return event
		case tcell.KeyEnter, tcell.KeyRight:
			app.SetFocus(detailsView)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		case tcell.KeyRune:
			if event.Rune() == 'r' || event.Rune() == 'R' {
				index := list.GetCurrentItem()
				if index >= 0 && index < len(refs) {
					record := recordAt(index)
					record.Resolved = !record.Resolved
					updateListItem(index)
					updateHeader()
					updateDetails()
					if err := saveResolvedStatus(); err != nil {
						_ = err
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

	list.SetChangedFunc(func(index int, mainText string, secondaryText string, shortcut rune) {
		updateDetails()
	})
	updateDetails()

	mainLayout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(tview.NewBox(), 1, 0, false).
		AddItem(flex, 0, 1, true)

	if err := app.SetRoot(mainLayout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	return nil
}

// formatRecordDetails formats a failed record for display using tview color tags
func (ev *ErrorViewer) formatRecordDetails(record *domain.TestRecord) string {
	var builder strings.Builder
	w := tabwriter.NewWriter(&builder, 0, 0, 2, ' ', 0)

	fmt.Fprintf(w, "[red]✗ Test: %s[white]\n\n", record.Name)
	fmt.Fprintf(w, "[cyan]Duration: %dms[white]\n\n", record.DurationMillis)

	if record.Message != "" {
		fmt.Fprintf(w, "[yellow]Captured Output:[white]\n%s\n\n", tview.Escape(record.Message))
	}

	if record.Failure != nil && record.Failure.Detail != record.Message && record.Failure.Detail != "" {
		fmt.Fprintf(w, "[yellow]Failure Detail:[white]\n%s\n", tview.Escape(record.Failure.Detail))
	}

	w.Flush()
	return builder.String()
}

// formatRecordStats formats the stats header for a failed record
func (ev *ErrorViewer) formatRecordStats(class *domain.ClassResult, record *domain.TestRecord, number int) string {
	testName := record.Name
	if testName == "" {
		testName = fmt.Sprintf("Test %d", number)
	}
	return fmt.Sprintf("[cyan]class:[white] [yellow]%s[white]::[yellow]%s[white]\n", class.Name, testName)
}

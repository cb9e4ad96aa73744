package ui

import (
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"yantra-tool/internal/format"
	"yantra-tool/internal/yantra"
)

var groupColumns = []string{"Dimension", "Value"}

// ReportView displays the computed dimensions as one tab per instrument
// group plus a full-text report tab.
type ReportView struct {
	mu     sync.Mutex
	groups []format.Group

	tables     []*widget.Table
	reportText *readOnlyEntry
	tabs       *container.AppTabs
}

// NewReportView creates the tabbed report view with empty tables.
func NewReportView() *ReportView {
	rv := &ReportView{}

	// Group titles are fixed; rows fill in after the first calculation.
	rv.groups = []format.Group{
		{Title: "Summary & Time"},
		{Title: "Samrat Yantra"},
		{Title: "Bhitti & Nadi Yantra"},
		{Title: "Rama, Digamsa & Rasivalaya"},
	}

	items := make([]*container.TabItem, 0, len(rv.groups)+1)
	for i := range rv.groups {
		table := rv.newGroupTable(i)
		rv.tables = append(rv.tables, table)
		items = append(items, container.NewTabItem(rv.groups[i].Title, table))
	}

	rv.reportText = newReadOnlyEntry()
	scroll := container.NewVScroll(rv.reportText)
	scroll.SetMinSize(NewReportViewMinSize())
	items = append(items, container.NewTabItem("Full Report", scroll))

	rv.tabs = container.NewAppTabs(items...)

	return rv
}

// Container returns the tabbed view.
func (rv *ReportView) Container() *container.AppTabs {
	return rv.tabs
}

// SetDimensions replaces the displayed result, safe to call from any
// goroutine. When dms is true angles render as degrees/minutes/seconds.
func (rv *ReportView) SetDimensions(d *yantra.Dimensions, dms bool) {
	groups := format.Groups(d, dms)
	report := format.Report(d)

	fyne.Do(func() {
		rv.mu.Lock()
		rv.groups = groups
		rv.mu.Unlock()

		for _, t := range rv.tables {
			t.Refresh()
		}
		rv.reportText.SetText(report)
	})
}

// Clear empties all tabs, safe to call from any goroutine.
func (rv *ReportView) Clear() {
	fyne.Do(func() {
		rv.mu.Lock()
		for i := range rv.groups {
			rv.groups[i].Rows = nil
		}
		rv.mu.Unlock()

		for _, t := range rv.tables {
			t.Refresh()
		}
		rv.reportText.SetText("")
	})
}

func (rv *ReportView) newGroupTable(group int) *widget.Table {
	table := widget.NewTable(
		func() (rows int, cols int) {
			rv.mu.Lock()
			defer rv.mu.Unlock()
			return len(rv.groups[group].Rows) + 1, len(groupColumns) // +1 for header
		},
		func() fyne.CanvasObject {
			return widget.NewLabel("")
		},
		func(id widget.TableCellID, obj fyne.CanvasObject) {
			label := obj.(*widget.Label)

			if id.Row == 0 {
				label.SetText(groupColumns[id.Col])
				label.TextStyle = fyne.TextStyle{Bold: true}
				return
			}

			rv.mu.Lock()
			defer rv.mu.Unlock()

			idx := id.Row - 1
			if idx >= len(rv.groups[group].Rows) {
				label.SetText("")
				return
			}
			label.TextStyle = fyne.TextStyle{}
			label.SetText(rv.groups[group].Rows[idx][id.Col])
		},
	)

	table.SetColumnWidth(0, 300) // Dimension
	table.SetColumnWidth(1, 280) // Value

	return table
}

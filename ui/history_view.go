package ui

import (
	"fmt"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	"yantra-tool/internal/yantra"
)

var historyColumns = []string{"Time", "Latitude", "Longitude", "Radius", "Gnomon H", "Disc Tilt", "LMT Offset"}

// HistoryView displays a table of past calculations from this session.
type HistoryView struct {
	mu      sync.Mutex
	results []yantra.Result
	table   *widget.Table
}

// NewHistoryView creates a new history table view.
func NewHistoryView() *HistoryView {
	hv := &HistoryView{}

	hv.table = widget.NewTable(
		hv.tableSize,
		hv.createCell,
		hv.updateCell,
	)

	hv.table.SetColumnWidth(0, 150) // Time
	hv.table.SetColumnWidth(1, 90)  // Latitude
	hv.table.SetColumnWidth(2, 90)  // Longitude
	hv.table.SetColumnWidth(3, 90)  // Radius
	hv.table.SetColumnWidth(4, 100) // Gnomon height
	hv.table.SetColumnWidth(5, 90)  // Disc tilt
	hv.table.SetColumnWidth(6, 180) // LMT offset

	return hv
}

// Container returns the table widget.
func (hv *HistoryView) Container() *widget.Table {
	return hv.table
}

// AddResult appends a calculation to the history.
func (hv *HistoryView) AddResult(r yantra.Result) {
	hv.mu.Lock()
	hv.results = append(hv.results, r)
	hv.mu.Unlock()
	hv.table.Refresh()
}

// Results returns a copy of all stored results.
func (hv *HistoryView) Results() []yantra.Result {
	hv.mu.Lock()
	defer hv.mu.Unlock()
	out := make([]yantra.Result, len(hv.results))
	copy(out, hv.results)
	return out
}

func (hv *HistoryView) tableSize() (rows int, cols int) {
	hv.mu.Lock()
	defer hv.mu.Unlock()
	return len(hv.results) + 1, len(historyColumns) // +1 for header
}

func (hv *HistoryView) createCell() fyne.CanvasObject {
	return widget.NewLabel("")
}

func (hv *HistoryView) updateCell(id widget.TableCellID, obj fyne.CanvasObject) {
	label := obj.(*widget.Label)

	if id.Row == 0 {
		label.SetText(historyColumns[id.Col])
		label.TextStyle = fyne.TextStyle{Bold: true}
		return
	}

	hv.mu.Lock()
	defer hv.mu.Unlock()

	idx := id.Row - 1
	if idx >= len(hv.results) {
		label.SetText("")
		return
	}

	r := hv.results[idx]
	d := r.Dimensions
	label.TextStyle = fyne.TextStyle{}

	switch id.Col {
	case 0:
		label.SetText(r.Timestamp.Format("2006-01-02 15:04:05"))
	case 1:
		label.SetText(fmt.Sprintf("%.4f", d.Site.Latitude))
	case 2:
		label.SetText(fmt.Sprintf("%.4f", d.Site.Longitude))
	case 3:
		label.SetText(fmt.Sprintf("%g %s", d.Site.InputRadius, d.Site.Unit))
	case 4:
		label.SetText(fmt.Sprintf("%.3f %s", d.SamratGnomonHeight, d.Site.Symbol))
	case 5:
		label.SetText(fmt.Sprintf("%.3f°", d.NadivalayaTilt))
	case 6:
		label.SetText(d.TimeOffset.Label)
	}
}

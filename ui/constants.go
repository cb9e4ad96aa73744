package ui

import "fyne.io/fyne/v2"

// Window dimensions
const (
	WindowWidth  = 920
	WindowHeight = 660
)

// Split ratios
const (
	MainSplitRatio = 0.32 // 32% left (form), 68% right (report tabs)
)

// Report view dimensions
const (
	ReportViewMinWidth  = 420
	ReportViewMinHeight = 300
)

// NewWindowSize returns the default window size
func NewWindowSize() fyne.Size {
	return fyne.NewSize(WindowWidth, WindowHeight)
}

// NewReportViewMinSize returns the minimum size for the report text view
func NewReportViewMinSize() fyne.Size {
	return fyne.NewSize(ReportViewMinWidth, ReportViewMinHeight)
}

package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
)

// BuildMainWindow creates and configures the main application window.
func BuildMainWindow(app fyne.App) fyne.Window {
	win := app.NewWindow("Yantra Dimension Tool")
	win.Resize(NewWindowSize())

	siteForm := NewSiteForm()
	reportView := NewReportView()
	historyView := NewHistoryView()
	controls := NewControls(siteForm, reportView, historyView)

	prefs := app.Preferences()
	siteForm.LoadPreferences(prefs)

	leftPanel := container.NewVBox(
		siteForm.Container(),
		controls.Container(),
	)

	reportTab := container.NewTabItem("Construction Report", reportView.Container())
	historyTab := container.NewTabItem("History", historyView.Container())
	tabs := container.NewAppTabs(reportTab, historyTab)

	content := container.NewHSplit(leftPanel, tabs)
	content.SetOffset(MainSplitRatio)

	win.SetContent(content)

	win.SetCloseIntercept(func() {
		siteForm.SavePreferences(prefs)
		win.Close()
	})

	return win
}

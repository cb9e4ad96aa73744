package ui

import (
	"fmt"
	"image/color"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"yantra-tool/internal/export"
	"yantra-tool/internal/site"
	"yantra-tool/internal/yantra"
)

// Controls manages the Generate/Export buttons and drives the calculation.
type Controls struct {
	generateBtn *StyledButton
	exportBtn   *widget.Button
	clearBtn    *widget.Button

	siteForm    *SiteForm
	reportView  *ReportView
	historyView *HistoryView

	container *fyne.Container
}

// NewControls creates the control buttons wired to the given views.
func NewControls(sf *SiteForm, rv *ReportView, hv *HistoryView) *Controls {
	c := &Controls{
		siteForm:    sf,
		reportView:  rv,
		historyView: hv,
	}

	c.generateBtn = NewStyledButton("Generate Report", c.onGenerate,
		color.NRGBA{R: 27, G: 94, B: 32, A: 255},
		color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	c.exportBtn = widget.NewButton("Export CSV + TXT", c.onExport)
	c.clearBtn = widget.NewButton("Clear", c.onClear)

	c.container = container.NewHBox(c.generateBtn, c.exportBtn, c.clearBtn)
	return c
}

// Container returns the controls container.
func (c *Controls) Container() *fyne.Container {
	return c.container
}

func (c *Controls) onGenerate() {
	cfg, err := c.siteForm.Config()
	if err != nil {
		c.showError(err)
		return
	}

	if err := cfg.Validate(site.Global); err != nil {
		c.showError(err)
		return
	}

	d, err := yantra.Calculate(cfg.Resolve())
	if err != nil {
		c.showError(err)
		return
	}

	c.reportView.SetDimensions(&d, c.siteForm.DMS())
	c.historyView.AddResult(yantra.Result{Timestamp: time.Now(), Dimensions: d})
}

func (c *Controls) onClear() {
	c.reportView.Clear()
}

func (c *Controls) onExport() {
	results := c.historyView.Results()
	if len(results) == 0 {
		c.showError(fmt.Errorf("no results to export: generate a report first"))
		return
	}

	win := fyne.CurrentApp().Driver().AllWindows()
	if len(win) == 0 {
		return
	}

	dialog.ShowFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		path := writer.URI().Path()
		writer.Close()

		if exportErr := export.WriteCSV(path, results); exportErr != nil {
			c.showError(exportErr)
			return
		}

		txtPath := strings.TrimSuffix(path, ".csv") + ".txt"
		if exportErr := export.WriteTXT(txtPath, results); exportErr != nil {
			c.showError(exportErr)
			return
		}

		dialog.ShowInformation("Export",
			fmt.Sprintf("Exported %d result(s) to %s and %s", len(results), path, txtPath), win[0])
	}, win[0])
}

func (c *Controls) showError(err error) {
	win := fyne.CurrentApp().Driver().AllWindows()
	if len(win) == 0 {
		return
	}
	dialog.ShowError(err, win[0])
}

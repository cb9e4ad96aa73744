package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"yantra-tool/internal/site"
)

const customSite = "Custom"

// SiteForm holds the GUI form fields for the construction site input.
type SiteForm struct {
	presetSelect   *widget.Select
	latitudeEntry  *widget.Entry
	longitudeEntry *widget.Entry
	radiusEntry    *widget.Entry
	unitSelect     *widget.Select
	dmsCheck       *widget.Check
	form           *fyne.Container
}

// NewSiteForm creates a new site input form with default values.
func NewSiteForm() *SiteForm {
	sf := &SiteForm{}

	sf.latitudeEntry = widget.NewEntry()
	sf.latitudeEntry.SetPlaceHolder("26.9167")

	sf.longitudeEntry = widget.NewEntry()
	sf.longitudeEntry.SetPlaceHolder("75.8167")

	sf.radiusEntry = widget.NewEntry()
	sf.radiusEntry.SetText("10.0")

	presetNames := []string{customSite}
	for _, p := range site.Presets() {
		presetNames = append(presetNames, p.Name)
	}
	sf.presetSelect = widget.NewSelect(presetNames, func(name string) {
		if name == customSite {
			return
		}
		if p, ok := site.FindPreset(name, nil); ok {
			sf.latitudeEntry.SetText(fmt.Sprintf("%.4f", p.Latitude))
			sf.longitudeEntry.SetText(fmt.Sprintf("%.4f", p.Longitude))
		}
	})
	sf.presetSelect.SetSelected(customSite)

	sf.unitSelect = widget.NewSelect([]string{
		string(site.Meters),
		string(site.Feet),
		string(site.Centimeters),
		string(site.Angula),
	}, nil)
	sf.unitSelect.SetSelected(string(site.Meters))

	sf.dmsCheck = widget.NewCheck("Show angles as DMS", nil)

	siteSection := container.NewVBox(
		widget.NewForm(
			widget.NewFormItem("Preset Site", sf.presetSelect),
			widget.NewFormItem("Latitude °N", sf.latitudeEntry),
			widget.NewFormItem("Longitude °E", sf.longitudeEntry),
		),
	)

	scaleSection := container.NewVBox(
		widget.NewForm(
			widget.NewFormItem("Scale Radius R", sf.radiusEntry),
			widget.NewFormItem("Unit", sf.unitSelect),
		),
		sf.dmsCheck,
	)

	accordion := widget.NewAccordion(
		widget.NewAccordionItem("Site", siteSection),
		widget.NewAccordionItem("Scale & Display", scaleSection),
	)

	// Open both sections: the form is small and every field is essential.
	accordion.MultiOpen = true
	accordion.Open(0)
	accordion.Open(1)

	sf.form = container.NewVBox(accordion)

	return sf
}

// Container returns the form's Fyne container.
func (sf *SiteForm) Container() *fyne.Container {
	return sf.form
}

// DMS reports whether angles should display as degrees/minutes/seconds.
func (sf *SiteForm) DMS() bool {
	return sf.dmsCheck.Checked
}

// Config builds a site.Config from the current form values. Malformed text
// fails before range checks; range checks use the full coordinate bounds.
func (sf *SiteForm) Config() (site.Config, error) {
	b := site.Global

	lat, err := parseFloatInRange(sf.latitudeEntry.Text, b.LatMin, b.LatMax, "latitude")
	if err != nil {
		return site.Config{}, err
	}
	lon, err := parseFloatInRange(sf.longitudeEntry.Text, b.LonMin, b.LonMax, "longitude")
	if err != nil {
		return site.Config{}, err
	}
	radius, err := parseFloat(sf.radiusEntry.Text, "radius")
	if err != nil {
		return site.Config{}, err
	}

	unit, err := site.ParseUnit(sf.unitSelect.Selected)
	if err != nil {
		return site.Config{}, err
	}

	return site.Config{
		Latitude:  lat,
		Longitude: lon,
		Radius:    radius,
		Unit:      unit,
	}, nil
}

// LoadPreferences restores form values from persistent preferences.
func (sf *SiteForm) LoadPreferences(prefs fyne.Preferences) {
	if v := prefs.String("site.latitude"); v != "" {
		sf.latitudeEntry.SetText(v)
	}
	if v := prefs.String("site.longitude"); v != "" {
		sf.longitudeEntry.SetText(v)
	}
	if v := prefs.String("site.radius"); v != "" {
		sf.radiusEntry.SetText(v)
	}
	if v := prefs.String("site.unit"); v != "" {
		sf.unitSelect.SetSelected(v)
	}
	if v := prefs.String("site.preset"); v != "" {
		sf.presetSelect.SetSelected(v)
	}
	sf.dmsCheck.SetChecked(prefs.Bool("site.dms"))
}

// SavePreferences persists form values to preferences.
func (sf *SiteForm) SavePreferences(prefs fyne.Preferences) {
	prefs.SetString("site.latitude", sf.latitudeEntry.Text)
	prefs.SetString("site.longitude", sf.longitudeEntry.Text)
	prefs.SetString("site.radius", sf.radiusEntry.Text)
	prefs.SetString("site.unit", sf.unitSelect.Selected)
	prefs.SetString("site.preset", sf.presetSelect.Selected)
	prefs.SetBool("site.dms", sf.dmsCheck.Checked)
}

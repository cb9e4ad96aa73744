// Package format renders computed yantra dimensions for display. Decimal
// precision here is part of the output contract: identical inputs must
// produce byte-identical reports.
package format

import (
	"fmt"
	"strings"

	"yantra-tool/internal/yantra"
)

// Angle formats an angle in degrees to three decimal places.
func Angle(v float64) string {
	return fmt.Sprintf("%.3f°", v)
}

// Length formats a length to three decimal places with its unit symbol.
func Length(v float64, symbol string) string {
	return fmt.Sprintf("%.3f %s", v, symbol)
}

// Latitude formats a site latitude to four decimal places, north positive.
func Latitude(v float64) string {
	if v < 0 {
		return fmt.Sprintf("%.4f° S", -v)
	}
	return fmt.Sprintf("%.4f° N", v)
}

// Longitude formats a site longitude to four decimal places, east positive.
func Longitude(v float64) string {
	if v < 0 {
		return fmt.Sprintf("%.4f° W", -v)
	}
	return fmt.Sprintf("%.4f° E", v)
}

// OffsetMinutes formats the signed LMT offset in minutes.
func OffsetMinutes(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// Report renders the full construction report as console text.
func Report(d *yantra.Dimensions) string {
	sym := d.Site.Symbol
	var b strings.Builder

	rule := "===================================================\n"
	thin := "-----------------------------------\n"

	b.WriteString(rule)
	b.WriteString("      ANCIENT YANTRA DIMENSION GENERATOR REPORT\n")
	b.WriteString(rule)
	b.WriteString("\nSITE & SCALE SPECIFICATIONS\n")
	b.WriteString(thin)
	fmt.Fprintf(&b, "- Latitude (φ):          %s\n", Latitude(d.Site.Latitude))
	fmt.Fprintf(&b, "- Longitude (λ):         %s\n", Longitude(d.Site.Longitude))
	fmt.Fprintf(&b, "- Base Scale Radius (R): %s", Length(d.Site.Radius, sym))
	if d.Site.Radius != d.Site.InputRadius {
		fmt.Fprintf(&b, " (entered as %g %s)", d.Site.InputRadius, d.Site.Unit)
	}
	b.WriteString("\n")
	b.WriteString("- True North Alignment:  0.00° Azimuth (Mandatory for all Yantras)\n")

	b.WriteString("\n")
	b.WriteString(rule)
	b.WriteString("I. DIMENSIONAL DATA (Latitude φ Dependent)\n")
	b.WriteString(rule)

	b.WriteString("\n1. SAMRAT YANTRA (Giant Equinoctial Sundial)\n")
	b.WriteString(thin)
	fmt.Fprintf(&b, "- Gnomon Angle (φ):     %s\n", Angle(d.SamratGnomonAngle))
	b.WriteString("  * The angle the shadow-casting hypotenuse makes with the horizontal base.\n")
	fmt.Fprintf(&b, "- Gnomon Height (H):    %s\n", Length(d.SamratGnomonHeight, sym))
	b.WriteString("  * Calculated as H = R * tan(φ).\n")
	fmt.Fprintf(&b, "- Gnomon Base:          %s\n", Length(d.SamratGnomonBase, sym))
	fmt.Fprintf(&b, "- Gnomon Vertical Rise: %s\n", Length(d.SamratGnomonVertical, sym))
	b.WriteString("  * Right-triangle decomposition of a hypotenuse of length R: R*cos(φ) and R*sin(φ).\n")
	fmt.Fprintf(&b, "- Declination Scale Example (15°): %s\n", Length(d.DeclinationScale15, sym))
	b.WriteString("  * Distance along the gnomon axis for declination δ is D = R * tan(δ).\n")

	b.WriteString("\n2. NADIVALAYA YANTRA (Equatorial Disc)\n")
	b.WriteString(thin)
	fmt.Fprintf(&b, "- Disc Tilt Angle:      %s\n", Angle(d.NadivalayaTilt))
	b.WriteString("  * The angle the equatorial plane (disc) is tilted up from the horizontal.\n")
	fmt.Fprintf(&b, "- Disc Radius (R):      %s\n", Length(d.Site.Radius, sym))
	b.WriteString("  * The physical radius of the disc should match the Base Scale R.\n")

	b.WriteString("\n3. DAKSINOTTARA BHITTI YANTRA (Meridian Wall)\n")
	b.WriteString(thin)
	fmt.Fprintf(&b, "- Wall Alignment:       %s\n", yantra.BhittiAlignment)
	b.WriteString("  * The wall must be constructed exactly North-South.\n")
	fmt.Fprintf(&b, "- Arc Radius (R):       %s\n", Length(d.Site.Radius, sym))
	fmt.Fprintf(&b, "- Celestial Pole Altitude Mark:    %s\n", Angle(d.BhittiPoleAltitude))
	fmt.Fprintf(&b, "- Equator Zenith Distance Mark:    %s\n", Angle(d.BhittiEquatorZD))

	b.WriteString("\n4. RASIVALAYA YANTRAS (Ecliptic Rings)\n")
	b.WriteString(thin)
	b.WriteString("- The structure's tilt is determined by the Ecliptic plane's geometry:\n")
	fmt.Fprintf(&b, "  - Max Zenith Distance (Winter Solstice): %s\n", Angle(d.RasivalayaZDWinter))
	fmt.Fprintf(&b, "  - Min Zenith Distance (Summer Solstice): %s\n", Angle(d.RasivalayaZDSummer))
	fmt.Fprintf(&b, "- Ring Diameter:        %s\n", Length(d.Site.Radius, sym))
	b.WriteString("  * The diameter of the 12 masonry rings is set proportionally to the Base Scale R.\n")

	b.WriteString("\n5. DIGAMSA YANTRA (Azimuth Instrument)\n")
	b.WriteString(thin)
	fmt.Fprintf(&b, "- Platform Diameter:    %s\n", Length(d.DigamsaDiameter, sym))
	fmt.Fprintf(&b, "- Central Pillar (R/5): %s\n", Length(d.DigamsaPillar, sym))
	b.WriteString("  * Base must be perfectly level; zero mark must be True North.\n")

	b.WriteString("\n6. RAMA YANTRA (Altitude & Azimuth Cylinder)\n")
	b.WriteString(thin)
	fmt.Fprintf(&b, "- Central Pillar Height (H): %s\n", Length(d.RamaPillarHeight, sym))
	fmt.Fprintf(&b, "- Outer Wall Radius (R):     %s\n", Length(d.RamaWallRadius, sym))
	fmt.Fprintf(&b, "- Altitude Scale Example (45°): %s\n", Length(d.AltitudeScale45, sym))
	b.WriteString("  * Altitude scale is Z = R * tan(h); azimuth scale is ρ = R * cos(h).\n")

	b.WriteString("\n")
	b.WriteString(rule)
	b.WriteString("II. CALIBRATION DATA (Longitude λ Dependent)\n")
	b.WriteString(rule)
	b.WriteString("\n")
	fmt.Fprintf(&b, "- LMT to IST Offset:    %s\n", d.TimeOffset.Label)
	wording := "behind"
	if d.TimeOffset.AheadOfIST() {
		wording = "ahead of"
	}
	fmt.Fprintf(&b, "  * Local Mean Time (LMT) measured by the Yantra is this amount %s Indian Standard Time (IST).\n", wording)
	b.WriteString("\n- Equation of Time (EoT) Key Points:\n")
	for _, p := range d.Calibration {
		fmt.Fprintf(&b, "  * %s: %+.1f min", p.Date, p.Minutes)
		if p.Note != "" {
			fmt.Fprintf(&b, " (%s)", p.Note)
		}
		b.WriteString("\n")
	}
	b.WriteString("  * Note: The final time reading must be corrected by LMT Offset AND the daily EoT.\n")

	b.WriteString("\n")
	b.WriteString(rule)
	b.WriteString("REPORT END.\n")
	b.WriteString(rule)

	return b.String()
}

// Group is a titled set of Dimension/Value rows for one UI panel.
type Group struct {
	Title string
	Rows  [][2]string
}

// Groups splits the dimension set into the four display panels. When dms is
// true, angles render in degrees/minutes/seconds instead of decimal degrees.
func Groups(d *yantra.Dimensions, dms bool) []Group {
	sym := d.Site.Symbol

	angle := Angle
	if dms {
		angle = func(v float64) string { return yantra.ToDMS(v).String() }
	}

	summary := Group{
		Title: "Summary & Time",
		Rows: [][2]string{
			{"Latitude (φ)", angle(d.Site.Latitude)},
			{"Longitude (λ)", angle(d.Site.Longitude)},
			{"Scale Factor (R)", fmt.Sprintf("%g %s", d.Site.InputRadius, d.Site.Unit)},
			{"Effective Radius", Length(d.Site.Radius, sym)},
			{"Colatitude (90° - φ)", angle(d.Colatitude)},
			{"Pala-bha (Equinox Shadow Length)", Length(d.PalaBha, sym)},
			{"Time Correction (vs IST)", OffsetMinutes(d.TimeOffset.Minutes) + " min"},
			{"LMT to IST Offset", d.TimeOffset.Label},
		},
	}

	samrat := Group{
		Title: "Samrat Yantra",
		Rows: [][2]string{
			{"Gnomon Axis Angle (Slope to Horizontal)", angle(d.SamratGnomonAngle)},
			{"Quadrant Radius (R)", Length(d.Site.Radius, sym)},
			{"Gnomon Height (H = R·tanφ)", Length(d.SamratGnomonHeight, sym)},
			{"Gnomon Horizontal Base Length", Length(d.SamratGnomonBase, sym)},
			{"Gnomon Vertical Height at Base", Length(d.SamratGnomonVertical, sym)},
			{"Declination Scale Example (15°)", Length(d.DeclinationScale15, sym)},
			{"Alignment Note", "True North-South alignment is mandatory."},
		},
	}

	bhitti := Group{
		Title: "Bhitti & Nadi Yantra",
		Rows: [][2]string{
			{"Arc Radius (R)", Length(d.Site.Radius, sym)},
			{"Altitude of Celestial Pole (North)", angle(d.BhittiPoleAltitude)},
			{"Zenith Distance of Equator (90° - φ)", angle(d.BhittiEquatorZD)},
			{"Wall Alignment", yantra.BhittiAlignment},
			{"Nadi Valaya Tilt (Face to Horizontal)", angle(d.NadivalayaTilt)},
			{"Gnomon Axis", "Must point True North (to the Celestial Pole)."},
		},
	}

	others := Group{
		Title: "Rama, Digamsa & Rasivalaya",
		Rows: [][2]string{
			{"Digamsa Platform Diameter", Length(d.DigamsaDiameter, sym)},
			{"Digamsa Central Pillar (R/5)", Length(d.DigamsaPillar, sym)},
			{"Rama Central Pillar Height (H)", Length(d.RamaPillarHeight, sym)},
			{"Rama Outer Wall Radius (R)", Length(d.RamaWallRadius, sym)},
			{"Rama Altitude Scale Example (45°)", Length(d.AltitudeScale45, sym)},
			{"Rasivalaya Max Zenith Distance (Winter)", angle(d.RasivalayaZDWinter)},
			{"Rasivalaya Min Zenith Distance (Summer)", angle(d.RasivalayaZDSummer)},
			{"Obliquity of the Ecliptic (ε)", fmt.Sprintf("%g°", yantra.ObliquityEcliptic)},
		},
	}

	return []Group{summary, samrat, bhitti, others}
}

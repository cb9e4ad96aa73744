package format

import (
	"strings"
	"testing"

	"yantra-tool/internal/site"
	"yantra-tool/internal/yantra"
)

func mustCalculate(t *testing.T, c site.Config) yantra.Dimensions {
	t.Helper()
	d, err := yantra.Calculate(c.Resolve())
	if err != nil {
		t.Fatalf("Calculate() error = %v", err)
	}
	return d
}

func TestReportJaipur(t *testing.T) {
	d := mustCalculate(t, site.Config{
		Latitude: 26.9167, Longitude: 75.8167, Radius: 10.0, Unit: site.Meters,
	})

	out := Report(&d)

	for _, want := range []string{
		"ANCIENT YANTRA DIMENSION GENERATOR REPORT",
		"26.9167° N",
		"75.8167° E",
		"26.917°", // gnomon angle, three decimals
		"63.083°", // nadivalaya tilt
		"86.523°", // rasivalaya max zenith distance (winter)
		"39.643°", // rasivalaya min zenith distance (summer)
		"00h 26m 43s BEHIND IST",
		yantra.BhittiAlignment,
		"Feb 11: -14.2 min (Fastest Sun)",
		"May 14: +3.8 min",
		"Nov 03: +16.4 min (Slowest Sun)",
		"REPORT END.",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q", want)
		}
	}

	if !strings.Contains(out, "behind Indian Standard Time") {
		t.Error("report should describe LMT as behind IST for Jaipur")
	}
}

func TestReportByteIdentical(t *testing.T) {
	c := site.Config{Latitude: 26.9167, Longitude: 75.8167, Radius: 10.0, Unit: site.Meters}
	a := mustCalculate(t, c)
	b := mustCalculate(t, c)

	if Report(&a) != Report(&b) {
		t.Error("identical inputs produced different report text")
	}
}

func TestReportAheadOfIST(t *testing.T) {
	d := mustCalculate(t, site.Config{
		Latitude: 22.5726, Longitude: 88.3639, Radius: 5, Unit: site.Meters,
	})

	out := Report(&d)

	if !strings.Contains(out, "AHEAD OF IST") {
		t.Error("eastern site should be ahead of IST")
	}
	if !strings.Contains(out, "ahead of Indian Standard Time") {
		t.Error("wording should follow the offset sign")
	}
}

func TestReportAngulaConversion(t *testing.T) {
	d := mustCalculate(t, site.Config{
		Latitude: 26.9167, Longitude: 75.8167, Radius: 500, Unit: site.Angula,
	})

	out := Report(&d)

	if !strings.Contains(out, "10.000 m") {
		t.Error("report should show the converted effective radius")
	}
	if !strings.Contains(out, "(entered as 500 angula)") {
		t.Error("report should note the original angula entry")
	}
}

func TestFieldFormatters(t *testing.T) {
	if got := Angle(26.9167); got != "26.917°" {
		t.Errorf("Angle() = %q", got)
	}
	if got := Length(5.0812, "m"); got != "5.081 m" {
		t.Errorf("Length() = %q", got)
	}
	if got := Latitude(-33.8688); got != "33.8688° S" {
		t.Errorf("Latitude() = %q", got)
	}
	if got := Longitude(-70.6693); got != "70.6693° W" {
		t.Errorf("Longitude() = %q", got)
	}
	if got := OffsetMinutes(-26.7332); got != "-26.73" {
		t.Errorf("OffsetMinutes() = %q", got)
	}
}

func TestGroups(t *testing.T) {
	d := mustCalculate(t, site.Config{
		Latitude: 26.9167, Longitude: 75.8167, Radius: 10.0, Unit: site.Meters,
	})

	groups := Groups(&d, false)

	if len(groups) != 4 {
		t.Fatalf("Groups() returned %d groups, want 4", len(groups))
	}

	wantTitles := []string{
		"Summary & Time",
		"Samrat Yantra",
		"Bhitti & Nadi Yantra",
		"Rama, Digamsa & Rasivalaya",
	}
	for i, g := range groups {
		if g.Title != wantTitles[i] {
			t.Errorf("group %d title = %q, want %q", i, g.Title, wantTitles[i])
		}
		if len(g.Rows) == 0 {
			t.Errorf("group %q has no rows", g.Title)
		}
	}

	var found bool
	for _, row := range groups[1].Rows {
		if row[0] == "Gnomon Height (H = R·tanφ)" {
			found = true
			if !strings.HasSuffix(row[1], " meters") {
				t.Errorf("gnomon height value = %q, want meters suffix", row[1])
			}
		}
	}
	if !found {
		t.Error("Samrat group missing gnomon height row")
	}
}

func TestGroupsDMS(t *testing.T) {
	d := mustCalculate(t, site.Config{
		Latitude: 26.9167, Longitude: 75.8167, Radius: 10.0, Unit: site.Meters,
	})

	groups := Groups(&d, true)

	if got := groups[0].Rows[0][1]; got != "26° 55' 0.12\"" {
		t.Errorf("DMS latitude = %q, want %q", got, "26° 55' 0.12\"")
	}
	// Lengths are unaffected by the DMS toggle.
	for _, row := range groups[1].Rows {
		if row[0] == "Quadrant Radius (R)" && row[1] != "10.000 meters" {
			t.Errorf("quadrant radius = %q, want 10.000 meters", row[1])
		}
	}
}

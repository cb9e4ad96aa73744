package export

import (
	"encoding/csv"
	"fmt"
	"os"

	"yantra-tool/internal/yantra"
)

var csvHeaders = []string{
	"date",
	"time",
	"latitude",
	"longitude",
	"radius",
	"unit",
	"effective_radius",
	"unit_symbol",
	"samrat_angle",
	"samrat_height",
	"samrat_base",
	"samrat_vertical",
	"nadivalaya_tilt",
	"rasivalaya_zd_ws",
	"rasivalaya_zd_ss",
	"digamsa_diameter",
	"digamsa_pillar",
	"time_offset_min",
	"time_offset",
}

// WriteCSV writes computed dimensions to a CSV file (semicolon-separated),
// creating it with headers if it doesn't exist, or appending rows if it does.
func WriteCSV(path string, results []yantra.Result) error {
	exists := fileExists(path)

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("open csv file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	w.Comma = ';'
	defer w.Flush()

	if !exists {
		if err := w.Write(csvHeaders); err != nil {
			return fmt.Errorf("write csv headers: %w", err)
		}
	}

	for _, r := range results {
		d := r.Dimensions
		row := []string{
			r.Timestamp.Format("2006-01-02"),
			r.Timestamp.Format("15:04:05"),
			fmt.Sprintf("%.4f", d.Site.Latitude),
			fmt.Sprintf("%.4f", d.Site.Longitude),
			fmt.Sprintf("%g", d.Site.InputRadius),
			string(d.Site.Unit),
			fmt.Sprintf("%.3f", d.Site.Radius),
			d.Site.Symbol,
			fmt.Sprintf("%.3f", d.SamratGnomonAngle),
			fmt.Sprintf("%.3f", d.SamratGnomonHeight),
			fmt.Sprintf("%.3f", d.SamratGnomonBase),
			fmt.Sprintf("%.3f", d.SamratGnomonVertical),
			fmt.Sprintf("%.3f", d.NadivalayaTilt),
			fmt.Sprintf("%.3f", d.RasivalayaZDWinter),
			fmt.Sprintf("%.3f", d.RasivalayaZDSummer),
			fmt.Sprintf("%.3f", d.DigamsaDiameter),
			fmt.Sprintf("%.3f", d.DigamsaPillar),
			fmt.Sprintf("%.2f", d.TimeOffset.Minutes),
			d.TimeOffset.Label,
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	return nil
}

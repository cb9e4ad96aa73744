package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"yantra-tool/internal/export"
	"yantra-tool/internal/format"
	"yantra-tool/internal/site"
	"yantra-tool/internal/yantra"
)

// RunnerConfig holds all CLI options for one report run.
type RunnerConfig struct {
	// Site input
	Latitude  float64
	Longitude float64
	Radius    float64
	Unit      string

	// Preset sites
	SiteName    string
	PresetsFile string

	// Input / display modes
	Prompt bool
	DMS    bool

	// Output
	OutputTXT string
	OutputCSV string
}

// Run resolves the site input, computes the dimensions and prints the
// report, writing export files when requested.
func Run(cfg *RunnerConfig, in io.Reader, out io.Writer) error {
	var extra []site.Preset
	if cfg.PresetsFile != "" {
		loaded, err := site.LoadPresets(cfg.PresetsFile)
		if err != nil {
			return err
		}
		extra = loaded
	}

	unit, err := site.ParseUnit(cfg.Unit)
	if err != nil {
		return err
	}
	sc := site.Config{
		Latitude:  cfg.Latitude,
		Longitude: cfg.Longitude,
		Radius:    cfg.Radius,
		Unit:      unit,
	}

	switch {
	case cfg.Prompt:
		sc, err = PromptConfig(in, out)
		if err != nil {
			return err
		}
	case cfg.SiteName != "":
		p, ok := site.FindPreset(cfg.SiteName, extra)
		if !ok {
			return fmt.Errorf("unknown site %q: %w", cfg.SiteName, site.ErrInvalidInput)
		}
		sc.Latitude = p.Latitude
		sc.Longitude = p.Longitude
	}

	if err := sc.Validate(site.NorthEast); err != nil {
		return err
	}

	d, err := yantra.Calculate(sc.Resolve())
	if err != nil {
		return err
	}

	fmt.Fprintln(out, format.Report(&d))

	if cfg.DMS {
		fmt.Fprintln(out, "SITE COORDINATES (DMS)")
		fmt.Fprintf(out, "- Latitude (φ):  %s\n", yantra.ToDMS(d.Site.Latitude))
		fmt.Fprintf(out, "- Longitude (λ): %s\n", yantra.ToDMS(d.Site.Longitude))
	}

	result := yantra.Result{Timestamp: time.Now(), Dimensions: d}

	if cfg.OutputTXT != "" {
		if err := export.EnsureDir(cfg.OutputTXT); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
		if err := export.WriteTXT(cfg.OutputTXT, []yantra.Result{result}); err != nil {
			return err
		}
		fmt.Fprintf(out, "Report saved to: %s\n", cfg.OutputTXT)
	}

	if cfg.OutputCSV != "" {
		if err := export.EnsureDir(cfg.OutputCSV); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
		if err := export.WriteCSV(cfg.OutputCSV, []yantra.Result{result}); err != nil {
			return err
		}
		fmt.Fprintf(out, "Dimensions saved to: %s\n", cfg.OutputCSV)
	}

	return nil
}

// PromptConfig interactively collects site data. A malformed number aborts
// the whole prompt with an error wrapping site.ErrInvalidInput; the caller
// decides whether to re-run.
func PromptConfig(in io.Reader, out io.Writer) (site.Config, error) {
	fmt.Fprintln(out, "--- WELCOME TO YANTRA DIMENSION GENERATOR ---")
	fmt.Fprintln(out, "Please enter the required geographical data for the construction site.")

	scanner := bufio.NewScanner(in)

	lat, err := promptFloat(scanner, out, "Enter Latitude (e.g., 26.9167 for Jaipur): ")
	if err != nil {
		return site.Config{}, err
	}
	lon, err := promptFloat(scanner, out, "Enter Longitude (e.g., 75.8167 for Jaipur): ")
	if err != nil {
		return site.Config{}, err
	}
	radius, err := promptFloat(scanner, out, "Enter Base Scale Radius (R, e.g., 10.0 meters): ")
	if err != nil {
		return site.Config{}, err
	}

	return site.Config{Latitude: lat, Longitude: lon, Radius: radius, Unit: site.Meters}, nil
}

func promptFloat(scanner *bufio.Scanner, out io.Writer, prompt string) (float64, error) {
	fmt.Fprint(out, prompt)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return 0, fmt.Errorf("read input: %w", err)
		}
		return 0, fmt.Errorf("no input: %w", site.ErrInvalidInput)
	}
	text := strings.TrimSpace(scanner.Text())
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q: %w", text, site.ErrInvalidInput)
	}
	return v, nil
}

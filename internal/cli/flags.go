package cli

import (
	"flag"
	"fmt"
	"math"
	"os"
)

// ParseFlags parses command-line arguments and returns a RunnerConfig.
// Returns nil config and prints help if no arguments or --help is provided.
func ParseFlags() (*RunnerConfig, error) {
	if len(os.Args) < 2 {
		return nil, nil // No args = use GUI
	}

	if os.Args[1] == "help" || os.Args[1] == "--help" || os.Args[1] == "-h" {
		PrintUsage()
		return nil, nil
	}

	cfg := &RunnerConfig{
		Radius: 10.0,
		Unit:   "meters",
	}

	fs := flag.NewFlagSet("yantra-tool", flag.ContinueOnError)

	// Coordinates default to NaN so a missing flag is distinguishable
	// from a legitimate zero (the equator and the prime meridian).
	fs.Float64Var(&cfg.Latitude, "lat", math.NaN(), "Site latitude in decimal degrees north")
	fs.Float64Var(&cfg.Longitude, "lon", math.NaN(), "Site longitude in decimal degrees east")
	fs.Float64Var(&cfg.Radius, "r", cfg.Radius, "Base scale radius R")
	fs.Float64Var(&cfg.Radius, "radius", cfg.Radius, "Base scale radius R")
	fs.StringVar(&cfg.Unit, "unit", cfg.Unit, "Radius unit (meters, feet, centimeters, angula)")

	// Preset sites
	fs.StringVar(&cfg.SiteName, "site", "", "Preset observatory site name (e.g. Jaipur)")
	fs.StringVar(&cfg.PresetsFile, "presets", "", "TOML file with additional site presets")

	// Input / display modes
	fs.BoolVar(&cfg.Prompt, "prompt", false, "Prompt for site data interactively")
	fs.BoolVar(&cfg.DMS, "dms", false, "Also print site coordinates in degrees/minutes/seconds")

	// Output flags
	fs.StringVar(&cfg.OutputTXT, "o", "", "Write the report to a text file")
	fs.StringVar(&cfg.OutputTXT, "output", "", "Write the report to a text file")
	fs.StringVar(&cfg.OutputCSV, "csv", "", "Append computed dimensions to a CSV file")

	if err := fs.Parse(os.Args[1:]); err != nil {
		return nil, err
	}

	// Validate: must have coordinates, a preset site, or prompt mode
	hasCoords := !math.IsNaN(cfg.Latitude) && !math.IsNaN(cfg.Longitude)
	if !hasCoords && cfg.SiteName == "" && !cfg.Prompt {
		fmt.Fprintf(os.Stderr, "Error: must provide -lat and -lon, -site <name>, or -prompt\n\n")
		PrintUsage()
		return nil, fmt.Errorf("missing required flags")
	}

	return cfg, nil
}

// PrintUsage prints the help message.
func PrintUsage() {
	fmt.Fprintf(os.Stderr, `Yantra Dimension Tool

Computes construction dimensions for the Jantar Mantar astronomical
instruments from a site's latitude, longitude and scale radius.

Usage: yantra-tool [flags]
       yantra-tool help    (show this message)
       yantra-tool         (no flags: open the GUI)

SITE INPUT:
  -lat <deg>               Latitude in decimal degrees north (0 to 90)
  -lon <deg>               Longitude in decimal degrees east (0 to 180)
  -r, -radius <value>      Base scale radius R (default: 10)
  -unit <name>             Radius unit: meters, feet, centimeters, angula
                           (angula converts at 0.02 m per unit; default: meters)
  -site <name>             Use a preset observatory site instead of -lat/-lon
                           (Jaipur, Delhi, Ujjain, Varanasi, Mathura)
  -presets <file>          Load additional site presets from a TOML file
  -prompt                  Prompt for site data interactively

DISPLAY:
  -dms                     Also print coordinates as degrees/minutes/seconds

OUTPUT:
  -o, -output <file>       Write the report to a text file
  -csv <file>              Append the computed dimensions to a CSV file

EXAMPLES:
  # Report for the Jaipur observatory at 10 m scale
  yantra-tool -site Jaipur -r 10

  # Explicit coordinates, radius in the traditional angula unit
  yantra-tool -lat 26.9167 -lon 75.8167 -r 500 -unit angula

  # Prompt for input and save the report
  yantra-tool -prompt -o report.txt

  # Accumulate dimension rows for several scales
  yantra-tool -site Ujjain -r 5 -csv dimensions.csv

`)
}

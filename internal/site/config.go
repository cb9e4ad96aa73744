package site

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidInput marks validation failures: out-of-range coordinates,
// non-positive radius, or values that never parsed to a finite number.
// Callers test for it with errors.Is and re-prompt.
var ErrInvalidInput = errors.New("invalid input")

// Unit is the measurement unit for the scale radius.
type Unit string

const (
	Meters      Unit = "meters"
	Feet        Unit = "feet"
	Centimeters Unit = "centimeters"
	// Angula is the traditional unit, approximately 2 cm; values given in
	// angula are converted to meters before any dimension is computed.
	Angula Unit = "angula"
)

// MetersPerAngula converts the traditional angula unit to meters.
const MetersPerAngula = 0.02

// ParseUnit maps a user-supplied unit name to a Unit.
func ParseUnit(s string) (Unit, error) {
	switch Unit(s) {
	case Meters, Feet, Centimeters, Angula:
		return Unit(s), nil
	case "":
		return Meters, nil
	}
	return "", fmt.Errorf("unknown unit %q (meters, feet, centimeters, angula): %w", s, ErrInvalidInput)
}

// Symbol returns the label attached to lengths expressed in this unit.
// Angula dimensions are reported in meters after conversion.
func (u Unit) Symbol() string {
	if u == Angula {
		return "m"
	}
	return string(u)
}

// Bounds defines the accepted coordinate intervals. Both ends are inclusive.
type Bounds struct {
	LatMin, LatMax float64
	LonMin, LonMax float64
}

var (
	// NorthEast accepts northern-hemisphere latitudes and eastern
	// longitudes only, matching the console report front end.
	NorthEast = Bounds{LatMin: 0, LatMax: 90, LonMin: 0, LonMax: 180}

	// Global accepts the full coordinate range, used by the GUI.
	Global = Bounds{LatMin: -90, LatMax: 90, LonMin: -180, LonMax: 180}
)

// Config holds the raw site inputs for one calculation.
type Config struct {
	Latitude  float64 // degrees, north positive
	Longitude float64 // degrees, east positive
	Radius    float64 // scale radius R in Unit
	Unit      Unit
}

// Validate checks the config against the given coordinate bounds.
// Every failure wraps ErrInvalidInput and no partial result is produced.
func (c Config) Validate(b Bounds) error {
	for _, v := range []float64{c.Latitude, c.Longitude, c.Radius} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("not a number: %w", ErrInvalidInput)
		}
	}
	if c.Latitude < b.LatMin || c.Latitude > b.LatMax {
		return fmt.Errorf("latitude out of range: must be between %g and %g, got %g: %w",
			b.LatMin, b.LatMax, c.Latitude, ErrInvalidInput)
	}
	if c.Longitude < b.LonMin || c.Longitude > b.LonMax {
		return fmt.Errorf("longitude out of range: must be between %g and %g, got %g: %w",
			b.LonMin, b.LonMax, c.Longitude, ErrInvalidInput)
	}
	if c.Radius <= 0 {
		return fmt.Errorf("radius must be positive, got %g: %w", c.Radius, ErrInvalidInput)
	}
	if _, err := ParseUnit(string(c.Unit)); err != nil {
		return err
	}
	return nil
}

// Resolved is a validated config with the unit conversion applied.
type Resolved struct {
	Latitude    float64
	Longitude   float64
	Radius      float64 // effective scale radius after unit conversion
	InputRadius float64 // radius exactly as entered
	Unit        Unit
	Symbol      string
}

// Resolve applies the unit conversion factor and fixes the unit symbol.
// Named units pass through unchanged; angula converts to meters.
func (c Config) Resolve() Resolved {
	unit := c.Unit
	if unit == "" {
		unit = Meters
	}
	r := Resolved{
		Latitude:    c.Latitude,
		Longitude:   c.Longitude,
		Radius:      c.Radius,
		InputRadius: c.Radius,
		Unit:        unit,
		Symbol:      unit.Symbol(),
	}
	if unit == Angula {
		r.Radius = c.Radius * MetersPerAngula
	}
	return r
}

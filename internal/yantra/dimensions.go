// Package yantra computes construction dimensions for the masonry
// astronomical instruments of the Jantar Mantar observatories from a site's
// latitude, longitude and a chosen scale radius. Calculate is a pure
// function: identical inputs always produce identical output.
package yantra

import (
	"errors"
	"fmt"
	"math"

	"yantra-tool/internal/site"
)

// ErrCalculation marks a calculation that produced (or was given) a
// non-finite value. Unreachable once site validation has run.
var ErrCalculation = errors.New("calculation failed")

// TimeOffset is the constant difference between the site's Local Mean Time
// and Indian Standard Time.
type TimeOffset struct {
	Minutes float64 // signed; positive means LMT runs ahead of IST
	Label   string  // e.g. "00h 26m 43s BEHIND IST"
}

// AheadOfIST reports whether local mean time runs ahead of IST. A zero
// offset reports false, matching the label.
func (t TimeOffset) AheadOfIST() bool {
	return t.Minutes > 0
}

// ComputeTimeOffset derives the LMT-to-IST offset for a longitude: four
// minutes of time per degree from the IST reference meridian.
func ComputeTimeOffset(longitude float64) TimeOffset {
	minutes := (longitude - ISTReferenceLongitude) * 4

	absSeconds := math.Abs(minutes) * 60
	h := int(absSeconds) / 3600
	m := (int(absSeconds) % 3600) / 60
	s := int(absSeconds) % 60

	direction := "BEHIND"
	if minutes > 0 {
		direction = "AHEAD OF"
	}

	return TimeOffset{
		Minutes: minutes,
		Label:   fmt.Sprintf("%02dh %02dm %02ds %s IST", h, m, s, direction),
	}
}

// Dimensions holds every derived quantity for one site. Angles are in
// degrees, lengths in the resolved unit. The record is built fresh on every
// Calculate call and never mutated.
type Dimensions struct {
	Site site.Resolved

	// Samrat Yantra (equinoctial sundial). Two gnomon conventions coexist:
	// the hypotenuse form (height H = R·tanφ measured at the quadrant
	// radius) and the right-triangle decomposition (base R·cosφ, vertical
	// R·sinφ along a hypotenuse of length R).
	SamratGnomonAngle    float64 // slope of the gnomon edge, equals φ
	SamratGnomonHeight   float64 // R·tan(φ)
	SamratGnomonBase     float64 // R·cos(φ)
	SamratGnomonVertical float64 // R·sin(φ)

	Colatitude float64 // 90 − φ
	PalaBha    float64 // equinoctial noon shadow length, R·tan(φ)

	NadivalayaTilt float64 // equatorial disc tilt from horizontal, 90 − φ

	BhittiPoleAltitude float64 // meridian-wall mark: celestial pole altitude, φ
	BhittiEquatorZD    float64 // meridian-wall mark: equator zenith distance, 90 − φ

	RasivalayaZDWinter float64 // max zenith distance at winter solstice
	RasivalayaZDSummer float64 // min zenith distance at summer solstice

	DeclinationScale15 float64 // tangent-scale example, R·tan(15°)
	AltitudeScale45    float64 // Rama altitude-scale example, R·tan(45°)

	DigamsaDiameter float64 // azimuth platform diameter, 2R
	DigamsaPillar   float64 // central pillar height, R/5

	RamaPillarHeight float64 // central pillar height, R
	RamaWallRadius   float64 // outer wall radius, R

	TimeOffset  TimeOffset
	Calibration []CalibrationPoint
}

// Calculate derives all instrument dimensions for a resolved site.
// It fails with ErrCalculation only when an input or result is not finite.
func Calculate(s site.Resolved) (Dimensions, error) {
	for _, v := range []float64{s.Latitude, s.Longitude, s.Radius} {
		if !isFinite(v) {
			return Dimensions{}, fmt.Errorf("non-finite input %g: %w", v, ErrCalculation)
		}
	}

	phi := s.Latitude
	phiRad := degToRad(phi)
	r := s.Radius
	colat := 90.0 - phi

	d := Dimensions{
		Site: s,

		SamratGnomonAngle:    phi,
		SamratGnomonHeight:   r * math.Tan(phiRad),
		SamratGnomonBase:     r * math.Cos(phiRad),
		SamratGnomonVertical: r * math.Sin(phiRad),

		Colatitude: colat,
		PalaBha:    r * math.Tan(phiRad),

		NadivalayaTilt: colat,

		BhittiPoleAltitude: phi,
		BhittiEquatorZD:    colat,

		RasivalayaZDWinter: colat + ObliquityEcliptic,
		RasivalayaZDSummer: colat - ObliquityEcliptic,

		DeclinationScale15: r * math.Tan(degToRad(15)),
		AltitudeScale45:    r * math.Tan(degToRad(45)),

		DigamsaDiameter: 2 * r,
		DigamsaPillar:   r / 5,

		RamaPillarHeight: r,
		RamaWallRadius:   r,

		TimeOffset:  ComputeTimeOffset(s.Longitude),
		Calibration: CalibrationChart(),
	}

	if !isFinite(d.SamratGnomonHeight) {
		return Dimensions{}, fmt.Errorf("non-finite gnomon height for latitude %g: %w", phi, ErrCalculation)
	}
	return d, nil
}

func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

package yantra

import (
	"fmt"
	"math"
)

// DMS is a decimal angle decomposed into degrees, minutes and seconds.
// The sign is carried separately so the magnitude fields stay non-negative.
type DMS struct {
	Negative bool
	Degrees  int
	Minutes  int
	Seconds  float64
}

// ToDMS decomposes a decimal-degree value. The integer part becomes
// degrees, the fractional remainder ×60 minutes, and the remainder of that
// ×60 seconds. Southern/western values keep their sign in Negative.
func ToDMS(deg float64) DMS {
	neg := deg < 0
	deg = math.Abs(deg)

	d := int(deg)
	mFloat := (deg - float64(d)) * 60
	m := int(mFloat)
	s := (mFloat - float64(m)) * 60

	return DMS{Negative: neg, Degrees: d, Minutes: m, Seconds: s}
}

// String renders the angle as `26° 55' 0.12"`, seconds to two decimals.
func (d DMS) String() string {
	sign := ""
	if d.Negative {
		sign = "-"
	}
	return fmt.Sprintf("%s%d° %d' %.2f\"", sign, d.Degrees, d.Minutes, d.Seconds)
}

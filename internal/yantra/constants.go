package yantra

// ObliquityEcliptic is ε, the tilt between Earth's equatorial and orbital
// planes, in degrees.
const ObliquityEcliptic = 23.44

// ISTReferenceLongitude is λ₀, the reference meridian of Indian Standard
// Time (82° 30' E), in degrees.
const ISTReferenceLongitude = 82.5

// BhittiAlignment is the construction requirement for the meridian wall.
const BhittiAlignment = "Must be aligned precisely North-South (Local Meridian)"

// CalibrationPoint is one fixed equation-of-time correction.
type CalibrationPoint struct {
	Date    string  // calendar-date label, e.g. "Feb 11"
	Minutes float64 // EoT correction in minutes
	Note    string  // empty when there is nothing notable about the date
}

// The simplified three-point equation-of-time chart used for dial
// calibration. Values are fixed; they do not depend on the site.
var calibrationChart = []CalibrationPoint{
	{Date: "Feb 11", Minutes: -14.2, Note: "Fastest Sun"},
	{Date: "May 14", Minutes: 3.8},
	{Date: "Nov 03", Minutes: 16.4, Note: "Slowest Sun"},
}

// CalibrationChart returns the fixed equation-of-time chart in calendar
// order.
func CalibrationChart() []CalibrationPoint {
	out := make([]CalibrationPoint, len(calibrationChart))
	copy(out, calibrationChart)
	return out
}

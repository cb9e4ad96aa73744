package yantra

import "time"

// Result pairs a computed dimension set with the time it was generated.
// Used by the GUI history table and the export writers.
type Result struct {
	Timestamp  time.Time
	Dimensions Dimensions
}

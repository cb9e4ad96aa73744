package export

import (
	"fmt"
	"os"
	"strings"

	"yantra-tool/internal/format"
	"yantra-tool/internal/yantra"
)

// WriteTXT writes full construction reports to a text file, one per result.
func WriteTXT(path string, results []yantra.Result) error {
	var b strings.Builder
	for i, r := range results {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(format.Report(&r.Dimensions))
	}

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("write txt file: %w", err)
	}
	return nil
}

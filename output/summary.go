package output

import (
	"fmt"
	"io"
	"time"

	"github.com/Alain-L/cookielog/analysis"
)

// PrintProcessingSummary writes a one-line summary of the scan.
// A negative size means the input size is unknown, as for stdin.
func PrintProcessingSummary(w io.Writer, st analysis.Stats, duration time.Duration, size int64) {
	sizeStr := "stdin"
	if size >= 0 {
		sizeStr = formatBytes(size)
	}
	stop := ""
	if st.Stopped {
		stop = fmt.Sprintf(", stopped at line %d", st.StopLine)
	}
	fmt.Fprintf(w, "cookielog – %d records processed, %d matched, %d skipped%s in %.2f s (%s)\n",
		st.Processed, st.Matched, st.Skipped, stop, duration.Seconds(), sizeStr)
}

// formatBytes converts a byte count to a human-readable string (kB, MB, GB, etc).
func formatBytes(b int64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%dB", b)
	}

	div, exp := int64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f%cB", float64(b)/float64(div), "kMGTPE"[exp])
}

package pace

import (
	"fmt"
	"math"
)

// Format renders seconds as "m:ss". Negative input is clamped to zero and
// the value is rounded to the nearest second; minutes are never padded.
func Format(seconds float64) string {
	total := int64(math.Round(math.Max(0, seconds)))

	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

// FormatRange renders a zone range as "lo to hi".
func FormatRange(lo, hi float64) string {
	return Format(lo) + " to " + Format(hi)
}

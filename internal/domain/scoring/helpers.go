package scoring

import (
	"math"
	"strings"
)

// engagementSaturation is the log10 denominator for engagement counts:
// ~10,000 units of engagement saturate a component to 1.0.
const engagementSaturation = 4.0

// logScale maps a non-negative count onto [0, 1] with base-10 log scaling.
func logScale(n int) float64 {
	if n <= 0 {
		return 0
	}
	return clamp01(math.Log10(float64(n)+1) / engagementSaturation)
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}

// containsAny reports whether s contains any of the given substrings,
// case-insensitively.
func containsAny(s string, subs ...string) bool {
	lower := strings.ToLower(s)
	for _, sub := range subs {
		if strings.Contains(lower, strings.ToLower(sub)) {
			return true
		}
	}
	return false
}

// Package layout holds sizing heuristics shared by the views.
package layout

import "math"

// CompactThreshold is the container height below which the compact gap
// ratio applies.
const CompactThreshold = 768

// LogoTopGap returns the space to leave above the logo in a container of
// the given height.
func LogoTopGap(containerHeight float64) float64 {
	if containerHeight < CompactThreshold {
		return containerHeight * 0.13
	}
	return containerHeight * 0.18
}

// LogoTopGapRows is LogoTopGap for character-cell hosts, rounded to whole
// rows. Non-positive heights give zero.
func LogoTopGapRows(rows int) int {
	if rows <= 0 {
		return 0
	}
	return int(math.Round(LogoTopGap(float64(rows))))
}

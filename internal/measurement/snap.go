package measurement

import (
	"fmt"
	"math"
)

// Snap rounds distance to the nearest multiple of increment. Exact halves
// round away from zero, so 2.25 snaps to 2.5 with an increment of 0.5.
// A non-positive increment disables snapping.
func Snap(distance, increment float64) float64 {
	if increment <= 0 {
		return distance
	}
	return math.Round(distance/increment) * increment
}

// FormatDistance renders a distance for display, e.g. "2.50 m"
func FormatDistance(distance float64, unit string, precision int) string {
	if precision < 0 {
		precision = 0
	}
	if unit == "" {
		return fmt.Sprintf("%.*f", precision, distance)
	}
	return fmt.Sprintf("%.*f %s", precision, distance, unit)
}

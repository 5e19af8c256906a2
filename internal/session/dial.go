package session

import (
	"math"

	"github.com/akyairhashvil/meditimer/internal/util"
)

// AngleFromPoint converts a pointer offset from the dial centre into degrees,
// 0 at twelve o'clock and increasing clockwise. dy grows downwards, as on screen.
func AngleFromPoint(dx, dy float64) float64 {
	angle := math.Atan2(dy, dx) * 180 / math.Pi
	return math.Mod(angle+90+360, 360)
}

// MinutesFromAngle maps a dial angle to a whole number of minutes in [1, max].
func MinutesFromAngle(angle float64, max int) int {
	if max < 1 {
		max = 1
	}
	minutes := int(math.Round(angle / 360 * float64(max)))
	return util.Clamp(minutes, 1, max)
}

// AngleForMinutes is the handle position for a selected duration.
func AngleForMinutes(minutes, max int) float64 {
	if max < 1 {
		return 0
	}
	return float64(util.Clamp(minutes, 0, max)) / float64(max) * 360
}

// Package stats derives streaks, totals and achievements from completed sessions.
package stats

import (
	"time"

	"github.com/akyairhashvil/meditimer/internal/models"
)

// Streak counts consecutive calendar days ending today that appear in days.
// A missing today yields zero.
func Streak(days []string, today time.Time) int {
	if len(days) == 0 {
		return 0
	}
	set := make(map[string]struct{}, len(days))
	for _, d := range days {
		set[d] = struct{}{}
	}
	streak := 0
	cursor := time.Date(today.Year(), today.Month(), today.Day(), 12, 0, 0, 0, today.Location())
	for {
		if _, ok := set[cursor.Format(models.DateLayout)]; !ok {
			return streak
		}
		streak++
		cursor = cursor.AddDate(0, 0, -1)
	}
}

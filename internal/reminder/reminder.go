// Package reminder decides when the daily practice reminder is due.
package reminder

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/akyairhashvil/meditimer/internal/models"
)

// Validate checks the hour and minute ranges.
func Validate(r models.Reminder) error {
	if r.Hour < 0 || r.Hour > 23 {
		return fmt.Errorf("reminder hour %d out of range", r.Hour)
	}
	if r.Minute < 0 || r.Minute > 59 {
		return fmt.Errorf("reminder minute %d out of range", r.Minute)
	}
	return nil
}

// Parse accepts "HH:MM" (enabled) or "off" (disabled, keeping prev's time).
func Parse(input string, prev models.Reminder) (models.Reminder, error) {
	input = strings.TrimSpace(strings.ToLower(input))
	if input == "off" || input == "" {
		prev.Enabled = false
		return prev, nil
	}
	hh, mm, ok := strings.Cut(input, ":")
	if !ok {
		return prev, fmt.Errorf("expected HH:MM or off, got %q", input)
	}
	hour, err := strconv.Atoi(hh)
	if err != nil {
		return prev, fmt.Errorf("bad hour %q", hh)
	}
	minute, err := strconv.Atoi(mm)
	if err != nil {
		return prev, fmt.Errorf("bad minute %q", mm)
	}
	r := models.Reminder{Hour: hour, Minute: minute, Enabled: true}
	if err := Validate(r); err != nil {
		return prev, err
	}
	return r, nil
}

// Format renders r for display.
func Format(r models.Reminder) string {
	if !r.Enabled {
		return "off"
	}
	return fmt.Sprintf("%02d:%02d", r.Hour, r.Minute)
}

// Due reports whether the reminder should fire at now. last is the previous
// firing (zero if never); it fires at most once per local day in loc.
func Due(r models.Reminder, last, now time.Time, loc *time.Location) bool {
	if !r.Enabled {
		return false
	}
	if loc == nil {
		loc = time.Local
	}
	local := now.In(loc)
	at := time.Date(local.Year(), local.Month(), local.Day(), r.Hour, r.Minute, 0, 0, loc)
	if local.Before(at) {
		return false
	}
	if last.IsZero() {
		return true
	}
	return last.In(loc).Before(at)
}

// Next returns the next firing time after now.
func Next(r models.Reminder, now time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	local := now.In(loc)
	at := time.Date(local.Year(), local.Month(), local.Day(), r.Hour, r.Minute, 0, 0, loc)
	if !at.After(local) {
		at = at.AddDate(0, 0, 1)
	}
	return at
}

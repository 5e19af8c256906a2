package tui

import (
	"fmt"
	"strconv"
	"time"
)

// Infinity is shown in place of a duration until the user picks one.
const Infinity = "∞"

// FormatDuration formats a duration for display (e.g., "2h 15m", "45s").
func FormatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	if d < time.Hour {
		return fmt.Sprintf("%dm", int(d.Minutes()))
	}
	hours := int(d.Hours())
	mins := int(d.Minutes()) % 60
	if mins == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh %dm", hours, mins)
}

// FormatTimeRemaining formats remaining time as MM:SS.
func FormatTimeRemaining(remaining time.Duration) string {
	if remaining <= 0 {
		return "00:00"
	}
	mins := int(remaining.Minutes())
	secs := int(remaining.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d", mins, secs)
}

// FormatCountdown is the dial centre text: MM:SS while a session is active,
// bare minutes while choosing, and Infinity before any interaction.
func FormatCountdown(active bool, remainingSeconds, minutes int, touched bool) string {
	if active {
		return FormatTimeRemaining(time.Duration(remainingSeconds) * time.Second)
	}
	if !touched {
		return Infinity
	}
	return strconv.Itoa(minutes)
}

// FormatVolume renders a volume in [0,1] as a percentage.
func FormatVolume(v float64) string {
	return fmt.Sprintf("%d%%", int(v*100+0.5))
}

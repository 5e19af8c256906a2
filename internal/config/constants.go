package config

import "time"

// Session bounds, in minutes.
const (
	MinMinutes     = 1
	MaxMinutes     = 60
	DefaultMinutes = 20
)

// Timer cadence.
const (
	TickInterval          = time.Second
	ReminderCheckInterval = 30 * time.Second
)

// Key-value store keys.
const (
	KeyStats        = "meditation_stats"
	KeyAchievements = "meditation_achievements"
	KeyReminder     = "meditation_reminder"
)

// Achievement thresholds.
const (
	StreakWeek        = 7
	TenHoursMinutes   = 600
	EarlySessions     = 5
	LateSessions      = 5
	MorningBeforeHour = 8
	NightFromHour     = 22
	MinutesPerStar    = 5
)

// Dial geometry, in terminal rows; columns are doubled for the cell aspect ratio.
const (
	DialRadius = 7
)

// Audio defaults.
const (
	DefaultVolume = 0.7
	VolumeStep    = 0.1
)

// Database/application settings.
const (
	AppName       = "meditimer"
	DBFileName    = "meditimer.db"
	LogFileName   = "meditimer.log"
	MinBackupPass = 8
)

// DurationPresets are the quick-pick session lengths, in minutes.
var DurationPresets = []int{5, 10, 15, 20, 30}

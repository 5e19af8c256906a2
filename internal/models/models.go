package models

import (
	"time"

	"github.com/akyairhashvil/meditimer/internal/util"
)

// DateLayout is the calendar-day format used for meditation days.
const DateLayout = "2006-01-02"

// Stats is the persisted practice summary.
type Stats struct {
	TotalMinutes       int      `json:"totalMinutes"`
	Streak             int      `json:"streak"`
	MeditationDays     []string `json:"meditationDays"`
	LastMeditation     *string  `json:"lastMeditation"`
	MorningMeditations int      `json:"morningMeditations"`
	NightMeditations   int      `json:"nightMeditations"`
	CompletedSessions  int      `json:"completedSessions"`
	Stars              int      `json:"stars"`
}

// DefaultStats returns the zero practice summary.
func DefaultStats() Stats {
	return Stats{MeditationDays: []string{}}
}

// HasDay reports whether date (DateLayout) is recorded.
func (s Stats) HasDay(date string) bool {
	return util.Contains(s.MeditationDays, date)
}

// AchievementID names an achievement.
type AchievementID string

const (
	AchievementFirstSession AchievementID = "first_session"
	AchievementStreakWeek   AchievementID = "daily_streak_7"
	AchievementTenHours     AchievementID = "total_hours_10"
	AchievementMorning      AchievementID = "morning_person"
	AchievementNightOwl     AchievementID = "night_owl"
)

// Achievement describes an unlockable badge.
type Achievement struct {
	ID          AchievementID
	Title       string
	Description string
	Icon        string
}

// Achievements maps achievement ids to their unlocked flag.
type Achievements map[AchievementID]bool

// Unlocked reports whether id has been unlocked.
func (a Achievements) Unlocked(id AchievementID) bool {
	return a[id]
}

// Reminder is the daily practice reminder.
type Reminder struct {
	Hour    int  `json:"hour"`
	Minute  int  `json:"minute"`
	Enabled bool `json:"enabled"`
}

// DefaultReminder is disabled at 09:00, the first slot the chat bot offered.
func DefaultReminder() Reminder {
	return Reminder{Hour: 9, Minute: 0, Enabled: false}
}

// NoticeKind classifies a user-facing notice.
type NoticeKind string

const (
	NoticeInfo        NoticeKind = "info"
	NoticeCompleted   NoticeKind = "completed"
	NoticeAchievement NoticeKind = "achievement"
	NoticeReminder    NoticeKind = "reminder"
	NoticeError       NoticeKind = "error"
)

// Notice is a one-button popup: title, message and an acknowledgement.
type Notice struct {
	Kind    NoticeKind
	Title   string
	Message string
	At      time.Time
}

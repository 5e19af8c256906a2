package stats

import (
	"time"

	"github.com/akyairhashvil/meditimer/internal/config"
	"github.com/akyairhashvil/meditimer/internal/models"
)

// RecordSession folds one completed session of the given length into s.
func RecordSession(s *models.Stats, minutes int, at time.Time) {
	if minutes < 0 {
		minutes = 0
	}
	today := at.Format(models.DateLayout)

	s.TotalMinutes += minutes
	s.CompletedSessions++
	s.Stars += minutes / config.MinutesPerStar
	s.LastMeditation = &today
	if !s.HasDay(today) {
		s.MeditationDays = append(s.MeditationDays, today)
	}

	hour := at.Hour()
	if hour < config.MorningBeforeHour {
		s.MorningMeditations++
	}
	if hour >= config.NightFromHour {
		s.NightMeditations++
	}
	s.Streak = Streak(s.MeditationDays, at)
}

// Refresh recomputes the streak for the current day; a streak lapses
// without any new session being recorded.
func Refresh(s *models.Stats, now time.Time) {
	s.Streak = Streak(s.MeditationDays, now)
}

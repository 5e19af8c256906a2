package stats

import (
	"github.com/akyairhashvil/meditimer/internal/config"
	"github.com/akyairhashvil/meditimer/internal/models"
)

// Catalogue lists every achievement in display order.
var Catalogue = []models.Achievement{
	{ID: models.AchievementFirstSession, Title: "First Step", Description: "Complete your first meditation", Icon: "🎯"},
	{ID: models.AchievementStreakWeek, Title: "A Week of Practice", Description: "7 days in a row", Icon: "🔥"},
	{ID: models.AchievementTenHours, Title: "Path to Clarity", Description: "10 hours of meditation", Icon: "⭐"},
	{ID: models.AchievementMorning, Title: "Early Bird", Description: "5 meditations before 8 AM", Icon: "🌅"},
	{ID: models.AchievementNightOwl, Title: "Night Owl", Description: "5 meditations after 10 PM", Icon: "🌙"},
}

// Lookup returns the catalogue entry for id.
func Lookup(id models.AchievementID) (models.Achievement, bool) {
	for _, a := range Catalogue {
		if a.ID == id {
			return a, true
		}
	}
	return models.Achievement{}, false
}

// Evaluate unlocks every achievement whose condition s now meets and
// returns the newly unlocked ids. Unlocked entries are never cleared;
// unlocked must be non-nil.
func Evaluate(s models.Stats, unlocked models.Achievements) []models.AchievementID {
	conditions := map[models.AchievementID]bool{
		models.AchievementFirstSession: s.CompletedSessions >= 1 || s.TotalMinutes > 0,
		models.AchievementStreakWeek:   s.Streak >= config.StreakWeek,
		models.AchievementTenHours:     s.TotalMinutes >= config.TenHoursMinutes,
		models.AchievementMorning:      s.MorningMeditations >= config.EarlySessions,
		models.AchievementNightOwl:     s.NightMeditations >= config.LateSessions,
	}
	var fresh []models.AchievementID
	for _, a := range Catalogue {
		if unlocked[a.ID] || !conditions[a.ID] {
			continue
		}
		unlocked[a.ID] = true
		fresh = append(fresh, a.ID)
	}
	return fresh
}

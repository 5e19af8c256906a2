package testutil

import (
	"time"

	"github.com/akyairhashvil/meditimer/internal/models"
)

// StatsBuilder provides a fluent API for creating test stats.
type StatsBuilder struct {
	stats models.Stats
}

func NewStats() *StatsBuilder {
	return &StatsBuilder{stats: models.DefaultStats()}
}

func (b *StatsBuilder) WithMinutes(total int) *StatsBuilder {
	b.stats.TotalMinutes = total
	return b
}

func (b *StatsBuilder) WithSessions(n int) *StatsBuilder {
	b.stats.CompletedSessions = n
	return b
}

func (b *StatsBuilder) WithStreak(n int) *StatsBuilder {
	b.stats.Streak = n
	return b
}

func (b *StatsBuilder) WithMorning(n int) *StatsBuilder {
	b.stats.MorningMeditations = n
	return b
}

func (b *StatsBuilder) WithNight(n int) *StatsBuilder {
	b.stats.NightMeditations = n
	return b
}

// WithDays records days as practised, the last one becoming LastMeditation.
func (b *StatsBuilder) WithDays(days ...time.Time) *StatsBuilder {
	for _, d := range days {
		day := d.Format(models.DateLayout)
		if !b.stats.HasDay(day) {
			b.stats.MeditationDays = append(b.stats.MeditationDays, day)
		}
		b.stats.LastMeditation = &day
	}
	return b
}

// WithConsecutiveDays records n days ending on last.
func (b *StatsBuilder) WithConsecutiveDays(last time.Time, n int) *StatsBuilder {
	days := make([]time.Time, 0, n)
	for i := n - 1; i >= 0; i-- {
		days = append(days, last.AddDate(0, 0, -i))
	}
	return b.WithDays(days...)
}

func (b *StatsBuilder) Build() models.Stats {
	out := b.stats
	out.MeditationDays = append([]string{}, b.stats.MeditationDays...)
	return out
}

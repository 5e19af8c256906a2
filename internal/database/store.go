package database

import (
	"context"
	"encoding/json"

	"github.com/akyairhashvil/meditimer/internal/config"
	"github.com/akyairhashvil/meditimer/internal/models"
)

// loadJSON decodes key into dst. Missing keys leave dst untouched.
// Undecodable values return *ParseError and leave dst untouched.
func (d *Database) loadJSON(ctx context.Context, key string, dst any) error {
	raw, ok, err := d.GetSetting(ctx, key)
	if err != nil || !ok {
		return err
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return &ParseError{Key: key, Err: err}
	}
	return nil
}

func (d *Database) saveJSON(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return wrapErr(EntitySetting, "encode "+key, 0, err)
	}
	return d.SetSetting(ctx, key, string(data))
}

// LoadStats returns the stored stats, or defaults when absent or corrupt.
func (d *Database) LoadStats(ctx context.Context) (models.Stats, error) {
	var s models.Stats
	if err := d.loadJSON(ctx, config.KeyStats, &s); err != nil {
		return models.DefaultStats(), err
	}
	if s.MeditationDays == nil {
		s.MeditationDays = []string{}
	}
	return s, nil
}

func (d *Database) SaveStats(ctx context.Context, s models.Stats) error {
	if s.MeditationDays == nil {
		s.MeditationDays = []string{}
	}
	return d.saveJSON(ctx, config.KeyStats, s)
}

// LoadAchievements returns the unlocked map. Unknown ids are kept.
func (d *Database) LoadAchievements(ctx context.Context) (models.Achievements, error) {
	a := models.Achievements{}
	if err := d.loadJSON(ctx, config.KeyAchievements, &a); err != nil {
		return models.Achievements{}, err
	}
	if a == nil {
		a = models.Achievements{}
	}
	return a, nil
}

func (d *Database) SaveAchievements(ctx context.Context, a models.Achievements) error {
	if a == nil {
		a = models.Achievements{}
	}
	return d.saveJSON(ctx, config.KeyAchievements, a)
}

func (d *Database) LoadReminder(ctx context.Context) (models.Reminder, error) {
	r := models.DefaultReminder()
	if err := d.loadJSON(ctx, config.KeyReminder, &r); err != nil {
		return models.DefaultReminder(), err
	}
	return r, nil
}

func (d *Database) SaveReminder(ctx context.Context, r models.Reminder) error {
	return d.saveJSON(ctx, config.KeyReminder, r)
}

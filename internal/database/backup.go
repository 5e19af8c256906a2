package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/akyairhashvil/meditimer/internal/config"
	"github.com/akyairhashvil/meditimer/internal/models"
	"github.com/akyairhashvil/meditimer/internal/reminder"
)

const backupVersion = 1

// Backup is the portable snapshot of every stored key.
type Backup struct {
	Version      int                 `json:"version"`
	ExportedAt   time.Time           `json:"exportedAt"`
	Stats        models.Stats        `json:"stats"`
	Achievements models.Achievements `json:"achievements"`
	Reminder     models.Reminder     `json:"reminder"`
}

// ExportBackup snapshots the store. A non-empty passphrase encrypts the result.
func (d *Database) ExportBackup(ctx context.Context, passphrase string) ([]byte, error) {
	stats, err := d.LoadStats(ctx)
	if err != nil {
		return nil, wrapErr(EntityBackup, "export", 0, err)
	}
	ach, err := d.LoadAchievements(ctx)
	if err != nil {
		return nil, wrapErr(EntityBackup, "export", 0, err)
	}
	rem, err := d.LoadReminder(ctx)
	if err != nil {
		return nil, wrapErr(EntityBackup, "export", 0, err)
	}
	payload, err := json.MarshalIndent(Backup{
		Version:      backupVersion,
		ExportedAt:   time.Now().UTC(),
		Stats:        stats,
		Achievements: ach,
		Reminder:     rem,
	}, "", "  ")
	if err != nil {
		return nil, wrapErr(EntityBackup, "export", 0, err)
	}
	if passphrase == "" {
		return payload, nil
	}
	out, err := encryptData(payload, passphrase)
	if err != nil {
		return nil, wrapErr(EntityBackup, "encrypt", 0, err)
	}
	return out, nil
}

// ImportBackup replaces all stored keys with the snapshot in data.
// Nothing is written unless the whole snapshot validates.
func (d *Database) ImportBackup(ctx context.Context, data []byte, passphrase string) error {
	plain, err := decryptData(data, passphrase)
	if err != nil {
		return wrapErr(EntityBackup, "import", 0, err)
	}
	var b Backup
	if err := json.Unmarshal(plain, &b); err != nil {
		return wrapErr(EntityBackup, "import", 0, &ParseError{Key: "backup", Err: err})
	}
	if err := validateBackup(&b); err != nil {
		return wrapErr(EntityBackup, "import", 0, err)
	}
	values := map[string]any{
		config.KeyStats:        b.Stats,
		config.KeyAchievements: b.Achievements,
		config.KeyReminder:     b.Reminder,
	}
	return d.WithTx(ctx, func(tx *sql.Tx) error {
		for key, v := range values {
			raw, err := json.Marshal(v)
			if err != nil {
				return err
			}
			if err := setSettingTx(ctx, tx, key, string(raw)); err != nil {
				return err
			}
		}
		return nil
	})
}

func validateBackup(b *Backup) error {
	if b.Version > backupVersion {
		return fmt.Errorf("unsupported backup version %d", b.Version)
	}
	if b.Stats.TotalMinutes < 0 || b.Stats.CompletedSessions < 0 || b.Stats.Streak < 0 {
		return fmt.Errorf("negative counters in backup stats")
	}
	for _, day := range b.Stats.MeditationDays {
		if _, err := time.Parse(models.DateLayout, day); err != nil {
			return fmt.Errorf("bad meditation day %q", day)
		}
	}
	if b.Stats.MeditationDays == nil {
		b.Stats.MeditationDays = []string{}
	}
	if b.Achievements == nil {
		b.Achievements = models.Achievements{}
	}
	return reminder.Validate(b.Reminder)
}

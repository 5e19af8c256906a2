package database

import (
	"context"

	"github.com/akyairhashvil/meditimer/internal/models"
)

// StatsStore is the persistence the application context needs.
//
//go:generate mockgen -source=interface.go -destination=../mocks/mock_store.go -package=mocks
type StatsStore interface {
	LoadStats(ctx context.Context) (models.Stats, error)
	SaveStats(ctx context.Context, s models.Stats) error
	LoadAchievements(ctx context.Context) (models.Achievements, error)
	SaveAchievements(ctx context.Context, a models.Achievements) error
	LoadReminder(ctx context.Context) (models.Reminder, error)
	SaveReminder(ctx context.Context, r models.Reminder) error
}

// BackupStore moves the whole store in and out as one snapshot.
type BackupStore interface {
	ExportBackup(ctx context.Context, passphrase string) ([]byte, error)
	ImportBackup(ctx context.Context, data []byte, passphrase string) error
}

var (
	_ StatsStore  = (*Database)(nil)
	_ BackupStore = (*Database)(nil)
)

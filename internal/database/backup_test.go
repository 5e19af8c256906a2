package database

import (
	"context"
	"errors"
	"testing"

	"github.com/akyairhashvil/meditimer/internal/models"
)

func seedStore(t *testing.T, ctx context.Context, db *Database) {
	t.Helper()
	last := "2026-10-18"
	if err := db.SaveStats(ctx, models.Stats{TotalMinutes: 30, MeditationDays: []string{last}, LastMeditation: &last, CompletedSessions: 2}); err != nil {
		t.Fatalf("SaveStats failed: %v", err)
	}
	if err := db.SaveAchievements(ctx, models.Achievements{models.AchievementFirstSession: true}); err != nil {
		t.Fatalf("SaveAchievements failed: %v", err)
	}
	if err := db.SaveReminder(ctx, models.Reminder{Hour: 7, Minute: 30, Enabled: true}); err != nil {
		t.Fatalf("SaveReminder failed: %v", err)
	}
}

func assertSeeded(t *testing.T, ctx context.Context, db *Database) {
	t.Helper()
	s, err := db.LoadStats(ctx)
	if err != nil || s.TotalMinutes != 30 || s.CompletedSessions != 2 {
		t.Fatalf("unexpected stats %+v err=%v", s, err)
	}
	a, err := db.LoadAchievements(ctx)
	if err != nil || !a.Unlocked(models.AchievementFirstSession) {
		t.Fatalf("unexpected achievements %v err=%v", a, err)
	}
	r, err := db.LoadReminder(ctx)
	if err != nil || r != (models.Reminder{Hour: 7, Minute: 30, Enabled: true}) {
		t.Fatalf("unexpected reminder %+v err=%v", r, err)
	}
}

func TestBackupRoundTripPlain(t *testing.T) {
	ctx := context.Background()
	src := setupTestDB(t, ctx)
	seedStore(t, ctx, src)

	data, err := src.ExportBackup(ctx, "")
	if err != nil {
		t.Fatalf("ExportBackup failed: %v", err)
	}
	if IsEncryptedBackup(data) {
		t.Fatalf("expected plain backup")
	}
	dst := setupTestDB(t, ctx)
	if err := dst.ImportBackup(ctx, data, ""); err != nil {
		t.Fatalf("ImportBackup failed: %v", err)
	}
	assertSeeded(t, ctx, dst)
}

func TestBackupRoundTripEncrypted(t *testing.T) {
	ctx := context.Background()
	src := setupTestDB(t, ctx)
	seedStore(t, ctx, src)

	data, err := src.ExportBackup(ctx, "calm-breath-42")
	if err != nil {
		t.Fatalf("ExportBackup failed: %v", err)
	}
	if !IsEncryptedBackup(data) {
		t.Fatalf("expected encrypted backup")
	}

	dst := setupTestDB(t, ctx)
	if err := dst.ImportBackup(ctx, data, ""); !errors.Is(err, ErrPassphraseRequired) {
		t.Fatalf("expected ErrPassphraseRequired, got %v", err)
	}
	if err := dst.ImportBackup(ctx, data, "wrong-pass-1"); !errors.Is(err, ErrWrongPassphrase) {
		t.Fatalf("expected ErrWrongPassphrase, got %v", err)
	}
	if err := dst.ImportBackup(ctx, data, "calm-breath-42"); err != nil {
		t.Fatalf("ImportBackup failed: %v", err)
	}
	assertSeeded(t, ctx, dst)
}

func TestImportRejectsInvalidBackup(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	seedStore(t, ctx, db)

	bad := []byte(`{"version":1,"stats":{"totalMinutes":5,"meditationDays":["yesterday"]},"reminder":{"hour":3,"minute":0}}`)
	if err := db.ImportBackup(ctx, bad, ""); err == nil {
		t.Fatalf("expected invalid day to be rejected")
	}
	badReminder := []byte(`{"version":1,"stats":{"totalMinutes":5},"reminder":{"hour":25,"minute":0}}`)
	if err := db.ImportBackup(ctx, badReminder, ""); err == nil {
		t.Fatalf("expected invalid reminder to be rejected")
	}
	var perr *ParseError
	if err := db.ImportBackup(ctx, []byte("not json"), ""); !errors.As(err, &perr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
	assertSeeded(t, ctx, db)
}

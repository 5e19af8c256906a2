package database

import (
	"context"
	"database/sql"
	"errors"
)

// GetSetting returns the raw value for key. ok is false when the key is absent.
func (d *Database) GetSetting(ctx context.Context, key string) (string, bool, error) {
	v, err := withDBContextResult(d, ctx, func(ctx context.Context) (*string, error) {
		var v *string
		err := d.DB.QueryRowContext(ctx, "SELECT value FROM settings WHERE key = ?", key).Scan(&v)
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		if err != nil {
			return nil, wrapErr(EntitySetting, "get "+key, 0, err)
		}
		return v, nil
	})
	if err != nil || v == nil {
		return "", false, err
	}
	return *v, true, nil
}

func (d *Database) SetSetting(ctx context.Context, key, value string) error {
	return d.withDBContext(ctx, func(ctx context.Context) error {
		_, err := d.DB.ExecContext(ctx, "INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value", key, value)
		return wrapErr(EntitySetting, "set "+key, 0, err)
	})
}

func (d *Database) DeleteSetting(ctx context.Context, key string) error {
	return d.withDBContext(ctx, func(ctx context.Context) error {
		_, err := d.DB.ExecContext(ctx, "DELETE FROM settings WHERE key = ?", key)
		return wrapErr(EntitySetting, "delete "+key, 0, err)
	})
}

func setSettingTx(ctx context.Context, tx *sql.Tx, key, value string) error {
	_, err := tx.ExecContext(ctx, "INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value", key, value)
	return wrapErr(EntitySetting, "set "+key, 0, err)
}

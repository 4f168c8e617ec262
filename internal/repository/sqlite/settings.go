package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/garnizeh/careers/pkg/models"
)

// GetSettings returns the single admin settings row, or nil when it was never set.
func (r *SQLiteRepo) GetSettings(ctx context.Context) (*models.AdminSettings, error) {
	row := r.conn.QueryRow(ctx, `SELECT id, password_hash, updated FROM admin_settings WHERE id = 1`)
	var s models.AdminSettings
	if err := row.Scan(&s.ID, &s.PasswordHash, &s.Updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *SQLiteRepo) SetPasswordHash(ctx context.Context, hash string) error {
	_, err := r.conn.Exec(ctx, `INSERT INTO admin_settings (id, password_hash, updated) VALUES (1, ?, ?) ON CONFLICT(id) DO UPDATE SET password_hash = excluded.password_hash, updated = excluded.updated`, hash, toMillis(r.now()))
	return err
}

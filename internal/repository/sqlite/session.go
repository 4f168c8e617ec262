package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/garnizeh/careers/pkg/models"
)

func (r *SQLiteRepo) CreateSession(ctx context.Context, s *models.Session) error {
	if s == nil {
		return fmt.Errorf("session is nil")
	}

	_, err := r.conn.Exec(ctx, `INSERT INTO admin_sessions (id, created_at, expires_at) VALUES (?, ?, ?)`, s.ID, toMillis(s.CreatedAt), toMillis(s.ExpiresAt))
	return err
}

func (r *SQLiteRepo) GetSession(ctx context.Context, id string) (*models.Session, error) {
	row := r.conn.QueryRow(ctx, `SELECT id, created_at, expires_at FROM admin_sessions WHERE id = ?`, id)
	var (
		s                  models.Session
		created, expiresAt int64
	)
	if err := row.Scan(&s.ID, &created, &expiresAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	s.CreatedAt = fromMillis(created)
	s.ExpiresAt = fromMillis(expiresAt)
	return &s, nil
}

func (r *SQLiteRepo) DeleteSession(ctx context.Context, id string) error {
	_, err := r.conn.Exec(ctx, `DELETE FROM admin_sessions WHERE id = ?`, id)
	return err
}

// DeleteExpiredSessions removes sessions whose expiry is at or before now.
func (r *SQLiteRepo) DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.conn.Exec(ctx, `DELETE FROM admin_sessions WHERE expires_at <= ?`, toMillis(now))
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/garnizeh/careers/pkg/models"
	"github.com/google/uuid"
)

type rowScanner interface {
	Scan(dest ...any) error
}

const jobColumns = `id, title, department, location, type, description, requirements, application_url, last_apply_date, created_at`

// CreateJob inserts j, filling in a fresh id and creation time.
func (r *SQLiteRepo) CreateJob(ctx context.Context, j *models.Job) error {
	if j == nil {
		return fmt.Errorf("job is nil")
	}

	reqs, err := encodeList(j.Requirements)
	if err != nil {
		return fmt.Errorf("encode requirements: %w", err)
	}

	j.ID = uuid.NewString()
	j.CreatedAt = r.now()
	if j.Requirements == nil {
		j.Requirements = []string{}
	}

	_, err = r.conn.Exec(ctx, `INSERT INTO jobs (`+jobColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		j.ID, j.Title, j.Department, j.Location, j.Type, j.Description, reqs, j.ApplicationURL, j.LastApplyDate, toMillis(j.CreatedAt))
	return err
}

func (r *SQLiteRepo) GetJob(ctx context.Context, id string) (*models.Job, error) {
	row := r.conn.QueryRow(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = ?`, id)
	j, err := scanJob(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return j, nil
}

// ListJobs returns every job, newest first.
func (r *SQLiteRepo) ListJobs(ctx context.Context) ([]models.Job, error) {
	rows, err := r.conn.QueryRows(ctx, `SELECT `+jobColumns+` FROM jobs ORDER BY created_at DESC, rowid DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Job{}
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *j)
	}
	return out, rows.Err()
}

// UpdateJob overwrites every editable column. id and created_at are kept.
func (r *SQLiteRepo) UpdateJob(ctx context.Context, j *models.Job) (bool, error) {
	if j == nil {
		return false, fmt.Errorf("job is nil")
	}

	reqs, err := encodeList(j.Requirements)
	if err != nil {
		return false, fmt.Errorf("encode requirements: %w", err)
	}

	res, err := r.conn.Exec(ctx, `UPDATE jobs SET title = ?, department = ?, location = ?, type = ?, description = ?, requirements = ?, application_url = ?, last_apply_date = ? WHERE id = ?`,
		j.Title, j.Department, j.Location, j.Type, j.Description, reqs, j.ApplicationURL, j.LastApplyDate, j.ID)
	if err != nil {
		return false, err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// DeleteJob removes the job's applications and then the job in one transaction.
func (r *SQLiteRepo) DeleteJob(ctx context.Context, id string) error {
	return r.conn.WithTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `DELETE FROM applications WHERE job_id = ?`, id)
		if err != nil {
			return fmt.Errorf("delete applications: %w", err)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM jobs WHERE id = ?`, id); err != nil {
			return fmt.Errorf("delete job: %w", err)
		}

		if n, err := res.RowsAffected(); err == nil {
			r.logger.Debug("job deleted", "job_id", id, "applications", n)
		}
		return nil
	})
}

func scanJob(s rowScanner) (*models.Job, error) {
	var (
		j        models.Job
		reqs     string
		appURL   sql.NullString
		lastDate sql.NullString
		created  int64
	)
	if err := s.Scan(&j.ID, &j.Title, &j.Department, &j.Location, &j.Type, &j.Description, &reqs, &appURL, &lastDate, &created); err != nil {
		return nil, err
	}

	list, err := decodeList[string](reqs)
	if err != nil {
		return nil, fmt.Errorf("decode requirements for job %s: %w", j.ID, err)
	}
	j.Requirements = list

	if appURL.Valid {
		v := appURL.String
		j.ApplicationURL = &v
	}
	if lastDate.Valid {
		v := lastDate.String
		j.LastApplyDate = &v
	}
	j.CreatedAt = fromMillis(created)

	return &j, nil
}

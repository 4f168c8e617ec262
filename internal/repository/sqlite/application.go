package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/garnizeh/careers/pkg/models"
	"github.com/google/uuid"
)

const applicationColumns = `id, job_id, first_name, last_name, email, phone, linkedin, portfolio, resume_link, experience, availability, heard_from, skills, timezones, extra_links, status, created_at`

// CreateApplication inserts a, filling in a fresh id and creation time.
func (r *SQLiteRepo) CreateApplication(ctx context.Context, a *models.Application) error {
	if a == nil {
		return fmt.Errorf("application is nil")
	}

	skills, err := encodeList(a.Skills)
	if err != nil {
		return fmt.Errorf("encode skills: %w", err)
	}
	timezones, err := encodeList(a.Timezones)
	if err != nil {
		return fmt.Errorf("encode timezones: %w", err)
	}
	links, err := encodeList(a.ExtraLinks)
	if err != nil {
		return fmt.Errorf("encode extra links: %w", err)
	}

	a.ID = uuid.NewString()
	a.CreatedAt = r.now()

	_, err = r.conn.Exec(ctx, `INSERT INTO applications (`+applicationColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.JobID, a.FirstName, a.LastName, a.Email, a.Phone, a.LinkedIn, a.Portfolio, a.ResumeLink,
		a.Experience, a.Availability, a.HeardFrom, skills, timezones, links, a.Status, toMillis(a.CreatedAt))
	return err
}

func (r *SQLiteRepo) GetApplication(ctx context.Context, id string) (*models.Application, error) {
	row := r.conn.QueryRow(ctx, `SELECT `+applicationColumns+` FROM applications WHERE id = ?`, id)
	a, err := scanApplication(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return a, nil
}

// ListByJob returns the applications for a job, newest first.
func (r *SQLiteRepo) ListByJob(ctx context.Context, jobID string) ([]models.Application, error) {
	rows, err := r.conn.QueryRows(ctx, `SELECT `+applicationColumns+` FROM applications WHERE job_id = ? ORDER BY created_at DESC, rowid DESC`, jobID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Application{}
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *a)
	}
	return out, rows.Err()
}

func (r *SQLiteRepo) UpdateApplicationStatus(ctx context.Context, id, status string) (bool, error) {
	res, err := r.conn.Exec(ctx, `UPDATE applications SET status = ? WHERE id = ?`, status, id)
	if err != nil {
		return false, err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *SQLiteRepo) DeleteApplication(ctx context.Context, id string) error {
	_, err := r.conn.Exec(ctx, `DELETE FROM applications WHERE id = ?`, id)
	return err
}

func scanApplication(s rowScanner) (*models.Application, error) {
	var (
		a                        models.Application
		linkedIn, portfolio      sql.NullString
		skills, timezones, links string
		created                  int64
	)
	if err := s.Scan(&a.ID, &a.JobID, &a.FirstName, &a.LastName, &a.Email, &a.Phone, &linkedIn, &portfolio, &a.ResumeLink,
		&a.Experience, &a.Availability, &a.HeardFrom, &skills, &timezones, &links, &a.Status, &created); err != nil {
		return nil, err
	}

	var err error
	if a.Skills, err = decodeList[string](skills); err != nil {
		return nil, fmt.Errorf("decode skills for application %s: %w", a.ID, err)
	}
	if a.Timezones, err = decodeList[string](timezones); err != nil {
		return nil, fmt.Errorf("decode timezones for application %s: %w", a.ID, err)
	}
	if a.ExtraLinks, err = decodeList[models.Link](links); err != nil {
		return nil, fmt.Errorf("decode extra links for application %s: %w", a.ID, err)
	}

	if linkedIn.Valid {
		v := linkedIn.String
		a.LinkedIn = &v
	}
	if portfolio.Valid {
		v := portfolio.String
		a.Portfolio = &v
	}
	a.CreatedAt = fromMillis(created)

	return &a, nil
}

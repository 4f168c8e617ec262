package careers

import (
	"context"
	"strings"

	"github.com/garnizeh/careers/pkg/models"
)

// JobFields is the job editor payload.
type JobFields struct {
	Title          string   `json:"title" validate:"min=2"`
	Department     string   `json:"department" validate:"min=2"`
	Location       string   `json:"location" validate:"min=2"`
	Type           string   `json:"type" validate:"oneof=Full-time Part-time Contract Internship Temporary"`
	Description    string   `json:"description" validate:"min=10"`
	Requirements   []string `json:"requirements" validate:"dive,required"`
	ApplicationURL string   `json:"application_url" validate:"omitempty,url"`
	LastApplyDate  string   `json:"last_apply_date" validate:"required"`
}

func (f JobFields) toJob() (*models.Job, error) {
	last, err := NormalizeDate(f.LastApplyDate)
	if err != nil {
		return nil, err
	}

	j := &models.Job{
		Title:         f.Title,
		Department:    f.Department,
		Location:      f.Location,
		Type:          f.Type,
		Description:   f.Description,
		Requirements:  trimmedNonEmpty(f.Requirements),
		LastApplyDate: last,
	}
	if u := strings.TrimSpace(f.ApplicationURL); u != "" {
		j.ApplicationURL = &u
	}
	return j, nil
}

// GetJobs returns every job, newest first.
func (s *Service) GetJobs(ctx context.Context) ([]models.Job, error) {
	jobs, err := s.jobs.ListJobs(ctx)
	if err != nil {
		return nil, s.storeErr("list jobs", err)
	}
	return jobs, nil
}

func (s *Service) GetJob(ctx context.Context, id string) (*models.Job, error) {
	j, err := s.jobs.GetJob(ctx, id)
	if err != nil {
		return nil, s.storeErr("get job", err)
	}
	if j == nil {
		return nil, ErrNotFound
	}
	return j, nil
}

// CreateJob stores a new job with a date-only last-apply date.
func (s *Service) CreateJob(ctx context.Context, f JobFields) (*models.Job, error) {
	j, err := f.toJob()
	if err != nil {
		return nil, err
	}

	if err := s.jobs.CreateJob(ctx, j); err != nil {
		return nil, s.storeErr("create job", err)
	}

	s.logger.Info("job created", "job_id", j.ID, "title", j.Title)
	return j, nil
}

// UpdateJob replaces every editable field of the job and returns the stored row.
func (s *Service) UpdateJob(ctx context.Context, id string, f JobFields) (*models.Job, error) {
	j, err := f.toJob()
	if err != nil {
		return nil, err
	}
	j.ID = id

	ok, err := s.jobs.UpdateJob(ctx, j)
	if err != nil {
		return nil, s.storeErr("update job", err)
	}
	if !ok {
		return nil, ErrNotFound
	}

	stored, err := s.jobs.GetJob(ctx, id)
	if err != nil {
		return nil, s.storeErr("get job", err)
	}
	if stored == nil {
		return nil, ErrNotFound
	}

	s.logger.Info("job updated", "job_id", id)
	return stored, nil
}

// DeleteJob removes the job together with all of its applications.
func (s *Service) DeleteJob(ctx context.Context, id string) error {
	if err := s.jobs.DeleteJob(ctx, id); err != nil {
		return s.storeErr("delete job", err)
	}

	s.logger.Info("job deleted", "job_id", id)
	return nil
}

// trimmedNonEmpty trims entries and drops blank ones, keeping order.
func trimmedNonEmpty(in []string) []string {
	out := make([]string, 0, len(in))
	for _, v := range in {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

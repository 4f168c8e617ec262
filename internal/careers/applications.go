package careers

import (
	"context"
	"strings"

	"github.com/garnizeh/careers/pkg/models"
)

// ApplicationFields is the public application form payload.
type ApplicationFields struct {
	JobID        string        `json:"jobId"`
	FirstName    string        `json:"firstName" validate:"min=2"`
	LastName     string        `json:"lastName" validate:"min=2"`
	Email        string        `json:"email" validate:"required,email"`
	Phone        string        `json:"phone" validate:"min=10"`
	LinkedIn     string        `json:"linkedIn" validate:"omitempty,url"`
	Portfolio    string        `json:"portfolio" validate:"omitempty,url"`
	ResumeLink   string        `json:"resumeLink" validate:"required,url"`
	Experience   string        `json:"experience" validate:"min=10"`
	Availability string        `json:"availability" validate:"oneof=immediately 2weeks 1month other"`
	HeardFrom    string        `json:"heardFrom" validate:"min=1"`
	Skills       []string      `json:"skills" validate:"dive,required"`
	Timezones    []string      `json:"timezones" validate:"dive,timezone_option"`
	ExtraLinks   []models.Link `json:"extraLinks" validate:"dive"`
}

func (f ApplicationFields) toApplication() *models.Application {
	a := &models.Application{
		JobID:        f.JobID,
		FirstName:    f.FirstName,
		LastName:     f.LastName,
		Email:        f.Email,
		Phone:        f.Phone,
		ResumeLink:   f.ResumeLink,
		Experience:   f.Experience,
		Availability: f.Availability,
		HeardFrom:    f.HeardFrom,
		Skills:       uniqueTags(f.Skills),
		Timezones:    uniqueTags(f.Timezones),
		ExtraLinks:   f.ExtraLinks,
		Status:       models.StatusPending,
	}
	if a.ExtraLinks == nil {
		a.ExtraLinks = []models.Link{}
	}
	if v := strings.TrimSpace(f.LinkedIn); v != "" {
		a.LinkedIn = &v
	}
	if v := strings.TrimSpace(f.Portfolio); v != "" {
		a.Portfolio = &v
	}
	return a
}

// SubmitApplication stores a new application for an existing job. The status
// is always pending regardless of the payload.
func (s *Service) SubmitApplication(ctx context.Context, f ApplicationFields) (*models.Application, error) {
	job, err := s.jobs.GetJob(ctx, f.JobID)
	if err != nil {
		return nil, s.storeErr("get job", err)
	}
	if job == nil {
		return nil, ErrNotFound
	}

	a := f.toApplication()
	if err := s.applications.CreateApplication(ctx, a); err != nil {
		return nil, s.storeErr("submit application", err)
	}

	s.logger.Info("application submitted", "application_id", a.ID, "job_id", a.JobID)
	return a, nil
}

// GetApplicationsByJob returns the job's applications, newest first.
func (s *Service) GetApplicationsByJob(ctx context.Context, jobID string) ([]models.Application, error) {
	apps, err := s.applications.ListByJob(ctx, jobID)
	if err != nil {
		return nil, s.storeErr("list applications", err)
	}
	return apps, nil
}

func (s *Service) GetApplication(ctx context.Context, id string) (*models.Application, error) {
	a, err := s.applications.GetApplication(ctx, id)
	if err != nil {
		return nil, s.storeErr("get application", err)
	}
	if a == nil {
		return nil, ErrNotFound
	}
	return a, nil
}

// UpdateApplicationStatus changes only the status column.
func (s *Service) UpdateApplicationStatus(ctx context.Context, id, status string) error {
	if !models.ValidStatus(status) {
		return ErrInvalidStatus
	}

	ok, err := s.applications.UpdateApplicationStatus(ctx, id, status)
	if err != nil {
		return s.storeErr("update application status", err)
	}
	if !ok {
		return ErrNotFound
	}

	s.logger.Info("application status updated", "application_id", id, "status", status)
	return nil
}

func (s *Service) DeleteApplication(ctx context.Context, id string) error {
	if err := s.applications.DeleteApplication(ctx, id); err != nil {
		return s.storeErr("delete application", err)
	}
	return nil
}

// uniqueTags trims tags and drops blanks and repeats, keeping first-seen order.
func uniqueTags(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, v := range in {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

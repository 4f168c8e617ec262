package repository

import (
	"context"
	"time"

	"github.com/garnizeh/careers/pkg/models"
)

// Repository interfaces for domain entities. These are the public contracts
// consumers should depend on; concrete implementations live under internal/.
// Lookups of a missing row return nil, nil.

type JobRepo interface {
	CreateJob(ctx context.Context, j *models.Job) error
	GetJob(ctx context.Context, id string) (*models.Job, error)
	ListJobs(ctx context.Context) ([]models.Job, error)
	// UpdateJob returns false when no row matched j.ID.
	UpdateJob(ctx context.Context, j *models.Job) (bool, error)
	// DeleteJob removes the job and all of its applications atomically.
	DeleteJob(ctx context.Context, id string) error
}

type ApplicationRepo interface {
	CreateApplication(ctx context.Context, a *models.Application) error
	GetApplication(ctx context.Context, id string) (*models.Application, error)
	ListByJob(ctx context.Context, jobID string) ([]models.Application, error)
	// UpdateApplicationStatus returns false when no row matched id.
	UpdateApplicationStatus(ctx context.Context, id, status string) (bool, error)
	DeleteApplication(ctx context.Context, id string) error
}

type SettingsRepo interface {
	GetSettings(ctx context.Context) (*models.AdminSettings, error)
	SetPasswordHash(ctx context.Context, hash string) error
}

type SessionRepo interface {
	CreateSession(ctx context.Context, s *models.Session) error
	GetSession(ctx context.Context, id string) (*models.Session, error)
	DeleteSession(ctx context.Context, id string) error
	DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error)
}

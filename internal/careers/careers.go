// Package careers holds the domain actions of the careers site: job
// management, application intake and review, and admin password checks.
// Handlers call a Service built once at startup with its repositories.
package careers

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/garnizeh/careers/pkg/repository"
)

var (
	// ErrNotFound is returned when the addressed job or application does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInvalidStatus is returned for a status outside models.Statuses.
	ErrInvalidStatus = errors.New("invalid application status")
	// ErrInvalidDate is returned when a last-apply date cannot be parsed.
	ErrInvalidDate = errors.New("invalid date")
	// ErrPasswordTooLong is returned when a new admin password exceeds what
	// bcrypt can hash.
	ErrPasswordTooLong = fmt.Errorf("admin password must be at most %d bytes", maxPasswordBytes)
)

// StoreError wraps any failure reported by the underlying store.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

type Service struct {
	jobs         repository.JobRepo
	applications repository.ApplicationRepo
	settings     repository.SettingsRepo
	logger       *slog.Logger
}

func NewService(jr repository.JobRepo, ar repository.ApplicationRepo, sr repository.SettingsRepo, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return &Service{jobs: jr, applications: ar, settings: sr, logger: logger}
}

// storeErr logs a store failure and wraps it.
func (s *Service) storeErr(op string, err error) error {
	s.logger.Error("store call failed", slog.String("op", op), slog.Any("err", err))
	return &StoreError{Op: op, Err: err}
}

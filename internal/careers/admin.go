package careers

import (
	"context"
	"errors"
	"log/slog"

	"golang.org/x/crypto/bcrypt"
)

// bcrypt ignores input past this length, so longer candidates can never match.
const maxPasswordBytes = 72

// VerifyAdminPassword reports whether candidate equals the stored admin
// password exactly. A missing settings row never matches.
func (s *Service) VerifyAdminPassword(ctx context.Context, candidate string) (bool, error) {
	settings, err := s.settings.GetSettings(ctx)
	if err != nil {
		return false, s.storeErr("get admin settings", err)
	}
	if settings == nil {
		s.logger.Warn("admin password checked before it was set")
		return false, nil
	}
	if candidate == "" || len(candidate) > maxPasswordBytes {
		return false, nil
	}

	err = bcrypt.CompareHashAndPassword([]byte(settings.PasswordHash), []byte(candidate))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		s.logger.Error("stored admin password hash is unusable", slog.Any("err", err))
		return false, nil
	}
}

// SetAdminPassword replaces the shared admin password.
func (s *Service) SetAdminPassword(ctx context.Context, password string) error {
	if password == "" {
		return errors.New("admin password must not be empty")
	}
	if len(password) > maxPasswordBytes {
		return ErrPasswordTooLong
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := s.settings.SetPasswordHash(ctx, string(hash)); err != nil {
		return s.storeErr("set admin password", err)
	}

	s.logger.Info("admin password updated")
	return nil
}

// BootstrapAdminPassword sets the password only when none is stored yet.
// It reports whether the password was written.
func (s *Service) BootstrapAdminPassword(ctx context.Context, password string) (bool, error) {
	settings, err := s.settings.GetSettings(ctx)
	if err != nil {
		return false, s.storeErr("get admin settings", err)
	}
	if settings != nil {
		return false, nil
	}
	if err := s.SetAdminPassword(ctx, password); err != nil {
		return false, err
	}
	return true, nil
}

// Package session issues and checks admin sessions. A session is a row in
// the session store referenced by the sid claim of an HS256 token; the token
// travels in the admin cookie.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/garnizeh/careers/pkg/models"
	"github.com/garnizeh/careers/pkg/repository"
)

// CookieName is the cookie carrying the session token.
const CookieName = "admin_session"

// ErrInvalidSession is returned for tokens that are malformed, badly signed,
// expired or no longer backed by a stored session.
var ErrInvalidSession = errors.New("invalid session")

type claims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

type Manager struct {
	repo   repository.SessionRepo
	secret []byte
	ttl    time.Duration
	now    func() time.Time
	logger *slog.Logger

	stop     chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

func NewManager(repo repository.SessionRepo, secret string, ttl time.Duration, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return &Manager{
		repo:   repo,
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
		logger: logger,
		stop:   make(chan struct{}),
	}
}

// WithClock replaces the time source. Used by tests.
func (m *Manager) WithClock(now func() time.Time) *Manager {
	m.now = now
	return m
}

// TTL is the lifetime of new sessions.
func (m *Manager) TTL() time.Duration {
	return m.ttl
}

// Create stores a new session and returns its signed token and expiry.
func (m *Manager) Create(ctx context.Context) (string, time.Time, error) {
	now := m.now().UTC().Truncate(time.Millisecond)
	s := &models.Session{
		ID:        uuid.NewString(),
		CreatedAt: now,
		ExpiresAt: now.Add(m.ttl),
	}
	if err := m.repo.CreateSession(ctx, s); err != nil {
		return "", time.Time{}, fmt.Errorf("create session: %w", err)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		SessionID: s.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(s.ExpiresAt),
		},
	})
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign session token: %w", err)
	}

	m.logger.Info("admin session created", "session_id", s.ID, "expires_at", s.ExpiresAt)
	return signed, s.ExpiresAt, nil
}

func (m *Manager) parse(token string, opts ...jwt.ParserOption) (*claims, error) {
	opts = append(opts, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	c := &claims{}
	_, err := jwt.ParseWithClaims(token, c, func(t *jwt.Token) (any, error) {
		return m.secret, nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSession, err)
	}
	if c.SessionID == "" {
		return nil, fmt.Errorf("%w: missing sid", ErrInvalidSession)
	}
	return c, nil
}

// Validate checks the token signature and expiry and that its session is
// still stored and unexpired. Store failures are returned as-is.
func (m *Manager) Validate(ctx context.Context, token string) (*models.Session, error) {
	c, err := m.parse(token, jwt.WithTimeFunc(m.now), jwt.WithExpirationRequired())
	if err != nil {
		return nil, err
	}

	s, err := m.repo.GetSession(ctx, c.SessionID)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	if s == nil || !s.ExpiresAt.After(m.now()) {
		return nil, fmt.Errorf("%w: session %s not active", ErrInvalidSession, c.SessionID)
	}
	return s, nil
}

// Destroy deletes the session named by token. Expired tokens still remove
// their row; tokens with a bad signature are ignored.
func (m *Manager) Destroy(ctx context.Context, token string) error {
	c, err := m.parse(token, jwt.WithoutClaimsValidation())
	if err != nil {
		return nil
	}
	if err := m.repo.DeleteSession(ctx, c.SessionID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}

	m.logger.Info("admin session destroyed", "session_id", c.SessionID)
	return nil
}

// Sweep deletes every expired session.
func (m *Manager) Sweep(ctx context.Context) (int64, error) {
	n, err := m.repo.DeleteExpiredSessions(ctx, m.now())
	if err != nil {
		return 0, fmt.Errorf("sweep sessions: %w", err)
	}
	if n > 0 {
		m.logger.Info("expired sessions swept", "count", n)
	}
	return n, nil
}

// Start launches the sweeper, which runs Sweep every interval until Stop is
// called or ctx is done.
func (m *Manager) Start(ctx context.Context, interval time.Duration) {
	m.wg.Add(1)
	go m.sweeper(ctx, interval)
}

// Stop signals the sweeper to stop and waits for it.
func (m *Manager) Stop() {
	m.stopOnce.Do(func() { close(m.stop) })
	m.wg.Wait()
}

func (m *Manager) sweeper(ctx context.Context, interval time.Duration) {
	defer m.wg.Done()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-m.stop:
			m.logger.Info("session sweeper stopping")
			return
		case <-ctx.Done():
			m.logger.Info("context canceled, session sweeper exiting")
			return
		case <-ticker.C:
			if _, err := m.Sweep(ctx); err != nil {
				m.logger.Error("sweep sessions", "err", err)
			}
		}
	}
}

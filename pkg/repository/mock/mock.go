package mock

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/garnizeh/careers/pkg/models"
	"github.com/google/uuid"
)

// Test helpers and mocks. Every repo keeps rows in memory and returns the
// matching *Err field, when set, instead of touching its state.
type Mocks struct {
	JobRepo      *mockJobRepo
	AppRepo      *mockApplicationRepo
	SettingsRepo *mockSettingsRepo
	SessionRepo  *mockSessionRepo
}

func NewMocks() *Mocks {
	apps := &mockApplicationRepo{rows: map[string]models.Application{}}
	return &Mocks{
		JobRepo:      &mockJobRepo{rows: map[string]models.Job{}, apps: apps},
		AppRepo:      apps,
		SettingsRepo: &mockSettingsRepo{},
		SessionRepo:  &mockSessionRepo{rows: map[string]models.Session{}},
	}
}

type mockJobRepo struct {
	mu   sync.Mutex
	rows map[string]models.Job
	seq  int
	apps *mockApplicationRepo

	CreateErr error
	GetErr    error
	ListErr   error
	UpdateErr error
	DeleteErr error
}

func (m *mockJobRepo) CreateJob(ctx context.Context, j *models.Job) error {
	if m.CreateErr != nil {
		return m.CreateErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	j.ID = uuid.NewString()
	j.CreatedAt = time.Unix(int64(m.seq), 0).UTC()
	m.rows[j.ID] = *j
	return nil
}

func (m *mockJobRepo) GetJob(ctx context.Context, id string) (*models.Job, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	j, ok := m.rows[id]
	if !ok {
		return nil, nil
	}
	return &j, nil
}

func (m *mockJobRepo) ListJobs(ctx context.Context) ([]models.Job, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.Job, 0, len(m.rows))
	for _, j := range m.rows {
		out = append(out, j)
	}
	sort.Slice(out, func(a, b int) bool { return out[a].CreatedAt.After(out[b].CreatedAt) })
	return out, nil
}

func (m *mockJobRepo) UpdateJob(ctx context.Context, j *models.Job) (bool, error) {
	if m.UpdateErr != nil {
		return false, m.UpdateErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	old, ok := m.rows[j.ID]
	if !ok {
		return false, nil
	}
	updated := *j
	updated.CreatedAt = old.CreatedAt
	m.rows[j.ID] = updated
	return true, nil
}

func (m *mockJobRepo) DeleteJob(ctx context.Context, id string) error {
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.rows, id)
	m.apps.deleteByJob(id)
	return nil
}

type mockApplicationRepo struct {
	mu   sync.Mutex
	rows map[string]models.Application
	seq  int

	CreateErr error
	GetErr    error
	ListErr   error
	UpdateErr error
	DeleteErr error
}

func (m *mockApplicationRepo) CreateApplication(ctx context.Context, a *models.Application) error {
	if m.CreateErr != nil {
		return m.CreateErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	a.ID = uuid.NewString()
	a.CreatedAt = time.Unix(int64(m.seq), 0).UTC()
	m.rows[a.ID] = *a
	return nil
}

func (m *mockApplicationRepo) GetApplication(ctx context.Context, id string) (*models.Application, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.rows[id]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (m *mockApplicationRepo) ListByJob(ctx context.Context, jobID string) ([]models.Application, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.Application{}
	for _, a := range m.rows {
		if a.JobID == jobID {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(x, y int) bool { return out[x].CreatedAt.After(out[y].CreatedAt) })
	return out, nil
}

func (m *mockApplicationRepo) UpdateApplicationStatus(ctx context.Context, id, status string) (bool, error) {
	if m.UpdateErr != nil {
		return false, m.UpdateErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.rows[id]
	if !ok {
		return false, nil
	}
	a.Status = status
	m.rows[id] = a
	return true, nil
}

func (m *mockApplicationRepo) DeleteApplication(ctx context.Context, id string) error {
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.rows, id)
	return nil
}

func (m *mockApplicationRepo) deleteByJob(jobID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, a := range m.rows {
		if a.JobID == jobID {
			delete(m.rows, id)
		}
	}
}

type mockSettingsRepo struct {
	Stored *models.AdminSettings
	GetErr error
	SetErr error
}

func (m *mockSettingsRepo) GetSettings(ctx context.Context) (*models.AdminSettings, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	return m.Stored, nil
}

func (m *mockSettingsRepo) SetPasswordHash(ctx context.Context, hash string) error {
	if m.SetErr != nil {
		return m.SetErr
	}
	m.Stored = &models.AdminSettings{ID: 1, PasswordHash: hash, Updated: time.Now().UnixMilli()}
	return nil
}

type mockSessionRepo struct {
	mu   sync.Mutex
	rows map[string]models.Session

	CreateErr error
	GetErr    error
}

func (m *mockSessionRepo) CreateSession(ctx context.Context, s *models.Session) error {
	if m.CreateErr != nil {
		return m.CreateErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rows[s.ID] = *s
	return nil
}

func (m *mockSessionRepo) GetSession(ctx context.Context, id string) (*models.Session, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.rows[id]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (m *mockSessionRepo) DeleteSession(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.rows, id)
	return nil
}

func (m *mockSessionRepo) DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for id, s := range m.rows {
		if !s.ExpiresAt.After(now) {
			delete(m.rows, id)
			n++
		}
	}
	return n, nil
}

// Len reports how many sessions are stored.
func (m *mockSessionRepo) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.rows)
}

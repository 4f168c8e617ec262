package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/garnizeh/careers/api"
	"github.com/garnizeh/careers/internal/careers"
	"github.com/garnizeh/careers/internal/config"
	"github.com/garnizeh/careers/internal/session"
	"github.com/garnizeh/careers/pkg/models"
	"github.com/garnizeh/careers/pkg/repository/mock"
)

const testSecret = "api-test-secret"

type testEnv struct {
	router   http.Handler
	mocks    *mock.Mocks
	svc      *careers.Service
	sessions *session.Manager
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	api.SetLogger(slog.New(slog.NewJSONHandler(io.Discard, nil)))

	m := mock.NewMocks()
	svc := careers.NewService(m.JobRepo, m.AppRepo, m.SettingsRepo, nil)
	sessions := session.NewManager(m.SessionRepo, testSecret, time.Hour, nil)
	cfg := &config.Config{SessionSecret: testSecret, CookieSecure: true}

	return &testEnv{
		router:   api.SetupRoutes(cfg, "test", "now", svc, sessions),
		mocks:    m,
		svc:      svc,
		sessions: sessions,
	}
}

// adminCookie returns a cookie for a freshly created session.
func (e *testEnv) adminCookie(t *testing.T) *http.Cookie {
	t.Helper()
	token, _, err := e.sessions.Create(context.Background())
	if err != nil {
		t.Fatalf("create session: %v", err)
	}
	return &http.Cookie{Name: session.CookieName, Value: token}
}

func (e *testEnv) setPassword(t *testing.T, pw string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	e.mocks.SettingsRepo.Stored = &models.AdminSettings{ID: 1, PasswordHash: string(hash)}
}

func (e *testEnv) do(t *testing.T, method, path string, body any, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) createJob(t *testing.T, title, dept string) *models.Job {
	t.Helper()
	j, err := e.svc.CreateJob(context.Background(), careers.JobFields{
		Title:         title,
		Department:    dept,
		Location:      "Remote",
		Type:          models.JobTypeFullTime,
		Description:   "A job worth applying for.",
		Requirements:  []string{"Curiosity"},
		LastApplyDate: "2099-12-31",
	})
	if err != nil {
		t.Fatalf("create job: %v", err)
	}
	return j
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
	return v
}

func validApplicationBody() map[string]any {
	return map[string]any{
		"firstName":    "Ada",
		"lastName":     "Lovelace",
		"email":        "ada@example.com",
		"phone":        "5551234567",
		"linkedIn":     "",
		"portfolio":    "",
		"resumeLink":   "https://ada.dev/cv.pdf",
		"experience":   "Ten years of analytical engines.",
		"availability": "immediately",
		"heardFrom":    "Newsletter",
		"skills":       []string{"Python", "SQL"},
		"timezones":    []string{"europe-western"},
		"extraLinks":   []map[string]string{{"label": "GitHub", "url": "https://github.com/ada"}},
	}
}

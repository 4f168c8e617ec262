package api_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/garnizeh/careers/api"
	"github.com/garnizeh/careers/internal/session"
)

func TestLoggingMiddleware(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	handler := api.LoggingMiddleware(next)
	req := httptest.NewRequest(http.MethodGet, "/log", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)
	res := w.Result()
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", res.StatusCode)
	}
	b, _ := io.ReadAll(res.Body)
	if string(b) != "ok" {
		t.Fatalf("unexpected body: %q", string(b))
	}
}

func TestCORSMiddleware(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	handler := api.CORSMiddleware(next)

	// OPTIONS should return 204 and not call next
	reqOpt := httptest.NewRequest(http.MethodOptions, "/cors", nil)
	wOpt := httptest.NewRecorder()
	handler.ServeHTTP(wOpt, reqOpt)
	resOpt := wOpt.Result()
	defer resOpt.Body.Close()
	if resOpt.StatusCode != http.StatusNoContent {
		t.Fatalf("expected 204 for OPTIONS, got %d", resOpt.StatusCode)
	}
	if got := resOpt.Header.Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("expected CORS header set, got %q", got)
	}

	// GET should pass through and set headers
	reqGet := httptest.NewRequest(http.MethodGet, "/cors", nil)
	wGet := httptest.NewRecorder()
	handler.ServeHTTP(wGet, reqGet)
	resGet := wGet.Result()
	defer resGet.Body.Close()
	if resGet.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 for GET, got %d", resGet.StatusCode)
	}
	if got := resGet.Header.Get("Access-Control-Allow-Methods"); !strings.Contains(got, "GET") {
		t.Fatalf("expected Allow-Methods to include GET, got %q", got)
	}
}

func TestRouterAnswersPreflight(t *testing.T) {
	env := newTestEnv(t)
	job := env.createJob(t, "Frontend Engineer", "Engineering")

	for _, path := range []string{"/api/jobs", "/api/jobs/" + job.ID + "/applications"} {
		req := httptest.NewRequest(http.MethodOptions, path, nil)
		req.Header.Set("Origin", "https://careers.example.com")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		req.Header.Set("Access-Control-Request-Headers", "Content-Type")
		w := httptest.NewRecorder()
		env.router.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("%s: expected 204 got %d", path, w.Code)
		}
		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
			t.Fatalf("%s: expected allow-origin *, got %q", path, got)
		}
		if got := w.Header().Get("Access-Control-Allow-Methods"); !strings.Contains(got, http.MethodPost) {
			t.Fatalf("%s: expected POST allowed, got %q", path, got)
		}
	}

	// unknown paths keep their 404 and still carry CORS headers
	w := env.do(t, http.MethodGet, "/api/nope", nil, nil)
	if w.Code != http.StatusNotFound || w.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Fatalf("expected 404 with CORS headers, got %d %q", w.Code, w.Header().Get("Access-Control-Allow-Origin"))
	}
}

func TestRecoveryMiddleware(t *testing.T) {
	// handler that panics
	pan := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})
	handler := api.RecoveryMiddleware(pan)
	req := httptest.NewRequest(http.MethodGet, "/panic", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	res := w.Result()
	defer res.Body.Close()
	if res.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected 500 from panic recovery, got %d", res.StatusCode)
	}
	b, _ := io.ReadAll(res.Body)
	if !strings.Contains(string(b), "Internal Server Error") {
		t.Fatalf("unexpected body for recovery: %s", string(b))
	}

	// normal handler should pass through
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	handler2 := api.RecoveryMiddleware(ok)
	w2 := httptest.NewRecorder()
	handler2.ServeHTTP(w2, httptest.NewRequest(http.MethodGet, "/ok", nil))
	if w2.Result().StatusCode != http.StatusOK {
		t.Fatalf("expected 200 for normal path, got %d", w2.Result().StatusCode)
	}
}

func TestRequiresSession(t *testing.T) {
	cases := map[string]bool{
		"/admin":                true,
		"/admin/":               true,
		"/admin/jobs":           true,
		"/admin/jobs/new":       true,
		"/admin/logout":         true,
		"/admin/login":          false,
		"/":                     false,
		"/api/jobs":             false,
		"/administrator":        false,
		"/health":               false,
		"/admin/login/../jobs":  true,
		"/admin/applications/1": true,
	}
	for path, want := range cases {
		if got := api.RequiresSession(path); got != want {
			t.Fatalf("RequiresSession(%q) = %v want %v", path, got, want)
		}
	}
}

func TestAdminGate(t *testing.T) {
	env := newTestEnv(t)
	job := env.createJob(t, "Gatekeeper", "Security")

	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sid": "forged",
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("wrong-secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	requests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/admin"},
		{http.MethodGet, "/admin/jobs"},
		{http.MethodPost, "/admin/jobs"},
		{http.MethodGet, "/admin/jobs/" + job.ID},
		{http.MethodPut, "/admin/jobs/" + job.ID},
		{http.MethodDelete, "/admin/jobs/" + job.ID},
		{http.MethodGet, "/admin/jobs/" + job.ID + "/applications"},
		{http.MethodGet, "/admin/applications/abc"},
		{http.MethodPatch, "/admin/applications/abc/status"},
		{http.MethodPost, "/admin/logout"},
		{http.MethodGet, "/admin/does/not/exist"},
		{http.MethodPatch, "/admin/jobs"},
	}
	cookies := map[string]*http.Cookie{
		"no cookie":    nil,
		"literal true": {Name: session.CookieName, Value: "true"},
		"forged token": {Name: session.CookieName, Value: forged},
		"other cookie": {Name: "session", Value: "true"},
	}

	for name, c := range cookies {
		for _, rq := range requests {
			w := env.do(t, rq.method, rq.path, nil, c)
			if w.Code != http.StatusSeeOther {
				t.Fatalf("%s %s %s: expected 303 got %d", name, rq.method, rq.path, w.Code)
			}
			if loc := w.Header().Get("Location"); loc != api.LoginPath {
				t.Fatalf("%s %s %s: expected redirect to login, got %q", name, rq.method, rq.path, loc)
			}
		}
	}

	if _, err := env.svc.GetJob(context.Background(), job.ID); err != nil {
		t.Fatalf("gated delete must not run: %v", err)
	}

	// login is never redirected
	if w := env.do(t, http.MethodGet, api.LoginPath, nil, nil); w.Code != http.StatusOK {
		t.Fatalf("login page: expected 200 got %d", w.Code)
	}
	if w := env.do(t, http.MethodGet, api.LoginPath, nil, cookies["literal true"]); w.Code != http.StatusOK {
		t.Fatalf("login page with cookie: expected 200 got %d", w.Code)
	}

	// public paths are never gated
	if w := env.do(t, http.MethodGet, "/api/jobs", nil, nil); w.Code != http.StatusOK {
		t.Fatalf("public jobs: expected 200 got %d", w.Code)
	}

	// a valid session passes
	valid := env.adminCookie(t)
	if w := env.do(t, http.MethodGet, "/admin/jobs", nil, valid); w.Code != http.StatusOK {
		t.Fatalf("valid session: expected 200 got %d", w.Code)
	}
	if w := env.do(t, http.MethodGet, "/admin/does/not/exist", nil, valid); w.Code != http.StatusNotFound {
		t.Fatalf("valid session unknown path: expected 404 got %d", w.Code)
	}
}

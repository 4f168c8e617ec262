package api

import (
	"context"
	"errors"
	"net/http"
	"os"
	"strings"

	"log/slog"

	"github.com/gorilla/mux"

	"github.com/garnizeh/careers/internal/session"
)

type ctxKey string

// CtxSessionID holds the admin session id of a request that passed AdminGate.
const CtxSessionID ctxKey = "session_id"

const (
	AdminPrefix = "/admin"
	LoginPath   = "/admin/login"
)

// package-level logger used by middleware and helpers; can be set via SetLogger from caller
var logger = slog.New(slog.NewJSONHandler(os.Stdout, nil))

// SetLogger installs a logger for the api package. Passing nil is a no-op.
func SetLogger(l *slog.Logger) {
	if l != nil {
		logger = l
	}
}

func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Info("request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("remote", r.RemoteAddr),
		)
		next.ServeHTTP(w, r)
	})
}

func CORSMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func RecoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("panic", slog.Any("err", err))
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			}
		}()

		next.ServeHTTP(w, r)
	})
}

// RequiresSession reports whether path is an admin path other than the
// login path.
func RequiresSession(path string) bool {
	if path == LoginPath {
		return false
	}
	return path == AdminPrefix || strings.HasPrefix(path, AdminPrefix+"/")
}

// AdminGate redirects requests for admin paths to the login path unless they
// carry a valid session cookie.
func AdminGate(sessions *session.Manager) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !RequiresSession(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			c, err := r.Cookie(session.CookieName)
			if err != nil || c.Value == "" {
				http.Redirect(w, r, LoginPath, http.StatusSeeOther)
				return
			}

			s, err := sessions.Validate(r.Context(), c.Value)
			if err != nil {
				if !errors.Is(err, session.ErrInvalidSession) {
					logger.Error("validate admin session", slog.Any("err", err))
				}
				http.Redirect(w, r, LoginPath, http.StatusSeeOther)
				return
			}

			ctx := context.WithValue(r.Context(), CtxSessionID, s.ID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

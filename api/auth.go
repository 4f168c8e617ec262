package api

import (
	"encoding/json"
	"log/slog"
	"mime"
	"net/http"
	"time"

	"github.com/garnizeh/careers/internal/careers"
	"github.com/garnizeh/careers/internal/session"
)

type AuthHandler struct {
	svc          *careers.Service
	sessions     *session.Manager
	secureCookie bool
}

// NewAuthHandler creates a new AuthHandler with required dependencies.
func NewAuthHandler(svc *careers.Service, sessions *session.Manager, secureCookie bool) *AuthHandler {
	return &AuthHandler{svc: svc, sessions: sessions, secureCookie: secureCookie}
}

type loginRequest struct {
	Password string `json:"password"`
}

type loginResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

type loginPage struct {
	Action string   `json:"action"`
	Method string   `json:"method"`
	Fields []string `json:"fields"`
}

// LoginPage describes the login form.
func (h *AuthHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, loginPage{Action: LoginPath, Method: http.MethodPost, Fields: []string{"password"}}, http.StatusOK)
}

// Login accepts the admin password as JSON or as a form field.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	ct, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if ct == "application/json" {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid request", http.StatusBadRequest)
			return
		}
	} else {
		req.Password = r.FormValue("password")
	}
	if req.Password == "" {
		http.Error(w, "Missing fields", http.StatusBadRequest)
		return
	}

	ctx := r.Context()

	ok, err := h.svc.VerifyAdminPassword(ctx, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	if !ok {
		logger.Warn("admin login failed", slog.String("remote", r.RemoteAddr))
		writeJSON(w, loginResponse{Success: false, Error: "Invalid password"}, http.StatusUnauthorized)
		return
	}

	token, expires, err := h.sessions.Create(ctx)
	if err != nil {
		logger.Error("create admin session", slog.Any("err", err))
		http.Error(w, "Error creating session", http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, h.cookie(token, expires, int(time.Until(expires).Seconds())))
	writeJSON(w, loginResponse{Success: true}, http.StatusOK)
}

// Logout deletes the session and expires the cookie.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if c, err := r.Cookie(session.CookieName); err == nil {
		if err := h.sessions.Destroy(r.Context(), c.Value); err != nil {
			logger.Error("destroy admin session", slog.Any("err", err))
		}
	}

	http.SetCookie(w, h.cookie("", time.Unix(0, 0), -1))
	writeJSON(w, successResponse{Success: true}, http.StatusOK)
}

func (h *AuthHandler) cookie(value string, expires time.Time, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     session.CookieName,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	}
}

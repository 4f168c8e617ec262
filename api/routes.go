package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/garnizeh/careers/internal/careers"
	"github.com/garnizeh/careers/internal/config"
	"github.com/garnizeh/careers/internal/session"
)

func SetupRoutes(cfg *config.Config, version, buildTime string, svc *careers.Service, sessions *session.Manager) http.Handler {
	r := mux.NewRouter()

	// Middleware chain
	gate := AdminGate(sessions)
	r.Use(LoggingMiddleware)
	r.Use(RecoveryMiddleware)
	r.Use(gate)

	// unmatched admin paths still go through the gate
	r.NotFoundHandler = LoggingMiddleware(gate(http.NotFoundHandler()))
	r.MethodNotAllowedHandler = LoggingMiddleware(gate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
	})))

	// Create handlers
	systemHandler := &SystemHandler{}
	authHandler := NewAuthHandler(svc, sessions, cfg.CookieSecure)
	jobsHandler := NewJobsHandler(svc)
	appsHandler := NewApplicationsHandler(svc)

	// Open endpoints
	r.HandleFunc("/", systemHandler.RootHandler).Methods("GET")
	r.HandleFunc("/version", systemHandler.VersionHandler(version, buildTime)).Methods("GET")
	r.HandleFunc("/health", systemHandler.HealthHandler).Methods("GET")

	// Public API
	pub := r.PathPrefix("/api").Subrouter()
	pub.HandleFunc("/jobs", jobsHandler.ListPublic).Methods("GET")
	pub.HandleFunc("/jobs/{id}", jobsHandler.GetPublic).Methods("GET")
	pub.HandleFunc("/jobs/{id}/applications", appsHandler.Submit).Methods("POST")
	pub.HandleFunc("/application-options", jobsHandler.Options).Methods("GET")

	// Admin login is the only admin path the gate lets through
	r.HandleFunc(LoginPath, authHandler.LoginPage).Methods("GET")
	r.HandleFunc(LoginPath, authHandler.Login).Methods("POST")

	r.HandleFunc(AdminPrefix, jobsHandler.List).Methods("GET")
	admin := r.PathPrefix(AdminPrefix).Subrouter()
	admin.HandleFunc("/logout", authHandler.Logout).Methods("POST")

	// Jobs
	admin.HandleFunc("/jobs", jobsHandler.List).Methods("GET")
	admin.HandleFunc("/jobs", jobsHandler.Create).Methods("POST")
	admin.HandleFunc("/jobs/{id}", jobsHandler.Get).Methods("GET")
	admin.HandleFunc("/jobs/{id}", jobsHandler.Update).Methods("PUT")
	admin.HandleFunc("/jobs/{id}", jobsHandler.Delete).Methods("DELETE")
	admin.HandleFunc("/jobs/{id}/applications", appsHandler.ListByJob).Methods("GET")

	// Applications
	admin.HandleFunc("/applications/{id}", appsHandler.Get).Methods("GET")
	admin.HandleFunc("/applications/{id}/status", appsHandler.UpdateStatus).Methods("PATCH")
	admin.HandleFunc("/applications/{id}", appsHandler.Delete).Methods("DELETE")

	// CORS wraps the router so preflights reach it without a matching route
	return CORSMiddleware(r)
}

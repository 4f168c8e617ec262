package api

import (
	"fmt"
	"net/http"
)

type SystemHandler struct{}

func (h *SystemHandler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, `{"status":"ok","service":"careers"}`)
}

func (h *SystemHandler) VersionHandler(version, buildTime string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]string{"version": version, "buildTime": buildTime}, http.StatusOK)
	}
}

type rootResponse struct {
	Service string            `json:"service"`
	Links   map[string]string `json:"links"`
}

// RootHandler describes the public entry points.
func (h *SystemHandler) RootHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, rootResponse{
		Service: "careers",
		Links: map[string]string{
			"jobs":    "/api/jobs",
			"options": "/api/application-options",
			"admin":   AdminPrefix,
		},
	}, http.StatusOK)
}

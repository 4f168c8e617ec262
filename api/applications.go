package api

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/garnizeh/careers/internal/careers"
	"github.com/garnizeh/careers/internal/form"
	"github.com/garnizeh/careers/pkg/models"
)

type ApplicationsHandler struct {
	svc *careers.Service
}

func NewApplicationsHandler(svc *careers.Service) *ApplicationsHandler {
	return &ApplicationsHandler{svc: svc}
}

// Submit stores an application for the job in the path.
func (h *ApplicationsHandler) Submit(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	fields, err := form.DecodeApplication(ctx, body, mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}

	if _, err := h.svc.SubmitApplication(ctx, fields); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, successResponse{Success: true}, http.StatusCreated)
}

type applicationListResponse struct {
	Job          *models.Job          `json:"job"`
	Applications []models.Application `json:"applications"`
}

// ListByJob returns the applications of one job, newest first.
func (h *ApplicationsHandler) ListByJob(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := mux.Vars(r)["id"]

	j, err := h.svc.GetJob(ctx, id)
	if err != nil {
		writeError(w, err)
		return
	}
	apps, err := h.svc.GetApplicationsByJob(ctx, id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, applicationListResponse{Job: j, Applications: apps}, http.StatusOK)
}

type contactSection struct {
	FirstName  string        `json:"first_name"`
	LastName   string        `json:"last_name"`
	Email      string        `json:"email"`
	Phone      string        `json:"phone"`
	LinkedIn   *string       `json:"linkedin"`
	Portfolio  *string       `json:"portfolio"`
	ResumeLink string        `json:"resume_link"`
	ExtraLinks []models.Link `json:"extra_links"`
}

type experienceSection struct {
	Experience string   `json:"experience"`
	Skills     []string `json:"skills"`
}

type availabilitySection struct {
	Availability string   `json:"availability"`
	Timezones    []string `json:"timezones"`
	HeardFrom    string   `json:"heard_from"`
}

type applicationDetail struct {
	ID           string              `json:"id"`
	JobID        string              `json:"job_id"`
	Status       string              `json:"status"`
	Statuses     []string            `json:"statuses"`
	CreatedAt    time.Time           `json:"created_at"`
	Contact      contactSection      `json:"contact"`
	Experience   experienceSection   `json:"experience"`
	Availability availabilitySection `json:"availability"`
}

func detailOf(a *models.Application) applicationDetail {
	return applicationDetail{
		ID:        a.ID,
		JobID:     a.JobID,
		Status:    a.Status,
		Statuses:  models.Statuses,
		CreatedAt: a.CreatedAt,
		Contact: contactSection{
			FirstName:  a.FirstName,
			LastName:   a.LastName,
			Email:      a.Email,
			Phone:      a.Phone,
			LinkedIn:   a.LinkedIn,
			Portfolio:  a.Portfolio,
			ResumeLink: a.ResumeLink,
			ExtraLinks: a.ExtraLinks,
		},
		Experience: experienceSection{Experience: a.Experience, Skills: a.Skills},
		Availability: availabilitySection{
			Availability: a.Availability,
			Timezones:    a.Timezones,
			HeardFrom:    a.HeardFrom,
		},
	}
}

func (h *ApplicationsHandler) Get(w http.ResponseWriter, r *http.Request) {
	a, err := h.svc.GetApplication(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, detailOf(a), http.StatusOK)
}

type statusRequest struct {
	Status string `json:"status"`
}

func (h *ApplicationsHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req statusRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	if err := h.svc.UpdateApplicationStatus(r.Context(), mux.Vars(r)["id"], req.Status); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, successResponse{Success: true}, http.StatusOK)
}

func (h *ApplicationsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteApplication(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, successResponse{Success: true}, http.StatusOK)
}

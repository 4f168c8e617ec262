package api

import (
	"io"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/garnizeh/careers/internal/careers"
	"github.com/garnizeh/careers/internal/form"
	"github.com/garnizeh/careers/internal/listing"
	"github.com/garnizeh/careers/pkg/models"
)

// maxBodyBytes caps editor and application request bodies.
const maxBodyBytes = 1 << 20

type JobsHandler struct {
	svc *careers.Service
	now func() time.Time
}

func NewJobsHandler(svc *careers.Service) *JobsHandler {
	return &JobsHandler{svc: svc, now: time.Now}
}

type jobView struct {
	models.Job
	IsTechJob bool `json:"is_tech_job"`
}

type jobListResponse struct {
	Jobs   []jobView      `json:"jobs"`
	Facets listing.Facets `json:"facets"`
	Filter listing.Filter `json:"filter"`
	Total  int            `json:"total"`
}

type jobResponse struct {
	Success bool        `json:"success"`
	Job     *models.Job `json:"job"`
}

func viewsOf(jobs []models.Job) []jobView {
	out := make([]jobView, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, jobView{Job: j, IsTechJob: listing.IsTechJob(j)})
	}
	return out
}

// ListPublic returns the filtered job list with facets taken from every job.
func (h *JobsHandler) ListPublic(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.svc.GetJobs(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	q := r.URL.Query()
	f := listing.Filter{
		Query:      q.Get("q"),
		Department: q.Get("department"),
		Location:   q.Get("location"),
		Type:       q.Get("type"),
	}
	matched := listing.Apply(jobs, f)

	writeJSON(w, jobListResponse{
		Jobs:   viewsOf(matched),
		Facets: listing.FacetsOf(jobs),
		Filter: f,
		Total:  len(jobs),
	}, http.StatusOK)
}

func (h *JobsHandler) GetPublic(w http.ResponseWriter, r *http.Request) {
	j, err := h.svc.GetJob(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, jobView{Job: *j, IsTechJob: listing.IsTechJob(*j)}, http.StatusOK)
}

func (h *JobsHandler) Options(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, listing.Options(), http.StatusOK)
}

type adminJobsResponse struct {
	Jobs []models.Job `json:"jobs"`
}

func (h *JobsHandler) List(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.svc.GetJobs(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, adminJobsResponse{Jobs: jobs}, http.StatusOK)
}

func (h *JobsHandler) Get(w http.ResponseWriter, r *http.Request) {
	j, err := h.svc.GetJob(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, j, http.StatusOK)
}

// Create validates the editor body with today as the earliest last-apply date.
func (h *JobsHandler) Create(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	// the floor is the server's local today
	fields, err := form.DecodeJob(ctx, body, h.now().Local())
	if err != nil {
		writeError(w, err)
		return
	}

	j, err := h.svc.CreateJob(ctx, fields)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, jobResponse{Success: true, Job: j}, http.StatusCreated)
}

// Update validates the editor body against the job's creation date.
func (h *JobsHandler) Update(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	id := mux.Vars(r)["id"]

	existing, err := h.svc.GetJob(ctx, id)
	if err != nil {
		writeError(w, err)
		return
	}
	fields, err := form.DecodeJob(ctx, body, existing.CreatedAt.Local())
	if err != nil {
		writeError(w, err)
		return
	}

	j, err := h.svc.UpdateJob(ctx, id, fields)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, jobResponse{Success: true, Job: j}, http.StatusOK)
}

func (h *JobsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteJob(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, successResponse{Success: true}, http.StatusOK)
}

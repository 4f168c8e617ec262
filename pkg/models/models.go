package models

import "time"

// Domain models matching the database schema in db/migrations.

// Job types accepted by the job editor.
const (
	JobTypeFullTime   = "Full-time"
	JobTypePartTime   = "Part-time"
	JobTypeContract   = "Contract"
	JobTypeInternship = "Internship"
	JobTypeTemporary  = "Temporary"
)

// JobTypes lists the job types in editor order.
var JobTypes = []string{JobTypeFullTime, JobTypePartTime, JobTypeContract, JobTypeInternship, JobTypeTemporary}

// Application statuses. New applications always start as pending.
const (
	StatusPending     = "pending"
	StatusReviewing   = "reviewing"
	StatusInterviewed = "interviewed"
	StatusRejected    = "rejected"
	StatusHired       = "hired"
)

// Statuses lists every application status.
var Statuses = []string{StatusPending, StatusReviewing, StatusInterviewed, StatusRejected, StatusHired}

// ValidStatus reports whether s is one of Statuses.
func ValidStatus(s string) bool {
	for _, v := range Statuses {
		if v == s {
			return true
		}
	}
	return false
}

// Availability values offered by the application form.
var Availabilities = []string{"immediately", "2weeks", "1month", "other"}

type Job struct {
	ID             string    `json:"id" db:"id"`
	Title          string    `json:"title" db:"title"`
	Department     string    `json:"department" db:"department"`
	Location       string    `json:"location" db:"location"`
	Type           string    `json:"type" db:"type"`
	Description    string    `json:"description" db:"description"`
	Requirements   []string  `json:"requirements" db:"requirements"`
	ApplicationURL *string   `json:"application_url" db:"application_url"`
	LastApplyDate  *string   `json:"last_apply_date" db:"last_apply_date"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}

type Link struct {
	Label string `json:"label" validate:"required"`
	URL   string `json:"url" validate:"required,url"`
}

type Application struct {
	ID           string    `json:"id" db:"id"`
	JobID        string    `json:"job_id" db:"job_id"`
	FirstName    string    `json:"first_name" db:"first_name"`
	LastName     string    `json:"last_name" db:"last_name"`
	Email        string    `json:"email" db:"email"`
	Phone        string    `json:"phone" db:"phone"`
	LinkedIn     *string   `json:"linkedin" db:"linkedin"`
	Portfolio    *string   `json:"portfolio" db:"portfolio"`
	ResumeLink   string    `json:"resume_link" db:"resume_link"`
	Experience   string    `json:"experience" db:"experience"`
	Availability string    `json:"availability" db:"availability"`
	HeardFrom    string    `json:"heard_from" db:"heard_from"`
	Skills       []string  `json:"skills" db:"skills"`
	Timezones    []string  `json:"timezones" db:"timezones"`
	ExtraLinks   []Link    `json:"extra_links" db:"extra_links"`
	Status       string    `json:"status" db:"status"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// AdminSettings is the single settings row. PasswordHash is a bcrypt hash.
type AdminSettings struct {
	ID           int64  `json:"id" db:"id"`
	PasswordHash string `json:"-" db:"password_hash"`
	Updated      int64  `json:"updated" db:"updated"`
}

type Session struct {
	ID        string    `json:"id" db:"id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	ExpiresAt time.Time `json:"expires_at" db:"expires_at"`
}

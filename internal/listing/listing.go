// Package listing filters the public job list in memory and derives the
// facet values shown by the listing filters.
package listing

import (
	"strings"

	"github.com/garnizeh/careers/pkg/models"
)

// Filter narrows a job list. Empty fields do not filter.
type Filter struct {
	Query      string `json:"q"`
	Department string `json:"department"`
	Location   string `json:"location"`
	Type       string `json:"type"`
}

// Facets holds the distinct values in first-seen order.
type Facets struct {
	Departments []string `json:"departments"`
	Locations   []string `json:"locations"`
	Types       []string `json:"types"`
}

// Apply returns the jobs matching every non-empty field of f, keeping the
// input order. Query is a case-insensitive substring of title or description;
// the other fields match exactly.
func Apply(jobs []models.Job, f Filter) []models.Job {
	q := strings.ToLower(f.Query)
	out := make([]models.Job, 0, len(jobs))
	for _, j := range jobs {
		if q != "" && !strings.Contains(strings.ToLower(j.Title), q) &&
			!strings.Contains(strings.ToLower(j.Description), q) {
			continue
		}
		if f.Department != "" && j.Department != f.Department {
			continue
		}
		if f.Location != "" && j.Location != f.Location {
			continue
		}
		if f.Type != "" && j.Type != f.Type {
			continue
		}
		out = append(out, j)
	}
	return out
}

func FacetsOf(jobs []models.Job) Facets {
	f := Facets{Departments: []string{}, Locations: []string{}, Types: []string{}}
	seen := map[string]map[string]bool{"d": {}, "l": {}, "t": {}}
	add := func(kind, v string, dst *[]string) {
		if seen[kind][v] {
			return
		}
		seen[kind][v] = true
		*dst = append(*dst, v)
	}
	for _, j := range jobs {
		add("d", j.Department, &f.Departments)
		add("l", j.Location, &f.Locations)
		add("t", j.Type, &f.Types)
	}
	return f
}

var (
	techTitleWords      = []string{"developer", "engineer", "tech"}
	techDepartmentWords = []string{"engineering", "tech"}
)

// IsTechJob reports whether the application form should offer skill tags.
func IsTechJob(j models.Job) bool {
	title := strings.ToLower(j.Title)
	for _, w := range techTitleWords {
		if strings.Contains(title, w) {
			return true
		}
	}
	dept := strings.ToLower(j.Department)
	for _, w := range techDepartmentWords {
		if strings.Contains(dept, w) {
			return true
		}
	}
	return false
}

package listing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/garnizeh/careers/pkg/models"
)

func sampleJobs() []models.Job {
	return []models.Job{
		{ID: "1", Title: "Backend Developer", Department: "Engineering", Location: "Remote", Type: "Full-time", Description: "Build APIs in Go."},
		{ID: "2", Title: "Account Executive", Department: "Sales", Location: "Berlin", Type: "Full-time", Description: "Close deals with developers."},
		{ID: "3", Title: "QA Intern", Department: "Engineering", Location: "Berlin", Type: "Internship", Description: "Test things."},
	}
}

func ids(jobs []models.Job) []string {
	out := make([]string, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, j.ID)
	}
	return out
}

func TestApply(t *testing.T) {
	cases := []struct {
		name string
		f    Filter
		want []string
	}{
		{"no filter keeps order", Filter{}, []string{"1", "2", "3"}},
		{"department", Filter{Department: "Engineering"}, []string{"1", "3"}},
		{"query matches title case-insensitively", Filter{Query: "DEVELOPER"}, []string{"1", "2"}},
		{"query matches description", Filter{Query: "close deals"}, []string{"2"}},
		{"location and type", Filter{Location: "Berlin", Type: "Internship"}, []string{"3"}},
		{"department is exact", Filter{Department: "engineering"}, []string{}},
		{"all filters", Filter{Query: "go", Department: "Engineering", Location: "Remote", Type: "Full-time"}, []string{"1"}},
		{"no match", Filter{Query: "astronaut"}, []string{}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, ids(Apply(sampleJobs(), c.f)))
		})
	}
}

func TestApplyEngineeringExample(t *testing.T) {
	jobs := []models.Job{
		{ID: "eng", Title: "Eng", Department: "Engineering"},
		{ID: "sales", Title: "Sales", Department: "Sales"},
	}

	got := Apply(jobs, Filter{Department: "Engineering"})
	require.Len(t, got, 1)
	assert.Equal(t, "eng", got[0].ID)
}

func TestFacetsOf(t *testing.T) {
	f := FacetsOf(sampleJobs())
	assert.Equal(t, []string{"Engineering", "Sales"}, f.Departments)
	assert.Equal(t, []string{"Remote", "Berlin"}, f.Locations)
	assert.Equal(t, []string{"Full-time", "Internship"}, f.Types)

	empty := FacetsOf(nil)
	assert.NotNil(t, empty.Departments)
	assert.Empty(t, empty.Departments)
}

func TestIsTechJob(t *testing.T) {
	cases := []struct {
		title, dept string
		want        bool
	}{
		{"Senior Frontend Developer", "Product", true},
		{"Site Reliability Engineer", "Operations", true},
		{"Technical Writer", "Docs", true},
		{"Recruiter", "Engineering", true},
		{"Analyst", "TechOps", true},
		{"Account Executive", "Sales", false},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, IsTechJob(models.Job{Title: c.title, Department: c.dept}), "%s / %s", c.title, c.dept)
	}
}

func TestOptions(t *testing.T) {
	o := Options()
	assert.Len(t, o.Timezones, 11)
	assert.Len(t, o.Skills, 20)
	assert.Len(t, o.Platforms, 6)
	assert.Equal(t, models.Availabilities, o.Availability)

	assert.True(t, IsTimezoneOption("india"))
	assert.False(t, IsTimezoneOption("mars"))
}

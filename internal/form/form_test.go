package form

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

const validJob = `{
	"title": "Platform Engineer",
	"department": "Engineering",
	"location": "Remote",
	"type": "Full-time",
	"description": "Run the platform that runs everything else.",
	"requirements": ["Go", "Kubernetes"],
	"application_url": "",
	"last_apply_date": "2030-03-01"
}`

const validApplication = `{
	"jobId": "ignored",
	"firstName": "Ada",
	"lastName": "Lovelace",
	"email": "ada@example.com",
	"phone": "+44 20 7946 0000",
	"linkedIn": "",
	"portfolio": "https://ada.dev",
	"resumeLink": "https://ada.dev/cv.pdf",
	"experience": "Wrote the first published algorithm.",
	"availability": "2weeks",
	"heardFrom": "A friend",
	"skills": ["Python"],
	"timezones": ["europe-western", "us-eastern"],
	"extraLinks": [{"label": "GitHub", "url": "https://github.com/ada"}]
}`

func today() time.Time {
	return time.Date(2030, 1, 10, 15, 0, 0, 0, time.UTC)
}

func fieldsOf(t *testing.T, err error) map[string]string {
	t.Helper()
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *ValidationError got %T %v", err, err)
	}
	return ve.Fields
}

// hasField reports whether fields has name or a path nested under it.
func hasField(fields map[string]string, name string) bool {
	for k := range fields {
		if k == name || strings.HasPrefix(k, name+".") || strings.HasPrefix(k, name+"[") {
			return true
		}
	}
	return false
}

func replace(body, old, new string) string {
	if !strings.Contains(body, old) {
		panic("fixture does not contain " + old)
	}
	return strings.Replace(body, old, new, 1)
}

func TestDecodeJobValid(t *testing.T) {
	f, err := DecodeJob(context.Background(), []byte(validJob), today())
	if err != nil {
		t.Fatalf("DecodeJob: %v", err)
	}
	if f.Title != "Platform Engineer" || len(f.Requirements) != 2 || f.LastApplyDate != "2030-03-01" {
		t.Fatalf("unexpected fields: %#v", f)
	}
}

func TestDecodeJobInvalid(t *testing.T) {
	cases := []struct {
		name  string
		body  string
		field string
	}{
		{"short title", replace(validJob, `"Platform Engineer"`, `"P"`), "title"},
		{"short department", replace(validJob, `"Engineering"`, `"E"`), "department"},
		{"unknown type", replace(validJob, `"Full-time"`, `"Gig"`), "type"},
		{"short description", replace(validJob, `"Run the platform that runs everything else."`, `"Short"`), "description"},
		{"bad url", replace(validJob, `"application_url": ""`, `"application_url": "not a url"`), "application_url"},
		{"missing date", replace(validJob, `"2030-03-01"`, `""`), "last_apply_date"},
		{"unparseable date", replace(validJob, `"2030-03-01"`, `"someday"`), "last_apply_date"},
		{"date in the past", replace(validJob, `"2030-03-01"`, `"2030-01-09"`), "last_apply_date"},
		{"title wrong type", replace(validJob, `"Platform Engineer"`, `42`), "title"},
		{"requirements wrong type", replace(validJob, `["Go", "Kubernetes"]`, `"Go"`), "requirements"},
		{"not json", `{"title":`, "body"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := DecodeJob(context.Background(), []byte(c.body), today())
			fields := fieldsOf(t, err)
			if !hasField(fields, c.field) {
				t.Fatalf("expected error on %q, got %v", c.field, fields)
			}
		})
	}
}

func TestDecodeJobDateFloor(t *testing.T) {
	ctx := context.Background()

	sameDay := replace(validJob, `"2030-03-01"`, `"2030-01-10"`)
	if _, err := DecodeJob(ctx, []byte(sameDay), today()); err != nil {
		t.Fatalf("expected today to be accepted: %v", err)
	}

	// the floor is the calendar day where notBefore was taken, not in UTC
	evening := time.Date(2030, 1, 10, 20, 0, 0, 0, time.FixedZone("PST", -8*60*60))
	if _, err := DecodeJob(ctx, []byte(sameDay), evening); err != nil {
		t.Fatalf("expected local today to be accepted late in the day: %v", err)
	}
	dayBefore := replace(validJob, `"2030-03-01"`, `"2030-01-09"`)
	if _, err := DecodeJob(ctx, []byte(dayBefore), evening); !hasField(fieldsOf(t, err), "last_apply_date") {
		t.Fatalf("expected local yesterday to be refused, got %v", err)
	}

	// editing an old job only has to stay after its creation date
	old := replace(validJob, `"2030-03-01"`, `"2024-05-01"`)
	created := time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC)
	if _, err := DecodeJob(ctx, []byte(old), created); err != nil {
		t.Fatalf("expected date after creation to be accepted: %v", err)
	}
}

func TestDecodeApplicationValid(t *testing.T) {
	f, err := DecodeApplication(context.Background(), []byte(validApplication), "job-1")
	if err != nil {
		t.Fatalf("DecodeApplication: %v", err)
	}
	if f.JobID != "job-1" {
		t.Fatalf("expected path job id to win, got %q", f.JobID)
	}
	if f.FirstName != "Ada" || len(f.Timezones) != 2 || len(f.ExtraLinks) != 1 {
		t.Fatalf("unexpected fields: %#v", f)
	}
}

func TestDecodeApplicationInvalid(t *testing.T) {
	cases := []struct {
		name  string
		body  string
		field string
	}{
		{"short first name", replace(validApplication, `"Ada"`, `"A"`), "firstName"},
		{"bad email", replace(validApplication, `"ada@example.com"`, `"ada"`), "email"},
		{"short phone", replace(validApplication, `"+44 20 7946 0000"`, `"123"`), "phone"},
		{"bad linkedin", replace(validApplication, `"linkedIn": ""`, `"linkedIn": "linkedin"`), "linkedIn"},
		{"missing resume", replace(validApplication, `"https://ada.dev/cv.pdf"`, `""`), "resumeLink"},
		{"short experience", replace(validApplication, `"Wrote the first published algorithm."`, `"Lots"`), "experience"},
		{"unknown availability", replace(validApplication, `"2weeks"`, `"never"`), "availability"},
		{"empty heard from", replace(validApplication, `"A friend"`, `""`), "heardFrom"},
		{"unknown timezone", replace(validApplication, `"us-eastern"`, `"mars"`), "timezones[1]"},
		{"link without url", replace(validApplication, `"url": "https://github.com/ada"`, `"url": ""`), "extraLinks[0].url"},
		{"skills wrong type", replace(validApplication, `["Python"]`, `[1]`), "skills"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := DecodeApplication(context.Background(), []byte(c.body), "job-1")
			fields := fieldsOf(t, err)
			if !hasField(fields, c.field) {
				t.Fatalf("expected error on %q, got %v", c.field, fields)
			}
		})
	}
}

func TestValidationErrorMessage(t *testing.T) {
	err := &ValidationError{Fields: map[string]string{"b": "second", "a": "first"}}
	if got := err.Error(); got != "validation failed: a: first; b: second" {
		t.Fatalf("unexpected message %q", got)
	}
}

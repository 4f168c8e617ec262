// Package form turns raw request bodies into validated payloads for the
// careers service. A body is first checked against an embedded JSON Schema
// for its shape, then decoded and checked field by field.
package form

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/garnizeh/careers/internal/careers"
	"github.com/garnizeh/careers/internal/listing"
	"github.com/garnizeh/careers/pkg/models"
)

// ValidationError maps request field names to messages.
type ValidationError struct {
	Fields map[string]string `json:"fields"`
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for n := range e.Fields {
		names = append(names, n)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, n := range names {
		parts = append(parts, fmt.Sprintf("%s: %s", n, e.Fields[n]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("timezone_option", func(fl validator.FieldLevel) bool {
		return listing.IsTimezoneOption(fl.Field().String())
	}); err != nil {
		panic(fmt.Sprintf("register timezone_option: %v", err))
	}
	return v
}

// messages holds the form wording per top-level field.
var messages = map[string]string{
	"title":           "Title must be at least 2 characters",
	"department":      "Department must be at least 2 characters",
	"location":        "Location must be at least 2 characters",
	"type":            "Job type must be one of: " + strings.Join(models.JobTypes, ", "),
	"description":     "Description must be at least 10 characters",
	"requirements":    "Requirements must not be blank",
	"application_url": "Please enter a valid URL",
	"last_apply_date": "Please select a last application date",
	"firstName":       "First name must be at least 2 characters",
	"lastName":        "Last name must be at least 2 characters",
	"email":           "Please enter a valid email address",
	"phone":           "Please enter a valid phone number",
	"linkedIn":        "Please enter a valid LinkedIn URL",
	"portfolio":       "Please enter a valid URL",
	"resumeLink":      "Please enter a valid resume URL",
	"experience":      "Please provide more details about your experience",
	"availability":    "Please choose when you can start",
	"heardFrom":       "Please let us know how you heard about us",
	"skills":          "Skills must not be blank",
	"timezones":       "Please choose timezones from the list",
	"extraLinks":      "Each link needs a label and a valid URL",
}

// check runs the struct rules on v and converts failures to a ValidationError.
func check(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		name := fieldPath(fe.Namespace())
		fields[name] = message(name, fe)
	}
	return &ValidationError{Fields: fields}
}

// fieldPath drops the struct name from a validator namespace,
// "ApplicationFields.extraLinks[0].url" becomes "extraLinks[0].url".
func fieldPath(ns string) string {
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func message(path string, fe validator.FieldError) string {
	top := path
	if i := strings.IndexAny(top, ".["); i >= 0 {
		top = top[:i]
	}
	if m, ok := messages[top]; ok {
		return m
	}
	return fmt.Sprintf("Invalid value (failed on '%s' tag)", fe.Tag())
}

// DecodeJob validates a job editor body. The last application date must
// not fall before the calendar day of notBefore, read in notBefore's own
// location: today for a new job, the job's creation date for an edit.
func DecodeJob(ctx context.Context, body []byte, notBefore time.Time) (careers.JobFields, error) {
	var f careers.JobFields
	if err := checkShape(ctx, jobSchema, body); err != nil {
		return f, err
	}
	if err := json.Unmarshal(body, &f); err != nil {
		return f, &ValidationError{Fields: map[string]string{"body": "Request body must be a JSON object"}}
	}
	f.LastApplyDate = strings.TrimSpace(f.LastApplyDate)

	if err := check(f); err != nil {
		return f, err
	}

	last, err := careers.ParseDate(f.LastApplyDate)
	if err != nil {
		return f, &ValidationError{Fields: map[string]string{"last_apply_date": "Please enter a valid date"}}
	}
	floor := notBefore.Format(careers.DateLayout)
	if last.Format(careers.DateLayout) < floor {
		return f, &ValidationError{Fields: map[string]string{
			"last_apply_date": "Last application date cannot be before " + floor,
		}}
	}
	return f, nil
}

// DecodeApplication validates an application form body for jobID. Any job
// id in the body is replaced by jobID.
func DecodeApplication(ctx context.Context, body []byte, jobID string) (careers.ApplicationFields, error) {
	var f careers.ApplicationFields
	if err := checkShape(ctx, applicationSchema, body); err != nil {
		return f, err
	}
	if err := json.Unmarshal(body, &f); err != nil {
		return f, &ValidationError{Fields: map[string]string{"body": "Request body must be a JSON object"}}
	}
	f.JobID = jobID
	f.Email = strings.TrimSpace(f.Email)

	if err := check(f); err != nil {
		return f, err
	}
	return f, nil
}

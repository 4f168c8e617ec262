package careers

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the date-only format stored for last-apply dates.
const DateLayout = "2006-01-02"

var dateInputLayouts = []string{
	DateLayout,
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// NormalizeDate converts a date or timestamp to its UTC calendar date.
// An empty (or blank) input yields nil.
func NormalizeDate(s string) (*string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	t, err := ParseDate(s)
	if err != nil {
		return nil, err
	}
	out := t.Format(DateLayout)
	return &out, nil
}

// ParseDate parses any accepted date input and returns it in UTC.
// Inputs without a zone are taken as UTC.
func ParseDate(s string) (time.Time, error) {
	for _, layout := range dateInputLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
}

package form

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/qri-io/jsonschema"
)

//go:embed schemas/*.json
var schemaFS embed.FS

var (
	jobSchema         = mustSchema("schemas/job.json")
	applicationSchema = mustSchema("schemas/application.json")
)

func mustSchema(name string) *jsonschema.Schema {
	b, err := schemaFS.ReadFile(name)
	if err != nil {
		panic(fmt.Sprintf("read schema %s: %v", name, err))
	}
	rs := &jsonschema.Schema{}
	if err := json.Unmarshal(b, rs); err != nil {
		panic(fmt.Sprintf("compile schema %s: %v", name, err))
	}
	return rs
}

// checkShape validates body against rs. Type mismatches are reported per
// property path; a body that is not JSON is reported under "body".
func checkShape(ctx context.Context, rs *jsonschema.Schema, body []byte) error {
	if !json.Valid(body) {
		return &ValidationError{Fields: map[string]string{"body": "Request body must be a JSON object"}}
	}

	keyErrs, err := rs.ValidateBytes(ctx, body)
	if err != nil {
		return fmt.Errorf("validate schema: %w", err)
	}
	if len(keyErrs) == 0 {
		return nil
	}

	fields := make(map[string]string, len(keyErrs))
	for _, ke := range keyErrs {
		name := strings.TrimPrefix(ke.PropertyPath, "/")
		if name == "" {
			name = "body"
		}
		name = strings.ReplaceAll(name, "/", ".")
		if _, ok := fields[name]; !ok {
			fields[name] = ke.Message
		}
	}
	return &ValidationError{Fields: fields}
}

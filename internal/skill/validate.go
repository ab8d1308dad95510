package skill

import (
	"fmt"
	"regexp"
	"strings"

	skerr "github.com/anything-stack/skillsmith/internal/errors"
)

var (
	// hubIDPattern matches lowercase alphanumeric with single hyphens between words
	hubIDPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
	// semverPattern matches strict semver (X.Y.Z)
	semverPattern = regexp.MustCompile(`^\d+\.\d+\.\d+$`)
)

// ValidationResult collects the coded errors of one form submission, one
// per offending field.
type ValidationResult struct {
	Errors []*skerr.Error
}

// HasErrors returns true if there are any validation errors.
func (r *ValidationResult) HasErrors() bool {
	return len(r.Errors) > 0
}

// Error implements the error interface.
func (r *ValidationResult) Error() string {
	if len(r.Errors) == 0 {
		return ""
	}

	return fmt.Sprintf("validation failed with %d error(s):\n  - %s",
		len(r.Errors), strings.Join(r.Messages(), "\n  - "))
}

// Messages returns the human-readable error strings, one per failed field.
func (r *ValidationResult) Messages() []string {
	msgs := make([]string, 0, len(r.Errors))
	for _, err := range r.Errors {
		msg := err.Message
		if err.Cause != nil {
			msg = fmt.Sprintf("%s: %v", msg, err.Cause)
		}
		msgs = append(msgs, msg)
	}
	return msgs
}

// Add appends a coded validation error.
func (r *ValidationResult) Add(err *skerr.Error) {
	r.Errors = append(r.Errors, err)
}

// FromFields validates a flat form-field mapping and normalizes it into a
// Record. Validation is all-or-nothing: any missing required field or
// malformed entrypoint_params fails the whole submission, reporting one
// coded error per offending field. On failure the record is nil.
func FromFields(fields map[string]string) (*Record, *ValidationResult) {
	result := &ValidationResult{}

	get := func(key string) string {
		return strings.TrimSpace(fields[key])
	}

	// Every required field must be non-empty before format rules apply.
	for _, f := range RequiredFields {
		if get(f.Key) == "" {
			result.Add(skerr.FieldMissing(f.Key))
		}
	}

	rec := &Record{
		Name:              get(FieldName),
		HubID:             get(FieldHubID),
		Description:       get(FieldDescription),
		EntrypointFile:    get(FieldEntrypointFile),
		OutputDescription: get(FieldOutputDescription),
		Version:           get(FieldVersion),
		Schema:            get(FieldSchema),
		Active:            true,
	}

	if rec.HubID != "" && !hubIDPattern.MatchString(rec.HubID) {
		result.Add(skerr.FieldInvalid(FieldHubID, "must be lowercase alphanumeric with hyphens (it becomes the folder name)"))
	}

	if rec.Version != "" && !semverPattern.MatchString(rec.Version) {
		result.Add(skerr.FieldInvalid(FieldVersion, "must be semver format (X.Y.Z)"))
	}

	if rec.Schema != "" && rec.Schema != SchemaVersion {
		result.Add(skerr.FieldInvalid(FieldSchema, fmt.Sprintf("must be %q", SchemaVersion)))
	}

	if raw := get(FieldEntrypointParams); raw != "" {
		params, err := ParseParams(raw)
		if err != nil {
			result.Add(skerr.ParamsInvalid(err))
		} else {
			rec.Params = params
		}
	}

	if result.HasErrors() {
		return nil, result
	}
	return rec, result
}

package skill

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Form field keys. These are the flat field names the editor forms use,
// matching the eight required entries of a skill submission.
const (
	FieldName              = "name"
	FieldHubID             = "hubId"
	FieldDescription       = "description"
	FieldEntrypointFile    = "entrypoint_file"
	FieldEntrypointParams  = "entrypoint_params"
	FieldOutputDescription = "output_description"
	FieldVersion           = "version"
	FieldSchema            = "schema"
)

// Field describes one editor form field.
type Field struct {
	// Key is the flat form-field name
	Key string

	// Tooltip is the help text shown next to the field
	Tooltip string

	// Multiline is true for fields edited in a text area
	Multiline bool
}

// RequiredFields lists every field a skill submission must provide, in
// display order. The tooltip texts double as validation hints.
var RequiredFields = []Field{
	{Key: FieldName, Tooltip: "The user-friendly name of the skill."},
	{Key: FieldHubID, Tooltip: "Internal skill ID. Must match folder name."},
	{Key: FieldDescription, Tooltip: "Short summary of what the skill does.", Multiline: true},
	{Key: FieldEntrypointFile, Tooltip: "Name of the JS file with the handler (usually 'handler.js')."},
	{Key: FieldEntrypointParams, Tooltip: "Inputs expected by the skill (name, type, description).", Multiline: true},
	{Key: FieldOutputDescription, Tooltip: "What the skill will return. Must be a string.", Multiline: true},
	{Key: FieldVersion, Tooltip: "Version of the skill, e.g., '1.0.0'."},
	{Key: FieldSchema, Tooltip: "Must always be 'skill-1.0.0'."},
}

// FieldByKey returns the field definition for a form-field key.
func FieldByKey(key string) (Field, bool) {
	for _, f := range RequiredFields {
		if f.Key == key {
			return f, true
		}
	}
	return Field{}, false
}

// Fields reconstitutes the flat form-field mapping from a record, for
// prefilling the modify form. Params are re-serialized as pretty JSON.
func (r *Record) Fields() map[string]string {
	params := r.Params
	if params == nil {
		params = map[string]Param{}
	}
	data, err := json.MarshalIndent(params, "", "  ")
	if err != nil {
		// A map[string]Param cannot fail to marshal; keep the form usable.
		data = []byte("{}")
	}

	return map[string]string{
		FieldName:              r.Name,
		FieldHubID:             r.HubID,
		FieldDescription:       r.Description,
		FieldEntrypointFile:    r.EntrypointFile,
		FieldEntrypointParams:  string(data),
		FieldOutputDescription: r.OutputDescription,
		FieldVersion:           r.Version,
		FieldSchema:            r.Schema,
	}
}

// ParseParams parses an entrypoint_params form value into structured data.
// The input must be a JSON object mapping parameter name to an object with
// exactly the keys "description" and "type".
func ParseParams(s string) (map[string]Param, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal([]byte(s), &raw); err != nil {
		return nil, err
	}

	params := make(map[string]Param, len(raw))
	for name, msg := range raw {
		var p Param
		dec := json.NewDecoder(bytes.NewReader(msg))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&p); err != nil {
			return nil, fmt.Errorf("parameter %q: %w", name, err)
		}
		params[name] = p
	}

	return params, nil
}

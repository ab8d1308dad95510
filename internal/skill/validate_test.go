package skill

import (
	"reflect"
	"strings"
	"testing"

	skerr "github.com/anything-stack/skillsmith/internal/errors"
)

func validFields() map[string]string {
	return map[string]string{
		FieldName:              "Reverse Text",
		FieldHubID:             "reverse-text",
		FieldDescription:       "Reverses the provided text.",
		FieldEntrypointFile:    "handler.js",
		FieldEntrypointParams:  `{"text": {"description": "Text to reverse", "type": "string"}}`,
		FieldOutputDescription: "The reversed string.",
		FieldVersion:           "1.0.0",
		FieldSchema:            "skill-1.0.0",
	}
}

func TestFromFieldsValid(t *testing.T) {
	rec, result := FromFields(validFields())

	if result.HasErrors() {
		t.Fatalf("expected no errors for valid fields, got: %v", result.Error())
	}
	if rec == nil {
		t.Fatal("expected a record")
	}
	if rec.HubID != "reverse-text" {
		t.Errorf("hubId = %q, want %q", rec.HubID, "reverse-text")
	}
	if !rec.Active {
		t.Error("new records should default to active")
	}

	want := map[string]Param{
		"text": {Description: "Text to reverse", Type: "string"},
	}
	if !reflect.DeepEqual(rec.Params, want) {
		t.Errorf("params = %#v, want %#v", rec.Params, want)
	}
}

func TestFromFieldsParamsRoundTrip(t *testing.T) {
	rec, result := FromFields(validFields())
	if result.HasErrors() {
		t.Fatalf("unexpected errors: %v", result.Error())
	}

	// Serialize the parsed params back out and parse again; the result
	// must be identical.
	again, err := ParseParams(rec.Fields()[FieldEntrypointParams])
	if err != nil {
		t.Fatalf("re-parsing serialized params: %v", err)
	}
	if !reflect.DeepEqual(again, rec.Params) {
		t.Errorf("params did not round-trip: %#v vs %#v", again, rec.Params)
	}
}

func TestFromFieldsMissingField(t *testing.T) {
	for _, f := range RequiredFields {
		t.Run(f.Key, func(t *testing.T) {
			fields := validFields()
			fields[f.Key] = ""

			rec, result := FromFields(fields)
			if rec != nil {
				t.Error("expected nil record on validation failure")
			}
			if len(result.Errors) != 1 {
				t.Fatalf("expected exactly one error, got %d: %v", len(result.Errors), result.Error())
			}
			if result.Errors[0].Code != skerr.CodeFieldMissing {
				t.Errorf("error code = %q, want %q", result.Errors[0].Code, skerr.CodeFieldMissing)
			}
			if result.Errors[0].Details["field"] != f.Key {
				t.Errorf("error names field %v, want %q", result.Errors[0].Details["field"], f.Key)
			}
		})
	}
}

func TestFromFieldsWhitespaceIsEmpty(t *testing.T) {
	fields := validFields()
	fields[FieldName] = "   \t"

	_, result := FromFields(fields)
	if len(result.Errors) != 1 || result.Errors[0].Details["field"] != FieldName {
		t.Fatalf("expected a single name error, got: %v", result.Error())
	}
}

func TestFromFieldsHubIDFormat(t *testing.T) {
	tests := []struct {
		hubID   string
		invalid bool
	}{
		{"reverse-text", false},
		{"simple", false},
		{"skill2", false},
		{"UPPERCASE", true},
		{"has_underscore", true},
		{"has space", true},
		{"-starts-with-hyphen", true},
		{"ends-with-hyphen-", true},
		{"has--double-hyphen", true},
		{"../escape", true},
	}

	for _, tt := range tests {
		t.Run(tt.hubID, func(t *testing.T) {
			fields := validFields()
			fields[FieldHubID] = tt.hubID

			_, result := FromFields(fields)
			if tt.invalid && !result.HasErrors() {
				t.Errorf("expected error for hubId %q", tt.hubID)
			}
			if !tt.invalid && result.HasErrors() {
				t.Errorf("unexpected error for hubId %q: %v", tt.hubID, result.Error())
			}
		})
	}
}

func TestFromFieldsVersionFormat(t *testing.T) {
	fields := validFields()
	fields[FieldVersion] = "1.0"

	_, result := FromFields(fields)
	if len(result.Errors) != 1 || result.Errors[0].Code != skerr.CodeFieldInvalid {
		t.Fatalf("expected a single format error, got: %v", result.Error())
	}
	if result.Errors[0].Details["field"] != FieldVersion {
		t.Errorf("error names field %v, want %q", result.Errors[0].Details["field"], FieldVersion)
	}
	if !strings.Contains(result.Error(), "semver") {
		t.Errorf("expected semver hint, got: %v", result.Error())
	}
}

func TestFromFieldsSchemaLiteral(t *testing.T) {
	fields := validFields()
	fields[FieldSchema] = "skill-2.0.0"

	_, result := FromFields(fields)
	if len(result.Errors) != 1 || result.Errors[0].Details["field"] != FieldSchema {
		t.Fatalf("expected a single schema error, got: %v", result.Error())
	}
	if !strings.Contains(result.Error(), SchemaVersion) {
		t.Errorf("expected the schema literal in the message, got: %v", result.Error())
	}
}

func TestFromFieldsMalformedParams(t *testing.T) {
	tests := []struct {
		name   string
		params string
	}{
		{"not json", "not json at all"},
		{"array", `["text"]`},
		{"scalar value", `{"text": "string"}`},
		{"unknown param key", `{"text": {"description": "d", "type": "string", "default": 1}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := validFields()
			fields[FieldEntrypointParams] = tt.params

			rec, result := FromFields(fields)
			if rec != nil {
				t.Error("expected nil record")
			}
			if len(result.Errors) != 1 || result.Errors[0].Code != skerr.CodeParamsInvalid {
				t.Fatalf("expected a single entrypoint_params error, got: %v", result.Error())
			}
		})
	}
}

func TestFromFieldsErrorCodes(t *testing.T) {
	tests := []struct {
		name  string
		field string
		value string
		code  string
	}{
		{"empty field", FieldDescription, "", skerr.CodeFieldMissing},
		{"bad hubId", FieldHubID, "Not A HubId", skerr.CodeFieldInvalid},
		{"bad version", FieldVersion, "one", skerr.CodeFieldInvalid},
		{"bad schema", FieldSchema, "skill-9", skerr.CodeFieldInvalid},
		{"bad params", FieldEntrypointParams, "{broken", skerr.CodeParamsInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := validFields()
			fields[tt.field] = tt.value

			_, result := FromFields(fields)
			if len(result.Errors) != 1 {
				t.Fatalf("expected one error, got: %v", result.Error())
			}
			if got := result.Errors[0].Code; got != tt.code {
				t.Errorf("code = %q, want %q", got, tt.code)
			}
			if !skerr.HasCode(result.Errors[0], tt.code) {
				t.Error("validation errors must satisfy HasCode")
			}
		})
	}
}

func TestValidationResultMessages(t *testing.T) {
	fields := validFields()
	fields[FieldName] = ""
	fields[FieldVersion] = ""

	_, result := FromFields(fields)
	msgs := result.Messages()
	if len(msgs) != 2 {
		t.Fatalf("expected two messages, got %d: %v", len(msgs), msgs)
	}
	if !strings.Contains(msgs[0], FieldName) {
		t.Errorf("first message should name %q: %s", FieldName, msgs[0])
	}
}

package errors

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorFormatting(t *testing.T) {
	err := New(CodeSkillNotFound, "skill not found: reverse-text")
	if got := err.Error(); got != "[FS_002] skill not found: reverse-text" {
		t.Errorf("Error() = %q", got)
	}

	wrapped := Wrap(CodeSkillReadError, "failed to read skill manifest", errors.New("boom"))
	if !strings.Contains(wrapped.Error(), "boom") {
		t.Errorf("wrapped Error() = %q", wrapped.Error())
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("disk on fire")
	err := SkillWriteError("/tmp/x", cause)

	if !errors.Is(err, cause) {
		t.Error("errors.Is should reach the cause")
	}
}

func TestHasCodeThroughWrapping(t *testing.T) {
	err := fmt.Errorf("outer: %w", SkillExists("reverse-text", "/tmp/reverse-text"))

	if !HasCode(err, CodeSkillExists) {
		t.Error("HasCode should unwrap to find the coded error")
	}
	if HasCode(err, CodeSkillNotFound) {
		t.Error("HasCode must not match a different code")
	}
	if Code(err) != CodeSkillExists {
		t.Errorf("Code = %q", Code(err))
	}
}

func TestHasCodePlainError(t *testing.T) {
	if HasCode(errors.New("plain"), CodeSkillExists) {
		t.Error("plain errors carry no code")
	}
	if Code(nil) != "" {
		t.Error("nil has no code")
	}
}

func TestDetails(t *testing.T) {
	err := FieldMissing("name")

	if err.Details["field"] != "name" {
		t.Errorf("details = %v", err.Details)
	}

	err.WithDetail("extra", 7)
	if err.Details["extra"] != 7 {
		t.Errorf("details = %v", err.Details)
	}
}

func TestMarshalJSONIncludesCause(t *testing.T) {
	err := SkillNotWritable("/tmp/x", errors.New("permission denied"))

	data, merr := json.Marshal(err)
	if merr != nil {
		t.Fatalf("marshal: %v", merr)
	}

	var decoded map[string]any
	if uerr := json.Unmarshal(data, &decoded); uerr != nil {
		t.Fatal(uerr)
	}
	if decoded["code"] != CodeSkillNotWritable {
		t.Errorf("code = %v", decoded["code"])
	}
	if decoded["cause"] != "permission denied" {
		t.Errorf("cause = %v", decoded["cause"])
	}
}

func TestConstructorCodes(t *testing.T) {
	tests := []struct {
		err  *Error
		code string
	}{
		{FieldMissing("name"), CodeFieldMissing},
		{FieldInvalid("version", "must be semver"), CodeFieldInvalid},
		{ParamsInvalid(errors.New("bad json")), CodeParamsInvalid},
		{SkillExists("x", "/x"), CodeSkillExists},
		{SkillNotFound("x"), CodeSkillNotFound},
		{SkillNotWritable("/x", errors.New("denied")), CodeSkillNotWritable},
		{SkillReadError("/x", errors.New("eof")), CodeSkillReadError},
		{SkillWriteError("/x", errors.New("full")), CodeSkillWriteError},
		{ConfigInvalidValue("log_level", "loud", "bad"), CodeConfigInvalidValue},
		{ConfigUnknownKey("nope"), CodeConfigUnknownKey},
		{ConfigWriteError("/x", errors.New("denied")), CodeConfigWriteError},
	}

	for _, tt := range tests {
		if tt.err.Code != tt.code {
			t.Errorf("constructor for %s produced code %s", tt.code, tt.err.Code)
		}
	}
}

// Package errors provides structured error types for skillsmith.
package errors

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Error codes for skillsmith operations.
const (
	// Validation errors
	CodeFieldMissing  = "VAL_001" // Required field is empty
	CodeFieldInvalid  = "VAL_002" // Field value fails a format rule
	CodeParamsInvalid = "VAL_003" // entrypoint_params is not a valid JSON object

	// Filesystem errors
	CodeSkillExists      = "FS_001" // Skill folder exists and overwrite is disallowed
	CodeSkillNotFound    = "FS_002" // Skill folder or plugin.json missing
	CodeSkillNotWritable = "FS_003" // Skill folder not writable
	CodeSkillReadError   = "FS_004" // plugin.json unreadable or malformed
	CodeSkillWriteError  = "FS_005" // Write to skill folder failed

	// Config errors
	CodeConfigInvalidValue = "CFG_001" // Invalid config value
	CodeConfigUnknownKey   = "CFG_002" // Unknown config key
	CodeConfigWriteError   = "CFG_003" // Config persistence failed
)

// Error is the structured error type for skillsmith operations.
type Error struct {
	Code    string         `json:"code"`              // Error code (e.g., "FS_001")
	Message string         `json:"message"`           // Human-readable message
	Details map[string]any `json:"details,omitempty"` // Context (hub_id, path, field, etc.)
	Cause   error          `json:"-"`                 // Wrapped error (not serialized)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Cause
}

// WithDetail adds a detail to the error.
func (e *Error) WithDetail(key string, value any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// MarshalJSON implements json.Marshaler with cause error message.
func (e *Error) MarshalJSON() ([]byte, error) {
	type alias Error
	aux := struct {
		*alias
		CauseMsg string `json:"cause,omitempty"`
	}{
		alias: (*alias)(e),
	}
	if e.Cause != nil {
		aux.CauseMsg = e.Cause.Error()
	}
	return json.Marshal(aux)
}

// New creates a new Error.
func New(code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Newf creates a new Error with formatted message.
func Newf(code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an error with an Error.
func Wrap(code, message string, err error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   err,
	}
}

// --- Validation Errors ---

// FieldMissing creates an error for an empty required field.
func FieldMissing(field string) *Error {
	return Newf(CodeFieldMissing, "the field %q cannot be empty", field).
		WithDetail("field", field)
}

// FieldInvalid creates an error for a field that fails a format rule.
func FieldInvalid(field, reason string) *Error {
	return Newf(CodeFieldInvalid, "the field %q %s", field, reason).
		WithDetail("field", field).
		WithDetail("reason", reason)
}

// ParamsInvalid creates an error for malformed entrypoint_params JSON.
func ParamsInvalid(err error) *Error {
	return Wrap(CodeParamsInvalid, "entrypoint_params must be a JSON object of {description, type}", err).
		WithDetail("field", "entrypoint_params")
}

// --- Filesystem Errors ---

// SkillExists creates an error for a skill folder that already exists.
func SkillExists(hubID, path string) *Error {
	return Newf(CodeSkillExists, "skill %q already exists and overwrite is disabled", hubID).
		WithDetail("hub_id", hubID).
		WithDetail("path", path)
}

// SkillNotFound creates an error for a missing skill folder.
func SkillNotFound(hubID string) *Error {
	return Newf(CodeSkillNotFound, "skill not found: %s", hubID).
		WithDetail("hub_id", hubID)
}

// SkillNotWritable creates an error for an unwritable skill folder.
func SkillNotWritable(path string, err error) *Error {
	return Wrap(CodeSkillNotWritable, "skill folder is not writable", err).
		WithDetail("path", path)
}

// SkillReadError creates an error for an unreadable skill manifest.
func SkillReadError(path string, err error) *Error {
	return Wrap(CodeSkillReadError, "failed to read skill manifest", err).
		WithDetail("path", path)
}

// SkillWriteError creates an error for a failed skill write.
func SkillWriteError(path string, err error) *Error {
	return Wrap(CodeSkillWriteError, "failed to write skill files", err).
		WithDetail("path", path)
}

// --- Config Errors ---

// ConfigInvalidValue creates an error for an invalid config value.
func ConfigInvalidValue(key string, value any, reason string) *Error {
	return Newf(CodeConfigInvalidValue, "invalid config value for %s: %s", key, reason).
		WithDetail("key", key).
		WithDetail("value", value).
		WithDetail("reason", reason)
}

// ConfigUnknownKey creates an error for an unknown config key.
func ConfigUnknownKey(key string) *Error {
	return Newf(CodeConfigUnknownKey, "unknown config key: %s", key).
		WithDetail("key", key)
}

// ConfigWriteError creates an error for a failed config save.
func ConfigWriteError(path string, err error) *Error {
	return Wrap(CodeConfigWriteError, "failed to save configuration", err).
		WithDetail("path", path)
}

// HasCode checks if an error is an Error with the given code.
// It handles wrapped errors by unwrapping to find an Error.
func HasCode(err error, code string) bool {
	var serr *Error
	if errors.As(err, &serr) {
		return serr.Code == code
	}
	return false
}

// Code returns the error code if err is an Error, empty string otherwise.
// It handles wrapped errors by unwrapping to find an Error.
func Code(err error) string {
	var serr *Error
	if errors.As(err, &serr) {
		return serr.Code
	}
	return ""
}

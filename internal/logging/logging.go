// Package logging provides the editor's two append-only audit logs: a
// standard one-line-per-event log and a verbose structured log carrying
// action, skill data, duration and error detail.
package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	skerr "github.com/anything-stack/skillsmith/internal/errors"
)

// Log filenames, kept from the original editor so existing logs keep
// accumulating in place.
const (
	DirName          = "AnythingCustomSkillLogs"
	StandardFileName = "custom_skill_log_standard.txt"
	VerboseFileName  = "custom_skill_log_verbose.txt"
)

// Audit writes the two audit logs. The standard log gets plain timestamped
// lines; the verbose log gets slog JSON records.
type Audit struct {
	std     io.Writer
	verbose *slog.Logger
	closers []io.Closer
	now     func() time.Time
}

// DefaultDir returns the log directory, ~/Documents/AnythingCustomSkillLogs.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, "Documents", DirName), nil
}

// Open opens the audit logs in dir (created if needed) at the given level.
// An empty dir means the default location.
func Open(dir, level string) (*Audit, error) {
	if dir == "" {
		var err error
		if dir, err = DefaultDir(); err != nil {
			return nil, err
		}
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	std, err := os.OpenFile(filepath.Join(dir, StandardFileName), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("open standard log: %w", err)
	}

	verbose, err := os.OpenFile(filepath.Join(dir, VerboseFileName), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		std.Close()
		return nil, fmt.Errorf("open verbose log: %w", err)
	}

	a := New(std, verbose, ParseLevel(level))
	a.closers = append(a.closers, std, verbose)
	return a, nil
}

// New creates an Audit over arbitrary writers. Used directly in tests.
func New(std, verbose io.Writer, level slog.Level) *Audit {
	return &Audit{
		std: std,
		verbose: slog.New(slog.NewJSONHandler(verbose, &slog.HandlerOptions{
			Level: level,
		})),
		now: time.Now,
	}
}

// NewForTest creates a silent audit logger for tests.
func NewForTest() *Audit {
	return New(io.Discard, io.Discard, slog.LevelError)
}

// Close closes any underlying log files.
func (a *Audit) Close() error {
	var err error
	for _, c := range a.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// Line appends one timestamped line to the standard log.
func (a *Audit) Line(format string, args ...any) {
	fmt.Fprintf(a.std, "[%s] %s\n", a.now().Format("2006-01-02 15:04:05"), fmt.Sprintf(format, args...))
}

// Event starts a timed operation. The returned func completes it, writing
// one standard line and one verbose record with the measured duration.
// Extra slog key/value args carry the skill data snapshot.
func (a *Audit) Event(action, hubID string, args ...any) func(err error) {
	start := a.now()

	return func(err error) {
		duration := a.now().Sub(start)

		attrs := []any{
			"action", action,
			"hub_id", hubID,
			"duration_ms", duration.Milliseconds(),
		}
		attrs = append(attrs, args...)

		if err == nil {
			a.Line("%s succeeded for %q (%s)", action, hubID, duration.Round(time.Millisecond))
			a.verbose.Debug(action, attrs...)
			return
		}

		attrs = append(attrs, "error", err.Error())
		var serr *skerr.Error
		if errors.As(err, &serr) {
			attrs = append(attrs, "error_code", serr.Code)
			if len(serr.Details) > 0 {
				attrs = append(attrs, "error_details", serr.Details)
			}
		}

		a.Line("%s failed for %q: %v", action, hubID, err)
		a.verbose.Error(action, attrs...)
	}
}

// ParseLevel converts a config log_level string to a slog.Level.
func ParseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Package config loads and persists the editor configuration. The primary
// file is JSON; every save also mirrors the settings into an INI file next
// to it, which is what later revisions of the editor shipped with.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/ini.v1"

	skerr "github.com/anything-stack/skillsmith/internal/errors"
	"github.com/anything-stack/skillsmith/internal/skill"
)

// FileName is the primary config filename.
const FileName = "config.json"

// MirrorName is the INI mirror filename, written beside the JSON file on
// every save.
const MirrorName = "config.ini"

// iniSection is the section holding the editor settings in the mirror.
const iniSection = "skillsmith"

// Valid log_level values.
var LogLevels = []string{"debug", "info", "warn", "error"}

// Config holds the editor settings. It is passed explicitly into store,
// logging and form construction; nothing reads it from process-wide state.
type Config struct {
	// LogLevel controls audit log verbosity (debug enables the verbose log)
	LogLevel string `mapstructure:"log_level" json:"log_level"`

	// DefaultSkillOutputPath is the skills root folder; ~ is expanded
	DefaultSkillOutputPath string `mapstructure:"default_skill_output_path" json:"default_skill_output_path"`

	// LockFieldsByDefault keeps default-valued form fields read-only
	LockFieldsByDefault bool `mapstructure:"lock_fields_by_default" json:"lock_fields_by_default"`

	// ShowFieldTooltips toggles per-field help text in the forms
	ShowFieldTooltips bool `mapstructure:"show_field_tooltips" json:"show_field_tooltips"`

	// AllowSkillOverwrite lets create replace an existing skill folder
	AllowSkillOverwrite bool `mapstructure:"allow_skill_overwrite" json:"allow_skill_overwrite"`

	// FieldDefaults maps form-field name to its default value
	FieldDefaults map[string]string `mapstructure:"field_defaults" json:"field_defaults"`
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		LogLevel:               "info",
		DefaultSkillOutputPath: "~/.anythingllm/plugins/agent-skills",
		LockFieldsByDefault:    true,
		ShowFieldTooltips:      true,
		AllowSkillOverwrite:    false,
		FieldDefaults: map[string]string{
			skill.FieldEntrypointFile:   skill.DefaultEntrypointFile,
			skill.FieldVersion:          "1.0.0",
			skill.FieldSchema:           skill.SchemaVersion,
			skill.FieldEntrypointParams: "{}",
		},
	}
}

// Dir returns the directory the config files live in.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".config", "skillsmith"), nil
}

// DefaultPath returns the default JSON config path.
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, FileName), nil
}

// Load reads configuration from path, merging with defaults. A missing
// file yields the defaults. An empty path means the default location.
func Load(path string) (*Config, error) {
	if path == "" {
		var err error
		if path, err = DefaultPath(); err != nil {
			return nil, err
		}
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")

	def := Default()
	v.SetDefault("log_level", def.LogLevel)
	v.SetDefault("default_skill_output_path", def.DefaultSkillOutputPath)
	v.SetDefault("lock_fields_by_default", def.LockFieldsByDefault)
	v.SetDefault("show_field_tooltips", def.ShowFieldTooltips)
	v.SetDefault("allow_skill_overwrite", def.AllowSkillOverwrite)
	v.SetDefault("field_defaults", def.FieldDefaults)

	if err := v.ReadInConfig(); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	valid := false
	for _, l := range LogLevels {
		if c.LogLevel == l {
			valid = true
			break
		}
	}
	if !valid {
		return skerr.ConfigInvalidValue("log_level", c.LogLevel,
			fmt.Sprintf("must be one of %s", strings.Join(LogLevels, ", ")))
	}
	if c.DefaultSkillOutputPath == "" {
		return skerr.ConfigInvalidValue("default_skill_output_path", "", "cannot be empty")
	}
	return nil
}

// Save writes the JSON file and its INI mirror. The directory is created
// if needed. An empty path means the default location.
func (c *Config) Save(path string) error {
	if err := c.Validate(); err != nil {
		return err
	}

	if path == "" {
		var err error
		if path, err = DefaultPath(); err != nil {
			return err
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return skerr.ConfigWriteError(path, err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return skerr.ConfigWriteError(path, err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return skerr.ConfigWriteError(path, err)
	}

	mirror := filepath.Join(filepath.Dir(path), MirrorName)
	if err := c.writeMirror(mirror); err != nil {
		return err
	}

	return nil
}

// writeMirror writes the INI rendition of the settings.
func (c *Config) writeMirror(path string) error {
	f := ini.Empty()

	sec, err := f.NewSection(iniSection)
	if err != nil {
		return skerr.ConfigWriteError(path, err)
	}
	sec.Key("log_level").SetValue(c.LogLevel)
	sec.Key("default_skill_output_path").SetValue(c.DefaultSkillOutputPath)
	sec.Key("lock_fields_by_default").SetValue(strconv.FormatBool(c.LockFieldsByDefault))
	sec.Key("show_field_tooltips").SetValue(strconv.FormatBool(c.ShowFieldTooltips))
	sec.Key("allow_skill_overwrite").SetValue(strconv.FormatBool(c.AllowSkillOverwrite))

	if len(c.FieldDefaults) > 0 {
		defs, err := f.NewSection("field_defaults")
		if err != nil {
			return skerr.ConfigWriteError(path, err)
		}
		for _, field := range skill.RequiredFields {
			if val, ok := c.FieldDefaults[field.Key]; ok {
				defs.Key(field.Key).SetValue(val)
			}
		}
	}

	if err := f.SaveTo(path); err != nil {
		return skerr.ConfigWriteError(path, err)
	}
	return nil
}

// ValidateFieldDefaults checks a full set of per-field default values the
// way the defaults form enforces them: no field may be left empty, and the
// entrypoint_params default must parse. Returns one coded error per
// offending field.
func ValidateFieldDefaults(defaults map[string]string) []*skerr.Error {
	var errs []*skerr.Error

	for _, f := range skill.RequiredFields {
		if strings.TrimSpace(defaults[f.Key]) == "" {
			errs = append(errs, skerr.ConfigInvalidValue("field_defaults."+f.Key, defaults[f.Key], "cannot be empty"))
		}
	}

	if raw := strings.TrimSpace(defaults[skill.FieldEntrypointParams]); raw != "" {
		if _, err := skill.ParseParams(raw); err != nil {
			errs = append(errs, skerr.ConfigInvalidValue("field_defaults."+skill.FieldEntrypointParams, raw,
				"is not a valid JSON parameter object"))
		}
	}

	return errs
}

// Set applies a string key/value pair, as used by `skillsmith config set`.
// Keys of the form field_defaults.<field> update a single field default.
func (c *Config) Set(key, value string) error {
	if rest, ok := strings.CutPrefix(key, "field_defaults."); ok {
		if _, known := skill.FieldByKey(rest); !known {
			return skerr.ConfigUnknownKey(key)
		}
		if c.FieldDefaults == nil {
			c.FieldDefaults = make(map[string]string)
		}
		c.FieldDefaults[rest] = value
		return nil
	}

	switch key {
	case "log_level":
		c.LogLevel = value
		return c.Validate()
	case "default_skill_output_path":
		c.DefaultSkillOutputPath = value
		return c.Validate()
	case "lock_fields_by_default", "show_field_tooltips", "allow_skill_overwrite":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return skerr.ConfigInvalidValue(key, value, "must be true or false")
		}
		switch key {
		case "lock_fields_by_default":
			c.LockFieldsByDefault = b
		case "show_field_tooltips":
			c.ShowFieldTooltips = b
		case "allow_skill_overwrite":
			c.AllowSkillOverwrite = b
		}
		return nil
	default:
		return skerr.ConfigUnknownKey(key)
	}
}

// Items returns the settings as ordered key/value pairs for display.
func (c *Config) Items() [][2]string {
	items := [][2]string{
		{"log_level", c.LogLevel},
		{"default_skill_output_path", c.DefaultSkillOutputPath},
		{"lock_fields_by_default", strconv.FormatBool(c.LockFieldsByDefault)},
		{"show_field_tooltips", strconv.FormatBool(c.ShowFieldTooltips)},
		{"allow_skill_overwrite", strconv.FormatBool(c.AllowSkillOverwrite)},
	}
	for _, field := range skill.RequiredFields {
		if val, ok := c.FieldDefaults[field.Key]; ok {
			items = append(items, [2]string{"field_defaults." + field.Key, val})
		}
	}
	return items
}

// SkillsRoot returns the skills root with ~ expanded.
func (c *Config) SkillsRoot() string {
	return ExpandPath(c.DefaultSkillOutputPath)
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(strings.TrimPrefix(path, "~"), "/"))
	}
	return path
}

package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"

	"github.com/anything-stack/skillsmith/internal/skill"
	"github.com/anything-stack/skillsmith/internal/store"
)

// testEnv points HOME, the config flag and the skills-dir flag at temp
// locations and restores everything afterwards. It returns the skills root.
func testEnv(t *testing.T) string {
	t.Helper()

	home := t.TempDir()
	oldHome := os.Getenv("HOME")
	os.Setenv("HOME", home)

	root := filepath.Join(t.TempDir(), "skills")

	oldCfgPath := cfgPath
	oldSkillsDir := skillsDir
	oldVerbose := verbose
	cfgPath = filepath.Join(t.TempDir(), "config.json")
	skillsDir = root
	verbose = false

	t.Cleanup(func() {
		os.Setenv("HOME", oldHome)
		cfgPath = oldCfgPath
		skillsDir = oldSkillsDir
		verbose = oldVerbose
	})

	return root
}

// setFieldFlags sets skill field flags on a command, marking them changed
// the way real CLI parsing would, and resets them after the test.
func setFieldFlags(t *testing.T, cmd *cobra.Command, fields map[string]string) {
	t.Helper()

	for key, value := range fields {
		if err := cmd.Flags().Set(fieldFlagNames[key], value); err != nil {
			t.Fatalf("setting flag %s: %v", fieldFlagNames[key], err)
		}
	}

	t.Cleanup(func() {
		for key := range fields {
			f := cmd.Flags().Lookup(fieldFlagNames[key])
			_ = f.Value.Set("")
			f.Changed = false
		}
	})
}

// seedSkill writes a complete skill folder directly through the store.
func seedSkill(t *testing.T, root, hubID string) {
	t.Helper()

	rec := &skill.Record{
		Name:           "Reverse Text",
		HubID:          hubID,
		Description:    "Reverses the provided text.",
		EntrypointFile: "handler.js",
		Params: map[string]skill.Param{
			"text": {Description: "Text to reverse", Type: "string"},
		},
		OutputDescription: "The reversed string.",
		Version:           "1.0.0",
		Schema:            skill.SchemaVersion,
		Active:            true,
	}

	if err := store.New(root, false).Create(rec, ""); err != nil {
		t.Fatalf("seeding skill %s: %v", hubID, err)
	}
}

// completeFieldFlags returns a full set of valid field flag values.
func completeFieldFlags(hubID string) map[string]string {
	return map[string]string{
		skill.FieldName:              "Reverse Text",
		skill.FieldHubID:             hubID,
		skill.FieldDescription:       "Reverses the provided text.",
		skill.FieldEntrypointFile:    "handler.js",
		skill.FieldEntrypointParams:  `{"text": {"description": "Text to reverse", "type": "string"}}`,
		skill.FieldOutputDescription: "The reversed string.",
		skill.FieldVersion:           "1.0.0",
		skill.FieldSchema:            skill.SchemaVersion,
	}
}

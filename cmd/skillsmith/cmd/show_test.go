package cmd

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/anything-stack/skillsmith/internal/skill"
)

func TestShowManifest(t *testing.T) {
	root := testEnv(t)
	seedSkill(t, root, "reverse-text")

	var out bytes.Buffer
	showCmd.SetOut(&out)

	if err := runShow(showCmd, []string{"reverse-text"}); err != nil {
		t.Fatalf("runShow: %v", err)
	}

	var m skill.Manifest
	if err := json.Unmarshal(out.Bytes(), &m); err != nil {
		t.Fatalf("output is not a manifest: %v\n%s", err, out.String())
	}
	if m.HubID != "reverse-text" || m.Schema != skill.SchemaVersion {
		t.Errorf("manifest = %+v", m)
	}
}

func TestShowFields(t *testing.T) {
	root := testEnv(t)
	seedSkill(t, root, "reverse-text")

	oldFields := showFields
	defer func() { showFields = oldFields }()
	showFields = true

	var out bytes.Buffer
	showCmd.SetOut(&out)

	if err := runShow(showCmd, []string{"reverse-text"}); err != nil {
		t.Fatalf("runShow: %v", err)
	}

	text := out.String()
	for _, f := range skill.RequiredFields {
		if !strings.Contains(text, f.Key) {
			t.Errorf("fields view missing %s:\n%s", f.Key, text)
		}
	}
}

func TestShowMissingSkill(t *testing.T) {
	testEnv(t)

	err := runShow(showCmd, []string{"no-such-skill"})
	if err == nil {
		t.Fatal("expected error showing a missing skill")
	}
	if !strings.Contains(err.Error(), "not found") {
		t.Errorf("error = %v", err)
	}
}

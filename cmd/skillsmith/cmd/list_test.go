package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/anything-stack/skillsmith/internal/store"
)

func TestListText(t *testing.T) {
	root := testEnv(t)
	seedSkill(t, root, "reverse-text")
	seedSkill(t, root, "another-skill")

	var out bytes.Buffer
	listCmd.SetOut(&out)

	if err := runList(listCmd, nil); err != nil {
		t.Fatalf("runList: %v", err)
	}

	text := out.String()
	if !strings.Contains(text, "HUBID") {
		t.Errorf("missing header: %q", text)
	}
	if !strings.Contains(text, "reverse-text") || !strings.Contains(text, "another-skill") {
		t.Errorf("missing skills: %q", text)
	}
	// Sorted order.
	if strings.Index(text, "another-skill") > strings.Index(text, "reverse-text") {
		t.Error("entries must be sorted")
	}
}

func TestListJSON(t *testing.T) {
	root := testEnv(t)
	seedSkill(t, root, "reverse-text")

	oldJSON := listJSON
	defer func() { listJSON = oldJSON }()
	listJSON = true

	var out bytes.Buffer
	listCmd.SetOut(&out)

	if err := runList(listCmd, nil); err != nil {
		t.Fatalf("runList: %v", err)
	}

	var entries []store.Entry
	if err := json.Unmarshal(out.Bytes(), &entries); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out.String())
	}
	if len(entries) != 1 || entries[0].HubID != "reverse-text" {
		t.Errorf("entries = %+v", entries)
	}
}

func TestListJSONEmpty(t *testing.T) {
	testEnv(t)

	oldJSON := listJSON
	defer func() { listJSON = oldJSON }()
	listJSON = true

	var out bytes.Buffer
	listCmd.SetOut(&out)

	if err := runList(listCmd, nil); err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(out.String()) != "[]" {
		t.Errorf("empty listing should be [], got %q", out.String())
	}
}

func TestListSkipsFolderMissingHandler(t *testing.T) {
	root := testEnv(t)
	seedSkill(t, root, "reverse-text")
	seedSkill(t, root, "broken-skill")
	if err := os.Remove(filepath.Join(root, "broken-skill", "handler.js")); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	listCmd.SetOut(&out)

	if err := runList(listCmd, nil); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(out.String(), "broken-skill") {
		t.Errorf("folder without handler must be skipped: %q", out.String())
	}
	if !strings.Contains(out.String(), "reverse-text") {
		t.Errorf("well-formed skill missing: %q", out.String())
	}
}

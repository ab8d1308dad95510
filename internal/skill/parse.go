package skill

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LoadFromDir loads a skill manifest from a skill folder.
func LoadFromDir(dir string) (*Manifest, error) {
	path := filepath.Join(dir, ManifestName)
	return ParseFile(path)
}

// ParseFile parses a skill manifest from a file path.
func ParseFile(path string) (*Manifest, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open skill manifest: %w", err)
	}
	defer file.Close()

	return Parse(file)
}

// Parse parses a skill manifest from a reader. Unknown top-level keys are
// tolerated; AnythingLLM adds bookkeeping keys like "imported" on install.
func Parse(reader io.Reader) (*Manifest, error) {
	var m Manifest
	if err := json.NewDecoder(reader).Decode(&m); err != nil {
		return nil, fmt.Errorf("decode skill manifest: %w", err)
	}

	return &m, nil
}

// ParseString parses a skill manifest from a string.
func ParseString(content string) (*Manifest, error) {
	return Parse(strings.NewReader(content))
}

// Encode pretty-prints the manifest the way AnythingLLM ships its bundled
// skills: two-space indent, trailing newline.
func (m *Manifest) Encode() ([]byte, error) {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode skill manifest: %w", err)
	}
	return append(data, '\n'), nil
}

// Complete reports whether the manifest carries the five scalar metadata
// keys discovery requires. Folders failing this are silently skipped when
// listing.
func (m *Manifest) Complete() bool {
	return m.Name != "" &&
		m.HubID != "" &&
		m.Description != "" &&
		m.Schema != "" &&
		m.Version != ""
}

package store

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/anything-stack/skillsmith/internal/skill"
)

// Entry describes one discovered skill for listing.
type Entry struct {
	HubID   string `json:"hubId"`
	Name    string `json:"name"`
	Version string `json:"version"`
	Active  bool   `json:"active"`
	Path    string `json:"path"`
}

// List enumerates immediate subdirectories of the root that hold a
// parseable plugin.json with the required metadata keys and whose declared
// entrypoint file exists. Invalid or incomplete folders are silently
// skipped. Entries come back sorted case-insensitively by folder name.
func (s *Store) List() ([]Entry, error) {
	files, err := os.ReadDir(s.root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var entries []Entry
	for _, f := range files {
		if !f.IsDir() {
			continue
		}

		dir := filepath.Join(s.root, f.Name())
		m, err := skill.LoadFromDir(dir)
		if err != nil || !m.Complete() {
			continue
		}
		if m.Entrypoint.File == "" {
			continue
		}
		if _, err := os.Stat(filepath.Join(dir, m.Entrypoint.File)); err != nil {
			continue
		}

		entries = append(entries, Entry{
			HubID:   f.Name(),
			Name:    m.Name,
			Version: m.Version,
			Active:  m.Active,
			Path:    dir,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		a, b := strings.ToLower(entries[i].HubID), strings.ToLower(entries[j].HubID)
		if a != b {
			return a < b
		}
		return entries[i].HubID < entries[j].HubID
	})

	return entries, nil
}

// Names returns just the discovered folder names, sorted case-insensitively.
func (s *Store) Names() ([]string, error) {
	entries, err := s.List()
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.HubID)
	}
	return names, nil
}

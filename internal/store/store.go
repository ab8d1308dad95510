// Package store is the persistence gateway for skill folders. All
// operations are synchronous single-user filesystem mutations under one
// skills root; there is no locking and no rollback.
package store

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	skerr "github.com/anything-stack/skillsmith/internal/errors"
	"github.com/anything-stack/skillsmith/internal/skill"
)

// Store persists skills under a single root directory. Overwrite policy is
// passed in explicitly rather than read from process-wide state.
type Store struct {
	root           string
	allowOverwrite bool
}

// New creates a store rooted at root.
func New(root string, allowOverwrite bool) *Store {
	return &Store{root: root, allowOverwrite: allowOverwrite}
}

// Root returns the skills root directory.
func (s *Store) Root() string {
	return s.root
}

// Path returns the folder a skill lives in. The folder name is always the
// hubId, which keeps the hubId-matches-folder invariant by construction.
func (s *Store) Path(hubID string) string {
	return filepath.Join(s.root, hubID)
}

// Exists reports whether a skill folder is already present.
func (s *Store) Exists(hubID string) bool {
	_, err := os.Stat(s.Path(hubID))
	return err == nil
}

// Create writes a new skill folder: plugin.json plus the handler script.
// handlerJS overrides the generated boilerplate when non-empty. Fails if
// the folder exists and overwrite is disallowed. A crash mid-write may
// leave a partial folder; the next create with overwrite repairs it.
func (s *Store) Create(rec *skill.Record, handlerJS string) error {
	dir := s.Path(rec.HubID)

	if _, err := os.Stat(dir); err == nil && !s.allowOverwrite {
		return skerr.SkillExists(rec.HubID, dir)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return skerr.SkillWriteError(dir, err)
	}

	if err := s.writeManifest(rec, dir); err != nil {
		return err
	}

	if handlerJS == "" {
		handlerJS = skill.DefaultHandler(rec)
	}
	handlerPath := filepath.Join(dir, rec.EntrypointFile)
	if err := os.WriteFile(handlerPath, []byte(handlerJS), 0644); err != nil {
		return skerr.SkillWriteError(handlerPath, err)
	}

	return nil
}

// Update overwrites plugin.json in place. The handler script is left
// untouched. Fails if the skill folder does not exist or is not writable.
func (s *Store) Update(rec *skill.Record) error {
	dir := s.Path(rec.HubID)

	if _, err := os.Stat(dir); err != nil {
		return skerr.SkillNotFound(rec.HubID)
	}

	return s.writeManifest(rec, dir)
}

// Delete recursively removes a skill folder. Fails if the folder does not
// exist or removal is denied by the filesystem.
func (s *Store) Delete(hubID string) error {
	dir := s.Path(hubID)

	if _, err := os.Stat(dir); err != nil {
		return skerr.SkillNotFound(hubID)
	}

	if err := os.RemoveAll(dir); err != nil {
		return skerr.SkillNotWritable(dir, err)
	}

	return nil
}

// Load reads a skill folder back into a record.
func (s *Store) Load(hubID string) (*skill.Record, error) {
	dir := s.Path(hubID)

	m, err := skill.LoadFromDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, skerr.SkillNotFound(hubID)
		}
		return nil, skerr.SkillReadError(filepath.Join(dir, skill.ManifestName), err)
	}

	return skill.RecordFromManifest(m), nil
}

func (s *Store) writeManifest(rec *skill.Record, dir string) error {
	data, err := rec.Manifest().Encode()
	if err != nil {
		return skerr.SkillWriteError(dir, err)
	}

	manifestPath := filepath.Join(dir, skill.ManifestName)
	if err := os.WriteFile(manifestPath, data, 0644); err != nil {
		if os.IsPermission(err) {
			return skerr.SkillNotWritable(manifestPath, err)
		}
		return skerr.SkillWriteError(manifestPath, err)
	}

	return nil
}

// Package persist saves and restores interactive stepping sessions as
// YAML documents, so a REPL invocation can be interrupted and resumed
// without re-deriving which path through the tree the user had already
// explored (spec.md §6 "Session").
package persist

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// Session is the on-disk snapshot of one stepping session: the program
// source, the original expression text the user started from, and the
// ordered list of paths taken to reach the current state (replaying them
// against the original expression reconstructs it exactly).
type Session struct {
	ID         string    `yaml:"id"`
	CreatedAt  time.Time `yaml:"created_at"`
	UpdatedAt  time.Time `yaml:"updated_at"`
	SourcePath string    `yaml:"source_path"`
	ExprText   string    `yaml:"expr_text"`
	Steps      []string  `yaml:"steps"` // rendered Path strings, applied in order
}

// NewSession starts a fresh session over the given source file and
// starting expression text.
func NewSession(sourcePath, exprText string) *Session {
	now := time.Now()
	return &Session{
		ID:         uuid.NewString(),
		CreatedAt:  now,
		UpdatedAt:  now,
		SourcePath: sourcePath,
		ExprText:   exprText,
	}
}

// RecordStep appends path to the session's step history and bumps
// UpdatedAt.
func (s *Session) RecordStep(path string) {
	s.Steps = append(s.Steps, path)
	s.UpdatedAt = time.Now()
}

// SaveSession writes s as YAML to dir/<id>.yaml, creating dir if needed.
func SaveSession(dir string, s *Session) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating session dir %s: %w", dir, err)
	}
	data, err := yaml.Marshal(s)
	if err != nil {
		return "", fmt.Errorf("marshaling session: %w", err)
	}
	path := filepath.Join(dir, s.ID+".yaml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing session %s: %w", path, err)
	}
	return path, nil
}

// LoadSession reads a session snapshot back from path.
func LoadSession(path string) (*Session, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading session %s: %w", path, err)
	}
	var s Session
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing session %s: %w", path, err)
	}
	return &s, nil
}

// ListSessions returns the session IDs found under dir, in reverse order of
// file name. Session IDs are random UUIDs, so this order does not follow
// creation time.
func ListSessions(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading session dir %s: %w", dir, err)
	}
	var ids []string
	for i := len(entries) - 1; i >= 0; i-- {
		name := entries[i].Name()
		if filepath.Ext(name) == ".yaml" {
			ids = append(ids, name[:len(name)-len(".yaml")])
		}
	}
	return ids, nil
}

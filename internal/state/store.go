package state

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrCorruptState marks a state file that exists but fails structural
// validation. Callers should direct the user to restore or re-init
// rather than proceed.
var ErrCorruptState = errors.New("corrupt state file")

// Store reads and writes the state document at a fixed path. Writes
// replace the whole file so it is always parseable.
type Store struct {
	path string
}

// NewStore returns a Store for the state file at path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the state file location.
func (s *Store) Path() string { return s.path }

// Load reads the state document. A missing file returns (nil, nil):
// no plan has been initialized yet, which is not an error. A file that
// cannot be parsed or fails validation returns an error wrapping
// ErrCorruptState.
func (s *Store) Load() (*State, error) {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}

	if err := validateState(raw); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorruptState, s.path, err)
	}

	var st State
	if err := json.Unmarshal(raw, &st); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorruptState, s.path, err)
	}
	return &st, nil
}

// Save writes the full state document, replacing any previous version.
// The write goes to a temp file in the same directory and is renamed
// into place so a crash never leaves a half-written state file.
func (s *Store) Save(st *State) error {
	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}
	data = append(data, '\n')

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".state-*.json")
	if err != nil {
		return fmt.Errorf("create temp state file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write state: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close state file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace %s: %w", s.path, err)
	}
	return nil
}

// Exists reports whether a state file is present.
func (s *Store) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// Archive moves the state file into archiveDir under a timestamped
// name. Used by reset only; the sync engine never archives.
func (s *Store) Archive(archiveDir, timestamp string) error {
	dst := filepath.Join(archiveDir, timestamp+"_state.json")
	if err := os.Rename(s.path, dst); err != nil {
		return fmt.Errorf("archive state: %w", err)
	}
	return nil
}

// internal/storage/highscore.go
package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// ErrCorrupt is returned (wrapped) by FileStore.Load when the file held
// something other than a non-negative integer. The file has already been
// reset to "0" when this is returned.
var ErrCorrupt = errors.New("high score file is corrupt")

// HighScoreStore persists the single best score.
type HighScoreStore interface {
	Load() (int, error)
	Save(score int) error
}

// FileStore keeps the high score as a decimal string in one file.
type FileStore struct {
	Path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

// Load returns the stored score. A missing or unreadable value yields 0 and
// the file is rewritten to "0" so the next start is clean.
func (s *FileStore) Load() (int, error) {
	data, err := os.ReadFile(s.Path)
	if errors.Is(err, fs.ErrNotExist) {
		if err := s.Save(0); err != nil {
			return 0, fmt.Errorf("failed to create high score file: %w", err)
		}
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read high score file %s: %w", s.Path, err)
	}

	text := strings.TrimSpace(string(data))
	score, perr := parseScore(text)
	if perr != nil {
		if err := s.Save(0); err != nil {
			return 0, fmt.Errorf("failed to reset high score file: %w", err)
		}
		return 0, fmt.Errorf("%w: %q", ErrCorrupt, text)
	}
	return score, nil
}

// Save replaces the stored value. It writes to a temporary file in the same
// directory and renames it over the old one.
func (s *FileStore) Save(score int) error {
	if score < 0 {
		return fmt.Errorf("negative high score %d", score)
	}
	dir := filepath.Dir(s.Path)
	tmp, err := os.CreateTemp(dir, ".highscore-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file in %s: %w", dir, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(strconv.Itoa(score)); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write high score: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.Path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", s.Path, err)
	}
	return nil
}

// parseScore accepts only plain digits, so "-3" and "+3" are corrupt.
func parseScore(text string) (int, error) {
	if text == "" {
		return 0, ErrCorrupt
	}
	for _, r := range text {
		if r < '0' || r > '9' {
			return 0, ErrCorrupt
		}
	}
	return strconv.Atoi(text)
}

// MemoryStore is an in-process store for tests and for running without a
// writable directory. Like the rest of the game it is only touched from the
// frame loop.
type MemoryStore struct {
	score int
	Saves int
}

func NewMemoryStore(score int) *MemoryStore {
	return &MemoryStore{score: score}
}

func (s *MemoryStore) Load() (int, error) {
	return s.score, nil
}

func (s *MemoryStore) Save(score int) error {
	s.score = score
	s.Saves++
	return nil
}

// Package notestore manages the on-disk note tree and is the only part of
// the system that touches the filesystem. Notes live under
// <root>/<year>/<month>/<week-of-month>/<day>.md; annotation scanning and
// aggregation consume the raw text this package materializes.
package notestore

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"

	"github.com/nost-not/nost/internal/annotation"
)

var (
	numericDir = regexp.MustCompile(`^\d+$`)
	noteFile   = regexp.MustCompile(`.*\d+\.md$`)
)

// Store reads and writes notes under a fixed root directory.
type Store struct {
	root string
}

// New returns a Store rooted at the given directory.
func New(root string) *Store {
	return &Store{root: root}
}

// Root returns the note tree root.
func (s *Store) Root() string {
	return s.root
}

// MonthDir resolves the directory holding the notes of a YYYY-MM period.
func (s *Store) MonthDir(month string) string {
	return filepath.Join(s.root, month[:4], month[5:7])
}

// FindAll walks dir collecting every note file, descending only into
// numeric-named directories and keeping only numeric-named markdown files.
// The result is sorted by path, which orders notes chronologically given
// the year/month/week/day tree layout. A directory that cannot be listed
// aborts the walk.
func (s *Store) FindAll(dir string) ([]string, error) {
	var files []string
	pending := []string{dir}

	for len(pending) > 0 {
		current := pending[len(pending)-1]
		pending = pending[:len(pending)-1]

		entries, err := os.ReadDir(current)
		if err != nil {
			return nil, fmt.Errorf("listing notes in %s: %w", current, err)
		}
		for _, entry := range entries {
			path := filepath.Join(current, entry.Name())
			if entry.IsDir() {
				if numericDir.MatchString(entry.Name()) {
					pending = append(pending, path)
				}
			} else if noteFile.MatchString(entry.Name()) {
				files = append(files, path)
			}
		}
	}

	sort.Strings(files)
	return files, nil
}

// ReadAll materializes every note under dir as a scan source, in path
// order. Any unreadable file aborts the batch; this is the scan pipeline's
// only fatal condition.
func (s *Store) ReadAll(dir string) ([]annotation.Source, error) {
	files, err := s.FindAll(dir)
	if err != nil {
		return nil, err
	}

	sources := make([]annotation.Source, 0, len(files))
	for _, path := range files {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading note %s: %w", path, err)
		}
		sources = append(sources, annotation.Source{ID: path, Content: string(content)})
	}
	return sources, nil
}

// Append adds one line to an existing note file.
func (s *Store) Append(path, line string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening note %s: %w", path, err)
	}
	defer f.Close()

	if _, err := fmt.Fprintln(f, line); err != nil {
		return fmt.Errorf("appending to note %s: %w", path, err)
	}
	return nil
}

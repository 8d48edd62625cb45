package notestore

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/nost-not/nost/internal/annotation"
	"github.com/nost-not/nost/internal/domain"
)

// NotePathFor returns the path of the note for the given day inside the
// year/month/week-of-month tree.
func (s *Store) NotePathFor(t time.Time) string {
	return filepath.Join(
		s.root,
		fmt.Sprintf("%d", t.Year()),
		fmt.Sprintf("%02d", int(t.Month())),
		fmt.Sprintf("%d", weekOfMonth(t)),
		fmt.Sprintf("%02d.md", t.Day()),
	)
}

// Create creates the note for now, along with any missing directories. The
// fresh note gets a CREATE_NOT annotation and a localized date header. When
// the note already exists it is left untouched and its path returned. An
// optional title overrides the default day-number file name.
func (s *Store) Create(title, language string, now time.Time) (string, error) {
	path := s.NotePathFor(now)
	if title != "" {
		path = filepath.Join(filepath.Dir(path), title)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("creating note directory: %w", err)
	}

	if _, err := os.Stat(path); err == nil {
		return path, nil
	}

	if err := os.WriteFile(path, nil, 0o644); err != nil {
		return "", fmt.Errorf("creating note %s: %w", path, err)
	}

	line := annotation.Encode(now, domain.EventCreateNot, uuid.New(), "")
	if err := s.Append(path, line); err != nil {
		return "", err
	}
	if err := s.Append(path, dateHeader(language, now)); err != nil {
		return "", err
	}

	return path, nil
}

// weekOfMonth numbers the weeks of a month starting from 1, with weeks
// running Monday through Sunday.
func weekOfMonth(t time.Time) int {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	firstWeekday := (int(first.Weekday()) + 6) % 7 // Monday = 0
	return (t.Day()-1+firstWeekday)/7 + 1
}

var frenchWeekdays = [...]string{
	"Dimanche", "Lundi", "Mardi", "Mercredi", "Jeudi", "Vendredi", "Samedi",
}

var frenchMonths = [...]string{
	"janvier", "février", "mars", "avril", "mai", "juin",
	"juillet", "août", "septembre", "octobre", "novembre", "décembre",
}

// dateHeader renders the markdown title line of a fresh note.
func dateHeader(language string, t time.Time) string {
	if language == "fr" {
		return fmt.Sprintf("# %s %d %s %d",
			frenchWeekdays[int(t.Weekday())], t.Day(), frenchMonths[int(t.Month())-1], t.Year())
	}
	return fmt.Sprintf("# %s, %s %d%s, %d",
		t.Weekday(), t.Month(), t.Day(), daySuffix(t.Day()), t.Year())
}

func daySuffix(day int) string {
	if day >= 11 && day <= 13 {
		return "th"
	}
	switch day % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}

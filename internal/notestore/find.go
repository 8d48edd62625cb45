package notestore

import (
	"os"
	"sort"

	"github.com/nost-not/nost/internal/annotation"
	"github.com/nost-not/nost/internal/domain"
)

// LastAnnotation is an annotation record together with the note it lives in.
type LastAnnotation struct {
	Record domain.Annotation
	Path   string
}

// LastWorkAnnotation returns the most recent work-session annotation in the
// whole note tree, or nil when there is none. Notes are visited newest
// first so the search usually stops at the first file.
func (s *Store) LastWorkAnnotation() (*LastAnnotation, error) {
	files, err := s.FindAll(s.root)
	if err != nil {
		return nil, err
	}

	scanner := annotation.NewScanner(nil)
	for i := len(files) - 1; i >= 0; i-- {
		content, err := os.ReadFile(files[i])
		if err != nil {
			continue
		}

		records, _ := scanner.Scan([]annotation.Source{{ID: files[i], Content: string(content)}})
		work := annotation.FilterByEvents(records, domain.EventStartWork, domain.EventStopWork)
		if len(work) == 0 {
			continue
		}

		sort.SliceStable(work, func(a, b int) bool {
			return work[a].Timestamp.Before(work[b].Timestamp)
		})
		return &LastAnnotation{Record: work[len(work)-1], Path: files[i]}, nil
	}

	return nil, nil
}

package annotation

import "github.com/nost-not/nost/internal/domain"

// FilterByEvents returns the order-preserving subsequence of records whose
// event kind is in the allowed set.
func FilterByEvents(records []domain.Annotation, kinds ...domain.EventKind) []domain.Annotation {
	allowed := make(map[domain.EventKind]bool, len(kinds))
	for _, k := range kinds {
		allowed[k] = true
	}

	var filtered []domain.Annotation
	for _, r := range records {
		if allowed[r.Event] {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

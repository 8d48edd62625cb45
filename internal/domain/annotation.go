package domain

import (
	"time"

	"github.com/google/uuid"
)

// Annotation is one event record recovered from (or destined for) a note.
// The timestamp keeps the offset it was written with, so a decoded record
// formats back to the identical instant. Workday is an optional YYYY-MM-DD
// label that pins a session to a logical work day when it differs from the
// timestamp's calendar date (overnight sessions). Records are never mutated
// after construction.
type Annotation struct {
	UID       uuid.UUID
	Event     EventKind
	Timestamp time.Time
	Workday   string
}

// Day returns the calendar day the annotation belongs to: the workday tag
// when present, otherwise the timestamp's own calendar date.
func (a Annotation) Day() string {
	if a.Workday != "" {
		return a.Workday
	}
	return a.Timestamp.Format("2006-01-02")
}

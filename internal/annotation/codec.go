// Package annotation implements the textual codec for event records embedded
// in notes, plus the scanner and filter that recover them from raw note text.
//
// The wire format is one comment-shaped line per record:
//
//	[//]: # "not:{date:'<rfc3339>',event:'<CODE>',uid:'<uuid>'[,workday:'<YYYY-MM-DD>']}"
//
// The shape is byte-stable across versions so that old notes stay readable.
package annotation

import (
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"

	"github.com/nost-not/nost/internal/domain"
)

// Decode failure sentinels, matchable with errors.Is. A required-field
// failure discards the whole line; there is no partial decode.
var (
	ErrMissingOrInvalidDate  = errors.New("missing or invalid date")
	ErrMissingOrInvalidEvent = errors.New("missing or invalid event")
	ErrMissingOrInvalidUid   = errors.New("missing or invalid uid")
)

// Field extraction patterns. A field is present only when the exact
// quoted-key form name:'value' appears in the payload.
var (
	dateField    = regexp.MustCompile(`date:'([^']+)'`)
	eventField   = regexp.MustCompile(`event:'([^']+)'`)
	uidField     = regexp.MustCompile(`uid:'([^']+)'`)
	workdayField = regexp.MustCompile(`workday:'([^']+)'`)
)

// Encode serializes an event into a single annotation line. Field order is
// fixed; the workday field is emitted only when a tag is supplied.
func Encode(ts time.Time, kind domain.EventKind, uid uuid.UUID, workday string) string {
	date := ts.Format(time.RFC3339Nano)
	if workday != "" {
		return fmt.Sprintf(`[//]: # "not:{date:'%s',event:'%s',uid:'%s',workday:'%s'}"`,
			date, kind.Code(), uid, workday)
	}
	return fmt.Sprintf(`[//]: # "not:{date:'%s',event:'%s',uid:'%s'}"`,
		date, kind.Code(), uid)
}

// Decode reconstructs an Annotation from an inner payload (the annotation
// line with the comment marker and quoting already stripped). The payload's
// timestamp offset is preserved so the record formats back to the identical
// instant.
func Decode(payload string) (domain.Annotation, error) {
	dateStr, ok := extractField(dateField, payload)
	if !ok {
		return domain.Annotation{}, fmt.Errorf("%w: %s", ErrMissingOrInvalidDate, payload)
	}
	ts, err := time.Parse(time.RFC3339Nano, dateStr)
	if err != nil {
		return domain.Annotation{}, fmt.Errorf("%w: %q", ErrMissingOrInvalidDate, dateStr)
	}

	eventStr, ok := extractField(eventField, payload)
	if !ok {
		return domain.Annotation{}, fmt.Errorf("%w: %s", ErrMissingOrInvalidEvent, payload)
	}
	kind, err := domain.ParseEventKind(eventStr)
	if err != nil {
		return domain.Annotation{}, fmt.Errorf("%w: %q", ErrMissingOrInvalidEvent, eventStr)
	}

	uidStr, ok := extractField(uidField, payload)
	if !ok {
		return domain.Annotation{}, fmt.Errorf("%w: %s", ErrMissingOrInvalidUid, payload)
	}
	uid, err := uuid.Parse(uidStr)
	if err != nil {
		return domain.Annotation{}, fmt.Errorf("%w: %q", ErrMissingOrInvalidUid, uidStr)
	}

	workday, _ := extractField(workdayField, payload)

	return domain.Annotation{
		UID:       uid,
		Event:     kind,
		Timestamp: ts,
		Workday:   workday,
	}, nil
}

func extractField(re *regexp.Regexp, payload string) (string, bool) {
	m := re.FindStringSubmatch(payload)
	if m == nil {
		return "", false
	}
	return m[1], true
}

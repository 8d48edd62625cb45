// Package testutil provides annotation fixtures shared by tests.
package testutil

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nost-not/nost/internal/domain"
)

// AnnotationOption customizes a test annotation.
type AnnotationOption func(*domain.Annotation)

// WithWorkday tags the annotation with a logical workday label.
func WithWorkday(day string) AnnotationOption {
	return func(a *domain.Annotation) {
		a.Workday = day
	}
}

// WithUID overrides the generated record identifier.
func WithUID(uid uuid.UUID) AnnotationOption {
	return func(a *domain.Annotation) {
		a.UID = uid
	}
}

// NewTestAnnotation builds an annotation of the given kind at the given
// instant, with a fresh identifier unless overridden.
func NewTestAnnotation(kind domain.EventKind, ts time.Time, opts ...AnnotationOption) domain.Annotation {
	a := domain.Annotation{
		UID:       uuid.New(),
		Event:     kind,
		Timestamp: ts,
	}
	for _, opt := range opts {
		opt(&a)
	}
	return a
}

// MustTime parses an RFC3339 timestamp, panicking on malformed input. Test
// fixtures only.
func MustTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		panic(fmt.Sprintf("bad fixture timestamp %q: %v", s, err))
	}
	return t
}

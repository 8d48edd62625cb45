package annotation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nost-not/nost/internal/domain"
	"github.com/nost-not/nost/internal/testutil"
)

func TestFilterByEvents(t *testing.T) {
	records := []domain.Annotation{
		testutil.NewTestAnnotation(domain.EventCreateNot, testutil.MustTime("2025-09-29T08:00:00+02:00")),
		testutil.NewTestAnnotation(domain.EventStartWork, testutil.MustTime("2025-09-29T09:00:00+02:00")),
		testutil.NewTestAnnotation(domain.EventStopWork, testutil.MustTime("2025-09-29T10:00:00+02:00")),
		testutil.NewTestAnnotation(domain.EventCreateNot, testutil.MustTime("2025-09-30T08:00:00+02:00")),
	}

	work := FilterByEvents(records, domain.EventStartWork, domain.EventStopWork)

	require.Len(t, work, 2)
	assert.Equal(t, domain.EventStartWork, work[0].Event, "input order must be preserved")
	assert.Equal(t, domain.EventStopWork, work[1].Event)
}

func TestFilterByEvents_Empty(t *testing.T) {
	assert.Empty(t, FilterByEvents(nil, domain.EventStartWork))
	assert.Empty(t, FilterByEvents([]domain.Annotation{
		testutil.NewTestAnnotation(domain.EventCreateNot, testutil.MustTime("2025-09-29T08:00:00+02:00")),
	}))
}

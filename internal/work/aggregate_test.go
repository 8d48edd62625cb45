package work

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nost-not/nost/internal/domain"
	"github.com/nost-not/nost/internal/testutil"
)

func start(ts string, opts ...testutil.AnnotationOption) domain.Annotation {
	return testutil.NewTestAnnotation(domain.EventStartWork, testutil.MustTime(ts), opts...)
}

func stop(ts string, opts ...testutil.AnnotationOption) domain.Annotation {
	return testutil.NewTestAnnotation(domain.EventStopWork, testutil.MustTime(ts), opts...)
}

func TestComputePeriodStats_SingleSession(t *testing.T) {
	stats := ComputePeriodStats([]domain.Annotation{
		start("2025-09-29T09:00:00+02:00"),
		stop("2025-09-29T10:00:00+02:00"),
	})

	assert.Equal(t, 60, stats.TotalMinutes)
	assert.Equal(t, 1, stats.WorkedDays)

	week := stats.Weeks[domain.WeekKey{Year: 2025, Week: 40}]
	require.Len(t, week.Days, 1)
	assert.Equal(t, domain.DayStats{Day: "2025-09-29", Minutes: 60}, week.Days[0])
	assert.Equal(t, 60, week.Minutes)
}

func TestComputePeriodStats_UnsortedInput(t *testing.T) {
	stats := ComputePeriodStats([]domain.Annotation{
		stop("2025-09-29T10:30:00+02:00"),
		start("2025-09-29T09:00:00+02:00"),
	})

	assert.Equal(t, 90, stats.TotalMinutes, "records must be sorted before pairing")
}

func TestComputePeriodStats_TruncatesToWholeMinutes(t *testing.T) {
	stats := ComputePeriodStats([]domain.Annotation{
		start("2025-09-29T09:00:00+02:00"),
		stop("2025-09-29T09:59:59+02:00"),
	})

	assert.Equal(t, 59, stats.TotalMinutes)
}

func TestComputePeriodStats_MultiWeek(t *testing.T) {
	stats := ComputePeriodStats([]domain.Annotation{
		// ISO week 40
		start("2025-09-29T09:00:00+02:00"),
		stop("2025-09-29T10:00:00+02:00"),
		// ISO week 41
		start("2025-10-06T09:00:00+02:00"),
		stop("2025-10-06T11:30:00+02:00"),
	})

	assert.Equal(t, 210, stats.TotalMinutes)
	assert.Equal(t, 2, stats.WorkedDays)
	require.Len(t, stats.Weeks, 2)
	assert.Equal(t, 60, stats.Weeks[domain.WeekKey{Year: 2025, Week: 40}].Minutes)
	assert.Equal(t, 150, stats.Weeks[domain.WeekKey{Year: 2025, Week: 41}].Minutes)

	keys := stats.SortedWeekKeys()
	assert.Equal(t, []domain.WeekKey{{Year: 2025, Week: 40}, {Year: 2025, Week: 41}}, keys)
}

func TestComputePeriodStats_DanglingStart(t *testing.T) {
	stats := ComputePeriodStats([]domain.Annotation{
		start("2025-09-29T09:00:00+02:00"),
	})

	assert.Zero(t, stats.TotalMinutes)
	assert.Zero(t, stats.WorkedDays, "a day with only a dangling start is not worked")
	assert.Empty(t, stats.Weeks)
}

func TestComputePeriodStats_LastStartWins(t *testing.T) {
	stats := ComputePeriodStats([]domain.Annotation{
		start("2025-09-29T08:00:00+02:00"),
		start("2025-09-29T09:30:00+02:00"),
		stop("2025-09-29T10:00:00+02:00"),
	})

	assert.Equal(t, 30, stats.TotalMinutes, "only the second start pairs with the stop")
}

func TestComputePeriodStats_StopWithoutStartIgnored(t *testing.T) {
	stats := ComputePeriodStats([]domain.Annotation{
		stop("2025-09-29T08:00:00+02:00"),
		start("2025-09-29T09:00:00+02:00"),
		stop("2025-09-29T09:45:00+02:00"),
		stop("2025-09-29T10:00:00+02:00"),
	})

	assert.Equal(t, 45, stats.TotalMinutes)
	assert.Equal(t, 1, stats.WorkedDays)
}

func TestComputePeriodStats_WorkdayTagBeatsTimestampDate(t *testing.T) {
	// Overnight session split at midnight: both halves carry their own
	// workday tag, including a stop stamped just before midnight.
	stats := ComputePeriodStats([]domain.Annotation{
		start("2025-09-28T22:00:00+02:00", testutil.WithWorkday("2025-09-28")),
		stop("2025-09-28T23:59:59.999999999+02:00", testutil.WithWorkday("2025-09-28")),
		start("2025-09-29T00:00:00+02:00", testutil.WithWorkday("2025-09-29")),
		stop("2025-09-29T01:00:00+02:00", testutil.WithWorkday("2025-09-29")),
	})

	assert.Equal(t, 2, stats.WorkedDays)
	week := stats.Weeks[domain.WeekKey{Year: 2025, Week: 39}]
	require.Len(t, week.Days, 1)
	assert.Equal(t, "2025-09-28", week.Days[0].Day)
	assert.Equal(t, 119, week.Days[0].Minutes)

	week40 := stats.Weeks[domain.WeekKey{Year: 2025, Week: 40}]
	require.Len(t, week40.Days, 1)
	assert.Equal(t, domain.DayStats{Day: "2025-09-29", Minutes: 60}, week40.Days[0])
}

func TestComputePeriodStats_ZeroElapsedStillCompletesPairing(t *testing.T) {
	// Equal timestamps keep their input order through the stable sort:
	// the pairing completes with zero minutes.
	stats := ComputePeriodStats([]domain.Annotation{
		start("2025-09-29T09:00:00+02:00", testutil.WithWorkday("2025-09-29")),
		stop("2025-09-29T09:00:00+02:00", testutil.WithWorkday("2025-09-29")),
	})

	assert.Zero(t, stats.TotalMinutes)
	assert.Equal(t, 1, stats.WorkedDays, "a completed zero-length pairing still marks the day worked")
}

func TestComputePeriodStats_Empty(t *testing.T) {
	stats := ComputePeriodStats(nil)
	assert.Zero(t, stats.TotalMinutes)
	assert.Zero(t, stats.WorkedDays)
	assert.Empty(t, stats.Weeks)
}

func TestComputePeriodStats_SameDayAccumulates(t *testing.T) {
	stats := ComputePeriodStats([]domain.Annotation{
		start("2025-09-29T09:00:00+02:00"),
		stop("2025-09-29T10:00:00+02:00"),
		start("2025-09-29T14:00:00+02:00"),
		stop("2025-09-29T15:30:00+02:00"),
	})

	assert.Equal(t, 150, stats.TotalMinutes)
	assert.Equal(t, 1, stats.WorkedDays)
}

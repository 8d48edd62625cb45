package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nost-not/nost/internal/domain"
)

func TestWorkStatsReport_Summary(t *testing.T) {
	stats := domain.PeriodStats{
		TotalMinutes: 120,
		WorkedDays:   2,
		Weeks: map[domain.WeekKey]domain.WeekStats{
			{Year: 2025, Week: 40}: {
				Minutes: 120,
				Days: []domain.DayStats{
					{Day: "2025-09-29", Minutes: 60},
					{Day: "2025-09-30", Minutes: 60},
				},
			},
		},
	}

	report := StripANSI(WorkStatsReport(stats, 500, "EUR"))

	assert.Contains(t, report, "WEEK 40, 2025")
	assert.Contains(t, report, "Monday")
	assert.Contains(t, report, "Tuesday")
	assert.Contains(t, report, "Worked days:  2")
	assert.Contains(t, report, "Total hours:  2.00")
	assert.Contains(t, report, "Salary:       1000.00 EUR")
}

func TestWorkStatsReport_WeeksAscendingWithCumulativeRestart(t *testing.T) {
	stats := domain.PeriodStats{
		TotalMinutes: 270,
		WorkedDays:   3,
		Weeks: map[domain.WeekKey]domain.WeekStats{
			{Year: 2025, Week: 41}: {
				Minutes: 90,
				Days:    []domain.DayStats{{Day: "2025-10-06", Minutes: 90}},
			},
			{Year: 2025, Week: 40}: {
				Minutes: 180,
				Days: []domain.DayStats{
					{Day: "2025-09-29", Minutes: 60},
					{Day: "2025-09-30", Minutes: 120},
				},
			},
		},
	}

	report := StripANSI(WorkStatsReport(stats, 0, "EUR"))

	week40 := strings.Index(report, "WEEK 40, 2025")
	week41 := strings.Index(report, "WEEK 41, 2025")
	require.GreaterOrEqual(t, week40, 0)
	require.GreaterOrEqual(t, week41, 0)
	assert.Less(t, week40, week41, "weeks must render ascending by (year, week)")

	// Week 40 accumulates 1.00 then 3.00; week 41 restarts at 1.50.
	assert.Contains(t, report, "3.00")
	lines := strings.Split(report, "\n")
	var week41Row string
	for _, line := range lines {
		if strings.Contains(line, "2025-10-06") {
			week41Row = line
		}
	}
	require.NotEmpty(t, week41Row)
	assert.Contains(t, week41Row, "1.50", "cumulative hours restart at each week block")
	assert.NotContains(t, week41Row, "4.50")

	assert.Contains(t, report, "Salary:       0.00 EUR")
}

func TestWorkStatsReport_EmptyPeriod(t *testing.T) {
	report := StripANSI(WorkStatsReport(domain.PeriodStats{}, 500, "EUR"))

	assert.Contains(t, report, "Worked days:  0")
	assert.Contains(t, report, "Total hours:  0.00")
	assert.Contains(t, report, "Salary:       0.00 EUR")
}

func TestFormatHours(t *testing.T) {
	assert.Equal(t, "0.00", FormatHours(0))
	assert.Equal(t, "1.00", FormatHours(60))
	assert.Equal(t, "1.50", FormatHours(90))
	assert.Equal(t, "0.75", FormatHours(45))
}

func TestRenderTable_Alignment(t *testing.T) {
	out := StripANSI(RenderTable(
		[]string{"DAY", "HOURS"},
		[][]string{
			{"Monday", "1.00"},
			{"Tuesday", "2.00"},
		},
	))

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, strings.Index(lines[2], "1.00"), strings.Index(lines[3], "2.00"),
		"cells of one column must align")
}

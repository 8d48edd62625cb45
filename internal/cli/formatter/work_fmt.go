package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/nost-not/nost/internal/domain"
)

// WorkStatsReport renders period statistics as one table block per ISO week
// plus a summary footer with the derived salary. Weeks are ordered by
// (year, week) ascending, days ascending inside each week; the cumulative
// hours column restarts at zero with every week block. The caller supplies
// an already-validated daily rate and currency code.
func WorkStatsReport(stats domain.PeriodStats, dailyRate float64, currency string) string {
	var b strings.Builder

	for _, key := range stats.SortedWeekKeys() {
		ws := stats.Weeks[key]

		b.WriteString(Header(fmt.Sprintf("Week %d, %d", key.Week, key.Year)))
		b.WriteString("\n")

		rows := make([][]string, 0, len(ws.Days))
		cumulative := 0
		for _, day := range ws.Days {
			cumulative += day.Minutes
			rows = append(rows, []string{
				weekdayName(day.Day),
				day.Day,
				FormatHours(day.Minutes),
				Dim(FormatHours(cumulative)),
			})
		}
		b.WriteString(RenderTable([]string{"DAY", "DATE", "HOURS", "CUMULATIVE"}, rows))
		b.WriteString("\n")
	}

	salary := dailyRate * float64(stats.WorkedDays)
	b.WriteString(Header("Total"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Worked days:  %s\n", Bold(fmt.Sprintf("%d", stats.WorkedDays))))
	b.WriteString(fmt.Sprintf("Total hours:  %s\n", Bold(FormatHours(stats.TotalMinutes))))
	b.WriteString(fmt.Sprintf("Salary:       %s\n", StyleGreen.Render(fmt.Sprintf("%.2f %s", salary, currency))))

	return b.String()
}

// FormatHours converts minutes into a two-decimal hours figure.
func FormatHours(minutes int) string {
	return fmt.Sprintf("%.2f", float64(minutes)/60)
}

// weekdayName returns the English weekday of a YYYY-MM-DD label, or an empty
// string when the label is not a parseable date.
func weekdayName(day string) string {
	d, err := time.Parse("2006-01-02", day)
	if err != nil {
		return ""
	}
	return d.Weekday().String()
}

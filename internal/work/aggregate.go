// Package work turns filtered work annotations into per-day, per-week, and
// period-level duration statistics.
package work

import (
	"sort"
	"time"

	"github.com/nost-not/nost/internal/domain"
)

// dayBucket accumulates minutes for one calendar day. The anchor is the
// start timestamp the day was first seen with; it resolves the ISO week when
// the day label itself does not parse.
type dayBucket struct {
	minutes int
	anchor  time.Time
}

// ComputePeriodStats pairs session starts with stops and rolls the elapsed
// minutes up into day, ISO week, and period totals. It is total over any
// input: empty, all-starts, all-stops, and interleaved-without-pairing
// inputs all degrade to zero totals.
//
// Pairing walks the records in timestamp order keeping at most one open
// start. A start while another is open replaces it (last start wins; the
// dropped start never pairs). A stop with no open start is ignored. A start
// still open at the end contributes nothing and does not mark its day as
// worked.
func ComputePeriodStats(records []domain.Annotation) domain.PeriodStats {
	sorted := make([]domain.Annotation, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.Before(sorted[j].Timestamp)
	})

	days := map[string]*dayBucket{}
	var open *domain.Annotation

	for i := range sorted {
		rec := sorted[i]
		switch rec.Event {
		case domain.EventStartWork:
			open = &sorted[i]
		case domain.EventStopWork:
			if open == nil {
				continue
			}
			// Whole minutes, truncated; out-of-order or instantaneous
			// pairings clamp to zero instead of failing.
			minutes := int(rec.Timestamp.Sub(open.Timestamp).Minutes())
			if minutes < 0 {
				minutes = 0
			}
			day := open.Day()
			bucket, ok := days[day]
			if !ok {
				bucket = &dayBucket{anchor: open.Timestamp}
				days[day] = bucket
			}
			bucket.minutes += minutes
			open = nil
		}
	}

	return rollUp(days)
}

func rollUp(days map[string]*dayBucket) domain.PeriodStats {
	stats := domain.PeriodStats{Weeks: map[domain.WeekKey]domain.WeekStats{}}

	labels := make([]string, 0, len(days))
	for day := range days {
		labels = append(labels, day)
	}
	sort.Strings(labels)

	for _, day := range labels {
		bucket := days[day]
		year, week := isoWeekOf(day, bucket.anchor)
		key := domain.WeekKey{Year: year, Week: week}

		ws := stats.Weeks[key]
		ws.Minutes += bucket.minutes
		ws.Days = append(ws.Days, domain.DayStats{Day: day, Minutes: bucket.minutes})
		stats.Weeks[key] = ws

		stats.TotalMinutes += bucket.minutes
		stats.WorkedDays++
	}

	return stats
}

// isoWeekOf resolves the ISO (year, week) of a day label, falling back to
// the anchor timestamp when the label is not a parseable date.
func isoWeekOf(day string, anchor time.Time) (int, int) {
	if d, err := time.Parse("2006-01-02", day); err == nil {
		return d.ISOWeek()
	}
	return anchor.ISOWeek()
}

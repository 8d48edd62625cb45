package domain

import "sort"

// DayStats holds the completed work minutes of one calendar day.
type DayStats struct {
	Day     string // YYYY-MM-DD
	Minutes int
}

// WeekKey groups days into ISO week buckets.
type WeekKey struct {
	Year int
	Week int
}

// WeekStats holds one ISO week's total minutes and its days, ascending.
type WeekStats struct {
	Minutes int
	Days    []DayStats
}

// PeriodStats is the result of one aggregation run. It is constructed fresh
// per run and never mutated afterwards.
type PeriodStats struct {
	TotalMinutes int
	WorkedDays   int
	Weeks        map[WeekKey]WeekStats
}

// SortedWeekKeys returns the period's week keys ascending by (year, week).
func (p PeriodStats) SortedWeekKeys() []WeekKey {
	keys := make([]WeekKey, 0, len(p.Weeks))
	for k := range p.Weeks {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Year != keys[j].Year {
			return keys[i].Year < keys[j].Year
		}
		return keys[i].Week < keys[j].Week
	})
	return keys
}

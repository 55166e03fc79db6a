// Package period computes the date grids behind the timesheet and CAM
// status views: Monday-start week ranges and weekday lists for a given
// calendar month.
//
// Months are one-based (time.Month) everywhere in this package. Callers
// holding a zero-based month index must convert at the boundary.
package period

import (
	"fmt"
	"time"
)

// WeekRange is a contiguous 7-day block starting on a Monday. Boundary
// ranges may include days outside the target month.
type WeekRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// String renders "02 Jan 2006 - 08 Jan 2006". Display only; the range
// dates themselves are the keys.
func (w WeekRange) String() string {
	return w.Start.Format("02 Jan 2006") + " - " + w.End.Format("02 Jan 2006")
}

// WeeksInMonth returns the Monday-start week ranges covering the month.
// The first range starts on the Monday on or before the 1st; ranges
// advance by exactly 7 days while the start is on or before the last day
// of the month. A month yields 4, 5 or 6 ranges.
func WeeksInMonth(year int, month time.Month) []WeekRange {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)

	start := first
	if wd := start.Weekday(); wd == time.Sunday {
		start = start.AddDate(0, 0, -6)
	} else {
		start = start.AddDate(0, 0, -(int(wd) - 1))
	}

	var weeks []WeekRange
	for !start.After(last) {
		weeks = append(weeks, WeekRange{Start: start, End: start.AddDate(0, 0, 6)})
		start = start.AddDate(0, 0, 7)
	}
	return weeks
}

// WeekdaysInMonth returns the day-of-month numbers of every Monday-Friday
// in the month, in increasing order.
func WeekdaysInMonth(year int, month time.Month) []int {
	last := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC)
	days := make([]int, 0, 23)
	for day := 1; day <= last.Day(); day++ {
		wd := time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Weekday()
		if wd >= time.Monday && wd <= time.Friday {
			days = append(days, day)
		}
	}
	return days
}

// DateKey builds the canonical zero-padded "YYYY-MM-DD" key used both for
// display and for persistence of per-day records.
func DateKey(year int, month time.Month, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, int(month), day)
}

// SameMonth reports whether a "YYYY-MM-DD" key falls in the given month.
func SameMonth(key string, year int, month time.Month) bool {
	return len(key) >= 7 && key[:7] == fmt.Sprintf("%04d-%02d", year, int(month))
}

package period

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeeksInMonthJanuary2025(t *testing.T) {
	// Jan 1 2025 is a Wednesday, so the grid opens on Monday Dec 30 2024.
	weeks := WeeksInMonth(2025, time.January)

	require.Len(t, weeks, 5)
	assert.Equal(t, time.Date(2024, time.December, 30, 0, 0, 0, 0, time.UTC), weeks[0].Start)
	assert.Equal(t, time.Date(2025, time.January, 5, 0, 0, 0, 0, time.UTC), weeks[0].End)
	last := weeks[len(weeks)-1]
	assert.False(t, last.End.Before(time.Date(2025, time.January, 31, 0, 0, 0, 0, time.UTC)))
}

func TestWeeksInMonthProperties(t *testing.T) {
	for year := 2019; year <= 2030; year++ {
		for month := time.January; month <= time.December; month++ {
			weeks := WeeksInMonth(year, month)

			require.GreaterOrEqual(t, len(weeks), 4)
			require.LessOrEqual(t, len(weeks), 6)

			first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
			last := first.AddDate(0, 1, -1)
			assert.False(t, weeks[0].Start.After(first))
			assert.False(t, weeks[len(weeks)-1].End.Before(last))

			for i, w := range weeks {
				assert.Equal(t, time.Monday, w.Start.Weekday())
				assert.Equal(t, w.Start.AddDate(0, 0, 6), w.End)
				if i > 0 {
					assert.Equal(t, weeks[i-1].Start.AddDate(0, 0, 7), w.Start)
				}
			}
		}
	}
}

func TestWeeksInMonthFebruaryStartingMonday(t *testing.T) {
	// Feb 2021: the 1st is a Monday, 28 days, exactly 4 ranges.
	weeks := WeeksInMonth(2021, time.February)

	require.Len(t, weeks, 4)
	assert.Equal(t, time.Date(2021, time.February, 1, 0, 0, 0, 0, time.UTC), weeks[0].Start)
	assert.Equal(t, time.Date(2021, time.February, 28, 0, 0, 0, 0, time.UTC), weeks[3].End)
}

func TestWeekdaysInMonth(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month time.Month
		count int
	}{
		{"March 2025", 2025, time.March, 21},
		{"February 2025", 2025, time.February, 20},
		{"August 2025", 2025, time.August, 21},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			days := WeekdaysInMonth(tt.year, tt.month)
			assert.Len(t, days, tt.count)
		})
	}
}

func TestWeekdaysInMonthProperties(t *testing.T) {
	for year := 2019; year <= 2030; year++ {
		for month := time.January; month <= time.December; month++ {
			days := WeekdaysInMonth(year, month)
			daysInMonth := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()

			assert.LessOrEqual(t, len(days), daysInMonth)
			assert.GreaterOrEqual(t, len(days), daysInMonth*5/7-2)

			for i, d := range days {
				wd := time.Date(year, month, d, 0, 0, 0, 0, time.UTC).Weekday()
				assert.GreaterOrEqual(t, wd, time.Monday)
				assert.LessOrEqual(t, wd, time.Friday)
				if i > 0 {
					assert.Greater(t, d, days[i-1])
				}
			}
		}
	}
}

func TestMonthConventionIsOneBased(t *testing.T) {
	// time.January == 1; a caller converting from a zero-based UI index
	// must add one. Guards against the off-by-one the two conventions invite.
	zeroBased := 0
	weeks := WeeksInMonth(2025, time.Month(zeroBased+1))
	require.NotEmpty(t, weeks)
	assert.Equal(t, time.Date(2024, time.December, 30, 0, 0, 0, 0, time.UTC), weeks[0].Start)
}

func TestFormatRange(t *testing.T) {
	w := WeekRange{
		Start: time.Date(2024, time.December, 30, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, time.January, 5, 0, 0, 0, 0, time.UTC),
	}
	assert.Equal(t, "30 Dec 2024 - 05 Jan 2025", w.String())
}

func TestDateKey(t *testing.T) {
	assert.Equal(t, "2025-03-04", DateKey(2025, time.March, 4))
	assert.Equal(t, "2025-12-25", DateKey(2025, time.December, 25))
}

func TestSameMonth(t *testing.T) {
	assert.True(t, SameMonth("2025-03-04", 2025, time.March))
	assert.False(t, SameMonth("2025-02-28", 2025, time.March))
	assert.False(t, SameMonth("2024-03-04", 2025, time.March))
	assert.False(t, SameMonth("bad", 2025, time.March))
}

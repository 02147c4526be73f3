package grid

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestMonthGridDays_February2024MondayStart(t *testing.T) {
	days := MonthGridDaysIn(2024, time.February, time.Monday, time.UTC)

	require.Len(t, days, 35)
	assert.Equal(t, date(2024, time.January, 29), days[0])
	assert.Equal(t, time.Monday, days[0].Weekday())
	assert.Equal(t, date(2024, time.March, 3), days[34])

	inMonth := 0
	for _, d := range days {
		if d.Month() == time.February {
			inMonth++
		}
	}
	assert.Equal(t, 29, inMonth)
}

func TestMonthGridDays_Sizes(t *testing.T) {
	cases := []struct {
		name      string
		year      int
		month     time.Month
		weekStart time.Weekday
		want      int
	}{
		{"no lead-in", 2024, time.September, time.Sunday, 35},
		{"six weeks", 2024, time.September, time.Monday, 42},
		{"four week february still padded", 2015, time.February, time.Sunday, 35},
		{"31 days with lead 5", 2024, time.March, time.Sunday, 42},
		{"31 days with lead 4", 2024, time.March, time.Monday, 35},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Len(t, MonthGridDaysIn(tc.year, tc.month, tc.weekStart, time.UTC), tc.want)
		})
	}
}

func TestMonthGridDays_Invariants(t *testing.T) {
	for year := 2023; year <= 2025; year++ {
		for month := time.January; month <= time.December; month++ {
			for _, ws := range []time.Weekday{time.Sunday, time.Monday, time.Saturday} {
				days := MonthGridDaysIn(year, month, ws, time.UTC)

				require.Contains(t, []int{35, 42}, len(days))
				assert.Equal(t, ws, days[0].Weekday())

				seen := map[int]int{}
				for i, d := range days {
					if i > 0 {
						assert.Equal(t, days[i-1].AddDate(0, 0, 1), d, "grid must be consecutive")
					}
					if d.Month() == month && d.Year() == year {
						seen[d.Day()]++
					}
				}
				assert.Len(t, seen, daysIn(date(year, month, 1)))
				for day, n := range seen {
					assert.Equal(t, 1, n, "day %d of %s %d", day, month, year)
				}
			}
		}
	}
}

func TestMonthGridDays_InvalidWeekStartPanics(t *testing.T) {
	assert.Panics(t, func() { MonthGridDays(2024, time.March, time.Weekday(7)) })
}

func TestMonthGridCells(t *testing.T) {
	today := time.Date(2024, time.February, 14, 15, 30, 0, 0, time.UTC)
	cells := MonthGridCells(2024, time.February, time.Monday, today)
	require.Len(t, cells, 35)

	assert.False(t, cells[0].InMonth)
	assert.True(t, cells[3].InMonth)
	assert.Equal(t, 1, cells[3].Date.Day())

	var todays []DayCell
	for _, c := range cells {
		if c.IsToday {
			todays = append(todays, c)
		}
	}
	require.Len(t, todays, 1)
	assert.Equal(t, 14, todays[0].Date.Day())
}

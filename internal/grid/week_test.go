package grid

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeekDates(t *testing.T) {
	wednesday := time.Date(2024, time.March, 6, 13, 45, 0, 0, time.UTC)

	week := WeekDates(wednesday, time.Monday)
	require.Len(t, week, 7)
	assert.Equal(t, date(2024, time.March, 4), week[0])
	assert.Equal(t, date(2024, time.March, 10), week[6])

	week = WeekDates(wednesday, time.Sunday)
	assert.Equal(t, date(2024, time.March, 3), week[0])
	assert.Equal(t, date(2024, time.March, 9), week[6])
}

func TestWeekDates_RefOnWeekBoundary(t *testing.T) {
	sunday := date(2024, time.March, 10)
	assert.Equal(t, date(2024, time.March, 4), WeekDates(sunday, time.Monday)[0])
	assert.Equal(t, sunday, WeekDates(sunday, time.Sunday)[0])
}

func TestWeekDates_AcrossYear(t *testing.T) {
	week := WeekDates(date(2025, time.January, 1), time.Monday)
	assert.Equal(t, date(2024, time.December, 30), week[0])
	assert.Equal(t, date(2025, time.January, 5), week[6])
}

func TestDayHelpers(t *testing.T) {
	a := time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC)
	b := time.Date(2024, time.March, 4, 23, 59, 0, 0, time.UTC)

	assert.True(t, IsSameDay(a, b))
	assert.False(t, IsSameDay(a, b.Add(time.Minute)))
	assert.Equal(t, a, StartOfDay(b))
	assert.Equal(t, time.Date(2024, time.March, 5, 0, 14, 0, 0, time.UTC), AddMinutes(b, 15))
	assert.Equal(t, b.Add(-90*time.Minute), AddMinutes(b, -90))
}

func TestTimeSlots(t *testing.T) {
	assert.Equal(t,
		[]string{"09:00", "09:30", "10:00", "10:30", "11:00", "11:30"},
		TimeSlots(9, 12, 30))

	full := TimeSlots(0, 24, 60)
	require.Len(t, full, 24)
	assert.Equal(t, "00:00", full[0])
	assert.Equal(t, "23:00", full[23])

	assert.Equal(t, []string{"00:00", "01:30", "03:00"}, TimeSlots(0, 4, 90))
	assert.Len(t, TimeSlots(-3, 30, 60), 24)
	assert.Nil(t, TimeSlots(9, 17, 0))
	assert.Nil(t, TimeSlots(17, 9, 60))
}

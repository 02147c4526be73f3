package grid

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Freeeeeet/booking_calendar/internal/model"
)

func TestNavigate(t *testing.T) {
	base := date(2024, time.March, 4)
	now := time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		view   model.CalendarView
		action NavAction
		want   time.Time
	}{
		{model.CalendarViewDay, NavNext, date(2024, time.March, 5)},
		{model.CalendarViewDay, NavPrev, date(2024, time.March, 3)},
		{model.CalendarViewWeek, NavNext, date(2024, time.March, 11)},
		{model.CalendarViewWeek, NavPrev, date(2024, time.February, 26)},
		{model.CalendarViewMonth, NavNext, date(2024, time.April, 4)},
		{model.CalendarViewAgenda, NavPrev, date(2024, time.February, 4)},
		{model.CalendarViewMonth, NavToday, now},
	}
	for _, tc := range cases {
		t.Run(string(tc.view)+"/"+string(tc.action), func(t *testing.T) {
			assert.Equal(t, tc.want, Navigate(base, tc.view, tc.action, now))
		})
	}
}

func TestNavigate_MonthOverflowNormalizes(t *testing.T) {
	got := Navigate(date(2024, time.January, 31), model.CalendarViewMonth, NavNext, time.Time{})
	assert.Equal(t, date(2024, time.March, 2), got)
}

func TestNavigate_Panics(t *testing.T) {
	assert.Panics(t, func() { Navigate(date(2024, 1, 1), model.CalendarView("year"), NavNext, time.Now()) })
	assert.Panics(t, func() { Navigate(date(2024, 1, 1), model.CalendarViewDay, NavAction("up"), time.Now()) })
}

func TestParseNavAction(t *testing.T) {
	a, err := ParseNavAction("today")
	require.NoError(t, err)
	assert.Equal(t, NavToday, a)

	_, err = ParseNavAction("back")
	assert.Error(t, err)
}

package grid

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Freeeeeet/booking_calendar/internal/model"
)

func TestAppointmentsOnDay(t *testing.T) {
	appts := []model.Appointment{
		{ID: "b", Start: clock(11, 0), End: clock(12, 0)},
		{ID: "other-day", Start: clock(11, 0).AddDate(0, 0, 1), End: clock(12, 0).AddDate(0, 0, 1)},
		{ID: "a", Start: clock(9, 0), End: clock(10, 0)},
	}

	got := AppointmentsOnDay(appts, date(2024, time.March, 4))
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "b", got[1].ID)

	assert.Empty(t, AppointmentsOnDay(appts, date(2024, time.March, 10)))
}

func TestAgendaGroups(t *testing.T) {
	appts := []model.Appointment{
		{ID: "tue-2", Start: clock(15, 0).AddDate(0, 0, 1)},
		{ID: "mon", Start: clock(9, 0)},
		{ID: "tue-1", Start: clock(8, 0).AddDate(0, 0, 1)},
	}

	groups := AgendaGroups(appts)
	require.Len(t, groups, 2)
	assert.Equal(t, date(2024, time.March, 4), groups[0].Date)
	assert.Len(t, groups[0].Appointments, 1)
	assert.Equal(t, date(2024, time.March, 5), groups[1].Date)
	assert.Equal(t, "tue-1", groups[1].Appointments[0].ID)
	assert.Equal(t, "tue-2", groups[1].Appointments[1].ID)

	// исходный порядок не меняется
	assert.Equal(t, "tue-2", appts[0].ID)
	assert.Empty(t, AgendaGroups(nil))
}

func TestVisibleRange(t *testing.T) {
	ref := time.Date(2024, time.February, 14, 10, 0, 0, 0, time.UTC)

	cases := []struct {
		view     model.CalendarView
		from, to time.Time
	}{
		{model.CalendarViewDay, date(2024, time.February, 14), date(2024, time.February, 15)},
		{model.CalendarViewWeek, date(2024, time.February, 12), date(2024, time.February, 19)},
		{model.CalendarViewMonth, date(2024, time.January, 29), date(2024, time.March, 4)},
		{model.CalendarViewAgenda, date(2024, time.February, 1), date(2024, time.March, 1)},
	}
	for _, tc := range cases {
		t.Run(string(tc.view), func(t *testing.T) {
			from, to := VisibleRange(ref, tc.view, time.Monday)
			assert.Equal(t, tc.from, from)
			assert.Equal(t, tc.to, to)
		})
	}
}

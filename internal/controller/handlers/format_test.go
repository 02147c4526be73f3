package handlers

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Freeeeeet/booking_calendar/internal/grid"
	"github.com/Freeeeeet/booking_calendar/internal/locale"
	"github.com/Freeeeeet/booking_calendar/internal/model"
	"github.com/Freeeeeet/booking_calendar/internal/repository"
	"github.com/Freeeeeet/booking_calendar/internal/service"
	"github.com/Freeeeeet/booking_calendar/internal/validation"
)

var now = time.Date(2024, time.March, 4, 8, 0, 0, 0, time.UTC)

func demoDirectory() model.Directory {
	return model.NewDirectory(repository.DemoStaff(), repository.DemoServices(), repository.DemoCustomers())
}

func TestFormatAppointment(t *testing.T) {
	loc := locale.English()
	a := repository.DemoAppointments(now)[0]

	got := formatAppointment(a, demoDirectory(), loc, false)
	assert.Contains(t, got, "🟢 <b>09:00 - 09:30</b> Consultation with Alice")
	assert.Contains(t, got, "👤 Dr. Emily Carter · Alice Wonderland · "+loc.Status(a.Status))
	assert.Contains(t, got, "<code>appt-1</code>")
	assert.NotContains(t, got, "⚠️")

	assert.Contains(t, formatAppointment(a, demoDirectory(), loc, true), "⚠️")
}

func TestFormatAppointment_EscapesAndFallsBack(t *testing.T) {
	a := model.Appointment{
		ID:        "appt-9",
		Start:     now,
		End:       now.Add(time.Hour),
		Title:     "Tom & <Jerry>",
		StaffID:   "staff-x",
		ServiceID: "service-1",
		Status:    model.AppointmentStatusPending,
	}

	got := formatAppointment(a, demoDirectory(), locale.English(), false)
	assert.Contains(t, got, "Tom &amp; &lt;Jerry&gt;")
	assert.Contains(t, got, "👤 staff-x")
	assert.Contains(t, got, "🟡")
}

func TestMonthText(t *testing.T) {
	loc := locale.English()
	appts := repository.DemoAppointments(now)
	page := &service.CalendarPage{
		Title:        "March 2024",
		Cells:        grid.MonthGridCells(2024, time.March, time.Monday, now),
		Appointments: appts,
		Conflicting:  map[string]bool{},
	}

	got := monthText(page, loc)
	assert.Contains(t, got, "🗓 <b>March 2024</b>")
	assert.Contains(t, got, "[ 4]", "today is bracketed")
	assert.Contains(t, got, " 5• ", "tomorrow has an appointment")
	assert.Contains(t, got, " 6  ")
	assert.Contains(t, got, "📋 Appointments: 4")
	assert.NotContains(t, got, "Conflicts")

	pre := got[strings.Index(got, "<pre>")+len("<pre>") : strings.Index(got, "</pre>")]
	lines := strings.Split(strings.TrimRight(pre, "\n"), "\n")
	// заголовок + 5 недель (март 2024 начинается в пятницу, неделя с понедельника: 35 клеток)
	assert.Len(t, lines, 1+len(page.Cells)/7)
}

func TestAgendaText(t *testing.T) {
	loc := locale.English()
	days := grid.AgendaGroups(repository.DemoAppointments(now))

	got := agendaText("Agenda - March 2024", days, demoDirectory(), loc, map[string]bool{"appt-1": true})
	assert.Contains(t, got, "📋 <b>Agenda - March 2024</b>")
	assert.Contains(t, got, "<b>"+loc.DayTitle(now.AddDate(0, 0, -1))+"</b>")

	first := strings.Index(got, "appt-4")
	second := strings.Index(got, "appt-1")
	assert.True(t, first < second, "days are in order")

	assert.Contains(t, agendaText("Agenda", nil, demoDirectory(), loc, nil), "No appointments.")
}

func TestDigestText(t *testing.T) {
	loc := locale.English()
	appts := grid.AppointmentsOnDay(repository.DemoAppointments(now), now)

	got := digestText(now, appts, demoDirectory(), loc, nil)
	assert.Contains(t, got, loc.DayTitle(now))
	assert.Contains(t, got, "📋 Appointments: 2")

	assert.Contains(t, digestText(now, nil, demoDirectory(), loc, nil), "No appointments today.")
}

func TestErrorText(t *testing.T) {
	res := validation.ValidateDraft(model.Appointment{}, nil)

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"usage", &UsageError{Usage: usageDelete}, "❌ Usage: <code>/delete &lt;id&gt;</code>"},
		{"validation", &service.ValidationError{Result: res}, "• " + validation.MsgStaffRequired},
		{"not found", fmt.Errorf("update appointment x: %w", model.ErrAppointmentNotFound), "❌ Appointment not found"},
		{"staff", fmt.Errorf("staff y: %w", model.ErrStaffNotFound), "❌ Staff not found"},
		{"other", assert.AnError, "❌ Something went wrong"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, errorText(tt.err), tt.want)
		})
	}
}

func TestConflictText(t *testing.T) {
	loc := locale.English()
	appts := repository.DemoAppointments(now)[:1]

	got := conflictText(appts, demoDirectory(), loc)
	assert.True(t, strings.HasPrefix(got, "⚠️ "+validation.MsgConflict))
	assert.Contains(t, got, "appt-1")
}

func TestIsUserError(t *testing.T) {
	assert.True(t, isUserError(&service.ConflictError{}))
	assert.True(t, isUserError(fmt.Errorf("wrap: %w", &UsageError{Usage: usageNew})))
	assert.True(t, isUserError(fmt.Errorf("get: %w", model.ErrServiceNotFound)))
	assert.False(t, isUserError(assert.AnError))
}

func TestTruncateText(t *testing.T) {
	s := "<b>one</b>\n<b>two</b>\n<b>three</b>"
	assert.Equal(t, s, truncateText(s, 100))
	assert.Equal(t, "<b>one</b>\n<b>two</b>\n…", truncateText(s, 25))
}

func TestPadRunes(t *testing.T) {
	assert.Equal(t, "Mon ", padRunes("Mon", 4))
	assert.Equal(t, "Пн  ", padRunes("Пн", 4))
	assert.Equal(t, "Pzt ", padRunes("Pztesi", 4))
}

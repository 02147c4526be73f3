package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Freeeeeet/booking_calendar/internal/events"
	"github.com/Freeeeeet/booking_calendar/internal/locale"
	"github.com/Freeeeeet/booking_calendar/internal/model"
	"github.com/Freeeeeet/booking_calendar/internal/repository"
	"github.com/Freeeeeet/booking_calendar/internal/validation"
)

var now = time.Date(2024, time.March, 4, 8, 0, 0, 0, time.UTC)

func at(h, m int) time.Time {
	return time.Date(2024, time.March, 4, h, m, 0, 0, time.UTC)
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []events.Event
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, ev events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, ev)
	return p.err
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) types() []events.EventType {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]events.EventType, len(p.events))
	for i, ev := range p.events {
		out[i] = ev.Type
	}
	return out
}

func newTestService(t *testing.T) (*CalendarService, *repository.MemoryStore, *recordingPublisher) {
	t.Helper()

	store := repository.NewDemoStore(now)
	pub := &recordingPublisher{}
	svc := NewCalendarService(store, store, pub, Settings{
		Locale:       locale.English(),
		Location:     time.UTC,
		TenantID:     "tenant-123",
		DayStartHour: 8,
		DayEndHour:   18,
		SlotInterval: 30,
	}, zap.NewNop())
	svc.now = func() time.Time { return now }
	return svc, store, pub
}

func TestLoad_Views(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	day, err := svc.Load(ctx, Admin(), CalendarQuery{Date: now, View: model.CalendarViewDay})
	require.NoError(t, err)
	assert.Equal(t, "Monday, March 4, 2024", day.Title)
	assert.Len(t, day.Days, 1)
	assert.Len(t, day.Slots, 20)
	assert.Equal(t, "08:00", day.Slots[0])
	require.Len(t, day.Appointments, 2)
	assert.Equal(t, "appt-1", day.Appointments[0].ID)

	week, err := svc.Load(ctx, Admin(), CalendarQuery{Date: now, View: model.CalendarViewWeek})
	require.NoError(t, err)
	assert.Equal(t, "4 – 10 March, 2024", week.Title)
	assert.Len(t, week.Days, 7)
	assert.Len(t, week.Appointments, 3, "today and tomorrow; yesterday is last week")

	month, err := svc.Load(ctx, Admin(), CalendarQuery{Date: now, View: model.CalendarViewMonth})
	require.NoError(t, err)
	assert.Len(t, month.Cells, 35)
	assert.Len(t, month.Appointments, 4)

	agenda, err := svc.Load(ctx, Admin(), CalendarQuery{Date: now, View: model.CalendarViewAgenda})
	require.NoError(t, err)
	require.Len(t, agenda.Agenda, 3)
	assert.Equal(t, "Agenda - March 2024", agenda.Title)

	_, err = svc.Load(ctx, Admin(), CalendarQuery{Date: now, View: "year"})
	assert.Error(t, err)
}

func TestLoad_Visibility(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()
	q := CalendarQuery{Date: now, View: model.CalendarViewMonth}

	own, err := svc.Load(ctx, Viewer{Role: model.UserRoleStaff, StaffID: "staff-1"}, q)
	require.NoError(t, err)
	require.Len(t, own.Appointments, 2)
	for _, a := range own.Appointments {
		assert.Equal(t, "staff-1", a.StaffID)
	}

	// сотрудник не может расширить видимость через фильтр
	q.StaffID = "staff-2"
	own, err = svc.Load(ctx, Viewer{Role: model.UserRoleStaff, StaffID: "staff-1"}, q)
	require.NoError(t, err)
	assert.Len(t, own.Appointments, 2)

	anon, err := svc.Load(ctx, Viewer{Role: model.UserRoleStaff}, q)
	require.NoError(t, err)
	assert.Empty(t, anon.Appointments)

	admin, err := svc.Load(ctx, Viewer{Role: model.UserRoleOwner}, q)
	require.NoError(t, err)
	require.Len(t, admin.Appointments, 1)
	assert.Equal(t, "staff-2", admin.Appointments[0].StaffID)

	q.StaffID = ""
	q.ServiceID = "service-1"
	byService, err := svc.Load(ctx, Admin(), q)
	require.NoError(t, err)
	assert.Len(t, byService.Appointments, 2)
}

func TestLoad_MarksConflicts(t *testing.T) {
	svc, store, _ := newTestService(t)
	store.Seed(model.Appointment{ID: "appt-x", StaffID: "staff-1", Start: at(9, 15), End: at(9, 45), ServiceID: "service-1"})

	page, err := svc.Load(context.Background(), Admin(), CalendarQuery{Date: now, View: model.CalendarViewDay})
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{"appt-1": true, "appt-x": true}, page.Conflicting)
}

func TestLoad_AppointmentAcrossMidnight(t *testing.T) {
	svc, store, _ := newTestService(t)
	store.Seed(
		model.Appointment{ID: "late", StaffID: "staff-1", Start: at(0, 0).Add(-30 * time.Minute), End: at(0, 30), ServiceID: "service-1"},
		model.Appointment{ID: "early", StaffID: "staff-1", Start: at(0, 0), End: at(1, 0), ServiceID: "service-1"},
	)
	ctx := context.Background()

	page, err := svc.Load(ctx, Admin(), CalendarQuery{Date: now, View: model.CalendarViewDay})
	require.NoError(t, err)
	ids := make([]string, 0, len(page.Appointments))
	for _, a := range page.Appointments {
		ids = append(ids, a.ID)
	}
	assert.Contains(t, ids, "late")
	assert.Contains(t, ids, "early")
	assert.True(t, page.Conflicting["late"])
	assert.True(t, page.Conflicting["early"])

	// в повестке запись остаётся в дне своего начала
	days, err := svc.Agenda(ctx, Admin(), at(0, 0), at(0, 0).AddDate(0, 0, 1))
	require.NoError(t, err)
	require.Len(t, days, 1)
	for _, a := range days[0].Appointments {
		assert.NotEqual(t, "late", a.ID)
	}
}

func TestSave_Create(t *testing.T) {
	svc, store, pub := newTestService(t)
	ctx := context.Background()

	draft, err := svc.NewDraft(ctx, at(12, 5), "staff-2")
	require.NoError(t, err)
	assert.Equal(t, at(12, 15), draft.Start)
	assert.Equal(t, at(12, 45), draft.End)

	saved, err := svc.Save(ctx, draft, SaveOptions{})
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)
	assert.False(t, validation.IsTempID(saved.ID))
	assert.Equal(t, model.AppointmentStatusPending, saved.Status)
	assert.Equal(t, "tenant-123", saved.TenantID)

	stored, err := store.GetByID(ctx, saved.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, []events.EventType{events.AppointmentCreated}, pub.types())
}

func TestSave_ValidationError(t *testing.T) {
	svc, _, pub := newTestService(t)

	_, err := svc.Save(context.Background(), model.Appointment{Start: at(10, 0)}, SaveOptions{})
	require.Error(t, err)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.ErrorIs(t, err, model.ErrInvalidDraft)
	assert.Equal(t, validation.MsgEndRequired, verr.Result.Error(validation.FieldEnd))
	assert.Contains(t, err.Error(), "staffId: Staff is required")
	assert.Empty(t, pub.types())
}

func TestSave_ConflictIsAdvisory(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	draft := model.Appointment{
		Start: at(9, 15), End: at(9, 45),
		StaffID: "staff-1", ServiceID: "service-1", Title: "Walk-in",
	}

	_, err := svc.Save(ctx, draft, SaveOptions{})
	var cerr *ConflictError
	require.True(t, errors.As(err, &cerr))
	assert.ErrorIs(t, err, model.ErrConflict)
	require.Len(t, cerr.Conflicts, 1)
	assert.Equal(t, "appt-1", cerr.Conflicts[0].ID)

	saved, err := svc.Save(ctx, draft, SaveOptions{AllowConflict: true})
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)
}

func TestSave_UnknownDirectoryEntries(t *testing.T) {
	svc, _, _ := newTestService(t)
	draft := model.Appointment{Start: at(13, 0), End: at(13, 30), StaffID: "staff-9", ServiceID: "service-1"}

	_, err := svc.Save(context.Background(), draft, SaveOptions{})
	assert.ErrorIs(t, err, model.ErrStaffNotFound)

	draft.StaffID, draft.ServiceID = "staff-1", "service-9"
	_, err = svc.Save(context.Background(), draft, SaveOptions{})
	assert.ErrorIs(t, err, model.ErrServiceNotFound)
}

func TestSave_UpdateExisting(t *testing.T) {
	svc, _, pub := newTestService(t)
	ctx := context.Background()

	current, err := svc.Get(ctx, "appt-1")
	require.NoError(t, err)

	edit := *current
	edit.Notes = "bring x-rays"
	edit.End = at(9, 45)

	saved, err := svc.Save(ctx, edit, SaveOptions{})
	require.NoError(t, err)
	assert.Equal(t, "appt-1", saved.ID)
	assert.Equal(t, "bring x-rays", saved.Notes)
	assert.Equal(t, []events.EventType{events.AppointmentUpdated}, pub.types())

	// копия под новым id пересекается с самой appt-1
	edit.ID = "appt-404"
	_, err = svc.Save(ctx, edit, SaveOptions{AllowConflict: true})
	assert.ErrorIs(t, err, model.ErrAppointmentNotFound)
}

func TestDrop(t *testing.T) {
	svc, _, pub := newTestService(t)
	ctx := context.Background()

	current, err := svc.Get(ctx, "appt-2")
	require.NoError(t, err)

	moved, err := svc.Drop(ctx, model.NewDraggable(*current), at(14, 0), "", SaveOptions{})
	require.NoError(t, err)
	assert.Equal(t, at(14, 0), moved.Start)
	assert.Equal(t, at(15, 0), moved.End)
	assert.Equal(t, "staff-2", moved.StaffID)
	assert.Equal(t, []events.EventType{events.AppointmentUpdated}, pub.types())
}

func TestDrop_OntoOtherStaffColumn(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	// appt-2 10:00-11:00 у staff-1 не пересекается с appt-1 09:00-09:30
	moved, err := svc.Move(ctx, "appt-2", at(10, 0), "staff-1", SaveOptions{})
	require.NoError(t, err)
	assert.Equal(t, "staff-1", moved.StaffID)

	// 09:00 у staff-1 пересекается с appt-1
	_, err = svc.Move(ctx, "appt-2", at(9, 0), "", SaveOptions{})
	var cerr *ConflictError
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, "appt-1", cerr.Conflicts[0].ID)

	_, err = svc.Move(ctx, "appt-2", at(9, 0), "staff-9", SaveOptions{})
	assert.ErrorIs(t, err, model.ErrStaffNotFound)
}

func TestDrop_UnknownAppointment(t *testing.T) {
	svc, _, _ := newTestService(t)
	drag := model.DraggableAppointment{AppointmentID: "appt-404", OriginalStart: at(9, 0), OriginalEnd: at(10, 0)}

	_, err := svc.Drop(context.Background(), drag, at(11, 0), "", SaveOptions{})
	assert.ErrorIs(t, err, model.ErrAppointmentNotFound)
}

func TestSetStatus(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	appt, err := svc.SetStatus(ctx, "appt-4", model.AppointmentStatusNoShow)
	require.NoError(t, err)
	assert.Equal(t, model.AppointmentStatusNoShow, appt.Status)

	appt, err = svc.SetStatus(ctx, "appt-4", model.AppointmentStatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, model.AppointmentStatusConfirmed, appt.Status)

	_, err = svc.SetStatus(ctx, "appt-4", "archived")
	assert.Error(t, err)

	_, err = svc.SetStatus(ctx, "appt-404", model.AppointmentStatusPending)
	assert.ErrorIs(t, err, model.ErrAppointmentNotFound)
}

func TestDelete(t *testing.T) {
	svc, _, pub := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.Delete(ctx, "appt-3"))
	assert.ErrorIs(t, svc.Delete(ctx, "appt-3"), model.ErrAppointmentNotFound)

	require.Len(t, pub.events, 1)
	assert.Equal(t, events.AppointmentDeleted, pub.events[0].Type)
	assert.Equal(t, "appt-3", pub.events[0].Appointment.ID)
}

func TestPublishFailureDoesNotFailSave(t *testing.T) {
	svc, _, pub := newTestService(t)
	pub.err = errors.New("broker down")

	_, err := svc.SetStatus(context.Background(), "appt-1", model.AppointmentStatusCancelled)
	assert.NoError(t, err)
}

func TestAgenda(t *testing.T) {
	svc, _, _ := newTestService(t)

	days, err := svc.Agenda(context.Background(), Admin(), at(0, 0), at(0, 0).AddDate(0, 0, 1))
	require.NoError(t, err)
	require.Len(t, days, 1)
	assert.Len(t, days[0].Appointments, 2)
}

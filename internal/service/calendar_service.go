package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Freeeeeet/booking_calendar/internal/conflict"
	"github.com/Freeeeeet/booking_calendar/internal/events"
	"github.com/Freeeeeet/booking_calendar/internal/grid"
	"github.com/Freeeeeet/booking_calendar/internal/locale"
	"github.com/Freeeeeet/booking_calendar/internal/model"
	"github.com/Freeeeeet/booking_calendar/internal/repository"
	"github.com/Freeeeeet/booking_calendar/internal/validation"
)

// Settings - параметры отображения и значения по умолчанию
type Settings struct {
	Locale       locale.Locale
	Location     *time.Location
	TenantID     string
	DayStartHour int
	DayEndHour   int
	SlotInterval int // минуты
}

// SaveOptions - как Save и Drop обращаются с пересечениями
type SaveOptions struct {
	// AllowConflict - сохранять даже при пересечении с записью того же сотрудника
	AllowConflict bool
}

type CalendarQuery struct {
	Date      time.Time
	View      model.CalendarView
	StaffID   string // выбранный сотрудник, пусто - все
	ServiceID string
}

// CalendarPage - всё, что нужно виду для отрисовки периода
type CalendarPage struct {
	Query    CalendarQuery
	Title    string
	From, To time.Time

	Cells []grid.DayCell // вид месяца
	Days  []time.Time    // неделя: 7 дней, день: 1
	Slots []string       // виды день и неделя

	Appointments []model.Appointment
	Agenda       []grid.AgendaDay
	// Conflicting отмечает видимые записи, пересекающиеся с записью того же сотрудника
	Conflicting map[string]bool

	Staff    []model.Staff
	Services []model.Service
}

type CalendarService struct {
	appointments repository.AppointmentRepository
	directory    repository.DirectoryRepository
	publisher    events.Publisher
	settings     Settings
	logger       *zap.Logger
	now          func() time.Time
}

func NewCalendarService(
	appointments repository.AppointmentRepository,
	directory repository.DirectoryRepository,
	publisher events.Publisher,
	settings Settings,
	logger *zap.Logger,
) *CalendarService {
	if settings.Location == nil {
		settings.Location = time.Local
	}
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &CalendarService{
		appointments: appointments,
		directory:    directory,
		publisher:    publisher,
		settings:     settings,
		logger:       logger,
		now:          time.Now,
	}
}

// Locale возвращает локаль отображения
func (s *CalendarService) Locale() locale.Locale {
	return s.settings.Locale
}

// Settings возвращает параметры календаря
func (s *CalendarService) Settings() Settings {
	return s.settings
}

// Now возвращает текущее время в часовом поясе календаря
func (s *CalendarService) Now() time.Time {
	return s.now().In(s.settings.Location)
}

// Load собирает страницу календаря для вида и даты запроса
func (s *CalendarService) Load(ctx context.Context, viewer Viewer, q CalendarQuery) (*CalendarPage, error) {
	if !q.View.Valid() {
		return nil, fmt.Errorf("load calendar: unknown view %q", q.View)
	}
	if q.Date.IsZero() {
		q.Date = s.Now()
	}
	q.Date = q.Date.In(s.settings.Location)

	loc := s.settings.Locale
	from, to := grid.VisibleRange(q.Date, q.View, loc.WeekStart)

	appts, err := s.visible(ctx, viewer, model.AppointmentFilter{
		From:      from,
		To:        to,
		StaffID:   q.StaffID,
		ServiceID: q.ServiceID,
	})
	if err != nil {
		return nil, fmt.Errorf("load calendar: %w", err)
	}

	staff, err := s.directory.ListStaff(ctx)
	if err != nil {
		return nil, fmt.Errorf("load staff: %w", err)
	}
	services, err := s.directory.ListServices(ctx)
	if err != nil {
		return nil, fmt.Errorf("load services: %w", err)
	}

	page := &CalendarPage{
		Query:        q,
		Title:        grid.Title(q.Date, q.View, loc),
		From:         from,
		To:           to,
		Appointments: appts,
		Conflicting:  markConflicts(appts),
		Staff:        staff,
		Services:     services,
	}

	switch q.View {
	case model.CalendarViewDay:
		page.Days = []time.Time{grid.StartOfDay(q.Date)}
		page.Slots = grid.TimeSlots(s.settings.DayStartHour, s.settings.DayEndHour, s.settings.SlotInterval)
	case model.CalendarViewWeek:
		page.Days = grid.WeekDates(q.Date, loc.WeekStart)
		page.Slots = grid.TimeSlots(s.settings.DayStartHour, s.settings.DayEndHour, s.settings.SlotInterval)
	case model.CalendarViewMonth:
		page.Cells = grid.MonthGridCells(q.Date.Year(), q.Date.Month(), loc.WeekStart, s.Now())
	case model.CalendarViewAgenda:
		page.Agenda = grid.AgendaGroups(startingIn(appts, from, to))
	}

	return page, nil
}

func markConflicts(appts []model.Appointment) map[string]bool {
	idx := conflict.NewIndex(appts)
	marks := make(map[string]bool)
	for _, a := range appts {
		if idx.HasConflict(conflict.CandidateFor(a)) {
			marks[a.ID] = true
		}
	}
	return marks
}

// visible накладывает ограничение зрителя поверх filter
func (s *CalendarService) visible(ctx context.Context, viewer Viewer, filter model.AppointmentFilter) ([]model.Appointment, error) {
	staffID, ok := viewer.staffFilter(filter.StaffID)
	if !ok {
		return nil, nil
	}
	filter.StaffID = staffID
	return s.appointments.List(ctx, filter)
}

// Agenda возвращает записи зрителя, начинающиеся в [from, to), по дням
func (s *CalendarService) Agenda(ctx context.Context, viewer Viewer, from, to time.Time) ([]grid.AgendaDay, error) {
	appts, err := s.visible(ctx, viewer, model.AppointmentFilter{From: from, To: to})
	if err != nil {
		return nil, fmt.Errorf("load agenda: %w", err)
	}
	return grid.AgendaGroups(startingIn(appts, from, to)), nil
}

// startingIn оставляет записи, начинающиеся в [from, to)
func startingIn(appts []model.Appointment, from, to time.Time) []model.Appointment {
	out := make([]model.Appointment, 0, len(appts))
	for _, a := range appts {
		if !a.Start.Before(from) && a.Start.Before(to) {
			out = append(out, a)
		}
	}
	return out
}

// Appointments возвращает записи зрителя, пересекающие [from, to)
func (s *CalendarService) Appointments(ctx context.Context, viewer Viewer, from, to time.Time) ([]model.Appointment, error) {
	appts, err := s.visible(ctx, viewer, model.AppointmentFilter{From: from, To: to})
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	return appts, nil
}

// Get возвращает запись или ErrAppointmentNotFound
func (s *CalendarService) Get(ctx context.Context, id string) (*model.Appointment, error) {
	appt, err := s.appointments.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get appointment: %w", err)
	}
	if appt == nil {
		return nil, fmt.Errorf("get appointment %s: %w", id, model.ErrAppointmentNotFound)
	}
	return appt, nil
}

// NewDraft готовит черновик записи рядом с initial для колонки сотрудника
func (s *CalendarService) NewDraft(ctx context.Context, initial time.Time, staffID string) (model.Appointment, error) {
	staff, err := s.directory.ListStaff(ctx)
	if err != nil {
		return model.Appointment{}, fmt.Errorf("load staff: %w", err)
	}
	services, err := s.directory.ListServices(ctx)
	if err != nil {
		return model.Appointment{}, fmt.Errorf("load services: %w", err)
	}
	customers, err := s.directory.ListCustomers(ctx)
	if err != nil {
		return model.Appointment{}, fmt.Errorf("load customers: %w", err)
	}

	return validation.NewDraft(validation.DraftDefaults{
		Initial:   initial,
		StaffID:   staffID,
		TenantID:  s.settings.TenantID,
		Staff:     staff,
		Services:  services,
		Customers: customers,
	}, s.Now()), nil
}

// Save проверяет черновик и создаёт запись, либо обновляет сохранённую, если id постоянный.
// Ошибки полей возвращаются как *ValidationError, пересечение без AllowConflict как *ConflictError.
func (s *CalendarService) Save(ctx context.Context, draft model.Appointment, opts SaveOptions) (*model.Appointment, error) {
	existing, err := s.staffAppointments(ctx, draft.StaffID)
	if err != nil {
		return nil, err
	}

	res := validation.ValidateDraft(draft, existing)
	if !res.Valid && !res.OnlyConflict() {
		return nil, &ValidationError{Result: res}
	}
	if res.Conflict() && !opts.AllowConflict {
		c := conflict.CandidateFor(draft)
		if c.ID == "" {
			c.ID = validation.TempID()
		}
		return nil, &ConflictError{Conflicts: conflict.FindConflicts(c, existing)}
	}

	if err := s.checkDirectory(ctx, draft.StaffID, draft.ServiceID); err != nil {
		return nil, err
	}

	if draft.ID == "" || validation.IsTempID(draft.ID) {
		return s.create(ctx, draft, res.Conflict())
	}
	return s.update(ctx, draft, res.Conflict())
}

func (s *CalendarService) staffAppointments(ctx context.Context, staffID string) ([]model.Appointment, error) {
	if staffID == "" {
		return nil, nil
	}
	appts, err := s.appointments.List(ctx, model.AppointmentFilter{StaffID: staffID})
	if err != nil {
		return nil, fmt.Errorf("list staff appointments: %w", err)
	}
	return appts, nil
}

func (s *CalendarService) checkDirectory(ctx context.Context, staffID, serviceID string) error {
	staff, err := s.directory.GetStaffByID(ctx, staffID)
	if err != nil {
		return fmt.Errorf("get staff: %w", err)
	}
	if staff == nil {
		return fmt.Errorf("staff %s: %w", staffID, model.ErrStaffNotFound)
	}

	svc, err := s.directory.GetServiceByID(ctx, serviceID)
	if err != nil {
		return fmt.Errorf("get service: %w", err)
	}
	if svc == nil {
		return fmt.Errorf("service %s: %w", serviceID, model.ErrServiceNotFound)
	}
	return nil
}

func (s *CalendarService) create(ctx context.Context, draft model.Appointment, overlapping bool) (*model.Appointment, error) {
	appt := draft
	appt.ID = ""
	if appt.Status == "" {
		appt.Status = model.AppointmentStatusPending
	}
	if appt.TenantID == "" {
		appt.TenantID = s.settings.TenantID
	}

	if err := s.appointments.Create(ctx, &appt); err != nil {
		return nil, fmt.Errorf("create appointment: %w", err)
	}

	s.logger.Info("Appointment created",
		zap.String("appointment_id", appt.ID),
		zap.String("staff_id", appt.StaffID),
		zap.Time("start", appt.Start),
		zap.Bool("overlapping", overlapping),
	)
	s.publish(ctx, events.AppointmentCreated, appt)

	return &appt, nil
}

func (s *CalendarService) update(ctx context.Context, draft model.Appointment, overlapping bool) (*model.Appointment, error) {
	patch := model.AppointmentPatch{
		Start:      &draft.Start,
		End:        &draft.End,
		Title:      &draft.Title,
		ServiceID:  &draft.ServiceID,
		StaffID:    &draft.StaffID,
		CustomerID: &draft.CustomerID,
		Status:     &draft.Status,
		Notes:      &draft.Notes,
	}
	if draft.Status == "" {
		patch.Status = nil
	}

	appt, err := s.appointments.Update(ctx, draft.ID, patch)
	if err != nil {
		return nil, fmt.Errorf("save appointment: %w", err)
	}

	s.logger.Info("Appointment updated",
		zap.String("appointment_id", appt.ID),
		zap.String("staff_id", appt.StaffID),
		zap.Time("start", appt.Start),
		zap.Bool("overlapping", overlapping),
	)
	s.publish(ctx, events.AppointmentUpdated, *appt)

	return appt, nil
}

// Drop применяет перенос: длительность сохраняется, начало = newStart,
// при заданном dropStaffID запись переходит к этому сотруднику.
func (s *CalendarService) Drop(
	ctx context.Context,
	drag model.DraggableAppointment,
	newStart time.Time,
	dropStaffID string,
	opts SaveOptions,
) (*model.Appointment, error) {
	current, err := s.appointments.GetByID(ctx, drag.AppointmentID)
	if err != nil {
		return nil, fmt.Errorf("get appointment: %w", err)
	}
	if current == nil {
		return nil, fmt.Errorf("drop appointment %s: %w", drag.AppointmentID, model.ErrAppointmentNotFound)
	}

	move := grid.Retime(drag, newStart, dropStaffID)
	moved := move.Apply(*current)

	if move.StaffID != "" && move.StaffID != current.StaffID {
		staff, err := s.directory.GetStaffByID(ctx, move.StaffID)
		if err != nil {
			return nil, fmt.Errorf("get staff: %w", err)
		}
		if staff == nil {
			return nil, fmt.Errorf("drop appointment %s on staff %s: %w", drag.AppointmentID, move.StaffID, model.ErrStaffNotFound)
		}
	}

	existing, err := s.staffAppointments(ctx, moved.StaffID)
	if err != nil {
		return nil, err
	}
	clashes := conflict.FindConflicts(conflict.CandidateFor(moved), existing)
	if len(clashes) > 0 && !opts.AllowConflict {
		return nil, &ConflictError{Conflicts: clashes}
	}

	appt, err := s.appointments.Update(ctx, drag.AppointmentID, move.Patch())
	if err != nil {
		return nil, fmt.Errorf("drop appointment: %w", err)
	}

	s.logger.Info("Appointment moved",
		zap.String("appointment_id", appt.ID),
		zap.String("staff_id", appt.StaffID),
		zap.Time("from", drag.OriginalStart),
		zap.Time("to", appt.Start),
		zap.Int("conflicts", len(clashes)),
	)
	s.publish(ctx, events.AppointmentUpdated, *appt)

	return appt, nil
}

// Move - это Drop по сохранённой записи
func (s *CalendarService) Move(ctx context.Context, id string, newStart time.Time, staffID string, opts SaveOptions) (*model.Appointment, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.Drop(ctx, model.NewDraggable(*current), newStart, staffID, opts)
}

// SetStatus ставит любой статус, без графа переходов
func (s *CalendarService) SetStatus(ctx context.Context, id string, status model.AppointmentStatus) (*model.Appointment, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("set status: unknown status %q", status)
	}

	appt, err := s.appointments.Update(ctx, id, model.AppointmentPatch{Status: &status})
	if err != nil {
		return nil, fmt.Errorf("set status: %w", err)
	}

	s.logger.Info("Appointment status changed",
		zap.String("appointment_id", id),
		zap.String("status", string(status)),
	)
	s.publish(ctx, events.AppointmentUpdated, *appt)

	return appt, nil
}

// Delete удаляет запись и публикует её последнее состояние
func (s *CalendarService) Delete(ctx context.Context, id string) error {
	current, err := s.appointments.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get appointment: %w", err)
	}
	if current == nil {
		return fmt.Errorf("delete appointment %s: %w", id, model.ErrAppointmentNotFound)
	}

	if err := s.appointments.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete appointment: %w", err)
	}

	s.logger.Info("Appointment deleted", zap.String("appointment_id", id))
	s.publish(ctx, events.AppointmentDeleted, *current)

	return nil
}

// Ошибка публикации не отменяет уже сохранённое изменение
func (s *CalendarService) publish(ctx context.Context, t events.EventType, appt model.Appointment) {
	err := s.publisher.Publish(ctx, events.NewEvent(t, appt, s.now()))
	if err != nil && !errors.Is(err, context.Canceled) {
		s.logger.Warn("Failed to publish event",
			zap.String("event_type", string(t)),
			zap.String("appointment_id", appt.ID),
			zap.Error(err),
		)
	}
}

package validation

import (
	"time"

	"github.com/Freeeeeet/booking_calendar/internal/model"
)

const (
	startStepMinutes       = 15
	defaultDurationMinutes = 30
)

// DraftDefaults - справочники и начальные значения для новой записи
type DraftDefaults struct {
	Initial   time.Time // время клика по сетке; zero - сейчас
	StaffID   string    // колонка сотрудника, если есть
	TenantID  string
	Staff     []model.Staff
	Services  []model.Service
	Customers []model.Customer
}

// RoundUpStart округляет минуты вверх до четверти часа и отбрасывает секунды
func RoundUpStart(t time.Time) time.Time {
	base := time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), 0, 0, 0, t.Location())
	minutes := (t.Minute() + startStepMinutes - 1) / startStepMinutes * startStepMinutes
	return base.Add(time.Duration(minutes) * time.Minute)
}

// NewDraft собирает черновик в статусе pending: начало из RoundUpStart,
// первая услуга и её длительность (без услуги 30 минут), заданный или первый сотрудник, первый клиент.
func NewDraft(d DraftDefaults, now time.Time) model.Appointment {
	initial := d.Initial
	if initial.IsZero() {
		initial = now
	}
	start := RoundUpStart(initial)

	draft := model.Appointment{
		Start:    start,
		End:      start.Add(defaultDurationMinutes * time.Minute),
		StaffID:  d.StaffID,
		Status:   model.AppointmentStatusPending,
		TenantID: d.TenantID,
	}
	if len(d.Services) > 0 {
		draft = ApplyService(draft, d.Services[0])
	}
	if draft.StaffID == "" && len(d.Staff) > 0 {
		draft.StaffID = d.Staff[0].ID
	}
	if len(d.Customers) > 0 {
		id := d.Customers[0].ID
		draft.CustomerID = &id
	}
	return draft
}

// ApplyService ставит услугу и, если начало задано, сдвигает конец на длительность услуги
func ApplyService(draft model.Appointment, svc model.Service) model.Appointment {
	draft.ServiceID = svc.ID
	if !draft.Start.IsZero() {
		draft.End = draft.Start.Add(svc.DurationTime())
	}
	return draft
}

// ApplyStart ставит новое начало
// При известной услуге конец считается по её длительности, иначе не меняется
func ApplyStart(draft model.Appointment, start time.Time, svc *model.Service) model.Appointment {
	draft.Start = start
	if svc != nil {
		draft.End = start.Add(svc.DurationTime())
	}
	return draft
}

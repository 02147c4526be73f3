// Package validation проверяет черновики записей перед сохранением
// и заполняет значения по умолчанию для новых.
package validation

import (
	"strings"

	"github.com/google/uuid"

	"github.com/Freeeeeet/booking_calendar/internal/conflict"
	"github.com/Freeeeeet/booking_calendar/internal/model"
)

// Field - поле формы, к которому относится сообщение
type Field string

const (
	FieldTitle     Field = "title"
	FieldStart     Field = "start"
	FieldEnd       Field = "end"
	FieldStaffID   Field = "staffId"
	FieldServiceID Field = "serviceId"
	// FieldConflict - не поле ввода, в нём сообщение о пересечении
	FieldConflict Field = "conflict"
)

const (
	MsgTitleRequired   = "Title or Service is required"
	MsgStartRequired   = "Start time is required"
	MsgEndRequired     = "End time is required"
	MsgEndBeforeStart  = "End time cannot be before start time"
	MsgEndNotAfter     = "End time must be after start time"
	MsgStaffRequired   = "Staff is required"
	MsgServiceRequired = "Service is required"
	MsgConflict        = "This time slot conflicts with another appointment for this staff member."
)

const tempIDPrefix = "temp-"

// Result - результат ValidateDraft
type Result struct {
	Errors map[Field]string
	Valid  bool
}

// Error возвращает сообщение для f или ""
func (r Result) Error(f Field) string {
	return r.Errors[f]
}

// Conflict - пересекается ли черновик с записью того же сотрудника
func (r Result) Conflict() bool {
	_, ok := r.Errors[FieldConflict]
	return ok
}

// OnlyConflict - является ли пересечение единственной ошибкой
func (r Result) OnlyConflict() bool {
	return r.Conflict() && len(r.Errors) == 1
}

// TempID возвращает id для ещё не сохранённого черновика
// Постоянные id никогда не имеют этого префикса
func TempID() string {
	return tempIDPrefix + uuid.NewString()
}

// IsTempID - получен ли id из TempID
func IsTempID(id string) bool {
	return strings.HasPrefix(id, tempIDPrefix)
}

// ValidateDraft проверяет поля черновика, а при заданных начале, конце и сотруднике
// ещё и пересечения с записями этого сотрудника.
// Проблемы возвращаются в результате, а не ошибкой.
func ValidateDraft(draft model.Appointment, existing []model.Appointment) Result {
	errs := make(map[Field]string)

	if strings.TrimSpace(draft.Title) == "" && draft.ServiceID == "" {
		errs[FieldTitle] = MsgTitleRequired
	}
	if draft.Start.IsZero() {
		errs[FieldStart] = MsgStartRequired
	}
	if draft.End.IsZero() {
		errs[FieldEnd] = MsgEndRequired
	}
	if !draft.Start.IsZero() && !draft.End.IsZero() {
		switch {
		case draft.End.Before(draft.Start):
			errs[FieldEnd] = MsgEndBeforeStart
		case draft.End.Equal(draft.Start):
			errs[FieldEnd] = MsgEndNotAfter
		}
	}
	if draft.StaffID == "" {
		errs[FieldStaffID] = MsgStaffRequired
	}
	if draft.ServiceID == "" {
		errs[FieldServiceID] = MsgServiceRequired
	}

	if !draft.Start.IsZero() && !draft.End.IsZero() && draft.StaffID != "" {
		c := conflict.CandidateFor(draft)
		if c.ID == "" {
			c.ID = TempID()
		}
		if conflict.HasConflict(c, existing) {
			errs[FieldConflict] = MsgConflict
		}
	}

	return Result{Errors: errs, Valid: len(errs) == 0}
}

package grid

import (
	"time"

	"github.com/Freeeeeet/booking_calendar/internal/model"
)

// Move - результат переноса записи на слот
type Move struct {
	AppointmentID string
	Start         time.Time
	End           time.Time
	StaffID       string // пусто - сотрудник не меняется
}

// Retime сохраняет исходную длительность: новый конец = newStart + (OriginalEnd - OriginalStart).
// Колонка сотрудника переназначает запись на этого сотрудника.
func Retime(drag model.DraggableAppointment, newStart time.Time, dropStaffID string) Move {
	duration := drag.OriginalEnd.Sub(drag.OriginalStart)
	return Move{
		AppointmentID: drag.AppointmentID,
		Start:         newStart,
		End:           newStart.Add(duration),
		StaffID:       dropStaffID,
	}
}

// Patch превращает перенос в частичное обновление
func (m Move) Patch() model.AppointmentPatch {
	start, end := m.Start, m.End
	patch := model.AppointmentPatch{Start: &start, End: &end}
	if m.StaffID != "" {
		staff := m.StaffID
		patch.StaffID = &staff
	}
	return patch
}

// Apply возвращает перенесённую копию a
func (m Move) Apply(a model.Appointment) model.Appointment {
	return m.Patch().Apply(a)
}

package state

import (
	"time"

	"github.com/Freeeeeet/booking_calendar/internal/model"
)

// ChatState - что сейчас открыто в чате
type ChatState struct {
	View    model.CalendarView
	Date    time.Time
	StaffID string // пусто - все сотрудники

	// Pending - действие, отклонённое из-за конфликта, ждёт "сохранить всё равно"
	Pending *Pending
}

// Pending хранит отклонённое из-за пересечения действие
type Pending struct {
	Draft *model.Appointment // /new
	Move  *Move              // /move
}

type Move struct {
	AppointmentID string
	Start         time.Time
	StaffID       string
}

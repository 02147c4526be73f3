package model

import (
	"fmt"
	"time"
)

type CalendarView string

const (
	CalendarViewDay    CalendarView = "day"
	CalendarViewWeek   CalendarView = "week"
	CalendarViewMonth  CalendarView = "month"
	CalendarViewAgenda CalendarView = "agenda"
)

// Valid - один ли это из четырёх видов
func (v CalendarView) Valid() bool {
	switch v {
	case CalendarViewDay, CalendarViewWeek, CalendarViewMonth, CalendarViewAgenda:
		return true
	}
	return false
}

func ParseCalendarView(raw string) (CalendarView, error) {
	v := CalendarView(raw)
	if !v.Valid() {
		return "", fmt.Errorf("unknown calendar view %q", raw)
	}
	return v, nil
}

// DraggableAppointment - данные, переносимые от источника к месту сброса
type DraggableAppointment struct {
	AppointmentID string
	OriginalStart time.Time
	OriginalEnd   time.Time
}

// NewDraggable снимает состояние записи на момент начала перетаскивания
func NewDraggable(a Appointment) DraggableAppointment {
	return DraggableAppointment{
		AppointmentID: a.ID,
		OriginalStart: a.Start,
		OriginalEnd:   a.End,
	}
}

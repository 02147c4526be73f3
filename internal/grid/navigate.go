package grid

import (
	"fmt"
	"time"

	"github.com/Freeeeeet/booking_calendar/internal/model"
)

type NavAction string

const (
	NavPrev  NavAction = "prev"
	NavNext  NavAction = "next"
	NavToday NavAction = "today"
)

func ParseNavAction(raw string) (NavAction, error) {
	switch a := NavAction(raw); a {
	case NavPrev, NavNext, NavToday:
		return a, nil
	}
	return "", fmt.Errorf("unknown navigation action %q", raw)
}

// Navigate сдвигает дату на один период вида: день, неделю или месяц (месяц и повестка).
// NavToday возвращает now.
// Шаг по месяцам нормализуется как в time.AddDate: 31 января + 1 месяц = начало марта.
// Время суток сохраняется, если оно существует в новой дате.
func Navigate(date time.Time, view model.CalendarView, action NavAction, now time.Time) time.Time {
	mustView(view)

	step := 1
	switch action {
	case NavToday:
		return now
	case NavPrev:
		step = -1
	case NavNext:
	default:
		panic(fmt.Sprintf("grid: invalid navigation action %q", action))
	}

	switch view {
	case model.CalendarViewDay:
		return shiftDate(date, 0, step)
	case model.CalendarViewWeek:
		return shiftDate(date, 0, step*daysPerWeek)
	default:
		return shiftDate(date, step, 0)
	}
}

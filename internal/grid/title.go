package grid

import (
	"fmt"
	"time"

	"github.com/Freeeeeet/booking_calendar/internal/locale"
	"github.com/Freeeeeet/booking_calendar/internal/model"
)

func mustView(view model.CalendarView) {
	if !view.Valid() {
		panic(fmt.Sprintf("grid: invalid calendar view %q", view))
	}
}

// Title возвращает заголовок периода с датой date.
// День - полная дата, неделя - свёрнутый диапазон от первого до последнего дня,
// месяц - месяц и год, повестка - то же с префиксом повестки.
// Неизвестный вид вызывает panic.
func Title(date time.Time, view model.CalendarView, loc locale.Locale) string {
	mustView(view)

	switch view {
	case model.CalendarViewDay:
		return loc.DayTitle(date)
	case model.CalendarViewWeek:
		week := WeekDates(date, loc.WeekStart)
		return loc.WeekRange(week[0], week[len(week)-1])
	case model.CalendarViewMonth:
		return loc.MonthYear(date)
	default:
		return loc.AgendaLabel + " - " + loc.MonthYear(date)
	}
}

package grid

import (
	"sort"
	"time"

	"github.com/Freeeeeet/booking_calendar/internal/model"
)

// AgendaDay - записи одного дня для списка
type AgendaDay struct {
	Date         time.Time
	Appointments []model.Appointment
}

func sortByStart(appts []model.Appointment) {
	sort.SliceStable(appts, func(i, j int) bool {
		return appts[i].Start.Before(appts[j].Start)
	})
}

// AppointmentsOnDay возвращает записи, начинающиеся в календарный день day, по времени начала
func AppointmentsOnDay(appts []model.Appointment, day time.Time) []model.Appointment {
	var out []model.Appointment
	for _, a := range appts {
		if IsSameDay(a.Start, day) {
			out = append(out, a)
		}
	}
	sortByStart(out)
	return out
}

// AgendaGroups группирует записи по дате начала
// Дни и записи внутри дня идут по возрастанию
func AgendaGroups(appts []model.Appointment) []AgendaDay {
	sorted := make([]model.Appointment, len(appts))
	copy(sorted, appts)
	sortByStart(sorted)

	var days []AgendaDay
	for _, a := range sorted {
		if n := len(days); n > 0 && IsSameDay(days[n-1].Date, a.Start) {
			days[n-1].Appointments = append(days[n-1].Appointments, a)
			continue
		}
		days = append(days, AgendaDay{
			Date:         StartOfDay(a.Start),
			Appointments: []model.Appointment{a},
		})
	}
	return days
}

// VisibleRange возвращает полуинтервал [from, to), который показывает вид вокруг date.
// Для месяца это вся сетка вместе с соседними днями, для повестки календарный месяц.
func VisibleRange(date time.Time, view model.CalendarView, weekStart time.Weekday) (from, to time.Time) {
	mustView(view)

	switch view {
	case model.CalendarViewDay:
		from = StartOfDay(date)
		return from, addDays(from, 1)
	case model.CalendarViewWeek:
		from = StartOfWeek(date, weekStart)
		return from, addDays(from, daysPerWeek)
	case model.CalendarViewMonth:
		days := MonthGridDaysIn(date.Year(), date.Month(), weekStart, date.Location())
		return days[0], addDays(days[len(days)-1], 1)
	default:
		from = dayStart(date.Year(), date.Month(), 1, date.Location())
		return from, dayStart(date.Year(), date.Month()+1, 1, date.Location())
	}
}

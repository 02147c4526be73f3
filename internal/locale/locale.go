// Package locale - правила отображения для сетки календаря:
// первый день недели, названия месяцев и дней, форматы заголовков.
//
// Locale - обычное значение, передаётся в форматирование явно и не хранится в состоянии пакета.
package locale

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/language"

	"github.com/Freeeeeet/booking_calendar/internal/model"
)

type dateOrder int

const (
	orderMonthDay dateOrder = iota // "March 4, 2024"
	orderDayMonth                  // "4 марта 2024"
)

type Locale struct {
	Tag       language.Tag
	WeekStart time.Weekday

	MonthsLong  [12]string
	MonthsShort [12]string

	// MonthsInDate - форма месяца рядом с числом (родительный падеж в русском)
	MonthsInDate [12]string

	WeekdaysLong  [7]string // с воскресенья, как time.Weekday
	WeekdaysShort [7]string

	AgendaLabel string
	ViewLabels  map[model.CalendarView]string
	StatusLabel map[model.AppointmentStatus]string

	order      dateOrder
	yearSuffix string
}

// WithWeekStart возвращает копию l, где wd - первая колонка недели и месяца
func (l Locale) WithWeekStart(wd time.Weekday) Locale {
	l.WeekStart = wd
	return l
}

// ParseWeekStart принимает "monday"/"sunday" (или "mon"/"sun", "1"/"0")
func ParseWeekStart(raw string) (time.Weekday, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "monday", "mon", "1":
		return time.Monday, nil
	case "sunday", "sun", "0":
		return time.Sunday, nil
	}
	return 0, fmt.Errorf("unsupported week start %q (want monday or sunday)", raw)
}

func (l Locale) monthLong(m time.Month) string   { return l.MonthsLong[m-1] }
func (l Locale) monthShort(m time.Month) string  { return l.MonthsShort[m-1] }
func (l Locale) monthInDate(m time.Month) string { return l.MonthsInDate[m-1] }

// WeekdayName возвращает полное или короткое название wd
func (l Locale) WeekdayName(wd time.Weekday, short bool) string {
	if short {
		return l.WeekdaysShort[wd]
	}
	return l.WeekdaysLong[wd]
}

// WeekdayNames возвращает семь заголовков колонок начиная с l.WeekStart
func (l Locale) WeekdayNames(short bool) []string {
	names := make([]string, 7)
	for i := 0; i < 7; i++ {
		names[i] = l.WeekdayName(time.Weekday((i+int(l.WeekStart))%7), short)
	}
	return names
}

// FormatTime форматирует время в 24-часовом формате
func FormatTime(t time.Time) string {
	return t.Format("15:04")
}

// FormatTimeRange форматирует диапазон времени
func FormatTimeRange(start, end time.Time) string {
	return FormatTime(start) + " - " + FormatTime(end)
}

// DayTitle - день недели и полная дата, например "Monday, March 4, 2024"
func (l Locale) DayTitle(t time.Time) string {
	wd := l.WeekdayName(t.Weekday(), false)
	if l.order == orderMonthDay {
		return fmt.Sprintf("%s, %s %d, %d", wd, l.monthLong(t.Month()), t.Day(), t.Year())
	}
	if l.yearSuffix != "" {
		return fmt.Sprintf("%s, %d %s %d%s", wd, t.Day(), l.monthInDate(t.Month()), t.Year(), l.yearSuffix)
	}
	return fmt.Sprintf("%d %s %d %s", t.Day(), l.monthInDate(t.Month()), t.Year(), wd)
}

// MonthYear - заголовок месяца, например "March 2024"
func (l Locale) MonthYear(t time.Time) string {
	return fmt.Sprintf("%s %d", l.monthLong(t.Month()), t.Year())
}

// ShortDate - короткая подпись "{MonShort} {d}" (или "{d} {MonShort}")
func (l Locale) ShortDate(t time.Time) string {
	if l.order == orderMonthDay {
		return fmt.Sprintf("%s %d", l.monthShort(t.Month()), t.Day())
	}
	return fmt.Sprintf("%d %s", t.Day(), l.monthShort(t.Month()))
}

// DayHeader - заголовок колонки недели: короткий день недели и число
func (l Locale) DayHeader(t time.Time) string {
	return fmt.Sprintf("%s %d", l.WeekdayName(t.Weekday(), true), t.Day())
}

// WeekRange сворачивает диапазон start..end:
//
//	разные годы:    "Dec 30, 2024 – Jan 5, 2025"
//	разные месяцы:  "Feb 26 – Mar 3, 2024"
//	один месяц:     "4 – 10 March, 2024"
func (l Locale) WeekRange(start, end time.Time) string {
	switch {
	case start.Year() != end.Year():
		return fmt.Sprintf("%s – %s", l.shortDateYear(start), l.shortDateYear(end))
	case start.Month() != end.Month():
		return fmt.Sprintf("%s – %s", l.ShortDate(start), l.shortDateYear(end))
	}
	if l.order == orderMonthDay {
		return fmt.Sprintf("%d – %d %s, %d", start.Day(), end.Day(), l.monthLong(end.Month()), end.Year())
	}
	return fmt.Sprintf("%d – %d %s %d", start.Day(), end.Day(), l.monthInDate(end.Month()), end.Year())
}

func (l Locale) shortDateYear(t time.Time) string {
	if l.order == orderMonthDay {
		return fmt.Sprintf("%s, %d", l.ShortDate(t), t.Year())
	}
	return fmt.Sprintf("%s %d", l.ShortDate(t), t.Year())
}

// Status возвращает подпись статуса, иначе сырое значение
func (l Locale) Status(s model.AppointmentStatus) string {
	if label, ok := l.StatusLabel[s]; ok {
		return label
	}
	return string(s)
}

// View возвращает подпись вида
func (l Locale) View(v model.CalendarView) string {
	if label, ok := l.ViewLabels[v]; ok {
		return label
	}
	return string(v)
}

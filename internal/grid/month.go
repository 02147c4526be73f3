// Package grid считает геометрию календаря для видов день, неделя, месяц и повестка:
// какие даты показать, строки часов, положение блоков записей, заголовки и перенос.
//
// Все функции чистые. Даты берутся в локальном времени, часовой пояс опорной даты сохраняется.
package grid

import (
	"fmt"
	"time"
)

const (
	daysPerWeek   = 7
	fiveWeekCells = 5 * daysPerWeek
	sixWeekCells  = 6 * daysPerWeek
)

// DayCell - одна клетка сетки месяца
type DayCell struct {
	Date    time.Time
	InMonth bool // false для дней соседних месяцев
	IsToday bool
}

func checkWeekStart(ws time.Weekday) {
	if ws < time.Sunday || ws > time.Saturday {
		panic(fmt.Sprintf("grid: invalid week start %d", ws))
	}
}

// leadDays - сколько дней прошлого месяца стоят перед 1-м числом: (weekdayOfFirst - weekStart + 7) mod 7
func leadDays(first time.Time, weekStart time.Weekday) int {
	return (int(first.Weekday()) - int(weekStart) + daysPerWeek) % daysPerWeek
}

// MonthGridDays возвращает даты сетки месяца в time.Local, см. MonthGridDaysIn
func MonthGridDays(year int, month time.Month, weekStart time.Weekday) []time.Time {
	return MonthGridDaysIn(year, month, weekStart, time.Local)
}

// MonthGridDaysIn возвращает 35 или 42 подряд идущих даты, каждая на начале своего дня в loc.
// Первая клетка приходится на weekStart, каждый день месяца встречается один раз.
// Хвост добивается днями следующего месяца до пяти недель, либо до шести, если пять не вмещают месяц.
func MonthGridDaysIn(year int, month time.Month, weekStart time.Weekday, loc *time.Location) []time.Time {
	checkWeekStart(weekStart)

	first := dayStart(year, month, 1, loc)
	lead := leadDays(first, weekStart)
	inMonth := daysIn(first)

	total := fiveWeekCells
	if lead+inMonth > fiveWeekCells {
		total = sixWeekCells
	}

	days := make([]time.Time, total)
	for i := range days {
		days[i] = dayStart(year, month, 1-lead+i, loc)
	}
	return days
}

// MonthGridCells дополняет MonthGridDaysIn признаками месяца и сегодняшнего дня
// Часовой пояс берётся из today
func MonthGridCells(year int, month time.Month, weekStart time.Weekday, today time.Time) []DayCell {
	days := MonthGridDaysIn(year, month, weekStart, today.Location())
	cells := make([]DayCell, len(days))
	for i, d := range days {
		cells[i] = DayCell{
			Date:    d,
			InMonth: !d.IsZero() && d.Month() == month && d.Year() == year,
			IsToday: !d.IsZero() && IsSameDay(d, today),
		}
	}
	return cells
}

// daysIn - число дней в месяце t
func daysIn(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 12, 0, 0, 0, t.Location()).Day()
}

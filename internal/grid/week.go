package grid

import "time"

// StartOfDay возвращает первый момент того же дня
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return dayStart(y, m, d, t.Location())
}

// dayStart возвращает первый момент календарного дня в loc.
// Если полночь попадает в переход на летнее время, день начинается с конца перехода.
func dayStart(year int, month time.Month, day int, loc *time.Location) time.Time {
	noon := time.Date(year, month, day, 12, 0, 0, 0, loc)
	year, month, day = noon.Date()
	t := time.Date(year, month, day, 0, 0, 0, 0, loc)
	if !IsSameDay(t, noon) {
		if _, end := t.ZoneBounds(); end.After(t) {
			t = end
		}
	}
	return t
}

// addDays сдвигает начало дня на n календарных дней
func addDays(day time.Time, n int) time.Time {
	y, m, d := day.Date()
	return dayStart(y, m, d+n, day.Location())
}

// shiftDate сдвигает дату по календарным полям, сохраняя время суток
func shiftDate(t time.Time, months, days int) time.Time {
	y, m, d := t.Date()
	target := time.Date(y, m+time.Month(months), d+days, 12, 0, 0, 0, t.Location())
	y, m, d = target.Date()
	out := time.Date(y, m, d, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	if !IsSameDay(out, target) {
		return dayStart(y, m, d, t.Location())
	}
	return out
}

// IsSameDay сравнивает только календарную дату
func IsSameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// StartOfWeek возвращает начало дня weekStart, не позже ref
func StartOfWeek(ref time.Time, weekStart time.Weekday) time.Time {
	checkWeekStart(weekStart)
	offset := (int(ref.Weekday()) - int(weekStart) + daysPerWeek) % daysPerWeek
	return addDays(ref, -offset)
}

// WeekDates возвращает семь дней недели, содержащей ref
func WeekDates(ref time.Time, weekStart time.Weekday) []time.Time {
	start := StartOfWeek(ref, weekStart)
	week := make([]time.Time, daysPerWeek)
	for i := range week {
		week[i] = addDays(start, i)
	}
	return week
}

// AddMinutes сдвигает t на n минут реального времени
func AddMinutes(t time.Time, n int) time.Time {
	return t.Add(time.Duration(n) * time.Minute)
}

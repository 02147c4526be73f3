package locale

import (
	"time"

	"golang.org/x/text/language"

	"github.com/Freeeeeet/booking_calendar/internal/model"
)

var english = Locale{
	Tag:       language.English,
	WeekStart: time.Monday,
	MonthsLong: [12]string{
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	},
	MonthsShort: [12]string{
		"Jan", "Feb", "Mar", "Apr", "May", "Jun",
		"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
	},
	MonthsInDate: [12]string{
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	},
	WeekdaysLong:  [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
	WeekdaysShort: [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
	AgendaLabel:   "Agenda",
	ViewLabels: map[model.CalendarView]string{
		model.CalendarViewDay:    "Day",
		model.CalendarViewWeek:   "Week",
		model.CalendarViewMonth:  "Month",
		model.CalendarViewAgenda: "Agenda",
	},
	StatusLabel: map[model.AppointmentStatus]string{
		model.AppointmentStatusConfirmed: "Confirmed",
		model.AppointmentStatusPending:   "Pending",
		model.AppointmentStatusCancelled: "Cancelled",
		model.AppointmentStatusCompleted: "Completed",
		model.AppointmentStatusNoShow:    "No Show",
	},
	order: orderMonthDay,
}

var turkish = Locale{
	Tag:       language.Turkish,
	WeekStart: time.Monday,
	MonthsLong: [12]string{
		"Ocak", "Şubat", "Mart", "Nisan", "Mayıs", "Haziran",
		"Temmuz", "Ağustos", "Eylül", "Ekim", "Kasım", "Aralık",
	},
	MonthsShort: [12]string{
		"Oca", "Şub", "Mar", "Nis", "May", "Haz",
		"Tem", "Ağu", "Eyl", "Eki", "Kas", "Ara",
	},
	MonthsInDate: [12]string{
		"Ocak", "Şubat", "Mart", "Nisan", "Mayıs", "Haziran",
		"Temmuz", "Ağustos", "Eylül", "Ekim", "Kasım", "Aralık",
	},
	WeekdaysLong:  [7]string{"Pazar", "Pazartesi", "Salı", "Çarşamba", "Perşembe", "Cuma", "Cumartesi"},
	WeekdaysShort: [7]string{"Paz", "Pzt", "Sal", "Çar", "Per", "Cum", "Cmt"},
	AgendaLabel:   "Ajanda",
	ViewLabels: map[model.CalendarView]string{
		model.CalendarViewDay:    "Gün",
		model.CalendarViewWeek:   "Hafta",
		model.CalendarViewMonth:  "Ay",
		model.CalendarViewAgenda: "Ajanda",
	},
	StatusLabel: map[model.AppointmentStatus]string{
		model.AppointmentStatusConfirmed: "Onaylandı",
		model.AppointmentStatusPending:   "Beklemede",
		model.AppointmentStatusCancelled: "İptal edildi",
		model.AppointmentStatusCompleted: "Tamamlandı",
		model.AppointmentStatusNoShow:    "Gelmedi",
	},
	order: orderDayMonth,
}

// Русские названия месяцев: в заголовке месяца - именительный падеж, рядом с числом - родительный
var russian = Locale{
	Tag:       language.Russian,
	WeekStart: time.Monday,
	MonthsLong: [12]string{
		"Январь", "Февраль", "Март", "Апрель", "Май", "Июнь",
		"Июль", "Август", "Сентябрь", "Октябрь", "Ноябрь", "Декабрь",
	},
	MonthsShort: [12]string{
		"янв", "фев", "мар", "апр", "мая", "июн",
		"июл", "авг", "сен", "окт", "ноя", "дек",
	},
	MonthsInDate: [12]string{
		"января", "февраля", "марта", "апреля", "мая", "июня",
		"июля", "августа", "сентября", "октября", "ноября", "декабря",
	},
	WeekdaysLong:  [7]string{"воскресенье", "понедельник", "вторник", "среда", "четверг", "пятница", "суббота"},
	WeekdaysShort: [7]string{"Вс", "Пн", "Вт", "Ср", "Чт", "Пт", "Сб"},
	AgendaLabel:   "Расписание",
	ViewLabels: map[model.CalendarView]string{
		model.CalendarViewDay:    "День",
		model.CalendarViewWeek:   "Неделя",
		model.CalendarViewMonth:  "Месяц",
		model.CalendarViewAgenda: "Расписание",
	},
	StatusLabel: map[model.AppointmentStatus]string{
		model.AppointmentStatusConfirmed: "Подтверждена",
		model.AppointmentStatusPending:   "Ожидает",
		model.AppointmentStatusCancelled: "Отменена",
		model.AppointmentStatusCompleted: "Завершена",
		model.AppointmentStatusNoShow:    "Неявка",
	},
	order:      orderDayMonth,
	yearSuffix: " г.",
}

var (
	supported = []Locale{english, turkish, russian}
	matcher   = language.NewMatcher([]language.Tag{english.Tag, turkish.Tag, russian.Tag})
)

// English возвращает локаль по умолчанию
func English() Locale { return english }

// Resolve подбирает ближайшую встроенную локаль для BCP 47 тега, например "tr-TR".
// Нераспознанные и неподдерживаемые теги дают English.
func Resolve(tag string) Locale {
	t, err := language.Parse(tag)
	if err != nil {
		return english
	}
	_, i, conf := matcher.Match(t)
	if conf == language.No {
		return english
	}
	return supported[i]
}

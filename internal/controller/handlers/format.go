package handlers

import (
	"errors"
	"fmt"
	"html"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/Freeeeeet/booking_calendar/internal/grid"
	"github.com/Freeeeeet/booking_calendar/internal/locale"
	"github.com/Freeeeeet/booking_calendar/internal/model"
	"github.com/Freeeeeet/booking_calendar/internal/service"
	"github.com/Freeeeeet/booking_calendar/internal/validation"
)

// Лимит Telegram 4096 символов, оставляем запас под разметку
const maxMessageRunes = 3800

// statusEmoji возвращает emoji для статуса записи
func statusEmoji(status model.AppointmentStatus) string {
	emojis := map[model.AppointmentStatus]string{
		model.AppointmentStatusConfirmed: "🟢",
		model.AppointmentStatusPending:   "🟡",
		model.AppointmentStatusCancelled: "🔴",
		model.AppointmentStatusCompleted: "🔵",
		model.AppointmentStatusNoShow:    "⚪️",
	}

	if e, ok := emojis[status]; ok {
		return e
	}
	return "❓"
}

// formatAppointment форматирует запись для списка (HTML)
func formatAppointment(a model.Appointment, dir model.Directory, loc locale.Locale, conflicting bool) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%s <b>%s</b> %s",
		statusEmoji(a.Status),
		locale.FormatTimeRange(a.Start, a.End),
		html.EscapeString(dir.Label(a)),
	)
	if conflicting {
		sb.WriteString(" ⚠️")
	}

	details := []string{"👤 " + html.EscapeString(dir.StaffName(a.StaffID))}
	if name := dir.CustomerName(a.CustomerID); name != "" {
		details = append(details, html.EscapeString(name))
	}
	details = append(details, loc.Status(a.Status), "<code>"+html.EscapeString(a.ID)+"</code>")

	sb.WriteString("\n    ")
	sb.WriteString(strings.Join(details, " · "))
	return sb.String()
}

func formatAppointments(appts []model.Appointment, dir model.Directory, loc locale.Locale, conflicting map[string]bool) string {
	lines := make([]string, len(appts))
	for i, a := range appts {
		lines[i] = formatAppointment(a, dir, loc, conflicting[a.ID])
	}
	return strings.Join(lines, "\n")
}

// agendaText - дни повестки под заголовком страницы
func agendaText(title string, days []grid.AgendaDay, dir model.Directory, loc locale.Locale, conflicting map[string]bool) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "📋 <b>%s</b>\n", html.EscapeString(title))

	if len(days) == 0 {
		sb.WriteString("\nNo appointments.")
		return sb.String()
	}

	for _, day := range days {
		fmt.Fprintf(&sb, "\n<b>%s</b>\n", html.EscapeString(loc.DayTitle(day.Date)))
		sb.WriteString(formatAppointments(day.Appointments, dir, loc, conflicting))
		sb.WriteString("\n")
	}
	return truncateText(sb.String(), maxMessageRunes)
}

// monthText рисует сетку месяца моноширинным блоком
// Дни с записями помечены точкой, дни других месяцев пустые
func monthText(page *service.CalendarPage, loc locale.Locale) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "🗓 <b>%s</b>\n<pre>", html.EscapeString(page.Title))

	for _, name := range loc.WeekdayNames(true) {
		sb.WriteString(padRunes(name, 4))
	}
	sb.WriteString("\n")

	for i, cell := range page.Cells {
		switch {
		case !cell.InMonth:
			sb.WriteString("    ")
		case cell.IsToday:
			fmt.Fprintf(&sb, "[%2d]", cell.Date.Day())
		default:
			marker := " "
			if len(grid.AppointmentsOnDay(page.Appointments, cell.Date)) > 0 {
				marker = "•"
			}
			fmt.Fprintf(&sb, "%2d%s ", cell.Date.Day(), marker)
		}
		if (i+1)%7 == 0 {
			sb.WriteString("\n")
		}
	}
	sb.WriteString("</pre>\n")

	fmt.Fprintf(&sb, "📋 Appointments: %d", len(page.Appointments))
	if n := len(page.Conflicting); n > 0 {
		fmt.Fprintf(&sb, "\n⚠️ Conflicts: %d", n)
	}
	sb.WriteString("\n\nDetails: /day yyyy-mm-dd")
	return sb.String()
}

// gridCaption - подпись под картинкой дня или недели
func gridCaption(page *service.CalendarPage) string {
	caption := fmt.Sprintf("📅 <b>%s</b>\n📋 Appointments: %d", html.EscapeString(page.Title), len(page.Appointments))
	if n := len(page.Conflicting); n > 0 {
		caption += fmt.Sprintf("\n⚠️ Conflicts: %d", n)
	}
	return caption
}

// dayText - вид дня текстом, отправляется вместе с картинкой
func dayText(page *service.CalendarPage, dir model.Directory, loc locale.Locale) string {
	if len(page.Appointments) == 0 {
		return ""
	}
	return truncateText(formatAppointments(page.Appointments, dir, loc, page.Conflicting), maxMessageRunes)
}

func digestText(day time.Time, appts []model.Appointment, dir model.Directory, loc locale.Locale, conflicting map[string]bool) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "☀️ <b>%s</b>\n", html.EscapeString(loc.DayTitle(day)))

	if len(appts) == 0 {
		sb.WriteString("\nNo appointments today.")
		return sb.String()
	}

	fmt.Fprintf(&sb, "📋 Appointments: %d\n\n", len(appts))
	sb.WriteString(formatAppointments(appts, dir, loc, conflicting))
	return truncateText(sb.String(), maxMessageRunes)
}

func savedText(verb string, a model.Appointment, dir model.Directory, loc locale.Locale) string {
	return fmt.Sprintf("✅ %s\n\n%s", verb, formatAppointment(a, dir, loc, false))
}

// conflictText перечисляет, с чем пересеклась отклонённая запись
func conflictText(conflicts []model.Appointment, dir model.Directory, loc locale.Locale) string {
	var sb strings.Builder
	sb.WriteString("⚠️ ")
	sb.WriteString(validation.MsgConflict)
	sb.WriteString("\n\n")
	for _, a := range conflicts {
		fmt.Fprintf(&sb, "%s %s\n", loc.ShortDate(a.Start), formatAppointment(a, dir, loc, false))
	}
	return sb.String()
}

// errorText возвращает пользовательское сообщение для ошибки
func errorText(err error) string {
	var usageErr *UsageError
	var validationErr *service.ValidationError

	switch {
	case errors.As(err, &usageErr):
		text := "❌ Usage: <code>" + html.EscapeString(usageErr.Usage) + "</code>"
		if usageErr.Reason != "" {
			text = "❌ " + html.EscapeString(usageErr.Reason) + "\n" + text
		}
		return text
	case errors.As(err, &validationErr):
		return "❌ Can't save the appointment:\n" + validationLines(validationErr.Result)
	case errors.Is(err, model.ErrAppointmentNotFound):
		return "❌ Appointment not found"
	case errors.Is(err, model.ErrStaffNotFound):
		return "❌ Staff not found"
	case errors.Is(err, model.ErrServiceNotFound):
		return "❌ Service not found"
	default:
		return "❌ Something went wrong. Try again later."
	}
}

func validationLines(res validation.Result) string {
	fields := make([]string, 0, len(res.Errors))
	for f := range res.Errors {
		fields = append(fields, string(f))
	}
	sort.Strings(fields)

	lines := make([]string, len(fields))
	for i, f := range fields {
		lines[i] = "• " + res.Errors[validation.Field(f)]
	}
	return strings.Join(lines, "\n")
}

func padRunes(s string, width int) string {
	r := []rune(s)
	if len(r) >= width {
		return string(r[:width-1]) + " "
	}
	return s + strings.Repeat(" ", width-len(r))
}

// truncateText отбрасывает целые строки сверх maxRunes, HTML теги остаются закрытыми
func truncateText(s string, maxRunes int) string {
	if utf8.RuneCountInString(s) <= maxRunes {
		return s
	}

	var sb strings.Builder
	n := 0
	for _, line := range strings.Split(s, "\n") {
		l := utf8.RuneCountInString(line) + 1
		if n+l > maxRunes {
			break
		}
		sb.WriteString(line)
		sb.WriteString("\n")
		n += l
	}
	sb.WriteString("…")
	return sb.String()
}

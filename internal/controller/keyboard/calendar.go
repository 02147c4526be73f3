package keyboard

import (
	"github.com/go-telegram/bot/models"

	"github.com/Freeeeeet/booking_calendar/internal/controller/callbacks"
	"github.com/Freeeeeet/booking_calendar/internal/grid"
	"github.com/Freeeeeet/booking_calendar/internal/locale"
	"github.com/Freeeeeet/booking_calendar/internal/model"
)

const (
	staffPerRow = 3
	selected    = "• "
)

var viewOrder = []model.CalendarView{
	model.CalendarViewDay,
	model.CalendarViewWeek,
	model.CalendarViewMonth,
	model.CalendarViewAgenda,
}

// Calendar строит клавиатуру под сообщением календаря:
// назад/сегодня/вперёд, переключатель вида и фильтр сотрудника
func Calendar(loc locale.Locale, view model.CalendarView, staff []model.Staff, staffID string) *models.InlineKeyboardMarkup {
	kb := NewBuilder().Row(
		Button("◀️", callbacks.Nav(grid.NavPrev)),
		Button("📍 Today", callbacks.Nav(grid.NavToday)),
		Button("▶️", callbacks.Nav(grid.NavNext)),
	)

	views := make([]models.InlineKeyboardButton, 0, len(viewOrder))
	for _, v := range viewOrder {
		views = append(views, Button(mark(loc.View(v), v == view), callbacks.View(v)))
	}
	kb.Row(views...)

	if len(staff) > 1 {
		buttons := []models.InlineKeyboardButton{Button(mark("👥 All", staffID == ""), callbacks.Staff(""))}
		for _, s := range staff {
			buttons = append(buttons, Button(mark(s.Name, s.ID == staffID), callbacks.Staff(s.ID)))
		}
		kb.Chunked(staffPerRow, buttons...)
	}

	return kb.Build()
}

// Conflict - клавиатура для сохранения несмотря на пересечение
func Conflict() *models.InlineKeyboardMarkup {
	return NewBuilder().Row(
		Button("⚠️ Save anyway", callbacks.Force(callbacks.ForceSave)),
		Button("❌ Cancel", callbacks.Force(callbacks.ForceCancel)),
	).Build()
}

func mark(label string, on bool) string {
	if on {
		return selected + label
	}
	return label
}

package handlers

import (
	"context"
	"time"
	"unicode/utf8"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"github.com/Freeeeeet/booking_calendar/internal/controller/keyboard"
	"github.com/Freeeeeet/booking_calendar/internal/controller/state"
	"github.com/Freeeeeet/booking_calendar/internal/grid"
	"github.com/Freeeeeet/booking_calendar/internal/model"
	"github.com/Freeeeeet/booking_calendar/internal/render"
	"github.com/Freeeeeet/booking_calendar/internal/service"
)

// Лимит подписи к фото в Telegram 1024 символа
const maxCaptionRunes = 1000

// HandleDay обрабатывает команду /day [yyyy-mm-dd]
func (h *Handlers) HandleDay(ctx context.Context, b *bot.Bot, update *models.Update) {
	h.handleView(ctx, b, update, model.CalendarViewDay)
}

// HandleWeek обрабатывает команду /week [yyyy-mm-dd]
func (h *Handlers) HandleWeek(ctx context.Context, b *bot.Bot, update *models.Update) {
	h.handleView(ctx, b, update, model.CalendarViewWeek)
}

// HandleMonth обрабатывает команду /month [yyyy-mm-dd]
func (h *Handlers) HandleMonth(ctx context.Context, b *bot.Bot, update *models.Update) {
	h.handleView(ctx, b, update, model.CalendarViewMonth)
}

// HandleAgenda обрабатывает команду /agenda [yyyy-mm-dd]
func (h *Handlers) HandleAgenda(ctx context.Context, b *bot.Bot, update *models.Update) {
	h.handleView(ctx, b, update, model.CalendarViewAgenda)
}

func (h *Handlers) handleView(ctx context.Context, b *bot.Bot, update *models.Update, view model.CalendarView) {
	if update.Message == nil {
		return
	}
	chatID := update.Message.Chat.ID

	date, ok, err := parseOptionalDate(update.Message.Text, h.calendar.Settings().Location)
	if err != nil {
		h.sendMessage(ctx, b, chatID, "❌ "+err.Error(), nil)
		return
	}

	h.stateManager.Update(chatID, h.calendar.Now(), func(st *state.ChatState) {
		st.View = view
		if ok {
			st.Date = date
		}
	})

	h.ShowCalendar(ctx, b, chatID, 0)
}

// ShowCalendar отправляет текущий вид чата
// Ненулевой replaceMessageID удаляется после отправки нового сообщения
func (h *Handlers) ShowCalendar(ctx context.Context, b *bot.Bot, chatID int64, replaceMessageID int) {
	now := h.calendar.Now()
	st := h.stateManager.Get(chatID, now)

	page, err := h.calendar.Load(ctx, service.Admin(), service.CalendarQuery{
		Date:    st.Date,
		View:    st.View,
		StaffID: st.StaffID,
	})
	if err != nil {
		h.logger.Error("Failed to load calendar", zap.Int64("chat_id", chatID), zap.Error(err))
		h.sendError(ctx, b, chatID, err)
		return
	}

	dir, err := h.calendar.Directory(ctx)
	if err != nil {
		h.logger.Error("Failed to load directory", zap.Error(err))
		h.sendError(ctx, b, chatID, err)
		return
	}

	loc := h.calendar.Locale()
	kb := keyboard.Calendar(loc, st.View, page.Staff, st.StaffID)

	switch st.View {
	case model.CalendarViewDay, model.CalendarViewWeek:
		image, err := h.renderGrid(page, dir, now)
		if err != nil {
			h.logger.Error("Failed to render calendar image", zap.Int64("chat_id", chatID), zap.Error(err))
			h.sendMessage(ctx, b, chatID, agendaText(page.Title, grid.AgendaGroups(page.Appointments), dir, loc, page.Conflicting), kb)
			break
		}

		caption := gridCaption(page)
		if st.View == model.CalendarViewDay {
			if list := dayText(page, dir, loc); list != "" && utf8.RuneCountInString(caption+list) < maxCaptionRunes {
				caption += "\n\n" + list
			}
		}
		if err := h.sendPhoto(ctx, b, chatID, image, caption, kb); err != nil {
			h.logger.Error("Failed to send calendar image", zap.Int64("chat_id", chatID), zap.Error(err))
			return
		}

	case model.CalendarViewMonth:
		h.sendMessage(ctx, b, chatID, monthText(page, loc), kb)

	case model.CalendarViewAgenda:
		h.sendMessage(ctx, b, chatID, agendaText(page.Title, page.Agenda, dir, loc, page.Conflicting), kb)
	}

	h.deleteMessage(ctx, b, chatID, replaceMessageID)
}

func (h *Handlers) renderGrid(page *service.CalendarPage, dir model.Directory, now time.Time) ([]byte, error) {
	settings := h.calendar.Settings()
	return render.WeekImage(render.Week{
		Title:        page.Title,
		Days:         page.Days,
		Appointments: page.Appointments,
		Conflicting:  page.Conflicting,
	}, render.Options{
		Locale:    settings.Locale,
		Directory: dir,
		Now:       now,
		FirstHour: settings.DayStartHour,
		LastHour:  settings.DayEndHour,
	})
}

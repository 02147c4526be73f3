package handlers

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"github.com/Freeeeeet/booking_calendar/internal/controller/state"
	"github.com/Freeeeeet/booking_calendar/internal/export"
	"github.com/Freeeeeet/booking_calendar/internal/grid"
	"github.com/Freeeeeet/booking_calendar/internal/model"
	"github.com/Freeeeeet/booking_calendar/internal/service"
)

const helpText = "📚 Commands:\n\n" +
	"<b>Calendar</b>\n" +
	"/day [yyyy-mm-dd] - day view\n" +
	"/week [yyyy-mm-dd] - week view\n" +
	"/month [yyyy-mm-dd] - month grid\n" +
	"/agenda [yyyy-mm-dd] - appointments of the month\n" +
	"/staff [staff-id] - show one staff member, no id shows everyone\n" +
	"/export - download the current view as .ics\n\n" +
	"<b>Appointments</b>\n" +
	"<code>" + usageNew + "</code>\n" +
	"<code>" + usageMove + "</code>\n" +
	"<code>" + usageStatus + "</code>\n" +
	"<code>" + usageDelete + "</code>\n" +
	"/cancel - drop an unconfirmed action\n\n" +
	"Statuses: confirmed, pending, cancelled, completed, no-show"

// HandleStart обрабатывает команду /start
func (h *Handlers) HandleStart(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	chatID := update.Message.Chat.ID
	h.stateManager.Clear(chatID)

	name := "there"
	if from := update.Message.From; from != nil {
		name = from.FirstName
		h.logger.Info("Chat started", zap.Int64("chat_id", chatID), zap.Int64("user_id", from.ID))
	}

	text := fmt.Sprintf("👋 Hi, %s!\n\nThis bot shows the booking calendar and manages appointments.\n\n%s",
		html.EscapeString(name), helpText)
	h.sendMessage(ctx, b, chatID, text, nil)
}

// HandleHelp обрабатывает команду /help
func (h *Handlers) HandleHelp(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	h.sendMessage(ctx, b, update.Message.Chat.ID, helpText, nil)
}

// HandleCancel обрабатывает команду /cancel - отмена ожидающего действия
func (h *Handlers) HandleCancel(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	chatID := update.Message.Chat.ID
	if h.stateManager.TakePending(chatID) == nil {
		h.sendMessage(ctx, b, chatID, "❌ Nothing to cancel.", nil)
		return
	}
	h.sendMessage(ctx, b, chatID, "✅ Cancelled.", nil)
}

// HandleStaff обрабатывает команду /staff [staff-id]
func (h *Handlers) HandleStaff(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	chatID := update.Message.Chat.ID

	args := commandArgs(update.Message.Text)
	staffID := ""
	if len(args) > 0 {
		staffID = args[0]
		staff, err := h.calendar.StaffByID(ctx, staffID)
		if err != nil {
			h.logger.Error("Failed to get staff", zap.String("staff_id", staffID), zap.Error(err))
			h.sendError(ctx, b, chatID, err)
			return
		}
		if staff == nil {
			h.sendMessage(ctx, b, chatID, h.staffListText(ctx, "❌ Unknown staff id."), nil)
			return
		}
	}

	h.stateManager.Update(chatID, h.calendar.Now(), func(st *state.ChatState) { st.StaffID = staffID })
	h.ShowCalendar(ctx, b, chatID, 0)
}

func (h *Handlers) staffListText(ctx context.Context, header string) string {
	staff, err := h.calendar.Staff(ctx)
	if err != nil {
		h.logger.Error("Failed to list staff", zap.Error(err))
		return header
	}

	lines := []string{header, ""}
	for _, s := range staff {
		lines = append(lines, fmt.Sprintf("<code>%s</code> - %s", html.EscapeString(s.ID), html.EscapeString(s.Name)))
	}
	return strings.Join(lines, "\n")
}

// HandleExport отправляет записи текущего вида файлом .ics
func (h *Handlers) HandleExport(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	chatID := update.Message.Chat.ID

	now := h.calendar.Now()
	st := h.stateManager.Get(chatID, now)
	loc := h.calendar.Locale()
	from, to := grid.VisibleRange(st.Date, st.View, loc.WeekStart)

	appts, err := h.calendar.Appointments(ctx, service.Admin(), from, to)
	if err != nil {
		h.logger.Error("Failed to load appointments for export", zap.Int64("chat_id", chatID), zap.Error(err))
		h.sendError(ctx, b, chatID, err)
		return
	}
	appts = filterStaff(appts, st.StaffID)

	dir, err := h.calendar.Directory(ctx)
	if err != nil {
		h.logger.Error("Failed to load directory", zap.Error(err))
		h.sendError(ctx, b, chatID, err)
		return
	}

	data, err := export.ICS(appts, dir, loc, h.calendarName, now)
	if err != nil {
		h.logger.Error("Failed to build ICS", zap.Error(err))
		h.sendError(ctx, b, chatID, err)
		return
	}

	caption := fmt.Sprintf("📤 %s\n📋 Appointments: %d", html.EscapeString(grid.Title(st.Date, st.View, loc)), len(appts))
	if err := h.sendDocument(ctx, b, chatID, "calendar.ics", data, caption); err != nil {
		h.logger.Error("Failed to send ICS", zap.Int64("chat_id", chatID), zap.Error(err))
		return
	}

	h.logger.Info("Calendar exported",
		zap.Int64("chat_id", chatID),
		zap.String("view", string(st.View)),
		zap.Int("appointments", len(appts)),
	)
}

// filterStaff оставляет записи выбранного сотрудника
func filterStaff(appts []model.Appointment, staffID string) []model.Appointment {
	if staffID == "" {
		return appts
	}
	filter := model.AppointmentFilter{StaffID: staffID}

	var out []model.Appointment
	for _, a := range appts {
		if filter.Match(a) {
			out = append(out, a)
		}
	}
	return out
}

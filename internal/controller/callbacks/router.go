package callbacks

import (
	"context"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"github.com/Freeeeeet/booking_calendar/internal/controller/state"
	"github.com/Freeeeeet/booking_calendar/internal/grid"
	"github.com/Freeeeeet/booking_calendar/internal/model"
)

// Handler содержит зависимости для обработки нажатий на inline кнопки
type Handler struct {
	State  *state.Manager
	Now    func() time.Time
	Logger *zap.Logger

	// Функции-хэндлеры из основного контроллера
	ShowCalendar   func(ctx context.Context, b *bot.Bot, chatID int64, replaceMessageID int)
	ConfirmPending func(ctx context.Context, b *bot.Bot, chatID int64, p *state.Pending)
}

// HandleCallbackQuery обрабатывает все callback query
func (h *Handler) HandleCallbackQuery(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.CallbackQuery == nil {
		return
	}

	callback := update.CallbackQuery
	h.Logger.Info("Callback received",
		zap.String("data", callback.Data),
		zap.Int64("user_id", callback.From.ID),
	)

	Route(ctx, b, callback, h)
}

// Route распределяет callback query по действиям календаря
func Route(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *Handler) {
	msg := messageOf(callback)
	if msg == nil {
		answer(ctx, b, callback.ID, "⌛ Message is too old, send /week again", true)
		return
	}

	cb, err := Parse(callback.Data)
	if err != nil {
		h.Logger.Warn("Bad callback data", zap.String("data", callback.Data), zap.Error(err))
		answer(ctx, b, callback.ID, "❌ Unknown button", true)
		return
	}

	chatID := msg.Chat.ID
	now := h.Now()

	switch cb.Kind {
	case Noop:
		answer(ctx, b, callback.ID, "", false)
		return

	case KindNav:
		action, _ := grid.ParseNavAction(cb.Value)
		h.State.Update(chatID, now, func(st *state.ChatState) {
			st.Date = grid.Navigate(st.Date, st.View, action, now)
		})

	case KindView:
		view, _ := model.ParseCalendarView(cb.Value)
		h.State.Update(chatID, now, func(st *state.ChatState) { st.View = view })

	case KindStaff:
		h.State.Update(chatID, now, func(st *state.ChatState) { st.StaffID = cb.Value })

	case KindForce:
		p := h.State.TakePending(chatID)
		answer(ctx, b, callback.ID, "", false)
		removeKeyboard(ctx, b, msg)
		if p != nil && cb.Value == ForceSave {
			h.ConfirmPending(ctx, b, chatID, p)
		}
		return
	}

	answer(ctx, b, callback.ID, "", false)
	h.ShowCalendar(ctx, b, chatID, msg.ID)
}

func messageOf(callback *models.CallbackQuery) *models.Message {
	return callback.Message.Message
}

func answer(ctx context.Context, b *bot.Bot, callbackID, text string, alert bool) {
	b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
		CallbackQueryID: callbackID,
		Text:            text,
		ShowAlert:       alert,
	})
}

func removeKeyboard(ctx context.Context, b *bot.Bot, msg *models.Message) {
	b.EditMessageReplyMarkup(ctx, &bot.EditMessageReplyMarkupParams{
		ChatID:      msg.Chat.ID,
		MessageID:   msg.ID,
		ReplyMarkup: &models.InlineKeyboardMarkup{InlineKeyboard: [][]models.InlineKeyboardButton{}},
	})
}

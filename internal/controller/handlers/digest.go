package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/Freeeeeet/booking_calendar/internal/grid"
	"github.com/Freeeeeet/booking_calendar/internal/model"
	"github.com/Freeeeeet/booking_calendar/internal/service"
)

// SendDigest отправляет в чат список записей на день
func (h *Handlers) SendDigest(ctx context.Context, b *bot.Bot, chatID int64, day time.Time) error {
	page, err := h.calendar.Load(ctx, service.Admin(), service.CalendarQuery{
		Date: day,
		View: model.CalendarViewDay,
	})
	if err != nil {
		return fmt.Errorf("load digest: %w", err)
	}
	dir, err := h.calendar.Directory(ctx)
	if err != nil {
		return fmt.Errorf("load directory: %w", err)
	}

	appts := grid.AppointmentsOnDay(page.Appointments, page.From)
	text := digestText(page.From, appts, dir, h.calendar.Locale(), page.Conflicting)

	_, err = b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:    chatID,
		Text:      text,
		ParseMode: models.ParseModeHTML,
	})
	if err != nil {
		return fmt.Errorf("send digest: %w", err)
	}
	return nil
}

package handlers

import (
	"context"
	"errors"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"github.com/Freeeeeet/booking_calendar/internal/controller/keyboard"
	"github.com/Freeeeeet/booking_calendar/internal/controller/state"
	"github.com/Freeeeeet/booking_calendar/internal/model"
	"github.com/Freeeeeet/booking_calendar/internal/service"
	"github.com/Freeeeeet/booking_calendar/internal/validation"
)

// HandleNew обрабатывает команду /new
func (h *Handlers) HandleNew(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	chatID := update.Message.Chat.ID

	args, err := parseNewArgs(update.Message.Text, h.calendar.Settings().Location)
	if err != nil {
		h.sendError(ctx, b, chatID, err)
		return
	}

	svc, err := h.calendar.ServiceByID(ctx, args.ServiceID)
	if err != nil {
		h.logger.Error("Failed to get service", zap.String("service_id", args.ServiceID), zap.Error(err))
		h.sendError(ctx, b, chatID, err)
		return
	}
	if svc == nil {
		h.sendError(ctx, b, chatID, model.ErrServiceNotFound)
		return
	}

	draft, err := h.calendar.NewDraft(ctx, args.Start, args.StaffID)
	if err != nil {
		h.logger.Error("Failed to prepare draft", zap.Error(err))
		h.sendError(ctx, b, chatID, err)
		return
	}
	draft = validation.ApplyStart(draft, args.Start, svc)
	draft = validation.ApplyService(draft, *svc)
	draft.Title = args.Title

	h.saveDraft(ctx, b, chatID, draft, service.SaveOptions{})
}

func (h *Handlers) saveDraft(ctx context.Context, b *bot.Bot, chatID int64, draft model.Appointment, opts service.SaveOptions) {
	appt, err := h.calendar.Save(ctx, draft, opts)
	if err != nil {
		if h.askToForce(ctx, b, chatID, err, &state.Pending{Draft: &draft}) {
			return
		}
		h.reportError(ctx, b, chatID, "Failed to save appointment", err)
		return
	}

	h.sendMessage(ctx, b, chatID, savedText("Appointment created", *appt, h.directory(ctx), h.calendar.Locale()), nil)
}

// HandleMove обрабатывает команду /move - перенос записи с сохранением длительности
func (h *Handlers) HandleMove(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	chatID := update.Message.Chat.ID

	args, err := parseMoveArgs(update.Message.Text, h.calendar.Settings().Location)
	if err != nil {
		h.sendError(ctx, b, chatID, err)
		return
	}

	h.move(ctx, b, chatID, state.Move{
		AppointmentID: args.ID,
		Start:         args.Start,
		StaffID:       args.StaffID,
	}, service.SaveOptions{})
}

func (h *Handlers) move(ctx context.Context, b *bot.Bot, chatID int64, m state.Move, opts service.SaveOptions) {
	appt, err := h.calendar.Move(ctx, m.AppointmentID, m.Start, m.StaffID, opts)
	if err != nil {
		if h.askToForce(ctx, b, chatID, err, &state.Pending{Move: &m}) {
			return
		}
		h.reportError(ctx, b, chatID, "Failed to move appointment", err)
		return
	}

	h.sendMessage(ctx, b, chatID, savedText("Appointment moved", *appt, h.directory(ctx), h.calendar.Locale()), nil)
}

// ConfirmPending повторяет отклонённое из-за конфликта действие, разрешая пересечение
func (h *Handlers) ConfirmPending(ctx context.Context, b *bot.Bot, chatID int64, p *state.Pending) {
	opts := service.SaveOptions{AllowConflict: true}
	switch {
	case p.Draft != nil:
		h.saveDraft(ctx, b, chatID, *p.Draft, opts)
	case p.Move != nil:
		h.move(ctx, b, chatID, *p.Move, opts)
	}
}

// askToForce предлагает "сохранить всё равно" и запоминает действие
func (h *Handlers) askToForce(ctx context.Context, b *bot.Bot, chatID int64, err error, p *state.Pending) bool {
	var conflictErr *service.ConflictError
	if !errors.As(err, &conflictErr) {
		return false
	}

	h.stateManager.SetPending(chatID, h.calendar.Now(), p)
	h.sendMessage(ctx, b, chatID, conflictText(conflictErr.Conflicts, h.directory(ctx), h.calendar.Locale()), keyboard.Conflict())
	return true
}

// HandleStatus обрабатывает команду /status <id> <status>
func (h *Handlers) HandleStatus(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	chatID := update.Message.Chat.ID

	id, status, err := parseStatusArgs(update.Message.Text)
	if err != nil {
		h.sendError(ctx, b, chatID, err)
		return
	}

	appt, err := h.calendar.SetStatus(ctx, id, status)
	if err != nil {
		h.reportError(ctx, b, chatID, "Failed to set status", err)
		return
	}

	h.sendMessage(ctx, b, chatID, savedText("Status updated", *appt, h.directory(ctx), h.calendar.Locale()), nil)
}

// HandleDelete обрабатывает команду /delete <id>
func (h *Handlers) HandleDelete(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	chatID := update.Message.Chat.ID

	id, err := parseDeleteArgs(update.Message.Text)
	if err != nil {
		h.sendError(ctx, b, chatID, err)
		return
	}

	if err := h.calendar.Delete(ctx, id); err != nil {
		h.reportError(ctx, b, chatID, "Failed to delete appointment", err)
		return
	}

	h.sendMessage(ctx, b, chatID, "🗑 Appointment deleted.", nil)
}

// reportError логирует неожиданные ошибки и отвечает пользователю
func (h *Handlers) reportError(ctx context.Context, b *bot.Bot, chatID int64, msg string, err error) {
	if !isUserError(err) {
		h.logger.Error(msg, zap.Int64("chat_id", chatID), zap.Error(err))
	}
	h.sendError(ctx, b, chatID, err)
}

func isUserError(err error) bool {
	var usageErr *UsageError
	return errors.As(err, &usageErr) ||
		errors.Is(err, model.ErrInvalidDraft) ||
		errors.Is(err, model.ErrConflict) ||
		errors.Is(err, model.ErrAppointmentNotFound) ||
		errors.Is(err, model.ErrStaffNotFound) ||
		errors.Is(err, model.ErrServiceNotFound)
}

// directory при ошибке возвращает пустой справочник, подписи тогда берутся из id
func (h *Handlers) directory(ctx context.Context) model.Directory {
	dir, err := h.calendar.Directory(ctx)
	if err != nil {
		h.logger.Warn("Failed to load directory", zap.Error(err))
		return model.NewDirectory(nil, nil, nil)
	}
	return dir
}

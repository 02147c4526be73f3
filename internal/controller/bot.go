package controller

import (
	"context"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"github.com/Freeeeeet/booking_calendar/internal/controller/callbacks"
	"github.com/Freeeeeet/booking_calendar/internal/controller/handlers"
	"github.com/Freeeeeet/booking_calendar/internal/controller/state"
	"github.com/Freeeeeet/booking_calendar/internal/model"
	"github.com/Freeeeeet/booking_calendar/internal/service"
)

type BotController struct {
	bot             *bot.Bot
	handlers        *handlers.Handlers
	callbackHandler *callbacks.Handler
	logger          *zap.Logger
}

func NewBotController(
	botInstance *bot.Bot,
	calendar *service.CalendarService,
	defaultView model.CalendarView,
	calendarName string,
	logger *zap.Logger,
) *BotController {
	// Создаём менеджер состояний
	stateManager := state.NewManager(defaultView)

	// Создаём обработчики команд
	cmdHandlers := handlers.NewHandlers(calendar, stateManager, calendarName, logger)

	// Создаём callback handler с зависимостями
	callbackHandler := &callbacks.Handler{
		State:          stateManager,
		Now:            calendar.Now,
		Logger:         logger,
		ShowCalendar:   cmdHandlers.ShowCalendar,
		ConfirmPending: cmdHandlers.ConfirmPending,
	}

	return &BotController{
		bot:             botInstance,
		handlers:        cmdHandlers,
		callbackHandler: callbackHandler,
		logger:          logger,
	}
}

// RegisterHandlers регистрирует все обработчики команд
func (c *BotController) RegisterHandlers(ctx context.Context) error {
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/start", bot.MatchTypeExact, c.handlers.HandleStart)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/help", bot.MatchTypeExact, c.handlers.HandleHelp)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/cancel", bot.MatchTypeExact, c.handlers.HandleCancel)

	// Виды календаря, принимают необязательную дату
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/day", bot.MatchTypePrefix, c.handlers.HandleDay)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/week", bot.MatchTypePrefix, c.handlers.HandleWeek)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/month", bot.MatchTypePrefix, c.handlers.HandleMonth)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/agenda", bot.MatchTypePrefix, c.handlers.HandleAgenda)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/staff", bot.MatchTypePrefix, c.handlers.HandleStaff)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/export", bot.MatchTypePrefix, c.handlers.HandleExport)

	// Записи
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/new", bot.MatchTypePrefix, c.handlers.HandleNew)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/move", bot.MatchTypePrefix, c.handlers.HandleMove)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/status", bot.MatchTypePrefix, c.handlers.HandleStatus)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/delete", bot.MatchTypePrefix, c.handlers.HandleDelete)

	// Обработчик нажатий на inline кнопки
	c.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "", bot.MatchTypePrefix, c.callbackHandler.HandleCallbackQuery)

	// Устанавливаем меню команд
	return c.setCommands(ctx)
}

// setCommands устанавливает список команд в меню бота
func (c *BotController) setCommands(ctx context.Context) error {
	commands := []models.BotCommand{
		{Command: "day", Description: "📅 Day view"},
		{Command: "week", Description: "🗓 Week view"},
		{Command: "month", Description: "🗓 Month grid"},
		{Command: "agenda", Description: "📋 Agenda for the month"},
		{Command: "staff", Description: "👥 Filter by staff"},
		{Command: "new", Description: "➕ New appointment"},
		{Command: "move", Description: "↔️ Move an appointment"},
		{Command: "status", Description: "✏️ Change status"},
		{Command: "delete", Description: "🗑 Delete an appointment"},
		{Command: "export", Description: "📤 Export as .ics"},
		{Command: "help", Description: "❓ Help"},
	}

	_, err := c.bot.SetMyCommands(ctx, &bot.SetMyCommandsParams{
		Commands: commands,
	})

	if err != nil {
		c.logger.Error("Failed to set bot commands", zap.Error(err))
		return err
	}

	c.logger.Info("✅ Bot commands menu set")
	return nil
}

// SendDigest отправляет утреннюю сводку, вызывается планировщиком
func (c *BotController) SendDigest(ctx context.Context, chatID int64, day time.Time) error {
	return c.handlers.SendDigest(ctx, c.bot, chatID, day)
}

// Start запускает бота и блокируется до отмены ctx
func (c *BotController) Start(ctx context.Context) error {
	c.logger.Info("Starting bot...")
	c.bot.Start(ctx)
	return nil
}

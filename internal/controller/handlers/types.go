package handlers

import (
	"github.com/Freeeeeet/booking_calendar/internal/controller/state"
	"github.com/Freeeeeet/booking_calendar/internal/service"
	"go.uber.org/zap"
)

// Handlers содержит все зависимости для обработки команд
type Handlers struct {
	calendar     *service.CalendarService
	stateManager *state.Manager
	calendarName string // имя календаря в ICS
	logger       *zap.Logger
}

// NewHandlers создаёт новый обработчик команд
func NewHandlers(
	calendar *service.CalendarService,
	stateManager *state.Manager,
	calendarName string,
	logger *zap.Logger,
) *Handlers {
	return &Handlers{
		calendar:     calendar,
		stateManager: stateManager,
		calendarName: calendarName,
		logger:       logger,
	}
}

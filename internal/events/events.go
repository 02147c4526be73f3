// Package events публикует события жизненного цикла записей.
package events

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Freeeeeet/booking_calendar/internal/model"
)

type EventType string

const (
	AppointmentCreated EventType = "appointment.created"
	AppointmentUpdated EventType = "appointment.updated"
	AppointmentDeleted EventType = "appointment.deleted"
)

// Event - изменение записи; для deleted Appointment содержит последнее известное состояние
type Event struct {
	ID          string            `json:"event_id"`
	Type        EventType         `json:"event_type"`
	OccurredAt  time.Time         `json:"occurred_at"`
	Appointment model.Appointment `json:"appointment"`
}

// NewEvent создаёт событие с новым id
func NewEvent(t EventType, a model.Appointment, at time.Time) Event {
	return Event{
		ID:          uuid.NewString(),
		Type:        t,
		OccurredAt:  at,
		Appointment: a,
	}
}

type Publisher interface {
	Publish(ctx context.Context, ev Event) error
	Close() error
}

// NopPublisher отбрасывает события, используется без брокеров
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Event) error { return nil }
func (NopPublisher) Close() error                         { return nil }

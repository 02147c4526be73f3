package events

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Freeeeeet/booking_calendar/internal/model"
)

func TestTopic(t *testing.T) {
	assert.Equal(t, "calendar.appointment.created", Topic("calendar", AppointmentCreated))
	assert.Equal(t, "appointment.deleted", Topic("", AppointmentDeleted))
}

func TestMessage(t *testing.T) {
	at := time.Date(2024, time.March, 4, 9, 0, 0, 0, time.UTC)
	appt := model.Appointment{ID: "appt-1", StaffID: "staff-1", Start: at, End: at.Add(30 * time.Minute)}
	ev := NewEvent(AppointmentUpdated, appt, at)

	msg, err := Message("calendar", ev)
	require.NoError(t, err)

	assert.Equal(t, "calendar.appointment.updated", msg.Topic)
	assert.Equal(t, []byte("appt-1"), msg.Key)
	assert.Equal(t, ev.ID, HeaderValue(msg.Headers, "event_id"))
	assert.Equal(t, "appointment.updated", HeaderValue(msg.Headers, "event_type"))
	assert.Empty(t, HeaderValue(msg.Headers, "traceparent"))

	var decoded Event
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	assert.Equal(t, ev.ID, decoded.ID)
	assert.Equal(t, "staff-1", decoded.Appointment.StaffID)
}

func TestNewEvent_UniqueIDs(t *testing.T) {
	a := NewEvent(AppointmentCreated, model.Appointment{}, time.Now())
	b := NewEvent(AppointmentCreated, model.Appointment{}, time.Now())
	assert.NotEqual(t, a.ID, b.ID)
}

func TestSplitBrokers(t *testing.T) {
	assert.Equal(t, []string{"a:9092", "b:9092"}, SplitBrokers(" a:9092, ,b:9092 "))
	assert.Nil(t, SplitBrokers(""))
}

func TestNopPublisher(t *testing.T) {
	var p Publisher = NopPublisher{}
	assert.NoError(t, p.Publish(context.Background(), Event{}))
	assert.NoError(t, p.Close())
}

package keyboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Freeeeeet/booking_calendar/internal/controller/callbacks"
	"github.com/Freeeeeet/booking_calendar/internal/locale"
	"github.com/Freeeeeet/booking_calendar/internal/model"
	"github.com/Freeeeeet/booking_calendar/internal/repository"
)

func TestCalendar(t *testing.T) {
	loc := locale.English()
	kb := Calendar(loc, model.CalendarViewWeek, repository.DemoStaff(), "staff-2")

	rows := kb.InlineKeyboard
	// навигация, виды, сотрудники: All + 3 сотрудника по 3 в ряд
	require.Len(t, rows, 4)

	assert.Equal(t, "nav:prev", rows[0][0].CallbackData)
	assert.Equal(t, "nav:today", rows[0][1].CallbackData)
	assert.Equal(t, "nav:next", rows[0][2].CallbackData)

	require.Len(t, rows[1], 4)
	assert.Equal(t, selected+loc.View(model.CalendarViewWeek), rows[1][1].Text)
	assert.Equal(t, loc.View(model.CalendarViewDay), rows[1][0].Text)

	assert.Equal(t, "👥 All", rows[2][0].Text)
	assert.Equal(t, "staff:", rows[2][0].CallbackData)
	assert.Equal(t, selected+"John Davis", rows[2][2].Text)
	assert.Len(t, rows[3], 1)

	for _, row := range rows {
		for _, btn := range row {
			_, err := callbacks.Parse(btn.CallbackData)
			assert.NoError(t, err, btn.CallbackData)
		}
	}
}

func TestCalendar_SingleStaffHasNoFilter(t *testing.T) {
	kb := Calendar(locale.English(), model.CalendarViewDay, repository.DemoStaff()[:1], "")
	assert.Len(t, kb.InlineKeyboard, 2)
}

func TestChunked(t *testing.T) {
	kb := NewBuilder().Chunked(2, Button("a", "1"), Button("b", "2"), Button("c", "3")).Build()
	require.Len(t, kb.InlineKeyboard, 2)
	assert.Len(t, kb.InlineKeyboard[0], 2)
	assert.Len(t, kb.InlineKeyboard[1], 1)
}

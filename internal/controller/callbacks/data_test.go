package callbacks

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Freeeeeet/booking_calendar/internal/grid"
	"github.com/Freeeeeet/booking_calendar/internal/model"
)

func TestParse(t *testing.T) {
	tests := []struct {
		data string
		want Callback
	}{
		{Nav(grid.NavPrev), Callback{Kind: KindNav, Value: "prev"}},
		{Nav(grid.NavToday), Callback{Kind: KindNav, Value: "today"}},
		{View(model.CalendarViewAgenda), Callback{Kind: KindView, Value: "agenda"}},
		{Staff("staff-2"), Callback{Kind: KindStaff, Value: "staff-2"}},
		{Staff(""), Callback{Kind: KindStaff, Value: ""}},
		{Force(ForceSave), Callback{Kind: KindForce, Value: "save"}},
		{Noop, Callback{Kind: Noop}},
	}
	for _, tt := range tests {
		t.Run(tt.data, func(t *testing.T) {
			got, err := Parse(tt.data)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, data := range []string{
		"",
		"nav",
		"nav:back",
		"view:year",
		"force:maybe",
		"book_lesson:1",
		"staff:" + strings.Repeat("x", 64),
	} {
		_, err := Parse(data)
		assert.Error(t, err, data)
	}
}

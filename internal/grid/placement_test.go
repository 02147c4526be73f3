package grid

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func clock(h, m int) time.Time {
	return time.Date(2024, time.March, 4, h, m, 0, 0, time.UTC)
}

func TestPlace(t *testing.T) {
	p := Place(clock(9, 30), clock(10, 30))
	assert.InDelta(t, 570, p.Top, 1e-9)
	assert.InDelta(t, 60, p.Height, 1e-9)
	assert.InDelta(t, 630, p.Bottom(), 1e-9)

	p = Place(clock(0, 0), clock(2, 15))
	assert.InDelta(t, 0, p.Top, 1e-9)
	assert.InDelta(t, 135, p.Height, 1e-9)
}

func TestPlace_ShortAppointmentsKeepMinimumHeight(t *testing.T) {
	for _, end := range []time.Time{clock(10, 5), clock(10, 0), clock(9, 50)} {
		p := Place(clock(10, 0), end)
		assert.InDelta(t, 600, p.Top, 1e-9)
		assert.InDelta(t, MinBlockHeightPx, p.Height, 1e-9)
	}
}

func TestPlacementConfig_Custom(t *testing.T) {
	cfg := PlacementConfig{HourHeight: 40, MinDurationMinutes: 30, MinHeight: 10, DayStartHour: 8}

	p := cfg.Place(clock(9, 0), clock(9, 15))
	assert.InDelta(t, 40, p.Top, 1e-9)
	assert.InDelta(t, 20, p.Height, 1e-9)
}

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Freeeeeet/booking_calendar/internal/model"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("TELEGRAM_TOKEN", "123:abc")
	t.Setenv("TIMEZONE", "UTC")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "tenant-123", cfg.TenantID)
	assert.Equal(t, 0, cfg.DayStartHour)
	assert.Equal(t, 24, cfg.DayEndHour)
	assert.Equal(t, 60, cfg.SlotIntervalMinutes)
	assert.Equal(t, "calendar", cfg.KafkaTopicPrefix)
	assert.Equal(t, model.CalendarViewWeek, cfg.View())
	assert.Equal(t, "Bookings", cfg.CalendarName)
	assert.False(t, cfg.UseDatabase())
	assert.False(t, cfg.DigestEnabled())
	assert.Equal(t, time.UTC, cfg.Location())
	assert.Equal(t, time.Monday, cfg.CalendarLocale().WeekStart)
	assert.Equal(t, "en", cfg.CalendarLocale().Tag.String())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("TELEGRAM_TOKEN", "123:abc")
	t.Setenv("DB_DSN", "postgres://localhost/calendar")
	t.Setenv("LOCALE", "ru-RU")
	t.Setenv("WEEK_START", "sunday")
	t.Setenv("TIMEZONE", "Europe/Berlin")
	t.Setenv("DAY_START_HOUR", "8")
	t.Setenv("DAY_END_HOUR", "20")
	t.Setenv("SLOT_INTERVAL_MINUTES", "15")
	t.Setenv("DIGEST_CHAT_ID", "-100123")
	t.Setenv("DEFAULT_VIEW", "agenda")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.UseDatabase())
	assert.True(t, cfg.DigestEnabled())
	assert.Equal(t, "Europe/Berlin", cfg.Location().String())
	assert.Equal(t, time.Sunday, cfg.CalendarLocale().WeekStart)
	assert.Equal(t, "ru", cfg.CalendarLocale().Tag.String())
	assert.Equal(t, int64(-100123), cfg.DigestChatID)
	assert.Equal(t, model.CalendarViewAgenda, cfg.View())
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]map[string]string{
		"missing token":   {"TELEGRAM_TOKEN": ""},
		"inverted hours":  {"DAY_START_HOUR": "18", "DAY_END_HOUR": "9"},
		"hour overflow":   {"DAY_END_HOUR": "25"},
		"odd interval":    {"SLOT_INTERVAL_MINUTES": "25"},
		"zero interval":   {"SLOT_INTERVAL_MINUTES": "0"},
		"bad week start":  {"WEEK_START": "friday"},
		"bad timezone":    {"TIMEZONE": "Mars/Olympus"},
		"bad digest cron": {"DIGEST_CHAT_ID": "42", "DIGEST_CRON": "every morning"},
		"bad view":        {"DEFAULT_VIEW": "year"},
	}
	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			t.Setenv("TELEGRAM_TOKEN", "123:abc")
			t.Setenv("TIMEZONE", "UTC")
			for k, v := range env {
				t.Setenv(k, v)
			}

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

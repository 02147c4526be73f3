package config

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/robfig/cron/v3"

	"github.com/Freeeeeet/booking_calendar/internal/locale"
	"github.com/Freeeeeet/booking_calendar/internal/model"
)

type Config struct {
	TelegramToken string `envconfig:"TELEGRAM_TOKEN" required:"true"`
	DBDSN         string `envconfig:"DB_DSN"` // пусто - хранилище в памяти
	Environment   string `envconfig:"ENV" default:"development"`
	MigrationsDir string `envconfig:"MIGRATIONS_DIR"` // пусто - встроенные миграции

	TenantID            string `envconfig:"TENANT_ID" default:"tenant-123"`
	Locale              string `envconfig:"LOCALE" default:"en"`
	WeekStart           string `envconfig:"WEEK_START" default:"monday"`
	Timezone            string `envconfig:"TIMEZONE" default:"Local"`
	DayStartHour        int    `envconfig:"DAY_START_HOUR" default:"0"`
	DayEndHour          int    `envconfig:"DAY_END_HOUR" default:"24"`
	SlotIntervalMinutes int    `envconfig:"SLOT_INTERVAL_MINUTES" default:"60"`
	DefaultView         string `envconfig:"DEFAULT_VIEW" default:"week"`
	CalendarName        string `envconfig:"CALENDAR_NAME" default:"Bookings"`

	KafkaBrokers     string `envconfig:"KAFKA_BROKERS"` // через запятую, пусто - события выключены
	KafkaTopicPrefix string `envconfig:"KAFKA_TOPIC_PREFIX" default:"calendar"`

	DigestCron   string `envconfig:"DIGEST_CRON" default:"0 8 * * *"`
	DigestChatID int64  `envconfig:"DIGEST_CHAT_ID" default:"0"`

	location  *time.Location
	weekStart time.Weekday
}

func Load() (*Config, error) {
	// Пытаемся загрузить .env файл (игнорируем ошибку, если файла нет)
	if err := godotenv.Load(".env"); err != nil {
		log.Println("⚠️  No .env file found, using environment variables")
	} else {
		log.Println("✅ Loaded configuration from .env file")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("process env: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	var errs []error

	if c.TelegramToken == "" {
		errs = append(errs, errors.New("TELEGRAM_TOKEN is required but not set"))
	}
	if c.DayStartHour < 0 || c.DayEndHour > 24 || c.DayStartHour >= c.DayEndHour {
		errs = append(errs, fmt.Errorf("DAY_START_HOUR/DAY_END_HOUR must satisfy 0 <= start < end <= 24, got %d/%d",
			c.DayStartHour, c.DayEndHour))
	}
	if c.SlotIntervalMinutes <= 0 || c.SlotIntervalMinutes > 60 || 60%c.SlotIntervalMinutes != 0 {
		errs = append(errs, fmt.Errorf("SLOT_INTERVAL_MINUTES must divide 60, got %d", c.SlotIntervalMinutes))
	}

	if _, err := model.ParseCalendarView(c.DefaultView); err != nil {
		errs = append(errs, fmt.Errorf("DEFAULT_VIEW: %w", err))
	}

	ws, err := locale.ParseWeekStart(c.WeekStart)
	if err != nil {
		errs = append(errs, fmt.Errorf("WEEK_START: %w", err))
	}
	c.weekStart = ws

	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		errs = append(errs, fmt.Errorf("TIMEZONE: %w", err))
	}
	c.location = loc

	if c.DigestChatID != 0 {
		if _, err := cron.ParseStandard(c.DigestCron); err != nil {
			errs = append(errs, fmt.Errorf("DIGEST_CRON: %w", err))
		}
	}

	return errors.Join(errs...)
}

// Location возвращает часовой пояс календаря
func (c *Config) Location() *time.Location {
	if c.location == nil {
		return time.Local
	}
	return c.location
}

// CalendarLocale разрешает LOCALE и применяет поверх WEEK_START
func (c *Config) CalendarLocale() locale.Locale {
	return locale.Resolve(c.Locale).WithWeekStart(c.weekStart)
}

// View - вид календаря для нового чата
func (c *Config) View() model.CalendarView {
	return model.CalendarView(c.DefaultView)
}

func (c *Config) UseDatabase() bool {
	return c.DBDSN != ""
}

func (c *Config) DigestEnabled() bool {
	return c.DigestChatID != 0
}

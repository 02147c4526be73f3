package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-telegram/bot"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/Freeeeeet/booking_calendar/internal/app"
	"github.com/Freeeeeet/booking_calendar/internal/config"
	"github.com/Freeeeeet/booking_calendar/internal/controller"
	"github.com/Freeeeeet/booking_calendar/internal/events"
	"github.com/Freeeeeet/booking_calendar/internal/repository"
	"github.com/Freeeeeet/booking_calendar/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := app.NewLogger(cfg.Environment)
	defer logger.Sync()

	logger.Sugar().Infow("Starting booking calendar bot",
		"environment", cfg.Environment,
		"token_length", len(cfg.TelegramToken),
		"locale", cfg.Locale,
		"timezone", cfg.Location().String())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("Bot stopped with error", zap.Error(err))
	}
	logger.Info("Bot stopped")
}

func run(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	appointments, directory, closeStore, err := openStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	publisher := openPublisher(cfg, logger)
	defer func() {
		if err := publisher.Close(); err != nil {
			logger.Warn("Failed to close event publisher", zap.Error(err))
		}
	}()

	calendar := service.NewCalendarService(appointments, directory, publisher, service.Settings{
		Locale:       cfg.CalendarLocale(),
		Location:     cfg.Location(),
		TenantID:     cfg.TenantID,
		DayStartHour: cfg.DayStartHour,
		DayEndHour:   cfg.DayEndHour,
		SlotInterval: cfg.SlotIntervalMinutes,
	}, logger)

	b, err := bot.New(cfg.TelegramToken)
	if err != nil {
		return fmt.Errorf("create bot: %w", err)
	}

	botController := controller.NewBotController(b, calendar, cfg.View(), cfg.CalendarName, logger)
	if err := botController.RegisterHandlers(ctx); err != nil {
		return fmt.Errorf("register handlers: %w", err)
	}

	if cfg.DigestEnabled() {
		scheduler, err := app.NewScheduler(cfg.DigestCron, cfg.DigestChatID, cfg.Location(), botController, logger)
		if err != nil {
			return err
		}
		if err := scheduler.Start(ctx); err != nil {
			return err
		}
		defer scheduler.Stop()
	}

	// Блокируется до SIGINT/SIGTERM
	return botController.Start(ctx)
}

// openStore подключает PostgreSQL или, без DB_DSN, демо-хранилище в памяти
func openStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (
	repository.AppointmentRepository, repository.DirectoryRepository, func(), error,
) {
	if !cfg.UseDatabase() {
		logger.Warn("DB_DSN is not set, using in-memory demo data")
		store := repository.NewDemoStore(time.Now().In(cfg.Location()))
		return store, store, func() {}, nil
	}

	pool, err := pgxpool.New(ctx, cfg.DBDSN)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("create pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, nil, nil, fmt.Errorf("ping database: %w", err)
	}
	logger.Info("✅ Connected to database")

	migrator, err := app.NewMigrator(pool, cfg.MigrationsDir, logger)
	if err != nil {
		pool.Close()
		return nil, nil, nil, err
	}
	defer func() {
		if err := migrator.Close(); err != nil {
			logger.Warn("Failed to close migrator", zap.Error(err))
		}
	}()
	if err := migrator.Run(ctx); err != nil {
		pool.Close()
		return nil, nil, nil, err
	}

	return repository.NewPostgresAppointmentRepository(pool),
		repository.NewPostgresDirectoryRepository(pool),
		pool.Close,
		nil
}

func openPublisher(cfg *config.Config, logger *zap.Logger) events.Publisher {
	brokers := events.SplitBrokers(cfg.KafkaBrokers)
	if len(brokers) == 0 {
		logger.Info("KAFKA_BROKERS is not set, appointment events are disabled")
		return events.NopPublisher{}
	}

	logger.Info("Publishing appointment events to Kafka",
		zap.Strings("brokers", brokers),
		zap.String("topic_prefix", cfg.KafkaTopicPrefix))
	return events.NewKafkaPublisher(brokers, cfg.KafkaTopicPrefix, logger)
}

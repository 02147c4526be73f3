package app

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// DigestSender отправляет сводку записей за день в чат
type DigestSender interface {
	SendDigest(ctx context.Context, chatID int64, day time.Time) error
}

// Scheduler управляет фоновыми задачами
type Scheduler struct {
	cron     *cron.Cron
	schedule string
	chatID   int64
	sender   DigestSender
	logger   *zap.Logger
}

// NewScheduler создаёт планировщик ежедневной сводки по cron-выражению
func NewScheduler(schedule string, chatID int64, loc *time.Location, sender DigestSender, logger *zap.Logger) (*Scheduler, error) {
	if _, err := cron.ParseStandard(schedule); err != nil {
		return nil, fmt.Errorf("parse digest schedule %q: %w", schedule, err)
	}
	return &Scheduler{
		cron:     cron.New(cron.WithLocation(loc)),
		schedule: schedule,
		chatID:   chatID,
		sender:   sender,
		logger:   logger,
	}, nil
}

// Start запускает фоновые задачи
func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("Starting background scheduler",
		zap.String("digest_schedule", s.schedule),
		zap.Int64("chat_id", s.chatID))

	_, err := s.cron.AddFunc(s.schedule, func() {
		s.RunDigest(ctx, time.Now().In(s.cron.Location()))
	})
	if err != nil {
		return fmt.Errorf("schedule digest: %w", err)
	}

	s.cron.Start()
	return nil
}

// Stop останавливает планировщик и ждёт завершения запущенной задачи
func (s *Scheduler) Stop() {
	s.logger.Info("Stopping background scheduler")
	<-s.cron.Stop().Done()
}

// RunDigest отправляет сводку за day
func (s *Scheduler) RunDigest(ctx context.Context, day time.Time) {
	if ctx.Err() != nil {
		s.logger.Info("Digest task cancelled")
		return
	}

	if err := s.sender.SendDigest(ctx, s.chatID, day); err != nil {
		s.logger.Error("Failed to send digest", zap.Error(err), zap.Int64("chat_id", s.chatID))
		return
	}

	s.logger.Info("Digest sent", zap.Int64("chat_id", s.chatID), zap.Time("day", day))
}

package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeSender struct {
	calls []time.Time
	chat  int64
	err   error
}

func (f *fakeSender) SendDigest(_ context.Context, chatID int64, day time.Time) error {
	f.chat = chatID
	f.calls = append(f.calls, day)
	return f.err
}

func TestNewScheduler_InvalidSchedule(t *testing.T) {
	_, err := NewScheduler("every day", 1, time.UTC, &fakeSender{}, zap.NewNop())
	assert.Error(t, err)
}

func TestScheduler_RunDigest(t *testing.T) {
	sender := &fakeSender{}
	s, err := NewScheduler("0 8 * * *", 42, time.UTC, sender, zap.NewNop())
	require.NoError(t, err)

	day := time.Date(2024, time.March, 4, 8, 0, 0, 0, time.UTC)
	s.RunDigest(context.Background(), day)
	require.Len(t, sender.calls, 1)
	assert.Equal(t, int64(42), sender.chat)
	assert.Equal(t, day, sender.calls[0])

	sender.err = errors.New("telegram down")
	s.RunDigest(context.Background(), day)
	assert.Len(t, sender.calls, 2)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s.RunDigest(ctx, day)
	assert.Len(t, sender.calls, 2, "cancelled context skips the run")
}

func TestScheduler_StartStop(t *testing.T) {
	s, err := NewScheduler("@every 1h", 1, time.UTC, &fakeSender{}, zap.NewNop())
	require.NoError(t, err)

	require.NoError(t, s.Start(context.Background()))
	s.Stop()
}

package worker

import (
	"context"
	"errors"
	"time"

	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/legacy-reminder/internal/model"
	"github.com/aliskhannn/legacy-reminder/internal/rabbitmq/queue"
	"github.com/aliskhannn/legacy-reminder/internal/service/reminder"
)

//go:generate mockgen -source=scheduler.go -destination=../mocks/worker/scheduler_mock.go -package=mocks
type triggerPublisher interface {
	Publish(msg queue.TriggerMessage, strategy retry.Strategy) error
}

type reminderEngine interface {
	ProcessDueReminders(ctx context.Context) (model.RunResult, error)
}

// Scheduler fires a reminder run at start and then on every tick.
type Scheduler struct {
	interval time.Duration
	fire     func(ctx context.Context, at time.Time)
}

// NewQueueScheduler publishes a run trigger on every tick for the runner pool.
func NewQueueScheduler(pub triggerPublisher, interval time.Duration, strategy retry.Strategy) *Scheduler {
	return &Scheduler{
		interval: interval,
		fire: func(_ context.Context, at time.Time) {
			msg := queue.NewTriggerMessage("scheduler", at)
			if err := pub.Publish(msg, strategy); err != nil {
				zlog.Logger.Error().Err(err).Str("trigger", msg.ID.String()).Msg("failed to publish run trigger")
			}
		},
	}
}

// NewDirectScheduler runs the engine in-process on every tick.
func NewDirectScheduler(engine reminderEngine, interval time.Duration) *Scheduler {
	return &Scheduler{
		interval: interval,
		fire: func(ctx context.Context, _ time.Time) {
			res, err := engine.ProcessDueReminders(ctx)
			switch {
			case errors.Is(err, reminder.ErrRunInProgress):
				zlog.Logger.Info().Msg("another reminder run is in progress, skipping tick")
			case err != nil:
				zlog.Logger.Error().Err(err).Msg("reminder run failed")
			default:
				zlog.Logger.Info().Int("processed", res.Processed).Msg("scheduled reminder run completed")
			}
		},
	}
}

// Run blocks until ctx is done. Ticks that arrive while a run is still going are dropped.
func (s *Scheduler) Run(ctx context.Context) {
	if s.interval <= 0 {
		s.interval = time.Minute
	}

	zlog.Logger.Info().Dur("interval", s.interval).Msg("reminder scheduler started")

	s.fire(ctx, time.Now())

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zlog.Logger.Info().Msg("reminder scheduler stopped")
			return
		case t := <-ticker.C:
			s.fire(ctx, t)
		}
	}
}

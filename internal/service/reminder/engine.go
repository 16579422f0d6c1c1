package reminder

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"
	"golang.org/x/sync/errgroup"

	"github.com/aliskhannn/legacy-reminder/internal/lock"
	"github.com/aliskhannn/legacy-reminder/internal/model"
	"github.com/aliskhannn/legacy-reminder/internal/recurrence"
	reminderrepo "github.com/aliskhannn/legacy-reminder/internal/repository/reminder"
)

//go:generate mockgen -source=engine.go -destination=../../mocks/service/reminder/engine_mock.go -package=mocks

// ErrRunInProgress is returned when another engine run holds the run lock.
var ErrRunInProgress = errors.New("reminder run already in progress")

type dueStore interface {
	GetDueReminders(ctx context.Context, now time.Time) ([]model.Reminder, error)
	UpdateNextReminderDate(ctx context.Context, id uuid.UUID, expected, next time.Time) error
	CompleteReminder(ctx context.Context, id uuid.UUID, expected time.Time) error
	InsertNotificationLog(ctx context.Context, entry model.NotificationLogEntry) error
}

type dispatcher interface {
	Dispatch(ctx context.Context, channel model.NotificationType, r model.Reminder) error
}

type runLock interface {
	Acquire(ctx context.Context) (lock.Release, error)
}

// EngineConfig tunes a single engine run.
type EngineConfig struct {
	Workers         int            // reminders processed concurrently
	DispatchTimeout time.Duration  // per channel send
	WriteTimeout    time.Duration  // per store write
	Strategy        retry.Strategy // retry policy for fetching the due set
}

// Engine finds due reminders, notifies their owners and advances their schedules.
type Engine struct {
	store      dueStore
	dispatcher dispatcher
	lock       runLock
	cfg        EngineConfig
	now        func() time.Time
}

// NewEngine creates a recurrence engine. A nil lock disables overlap protection.
func NewEngine(store dueStore, d dispatcher, l runLock, cfg EngineConfig) *Engine {
	if l == nil {
		l = lock.Noop{}
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if cfg.DispatchTimeout <= 0 {
		cfg.DispatchTimeout = 10 * time.Second
	}
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = 5 * time.Second
	}
	if cfg.Strategy.Attempts <= 0 {
		cfg.Strategy.Attempts = 1
	}

	return &Engine{
		store:      store,
		dispatcher: d,
		lock:       l,
		cfg:        cfg,
		now:        time.Now,
	}
}

type outcome int

const (
	outcomeOK outcome = iota
	outcomeFailed
	outcomeSkipped
)

// ProcessDueReminders runs one pass over the due set.
//
// Every due reminder is handled independently: a failed send or write is recorded
// in the notification log and never stops the others. The schedule is advanced
// even when a send fails.
func (e *Engine) ProcessDueReminders(ctx context.Context) (model.RunResult, error) {
	release, err := e.lock.Acquire(ctx)
	if err != nil {
		if errors.Is(err, lock.ErrNotAcquired) {
			return model.RunResult{}, ErrRunInProgress
		}

		return model.RunResult{}, fmt.Errorf("acquire run lock: %w", err)
	}
	defer func() {
		if err := release(context.WithoutCancel(ctx)); err != nil {
			zlog.Logger.Warn().Err(err).Msg("failed to release run lock")
		}
	}()

	now := e.now()

	var due []model.Reminder
	err = retry.Do(func() error {
		var err error
		due, err = e.store.GetDueReminders(ctx, now)
		return err
	}, e.cfg.Strategy)
	if err != nil {
		return model.RunResult{}, fmt.Errorf("get due reminders: %w", err)
	}

	zlog.Logger.Info().Int("due", len(due)).Msg("processing due reminders")

	var (
		mu     sync.Mutex
		result model.RunResult
		g      errgroup.Group
	)

	g.SetLimit(e.cfg.Workers)

	for _, r := range due {
		r := r
		g.Go(func() error {
			out := e.processReminder(ctx, r)

			mu.Lock()
			defer mu.Unlock()

			switch out {
			case outcomeSkipped:
				result.Skipped++
			case outcomeFailed:
				result.Processed++
				result.Failed++
			default:
				result.Processed++
			}

			return nil
		})
	}

	_ = g.Wait()

	zlog.Logger.Info().
		Int("processed", result.Processed).
		Int("failed", result.Failed).
		Int("skipped", result.Skipped).
		Msg("reminder run finished")

	return result, nil
}

func (e *Engine) processReminder(ctx context.Context, r model.Reminder) outcome {
	if ctx.Err() != nil {
		return outcomeSkipped
	}

	log := zlog.Logger.With().Str("reminder_id", r.ID.String()).Logger()
	out := outcomeOK

	for _, channel := range r.Channels() {
		err := e.dispatch(ctx, channel, r)
		if err != nil {
			out = outcomeFailed
			log.Warn().Err(err).Str("channel", string(channel)).Msg("notification failed")
		}

		e.appendLog(ctx, model.NewLogEntry(r.ID, e.now(), channel, err))
	}

	step, err := recurrence.Advance(r)
	if err != nil {
		log.Error().Err(err).Msg("failed to advance reminder")
		e.appendLog(ctx, model.NewLogEntry(r.ID, e.now(), model.NotificationSystem, err))

		return outcomeFailed
	}

	if err := e.writeStep(ctx, r, step); err != nil {
		if errors.Is(err, reminderrepo.ErrReminderChanged) {
			log.Info().Msg("reminder changed since it was read, skipping")
			return outcomeSkipped
		}

		log.Error().Err(err).Msg("failed to advance reminder")
		e.appendLog(ctx, model.NewLogEntry(r.ID, e.now(), model.NotificationSystem, err))

		return outcomeFailed
	}

	return out
}

func (e *Engine) dispatch(ctx context.Context, channel model.NotificationType, r model.Reminder) error {
	ctx, cancel := context.WithTimeout(ctx, e.cfg.DispatchTimeout)
	defer cancel()

	return e.dispatcher.Dispatch(ctx, channel, r)
}

func (e *Engine) writeStep(ctx context.Context, r model.Reminder, step recurrence.Step) error {
	ctx, cancel := context.WithTimeout(ctx, e.cfg.WriteTimeout)
	defer cancel()

	if step.Complete {
		return e.store.CompleteReminder(ctx, r.ID, r.NextReminderDate)
	}

	return e.store.UpdateNextReminderDate(ctx, r.ID, r.NextReminderDate, step.Next)
}

func (e *Engine) appendLog(ctx context.Context, entry model.NotificationLogEntry) {
	ctx, cancel := context.WithTimeout(ctx, e.cfg.WriteTimeout)
	defer cancel()

	if err := e.store.InsertNotificationLog(ctx, entry); err != nil {
		zlog.Logger.Error().Err(err).
			Str("reminder_id", entry.ReminderID.String()).
			Str("type", string(entry.NotificationType)).
			Msg("failed to write notification log")
	}
}

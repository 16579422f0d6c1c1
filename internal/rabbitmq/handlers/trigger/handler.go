package trigger

import (
	"context"
	"errors"

	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/legacy-reminder/internal/model"
	"github.com/aliskhannn/legacy-reminder/internal/rabbitmq/queue"
	"github.com/aliskhannn/legacy-reminder/internal/service/reminder"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/rabbitmq/handlers/trigger/mock.go -package=mocks
type reminderEngine interface {
	ProcessDueReminders(ctx context.Context) (model.RunResult, error)
}

type retryPublisher interface {
	PublishRetry(msg queue.TriggerMessage, strategy retry.Strategy) error
}

type Handler struct {
	engine      reminderEngine
	retries     retryPublisher
	maxRedrives int
}

// NewHandler creates a trigger handler. A failed run is parked in the retry queue
// at most maxRedrives times before the trigger is dropped.
func NewHandler(engine reminderEngine, retries retryPublisher, maxRedrives int) *Handler {
	return &Handler{
		engine:      engine,
		retries:     retries,
		maxRedrives: maxRedrives,
	}
}

// HandleMessage runs the engine once for a trigger.
// A run already in progress elsewhere covers this trigger and is not retried.
func (h *Handler) HandleMessage(ctx context.Context, msg queue.TriggerMessage, strategy retry.Strategy) {
	zlog.Logger.Info().Msgf("Handle Message: Got %s trigger %s requested at %v", msg.Source, msg.ID, msg.RequestedAt)

	if ctx.Err() != nil {
		return
	}

	// one engine run per delivery; failed runs are re-driven through the retry queue
	result, err := h.engine.ProcessDueReminders(ctx)
	if errors.Is(err, reminder.ErrRunInProgress) {
		zlog.Logger.Info().Str("trigger", msg.ID.String()).Msg("another reminder run is in progress, skipping")
		return
	}

	if err != nil {
		zlog.Logger.Error().Err(err).Str("trigger", msg.ID.String()).Int("attempt", msg.Attempt).Msg("reminder run failed")
		h.redrive(ctx, msg, strategy)
		return
	}

	zlog.Logger.Info().
		Str("trigger", msg.ID.String()).
		Int("processed", result.Processed).
		Int("failed", result.Failed).
		Int("skipped", result.Skipped).
		Msg("Handle Message: reminder run completed")
}

func (h *Handler) redrive(ctx context.Context, msg queue.TriggerMessage, strategy retry.Strategy) {
	if ctx.Err() != nil {
		return
	}

	if msg.Attempt >= h.maxRedrives {
		zlog.Logger.Warn().Str("trigger", msg.ID.String()).Msg("trigger out of retries, dropping")
		return
	}

	msg.Attempt++
	if err := h.retries.PublishRetry(msg, strategy); err != nil {
		zlog.Logger.Error().Err(err).Str("trigger", msg.ID.String()).Msg("failed to publish trigger to retry queue")
		return
	}

	zlog.Logger.Info().Str("trigger", msg.ID.String()).Int("attempt", msg.Attempt).
		Dur("delay", queue.RetryDelay).Msg("trigger scheduled for retry")
}

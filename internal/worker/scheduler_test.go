package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/retry"

	mocks "github.com/aliskhannn/legacy-reminder/internal/mocks/worker"
	"github.com/aliskhannn/legacy-reminder/internal/model"
	"github.com/aliskhannn/legacy-reminder/internal/rabbitmq/queue"
	"github.com/aliskhannn/legacy-reminder/internal/service/reminder"
)

func runFor(t *testing.T, s *Scheduler, d time.Duration) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), d)
	defer cancel()

	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(d + time.Second):
		t.Fatal("scheduler did not stop")
	}
}

func TestQueueScheduler_PublishesImmediately(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPub := mocks.NewMocktriggerPublisher(ctrl)
	strategy := retry.Strategy{Attempts: 1, Delay: time.Millisecond}

	var published atomic.Int32
	mockPub.EXPECT().Publish(gomock.Any(), strategy).DoAndReturn(
		func(msg queue.TriggerMessage, _ retry.Strategy) error {
			assert.Equal(t, "scheduler", msg.Source)
			published.Add(1)
			return nil
		},
	).MinTimes(1)

	runFor(t, NewQueueScheduler(mockPub, time.Hour, strategy), 50*time.Millisecond)

	assert.Equal(t, int32(1), published.Load())
}

func TestQueueScheduler_PublishErrorKeepsTicking(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPub := mocks.NewMocktriggerPublisher(ctrl)
	strategy := retry.Strategy{Attempts: 1, Delay: time.Millisecond}

	var calls atomic.Int32
	mockPub.EXPECT().Publish(gomock.Any(), strategy).DoAndReturn(
		func(queue.TriggerMessage, retry.Strategy) error {
			calls.Add(1)
			return errors.New("channel closed")
		},
	).MinTimes(2)

	runFor(t, NewQueueScheduler(mockPub, 10*time.Millisecond, strategy), 100*time.Millisecond)

	assert.GreaterOrEqual(t, calls.Load(), int32(2))
}

func TestDirectScheduler_RunsEngine(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockEngine := mocks.NewMockreminderEngine(ctrl)

	var runs atomic.Int32
	mockEngine.EXPECT().ProcessDueReminders(gomock.Any()).DoAndReturn(
		func(context.Context) (model.RunResult, error) {
			if runs.Add(1) == 1 {
				return model.RunResult{Processed: 2}, nil
			}
			return model.RunResult{}, reminder.ErrRunInProgress
		},
	).MinTimes(2)

	runFor(t, NewDirectScheduler(mockEngine, 10*time.Millisecond), 100*time.Millisecond)

	require.GreaterOrEqual(t, runs.Load(), int32(2))
}

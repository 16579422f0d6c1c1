package worker

import (
	"context"
	"sync"

	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/legacy-reminder/internal/rabbitmq/queue"
)

//go:generate mockgen -source=runner.go -destination=../mocks/worker/runner_mock.go -package=mocks
type triggerConsumer interface {
	Consume(ctx context.Context, out chan<- queue.TriggerMessage, strategy retry.Strategy) error
}

type messageHandler interface {
	HandleMessage(ctx context.Context, msg queue.TriggerMessage, strategy retry.Strategy)
}

// Runner consumes run triggers and hands them to a pool of workers.
type Runner struct {
	queue   triggerConsumer
	handler messageHandler
}

func NewRunner(q triggerConsumer, h messageHandler) *Runner {
	return &Runner{
		queue:   q,
		handler: h,
	}
}

// Run blocks until ctx is done and every worker has returned.
func (r *Runner) Run(ctx context.Context, strategy retry.Strategy, workerCount int) {
	if workerCount <= 0 {
		workerCount = 1
	}

	var wg sync.WaitGroup
	msgChan := make(chan queue.TriggerMessage, workerCount*10)

	go func() {
		if err := r.queue.Consume(ctx, msgChan, strategy); err != nil {
			zlog.Logger.Error().Err(err).Msg("failed to consume messages")
		}
	}()

	wg.Add(workerCount)
	for i := 0; i < workerCount; i++ {
		go func(id int) {
			defer wg.Done()

			zlog.Logger.Printf("worker-%d started", id)

			for {
				select {
				case <-ctx.Done():
					zlog.Logger.Printf("worker-%d shutting down", id)
					return
				case msg, ok := <-msgChan:
					if !ok {
						zlog.Logger.Printf("worker-%d channel closed, shutting down", id)
						return
					}

					r.handler.HandleMessage(ctx, msg, strategy)
				}
			}
		}(i)
	}

	<-ctx.Done()
	wg.Wait()
	zlog.Logger.Print("runner stopped")
}

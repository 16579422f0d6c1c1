package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/rabbitmq"
	"github.com/wb-go/wbf/redis"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/legacy-reminder/internal/api/handlers/reminder"
	"github.com/aliskhannn/legacy-reminder/internal/api/router"
	"github.com/aliskhannn/legacy-reminder/internal/api/server"
	"github.com/aliskhannn/legacy-reminder/internal/config"
	"github.com/aliskhannn/legacy-reminder/internal/dispatch"
	"github.com/aliskhannn/legacy-reminder/internal/lock"
	"github.com/aliskhannn/legacy-reminder/internal/migrations"
	"github.com/aliskhannn/legacy-reminder/internal/model"
	"github.com/aliskhannn/legacy-reminder/internal/rabbitmq/handlers/trigger"
	"github.com/aliskhannn/legacy-reminder/internal/rabbitmq/queue"
	reminderrepo "github.com/aliskhannn/legacy-reminder/internal/repository/reminder"
	remindersvc "github.com/aliskhannn/legacy-reminder/internal/service/reminder"
	"github.com/aliskhannn/legacy-reminder/internal/worker"
	"github.com/aliskhannn/legacy-reminder/pkg/email"
	"github.com/aliskhannn/legacy-reminder/pkg/sms"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	zlog.Init()
	cfg := config.Must()
	val := validator.New()

	opts := &dbpg.Options{
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}

	slaveDSNs := make([]string, 0, len(cfg.Database.Slaves))
	for _, s := range cfg.Database.Slaves {
		slaveDSNs = append(slaveDSNs, s.DSN())
	}

	db, err := dbpg.New(cfg.Database.Master.DSN(), slaveDSNs, opts)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to database")
	}

	if err := migrations.Up(ctx, db.Master); err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to apply migrations")
	}

	repo := reminderrepo.NewRepository(db)

	var runLock interface {
		Acquire(ctx context.Context) (lock.Release, error)
	} = lock.Noop{}

	closeRedis := func() error { return nil }
	if cfg.Redis.Address != "" {
		rdb := redis.New(cfg.Redis.Address, cfg.Redis.Password, cfg.Redis.Database)
		if err := rdb.Ping(ctx).Err(); err != nil {
			zlog.Logger.Fatal().Err(err).Msg("failed to connect to redis")
		}

		runLock = lock.NewRedisLock(rdb, cfg.Redis.LockKey, cfg.Engine.LockTTL)
		closeRedis = rdb.Close
	} else {
		zlog.Logger.Warn().Msg("redis is not configured, overlapping reminder runs are not prevented")
	}

	senders := map[model.NotificationType]dispatch.Sender{
		model.NotificationEmail: dispatch.NewEmailSender(email.NewClient(
			cfg.Email.SMTPHost,
			cfg.Email.SMTPPort,
			cfg.Email.Username,
			cfg.Email.Password,
			cfg.Email.From,
		)),
	}
	if cfg.SMS.URL != "" {
		senders[model.NotificationSMS] = dispatch.NewSMSSender(
			sms.NewClient(cfg.SMS.URL, cfg.SMS.Token, cfg.SMS.From, cfg.SMS.Timeout),
		)
	}

	engine := remindersvc.NewEngine(repo, dispatch.NewDispatcher(senders), runLock, remindersvc.EngineConfig{
		Workers:         cfg.Workers.Count,
		DispatchTimeout: cfg.Engine.DispatchTimeout,
		WriteTimeout:    cfg.Engine.WriteTimeout,
		Strategy:        cfg.Retry,
	})
	service := remindersvc.NewService(repo)

	var (
		wg      sync.WaitGroup
		closers []func()
	)

	scheduler := worker.NewDirectScheduler(engine, cfg.Scheduler.Interval)

	if cfg.RabbitMQ.Enabled {
		conn, err := rabbitmq.Connect(cfg.RabbitMQ.URL(), cfg.RabbitMQ.Retries, cfg.RabbitMQ.Pause)
		if err != nil {
			zlog.Logger.Fatal().Err(err).Msg("failed to connect to rabbitmq")
		}

		ch, err := conn.Channel()
		if err != nil {
			zlog.Logger.Fatal().Err(err).Msg("failed to open channel")
		}

		q, err := queue.NewTriggerQueue(ch)
		if err != nil {
			zlog.Logger.Fatal().Err(err).Msg("failed to create trigger queue")
		}

		runner := worker.NewRunner(q, trigger.NewHandler(engine, q, cfg.RabbitMQ.Redrives))

		wg.Add(1)
		go func() {
			defer wg.Done()
			runner.Run(ctx, cfg.Retry, cfg.Workers.Count)
		}()

		scheduler = worker.NewQueueScheduler(q, cfg.Scheduler.Interval, cfg.Retry)

		closers = append(closers, func() {
			if err := ch.Close(); err != nil {
				zlog.Logger.Error().Err(err).Msg("failed to close RabbitMQ channel")
			}

			if err := conn.Close(); err != nil {
				zlog.Logger.Error().Err(err).Msg("failed to close RabbitMQ connection")
			}
		})
	}

	if cfg.Scheduler.Enabled {
		wg.Add(1)
		go func() {
			defer wg.Done()
			scheduler.Run(ctx)
		}()
	}

	r := router.New(reminder.NewHandler(service, engine, val))
	s := server.New(":"+cfg.Server.HTTPPort, r)

	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Logger.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	zlog.Logger.Info().Str("port", cfg.Server.HTTPPort).Msg("reminder service started")

	<-ctx.Done()
	zlog.Logger.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	zlog.Logger.Info().Msg("shutting down server")
	if err := s.Shutdown(shutdownCtx); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to shutdown server")
	}

	if errors.Is(shutdownCtx.Err(), context.DeadlineExceeded) {
		zlog.Logger.Info().Msg("timeout exceeded, forcing shutdown")
	}

	wg.Wait()

	for _, closeFn := range closers {
		closeFn()
	}

	if err := closeRedis(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close redis")
	}

	if err := db.Master.Close(); err != nil {
		zlog.Logger.Printf("failed to close master DB: %v", err)
	}

	for i, s := range db.Slaves {
		if err := s.Close(); err != nil {
			zlog.Logger.Printf("failed to close slave DB %d: %v", i, err)
		}
	}
}

package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	_ "github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/rabbitmq"
	"github.com/wb-go/wbf/redis"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/notification-pipeline/internal/api/handlers/delivery"
	"github.com/aliskhannn/notification-pipeline/internal/api/handlers/notification"
	prefhandler "github.com/aliskhannn/notification-pipeline/internal/api/handlers/preference"
	statushandler "github.com/aliskhannn/notification-pipeline/internal/api/handlers/status"
	"github.com/aliskhannn/notification-pipeline/internal/api/router"
	"github.com/aliskhannn/notification-pipeline/internal/api/server"
	"github.com/aliskhannn/notification-pipeline/internal/breaker"
	"github.com/aliskhannn/notification-pipeline/internal/broadcast"
	"github.com/aliskhannn/notification-pipeline/internal/channel"
	"github.com/aliskhannn/notification-pipeline/internal/config"
	eventhandler "github.com/aliskhannn/notification-pipeline/internal/kafka/handlers/notification"
	"github.com/aliskhannn/notification-pipeline/internal/kafka/topic"
	"github.com/aliskhannn/notification-pipeline/internal/metrics"
	"github.com/aliskhannn/notification-pipeline/internal/migrations"
	"github.com/aliskhannn/notification-pipeline/internal/model"
	retryrelay "github.com/aliskhannn/notification-pipeline/internal/rabbitmq/handlers/retry"
	"github.com/aliskhannn/notification-pipeline/internal/rabbitmq/queue"
	"github.com/aliskhannn/notification-pipeline/internal/repository/deliverylog"
	prefrepo "github.com/aliskhannn/notification-pipeline/internal/repository/preference"
	"github.com/aliskhannn/notification-pipeline/internal/service/escalation"
	"github.com/aliskhannn/notification-pipeline/internal/service/idempotency"
	"github.com/aliskhannn/notification-pipeline/internal/service/pipeline"
	"github.com/aliskhannn/notification-pipeline/internal/service/preference"
	"github.com/aliskhannn/notification-pipeline/internal/service/ratelimit"
	"github.com/aliskhannn/notification-pipeline/internal/service/status"
	"github.com/aliskhannn/notification-pipeline/internal/store"
	"github.com/aliskhannn/notification-pipeline/internal/worker"
	"github.com/aliskhannn/notification-pipeline/pkg/email"
	"github.com/aliskhannn/notification-pipeline/pkg/telegram"
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

	rdb := redis.New(cfg.Redis.Address, cfg.Redis.Password, cfg.Redis.Database)
	if err := rdb.Ping(ctx).Err(); err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to redis")
	}

	kv := store.NewRedisStore(rdb.Client)
	broadcaster := broadcast.NewRedisBroadcaster(rdb.Client, broadcast.Destinations{
		UserPrefix: cfg.Status.UserPrefix,
		Broadcast:  cfg.Status.BroadcastChannel,
		Metrics:    cfg.Status.MetricsChannel,
	})

	publisher := topic.NewPublisher(cfg.Kafka.Brokers, topic.Topics{
		Input:  cfg.Kafka.Topics.Input,
		Output: cfg.Kafka.Topics.Output,
		DLQ:    cfg.Kafka.Topics.DLQ,
	}, cfg.Retry)
	consumer := topic.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.Topics.Input, cfg.Kafka.GroupID, cfg.Retry)

	guard := idempotency.NewGuard(kv, cfg.Idempotency.TTL)
	limiter := ratelimit.NewLimiter(kv, map[model.Channel]int64{
		model.ChannelEmail:   cfg.RateLimit.Email,
		model.ChannelSMS:     cfg.RateLimit.SMS,
		model.ChannelPush:    cfg.RateLimit.Push,
		model.ChannelWebhook: cfg.RateLimit.Webhook,
	})

	prefRepo := prefrepo.NewRepository(db)
	resolver := preference.NewResolver(prefRepo)
	logRepo := deliverylog.NewRepository(db)

	emailClient := email.NewClient(
		cfg.Email.SMTPHost,
		cfg.Email.SMTPPort,
		cfg.Email.Username,
		cfg.Email.Password,
		cfg.Email.From,
	)
	telegramClient := telegram.NewClient(cfg.Telegram.Token)

	dispatcher := channel.NewDispatcher(
		breaker.Config{
			FailureThreshold: cfg.Breaker.FailureThreshold,
			Cooldown:         cfg.Breaker.Cooldown,
		},
		[]channel.Channel{
			channel.NewEmail(emailClient),
			channel.NewSMS(channel.LogSender{Provider: "sms"}),
			channel.NewPush(telegramClient, cfg.Telegram.ChatID),
			channel.NewWebhook(cfg.Webhook.Timeout, cfg.Webhook.Retry),
		},
		breaker.WithListener(func(name string, _, to breaker.State) {
			metrics.SetBreakerState(name, int(to))
		}),
	)

	backoff := escalation.Backoff{
		Initial:    cfg.Escalation.Policy.Delay,
		Multiplier: cfg.Escalation.Policy.Backoff,
		Max:        cfg.Escalation.MaxInterval,
	}

	var (
		sched     escalation.Scheduler
		timer     *escalation.TimerScheduler
		rmqChan   *rabbitmq.Channel
		closeConn func() error
		relayDone = make(chan struct{})
	)

	switch cfg.Escalation.Scheduler {
	case "rabbitmq":
		conn, err := rabbitmq.Connect(cfg.RabbitMQ.URL(), cfg.RabbitMQ.Retries, cfg.RabbitMQ.Pause)
		if err != nil {
			zlog.Logger.Fatal().Err(err).Msg("failed to connect to rabbitmq")
		}
		closeConn = conn.Close

		rmqChan, err = conn.Channel()
		if err != nil {
			zlog.Logger.Fatal().Err(err).Msg("failed to open channel")
		}

		q, err := queue.NewRetryQueue(rmqChan, queue.Topology{
			Exchange:    cfg.RabbitMQ.Exchange,
			DelayPrefix: cfg.RabbitMQ.DelayPrefix,
			ReadyQueue:  cfg.RabbitMQ.ReadyQueue,
			Delays:      backoff.Delays(cfg.Escalation.Policy.Attempts),
		}, cfg.Retry)
		if err != nil {
			zlog.Logger.Fatal().Err(err).Msg("failed to create retry queue")
		}

		sched = q

		relay := retryrelay.NewRelay(q, publisher)
		go func() {
			relay.Run(ctx)
			close(relayDone)
		}()
	default:
		timer = escalation.NewTimerScheduler(publisher)
		sched = timer
		close(relayDone)
	}

	escalator := escalation.NewEscalator(guard, sched, publisher, backoff, cfg.Escalation.Policy.Attempts)
	recorder := status.NewRecorder(logRepo, broadcaster)
	processor := pipeline.NewProcessor(guard, resolver, limiter, dispatcher, recorder, escalator, publisher)

	pool := worker.NewPool(consumer, eventhandler.NewHandler(processor), cfg.Workers.Count)
	poolDone := make(chan struct{})
	go func() {
		pool.Run(ctx)
		close(poolDone)
	}()

	reporter := status.NewReporter(broadcaster, dispatcher, cfg.Status.MetricsInterval)
	go reporter.Run(ctx)

	r := router.New(router.Handlers{
		Notification: notification.NewHandler(publisher, val),
		Delivery:     delivery.NewHandler(logRepo, guard),
		Preference:   prefhandler.NewHandler(prefRepo, resolver, val),
		Status:       statushandler.NewHandler(broadcaster),
	})
	s := server.New(cfg.Server.HTTPPort, r)

	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Logger.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	<-ctx.Done()
	zlog.Logger.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	zlog.Logger.Info().Msg("shutting down server")
	if err := s.Shutdown(shutdownCtx); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to shutdown server")
	}

	// In-flight passes may still schedule retries, so the pool drains first.
	<-poolDone
	<-relayDone

	if timer != nil {
		if err := timer.Close(shutdownCtx); err != nil {
			zlog.Logger.Error().Err(err).Msg("failed to flush pending retries")
		}
	}

	if errors.Is(shutdownCtx.Err(), context.DeadlineExceeded) {
		zlog.Logger.Info().Msg("timeout exceeded, forcing shutdown")
	}

	if err := consumer.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close kafka consumer")
	}

	if err := publisher.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close kafka publisher")
	}

	if rmqChan != nil {
		if err := rmqChan.Close(); err != nil {
			zlog.Logger.Error().Err(err).Msg("failed to close RabbitMQ channel")
		}
	}

	if closeConn != nil {
		if err := closeConn(); err != nil {
			zlog.Logger.Error().Err(err).Msg("failed to close RabbitMQ connection")
		}
	}

	if err := rdb.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close redis")
	}

	if err := db.Master.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close master DB")
	}

	for i, s := range db.Slaves {
		if err := s.Close(); err != nil {
			zlog.Logger.Error().Err(err).Int("slave", i).Msg("failed to close slave DB")
		}
	}
}

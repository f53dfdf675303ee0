package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ghuser/bizzy/pkg/app"
	"github.com/ghuser/bizzy/pkg/cache"
	"github.com/ghuser/bizzy/pkg/config"
	"github.com/ghuser/bizzy/pkg/database"
	"github.com/ghuser/bizzy/pkg/events"
	"github.com/ghuser/bizzy/pkg/logger"
	"github.com/ghuser/bizzy/pkg/telemetry"
	"github.com/ghuser/bizzy/pkg/workflows"
	accountsvcs "github.com/ghuser/bizzy/services/account/application/services"
	assistantsvcs "github.com/ghuser/bizzy/services/assistant/application/services"
	inventorysvcs "github.com/ghuser/bizzy/services/inventory/application/services"
	inventorysubs "github.com/ghuser/bizzy/services/inventory/application/subscribers"
	notificationsvcs "github.com/ghuser/bizzy/services/notification/application/services"
	notificationsubs "github.com/ghuser/bizzy/services/notification/application/subscribers"
	notificationworkflows "github.com/ghuser/bizzy/services/notification/application/workflows"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := config.ValidateForProduction(cfg); err != nil {
		slog.Error("production config validation failed", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	otelShutdown, _, err := telemetry.Setup(ctx, cfg, telemetry.ComponentWorker)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(context.Background()) //nolint:errcheck

	if err := telemetry.SetupSentry(cfg, telemetry.ComponentWorker); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	pool, err := database.NewPool(ctx, cfg.DefinitionDatabaseURL, log)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer pool.Close()
	log.Info("database pool connected")

	eventBus, err := events.NewEventBus(cfg, log)
	if err != nil {
		log.Error("failed to setup event bus", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer eventBus.Close() //nolint:errcheck

	redisClient, err := cache.NewRedisClient(ctx, cfg)
	if err != nil {
		log.Error("failed to connect to redis", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer redisClient.Close() //nolint:errcheck
	log.Info("redis connected")

	var temporalClient *workflows.TemporalClient
	if cfg.TemporalEnabled {
		temporalClient, err = workflows.NewTemporalClient(ctx, workflows.OptionsFromConfig(cfg), log)
		if err != nil {
			log.Error("failed to initialize temporal client", "error", err)
			os.Exit(1) //nolint:gocritic
		}
		defer temporalClient.Close()
	}

	appConfig := &app.Application{
		Config:         cfg,
		Db:             pool,
		Logger:         log,
		EventBus:       eventBus,
		Redis:          redisClient,
		TemporalClient: temporalClient,
	}

	accounts := accountsvcs.New(appConfig)
	assistant := assistantsvcs.New(appConfig, nil)
	notifications := notificationsvcs.New(appConfig)
	inventory := inventorysvcs.New(appConfig, accounts.Account)

	subs := append(
		notificationsubs.All(notifications, log),
		inventorysubs.All(inventory, log)...,
	)
	if err := registerSubscribers(ctx, appConfig, subs); err != nil {
		log.Error("failed to register subscribers", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	activities := &notificationworkflows.Activities{
		Recommender:   assistant.Assistant,
		Notifications: notifications.Notification,
	}
	schedCfg := notificationworkflows.SchedulerConfig{
		Accounts:   accounts.Account,
		Activities: activities,
		Interval:   cfg.RecommendationInterval,
	}
	if temporalClient != nil {
		w := temporalClient.NewWorker()
		notificationworkflows.Register(w, activities)
		if err := w.Start(); err != nil {
			log.Error("failed to start temporal worker", "error", err)
			os.Exit(1) //nolint:gocritic
		}
		defer w.Stop()
		schedCfg.Starter = temporalClient.Client
		schedCfg.TaskQueue = temporalClient.TaskQueue
	}
	go notificationworkflows.NewScheduler(schedCfg, log).Run(ctx)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down worker...")
	cancel()

	// EventBus.Close() (via defer) waits up to 30s for in-flight handlers.
	log.Info("worker stopped")
}

// registerSubscribers wires all domain event handlers.
func registerSubscribers(ctx context.Context, a *app.Application, subs []events.Subscription) error {
	topics := make([]string, 0, len(subs))
	for _, sub := range subs {
		errCh, err := a.EventBus.Subscribe(ctx, sub.Topic, sub.Handler)
		if err != nil {
			return err
		}

		// Drain subscriber errors in background so the channel never blocks.
		go func(topic string) {
			for err := range errCh {
				a.Logger.ErrorContext(ctx, "subscriber error", "topic", topic, "error", err)
			}
		}(sub.Topic)
		topics = append(topics, sub.Topic)
	}

	a.Logger.Info("event subscribers registered", "topics", topics)
	return nil
}

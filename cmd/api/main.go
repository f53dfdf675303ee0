package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	_ "github.com/ghuser/bizzy/docs/swagger"
	"github.com/ghuser/bizzy/pkg/app"
	"github.com/ghuser/bizzy/pkg/auth"
	"github.com/ghuser/bizzy/pkg/cache"
	"github.com/ghuser/bizzy/pkg/config"
	"github.com/ghuser/bizzy/pkg/database"
	"github.com/ghuser/bizzy/pkg/events"
	"github.com/ghuser/bizzy/pkg/httpx"
	"github.com/ghuser/bizzy/pkg/logger"
	"github.com/ghuser/bizzy/pkg/storage"
	"github.com/ghuser/bizzy/pkg/telemetry"
	accountapi "github.com/ghuser/bizzy/services/account/application/api"
	accountsvcs "github.com/ghuser/bizzy/services/account/application/services"
	assistantapi "github.com/ghuser/bizzy/services/assistant/application/api"
	assistantsvcs "github.com/ghuser/bizzy/services/assistant/application/services"
	dashboardapi "github.com/ghuser/bizzy/services/dashboard/application/api"
	dashboardsvcs "github.com/ghuser/bizzy/services/dashboard/application/services"
	documentapi "github.com/ghuser/bizzy/services/document/application/api"
	documentsvcs "github.com/ghuser/bizzy/services/document/application/services"
	inventoryapi "github.com/ghuser/bizzy/services/inventory/application/api"
	inventorysvcs "github.com/ghuser/bizzy/services/inventory/application/services"
	notificationapi "github.com/ghuser/bizzy/services/notification/application/api"
	notificationsvcs "github.com/ghuser/bizzy/services/notification/application/services"
	taskapi "github.com/ghuser/bizzy/services/task/application/api"
	tasksvcs "github.com/ghuser/bizzy/services/task/application/services"
	transactionapi "github.com/ghuser/bizzy/services/transaction/application/api"
	transactionsvcs "github.com/ghuser/bizzy/services/transaction/application/services"
)

// @title					Bizzy API
// @version				1.0
// @description			Small-business backend: inventory, tasks, transactions, documents, assistant and notifications.
// @termsOfService			http://swagger.io/terms/
// @contact.name			API Support
// @contact.email			support@bizzy.example.com
// @license.name			MIT
// @license.url			https://opensource.org/licenses/MIT
// @host					localhost:8080
// @BasePath				/api
// @schemes				http https
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

	// Telemetry: OTel tracing + metrics
	ctx := context.Background()
	otelShutdown, metricsHandler, err := telemetry.Setup(ctx, cfg, telemetry.ComponentAPI)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(ctx) //nolint:errcheck

	// Crash reporting: Sentry (optional; log and continue on failure)
	if err := telemetry.SetupSentry(cfg, telemetry.ComponentAPI); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	pool, err := database.NewPool(ctx, cfg.DefinitionDatabaseURL, log)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1) //nolint:gocritic // intentional: startup failure, deferred flushes are best-effort
	}
	defer pool.Close()
	log.Info("database pool connected")

	eventBus, err := events.NewEventBusWithForwarder(cfg, log)
	if err != nil {
		log.Error("failed to setup event bus", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer eventBus.Close() //nolint:errcheck

	if err := eventBus.StartForwarder(ctx); err != nil {
		log.Error("failed to start event forwarder", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	redisClient, err := cache.NewRedisClient(ctx, cfg)
	if err != nil {
		log.Error("failed to connect to redis", "error", err)
		os.Exit(1) //nolint:gocritic // intentional: startup failure
	}
	defer redisClient.Close() //nolint:errcheck
	log.Info("redis connected")

	store, err := storage.New(ctx, cfg.DocumentStorageURL)
	if err != nil {
		log.Error("failed to open document storage", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	log.Info("document storage ready", "base_url", store.BaseURL())

	sessionStore := auth.NewSessionStore(redisClient.Client(), auth.StoreOptions{
		AuthKey:       []byte(cfg.SessionAuthKey),
		EncryptionKey: []byte(cfg.SessionEncryptionKey),
		MaxAge:        cfg.SessionMaxAge,
		Secure:        cfg.Environment == config.EnvProduction,
	})
	log.Info("session store initialized", "backend", "redis")

	appConfig := &app.Application{
		Config:       cfg,
		Db:           pool,
		Logger:       log,
		EventBus:     eventBus,
		Redis:        redisClient,
		Storage:      store,
		SessionStore: sessionStore,
	}
	ctxs := newContexts(appConfig)

	// The relay outlives individual requests; it stops on shutdown.
	relayCtx, stopRelay := context.WithCancel(context.Background())
	defer stopRelay()
	go func() {
		if err := ctxs.notification.Hub.Run(relayCtx, redisClient); err != nil {
			log.Error("notification relay stopped", "error", err)
		}
	}()

	r := httpx.NewRouter(
		httpx.ServerConfig{
			ServiceName:        cfg.ServiceName,
			IsDevelopment:      cfg.Environment == config.EnvDevelopment,
			CORSAllowedOrigins: cfg.CORSAllowedOrigins,
			MaxBodyBytes:       cfg.DocumentMaxBytes,
		},
		httpx.Middlewares{
			Recovery: logger.Recovery(log),
			Sentry:   telemetry.SentryMiddleware(),
			Tracing:  otelhttp.NewMiddleware(cfg.ServiceName),
			Logger:   logger.Middleware(log),
		},
	)

	r.Get("/health", httpx.HealthHandler(
		httpx.Probe{Name: "database", Checker: pool},
		httpx.Probe{Name: "redis", Checker: redisClient},
		httpx.Probe{Name: "event_bus", Checker: eventBus},
		httpx.Probe{Name: "storage", Checker: store},
	))
	r.Get("/metrics", metricsHandler.ServeHTTP)
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	r.Route("/api", func(r chi.Router) {
		registerRoutes(r, appConfig, ctxs)
	})

	srv := httpx.NewServer(cfg.HTTPAddr, r)

	go func() {
		log.Info("server listening", "addr", srv.Addr, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down...")
	stopRelay()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("forced shutdown", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}

// contexts holds each bounded context's service container.
type contexts struct {
	account      *accountsvcs.Services
	inventory    *inventorysvcs.Services
	task         *tasksvcs.Services
	transaction  *transactionsvcs.Services
	document     *documentsvcs.Services
	assistant    *assistantsvcs.Services
	notification *notificationsvcs.Services
	dashboard    *dashboardsvcs.Services
}

func newContexts(a *app.Application) *contexts {
	c := &contexts{account: accountsvcs.New(a)}
	c.inventory = inventorysvcs.New(a, c.account.Account)
	c.task = tasksvcs.New(a)
	c.transaction = transactionsvcs.New(a, c.account.Account, c.inventory.Inventory)
	c.document = documentsvcs.New(a)
	c.assistant = assistantsvcs.New(a, c.document.Document)
	c.notification = notificationsvcs.New(a)
	c.dashboard = dashboardsvcs.New(c.task.Task, c.transaction.Transaction, c.inventory.Inventory)
	return c
}

// registerRoutes mounts all service routes under /api.
// Add each new service's route function here.
func registerRoutes(r chi.Router, a *app.Application, c *contexts) {
	accountapi.PublicRoutes(r, a, c.account)

	r.Group(func(r chi.Router) {
		r.Use(auth.RequireAuth(a.SessionStore, a.Logger))
		accountapi.Routes(r, a, c.account)
		inventoryapi.Routes(r, c.inventory)
		taskapi.Routes(r, c.task)
		transactionapi.Routes(r, c.transaction)
		documentapi.Routes(r, c.document)
		assistantapi.Routes(r, c.assistant)
		notificationapi.Routes(r, c.notification)
		dashboardapi.Routes(r, c.dashboard)
	})
}

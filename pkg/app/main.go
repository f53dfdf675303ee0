package app

import (
	"github.com/gorilla/sessions"

	"github.com/ghuser/bizzy/pkg/cache"
	"github.com/ghuser/bizzy/pkg/config"
	"github.com/ghuser/bizzy/pkg/database"
	"github.com/ghuser/bizzy/pkg/events"
	"github.com/ghuser/bizzy/pkg/logger"
	"github.com/ghuser/bizzy/pkg/storage"
	"github.com/ghuser/bizzy/pkg/workflows"
)

// Application holds shared infrastructure dependencies for all services.
// Each bounded context's services.New receives it during process startup.
//
// Logging: app.Logger is backed by a trace-aware handler, so use slog's context
// methods and trace_id, span_id and request_id are injected automatically:
//
//	app.Logger.InfoContext(ctx, "item created", "code", item.Code)
//
// Use app.Logger.Info/Error (no context) only for startup and shutdown messages.
type Application struct {
	Config         *config.Config
	Db             *database.Database
	Logger         logger.Logger
	EventBus       *events.EventBus
	Redis          *cache.RedisClient
	Storage        *storage.Store            // nil in the worker process
	TemporalClient *workflows.TemporalClient // nil unless TEMPORAL_ENABLED
	SessionStore   sessions.Store            // nil in the worker process
}

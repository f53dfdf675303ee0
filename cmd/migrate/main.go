// Command migrate applies every bounded context's pending SQL migrations.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/ghuser/bizzy/migrations/account"
	"github.com/ghuser/bizzy/migrations/assistant"
	"github.com/ghuser/bizzy/migrations/document"
	"github.com/ghuser/bizzy/migrations/inventory"
	"github.com/ghuser/bizzy/migrations/notification"
	"github.com/ghuser/bizzy/migrations/task"
	"github.com/ghuser/bizzy/migrations/transaction"
	"github.com/ghuser/bizzy/pkg/config"
	"github.com/ghuser/bizzy/pkg/logger"
	"github.com/ghuser/bizzy/pkg/migrator"
)

// sources lists every context's migrations; each context keeps its own goose version table.
var sources = []migrator.Source{
	{Name: "account", Files: account.FS},
	{Name: "inventory", Files: inventory.FS},
	{Name: "task", Files: task.FS},
	{Name: "transaction", Files: transaction.FS},
	{Name: "document", Files: document.FS},
	{Name: "assistant", Files: assistant.FS},
	{Name: "notification", Files: notification.FS},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	log := logger.New(cfg)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if err := migrator.RunMigrations(ctx, cfg.DefinitionDatabaseURL, sources...); err != nil {
		log.Error("migration failed", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	log.Info("migrations applied", "contexts", len(sources))
}

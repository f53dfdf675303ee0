// Package migrator applies each bounded context's embedded goose migrations.
// Every context keeps its own version table so contexts migrate independently.
package migrator

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// Source is one context's migration set.
type Source struct {
	Name  string // context name, also used for the goose version table
	Files fs.FS
}

// VersionTable returns the goose version table used for the source.
func (s Source) VersionTable() string {
	return "goose_" + s.Name
}

// RunMigrations applies all pending migrations of every source, in order.
func RunMigrations(ctx context.Context, dbURL string, sources ...Source) error {
	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close() //nolint:errcheck

	for _, src := range sources {
		if err := up(ctx, db, src); err != nil {
			return err
		}
	}
	return nil
}

// up uses goose's package-level state, so sources are applied one at a time.
func up(ctx context.Context, db *sql.DB, src Source) error {
	goose.SetBaseFS(src.Files)
	goose.SetTableName(src.VersionTable())
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("%s: up migrations: %w", src.Name, err)
	}
	return nil
}

package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
	"github.com/pressly/goose/v3"
	"github.com/sandevgo/notebot/pkg/log"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// NewDB opens the database and brings the schema up to date. An empty path
// selects offline mode: the returned handle is nil and every repo built on it
// degrades to a silent no-op.
func NewDB(ctx context.Context, dbPath string) (*sql.DB, error) {
	if dbPath == "" {
		log.FromCtx(ctx).Warn().Msg("no database configured, storage runs in offline mode")
		return nil, nil
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create db directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := migrate(ctx, db); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, nil
}

func migrate(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(log.NewGooseLoggerFromCtx(ctx))

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := goose.Up(db, "migrations"); err != nil {
		return fmt.Errorf("goose up failed: %w", err)
	}

	return nil
}

// conn is the shared handle embedded by every repo. A nil db means offline
// mode; offline reports it once per call at debug level.
type conn struct {
	db *sql.DB
}

func (c conn) offline(ctx context.Context, op string) bool {
	if c.db != nil {
		return false
	}
	log.FromCtx(ctx).Debug().Str("op", op).Msg("storage offline, operation skipped")
	return true
}

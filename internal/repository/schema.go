// filepath: internal/repository/schema.go
package repository

import (
	"context"
	_ "embed"
	"fmt"
	"sync"

	"todohub/internal/db/migrations"
	"todohub/internal/shared"

	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
	"github.com/qustavo/dotsql"
	"github.com/sirupsen/logrus"
)

//go:embed queries/schema.sql
var schemaQueries string

// schemaChecks are the named queries in queries/schema.sql, run in order.
var schemaChecks = []string{"check-todo-list", "check-todo-item"}

// goose keeps its base FS and dialect in package globals.
var gooseMu sync.Mutex

// Migrate runs a goose command ("up", "down" or "status") against the embedded
// migrations for the store's dialect.
func Migrate(db *sqlx.DB, dialect Dialect, command string, logger *logrus.Logger) error {
	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(migrations.FS)
	goose.SetLogger(logger)
	if err := goose.SetDialect(string(dialect)); err != nil {
		return fmt.Errorf("failed to set dialect: %w", err)
	}

	dir := dialect.MigrationDir()
	logger.WithFields(logrus.Fields{"command": command, "dialect": dialect}).Info("Running migration command")

	var gooseErr error
	switch command {
	case "up":
		gooseErr = goose.Up(db.DB, dir)
	case "down":
		gooseErr = goose.Down(db.DB, dir)
	case "status":
		gooseErr = goose.Status(db.DB, dir)
	default:
		return fmt.Errorf("unknown migration command: %s", command)
	}

	if gooseErr != nil {
		return fmt.Errorf("migration failed: %w", gooseErr)
	}
	return nil
}

// ValidateSchema verifies that the tables and columns the service reads and
// writes are present. A store that has not been migrated fails here.
func ValidateSchema(ctx context.Context, db *sqlx.DB) error {
	dot, err := dotsql.LoadFromString(schemaQueries)
	if err != nil {
		return fmt.Errorf("failed to load schema queries: %w", err)
	}

	for _, name := range schemaChecks {
		query, err := dot.Raw(name)
		if err != nil {
			return fmt.Errorf("failed to load schema query %s: %w", name, err)
		}
		rows, err := db.QueryxContext(ctx, query)
		if err != nil {
			return fmt.Errorf("%w (%s): %v; run 'todohub migrate up'", shared.ErrSchemaMismatch, name, err)
		}
		err = rows.Err()
		rows.Close()
		if err != nil {
			return fmt.Errorf("%w (%s): %v", shared.ErrSchemaMismatch, name, err)
		}
	}
	return nil
}

// filepath: internal/repository/pool.go
package repository

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"todohub/internal/config"
	"todohub/internal/models"
	"todohub/internal/shared"

	"github.com/Masterminds/squirrel"
	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver, registered as "pgx"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	_ "modernc.org/sqlite" // SQLite driver, registered as "sqlite"
)

// Dialect identifies the SQL flavour of the store. The values double as goose dialect names.
type Dialect string

const (
	DialectSQLite   Dialect = "sqlite3"
	DialectPostgres Dialect = "postgres"
)

// sqliteBusyTimeoutMs is how long SQLite waits on a locked database before returning SQLITE_BUSY.
const sqliteBusyTimeoutMs = 10000

// Placeholder returns the bind parameter style for the dialect.
func (d Dialect) Placeholder() squirrel.PlaceholderFormat {
	if d == DialectPostgres {
		return squirrel.Dollar
	}
	return squirrel.Question
}

// MigrationDir returns the directory inside the embedded migrations FS for the dialect.
func (d Dialect) MigrationDir() string {
	if d == DialectPostgres {
		return "postgres"
	}
	return "sqlite"
}

// Pool hands out a bounded number of store connections.
// Safe for concurrent use; synchronisation is handled by database/sql.
type Pool struct {
	db             *sqlx.DB
	dialect        Dialect
	acquireTimeout time.Duration
	logger         *logrus.Logger
}

// OpenPool establishes the store connection pool from the database configuration.
// Supported URL schemes: sqlite://, postgres://, postgresql://
// SQLite URLs: sqlite://path/to/file.db or sqlite:///absolute/path
func OpenPool(cfg *config.Config, logger *logrus.Logger) (*Pool, error) {
	driverName, dataSource, dialect, err := parseDatabaseURL(cfg.Database.URL)
	if err != nil {
		return nil, err
	}

	db, err := sqlx.Open(driverName, dataSource)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	acquireTimeout := cfg.AcquireTimeout
	if acquireTimeout <= 0 {
		acquireTimeout = 5 * time.Second
	}

	ctx, cancel := context.WithTimeout(context.Background(), acquireTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.WithFields(logrus.Fields{
		"driver":          driverName,
		"max_open_conns":  cfg.Database.MaxOpenConns,
		"acquire_timeout": acquireTimeout.String(),
	}).Info("Store connection pool ready")

	return &Pool{
		db:             db,
		dialect:        dialect,
		acquireTimeout: acquireTimeout,
		logger:         logger,
	}, nil
}

func parseDatabaseURL(dbURL string) (driverName, dataSource string, dialect Dialect, err error) {
	u, err := url.Parse(dbURL)
	if err != nil {
		return "", "", "", fmt.Errorf("invalid database URL: %w", err)
	}

	switch u.Scheme {
	case "sqlite":
		// sqlite://file.db uses host+path (relative), sqlite:///abs uses path only
		path := u.Path
		if u.Host != "" {
			path = u.Host + u.Path
		}
		if path == "" {
			return "", "", "", fmt.Errorf("invalid database URL: missing sqlite path")
		}
		dataSource = fmt.Sprintf(
			"file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(%d)&_pragma=journal_mode(WAL)",
			path, sqliteBusyTimeoutMs,
		)
		return "sqlite", dataSource, DialectSQLite, nil
	case "postgres", "postgresql":
		return "pgx", dbURL, DialectPostgres, nil
	default:
		return "", "", "", fmt.Errorf("%w: %s (expected sqlite or postgres)", shared.ErrUnsupportedScheme, u.Scheme)
	}
}

// Acquire borrows one connection for the duration of a single request.
// It waits at most the configured acquire timeout and fails with a
// StoreUnavailable error instead of blocking indefinitely.
// The caller must Close the returned connection on every exit path.
func (p *Pool) Acquire(ctx context.Context) (*sqlx.Conn, error) {
	start := time.Now()
	acquireCtx, cancel := context.WithTimeout(ctx, p.acquireTimeout)
	defer cancel()

	conn, err := p.db.Connx(acquireCtx)
	if err != nil {
		p.logger.WithFields(logrus.Fields{
			"cause": err.Error(),
			"wait":  time.Since(start).String(),
		}).Error("Error creating client")
		return nil, shared.WrapAppError(shared.KindStoreUnavailable, "Store unavailable", err)
	}
	return conn, nil
}

// DB exposes the underlying handle for migrations and metrics collectors.
func (p *Pool) DB() *sqlx.DB {
	return p.db
}

// Dialect returns the SQL flavour of the pool's store.
func (p *Pool) Dialect() Dialect {
	return p.dialect
}

// DriverName returns the database/sql driver in use.
func (p *Pool) DriverName() string {
	return p.db.DriverName()
}

// Stats returns a snapshot of the pool counters.
func (p *Pool) Stats() models.PoolStats {
	stats := p.db.Stats()
	return models.PoolStats{
		MaxOpenConnections: stats.MaxOpenConnections,
		OpenConnections:    stats.OpenConnections,
		InUse:              stats.InUse,
		Idle:               stats.Idle,
		WaitCount:          stats.WaitCount,
		WaitDuration:       stats.WaitDuration,
	}
}

// Health pings the store through the pool and reports latency and pool counters.
func (p *Pool) Health(ctx context.Context) models.HealthStatus {
	start := time.Now()
	pingCtx, cancel := context.WithTimeout(ctx, p.acquireTimeout)
	defer cancel()

	err := p.db.PingContext(pingCtx)
	status := models.HealthStatus{
		Healthy:   err == nil,
		Latency:   time.Since(start),
		PoolStats: p.Stats(),
	}
	if err != nil {
		status.Error = err.Error()
	}
	return status
}

// Close releases every pooled connection.
func (p *Pool) Close() error {
	return p.db.Close()
}

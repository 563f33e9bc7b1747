package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" database/sql driver
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// Supported drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

func init() {
	sqlx.BindDriver("sqlite", sqlx.QUESTION)
}

// DB is the single connection pool held for the lifetime of a process. All
// statements are written with ? placeholders and rebound for the driver.
type DB struct {
	x      *sqlx.DB
	driver string
}

// Open opens a database for the given driver. SQLite is configured for
// production use: WAL mode, foreign keys enabled, busy timeout of 5s and a
// single connection. Postgres is pinged before returning.
func Open(ctx context.Context, driver, dsn string) (*DB, error) {
	switch driver {
	case "", DriverSQLite:
		return openSQLite(ctx, dsn)
	case DriverPostgres:
		return openPostgres(ctx, dsn)
	default:
		return nil, fmt.Errorf("unknown database driver %q", driver)
	}
}

func openSQLite(ctx context.Context, dsn string) (*DB, error) {
	x, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Single connection for SQLite to avoid locking issues.
	x.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys=ON",
		"PRAGMA busy_timeout=5000",
	}
	for _, p := range pragmas {
		if _, err := x.ExecContext(ctx, p); err != nil {
			_ = x.Close()
			return nil, fmt.Errorf("exec %q: %w", p, err)
		}
	}

	return &DB{x: x, driver: DriverSQLite}, nil
}

func openPostgres(ctx context.Context, dsn string) (*DB, error) {
	x, err := sqlx.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := x.PingContext(ctx); err != nil {
		_ = x.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return &DB{x: x, driver: DriverPostgres}, nil
}

// Driver returns the driver name the database was opened with.
func (db *DB) Driver() string { return db.driver }

// SQL exposes the underlying *sql.DB.
func (db *DB) SQL() *sql.DB { return db.x.DB }

// Close releases the pool.
func (db *DB) Close() error { return db.x.Close() }

// PingContext verifies the connection is alive.
func (db *DB) PingContext(ctx context.Context) error { return db.x.PingContext(ctx) }

// ExecContext executes a statement with ? placeholders.
func (db *DB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return db.x.ExecContext(ctx, db.x.Rebind(query), args...)
}

// QueryRowContext runs a query expected to return at most one row.
func (db *DB) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return db.x.QueryRowContext(ctx, db.x.Rebind(query), args...)
}

// GetContext scans a single row into dest using db struct tags.
func (db *DB) GetContext(ctx context.Context, dest any, query string, args ...any) error {
	return db.x.GetContext(ctx, dest, db.x.Rebind(query), args...)
}

// SelectContext scans all rows into the slice pointed to by dest.
func (db *DB) SelectContext(ctx context.Context, dest any, query string, args ...any) error {
	return db.x.SelectContext(ctx, dest, db.x.Rebind(query), args...)
}

// In expands slice arguments in an IN (?) clause. The returned query still
// uses ? placeholders and is rebound when executed.
func (db *DB) In(query string, args ...any) (string, []any, error) {
	q, a, err := sqlx.In(query, args...)
	if err != nil {
		return "", nil, fmt.Errorf("expand in clause: %w", err)
	}
	return q, a, nil
}

// NewID returns a time-ordered UUIDv7 string for use as a primary key.
func NewID() string {
	return uuid.Must(uuid.NewV7()).String()
}

// Now returns the current UTC time in the timestamp format stored in the
// database.
func Now() string {
	return time.Now().UTC().Format("2006-01-02T15:04:05.000Z")
}

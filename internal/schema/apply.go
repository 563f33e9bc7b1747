package schema

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/johnwards/caretrain/internal/metrics"
)

// Execer is the subset of a database handle the applier needs.
type Execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// Report summarizes an Apply run.
type Report struct {
	Applied int
	Skipped int
}

// StatementError is returned when a statement fails for any reason other than
// the target object already existing.
type StatementError struct {
	Index     int
	Statement string
	Err       error
}

func (e *StatementError) Error() string {
	return fmt.Sprintf("schema statement %d (%s): %v", e.Index+1, firstLine(e.Statement), e.Err)
}

func (e *StatementError) Unwrap() error { return e.Err }

// Postgres SQLSTATE codes for objects that already exist.
var existsCodes = map[string]bool{
	"42P07": true, // duplicate_table
	"42710": true, // duplicate_object
	"42P06": true, // duplicate_schema
	"42723": true, // duplicate_function
}

// IsAlreadyExists reports whether err means the statement's target object is
// already present.
func IsAlreadyExists(err error) bool {
	if err == nil {
		return false
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return existsCodes[pgErr.Code]
	}
	return strings.Contains(strings.ToLower(err.Error()), "already exists")
}

// Apply executes stmts in order. Already-exists failures are logged and
// skipped; the first other failure stops the run and is returned as a
// *StatementError. Nothing is retried and no transaction wraps the run, so a
// failure can leave earlier statements applied.
func Apply(ctx context.Context, db Execer, stmts []string, logger *slog.Logger) (Report, error) {
	if logger == nil {
		logger = slog.Default()
	}

	var rep Report
	for i, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			if IsAlreadyExists(err) {
				rep.Skipped++
				metrics.SchemaStatements.WithLabelValues("skipped").Inc()
				logger.Info("schema statement skipped", "index", i+1, "statement", firstLine(stmt), "reason", err.Error())
				continue
			}
			metrics.SchemaStatements.WithLabelValues("failed").Inc()
			logger.Error("schema statement failed", "index", i+1, "statement", firstLine(stmt), "error", err)
			return rep, &StatementError{Index: i, Statement: stmt, Err: err}
		}
		rep.Applied++
		metrics.SchemaStatements.WithLabelValues("applied").Inc()
	}

	logger.Info("schema applied", "applied", rep.Applied, "skipped", rep.Skipped)
	return rep, nil
}

func firstLine(stmt string) string {
	line, _, _ := strings.Cut(strings.TrimSpace(stmt), "\n")
	return strings.TrimSpace(line)
}

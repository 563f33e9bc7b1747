package database_test

import (
	"context"
	"testing"

	"github.com/johnwards/caretrain/internal/database"
	"github.com/johnwards/caretrain/internal/testhelpers"
)

func TestOpen(t *testing.T) {
	db := testhelpers.NewTestDB(t)

	if err := db.PingContext(context.Background()); err != nil {
		t.Fatalf("ping failed: %v", err)
	}
	if db.Driver() != database.DriverSQLite {
		t.Errorf("driver = %q, want %q", db.Driver(), database.DriverSQLite)
	}

	// Verify WAL mode is set.
	var journalMode string
	if err := db.QueryRowContext(context.Background(), "PRAGMA journal_mode").Scan(&journalMode); err != nil {
		t.Fatalf("query journal_mode: %v", err)
	}
	// In-memory databases may report "memory" instead of "wal".
	if journalMode != "wal" && journalMode != "memory" {
		t.Errorf("journal_mode = %q, want wal or memory", journalMode)
	}

	// Verify foreign keys are enabled.
	var fk int
	if err := db.QueryRowContext(context.Background(), "PRAGMA foreign_keys").Scan(&fk); err != nil {
		t.Fatalf("query foreign_keys: %v", err)
	}
	if fk != 1 {
		t.Errorf("foreign_keys = %d, want 1", fk)
	}
}

func TestOpenUnknownDriver(t *testing.T) {
	if _, err := database.Open(context.Background(), "oracle", "x"); err == nil {
		t.Fatal("expected error for unknown driver")
	}
}

func TestExecAndIn(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	ctx := context.Background()

	if _, err := db.ExecContext(ctx, `CREATE TABLE t (name TEXT, n INTEGER)`); err != nil {
		t.Fatalf("create: %v", err)
	}
	for i, name := range []string{"a", "b", "c"} {
		if _, err := db.ExecContext(ctx, `INSERT INTO t (name, n) VALUES (?, ?)`, name, i); err != nil {
			t.Fatalf("insert %s: %v", name, err)
		}
	}

	q, args, err := db.In(`UPDATE t SET n = ? WHERE name IN (?)`, 9, []string{"a", "c"})
	if err != nil {
		t.Fatalf("in: %v", err)
	}
	res, err := db.ExecContext(ctx, q, args...)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if n, _ := res.RowsAffected(); n != 2 {
		t.Errorf("rows affected = %d, want 2", n)
	}

	var names []string
	if err := db.SelectContext(ctx, &names, `SELECT name FROM t WHERE n = ? ORDER BY name`, 9); err != nil {
		t.Fatalf("select: %v", err)
	}
	if len(names) != 2 || names[0] != "a" || names[1] != "c" {
		t.Errorf("names = %v, want [a c]", names)
	}
}

func TestNewID(t *testing.T) {
	a, b := database.NewID(), database.NewID()
	if len(a) != 36 {
		t.Errorf("id length = %d, want 36", len(a))
	}
	if a == b {
		t.Error("ids should be unique")
	}
	// UUIDv7 sorts by creation time.
	if a >= b {
		t.Errorf("expected %s < %s", a, b)
	}
}

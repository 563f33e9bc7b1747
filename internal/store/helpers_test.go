package store_test

import (
	"context"
	"testing"

	"github.com/johnwards/caretrain/internal/database"
	"github.com/johnwards/caretrain/internal/seed"
	"github.com/johnwards/caretrain/internal/testhelpers"
)

// setupSeededDB returns an initialized database with the demo data and demo
// passwords set to "password123".
func setupSeededDB(t *testing.T) *database.DB {
	t.Helper()
	db := testhelpers.NewTestDB(t)
	if err := seed.Initialize(context.Background(), db, seed.Options{DemoPassword: "password123"}); err != nil {
		t.Fatalf("initialize: %v", err)
	}
	return db
}

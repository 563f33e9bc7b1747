package organizations_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/johnwards/caretrain/internal/api"
	"github.com/johnwards/caretrain/internal/api/organizations"
	"github.com/johnwards/caretrain/internal/domain"
	"github.com/johnwards/caretrain/internal/seed"
	"github.com/johnwards/caretrain/internal/store"
	"github.com/johnwards/caretrain/internal/testhelpers"
)

func setupServer(t *testing.T) *httptest.Server {
	t.Helper()
	db := testhelpers.NewTestDB(t)

	if err := seed.Initialize(context.Background(), db, seed.Options{DemoPassword: "password123"}); err != nil {
		t.Fatalf("initialize: %v", err)
	}

	mux := http.NewServeMux()
	organizations.RegisterRoutes(mux, store.New(db))

	srv := httptest.NewServer(api.Chain(mux, api.RequestID()))
	t.Cleanup(srv.Close)
	return srv
}

func TestGetOrganization(t *testing.T) {
	srv := setupServer(t)

	resp, err := http.Get(srv.URL + "/organizations/DEMO-CARE")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var org domain.Organization
	if err := json.NewDecoder(resp.Body).Decode(&org); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if org.Code != "DEMO-CARE" {
		t.Errorf("code = %q, want DEMO-CARE", org.Code)
	}
	if org.Name != seed.DemoOrganization.Name {
		t.Errorf("name = %q, want %q", org.Name, seed.DemoOrganization.Name)
	}
	if org.ID == "" {
		t.Error("expected id")
	}
}

func TestGetOrganizationNotFound(t *testing.T) {
	srv := setupServer(t)

	resp, err := http.Get(srv.URL + "/organizations/UNKNOWN")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

package metrics_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/johnwards/caretrain/internal/metrics"
)

func TestHandlerExposesCollectors(t *testing.T) {
	metrics.SeedRuns.WithLabelValues("skipped").Inc()

	rec := httptest.NewRecorder()
	metrics.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", http.NoBody))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body, _ := io.ReadAll(rec.Body)
	if !strings.Contains(string(body), "caretrain_seed_runs_total") {
		t.Errorf("expected caretrain_seed_runs_total in output")
	}
	if !strings.Contains(string(body), "go_goroutines") {
		t.Errorf("expected go collector output")
	}
}

func TestCounterIncrements(t *testing.T) {
	before := testutil.ToFloat64(metrics.PasswordResets)
	metrics.PasswordResets.Inc()
	if got := testutil.ToFloat64(metrics.PasswordResets); got != before+1 {
		t.Errorf("password resets = %v, want %v", got, before+1)
	}
}

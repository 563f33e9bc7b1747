package seed

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/johnwards/caretrain/internal/database"
	"github.com/johnwards/caretrain/internal/metrics"
	"github.com/johnwards/caretrain/internal/schema"
)

// NeedsSeed reports whether the organizations table is empty.
func NeedsSeed(ctx context.Context, db *database.DB) (bool, error) {
	var count int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM organizations`).Scan(&count); err != nil {
		return false, fmt.Errorf("count organizations: %w", err)
	}
	return count == 0, nil
}

// Seed inserts the demo organization, the training scenarios with their care
// plans, and the demo users. It does nothing if any organization exists. The
// guard is a plain pre-check, so two concurrent callers can both insert.
//
// Demo users are created without a usable password; ResetDemoPasswords sets
// one.
func Seed(ctx context.Context, db *database.DB) (bool, error) {
	empty, err := NeedsSeed(ctx, db)
	if err != nil {
		return false, err
	}
	if !empty {
		metrics.SeedRuns.WithLabelValues("skipped").Inc()
		return false, nil
	}

	orgID := database.NewID()
	if _, err := db.ExecContext(ctx,
		`INSERT INTO organizations (id, name, code, created_at) VALUES (?, ?, ?, ?)`,
		orgID, DemoOrganization.Name, DemoOrganization.Code, seededAt,
	); err != nil {
		return false, fmt.Errorf("insert organization %s: %w", DemoOrganization.Code, err)
	}

	for _, def := range scenarioDefs {
		if err := insertScenario(ctx, db, def); err != nil {
			return false, err
		}
	}

	for _, u := range demoUsers {
		if _, err := db.ExecContext(ctx,
			`INSERT INTO users (id, email, password_hash, first_name, last_name, role, organization_id, created_at)
			 VALUES (?, ?, '', ?, ?, ?, ?, ?)`,
			database.NewID(), u.email, u.firstName, u.lastName, string(u.role), orgID, seededAt,
		); err != nil {
			return false, fmt.Errorf("insert user %s: %w", u.email, err)
		}
	}

	metrics.SeedRuns.WithLabelValues("seeded").Inc()
	return true, nil
}

// insertScenario writes a scenario and then its care plan, which references
// the scenario id.
func insertScenario(ctx context.Context, db *database.DB, def scenarioDef) error {
	s := def.scenario
	scenarioID := database.NewID()
	if _, err := db.ExecContext(ctx,
		`INSERT INTO scenarios (id, title, description, difficulty, module, estimated_time, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		scenarioID, s.Title, s.Description, string(s.Difficulty), s.Module, s.EstimatedTime, seededAt,
	); err != nil {
		return fmt.Errorf("insert scenario %q: %w", s.Title, err)
	}

	cp := def.carePlan
	if _, err := db.ExecContext(ctx,
		`INSERT INTO care_plans (id, scenario_id, client_name, age, diagnosis, care_needs,
			communication_needs, risk_assessment, allergies, medication)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		database.NewID(), scenarioID, cp.ClientName, cp.Age, cp.Diagnosis, cp.CareNeeds,
		cp.CommunicationNeeds, cp.RiskAssessment, cp.Allergies, cp.Medication,
	); err != nil {
		return fmt.Errorf("insert care plan for %q: %w", s.Title, err)
	}
	return nil
}

// Reset deletes every row from the schema's tables and seeds again. It does
// not reset demo passwords.
func Reset(ctx context.Context, db *database.DB) error {
	for _, table := range schema.Tables {
		if _, err := db.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s", table)); err != nil { //nolint:gosec // table names are hardcoded constants
			return fmt.Errorf("clear table %s: %w", table, err)
		}
	}
	if _, err := Seed(ctx, db); err != nil {
		return err
	}
	return nil
}

// Options configures Initialize.
type Options struct {
	SchemaLocation string
	DemoPassword   string
	Loader         schema.Loader
	Logger         *slog.Logger
}

// Initialize brings a database to a usable state: it applies the schema,
// seeds baseline data when the database is empty, and resets the demo account
// passwords. It is safe to run repeatedly.
func Initialize(ctx context.Context, db *database.DB, opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	script, err := opts.Loader.Load(ctx, opts.SchemaLocation)
	if err != nil {
		return fmt.Errorf("load schema: %w", err)
	}
	if _, err := schema.Apply(ctx, db, schema.Split(script), logger); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}

	seeded, err := Seed(ctx, db)
	if err != nil {
		return fmt.Errorf("seed data: %w", err)
	}
	if seeded {
		logger.Info("seed data inserted", "organization", DemoOrganization.Code, "scenarios", len(scenarioDefs))
	} else {
		logger.Info("seed data present, skipping")
	}

	n, err := ResetDemoPasswords(ctx, db, opts.DemoPassword)
	if err != nil {
		return fmt.Errorf("reset demo passwords: %w", err)
	}
	logger.Info("demo passwords reset", "accounts", n)

	return nil
}

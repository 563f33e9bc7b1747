package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/johnwards/caretrain/internal/database"
	"github.com/johnwards/caretrain/internal/domain"
)

// ScenarioStore defines the interface for reading training scenarios.
type ScenarioStore interface {
	List(ctx context.Context, filter domain.ScenarioFilter) ([]*domain.Scenario, error)
	Get(ctx context.Context, id string) (*domain.Scenario, error)
}

// SQLScenarioStore implements ScenarioStore.
type SQLScenarioStore struct {
	db *database.DB
}

// NewSQLScenarioStore creates a new SQLScenarioStore.
func NewSQLScenarioStore(db *database.DB) *SQLScenarioStore {
	return &SQLScenarioStore{db: db}
}

const scenarioColumns = `id, title, description, difficulty, module, estimated_time, created_at`

// List returns scenarios matching filter in creation order. Care plans are not
// loaded.
func (s *SQLScenarioStore) List(ctx context.Context, filter domain.ScenarioFilter) ([]*domain.Scenario, error) {
	query := `SELECT ` + scenarioColumns + ` FROM scenarios WHERE 1=1`
	var args []any

	if filter.Difficulty != "" {
		if !filter.Difficulty.Valid() {
			return nil, fmt.Errorf("%w: unknown difficulty %q", ErrInvalidInput, filter.Difficulty)
		}
		query += ` AND difficulty = ?`
		args = append(args, string(filter.Difficulty))
	}
	if filter.Module != "" {
		query += ` AND module = ?`
		args = append(args, filter.Module)
	}
	query += ` ORDER BY created_at ASC, id ASC`

	scenarios := []*domain.Scenario{}
	if err := s.db.SelectContext(ctx, &scenarios, query, args...); err != nil {
		return nil, fmt.Errorf("list scenarios: %w", err)
	}
	return scenarios, nil
}

// Get retrieves a scenario together with its care plan, if it has one.
func (s *SQLScenarioStore) Get(ctx context.Context, id string) (*domain.Scenario, error) {
	var sc domain.Scenario
	err := s.db.GetContext(ctx, &sc, `SELECT `+scenarioColumns+` FROM scenarios WHERE id = ?`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get scenario: %w", err)
	}

	var cp domain.CarePlan
	err = s.db.GetContext(ctx, &cp,
		`SELECT id, scenario_id, client_name, age, diagnosis, care_needs, communication_needs,
			risk_assessment, allergies, medication
		 FROM care_plans WHERE scenario_id = ?`, id)
	switch {
	case err == nil:
		sc.CarePlan = &cp
	case errors.Is(err, sql.ErrNoRows):
	default:
		return nil, fmt.Errorf("get care plan: %w", err)
	}

	return &sc, nil
}

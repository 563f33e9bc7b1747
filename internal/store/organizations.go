package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/johnwards/caretrain/internal/database"
	"github.com/johnwards/caretrain/internal/domain"
)

// OrganizationStore defines the interface for organization lookups.
type OrganizationStore interface {
	GetByCode(ctx context.Context, code string) (*domain.Organization, error)
}

// SQLOrganizationStore implements OrganizationStore.
type SQLOrganizationStore struct {
	db *database.DB
}

// NewSQLOrganizationStore creates a new SQLOrganizationStore.
func NewSQLOrganizationStore(db *database.DB) *SQLOrganizationStore {
	return &SQLOrganizationStore{db: db}
}

// GetByCode retrieves an organization by its human-readable code.
func (s *SQLOrganizationStore) GetByCode(ctx context.Context, code string) (*domain.Organization, error) {
	var o domain.Organization
	err := s.db.GetContext(ctx, &o, `SELECT id, name, code, created_at FROM organizations WHERE code = ?`, code)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("organization %q: %w", code, ErrNotFound)
		}
		return nil, fmt.Errorf("get organization: %w", err)
	}
	return &o, nil
}

package store

import "github.com/johnwards/caretrain/internal/database"

// Store holds all sub-stores used by the application.
type Store struct {
	DB            *database.DB
	Organizations OrganizationStore
	Scenarios     ScenarioStore
	Users         UserStore
}

// New creates a Store with all sub-stores initialized.
func New(db *database.DB) *Store {
	return &Store{
		DB:            db,
		Organizations: NewSQLOrganizationStore(db),
		Scenarios:     NewSQLScenarioStore(db),
		Users:         NewSQLUserStore(db),
	}
}

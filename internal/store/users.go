package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/johnwards/caretrain/internal/database"
	"github.com/johnwards/caretrain/internal/domain"
)

// MinPasswordLength is the shortest password Register accepts.
const MinPasswordLength = 8

// UserStore defines the interface for user persistence.
type UserStore interface {
	Register(ctx context.Context, reg domain.Registration) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)
}

// SQLUserStore implements UserStore.
type SQLUserStore struct {
	db *database.DB
}

// NewSQLUserStore creates a new SQLUserStore.
func NewSQLUserStore(db *database.DB) *SQLUserStore {
	return &SQLUserStore{db: db}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validateRegistration(reg domain.Registration) error {
	if addr, err := mail.ParseAddress(reg.Email); err != nil || addr.Address != reg.Email {
		return fmt.Errorf("%w: a valid email is required", ErrInvalidInput)
	}
	if len(reg.Password) < MinPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, MinPasswordLength)
	}
	if strings.TrimSpace(reg.FirstName) == "" || strings.TrimSpace(reg.LastName) == "" {
		return fmt.Errorf("%w: first and last name are required", ErrInvalidInput)
	}
	if reg.OrgCode == "" {
		return fmt.Errorf("%w: organization code is required", ErrInvalidInput)
	}
	if !reg.Role.Valid() {
		return fmt.Errorf("%w: role must be one of manager, staff, admin", ErrInvalidInput)
	}
	return nil
}

// Register creates a user in the organization identified by reg.OrgCode.
func (s *SQLUserStore) Register(ctx context.Context, reg domain.Registration) (*domain.User, error) {
	reg.Email = normalizeEmail(reg.Email)
	if err := validateRegistration(reg); err != nil {
		return nil, err
	}

	var org domain.Organization
	if err := s.db.GetContext(ctx, &org, `SELECT id, name, code, created_at FROM organizations WHERE code = ?`, reg.OrgCode); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: no organization with code %q", ErrNotFound, reg.OrgCode)
		}
		return nil, fmt.Errorf("lookup organization: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(reg.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := &domain.User{
		ID:               database.NewID(),
		Email:            reg.Email,
		PasswordHash:     string(hash),
		FirstName:        strings.TrimSpace(reg.FirstName),
		LastName:         strings.TrimSpace(reg.LastName),
		Role:             reg.Role,
		OrganizationID:   org.ID,
		OrganizationCode: org.Code,
		CreatedAt:        database.Now(),
	}

	if _, err := s.db.ExecContext(ctx,
		`INSERT INTO users (id, email, password_hash, first_name, last_name, role, organization_id, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		u.ID, u.Email, u.PasswordHash, u.FirstName, u.LastName, string(u.Role), u.OrganizationID, u.CreatedAt,
	); err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: email %s is already registered", ErrConflict, u.Email)
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	return u, nil
}

// GetByEmail retrieves a user by email address.
func (s *SQLUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var u domain.User
	err := s.db.GetContext(ctx, &u,
		`SELECT u.id, u.email, u.password_hash, u.first_name, u.last_name, u.role,
			u.organization_id, o.code AS org_code, u.created_at
		 FROM users u JOIN organizations o ON o.id = u.organization_id
		 WHERE u.email = ?`, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

// Authenticate returns the user if password matches the stored hash.
func (s *SQLUserStore) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	u, err := s.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

package store_test

import (
	"context"
	"errors"
	"testing"

	"github.com/johnwards/caretrain/internal/domain"
	"github.com/johnwards/caretrain/internal/seed"
	"github.com/johnwards/caretrain/internal/store"
)

var _ store.UserStore = (*store.SQLUserStore)(nil)

func validRegistration() domain.Registration {
	return domain.Registration{
		Email:     "New.Carer@Example.com",
		Password:  "password123",
		FirstName: "Jo",
		LastName:  "Bloggs",
		OrgCode:   seed.DemoOrganization.Code,
		Role:      domain.RoleStaff,
	}
}

func TestUserRegister(t *testing.T) {
	s := store.NewSQLUserStore(setupSeededDB(t))
	ctx := context.Background()

	u, err := s.Register(ctx, validRegistration())
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if u.Email != "new.carer@example.com" {
		t.Errorf("email = %q, want lower-cased", u.Email)
	}
	if u.OrganizationCode != seed.DemoOrganization.Code {
		t.Errorf("org code = %q", u.OrganizationCode)
	}
	if u.PasswordHash == "" || u.PasswordHash == "password123" {
		t.Error("password should be hashed")
	}

	got, err := s.GetByEmail(ctx, "new.carer@example.com")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ID != u.ID || got.Role != domain.RoleStaff {
		t.Errorf("unexpected user: %+v", got)
	}
}

func TestUserRegisterDuplicate(t *testing.T) {
	s := store.NewSQLUserStore(setupSeededDB(t))
	ctx := context.Background()

	if _, err := s.Register(ctx, validRegistration()); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := s.Register(ctx, validRegistration()); !errors.Is(err, store.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestUserRegisterUnknownOrganization(t *testing.T) {
	s := store.NewSQLUserStore(setupSeededDB(t))

	reg := validRegistration()
	reg.OrgCode = "NOPE"
	if _, err := s.Register(context.Background(), reg); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUserRegisterValidation(t *testing.T) {
	s := store.NewSQLUserStore(setupSeededDB(t))

	tests := []struct {
		name   string
		mutate func(*domain.Registration)
	}{
		{"bad email", func(r *domain.Registration) { r.Email = "not-an-email" }},
		{"display name email", func(r *domain.Registration) { r.Email = "Jo <jo@example.com>" }},
		{"short password", func(r *domain.Registration) { r.Password = "short" }},
		{"missing first name", func(r *domain.Registration) { r.FirstName = " " }},
		{"missing org", func(r *domain.Registration) { r.OrgCode = "" }},
		{"bad role", func(r *domain.Registration) { r.Role = "owner" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := validRegistration()
			tt.mutate(&reg)
			if _, err := s.Register(context.Background(), reg); !errors.Is(err, store.ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestUserAuthenticateDemoAccounts(t *testing.T) {
	s := store.NewSQLUserStore(setupSeededDB(t))
	ctx := context.Background()

	for _, email := range seed.DemoEmails() {
		u, err := s.Authenticate(ctx, email, "password123")
		if err != nil {
			t.Fatalf("authenticate %s: %v", email, err)
		}
		if u.Email != email {
			t.Errorf("email = %q, want %q", u.Email, email)
		}
	}
}

func TestUserAuthenticateRejects(t *testing.T) {
	s := store.NewSQLUserStore(setupSeededDB(t))
	ctx := context.Background()

	if _, err := s.Authenticate(ctx, "staff@demo.caretrain.dev", "wrong-password"); !errors.Is(err, store.ErrInvalidCredentials) {
		t.Errorf("wrong password: expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := s.Authenticate(ctx, "nobody@example.com", "password123"); !errors.Is(err, store.ErrInvalidCredentials) {
		t.Errorf("unknown email: expected ErrInvalidCredentials, got %v", err)
	}
}

package seed

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/johnwards/caretrain/internal/database"
	"github.com/johnwards/caretrain/internal/metrics"
)

// ResetDemoPasswords sets the password of every demo account to password,
// whether or not the accounts were just created. It returns the number of
// accounts updated.
func ResetDemoPasswords(ctx context.Context, db *database.DB, password string) (int64, error) {
	if password == "" {
		return 0, errors.New("demo password is empty")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, fmt.Errorf("hash password: %w", err)
	}

	query, args, err := db.In(`UPDATE users SET password_hash = ? WHERE email IN (?)`, string(hash), DemoEmails())
	if err != nil {
		return 0, err
	}
	res, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("update demo users: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}

	metrics.PasswordResets.Inc()
	return n, nil
}

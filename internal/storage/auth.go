package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ledgerlite/ledgerlite/internal/common"
	"github.com/ledgerlite/ledgerlite/internal/model"
)

// ValidateUserLogin matches a submitted credential pair against the user
// store. The caller supplies an already-hashed password; no hashing,
// lockout, or rate limiting happens here. An unknown email and a wrong hash
// produce the identical error so a caller cannot learn which one failed.
func (s *SQLiteStorage) ValidateUserLogin(ctx context.Context, email, passwordHash string) (*model.User, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(email, "email"); err != nil {
		return nil, err
	}
	if err := validateString(passwordHash, "passwordHash"); err != nil {
		return nil, err
	}

	// The selected columns deliberately omit password_hash; the credential
	// never travels back out of this lookup.
	var u model.User
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, email, designation, created_at
		FROM users
		WHERE email = ? AND password_hash = ?`,
		email, passwordHash).
		Scan(&u.ID, &u.Name, &u.Email, &u.Designation, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: Invalid email or password", common.ErrUnauthenticated)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to validate login: %w", err)
	}

	return &u, nil
}

package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Repository handles admin user persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new auth repository with database dependency injected
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

const adminColumns = `id, email, password_hash, reset_token_hash, reset_token_expires_at, created_at`

// uniqueViolation is the Postgres error code for a unique constraint failure
const uniqueViolation = "23505"

// ClaimFirstAdmin inserts the admin account if none exists yet. It reports
// whether the claim succeeded; a false result means an admin already holds
// the singleton slot.
func (r *Repository) ClaimFirstAdmin(ctx context.Context, u *AdminUser) (bool, error) {
	query := `
		INSERT INTO admin_users (id, email, password_hash)
		VALUES ($1, $2, $3)
		ON CONFLICT (singleton) DO NOTHING
		RETURNING created_at
	`

	err := r.db.QueryRowContext(ctx, query, u.ID, u.Email, u.PasswordHash).Scan(&u.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return false, nil
		}
		return false, fmt.Errorf("failed to claim admin account: %w", err)
	}

	return true, nil
}

// Exists reports whether the admin account has been claimed
func (r *Repository) Exists(ctx context.Context) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM admin_users)`).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check admin existence: %w", err)
	}
	return exists, nil
}

// GetByEmail retrieves the admin by email
func (r *Repository) GetByEmail(ctx context.Context, email string) (*AdminUser, error) {
	query := `SELECT ` + adminColumns + ` FROM admin_users WHERE email = $1`

	u := &AdminUser{}
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&u.ID,
		&u.Email,
		&u.PasswordHash,
		&u.ResetTokenHash,
		&u.ResetTokenExpiresAt,
		&u.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get admin by email: %w", err)
	}

	return u, nil
}

// GetByResetToken retrieves the admin holding the given unexpired token hash
func (r *Repository) GetByResetToken(ctx context.Context, tokenHash string, now time.Time) (*AdminUser, error) {
	query := `SELECT ` + adminColumns + ` FROM admin_users WHERE reset_token_hash = $1 AND reset_token_expires_at > $2`

	u := &AdminUser{}
	err := r.db.QueryRowContext(ctx, query, tokenHash, now).Scan(
		&u.ID,
		&u.Email,
		&u.PasswordHash,
		&u.ResetTokenHash,
		&u.ResetTokenExpiresAt,
		&u.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get admin by reset token: %w", err)
	}

	return u, nil
}

// SetResetToken stores a reset token hash and its expiry on the admin
func (r *Repository) SetResetToken(ctx context.Context, id uuid.UUID, tokenHash string, expiresAt time.Time) error {
	query := `UPDATE admin_users SET reset_token_hash = $2, reset_token_expires_at = $3 WHERE id = $1`

	if _, err := r.db.ExecContext(ctx, query, id, tokenHash, expiresAt); err != nil {
		return fmt.Errorf("failed to set reset token: %w", err)
	}
	return nil
}

// ClearResetToken removes any pending reset token from the admin
func (r *Repository) ClearResetToken(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE admin_users SET reset_token_hash = NULL, reset_token_expires_at = NULL WHERE id = $1`

	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("failed to clear reset token: %w", err)
	}
	return nil
}

// UpdatePassword replaces the password hash and clears any pending reset token
func (r *Repository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	query := `
		UPDATE admin_users
		SET password_hash = $2,
		    reset_token_hash = NULL,
		    reset_token_expires_at = NULL
		WHERE id = $1
	`

	if _, err := r.db.ExecContext(ctx, query, id, passwordHash); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	return nil
}

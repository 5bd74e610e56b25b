package auth

import (
	"time"

	"github.com/google/uuid"
)

// AdminUser is the single administrator account. The storage layer enforces
// that at most one row ever exists.
type AdminUser struct {
	ID                  uuid.UUID  `json:"id"`
	Email               string     `json:"email"`
	PasswordHash        string     `json:"-"`
	ResetTokenHash      *string    `json:"-"`
	ResetTokenExpiresAt *time.Time `json:"-"`
	CreatedAt           time.Time  `json:"created_at"`
}

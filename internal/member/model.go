package member

import (
	"time"

	"github.com/google/uuid"
)

// DeletionState tags whether a member record is live or soft-deleted.
type DeletionState string

const (
	DeletionLive        DeletionState = "LIVE"
	DeletionSoftDeleted DeletionState = "SOFT_DELETED"
)

// Deletion is the tagged deletion state of a member. At is set only when the
// state is SOFT_DELETED.
type Deletion struct {
	State DeletionState `json:"state"`
	At    *time.Time    `json:"at,omitempty"`
}

// IsDeleted reports whether the member is soft-deleted.
func (d Deletion) IsDeleted() bool {
	return d.State == DeletionSoftDeleted
}

// Member represents a co-working space member
type Member struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Phone          string    `json:"phone"`
	AadharNumber   *string   `json:"aadhar_number,omitempty"`
	DueDate        time.Time `json:"due_date"`
	SeatingHours   int       `json:"seating_hours"`
	FeesPaid       int64     `json:"fees_paid"`
	PaymentDate    time.Time `json:"payment_date"`
	Status         Status    `json:"status"` // derived from DueDate, not stored
	AvatarURL      string    `json:"avatar_url"`
	SeatNumber     string    `json:"seat_number"`
	IsSeatReserved bool      `json:"is_seat_reserved"`
	Deletion       Deletion  `json:"deletion"`
	CreatedAt      time.Time `json:"created_at"`
}

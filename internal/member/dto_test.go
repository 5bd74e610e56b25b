package member

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestToResponse(t *testing.T) {
	m := &Member{
		ID:           uuid.New(),
		Name:         "Aarav Sharma",
		Phone:        "9876543210",
		DueDate:      time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC),
		SeatingHours: 8,
		FeesPaid:     1200,
		PaymentDate:  time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
		Status:       StatusActive,
		Deletion:     Deletion{State: DeletionLive},
		CreatedAt:    time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC),
	}

	resp := m.ToResponse()

	assert.Equal(t, m.ID.String(), resp.ID)
	assert.Equal(t, "2024-07-15", resp.DueDate)
	assert.Equal(t, "2024-06-15", resp.PaymentDate)
	assert.Equal(t, "2024-06-01T09:30:00Z", resp.CreatedAt)
}

// The driver may hand back created_at in the server zone; the wire value must
// still name the real UTC instant.
func TestToResponseCreatedAtNormalizedToUTC(t *testing.T) {
	m := &Member{
		ID:        uuid.New(),
		Name:      "Aarav Sharma",
		Phone:     "9876543210",
		Deletion:  Deletion{State: DeletionLive},
		CreatedAt: time.Date(2024, 6, 1, 9, 30, 0, 0, time.FixedZone("UTC-5", -5*3600)),
	}

	resp := m.ToResponse()

	assert.Equal(t, "2024-06-01T14:30:00Z", resp.CreatedAt)
}

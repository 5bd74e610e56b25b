package expense

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestToResponse(t *testing.T) {
	desc := "June rent"
	e := &Expense{
		ID:          uuid.New(),
		Category:    CategoryRent,
		Amount:      3000,
		Date:        time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		Description: &desc,
		CreatedAt:   time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
	}

	resp := e.ToResponse()

	assert.Equal(t, e.ID.String(), resp.ID)
	assert.Equal(t, CategoryRent, resp.Category)
	assert.Equal(t, "2024-06-01", resp.Date)
	assert.Equal(t, "2024-06-01T12:00:00Z", resp.CreatedAt)
}

// created_at can come back from the driver in the server zone; the wire value
// must still name the real UTC instant.
func TestToResponseCreatedAtNormalizedToUTC(t *testing.T) {
	e := &Expense{
		ID:        uuid.New(),
		Category:  CategoryOther,
		Amount:    100,
		Date:      time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		CreatedAt: time.Date(2024, 6, 1, 12, 0, 0, 0, time.FixedZone("UTC+5:30", 5*3600+1800)),
	}

	resp := e.ToResponse()

	assert.Equal(t, "2024-06-01T06:30:00Z", resp.CreatedAt)
}

package expense

import (
	"time"

	"github.com/google/uuid"
)

// Category is the closed set of expense categories
type Category string

const (
	CategoryRent        Category = "Rent"
	CategoryElectricity Category = "Electricity"
	CategoryInternet    Category = "Internet"
	CategoryWater       Category = "Water"
	CategoryMaintenance Category = "Maintenance"
	CategorySupplies    Category = "Supplies"
	CategoryCleaning    Category = "Cleaning"
	CategoryOther       Category = "Other"
)

// Categories lists every valid category, in display order
var Categories = []Category{
	CategoryRent,
	CategoryElectricity,
	CategoryInternet,
	CategoryWater,
	CategoryMaintenance,
	CategorySupplies,
	CategoryCleaning,
	CategoryOther,
}

// IsValid reports whether c is one of the known categories
func (c Category) IsValid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Expense represents an expense record. Expenses are immutable once created;
// the only mutation is deletion.
type Expense struct {
	ID          uuid.UUID `json:"id"`
	Category    Category  `json:"category"`
	Amount      int64     `json:"amount"`
	Date        time.Time `json:"date"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

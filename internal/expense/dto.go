package expense

import "time"

const dateLayout = "2006-01-02"

// CreateExpenseRequest represents the request body for logging an expense
type CreateExpenseRequest struct {
	Category    Category `json:"category" validate:"required"`
	Amount      int64    `json:"amount" validate:"required,gt=0"`
	Date        string   `json:"date" validate:"required"`
	Description *string  `json:"description,omitempty"`
}

// ExpenseResponse represents the response for a single expense
type ExpenseResponse struct {
	ID          string   `json:"id"`
	Category    Category `json:"category"`
	Amount      int64    `json:"amount"`
	Date        string   `json:"date"`
	Description *string  `json:"description,omitempty"`
	CreatedAt   string   `json:"created_at"`
}

// ToResponse converts an Expense model to an ExpenseResponse DTO
func (e *Expense) ToResponse() *ExpenseResponse {
	return &ExpenseResponse{
		ID:          e.ID.String(),
		Category:    e.Category,
		Amount:      e.Amount,
		Date:        e.Date.Format(dateLayout),
		Description: e.Description,
		CreatedAt:   e.CreatedAt.UTC().Format(time.RFC3339),
	}
}

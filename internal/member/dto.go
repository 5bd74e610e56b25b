package member

import "time"

// dateLayout is the wire format for due and payment dates
const dateLayout = "2006-01-02"

// CreateMemberRequest represents the request body for creating a member
type CreateMemberRequest struct {
	Name           string  `json:"name" validate:"required"`
	Phone          string  `json:"phone" validate:"required"`
	AadharNumber   *string `json:"aadhar_number,omitempty"`
	DueDate        string  `json:"due_date" validate:"required"`
	SeatingHours   int     `json:"seating_hours" validate:"required,gt=0"`
	FeesPaid       int64   `json:"fees_paid" validate:"gte=0"`
	PaymentDate    string  `json:"payment_date" validate:"required"`
	SeatNumber     string  `json:"seat_number,omitempty"`
	IsSeatReserved bool    `json:"is_seat_reserved,omitempty"`
}

// UpdateMemberRequest represents the request body for updating a member.
// All mutable fields are replaced on update.
type UpdateMemberRequest struct {
	Name           string  `json:"name" validate:"required"`
	Phone          string  `json:"phone" validate:"required"`
	AadharNumber   *string `json:"aadhar_number,omitempty"`
	DueDate        string  `json:"due_date" validate:"required"`
	SeatingHours   int     `json:"seating_hours" validate:"required,gt=0"`
	FeesPaid       int64   `json:"fees_paid" validate:"gte=0"`
	PaymentDate    string  `json:"payment_date" validate:"required"`
	SeatNumber     string  `json:"seat_number,omitempty"`
	IsSeatReserved bool    `json:"is_seat_reserved,omitempty"`
}

// MemberResponse represents the response for a single member
type MemberResponse struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Phone          string   `json:"phone"`
	AadharNumber   *string  `json:"aadhar_number,omitempty"`
	DueDate        string   `json:"due_date"`
	SeatingHours   int      `json:"seating_hours"`
	FeesPaid       int64    `json:"fees_paid"`
	PaymentDate    string   `json:"payment_date"`
	Status         Status   `json:"status"`
	AvatarURL      string   `json:"avatar_url"`
	SeatNumber     string   `json:"seat_number"`
	IsSeatReserved bool     `json:"is_seat_reserved"`
	Deletion       Deletion `json:"deletion"`
	CreatedAt      string   `json:"created_at"`
}

// ToResponse converts a Member model to a MemberResponse DTO
func (m *Member) ToResponse() *MemberResponse {
	return &MemberResponse{
		ID:             m.ID.String(),
		Name:           m.Name,
		Phone:          m.Phone,
		AadharNumber:   m.AadharNumber,
		DueDate:        m.DueDate.Format(dateLayout),
		SeatingHours:   m.SeatingHours,
		FeesPaid:       m.FeesPaid,
		PaymentDate:    m.PaymentDate.Format(dateLayout),
		Status:         m.Status,
		AvatarURL:      m.AvatarURL,
		SeatNumber:     m.SeatNumber,
		IsSeatReserved: m.IsSeatReserved,
		Deletion:       m.Deletion,
		CreatedAt:      m.CreatedAt.UTC().Format(time.RFC3339),
	}
}

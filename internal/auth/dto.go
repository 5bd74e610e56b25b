package auth

// SignupRequest represents the request body for claiming the admin account
type SignupRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginRequest represents the request body for logging in
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ForgotPasswordRequest represents the request body for requesting a reset link
type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ResetPasswordRequest represents the request body for redeeming a reset token
type ResetPasswordRequest struct {
	Token    string `json:"token" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
}

// UpdatePasswordRequest represents the request body for changing the password
type UpdatePasswordRequest struct {
	Email           string `json:"email" validate:"required,email"`
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=6"`
}

// AdminResponse represents the response for the admin account
type AdminResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// ToResponse converts an AdminUser model to an AdminResponse DTO
func (u *AdminUser) ToResponse() *AdminResponse {
	return &AdminResponse{
		ID:    u.ID.String(),
		Email: u.Email,
	}
}

package auth

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dev-rajankit/recozadmin/pkg/response"
)

// Handler handles HTTP requests for auth operations
type Handler struct {
	service *Service
}

// NewHandler creates a new auth handler with service dependency injected
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for auth endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/signup", h.Signup)
	r.Post("/login", h.Login)
	r.Post("/forgot-password", h.ForgotPassword)
	r.Post("/reset-password", h.ResetPassword)
	r.Post("/update-password", h.UpdatePassword)
	r.Get("/user-exists", h.UserExists)

	return r
}

// Signup handles POST /auth/signup
// @Summary      Claim the admin account
// @Description  Create the single admin account; fails once one exists
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body SignupRequest true "Signup request"
// @Success      201 {object} response.APIResponse{data=AdminResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      403 {object} response.APIResponse
// @Router       /auth/signup [post]
func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	u, err := h.service.Signup(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			response.BadRequest(w, err.Error())
		case errors.Is(err, ErrAdminExists):
			response.Forbidden(w, err.Error())
		default:
			response.InternalError(w, "Failed to create admin account")
		}
		return
	}

	response.JSON(w, http.StatusCreated, u.ToResponse())
}

// Login handles POST /auth/login
// @Summary      Log in
// @Description  Verify admin credentials
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Login request"
// @Success      200 {object} response.APIResponse{data=AdminResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      401 {object} response.APIResponse
// @Failure      429 {object} response.APIResponse
// @Router       /auth/login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	u, err := h.service.Login(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			response.BadRequest(w, err.Error())
		case errors.Is(err, ErrInvalidCredentials):
			response.Unauthorized(w, err.Error())
		case errors.Is(err, ErrRateLimited):
			response.TooManyRequests(w, err.Error())
		default:
			response.InternalError(w, "Failed to log in")
		}
		return
	}

	response.JSON(w, http.StatusOK, u.ToResponse())
}

// ForgotPassword handles POST /auth/forgot-password
// @Summary      Request a password reset link
// @Description  Always reports success so the admin email cannot be probed
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body ForgotPasswordRequest true "Forgot password request"
// @Success      200 {object} response.APIResponse
// @Failure      429 {object} response.APIResponse
// @Router       /auth/forgot-password [post]
func (h *Handler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req ForgotPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.service.ForgotPassword(r.Context(), req.Email); err != nil {
		if errors.Is(err, ErrRateLimited) {
			response.TooManyRequests(w, err.Error())
			return
		}
		response.InternalError(w, "Email could not be sent")
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{"message": "Email sent"})
}

// ResetPassword handles POST /auth/reset-password
// @Summary      Reset the password with a token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body ResetPasswordRequest true "Reset password request"
// @Success      200 {object} response.APIResponse
// @Failure      400 {object} response.APIResponse
// @Router       /auth/reset-password [post]
func (h *Handler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req ResetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.service.ResetPassword(r.Context(), &req); err != nil {
		if errors.Is(err, ErrInvalidInput) || errors.Is(err, ErrInvalidResetToken) {
			response.BadRequest(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to reset password")
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{"message": "Password reset successful"})
}

// UpdatePassword handles POST /auth/update-password
// @Summary      Change the password
// @Description  Requires the current password to match
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body UpdatePasswordRequest true "Update password request"
// @Success      200 {object} response.APIResponse
// @Failure      400 {object} response.APIResponse
// @Failure      401 {object} response.APIResponse
// @Router       /auth/update-password [post]
func (h *Handler) UpdatePassword(w http.ResponseWriter, r *http.Request) {
	var req UpdatePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.service.UpdatePassword(r.Context(), &req); err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			response.BadRequest(w, err.Error())
		case errors.Is(err, ErrInvalidCredentials):
			response.Unauthorized(w, err.Error())
		default:
			response.InternalError(w, "Failed to update password")
		}
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{"message": "Password updated successfully"})
}

// UserExists handles GET /auth/user-exists
// @Summary      Check whether the admin account has been claimed
// @Tags         auth
// @Produce      json
// @Success      200 {object} response.APIResponse
// @Router       /auth/user-exists [get]
func (h *Handler) UserExists(w http.ResponseWriter, r *http.Request) {
	exists, err := h.service.UserExists(r.Context())
	if err != nil {
		response.InternalError(w, "Failed to check admin account")
		return
	}

	response.JSON(w, http.StatusOK, map[string]bool{"user_exists": exists})
}

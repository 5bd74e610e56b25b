package member

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/dev-rajankit/recozadmin/pkg/response"
)

// Handler handles HTTP requests for member operations
type Handler struct {
	service *Service
}

// NewHandler creates a new member handler with service dependency injected
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for member endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.SoftDelete)
	r.Put("/{id}/restore", h.Restore)
	r.Delete("/{id}/permanent", h.HardDelete)

	return r
}

// List handles GET /members
// @Summary      List members
// @Description  List members filtered by lifecycle state or deletion state
// @Tags         members
// @Produce      json
// @Param        filter query string false "Filter" Enums(all, active, expiring-soon, expired, deleted) default(all)
// @Success      200 {object} response.APIResponse{data=[]MemberResponse}
// @Failure      400 {object} response.APIResponse
// @Router       /members [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	filter := Filter(r.URL.Query().Get("filter"))

	members, err := h.service.List(r.Context(), filter)
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			response.BadRequest(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to list members")
		return
	}

	memberResponses := make([]*MemberResponse, len(members))
	for i, m := range members {
		memberResponses[i] = m.ToResponse()
	}

	response.JSON(w, http.StatusOK, memberResponses)
}

// Create handles POST /members
// @Summary      Create a new member
// @Description  Register a new member with due date, seating hours and fee details
// @Tags         members
// @Accept       json
// @Produce      json
// @Param        request body CreateMemberRequest true "Member creation request"
// @Success      201 {object} response.APIResponse{data=MemberResponse}
// @Failure      400 {object} response.APIResponse
// @Router       /members [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	m, err := h.service.Create(r.Context(), &req)
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			response.BadRequest(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to create member")
		return
	}

	response.JSON(w, http.StatusCreated, m.ToResponse())
}

// Update handles PUT /members/{id}
// @Summary      Update a member
// @Description  Replace a member's mutable fields
// @Tags         members
// @Accept       json
// @Produce      json
// @Param        id path string true "Member ID"
// @Param        request body UpdateMemberRequest true "Member update request"
// @Success      200 {object} response.APIResponse{data=MemberResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /members/{id} [put]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid member ID")
		return
	}

	var req UpdateMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	m, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			response.BadRequest(w, err.Error())
		case errors.Is(err, ErrMemberNotFound):
			response.NotFound(w, err.Error())
		default:
			response.InternalError(w, "Failed to update member")
		}
		return
	}

	response.JSON(w, http.StatusOK, m.ToResponse())
}

// SoftDelete handles DELETE /members/{id}
// @Summary      Soft-delete a member
// @Description  Mark a member as deleted; the record stays recoverable via restore
// @Tags         members
// @Produce      json
// @Param        id path string true "Member ID"
// @Success      200 {object} response.APIResponse{data=MemberResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /members/{id} [delete]
func (h *Handler) SoftDelete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid member ID")
		return
	}

	m, err := h.service.SoftDelete(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrMemberNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to delete member")
		return
	}

	response.JSON(w, http.StatusOK, m.ToResponse())
}

// Restore handles PUT /members/{id}/restore
// @Summary      Restore a soft-deleted member
// @Tags         members
// @Produce      json
// @Param        id path string true "Member ID"
// @Success      200 {object} response.APIResponse{data=MemberResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /members/{id}/restore [put]
func (h *Handler) Restore(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid member ID")
		return
	}

	m, err := h.service.Restore(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrMemberNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to restore member")
		return
	}

	response.JSON(w, http.StatusOK, m.ToResponse())
}

// HardDelete handles DELETE /members/{id}/permanent
// @Summary      Permanently delete a member
// @Description  Remove a member record irreversibly
// @Tags         members
// @Produce      json
// @Param        id path string true "Member ID"
// @Success      200 {object} response.APIResponse
// @Failure      400 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /members/{id}/permanent [delete]
func (h *Handler) HardDelete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid member ID")
		return
	}

	if err := h.service.HardDelete(r.Context(), id); err != nil {
		if errors.Is(err, ErrMemberNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to delete member")
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{"message": "Member deleted permanently"})
}

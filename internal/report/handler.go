package report

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dev-rajankit/recozadmin/pkg/response"
)

// Handler handles HTTP requests for report operations
type Handler struct {
	service *Service
}

// NewHandler creates a new report handler with service dependency injected
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for report endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/monthly", h.Monthly)
	r.Get("/expense-breakdown", h.Breakdown)
	r.Get("/dashboard", h.Dashboard)

	return r
}

// Monthly handles GET /reports/monthly
// @Summary      Monthly financial series
// @Description  Trailing six months of revenue, expenses and paying-member counts
// @Tags         reports
// @Produce      json
// @Success      200 {object} response.APIResponse{data=MonthlyReport}
// @Router       /reports/monthly [get]
func (h *Handler) Monthly(w http.ResponseWriter, r *http.Request) {
	report, err := h.service.Monthly(r.Context())
	if err != nil {
		response.InternalError(w, "Failed to build monthly report")
		return
	}

	response.JSON(w, http.StatusOK, report)
}

// Breakdown handles GET /reports/expense-breakdown
// @Summary      Expense breakdown by category
// @Tags         reports
// @Produce      json
// @Success      200 {object} response.APIResponse{data=[]CategoryTotal}
// @Router       /reports/expense-breakdown [get]
func (h *Handler) Breakdown(w http.ResponseWriter, r *http.Request) {
	totals, err := h.service.Breakdown(r.Context())
	if err != nil {
		response.InternalError(w, "Failed to build expense breakdown")
		return
	}

	response.JSON(w, http.StatusOK, totals)
}

// Dashboard handles GET /reports/dashboard
// @Summary      Dashboard headline stats
// @Description  Member counts, current-month revenue and pending fees
// @Tags         reports
// @Produce      json
// @Success      200 {object} response.APIResponse{data=DashboardStats}
// @Router       /reports/dashboard [get]
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Dashboard(r.Context())
	if err != nil {
		response.InternalError(w, "Failed to compute dashboard stats")
		return
	}

	response.JSON(w, http.StatusOK, stats)
}

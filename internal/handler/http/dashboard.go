package http

import (
	"net/http"

	"github.com/cmlabs-hris/hr-attendance-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/hr-attendance-go/internal/handler/http/response"
)

type DashboardHandler interface {
	// GetDashboard returns organisation-wide counts
	GetDashboard(w http.ResponseWriter, r *http.Request)
	// GetMyDashboard returns the caller's own counts and attendance percentage
	GetMyDashboard(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &dashboardHandlerImpl{dashboardService: dashboardService}
}

// GetDashboard handles GET /dashboard
func (h *dashboardHandlerImpl) GetDashboard(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.GetHRDashboard(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetMyDashboard handles GET /me/dashboard
func (h *dashboardHandlerImpl) GetMyDashboard(w http.ResponseWriter, r *http.Request) {
	principal, err := principalFrom(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.dashboardService.GetEmployeeDashboard(r.Context(), principal)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

package http

import (
	"net/http"

	"github.com/fleetdesk/attendance-backend-go/internal/domain/attendance"
	"github.com/fleetdesk/attendance-backend-go/internal/domain/dashboard"
	"github.com/fleetdesk/attendance-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	GetDashboard(w http.ResponseWriter, r *http.Request)
	Archive(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService  dashboard.Service
	attendanceService attendance.Service
}

func NewDashboardHandler(dashboardService dashboard.Service, attendanceService attendance.Service) DashboardHandler {
	return &dashboardHandlerImpl{
		dashboardService:  dashboardService,
		attendanceService: attendanceService,
	}
}

func (h *dashboardHandlerImpl) GetDashboard(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.GetDashboard(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *dashboardHandlerImpl) Archive(w http.ResponseWriter, r *http.Request) {
	before := r.URL.Query().Get("before")

	result, err := h.attendanceService.ArchiveRecords(r.Context(), before)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Old attendance records archived", result)
}

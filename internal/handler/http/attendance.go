package http

import (
	"net/http"

	"github.com/fleetdesk/attendance-backend-go/internal/domain/attendance"
	"github.com/fleetdesk/attendance-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type AttendanceHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	GetSummary(w http.ResponseWriter, r *http.Request)
	GetCalendar(w http.ResponseWriter, r *http.Request)
	GetDailyDetail(w http.ResponseWriter, r *http.Request)
	Export(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.Service
}

func NewAttendanceHandler(attendanceService attendance.Service) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// listFilterFromQuery reads the dashboard filter dropdowns off the query
// string. Absent and "all" values mean unconstrained.
func listFilterFromQuery(r *http.Request) attendance.ListFilter {
	q := r.URL.Query()
	return attendance.ListFilter{
		DriverID:  q.Get("driver_id"),
		POC:       q.Get("poc"),
		CompanyID: q.Get("company_id"),
		StartDate: q.Get("start_date"),
		EndDate:   q.Get("end_date"),
	}
}

func (h *attendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.ListAttendance(r.Context(), listFilterFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *attendanceHandlerImpl) GetSummary(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.GetSummary(r.Context(), listFilterFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *attendanceHandlerImpl) GetCalendar(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.GetCalendar(r.Context(), listFilterFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *attendanceHandlerImpl) GetDailyDetail(w http.ResponseWriter, r *http.Request) {
	date := chi.URLParam(r, "date")

	result, err := h.attendanceService.GetDailyDetail(r.Context(), date, listFilterFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *attendanceHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	csv, err := h.attendanceService.ExportAttendance(r.Context(), listFilterFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="`+attendance.ExportFilename+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(csv))
}

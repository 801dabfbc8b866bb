package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/fleetdesk/attendance-backend-go/internal/domain/driver"
	"github.com/fleetdesk/attendance-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type DriverHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	CheckIn(w http.ResponseWriter, r *http.Request)
	GetHistory(w http.ResponseWriter, r *http.Request)
}

type driverHandlerImpl struct {
	driverService driver.Service
}

func NewDriverHandler(driverService driver.Service) DriverHandler {
	return &driverHandlerImpl{
		driverService: driverService,
	}
}

func (h *driverHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := driver.Filter{
		CompanyID: q.Get("company_id"),
		POC:       q.Get("poc"),
		Presence:  q.Get("presence"),
	}

	result, err := h.driverService.ListDrivers(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *driverHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.driverService.GetDriver(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *driverHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req driver.CreateDriverRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.driverService.CreateDriver(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Driver created successfully", result)
}

func (h *driverHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req driver.UpdateDriverRequest
	req.ID = id

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.driverService.UpdateDriver(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Driver updated successfully", result)
}

func (h *driverHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.driverService.DeleteDriver(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]string{"message": "Driver deleted successfully"})
}

func (h *driverHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req driver.CheckInRequest
	req.DriverID = id

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.driverService.CheckIn(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Presence updated successfully", result)
}

func (h *driverHandlerImpl) GetHistory(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	days := 0
	if v := r.URL.Query().Get("days"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 0 {
			response.BadRequest(w, "days must be a non-negative integer", nil)
			return
		}
		days = parsed
	}

	result, err := h.driverService.GetHistory(r.Context(), id, days)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

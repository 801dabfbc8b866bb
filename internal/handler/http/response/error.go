package response

import (
	"errors"
	"net/http"

	"github.com/fleetdesk/attendance-backend-go/internal/domain/attendance"
	"github.com/fleetdesk/attendance-backend-go/internal/domain/company"
	"github.com/fleetdesk/attendance-backend-go/internal/domain/driver"
	"github.com/fleetdesk/attendance-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Attendance domain errors
	switch {
	case errors.Is(err, attendance.ErrDuplicateRecord):
		Conflict(w, "Attendance record already exists for this driver and date")

	// Driver domain errors
	case errors.Is(err, driver.ErrDriverNotFound):
		NotFound(w, "Driver not found")
	case errors.Is(err, driver.ErrEmployeeIDExists):
		Conflict(w, "Employee ID already registered")

	// Company domain errors
	case errors.Is(err, company.ErrCompanyNotFound):
		NotFound(w, "Company not found")
	case errors.Is(err, company.ErrNameExists):
		Conflict(w, "Company name already exists")
	case errors.Is(err, company.ErrCompanyHasDrivers):
		Conflict(w, "Company still has drivers assigned")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}

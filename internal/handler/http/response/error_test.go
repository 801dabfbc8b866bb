package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fleetdesk/attendance-backend-go/internal/domain/attendance"
	"github.com/fleetdesk/attendance-backend-go/internal/domain/company"
	"github.com/fleetdesk/attendance-backend-go/internal/domain/driver"
	"github.com/fleetdesk/attendance-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func handleErr(t *testing.T, err error) (int, Response) {
	t.Helper()
	rec := httptest.NewRecorder()
	HandleError(rec, err)

	var body Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return rec.Code, body
}

func TestHandleErrorDomainMappings(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"duplicate record", attendance.ErrDuplicateRecord, http.StatusConflict, "CONFLICT"},
		{"driver not found", driver.ErrDriverNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"employee id taken", driver.ErrEmployeeIDExists, http.StatusConflict, "CONFLICT"},
		{"company not found", company.ErrCompanyNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"company name taken", company.ErrNameExists, http.StatusConflict, "CONFLICT"},
		{"company has drivers", company.ErrCompanyHasDrivers, http.StatusConflict, "CONFLICT"},
		{"unknown error", errors.New("connection reset"), http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := handleErr(t, tt.err)

			assert.Equal(t, tt.wantStatus, status)
			assert.False(t, body.Success)
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.wantCode, body.Error.Code)
		})
	}
}

func TestHandleErrorUnwrapsWrappedErrors(t *testing.T) {
	wrapped := fmt.Errorf("failed to create attendance record: %w", attendance.ErrDuplicateRecord)

	status, body := handleErr(t, wrapped)

	assert.Equal(t, http.StatusConflict, status)
	require.NotNil(t, body.Error)
	assert.Equal(t, "CONFLICT", body.Error.Code)
}

func TestHandleErrorValidationErrors(t *testing.T) {
	errs := validator.ValidationErrors{
		{Field: "driver_id", Message: "driver_id is required"},
	}

	status, body := handleErr(t, errs)

	assert.Equal(t, http.StatusUnprocessableEntity, status)
	require.NotNil(t, body.Error)
	assert.Equal(t, "VALIDATION_ERROR", body.Error.Code)
	assert.Equal(t, "driver_id is required", body.Error.Details["driver_id"])
}

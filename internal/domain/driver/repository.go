package driver

import (
	"context"
	"time"

	"github.com/fleetdesk/attendance-backend-go/internal/domain/attendance"
)

// Repository defines data access methods for the driver roster.
type Repository interface {
	// List retrieves drivers matching the filter, ordered by name.
	List(ctx context.Context, filter Filter) ([]Driver, error)

	// GetByID retrieves a driver by ID.
	GetByID(ctx context.Context, id string) (Driver, error)

	// ExistsByEmployeeID reports whether the employee ID is taken.
	ExistsByEmployeeID(ctx context.Context, employeeID string) (bool, error)

	// Create inserts a new driver.
	Create(ctx context.Context, d Driver) (Driver, error)

	// Update applies the non-nil fields of the request.
	Update(ctx context.Context, id string, req UpdateDriverRequest) error

	// SetPresence updates the driver's current presence and last-update
	// timestamp.
	SetPresence(ctx context.Context, id string, presence attendance.Status, location *string, at time.Time) error

	// Delete removes a driver from the roster.
	Delete(ctx context.Context, id string) error
}

package driver

import "context"

// Service defines business logic for roster management and the
// check-in kiosk flow.
type Service interface {
	// ListDrivers retrieves the roster with optional filters.
	ListDrivers(ctx context.Context, filter Filter) (ListDriversResponse, error)

	// GetDriver retrieves a single driver.
	GetDriver(ctx context.Context, id string) (DriverResponse, error)

	// CreateDriver adds a driver to the roster.
	CreateDriver(ctx context.Context, req CreateDriverRequest) (DriverResponse, error)

	// UpdateDriver updates driver master data.
	UpdateDriver(ctx context.Context, req UpdateDriverRequest) (DriverResponse, error)

	// DeleteDriver removes a driver from the roster.
	DeleteDriver(ctx context.Context, id string) error

	// CheckIn updates a driver's presence from the wire vocabulary and
	// records the day's attendance outcome.
	CheckIn(ctx context.Context, req CheckInRequest) (DriverResponse, error)

	// GetHistory retrieves the driver's records for the last N days.
	GetHistory(ctx context.Context, driverID string, days int) (HistoryResponse, error)
}

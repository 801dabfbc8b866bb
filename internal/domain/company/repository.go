package company

import "context"

// Repository defines data access methods for companies.
type Repository interface {
	// List retrieves all companies ordered by name.
	List(ctx context.Context) ([]Company, error)

	// GetByID retrieves a company by ID.
	GetByID(ctx context.Context, id string) (Company, error)

	// ExistsByName reports whether the name is taken.
	ExistsByName(ctx context.Context, name string) (bool, error)

	// Create inserts a new company.
	Create(ctx context.Context, c Company) (Company, error)

	// Update applies the non-nil fields of the request.
	Update(ctx context.Context, id string, req UpdateCompanyRequest) error

	// UpdateSummary writes the recomputed roster counters.
	UpdateSummary(ctx context.Context, id string, presentCount, absentCount, totalDrivers int, presentPercentage float64) error

	// Delete removes a company.
	Delete(ctx context.Context, id string) error
}

package company

import "context"

// Service defines business logic for company management.
type Service interface {
	// ListCompanies retrieves all companies.
	ListCompanies(ctx context.Context) ([]CompanyResponse, error)

	// GetCompany retrieves a single company.
	GetCompany(ctx context.Context, id string) (CompanyResponse, error)

	// CreateCompany adds a company.
	CreateCompany(ctx context.Context, req CreateCompanyRequest) (CompanyResponse, error)

	// UpdateCompany updates company master data.
	UpdateCompany(ctx context.Context, req UpdateCompanyRequest) (CompanyResponse, error)

	// DeleteCompany removes a company without drivers.
	DeleteCompany(ctx context.Context, id string) error

	// RefreshSummary recomputes the denormalized roster counters from
	// the live driver roster.
	RefreshSummary(ctx context.Context, id string) (CompanyResponse, error)
}

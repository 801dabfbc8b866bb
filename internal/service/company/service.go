package company

import (
	"context"
	"fmt"
	"math"

	"github.com/fleetdesk/attendance-backend-go/internal/domain/attendance"
	"github.com/fleetdesk/attendance-backend-go/internal/domain/company"
	"github.com/fleetdesk/attendance-backend-go/internal/domain/driver"
	"github.com/google/uuid"
)

type CompanyServiceImpl struct {
	companyRepo company.Repository
	driverRepo  driver.Repository
}

func NewCompanyService(companyRepo company.Repository, driverRepo driver.Repository) company.Service {
	return &CompanyServiceImpl{
		companyRepo: companyRepo,
		driverRepo:  driverRepo,
	}
}

// ListCompanies implements company.Service.
func (s *CompanyServiceImpl) ListCompanies(ctx context.Context) ([]company.CompanyResponse, error) {
	companies, err := s.companyRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	return company.NewCompanyResponses(companies), nil
}

// GetCompany implements company.Service.
func (s *CompanyServiceImpl) GetCompany(ctx context.Context, id string) (company.CompanyResponse, error) {
	c, err := s.companyRepo.GetByID(ctx, id)
	if err != nil {
		return company.CompanyResponse{}, err
	}
	return company.NewCompanyResponse(c), nil
}

// CreateCompany implements company.Service.
func (s *CompanyServiceImpl) CreateCompany(ctx context.Context, req company.CreateCompanyRequest) (company.CompanyResponse, error) {
	if err := req.Validate(); err != nil {
		return company.CompanyResponse{}, err
	}

	exists, err := s.companyRepo.ExistsByName(ctx, req.Name)
	if err != nil {
		return company.CompanyResponse{}, fmt.Errorf("failed to check company name: %w", err)
	}
	if exists {
		return company.CompanyResponse{}, company.ErrNameExists
	}

	created, err := s.companyRepo.Create(ctx, company.Company{
		ID:   uuid.NewString(),
		Name: req.Name,
	})
	if err != nil {
		return company.CompanyResponse{}, fmt.Errorf("failed to create company: %w", err)
	}

	return company.NewCompanyResponse(created), nil
}

// UpdateCompany implements company.Service.
func (s *CompanyServiceImpl) UpdateCompany(ctx context.Context, req company.UpdateCompanyRequest) (company.CompanyResponse, error) {
	if err := req.Validate(); err != nil {
		return company.CompanyResponse{}, err
	}

	existing, err := s.companyRepo.GetByID(ctx, req.ID)
	if err != nil {
		return company.CompanyResponse{}, err
	}

	if req.Name != nil && *req.Name != existing.Name {
		exists, err := s.companyRepo.ExistsByName(ctx, *req.Name)
		if err != nil {
			return company.CompanyResponse{}, fmt.Errorf("failed to check company name: %w", err)
		}
		if exists {
			return company.CompanyResponse{}, company.ErrNameExists
		}
	}

	if err := s.companyRepo.Update(ctx, req.ID, req); err != nil {
		return company.CompanyResponse{}, fmt.Errorf("failed to update company: %w", err)
	}

	updated, err := s.companyRepo.GetByID(ctx, req.ID)
	if err != nil {
		return company.CompanyResponse{}, err
	}
	return company.NewCompanyResponse(updated), nil
}

// DeleteCompany implements company.Service. A company with drivers still
// assigned cannot be removed.
func (s *CompanyServiceImpl) DeleteCompany(ctx context.Context, id string) error {
	if _, err := s.companyRepo.GetByID(ctx, id); err != nil {
		return err
	}

	drivers, err := s.driverRepo.List(ctx, driver.Filter{CompanyID: id})
	if err != nil {
		return fmt.Errorf("failed to list company drivers: %w", err)
	}
	if len(drivers) > 0 {
		return company.ErrCompanyHasDrivers
	}

	if err := s.companyRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete company: %w", err)
	}
	return nil
}

// RefreshSummary implements company.Service. Present counts any attended
// presence, absent counts the explicit Absent status, and the percentage
// is a one-decimal value over the full roster.
func (s *CompanyServiceImpl) RefreshSummary(ctx context.Context, id string) (company.CompanyResponse, error) {
	c, err := s.companyRepo.GetByID(ctx, id)
	if err != nil {
		return company.CompanyResponse{}, err
	}

	drivers, err := s.driverRepo.List(ctx, driver.Filter{CompanyID: id})
	if err != nil {
		return company.CompanyResponse{}, fmt.Errorf("failed to list company drivers: %w", err)
	}

	present, absent := 0, 0
	for _, d := range drivers {
		switch {
		case d.Presence.Attended():
			present++
		case d.Presence == attendance.StatusAbsent:
			absent++
		}
	}

	pct := 0.0
	if len(drivers) > 0 {
		pct = round1(float64(present) / float64(len(drivers)) * 100)
	}

	if err := s.companyRepo.UpdateSummary(ctx, id, present, absent, len(drivers), pct); err != nil {
		return company.CompanyResponse{}, fmt.Errorf("failed to update company summary: %w", err)
	}

	c.PresentCount = present
	c.AbsentCount = absent
	c.TotalDrivers = len(drivers)
	c.PresentPercentage = pct
	return company.NewCompanyResponse(c), nil
}

func round1(f float64) float64 {
	return math.Round(f*10) / 10
}

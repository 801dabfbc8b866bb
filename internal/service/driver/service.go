package driver

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fleetdesk/attendance-backend-go/internal/domain/attendance"
	"github.com/fleetdesk/attendance-backend-go/internal/domain/company"
	"github.com/fleetdesk/attendance-backend-go/internal/domain/driver"
	"github.com/fleetdesk/attendance-backend-go/internal/pkg/database"
	"github.com/fleetdesk/attendance-backend-go/internal/repository/postgresql"
	"github.com/google/uuid"
)

const defaultHistoryDays = 30

type DriverServiceImpl struct {
	db             *database.DB
	driverRepo     driver.Repository
	recordRepo     attendance.Repository
	companyService company.Service
	now            func() time.Time
}

func NewDriverService(db *database.DB, driverRepo driver.Repository, recordRepo attendance.Repository, companyService company.Service) driver.Service {
	return &DriverServiceImpl{
		db:             db,
		driverRepo:     driverRepo,
		recordRepo:     recordRepo,
		companyService: companyService,
		now:            time.Now,
	}
}

// ListDrivers implements driver.Service.
func (s *DriverServiceImpl) ListDrivers(ctx context.Context, filter driver.Filter) (driver.ListDriversResponse, error) {
	if err := filter.Validate(); err != nil {
		return driver.ListDriversResponse{}, err
	}

	drivers, err := s.driverRepo.List(ctx, filter)
	if err != nil {
		return driver.ListDriversResponse{}, fmt.Errorf("failed to list drivers: %w", err)
	}

	return driver.ListDriversResponse{
		TotalCount: len(drivers),
		Drivers:    driver.NewDriverResponses(drivers),
	}, nil
}

// GetDriver implements driver.Service.
func (s *DriverServiceImpl) GetDriver(ctx context.Context, id string) (driver.DriverResponse, error) {
	d, err := s.driverRepo.GetByID(ctx, id)
	if err != nil {
		return driver.DriverResponse{}, err
	}
	return driver.NewDriverResponse(d), nil
}

// CreateDriver implements driver.Service.
func (s *DriverServiceImpl) CreateDriver(ctx context.Context, req driver.CreateDriverRequest) (driver.DriverResponse, error) {
	if err := req.Validate(); err != nil {
		return driver.DriverResponse{}, err
	}

	exists, err := s.driverRepo.ExistsByEmployeeID(ctx, req.EmployeeID)
	if err != nil {
		return driver.DriverResponse{}, fmt.Errorf("failed to check employee id: %w", err)
	}
	if exists {
		return driver.DriverResponse{}, driver.ErrEmployeeIDExists
	}

	offDays, err := parseOffDays(req.ScheduledOffDays)
	if err != nil {
		return driver.DriverResponse{}, err
	}

	created, err := s.driverRepo.Create(ctx, driver.Driver{
		ID:               uuid.NewString(),
		Name:             req.Name,
		EmployeeID:       req.EmployeeID,
		CompanyID:        req.CompanyID,
		POC:              req.POC,
		Contact:          req.Contact,
		Presence:         attendance.StatusNotLoggedIn,
		ScheduledOffDays: offDays,
	})
	if err != nil {
		return driver.DriverResponse{}, fmt.Errorf("failed to create driver: %w", err)
	}

	s.refreshCompanySummary(ctx, created.CompanyID)

	return driver.NewDriverResponse(created), nil
}

// UpdateDriver implements driver.Service.
func (s *DriverServiceImpl) UpdateDriver(ctx context.Context, req driver.UpdateDriverRequest) (driver.DriverResponse, error) {
	if err := req.Validate(); err != nil {
		return driver.DriverResponse{}, err
	}

	existing, err := s.driverRepo.GetByID(ctx, req.ID)
	if err != nil {
		return driver.DriverResponse{}, err
	}

	if err := s.driverRepo.Update(ctx, req.ID, req); err != nil {
		return driver.DriverResponse{}, fmt.Errorf("failed to update driver: %w", err)
	}

	s.refreshCompanySummary(ctx, existing.CompanyID)
	if req.CompanyID != nil && *req.CompanyID != existing.CompanyID {
		s.refreshCompanySummary(ctx, *req.CompanyID)
	}

	updated, err := s.driverRepo.GetByID(ctx, req.ID)
	if err != nil {
		return driver.DriverResponse{}, err
	}
	return driver.NewDriverResponse(updated), nil
}

// DeleteDriver implements driver.Service.
func (s *DriverServiceImpl) DeleteDriver(ctx context.Context, id string) error {
	existing, err := s.driverRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.driverRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete driver: %w", err)
	}

	s.refreshCompanySummary(ctx, existing.CompanyID)
	return nil
}

// CheckIn implements driver.Service. The wire presence value is
// translated to the display vocabulary, the roster presence is updated
// and the day's record is replaced whole - engine inputs are never
// edited in place.
func (s *DriverServiceImpl) CheckIn(ctx context.Context, req driver.CheckInRequest) (driver.DriverResponse, error) {
	if err := req.Validate(); err != nil {
		return driver.DriverResponse{}, err
	}

	d, err := s.driverRepo.GetByID(ctx, req.DriverID)
	if err != nil {
		return driver.DriverResponse{}, err
	}

	status := attendance.StatusFromWire(req.PresenceStatus)
	now := s.now()

	record := attendance.Record{
		ID:         uuid.NewString(),
		DriverID:   d.ID,
		DriverName: d.Name,
		Date:       attendance.Day(now),
		Status:     status,
		POC:        &d.POC,
		CompanyID:  &d.CompanyID,
	}
	if status != attendance.StatusNotLoggedIn {
		ts := now
		record.Timestamp = &ts
	}

	// The roster presence and the day's record must land together.
	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		if err := s.driverRepo.SetPresence(txCtx, d.ID, status, req.Location, now); err != nil {
			return fmt.Errorf("failed to update presence: %w", err)
		}
		if _, err := s.recordRepo.Upsert(txCtx, record); err != nil {
			return fmt.Errorf("failed to record attendance: %w", err)
		}
		return nil
	})
	if err != nil {
		return driver.DriverResponse{}, err
	}

	s.refreshCompanySummary(ctx, d.CompanyID)

	d.Presence = status
	d.LastUpdate = &now
	if req.Location != nil {
		d.Location = req.Location
	}
	return driver.NewDriverResponse(d), nil
}

// GetHistory implements driver.Service.
func (s *DriverServiceImpl) GetHistory(ctx context.Context, driverID string, days int) (driver.HistoryResponse, error) {
	if days <= 0 {
		days = defaultHistoryDays
	}

	d, err := s.driverRepo.GetByID(ctx, driverID)
	if err != nil {
		return driver.HistoryResponse{}, err
	}

	to := attendance.Day(s.now())
	from := to.AddDate(0, 0, -(days - 1))
	criteria := attendance.Criteria{
		DriverID: &driverID,
		Range:    attendance.DateRange{From: &from, To: &to},
	}

	records, err := s.recordRepo.List(ctx, criteria)
	if err != nil {
		return driver.HistoryResponse{}, fmt.Errorf("failed to list attendance records: %w", err)
	}

	summary := attendance.Summarize(records, attendance.ModeSingleDriver, driverID)

	return driver.HistoryResponse{
		Driver:  driver.NewDriverResponse(d),
		Days:    days,
		Records: attendance.NewRecordResponses(records),
		Summary: attendance.NewSummaryResponse(summary),
	}, nil
}

// refreshCompanySummary recomputes the denormalized company counters.
// The counters are a cached projection, so a failed refresh is logged
// and the mutation itself still succeeds.
func (s *DriverServiceImpl) refreshCompanySummary(ctx context.Context, companyID string) {
	if _, err := s.companyService.RefreshSummary(ctx, companyID); err != nil {
		slog.Warn("Failed to refresh company summary", "company_id", companyID, "error", err)
	}
}

func parseOffDays(values []string) ([]time.Time, error) {
	offDays := make([]time.Time, 0, len(values))
	for _, v := range values {
		day, err := time.Parse("2006-01-02", v)
		if err != nil {
			return nil, fmt.Errorf("invalid scheduled off day %q: %w", v, err)
		}
		offDays = append(offDays, day)
	}
	return offDays, nil
}

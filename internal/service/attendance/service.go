package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/fleetdesk/attendance-backend-go/internal/domain/attendance"
	"github.com/fleetdesk/attendance-backend-go/internal/domain/driver"
	"github.com/fleetdesk/attendance-backend-go/internal/pkg/validator"
)

type AttendanceServiceImpl struct {
	recordRepo    attendance.Repository
	driverRepo    driver.Repository
	retentionDays int
	now           func() time.Time
}

func NewAttendanceService(recordRepo attendance.Repository, driverRepo driver.Repository, retentionDays int) attendance.Service {
	return &AttendanceServiceImpl{
		recordRepo:    recordRepo,
		driverRepo:    driverRepo,
		retentionDays: retentionDays,
		now:           time.Now,
	}
}

// ListAttendance implements attendance.Service.
func (s *AttendanceServiceImpl) ListAttendance(ctx context.Context, filter attendance.ListFilter) (attendance.ListRecordsResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListRecordsResponse{}, err
	}

	records, err := s.recordRepo.List(ctx, filter.Criteria())
	if err != nil {
		return attendance.ListRecordsResponse{}, fmt.Errorf("failed to list attendance records: %w", err)
	}

	return attendance.ListRecordsResponse{
		TotalCount: len(records),
		Records:    attendance.NewRecordResponses(records),
	}, nil
}

// GetSummary implements attendance.Service.
func (s *AttendanceServiceImpl) GetSummary(ctx context.Context, filter attendance.ListFilter) (attendance.SummaryResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.SummaryResponse{}, err
	}

	criteria := filter.Criteria()
	records, err := s.recordRepo.List(ctx, criteria)
	if err != nil {
		return attendance.SummaryResponse{}, fmt.Errorf("failed to list attendance records: %w", err)
	}

	summary := attendance.Summarize(records, criteria.Mode(), filter.DriverID)
	return attendance.NewSummaryResponse(summary), nil
}

// GetCalendar implements attendance.Service.
func (s *AttendanceServiceImpl) GetCalendar(ctx context.Context, filter attendance.ListFilter) (attendance.CalendarResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.CalendarResponse{}, err
	}

	criteria := filter.Criteria()
	records, err := s.recordRepo.List(ctx, criteria)
	if err != nil {
		return attendance.CalendarResponse{}, fmt.Errorf("failed to list attendance records: %w", err)
	}

	mode := criteria.Mode()

	// The off-day schedule only matters when a single driver's calendar
	// is rendered; the rollup mode never derives Day Off cells.
	var scheduledOffDays []time.Time
	if mode == attendance.ModeSingleDriver {
		d, err := s.driverRepo.GetByID(ctx, filter.DriverID)
		if err != nil {
			return attendance.CalendarResponse{}, err
		}
		scheduledOffDays = d.ScheduledOffDays
	}

	days := attendance.RenderRange(criteria.Range, s.now())
	cells := make([]attendance.CalendarDayResponse, 0, len(days))
	for _, day := range days {
		cell := attendance.DayStatus(day, records, mode, filter.DriverID, scheduledOffDays)
		cells = append(cells, attendance.NewCalendarDayResponse(cell))
	}

	summary := attendance.Summarize(records, mode, filter.DriverID)

	return attendance.CalendarResponse{
		Summary: attendance.NewSummaryResponse(summary),
		Days:    cells,
	}, nil
}

// GetDailyDetail implements attendance.Service. The day click re-runs
// the filter with the clicked day substituted for the period range, so
// the drill-down covers that day regardless of the visible range.
func (s *AttendanceServiceImpl) GetDailyDetail(ctx context.Context, date string, filter attendance.ListFilter) (attendance.DailyDetailResponse, error) {
	day, ok := validator.IsValidDate(date)
	if !ok {
		return attendance.DailyDetailResponse{}, validator.ValidationErrors{{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		}}
	}

	if err := filter.Validate(); err != nil {
		return attendance.DailyDetailResponse{}, err
	}

	criteria := filter.Criteria()
	criteria.Range = attendance.DateRange{From: &day}

	records, err := s.recordRepo.List(ctx, criteria)
	if err != nil {
		return attendance.DailyDetailResponse{}, fmt.Errorf("failed to list attendance records: %w", err)
	}

	detail := attendance.DrillDown(day, records)
	return attendance.NewDailyDetailResponse(detail), nil
}

// ExportAttendance implements attendance.Service.
func (s *AttendanceServiceImpl) ExportAttendance(ctx context.Context, filter attendance.ListFilter) (string, error) {
	if err := filter.Validate(); err != nil {
		return "", err
	}

	records, err := s.recordRepo.List(ctx, filter.Criteria())
	if err != nil {
		return "", fmt.Errorf("failed to list attendance records: %w", err)
	}

	return attendance.ExportCSV(records), nil
}

// ArchiveRecords implements attendance.Service.
func (s *AttendanceServiceImpl) ArchiveRecords(ctx context.Context, before string) (attendance.ArchiveResponse, error) {
	cutoff := attendance.Day(s.now().AddDate(0, 0, -s.retentionDays))
	if before != "" {
		day, ok := validator.IsValidDate(before)
		if !ok {
			return attendance.ArchiveResponse{}, validator.ValidationErrors{{
				Field:   "before",
				Message: "before must be in YYYY-MM-DD format",
			}}
		}
		cutoff = day
	}

	removed, err := s.recordRepo.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return attendance.ArchiveResponse{}, fmt.Errorf("failed to archive attendance records: %w", err)
	}

	return attendance.ArchiveResponse{
		RemovedCount: removed,
		Cutoff:       cutoff.Format("2006-01-02"),
	}, nil
}

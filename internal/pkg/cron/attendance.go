package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fleetdesk/attendance-backend-go/internal/domain/attendance"
	"github.com/fleetdesk/attendance-backend-go/internal/domain/driver"
	"github.com/google/uuid"
)

type AttendanceJobs struct {
	recordRepo    attendance.Repository
	driverRepo    driver.Repository
	attendanceSvc attendance.Service
	now           func() time.Time
}

func NewAttendanceJobs(
	recordRepo attendance.Repository,
	driverRepo driver.Repository,
	attendanceSvc attendance.Service,
) *AttendanceJobs {
	return &AttendanceJobs{
		recordRepo:    recordRepo,
		driverRepo:    driverRepo,
		attendanceSvc: attendanceSvc,
		now:           time.Now,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("mark_absent_drivers", 1*time.Hour, j.MarkAbsentDrivers)
	scheduler.AddJob("archive_old_records", 1*time.Hour, j.ArchiveOldRecords)
}

// MarkAbsentDrivers backfills yesterday's missing records. Drivers
// scheduled off get a Day Off record, everyone else without a record is
// marked Absent, so the calendar never shows silent gaps in the past.
func (j *AttendanceJobs) MarkAbsentDrivers(ctx context.Context) error {
	// Only run at midnight (00:00-00:59 UTC)
	if j.now().UTC().Hour() != 0 {
		return nil
	}

	slog.Info("Cron: Starting mark absent drivers job")

	drivers, err := j.driverRepo.List(ctx, driver.Filter{})
	if err != nil {
		return fmt.Errorf("failed to list drivers: %w", err)
	}

	yesterday := attendance.Day(j.now().AddDate(0, 0, -1))

	var backfill []attendance.Record
	for _, d := range drivers {
		existing, err := j.recordRepo.GetByDriverAndDate(ctx, d.ID, yesterday)
		if err != nil {
			slog.Error("Cron: Failed to check existing record", "driver_id", d.ID, "error", err)
			continue
		}
		if existing != nil {
			continue
		}

		status := attendance.StatusAbsent
		if d.ScheduledOff(yesterday) {
			status = attendance.StatusDayOff
		}

		poc := d.POC
		companyID := d.CompanyID
		backfill = append(backfill, attendance.Record{
			ID:         uuid.NewString(),
			DriverID:   d.ID,
			DriverName: d.Name,
			Date:       yesterday,
			Status:     status,
			POC:        &poc,
			CompanyID:  &companyID,
		})
	}

	if len(backfill) > 0 {
		if err := j.recordRepo.BulkCreate(ctx, backfill); err != nil {
			return fmt.Errorf("failed to backfill records: %w", err)
		}
	}

	slog.Info("Cron: Marked absent drivers", "count", len(backfill), "date", yesterday.Format("2006-01-02"))
	return nil
}

// ArchiveOldRecords prunes records past the retention window.
func (j *AttendanceJobs) ArchiveOldRecords(ctx context.Context) error {
	// Only run at midnight (00:00-00:59 UTC)
	if j.now().UTC().Hour() != 0 {
		return nil
	}

	slog.Info("Cron: Starting archive old records job")

	result, err := j.attendanceSvc.ArchiveRecords(ctx, "")
	if err != nil {
		return fmt.Errorf("failed to archive old records: %w", err)
	}

	slog.Info("Cron: Archived old records", "count", result.RemovedCount, "cutoff", result.Cutoff)
	return nil
}

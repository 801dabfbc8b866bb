package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/fleetdesk/attendance-backend-go/internal/domain/attendance"
	"github.com/fleetdesk/attendance-backend-go/internal/domain/driver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRecordRepo struct {
	records []attendance.Record
}

func (f *fakeRecordRepo) List(_ context.Context, criteria attendance.Criteria) ([]attendance.Record, error) {
	return attendance.Filter(f.records, criteria), nil
}

func (f *fakeRecordRepo) GetByDriverAndDate(_ context.Context, driverID string, day time.Time) (*attendance.Record, error) {
	for i, r := range f.records {
		if r.DriverID == driverID && attendance.SameDay(r.Date, day) {
			return &f.records[i], nil
		}
	}
	return nil, nil
}

func (f *fakeRecordRepo) Create(_ context.Context, record attendance.Record) (attendance.Record, error) {
	f.records = append(f.records, record)
	return record, nil
}

func (f *fakeRecordRepo) Upsert(_ context.Context, record attendance.Record) (attendance.Record, error) {
	for i, r := range f.records {
		if r.DriverID == record.DriverID && attendance.SameDay(r.Date, record.Date) {
			f.records[i] = record
			return record, nil
		}
	}
	f.records = append(f.records, record)
	return record, nil
}

func (f *fakeRecordRepo) BulkCreate(_ context.Context, records []attendance.Record) error {
	f.records = append(f.records, records...)
	return nil
}

func (f *fakeRecordRepo) DeleteOlderThan(_ context.Context, cutoff time.Time) (int64, error) {
	kept := f.records[:0]
	var removed int64
	for _, r := range f.records {
		if attendance.Day(r.Date).Before(attendance.Day(cutoff)) {
			removed++
			continue
		}
		kept = append(kept, r)
	}
	f.records = kept
	return removed, nil
}

type fakeDriverRepo struct {
	drivers map[string]driver.Driver
}

func (f *fakeDriverRepo) List(_ context.Context, _ driver.Filter) ([]driver.Driver, error) {
	out := make([]driver.Driver, 0, len(f.drivers))
	for _, d := range f.drivers {
		out = append(out, d)
	}
	return out, nil
}

func (f *fakeDriverRepo) GetByID(_ context.Context, id string) (driver.Driver, error) {
	d, ok := f.drivers[id]
	if !ok {
		return driver.Driver{}, driver.ErrDriverNotFound
	}
	return d, nil
}

func (f *fakeDriverRepo) ExistsByEmployeeID(_ context.Context, _ string) (bool, error) {
	return false, nil
}

func (f *fakeDriverRepo) Create(_ context.Context, d driver.Driver) (driver.Driver, error) {
	f.drivers[d.ID] = d
	return d, nil
}

func (f *fakeDriverRepo) Update(_ context.Context, _ string, _ driver.UpdateDriverRequest) error {
	return nil
}

func (f *fakeDriverRepo) SetPresence(_ context.Context, _ string, _ attendance.Status, _ *string, _ time.Time) error {
	return nil
}

func (f *fakeDriverRepo) Delete(_ context.Context, _ string) error {
	return nil
}

func testRecord(id, driverID, driverName, date string, status attendance.Status) attendance.Record {
	d, _ := time.Parse("2006-01-02", date)
	return attendance.Record{
		ID:         id,
		DriverID:   driverID,
		DriverName: driverName,
		Date:       d,
		Status:     status,
	}
}

func newTestService(records []attendance.Record, drivers map[string]driver.Driver, now time.Time) *AttendanceServiceImpl {
	if drivers == nil {
		drivers = map[string]driver.Driver{}
	}
	return &AttendanceServiceImpl{
		recordRepo:    &fakeRecordRepo{records: records},
		driverRepo:    &fakeDriverRepo{drivers: drivers},
		retentionDays: 30,
		now:           func() time.Time { return now },
	}
}

func TestListAttendance(t *testing.T) {
	svc := newTestService([]attendance.Record{
		testRecord("1", "D001", "Budi", "2025-06-02", attendance.StatusPresent),
		testRecord("2", "D002", "Siti", "2025-06-02", attendance.StatusLate),
	}, nil, time.Now())

	result, err := svc.ListAttendance(context.Background(), attendance.ListFilter{DriverID: "D001"})

	require.NoError(t, err)
	assert.Equal(t, 1, result.TotalCount)
	require.Len(t, result.Records, 1)
	assert.Equal(t, "D001", result.Records[0].DriverID)
}

func TestListAttendanceRejectsMalformedDates(t *testing.T) {
	svc := newTestService(nil, nil, time.Now())

	_, err := svc.ListAttendance(context.Background(), attendance.ListFilter{StartDate: "junk"})

	require.Error(t, err)
}

func TestGetSummary(t *testing.T) {
	svc := newTestService([]attendance.Record{
		testRecord("1", "D001", "Budi", "2025-06-02", attendance.StatusPresent),
		testRecord("2", "D002", "Siti", "2025-06-02", attendance.StatusLate),
		testRecord("3", "D003", "Joko", "2025-06-02", attendance.StatusAbsent),
		testRecord("4", "D004", "Rina", "2025-06-02", attendance.StatusNotLoggedIn),
	}, nil, time.Now())

	result, err := svc.GetSummary(context.Background(), attendance.ListFilter{})

	require.NoError(t, err)
	assert.Equal(t, 1, result.PresentDays)
	assert.Equal(t, 1, result.LateDays)
	assert.Equal(t, "50.0", result.AttendanceRate)
	assert.Equal(t, 4, result.TotalRecords)
}

func TestGetCalendarSingleDriverDerivesDayOff(t *testing.T) {
	offDay := time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC)
	drivers := map[string]driver.Driver{
		"D001": {ID: "D001", Name: "Budi", ScheduledOffDays: []time.Time{offDay}},
	}
	svc := newTestService([]attendance.Record{
		testRecord("1", "D001", "Budi", "2025-06-02", attendance.StatusPresent),
	}, drivers, time.Now())

	result, err := svc.GetCalendar(context.Background(), attendance.ListFilter{
		DriverID:  "D001",
		StartDate: "2025-06-02",
		EndDate:   "2025-06-04",
	})

	require.NoError(t, err)
	require.Len(t, result.Days, 3)
	assert.Equal(t, string(attendance.StatusPresent), result.Days[0].Status)
	assert.Equal(t, string(attendance.StatusDayOff), result.Days[1].Status)
	assert.Equal(t, string(attendance.StatusNotLoggedIn), result.Days[2].Status)
	assert.Equal(t, "N/A", result.Days[2].Label)
}

func TestGetCalendarUnknownDriver(t *testing.T) {
	svc := newTestService(nil, nil, time.Now())

	_, err := svc.GetCalendar(context.Background(), attendance.ListFilter{DriverID: "D404"})

	require.ErrorIs(t, err, driver.ErrDriverNotFound)
}

func TestGetCalendarAllDriversRollsUp(t *testing.T) {
	svc := newTestService([]attendance.Record{
		testRecord("1", "D001", "Budi", "2025-06-02", attendance.StatusAbsent),
		testRecord("2", "D002", "Siti", "2025-06-02", attendance.StatusLate),
	}, nil, time.Now())

	result, err := svc.GetCalendar(context.Background(), attendance.ListFilter{
		StartDate: "2025-06-02",
		EndDate:   "2025-06-02",
	})

	require.NoError(t, err)
	require.Len(t, result.Days, 1)
	assert.Equal(t, string(attendance.StatusLate), result.Days[0].Status)
	assert.Equal(t, 2, result.Days[0].RecordCount)
}

func TestGetCalendarDefaultsToCurrentMonth(t *testing.T) {
	now := time.Date(2025, time.June, 17, 12, 0, 0, 0, time.UTC)
	svc := newTestService(nil, nil, now)

	result, err := svc.GetCalendar(context.Background(), attendance.ListFilter{})

	require.NoError(t, err)
	assert.Len(t, result.Days, 30)
}

func TestGetDailyDetailIgnoresPeriodRange(t *testing.T) {
	svc := newTestService([]attendance.Record{
		testRecord("1", "D001", "Budi", "2025-06-02", attendance.StatusPresent),
	}, nil, time.Now())

	// The clicked day lies outside the supplied period; the drill-down
	// must still cover it.
	result, err := svc.GetDailyDetail(context.Background(), "2025-06-02", attendance.ListFilter{
		StartDate: "2025-07-01",
		EndDate:   "2025-07-31",
	})

	require.NoError(t, err)
	require.Len(t, result.Records, 1)
	assert.Equal(t, "100.0%", result.AttendanceRate)
}

func TestGetDailyDetailRejectsBadDate(t *testing.T) {
	svc := newTestService(nil, nil, time.Now())

	_, err := svc.GetDailyDetail(context.Background(), "02/06/2025", attendance.ListFilter{})

	require.Error(t, err)
}

func TestExportAttendance(t *testing.T) {
	svc := newTestService([]attendance.Record{
		testRecord("1", "D001", "Budi", "2025-06-02", attendance.StatusPresent),
	}, nil, time.Now())

	csv, err := svc.ExportAttendance(context.Background(), attendance.ListFilter{})

	require.NoError(t, err)
	assert.Contains(t, csv, "Driver ID,Driver Name,Date,Status,Work Hours,Timestamp,POC,Company ID\n")
	assert.Contains(t, csv, "D001,Budi,2025-06-02,Present,,,,")
}

func TestArchiveRecordsDefaultRetention(t *testing.T) {
	now := time.Date(2025, time.June, 30, 10, 0, 0, 0, time.UTC)
	svc := newTestService([]attendance.Record{
		testRecord("1", "D001", "Budi", "2025-05-01", attendance.StatusPresent),
		testRecord("2", "D001", "Budi", "2025-06-15", attendance.StatusPresent),
	}, nil, now)

	result, err := svc.ArchiveRecords(context.Background(), "")

	require.NoError(t, err)
	// Retention is 30 days, so the cutoff lands on May 31.
	assert.Equal(t, "2025-05-31", result.Cutoff)
	assert.Equal(t, int64(1), result.RemovedCount)
}

func TestArchiveRecordsExplicitCutoff(t *testing.T) {
	svc := newTestService([]attendance.Record{
		testRecord("1", "D001", "Budi", "2025-05-01", attendance.StatusPresent),
		testRecord("2", "D001", "Budi", "2025-06-15", attendance.StatusPresent),
	}, nil, time.Now())

	result, err := svc.ArchiveRecords(context.Background(), "2025-06-01")

	require.NoError(t, err)
	assert.Equal(t, "2025-06-01", result.Cutoff)
	assert.Equal(t, int64(1), result.RemovedCount)
}

func TestArchiveRecordsRejectsBadCutoff(t *testing.T) {
	svc := newTestService(nil, nil, time.Now())

	_, err := svc.ArchiveRecords(context.Background(), "yesterday")

	require.Error(t, err)
}
